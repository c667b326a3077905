package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"edu_backoffice/internal/config"
	"edu_backoffice/internal/ledger"
	"edu_backoffice/internal/middleware"
	"edu_backoffice/internal/models"
	"edu_backoffice/internal/reports"
)

// CreateSupplier registers a supplier.
func CreateSupplier(c *gin.Context) {
	var input models.Supplier
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	actor, _ := middleware.CurrentEmail(c)
	input.CreatedBy = actor

	if err := config.DB.Create(&input).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create supplier: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"supplier": input})
}

// ListSuppliers lists all suppliers.
func ListSuppliers(c *gin.Context) {
	var suppliers []models.Supplier
	if err := config.DB.Find(&suppliers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch suppliers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": suppliers})
}

// GetSupplier retrieves a supplier with its expenses.
func GetSupplier(c *gin.Context) {
	id := c.Param("id")
	var supplier models.Supplier
	if err := config.DB.Preload("Expenses").Preload("Expenses.Payments").First(&supplier, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "supplier not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"supplier": supplier})
}

// UpdateSupplier modifies a supplier record.
func UpdateSupplier(c *gin.Context) {
	id := c.Param("id")
	var supplier models.Supplier
	if err := config.DB.First(&supplier, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "supplier not found"})
		return
	}

	var input struct {
		Name          *string `json:"name"`
		ContactPerson *string `json:"contact_person"`
		Email         *string `json:"email"`
		MobileNo      *string `json:"mobile_no"`
		Address       *string `json:"address"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Name != nil {
		supplier.Name = *input.Name
	}
	if input.ContactPerson != nil {
		supplier.ContactPerson = *input.ContactPerson
	}
	if input.Email != nil {
		supplier.Email = *input.Email
	}
	if input.MobileNo != nil {
		supplier.MobileNo = *input.MobileNo
	}
	if input.Address != nil {
		supplier.Address = *input.Address
	}
	actor, _ := middleware.CurrentEmail(c)
	supplier.ModifyBy = actor

	if err := config.DB.Save(&supplier).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update supplier"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"supplier": supplier})
}

// DeleteSupplier removes a supplier. Suppliers with recorded expenses are
// kept for the same reason students with payments are: the money trail wins.
func DeleteSupplier(c *gin.Context) {
	id := c.Param("id")
	var supplier models.Supplier
	if err := config.DB.First(&supplier, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "supplier not found"})
		return
	}

	var expenseCount int64
	if err := config.DB.Model(&models.SupplierExpense{}).
		Where("supplier_id = ?", supplier.ID).Count(&expenseCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not check expense history"})
		return
	}
	if expenseCount > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "supplier has recorded expenses and cannot be deleted"})
		return
	}

	if err := config.DB.Delete(&supplier).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete supplier"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "supplier deleted"})
}

// CreateSupplierExpense records an amount owed to a supplier.
func CreateSupplierExpense(c *gin.Context) {
	id := c.Param("id")
	var supplier models.Supplier
	if err := config.DB.First(&supplier, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "supplier not found"})
		return
	}

	var input models.SupplierExpense
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !input.Amount.IsPositive() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be greater than zero"})
		return
	}
	actor, _ := middleware.CurrentEmail(c)
	input.SupplierID = supplier.ID
	input.CreatedBy = actor

	if err := config.DB.Create(&input).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create expense"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"expense": input})
}

// RecordExpensePayment appends a partial payment against an expense, bounded
// by the expense amount.
func RecordExpensePayment(c *gin.Context) {
	var uri struct {
		ID uint `uri:"id" binding:"required"`
	}
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var input ledger.ExpensePaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	actor, _ := middleware.CurrentEmail(c)
	payment, err := ledger.RecordExpensePayment(config.DB, uri.ID, input, actor)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrExpenseNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, ledger.ErrInvalidAmount), errors.Is(err, ledger.ErrAmountExceedsRemaining):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not record payment"})
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"payment": payment})
}

// ListExpenseSummary returns every expense with its paid total and
// remaining balance.
func ListExpenseSummary(c *gin.Context) {
	rows, err := reports.ExpenseSummary(config.DBX)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch expense summary"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}
