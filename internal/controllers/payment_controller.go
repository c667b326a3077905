package controllers

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"edu_backoffice/internal/config"
	"edu_backoffice/internal/middleware"
	"edu_backoffice/internal/models"
	"edu_backoffice/internal/reports"
	"edu_backoffice/internal/storage"
)

// CreateStudentPayment records money collected from a student. Multipart
// form so a receipt image can ride along; the receipt goes to the blob store
// before the row is written.
func CreateStudentPayment(c *gin.Context) {
	var input struct {
		StudentID         uint      `form:"student_id" binding:"required"`
		StudentAcademicID uint      `form:"student_academic_id"`
		PaymentMode       string    `form:"payment_mode" binding:"required"`
		TransactionNumber string    `form:"transaction_number" binding:"required"`
		Amount            string    `form:"amount" binding:"required"`
		ReceivedDate      time.Time `form:"received_date" time_format:"2006-01-02"`
		ApprovedBy        string    `form:"approved_by" binding:"required"`
		AmountType        string    `form:"amount_type"`
		CourseYear        string    `form:"course_year"`
		SessionYear       string    `form:"session_year"`
	}
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	amount, err := decimal.NewFromString(input.Amount)
	if err != nil || !amount.IsPositive() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be a number greater than zero"})
		return
	}

	var student models.Student
	if err := config.DB.First(&student, input.StudentID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "student not found"})
		return
	}

	var receipt storage.BlobInfo
	if fileHeader, err := c.FormFile("receipt"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not read receipt"})
			return
		}
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not read receipt"})
			return
		}
		receipt, err = storage.Blob.Upload(c.Request.Context(), data, "receipts", fileHeader.Header.Get("Content-Type"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "receipt upload failed"})
			return
		}
	}

	actor, _ := middleware.CurrentEmail(c)
	payment := models.StudentPayment{
		StudentID:         input.StudentID,
		StudentAcademicID: input.StudentAcademicID,
		PaymentMode:       input.PaymentMode,
		TransactionNumber: input.TransactionNumber,
		Amount:            amount,
		HandoverAmount:    decimal.Zero,
		ReceivedDate:      input.ReceivedDate,
		ApprovedBy:        input.ApprovedBy,
		AmountType:        input.AmountType,
		ReceiptURL:        receipt.URL,
		ReceiptPublicID:   receipt.PublicID,
		CourseYear:        input.CourseYear,
		SessionYear:       input.SessionYear,
		CreatedBy:         actor,
	}
	if err := config.DB.Create(&payment).Error; err != nil {
		if pgErr, ok := err.(*pq.Error); ok && pgErr.Code == "23505" {
			c.JSON(http.StatusConflict, gin.H{"error": "transaction number already recorded"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create payment: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"payment": payment})
}

// ListStudentPayments returns all payments, newest first.
func ListStudentPayments(c *gin.Context) {
	var payments []models.StudentPayment
	if err := config.DB.Order("received_date DESC, id DESC").Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch payments"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": payments})
}

// StaffWorklist returns the payments a staff member collected that still
// have an outstanding balance to hand over.
func StaffWorklist(c *gin.Context) {
	staff := c.Query("staff")
	if staff == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "staff query parameter is required"})
		return
	}

	rows, err := reports.PaymentsByStaff(config.DBX, staff)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch worklist"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}
