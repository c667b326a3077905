package ledger

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"edu_backoffice/internal/models"
)

// ExpensePaymentInput is one outbound payment against a supplier expense.
// Unlike student handovers these are recorded one at a time.
type ExpensePaymentInput struct {
	PaidAmount        decimal.Decimal `json:"paid_amount"`
	PaymentMode       string          `json:"payment_mode"`
	TransactionNumber string          `json:"transaction_number"`
	PaidOn            time.Time       `json:"paid_on"`
	ApprovedBy        string          `json:"approved_by"`
}

// RecordExpensePayment appends a partial payment to a supplier expense,
// bounded by the expense amount. Same guard as the student handover path:
// the running total is incremented by a conditional UPDATE, so concurrent
// payments cannot jointly exceed the ceiling.
func RecordExpensePayment(db *gorm.DB, expenseID uint, input ExpensePaymentInput, createdBy string) (models.ExpensePayment, error) {
	var created models.ExpensePayment

	if !input.PaidAmount.IsPositive() {
		return created, fmt.Errorf("%w (expense %d)", ErrInvalidAmount, expenseID)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var expense models.SupplierExpense
		if err := tx.First(&expense, expenseID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w (expense %d)", ErrExpenseNotFound, expenseID)
			}
			return err
		}

		res := tx.Model(&models.SupplierExpense{}).
			Where("id = ? AND paid_amount + ? <= amount", expenseID, input.PaidAmount).
			Updates(map[string]interface{}{
				"paid_amount": gorm.Expr("paid_amount + ?", input.PaidAmount),
				"modify_by":   createdBy,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w (expense %d)", ErrAmountExceedsRemaining, expenseID)
		}

		created = models.ExpensePayment{
			ExpenseID:         expenseID,
			PaidAmount:        input.PaidAmount,
			PaymentMode:       input.PaymentMode,
			TransactionNumber: input.TransactionNumber,
			PaidOn:            input.PaidOn,
			ApprovedBy:        input.ApprovedBy,
			CreatedBy:         createdBy,
		}
		return tx.Create(&created).Error
	})
	if err != nil {
		return models.ExpensePayment{}, err
	}
	return created, nil
}
