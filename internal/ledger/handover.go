package ledger

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"edu_backoffice/internal/models"
)

var (
	ErrPaymentNotFound        = errors.New("payment not found")
	ErrHandoverNotFound       = errors.New("handover not found")
	ErrExpenseNotFound        = errors.New("expense not found")
	ErrInvalidAmount          = errors.New("amount must be greater than zero")
	ErrAmountExceedsRemaining = errors.New("amount exceeds remaining balance")
)

// HandoverEntry is one requested transfer against a student payment.
type HandoverEntry struct {
	PaymentID uint            `json:"id" binding:"required"`
	Amount    decimal.Decimal `json:"handover_amount"`
}

// CreateHandovers moves money from "collected by staff" to "handed over to
// administration" for each entry, as a single transaction. Any missing
// payment or ceiling violation rolls back the whole batch.
//
// The ceiling check is a conditional UPDATE so two concurrent requests
// against the same payment can never jointly overdraw it: the guard
// re-evaluates against the committed handover_amount, and zero rows affected
// means the remaining balance was insufficient.
func CreateHandovers(db *gorm.DB, entries []HandoverEntry, handedOverTo string, handoverDate time.Time, remarks, createdBy string) ([]models.PaymentHandover, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: no entries", ErrInvalidAmount)
	}

	var created []models.PaymentHandover
	err := db.Transaction(func(tx *gorm.DB) error {
		for _, entry := range entries {
			if !entry.Amount.IsPositive() {
				return fmt.Errorf("%w (payment %d)", ErrInvalidAmount, entry.PaymentID)
			}

			var payment models.StudentPayment
			if err := tx.First(&payment, entry.PaymentID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w (payment %d)", ErrPaymentNotFound, entry.PaymentID)
				}
				return err
			}

			res := tx.Model(&models.StudentPayment{}).
				Where("id = ? AND handover_amount + ? <= amount", entry.PaymentID, entry.Amount).
				Updates(map[string]interface{}{
					"handover_amount": gorm.Expr("handover_amount + ?", entry.Amount),
					"modify_by":       createdBy,
				})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("%w (payment %d)", ErrAmountExceedsRemaining, entry.PaymentID)
			}

			now := time.Now()
			handover := models.PaymentHandover{
				PaymentID:    payment.ID,
				StudentID:    payment.StudentID,
				Amount:       entry.Amount,
				ReceivedBy:   payment.ApprovedBy, // copied, never caller-supplied
				HandedOverTo: handedOverTo,
				HandoverDate: handoverDate,
				Remarks:      remarks,
				Verified:     true,
				VerifiedBy:   createdBy,
				VerifiedOn:   &now,
				CreatedBy:    createdBy,
			}
			if err := tx.Create(&handover).Error; err != nil {
				return err
			}
			created = append(created, handover)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// VerifyHandover marks a single ledger row verified. Handovers created
// through CreateHandovers are already verified; this endpoint survives for
// rows imported from the previous system.
func VerifyHandover(db *gorm.DB, id uint, verifiedBy string) (models.PaymentHandover, error) {
	var handover models.PaymentHandover
	if err := db.First(&handover, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return handover, fmt.Errorf("%w (handover %d)", ErrHandoverNotFound, id)
		}
		return handover, err
	}
	now := time.Now()
	handover.Verified = true
	handover.VerifiedBy = verifiedBy
	handover.VerifiedOn = &now
	if err := db.Save(&handover).Error; err != nil {
		return handover, err
	}
	return handover, nil
}
