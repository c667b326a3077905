package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// StudentPayment is money collected from a student by a staff member.
// Invariant: 0 <= HandoverAmount <= Amount. Amount - HandoverAmount is the
// outstanding balance still available for handover to administration.
type StudentPayment struct {
	gorm.Model
	StudentID         uint            `json:"student_id" gorm:"index;not null"`
	StudentAcademicID uint            `json:"student_academic_id" gorm:"index"`
	PaymentMode       string          `json:"payment_mode"`
	TransactionNumber string          `json:"transaction_number" gorm:"uniqueIndex"`
	Amount            decimal.Decimal `json:"amount" gorm:"type:decimal(12,2);not null"`
	HandoverAmount    decimal.Decimal `json:"handover_amount" gorm:"type:decimal(12,2);default:0"`
	ReceivedDate      time.Time       `json:"received_date"`
	ApprovedBy        string          `json:"approved_by" gorm:"index"` // staff who collected the money
	AmountType        string          `json:"amount_type"`
	ReceiptURL        string          `json:"receipt_url"`
	ReceiptPublicID   string          `json:"receipt_public_id"`
	CourseYear        string          `json:"course_year"`
	SessionYear       string          `json:"session_year"`

	CreatedBy string `json:"created_by"`
	ModifyBy  string `json:"modify_by"`

	Student Student `gorm:"foreignKey:StudentID" json:"-"`
}
