package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaymentHandover is one discrete transfer of collected money from a staff
// member to administration. Rows are append-only; the sum of Amount per
// PaymentID always equals that payment's HandoverAmount.
type PaymentHandover struct {
	gorm.Model
	PaymentID uint            `json:"payment_id" gorm:"index;not null"`
	StudentID uint            `json:"student_id" gorm:"index"`
	Amount    decimal.Decimal `json:"amount" gorm:"type:decimal(12,2);not null"`

	// ReceivedBy is copied from the payment's ApprovedBy at creation time,
	// never taken from the caller.
	ReceivedBy   string    `json:"received_by"`
	HandedOverTo string    `json:"handed_over_to"`
	HandoverDate time.Time `json:"handover_date"`
	Remarks      string    `json:"remarks"`

	Verified   bool       `json:"verified"`
	VerifiedBy string     `json:"verified_by"`
	VerifiedOn *time.Time `json:"verified_on"`

	CreatedBy string `json:"created_by"`

	Payment StudentPayment `gorm:"foreignKey:PaymentID" json:"-"`
}
