package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Supplier struct {
	gorm.Model
	Name          string `json:"name" binding:"required"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email"`
	MobileNo      string `json:"mobile_no"`
	Address       string `json:"address"`

	CreatedBy string `json:"created_by"`
	ModifyBy  string `json:"modify_by"`

	Expenses []SupplierExpense `gorm:"foreignKey:SupplierID" json:"expenses,omitempty"`
}

// SupplierExpense is an amount owed to a supplier. ExpensePayment rows are
// partial payments against it; PaidAmount is their running total and never
// exceeds Amount.
type SupplierExpense struct {
	gorm.Model
	SupplierID  uint            `json:"supplier_id" gorm:"index;not null"`
	Title       string          `json:"title"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:decimal(12,2);not null"`
	PaidAmount  decimal.Decimal `json:"paid_amount" gorm:"type:decimal(12,2);default:0"`
	ExpenseDate time.Time       `json:"expense_date"`
	Remarks     string          `json:"remarks"`

	CreatedBy string `json:"created_by"`
	ModifyBy  string `json:"modify_by"`

	Payments []ExpensePayment `gorm:"foreignKey:ExpenseID" json:"payments,omitempty"`
}

// ExpensePayment is one outbound partial payment against a supplier expense.
type ExpensePayment struct {
	gorm.Model
	ExpenseID         uint            `json:"expense_id" gorm:"index;not null"`
	PaidAmount        decimal.Decimal `json:"paid_amount" gorm:"type:decimal(12,2);not null"`
	PaymentMode       string          `json:"payment_mode"`
	TransactionNumber string          `json:"transaction_number"`
	PaidOn            time.Time       `json:"paid_on"`
	ApprovedBy        string          `json:"approved_by"`

	CreatedBy string `json:"created_by"`
}
