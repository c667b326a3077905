package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"edu_backoffice/internal/models"
	"edu_backoffice/internal/reports"
)

func seedExpense(t *testing.T, db *gorm.DB, amount string) models.SupplierExpense {
	t.Helper()
	supplier := models.Supplier{Name: "Mehta Printing"}
	require.NoError(t, db.Create(&supplier).Error)

	expense := models.SupplierExpense{
		SupplierID:  supplier.ID,
		Title:       "Prospectus print run",
		Amount:      dec(amount),
		PaidAmount:  decimal.Zero,
		ExpenseDate: time.Now(),
	}
	require.NoError(t, db.Create(&expense).Error)
	return expense
}

func TestRecordExpensePaymentCeiling(t *testing.T) {
	db := newTestDB(t)
	expense := seedExpense(t, db, "10000")

	_, err := RecordExpensePayment(db, expense.ID,
		ExpensePaymentInput{PaidAmount: dec("6000"), PaymentMode: "bank", PaidOn: time.Now()},
		"admin@example.com")
	require.NoError(t, err)

	// 6000 paid, 4000 left: 5000 must be rejected
	_, err = RecordExpensePayment(db, expense.ID,
		ExpensePaymentInput{PaidAmount: dec("5000"), PaymentMode: "bank", PaidOn: time.Now()},
		"admin@example.com")
	require.ErrorIs(t, err, ErrAmountExceedsRemaining)

	// Exactly the remainder settles the expense
	_, err = RecordExpensePayment(db, expense.ID,
		ExpensePaymentInput{PaidAmount: dec("4000"), PaymentMode: "bank", PaidOn: time.Now()},
		"admin@example.com")
	require.NoError(t, err)

	var reloaded models.SupplierExpense
	require.NoError(t, db.First(&reloaded, expense.ID).Error)
	assert.True(t, reloaded.PaidAmount.Equal(reloaded.Amount))

	_, err = RecordExpensePayment(db, expense.ID,
		ExpensePaymentInput{PaidAmount: dec("1"), PaymentMode: "bank", PaidOn: time.Now()},
		"admin@example.com")
	require.ErrorIs(t, err, ErrAmountExceedsRemaining)
}

func TestRecordExpensePaymentSumProperty(t *testing.T) {
	db := newTestDB(t)
	expense := seedExpense(t, db, "9000")

	for _, amount := range []string{"2000", "3000", "4000"} {
		_, err := RecordExpensePayment(db, expense.ID,
			ExpensePaymentInput{PaidAmount: dec(amount), PaymentMode: "cash", PaidOn: time.Now()},
			"admin@example.com")
		require.NoError(t, err)
	}

	var rows []models.ExpensePayment
	require.NoError(t, db.Where("expense_id = ?", expense.ID).Find(&rows).Error)
	sum := decimal.Zero
	for _, r := range rows {
		sum = sum.Add(r.PaidAmount)
	}

	var reloaded models.SupplierExpense
	require.NoError(t, db.First(&reloaded, expense.ID).Error)
	assert.True(t, sum.Equal(reloaded.PaidAmount))
}

func TestRecordExpensePaymentValidation(t *testing.T) {
	db := newTestDB(t)
	expense := seedExpense(t, db, "9000")

	_, err := RecordExpensePayment(db, expense.ID,
		ExpensePaymentInput{PaidAmount: dec("0")}, "admin@example.com")
	require.ErrorIs(t, err, ErrInvalidAmount)

	_, err = RecordExpensePayment(db, 99999,
		ExpensePaymentInput{PaidAmount: dec("100")}, "admin@example.com")
	require.ErrorIs(t, err, ErrExpenseNotFound)
}

func TestExpenseSummaryRemaining(t *testing.T) {
	db := newTestDB(t)
	dbx := sqlxFor(t, db)
	expense := seedExpense(t, db, "10000")

	_, err := RecordExpensePayment(db, expense.ID,
		ExpensePaymentInput{PaidAmount: dec("2500"), PaymentMode: "bank", PaidOn: time.Now()},
		"admin@example.com")
	require.NoError(t, err)

	rows, err := reports.ExpenseSummary(dbx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, expense.ID, rows[0].ExpenseID)
	assert.Equal(t, "Mehta Printing", rows[0].SupplierName)
	assert.True(t, rows[0].PaidAmount.Equal(dec("2500")))
	assert.True(t, rows[0].Remaining.Equal(dec("7500")))
}
