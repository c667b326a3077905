package reports

import (
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

// Reporting reads live on raw SQL: they are wide joins with computed columns
// that would be awkward through the ORM, and they carry no business rules.

// StaffPayment is one row of a staff member's handover worklist.
type StaffPayment struct {
	PaymentID         uint            `db:"payment_id" json:"payment_id"`
	StudentID         uint            `db:"student_id" json:"student_id"`
	StudentName       string          `db:"student_name" json:"student_name"`
	CourseName        string          `db:"course_name" json:"course_name"`
	CollegeName       string          `db:"college_name" json:"college_name"`
	PaymentMode       string          `db:"payment_mode" json:"payment_mode"`
	TransactionNumber string          `db:"transaction_number" json:"transaction_number"`
	Amount            decimal.Decimal `db:"amount" json:"amount"`
	HandoverAmount    decimal.Decimal `db:"handover_amount" json:"handover_amount"`
	Remaining         decimal.Decimal `db:"remaining" json:"remaining"`
	ReceivedDate      time.Time       `db:"received_date" json:"received_date"`
}

// PaymentsByStaff returns the payments a staff member collected that still
// have an outstanding balance. Fully handed-over payments drop out of the
// list; the remaining column is clamped at zero for display.
func PaymentsByStaff(db *sqlx.DB, staffName string) ([]StaffPayment, error) {
	const query = `
		SELECT sp.id                                   AS payment_id,
		       sp.student_id                           AS student_id,
		       s.name                                  AS student_name,
		       COALESCE(a.course_name, '')             AS course_name,
		       COALESCE(a.college_name, '')            AS college_name,
		       sp.payment_mode                         AS payment_mode,
		       sp.transaction_number                   AS transaction_number,
		       sp.amount                               AS amount,
		       sp.handover_amount                      AS handover_amount,
		       CASE WHEN sp.amount - sp.handover_amount > 0
		            THEN sp.amount - sp.handover_amount
		            ELSE 0 END                         AS remaining,
		       sp.received_date                        AS received_date
		FROM student_payments sp
		JOIN students s ON s.id = sp.student_id AND s.deleted_at IS NULL
		LEFT JOIN student_academic_details a
		     ON a.id = sp.student_academic_id AND a.deleted_at IS NULL
		WHERE sp.deleted_at IS NULL
		  AND sp.approved_by = ?
		  AND sp.amount - sp.handover_amount > 0
		ORDER BY sp.received_date DESC, sp.id DESC`

	var rows []StaffPayment
	if err := db.Select(&rows, db.Rebind(query), staffName); err != nil {
		return nil, err
	}
	return rows, nil
}

// LedgerRow is one handover with the denormalized display columns the
// back-office ledger screen needs.
type LedgerRow struct {
	HandoverID   uint            `db:"handover_id" json:"handover_id"`
	PaymentID    uint            `db:"payment_id" json:"payment_id"`
	StudentID    uint            `db:"student_id" json:"student_id"`
	StudentName  string          `db:"student_name" json:"student_name"`
	CourseName   string          `db:"course_name" json:"course_name"`
	CollegeName  string          `db:"college_name" json:"college_name"`
	Amount       decimal.Decimal `db:"amount" json:"amount"`
	ReceivedBy   string          `db:"received_by" json:"received_by"`
	HandedOverTo string          `db:"handed_over_to" json:"handed_over_to"`
	HandoverDate time.Time       `db:"handover_date" json:"handover_date"`
	Remarks      string          `db:"remarks" json:"remarks"`
	Verified     bool            `db:"verified" json:"verified"`
	VerifiedBy   string          `db:"verified_by" json:"verified_by"`
}

// HandoverLedger returns the full handover ledger, newest first.
func HandoverLedger(db *sqlx.DB) ([]LedgerRow, error) {
	const query = `
		SELECT h.id                        AS handover_id,
		       h.payment_id                AS payment_id,
		       h.student_id                AS student_id,
		       COALESCE(s.name, '')        AS student_name,
		       COALESCE(a.course_name, '') AS course_name,
		       COALESCE(a.college_name, '') AS college_name,
		       h.amount                    AS amount,
		       h.received_by               AS received_by,
		       h.handed_over_to            AS handed_over_to,
		       h.handover_date             AS handover_date,
		       h.remarks                   AS remarks,
		       h.verified                  AS verified,
		       h.verified_by               AS verified_by
		FROM payment_handovers h
		JOIN student_payments sp ON sp.id = h.payment_id
		LEFT JOIN students s ON s.id = h.student_id AND s.deleted_at IS NULL
		LEFT JOIN student_academic_details a
		     ON a.id = sp.student_academic_id AND a.deleted_at IS NULL
		WHERE h.deleted_at IS NULL
		ORDER BY h.created_at DESC, h.id DESC`

	var rows []LedgerRow
	if err := db.Select(&rows, query); err != nil {
		return nil, err
	}
	return rows, nil
}

// ExpenseSummaryRow is one supplier expense with its payment progress.
type ExpenseSummaryRow struct {
	ExpenseID    uint            `db:"expense_id" json:"expense_id"`
	SupplierID   uint            `db:"supplier_id" json:"supplier_id"`
	SupplierName string          `db:"supplier_name" json:"supplier_name"`
	Title        string          `db:"title" json:"title"`
	Amount       decimal.Decimal `db:"amount" json:"amount"`
	PaidAmount   decimal.Decimal `db:"paid_amount" json:"paid_amount"`
	Remaining    decimal.Decimal `db:"remaining" json:"remaining"`
	ExpenseDate  time.Time       `db:"expense_date" json:"expense_date"`
}

// ExpenseSummary returns every supplier expense with its running paid total
// and remaining balance.
func ExpenseSummary(db *sqlx.DB) ([]ExpenseSummaryRow, error) {
	const query = `
		SELECT e.id                 AS expense_id,
		       e.supplier_id        AS supplier_id,
		       COALESCE(su.name, '') AS supplier_name,
		       e.title              AS title,
		       e.amount             AS amount,
		       e.paid_amount        AS paid_amount,
		       e.amount - e.paid_amount AS remaining,
		       e.expense_date       AS expense_date
		FROM supplier_expenses e
		LEFT JOIN suppliers su ON su.id = e.supplier_id AND su.deleted_at IS NULL
		WHERE e.deleted_at IS NULL
		ORDER BY e.expense_date DESC, e.id DESC`

	var rows []ExpenseSummaryRow
	if err := db.Select(&rows, query); err != nil {
		return nil, err
	}
	return rows, nil
}
