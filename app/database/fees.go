package database

import (
	"database/sql"
	"errors"
	"time"

	"github.com/Boren168-g/Daa-Management-System/app/models"
)

// UpsertFee creates the ledger row for a (student, subject) pair or
// re-prices an existing one. On update the surviving paid value is compared
// against the new amount, so a re-priced fee can change status without any
// payment event. Everything runs in one transaction: with
// policy.RequireEnrollment the pair must be an active enrollment, checked
// against the same snapshot the write sees.
func UpsertFee(db *sql.DB, studentID, subjectID int, amount float64, dueDate *time.Time, policy models.FeePolicy) (int, error) {
	if amount < 0 {
		return 0, &models.ValidationError{Field: "amount", Reason: "must not be negative"}
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, &models.StoreUnavailableError{Op: "upsert fee", Err: err}
	}
	defer tx.Rollback()

	if policy.RequireEnrollment {
		var enrolled bool
		err := tx.QueryRow(
			`SELECT EXISTS (SELECT 1 FROM enrollments WHERE student_id = $1 AND subject_id = $2)`,
			studentID, subjectID,
		).Scan(&enrolled)
		if err != nil {
			return 0, &models.StoreUnavailableError{Op: "upsert fee", Err: err}
		}
		if !enrolled {
			return 0, &models.ValidationError{Field: "enrollment", Reason: "student is not enrolled in this subject"}
		}
	}

	var (
		feeID int
		paid  float64
	)
	err = tx.QueryRow(
		`INSERT INTO fees (student_id, subject_id, amount, due_date)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (student_id, subject_id) DO UPDATE SET
		     amount = EXCLUDED.amount,
		     due_date = EXCLUDED.due_date
		 RETURNING fee_id, paid`,
		studentID, subjectID, amount, dueDate,
	).Scan(&feeID, &paid)
	if err != nil {
		return 0, models.MapStoreError("upsert fee", "fee", err)
	}

	status := models.DeriveFeeStatus(amount, paid)
	if _, err := tx.Exec(
		`UPDATE fees SET status = $1 WHERE fee_id = $2`, string(status), feeID,
	); err != nil {
		return 0, models.MapStoreError("upsert fee", "fee", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, &models.StoreUnavailableError{Op: "upsert fee", Err: err}
	}
	return feeID, nil
}

// RecordPayment applies a payment to a fee and recomputes its status. The
// row is locked for the read-add-write so concurrent payments cannot lose
// each other. Overpayment is accepted unless the policy rejects it; status
// stays paid either way.
func RecordPayment(db *sql.DB, feeID int, payment float64, policy models.FeePolicy) error {
	if payment <= 0 {
		return &models.ValidationError{Field: "amount", Reason: "must be greater than zero"}
	}

	tx, err := db.Begin()
	if err != nil {
		return &models.StoreUnavailableError{Op: "record payment", Err: err}
	}
	defer tx.Rollback()

	var amount, paid float64
	err = tx.QueryRow(
		`SELECT amount, paid FROM fees WHERE fee_id = $1 FOR UPDATE`, feeID,
	).Scan(&amount, &paid)
	if errors.Is(err, sql.ErrNoRows) {
		return &models.NotFoundError{Entity: "fee", ID: feeID}
	}
	if err != nil {
		return &models.StoreUnavailableError{Op: "record payment", Err: err}
	}

	newPaid := paid + payment
	if policy.RejectOverpayment && newPaid > amount {
		return &models.ValidationError{Field: "amount", Reason: "payment exceeds the outstanding amount"}
	}

	status := models.DeriveFeeStatus(amount, newPaid)
	if _, err := tx.Exec(
		`UPDATE fees SET paid = $1, status = $2 WHERE fee_id = $3`,
		newPaid, string(status), feeID,
	); err != nil {
		return models.MapStoreError("record payment", "fee", err)
	}

	if err := tx.Commit(); err != nil {
		return &models.StoreUnavailableError{Op: "record payment", Err: err}
	}
	return nil
}

// DeleteFee removes a ledger row. Deleting a missing row reports NotFound,
// which callers treat as a no-op rather than a failure.
func DeleteFee(db *sql.DB, feeID int) error {
	result, err := db.Exec(`DELETE FROM fees WHERE fee_id = $1`, feeID)
	if err != nil {
		return models.MapStoreError("delete fee", "fee", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return &models.StoreUnavailableError{Op: "delete fee", Err: err}
	}
	if affected == 0 {
		return &models.NotFoundError{Entity: "fee", ID: feeID}
	}
	return nil
}

// GetFeeByID returns a single ledger row.
func GetFeeByID(db *sql.DB, feeID int) (*models.Fee, error) {
	fee := &models.Fee{}
	var status string
	err := db.QueryRow(
		`SELECT fee_id, student_id, subject_id, amount, paid, status, due_date, created_at
		 FROM fees WHERE fee_id = $1`, feeID,
	).Scan(&fee.FeeID, &fee.StudentID, &fee.SubjectID, &fee.Amount, &fee.Paid,
		&status, &fee.DueDate, &fee.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &models.NotFoundError{Entity: "fee", ID: feeID}
	}
	if err != nil {
		return nil, &models.StoreUnavailableError{Op: "get fee", Err: err}
	}
	fee.Status = models.FeeStatus(status)
	return fee, nil
}

// ListStudentFees returns one row per enrollment for a student. Enrollments
// without a ledger row surface the presentation default amount with zero
// paid and pending status; nothing is persisted for them.
func ListStudentFees(db *sql.DB, studentID int) ([]*models.StudentFee, error) {
	rows, err := db.Query(
		`SELECT f.fee_id, e.student_id, e.subject_id, sub.name, t.name,
		        COALESCE(f.amount, $2), COALESCE(f.paid, 0.00),
		        COALESCE(f.status, 'pending'), f.due_date
		 FROM enrollments e
		 INNER JOIN subjects sub ON e.subject_id = sub.subject_id
		 LEFT JOIN teachers t ON sub.teacher_id = t.id
		 LEFT JOIN fees f ON f.student_id = e.student_id AND f.subject_id = e.subject_id
		 WHERE e.student_id = $1
		 ORDER BY sub.name`, studentID, models.DefaultFeeAmount)
	if err != nil {
		return nil, &models.StoreUnavailableError{Op: "list student fees", Err: err}
	}
	defer rows.Close()

	fees := []*models.StudentFee{}
	for rows.Next() {
		fee := &models.StudentFee{}
		var status string
		if err := rows.Scan(&fee.FeeID, &fee.StudentID, &fee.SubjectID,
			&fee.SubjectName, &fee.TeacherName, &fee.Amount, &fee.Paid,
			&status, &fee.DueDate); err != nil {
			return nil, &models.StoreUnavailableError{Op: "list student fees", Err: err}
		}
		fee.Status = models.FeeStatus(status)
		fees = append(fees, fee)
	}
	if err := rows.Err(); err != nil {
		return nil, &models.StoreUnavailableError{Op: "list student fees", Err: err}
	}
	return fees, nil
}

// GetFeeStats aggregates the ledger for the dashboard.
func GetFeeStats(db *sql.DB) (*models.FeeStats, error) {
	stats := &models.FeeStats{}
	err := db.QueryRow(
		`SELECT COUNT(*),
		        COUNT(*) FILTER (WHERE status = 'pending'),
		        COUNT(*) FILTER (WHERE status = 'partial'),
		        COUNT(*) FILTER (WHERE status = 'paid'),
		        COALESCE(SUM(amount), 0),
		        COALESCE(SUM(paid), 0)
		 FROM fees`,
	).Scan(&stats.TotalFees, &stats.PendingFees, &stats.PartialFees,
		&stats.PaidFees, &stats.TotalBilled, &stats.TotalCollected)
	if err != nil {
		return nil, &models.StoreUnavailableError{Op: "fee stats", Err: err}
	}
	return stats, nil
}
