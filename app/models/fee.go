package models

import "time"

// DefaultFeeAmount is the display amount shown for an enrollment that has
// no fee row yet. It is presentation only and never persisted.
const DefaultFeeAmount = 65.00

// Fee is the single ledger row for one (student, subject) pair.
type Fee struct {
	FeeID     int        `json:"fee_id"`
	StudentID int        `json:"student_id"`
	SubjectID int        `json:"subject_id"`
	Amount    float64    `json:"amount"`
	Paid      float64    `json:"paid"`
	Status    FeeStatus  `json:"status"`
	DueDate   *time.Time `json:"due_date,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// Outstanding returns the remaining balance, never negative.
func (f *Fee) Outstanding() float64 {
	if f.Paid >= f.Amount {
		return 0
	}
	return f.Amount - f.Paid
}

// DeriveFeeStatus computes the ledger status from the numeric pair. It is
// the only way a status value comes into existence: every write to amount
// or paid recomputes it, so it can never drift.
func DeriveFeeStatus(amount, paid float64) FeeStatus {
	switch {
	case paid <= 0:
		return FeePending
	case paid < amount:
		return FeePartial
	default:
		return FeePaid
	}
}

// FeePolicy holds the two fee behaviors that are configurable.
type FeePolicy struct {
	// RequireEnrollment gates fee creation on an active (student, subject)
	// enrollment.
	RequireEnrollment bool
	// RejectOverpayment turns payments that would push paid past amount
	// into a validation error instead of silently accepting them.
	RejectOverpayment bool
}

// DefaultFeePolicy enforces enrollment and allows overpayment.
func DefaultFeePolicy() FeePolicy {
	return FeePolicy{RequireEnrollment: true}
}

// StudentFee is one row of the per-student fee listing: every enrollment
// appears, with ledger values where a fee row exists and presentation
// defaults where it does not.
type StudentFee struct {
	FeeID       *int       `json:"fee_id"`
	StudentID   int        `json:"student_id"`
	SubjectID   int        `json:"subject_id"`
	SubjectName string     `json:"subject_name"`
	TeacherName *string    `json:"teacher_name,omitempty"`
	Amount      float64    `json:"amount"`
	Paid        float64    `json:"paid"`
	Status      FeeStatus  `json:"status"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

// FeeStats aggregates the ledger for the dashboard.
type FeeStats struct {
	TotalFees      int     `json:"total_fees"`
	PendingFees    int     `json:"pending_fees"`
	PartialFees    int     `json:"partial_fees"`
	PaidFees       int     `json:"paid_fees"`
	TotalBilled    float64 `json:"total_billed"`
	TotalCollected float64 `json:"total_collected"`
}
