package database

import (
	"database/sql"
	"testing"

	"github.com/Boren168-g/Daa-Management-System/app/models"
)

func enrolledPair(t *testing.T) (*sql.DB, int, int) {
	t.Helper()
	db := testDB(t)
	student := mustCreateStudent(t, db, "alice")
	subjectID := mustAddSubject(t, db, "Mathematics", nil)
	mustEnroll(t, db, student.ID, subjectID)
	return db, student.ID, subjectID
}

func TestUpsertFeeCreatesPending(t *testing.T) {
	db, studentID, subjectID := enrolledPair(t)

	feeID, err := UpsertFee(db, studentID, subjectID, 100, nil, models.DefaultFeePolicy())
	if err != nil {
		t.Fatal(err)
	}
	fee, err := GetFeeByID(db, feeID)
	if err != nil {
		t.Fatal(err)
	}
	if fee.Status != models.FeePending || fee.Paid != 0 || fee.Amount != 100 {
		t.Errorf("fee = %+v, want amount 100, paid 0, pending", fee)
	}
}

func TestUpsertFeeRequiresEnrollment(t *testing.T) {
	db := testDB(t)
	student := mustCreateStudent(t, db, "alice")
	subjectID := mustAddSubject(t, db, "Mathematics", nil)

	_, err := UpsertFee(db, student.ID, subjectID, 100, nil, models.DefaultFeePolicy())
	if _, ok := err.(*models.ValidationError); !ok {
		t.Fatalf("fee without enrollment: got %v, want ValidationError", err)
	}

	relaxed := models.FeePolicy{RequireEnrollment: false}
	if _, err := UpsertFee(db, student.ID, subjectID, 100, nil, relaxed); err != nil {
		t.Fatalf("fee without enrollment under relaxed policy: %v", err)
	}
}

func TestUpsertFeeIsSingleRowPerPair(t *testing.T) {
	db, studentID, subjectID := enrolledPair(t)
	policy := models.DefaultFeePolicy()

	first, err := UpsertFee(db, studentID, subjectID, 100, nil, policy)
	if err != nil {
		t.Fatal(err)
	}
	second, err := UpsertFee(db, studentID, subjectID, 120, nil, policy)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("upsert created a second row: %d then %d", first, second)
	}

	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM fees`).Scan(&n); err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("fees rows = %d, want 1", n)
	}
}

func TestRecordPaymentProgression(t *testing.T) {
	db, studentID, subjectID := enrolledPair(t)
	policy := models.DefaultFeePolicy()

	feeID, err := UpsertFee(db, studentID, subjectID, 100, nil, policy)
	if err != nil {
		t.Fatal(err)
	}

	if err := RecordPayment(db, feeID, 40, policy); err != nil {
		t.Fatal(err)
	}
	fee, _ := GetFeeByID(db, feeID)
	if fee.Status != models.FeePartial || fee.Paid != 40 {
		t.Errorf("after first payment: %+v, want paid 40, partial", fee)
	}
	if got := fee.Outstanding(); got != 60 {
		t.Errorf("outstanding = %v, want 60", got)
	}

	if err := RecordPayment(db, feeID, 60, policy); err != nil {
		t.Fatal(err)
	}
	fee, _ = GetFeeByID(db, feeID)
	if fee.Status != models.FeePaid || fee.Paid != 100 {
		t.Errorf("after settling: %+v, want paid 100, paid", fee)
	}
}

func TestRecordPaymentValidation(t *testing.T) {
	db, studentID, subjectID := enrolledPair(t)
	policy := models.DefaultFeePolicy()

	feeID, err := UpsertFee(db, studentID, subjectID, 100, nil, policy)
	if err != nil {
		t.Fatal(err)
	}

	if err := RecordPayment(db, feeID, 0, policy); err == nil {
		t.Error("zero payment should be rejected")
	}
	if err := RecordPayment(db, feeID, -5, policy); err == nil {
		t.Error("negative payment should be rejected")
	}
	if err := RecordPayment(db, feeID+999, 10, policy); !models.IsNotFound(err) {
		t.Errorf("payment on missing fee: got %v, want NotFoundError", err)
	}
}

func TestRecordPaymentOverpayment(t *testing.T) {
	db, studentID, subjectID := enrolledPair(t)

	accepting := models.DefaultFeePolicy()
	feeID, err := UpsertFee(db, studentID, subjectID, 100, nil, accepting)
	if err != nil {
		t.Fatal(err)
	}
	if err := RecordPayment(db, feeID, 150, accepting); err != nil {
		t.Fatalf("overpayment under default policy: %v", err)
	}
	fee, _ := GetFeeByID(db, feeID)
	if fee.Status != models.FeePaid || fee.Paid != 150 {
		t.Errorf("overpaid fee = %+v, want paid 150, status paid", fee)
	}
	if got := fee.Outstanding(); got != 0 {
		t.Errorf("outstanding = %v, want 0", got)
	}
}

func TestRecordPaymentRejectOverpayment(t *testing.T) {
	db, studentID, subjectID := enrolledPair(t)

	strict := models.FeePolicy{RequireEnrollment: true, RejectOverpayment: true}
	feeID, err := UpsertFee(db, studentID, subjectID, 100, nil, strict)
	if err != nil {
		t.Fatal(err)
	}
	if err := RecordPayment(db, feeID, 150, strict); err == nil {
		t.Fatal("overpayment should be rejected under strict policy")
	}
	fee, _ := GetFeeByID(db, feeID)
	if fee.Paid != 0 {
		t.Errorf("rejected payment must not change paid: %v", fee.Paid)
	}
	if err := RecordPayment(db, feeID, 100, strict); err != nil {
		t.Fatalf("exact payment under strict policy: %v", err)
	}
}

// Re-pricing keeps the collected value, so lowering the amount below what
// was already paid flips the status without a payment event.
func TestUpsertFeeRepricing(t *testing.T) {
	db, studentID, subjectID := enrolledPair(t)
	policy := models.DefaultFeePolicy()

	feeID, err := UpsertFee(db, studentID, subjectID, 100, nil, policy)
	if err != nil {
		t.Fatal(err)
	}
	if err := RecordPayment(db, feeID, 80, policy); err != nil {
		t.Fatal(err)
	}

	if _, err := UpsertFee(db, studentID, subjectID, 50, nil, policy); err != nil {
		t.Fatal(err)
	}
	fee, _ := GetFeeByID(db, feeID)
	if fee.Status != models.FeePaid || fee.Paid != 80 || fee.Amount != 50 {
		t.Errorf("after repricing down: %+v, want amount 50, paid 80, status paid", fee)
	}

	if _, err := UpsertFee(db, studentID, subjectID, 200, nil, policy); err != nil {
		t.Fatal(err)
	}
	fee, _ = GetFeeByID(db, feeID)
	if fee.Status != models.FeePartial {
		t.Errorf("after repricing up: status = %v, want partial", fee.Status)
	}
}

func TestDeleteFeeMissingReportsNotFound(t *testing.T) {
	db, studentID, subjectID := enrolledPair(t)
	policy := models.DefaultFeePolicy()

	feeID, err := UpsertFee(db, studentID, subjectID, 100, nil, policy)
	if err != nil {
		t.Fatal(err)
	}
	if err := DeleteFee(db, feeID); err != nil {
		t.Fatal(err)
	}
	if err := DeleteFee(db, feeID); !models.IsNotFound(err) {
		t.Errorf("second delete: got %v, want NotFoundError", err)
	}
}

func TestListStudentFeesDefaults(t *testing.T) {
	db := testDB(t)
	student := mustCreateStudent(t, db, "alice")
	math := mustAddSubject(t, db, "Mathematics", nil)
	physics := mustAddSubject(t, db, "Physics", nil)
	mustEnroll(t, db, student.ID, math)
	mustEnroll(t, db, student.ID, physics)

	if _, err := UpsertFee(db, student.ID, math, 100, nil, models.DefaultFeePolicy()); err != nil {
		t.Fatal(err)
	}

	fees, err := ListStudentFees(db, student.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(fees) != 2 {
		t.Fatalf("rows = %d, want one per enrollment", len(fees))
	}

	// Ordered by subject name: Mathematics then Physics.
	if fees[0].FeeID == nil || fees[0].Amount != 100 {
		t.Errorf("billed enrollment row = %+v", fees[0])
	}
	if fees[1].FeeID != nil {
		t.Errorf("unbilled enrollment should have nil fee_id, got %v", *fees[1].FeeID)
	}
	if fees[1].Amount != models.DefaultFeeAmount || fees[1].Status != models.FeePending {
		t.Errorf("unbilled enrollment row = %+v, want default amount and pending", fees[1])
	}

	var persisted int
	if err := db.QueryRow(`SELECT COUNT(*) FROM fees`).Scan(&persisted); err != nil {
		t.Fatal(err)
	}
	if persisted != 1 {
		t.Errorf("fees rows = %d, want 1 (listing must not persist defaults)", persisted)
	}
}

func TestGetFeeStats(t *testing.T) {
	db := testDB(t)
	policy := models.DefaultFeePolicy()
	student := mustCreateStudent(t, db, "alice")
	math := mustAddSubject(t, db, "Mathematics", nil)
	physics := mustAddSubject(t, db, "Physics", nil)
	mustEnroll(t, db, student.ID, math)
	mustEnroll(t, db, student.ID, physics)

	mathFee, err := UpsertFee(db, student.ID, math, 100, nil, policy)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := UpsertFee(db, student.ID, physics, 50, nil, policy); err != nil {
		t.Fatal(err)
	}
	if err := RecordPayment(db, mathFee, 40, policy); err != nil {
		t.Fatal(err)
	}

	stats, err := GetFeeStats(db)
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalFees != 2 || stats.PendingFees != 1 || stats.PartialFees != 1 || stats.PaidFees != 0 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.TotalBilled != 150 || stats.TotalCollected != 40 {
		t.Errorf("billed/collected = %v/%v, want 150/40", stats.TotalBilled, stats.TotalCollected)
	}
}
