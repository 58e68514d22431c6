package models

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
)

func TestMapStoreErrorNil(t *testing.T) {
	if err := MapStoreError("op", "student", nil); err != nil {
		t.Errorf("nil error should map to nil, got %v", err)
	}
}

func TestMapStoreErrorNoRows(t *testing.T) {
	err := MapStoreError("get student", "student", sql.ErrNoRows)
	if !IsNotFound(err) {
		t.Fatalf("sql.ErrNoRows should map to NotFoundError, got %T", err)
	}
}

func TestMapStoreErrorUniqueViolation(t *testing.T) {
	pqErr := &pq.Error{Code: "23505", Constraint: "students_name_key"}
	err := MapStoreError("create student", "student", pqErr)

	var dup *DuplicateError
	if !errors.As(err, &dup) {
		t.Fatalf("23505 should map to DuplicateError, got %T", err)
	}
	if dup.Field != "name" {
		t.Errorf("constraint field = %q, want %q", dup.Field, "name")
	}
}

func TestMapStoreErrorEnrollmentPair(t *testing.T) {
	pqErr := &pq.Error{Code: "23505", Constraint: "enrollments_student_id_subject_id_key"}
	err := MapStoreError("enroll student", "enrollment", pqErr)

	var dup *DuplicateError
	if !errors.As(err, &dup) {
		t.Fatalf("want DuplicateError, got %T", err)
	}
	if dup.Field != "student/subject pair" {
		t.Errorf("constraint field = %q", dup.Field)
	}
}

func TestMapStoreErrorForeignKeyViolation(t *testing.T) {
	tests := []struct {
		constraint string
		wantEntity string
	}{
		{"fk_enrollment_student", "student"},
		{"fk_enrollment_subject", "subject"},
		{"fk_parent_child", "student"},
		{"fk_schedule_teacher", "teacher"},
		{"unknown_constraint", "enrollment"},
	}
	for _, tt := range tests {
		t.Run(tt.constraint, func(t *testing.T) {
			pqErr := &pq.Error{Code: "23503", Constraint: tt.constraint}
			err := MapStoreError("op", "enrollment", pqErr)

			var nf *NotFoundError
			if !errors.As(err, &nf) {
				t.Fatalf("23503 should map to NotFoundError, got %T", err)
			}
			if nf.Entity != tt.wantEntity {
				t.Errorf("entity = %q, want %q", nf.Entity, tt.wantEntity)
			}
		})
	}
}

func TestMapStoreErrorUnknown(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := MapStoreError("list students", "student", cause)

	var unavailable *StoreUnavailableError
	if !errors.As(err, &unavailable) {
		t.Fatalf("unknown errors should map to StoreUnavailableError, got %T", err)
	}
	if !errors.Is(err, cause) {
		t.Error("StoreUnavailableError should wrap the cause")
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&NotFoundError{Entity: "student", ID: 7}, "student 7 not found"},
		{&NotFoundError{Entity: "enrollment"}, "enrollment not found"},
		{&DuplicateError{Entity: "teacher", Field: "name"}, "teacher with this name already exists"},
		{&DuplicateError{Entity: "fee"}, "fee already exists"},
		{&InvalidCredentialsError{}, "invalid credentials"},
		{&ValidationError{Field: "amount", Reason: "must not be negative"}, "amount: must not be negative"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}
