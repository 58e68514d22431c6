package models

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// Error kinds surfaced by the core. Every store failure maps onto exactly
// one of these; nothing here is fatal to the process.

// NotFoundError reports an operation against a row that does not exist.
type NotFoundError struct {
	Entity string
	ID     int
}

func (e *NotFoundError) Error() string {
	if e.ID != 0 {
		return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Entity)
}

// DuplicateError reports a unique-constraint violation (duplicate name,
// duplicate enrollment pair, duplicate fee pair).
type DuplicateError struct {
	Entity string
	Field  string
}

func (e *DuplicateError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s with this %s already exists", e.Entity, e.Field)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// InvalidCredentialsError is returned on any authentication failure without
// revealing whether the identifier or the password was wrong.
type InvalidCredentialsError struct{}

func (e *InvalidCredentialsError) Error() string {
	return "invalid credentials"
}

// ValidationError reports malformed input rejected before any store
// mutation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Reason)
	}
	return e.Reason
}

// StoreUnavailableError wraps connection or transaction failures from the
// underlying store. Partial writes are rolled back before it is returned.
type StoreUnavailableError struct {
	Op  string
	Err error
}

func (e *StoreUnavailableError) Error() string {
	return fmt.Sprintf("store unavailable during %s: %v", e.Op, e.Err)
}

func (e *StoreUnavailableError) Unwrap() error {
	return e.Err
}

// PostgreSQL SQLSTATE codes the core cares about.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// MapStoreError translates a driver error into the taxonomy above. The
// store's own constraint enforcement is the source of truth for duplicates
// and dangling references; application code never pre-checks and races.
func MapStoreError(op, entity string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return &NotFoundError{Entity: entity}
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case pgUniqueViolation:
			return &DuplicateError{Entity: entity, Field: constraintField(pqErr.Constraint)}
		case pgForeignKeyViolation:
			return &NotFoundError{Entity: referencedEntity(pqErr.Constraint, entity)}
		}
	}
	return &StoreUnavailableError{Op: op, Err: err}
}

// constraintField guesses the offending field from the constraint name so
// the duplicate message can say "name" instead of the raw constraint.
func constraintField(constraint string) string {
	switch constraint {
	case "administrators_name_key", "teachers_name_key", "students_name_key",
		"subjects_name_key":
		return "name"
	case "enrollments_student_id_subject_id_key", "fees_student_id_subject_id_key":
		return "student/subject pair"
	case "parents_child_id_key":
		return "child"
	}
	return ""
}

// referencedEntity resolves a foreign-key violation to the entity whose row
// is missing.
func referencedEntity(constraint, fallback string) string {
	switch constraint {
	case "fk_parent_child", "fk_enrollment_student", "fk_fee_student", "fk_student_detail":
		return "student"
	case "fk_subject_teacher", "fk_schedule_teacher":
		return "teacher"
	case "fk_enrollment_subject", "fk_fee_subject":
		return "subject"
	}
	return fallback
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsDuplicate reports whether err is (or wraps) a DuplicateError.
func IsDuplicate(err error) bool {
	var dup *DuplicateError
	return errors.As(err, &dup)
}
