package models

import "time"

// Enrollment is the join record authorizing a student to be billed and
// scheduled for a subject. Unique per (student, subject).
type Enrollment struct {
	EnrollmentID int       `json:"enrollment_id"`
	StudentID    int       `json:"student_id"`
	SubjectID    int       `json:"subject_id"`
	SubjectName  string    `json:"subject_name,omitempty"`
	EnrolledAt   time.Time `json:"enrolled_at"`
}
