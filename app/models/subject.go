package models

// Subject has at most one assigned teacher; a teacher may teach many
// subjects. TeacherID is nullable and survives teacher deletion as null.
type Subject struct {
	SubjectID   int     `json:"subject_id"`
	Name        string  `json:"name"`
	TeacherID   *int    `json:"teacher_id"`
	TeacherName *string `json:"teacher_name,omitempty"`

	// StudentCount and EnrolledStudents are populated by list queries.
	StudentCount     int               `json:"student_count"`
	EnrolledStudents []EnrolledStudent `json:"enrolled_students,omitempty"`
}

// EnrolledStudent is the minimal student view shown per subject.
type EnrolledStudent struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
