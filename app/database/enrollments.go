package database

import (
	"database/sql"

	"github.com/Boren168-g/Daa-Management-System/app/models"
)

// EnrollStudent creates the (student, subject) join record. A second
// enrollment for the same pair fails on the unique constraint and is
// reported as a DuplicateError.
func EnrollStudent(db *sql.DB, studentID, subjectID int) (int, error) {
	var id int
	err := db.QueryRow(
		`INSERT INTO enrollments (student_id, subject_id) VALUES ($1, $2)
		 RETURNING enrollment_id`,
		studentID, subjectID,
	).Scan(&id)
	if err != nil {
		return 0, models.MapStoreError("enroll student", "enrollment", err)
	}
	return id, nil
}

// UnenrollStudent removes the enrollment and any fee row for the pair in
// one transaction, preserving the "fee implies enrollment" invariant.
func UnenrollStudent(db *sql.DB, studentID, subjectID int) error {
	tx, err := db.Begin()
	if err != nil {
		return &models.StoreUnavailableError{Op: "unenroll student", Err: err}
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`DELETE FROM fees WHERE student_id = $1 AND subject_id = $2`,
		studentID, subjectID,
	); err != nil {
		return models.MapStoreError("unenroll student", "fee", err)
	}

	result, err := tx.Exec(
		`DELETE FROM enrollments WHERE student_id = $1 AND subject_id = $2`,
		studentID, subjectID,
	)
	if err != nil {
		return models.MapStoreError("unenroll student", "enrollment", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return &models.StoreUnavailableError{Op: "unenroll student", Err: err}
	}
	if affected == 0 {
		return &models.NotFoundError{Entity: "enrollment"}
	}

	if err := tx.Commit(); err != nil {
		return &models.StoreUnavailableError{Op: "unenroll student", Err: err}
	}
	return nil
}

// ListStudentEnrollments returns a student's enrollments with subject names.
func ListStudentEnrollments(db *sql.DB, studentID int) ([]*models.Enrollment, error) {
	rows, err := db.Query(
		`SELECT e.enrollment_id, e.student_id, e.subject_id, s.name, e.enrolled_at
		 FROM enrollments e
		 INNER JOIN subjects s ON e.subject_id = s.subject_id
		 WHERE e.student_id = $1
		 ORDER BY s.name`, studentID)
	if err != nil {
		return nil, &models.StoreUnavailableError{Op: "list enrollments", Err: err}
	}
	defer rows.Close()

	enrollments := []*models.Enrollment{}
	for rows.Next() {
		enrollment := &models.Enrollment{}
		if err := rows.Scan(&enrollment.EnrollmentID, &enrollment.StudentID,
			&enrollment.SubjectID, &enrollment.SubjectName, &enrollment.EnrolledAt); err != nil {
			return nil, &models.StoreUnavailableError{Op: "list enrollments", Err: err}
		}
		enrollments = append(enrollments, enrollment)
	}
	if err := rows.Err(); err != nil {
		return nil, &models.StoreUnavailableError{Op: "list enrollments", Err: err}
	}
	return enrollments, nil
}
