package database

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/Boren168-g/Daa-Management-System/app/models"
)

// AddSubject creates a subject, optionally assigned to a teacher. A nil
// teacherID leaves the subject unassigned.
func AddSubject(db *sql.DB, name string, teacherID *int) (int, error) {
	if strings.TrimSpace(name) == "" {
		return 0, &models.ValidationError{Field: "name", Reason: "is required"}
	}

	var id int
	err := db.QueryRow(
		`INSERT INTO subjects (name, teacher_id) VALUES ($1, $2) RETURNING subject_id`,
		name, teacherID,
	).Scan(&id)
	if err != nil {
		return 0, models.MapStoreError("add subject", "subject", err)
	}
	return id, nil
}

// GetSubjectByID returns a single subject with its teacher name.
func GetSubjectByID(db *sql.DB, subjectID int) (*models.Subject, error) {
	subject := &models.Subject{}
	err := db.QueryRow(
		`SELECT s.subject_id, s.name, s.teacher_id, t.name
		 FROM subjects s
		 LEFT JOIN teachers t ON s.teacher_id = t.id
		 WHERE s.subject_id = $1`, subjectID,
	).Scan(&subject.SubjectID, &subject.Name, &subject.TeacherID, &subject.TeacherName)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &models.NotFoundError{Entity: "subject", ID: subjectID}
	}
	if err != nil {
		return nil, &models.StoreUnavailableError{Op: "get subject", Err: err}
	}
	return subject, nil
}

// ListSubjects returns all subjects with teacher names and enrolled-student
// counts.
func ListSubjects(db *sql.DB) ([]*models.Subject, error) {
	rows, err := db.Query(
		`SELECT s.subject_id, s.name, s.teacher_id, t.name,
		        COUNT(e.student_id) AS student_count
		 FROM subjects s
		 LEFT JOIN teachers t ON s.teacher_id = t.id
		 LEFT JOIN enrollments e ON s.subject_id = e.subject_id
		 GROUP BY s.subject_id, s.name, s.teacher_id, t.name
		 ORDER BY s.subject_id`)
	if err != nil {
		return nil, &models.StoreUnavailableError{Op: "list subjects", Err: err}
	}
	defer rows.Close()

	subjects := []*models.Subject{}
	for rows.Next() {
		subject := &models.Subject{}
		if err := rows.Scan(&subject.SubjectID, &subject.Name, &subject.TeacherID,
			&subject.TeacherName, &subject.StudentCount); err != nil {
			return nil, &models.StoreUnavailableError{Op: "list subjects", Err: err}
		}
		subjects = append(subjects, subject)
	}
	if err := rows.Err(); err != nil {
		return nil, &models.StoreUnavailableError{Op: "list subjects", Err: err}
	}
	return subjects, nil
}

// GetEnrolledStudents returns the students enrolled in a subject, by name.
func GetEnrolledStudents(db *sql.DB, subjectID int) ([]models.EnrolledStudent, error) {
	rows, err := db.Query(
		`SELECT s.id, s.name
		 FROM students s
		 INNER JOIN enrollments e ON s.id = e.student_id
		 WHERE e.subject_id = $1
		 ORDER BY s.name`, subjectID)
	if err != nil {
		return nil, &models.StoreUnavailableError{Op: "get enrolled students", Err: err}
	}
	defer rows.Close()

	students := []models.EnrolledStudent{}
	for rows.Next() {
		var student models.EnrolledStudent
		if err := rows.Scan(&student.ID, &student.Name); err != nil {
			return nil, &models.StoreUnavailableError{Op: "get enrolled students", Err: err}
		}
		students = append(students, student)
	}
	if err := rows.Err(); err != nil {
		return nil, &models.StoreUnavailableError{Op: "get enrolled students", Err: err}
	}
	return students, nil
}

// UpdateSubject renames a subject and reassigns (or clears) its teacher.
func UpdateSubject(db *sql.DB, subjectID int, name string, teacherID *int) error {
	if strings.TrimSpace(name) == "" {
		return &models.ValidationError{Field: "name", Reason: "is required"}
	}

	result, err := db.Exec(
		`UPDATE subjects SET name = $1, teacher_id = $2 WHERE subject_id = $3`,
		name, teacherID, subjectID,
	)
	if err != nil {
		return models.MapStoreError("update subject", "subject", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return &models.StoreUnavailableError{Op: "update subject", Err: err}
	}
	if affected == 0 {
		return &models.NotFoundError{Entity: "subject", ID: subjectID}
	}
	return nil
}

// AssignTeacher changes only the subject's teacher; a nil teacherID
// unassigns it.
func AssignTeacher(db *sql.DB, subjectID int, teacherID *int) error {
	result, err := db.Exec(
		`UPDATE subjects SET teacher_id = $1 WHERE subject_id = $2`,
		teacherID, subjectID,
	)
	if err != nil {
		return models.MapStoreError("assign teacher", "subject", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return &models.StoreUnavailableError{Op: "assign teacher", Err: err}
	}
	if affected == 0 {
		return &models.NotFoundError{Entity: "subject", ID: subjectID}
	}
	return nil
}

// DeleteSubject removes a subject; the store cascades its enrollments and
// fees away.
func DeleteSubject(db *sql.DB, subjectID int) error {
	result, err := db.Exec(`DELETE FROM subjects WHERE subject_id = $1`, subjectID)
	if err != nil {
		return models.MapStoreError("delete subject", "subject", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return &models.StoreUnavailableError{Op: "delete subject", Err: err}
	}
	if affected == 0 {
		return &models.NotFoundError{Entity: "subject", ID: subjectID}
	}
	return nil
}
