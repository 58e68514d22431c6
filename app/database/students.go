package database

import (
	"database/sql"
	"errors"

	"github.com/Boren168-g/Daa-Management-System/app/models"
)

// GetStudentByID returns a student with its detail row.
func GetStudentByID(db *sql.DB, studentID int) (*models.Student, error) {
	student := &models.Student{}
	err := db.QueryRow(
		`SELECT s.id, s.name, s.phone, s.gender, d.class, d.grade
		 FROM students s
		 LEFT JOIN student_details d ON s.id = d.id
		 WHERE s.id = $1`, studentID,
	).Scan(&student.ID, &student.Name, &student.Phone, &student.Gender, &student.Class, &student.Grade)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &models.NotFoundError{Entity: "student", ID: studentID}
	}
	if err != nil {
		return nil, &models.StoreUnavailableError{Op: "get student", Err: err}
	}
	return student, nil
}

// ListStudents returns all students, optionally filtered by a
// case-insensitive name search.
func ListStudents(db *sql.DB, search string) ([]*models.Student, error) {
	query := `SELECT s.id, s.name, s.phone, s.gender, d.class, d.grade
			  FROM students s
			  LEFT JOIN student_details d ON s.id = d.id`
	args := []interface{}{}
	if search != "" {
		query += ` WHERE s.name ILIKE $1`
		args = append(args, "%"+search+"%")
	}
	query += ` ORDER BY s.id`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, &models.StoreUnavailableError{Op: "list students", Err: err}
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		student := &models.Student{}
		if err := rows.Scan(&student.ID, &student.Name, &student.Phone,
			&student.Gender, &student.Class, &student.Grade); err != nil {
			return nil, &models.StoreUnavailableError{Op: "list students", Err: err}
		}
		students = append(students, student)
	}
	if err := rows.Err(); err != nil {
		return nil, &models.StoreUnavailableError{Op: "list students", Err: err}
	}
	return students, nil
}

// UpdateStudent rewrites the account and detail rows in one transaction.
// The password is re-hashed only when a new one is supplied.
func UpdateStudent(db *sql.DB, student *models.Student) error {
	if student.Gender != "" && !student.Gender.IsValid() {
		return &models.ValidationError{Field: "gender", Reason: "must be male, female or other"}
	}

	tx, err := db.Begin()
	if err != nil {
		return &models.StoreUnavailableError{Op: "update student", Err: err}
	}
	defer tx.Rollback()

	var result sql.Result
	if student.Password != "" {
		hashed, err := hashPassword(student.Password)
		if err != nil {
			return &models.StoreUnavailableError{Op: "update student", Err: err}
		}
		result, err = tx.Exec(
			`UPDATE students SET name = $1, phone = $2, gender = $3, password = $4 WHERE id = $5`,
			student.Name, student.Phone, string(student.Gender), hashed, student.ID,
		)
		if err != nil {
			return models.MapStoreError("update student", "student", err)
		}
	} else {
		result, err = tx.Exec(
			`UPDATE students SET name = $1, phone = $2, gender = $3 WHERE id = $4`,
			student.Name, student.Phone, string(student.Gender), student.ID,
		)
		if err != nil {
			return models.MapStoreError("update student", "student", err)
		}
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return &models.StoreUnavailableError{Op: "update student", Err: err}
	}
	if affected == 0 {
		return &models.NotFoundError{Entity: "student", ID: student.ID}
	}

	_, err = tx.Exec(
		`INSERT INTO student_details (id, class, grade) VALUES ($1, $2, $3)
		 ON CONFLICT (id) DO UPDATE SET class = EXCLUDED.class, grade = EXCLUDED.grade`,
		student.ID, student.Class, student.Grade,
	)
	if err != nil {
		return models.MapStoreError("update student", "student", err)
	}

	if err := tx.Commit(); err != nil {
		return &models.StoreUnavailableError{Op: "update student", Err: err}
	}
	return nil
}

// DeleteStudent removes the account row; the store cascades to the detail
// row, enrollments and fees, and nulls out any parent's child reference.
func DeleteStudent(db *sql.DB, studentID int) error {
	result, err := db.Exec(`DELETE FROM students WHERE id = $1`, studentID)
	if err != nil {
		return models.MapStoreError("delete student", "student", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return &models.StoreUnavailableError{Op: "delete student", Err: err}
	}
	if affected == 0 {
		return &models.NotFoundError{Entity: "student", ID: studentID}
	}
	return nil
}
