package database

import (
	"database/sql"
	"errors"

	"github.com/Boren168-g/Daa-Management-System/app/models"
)

// GetTeacherByID returns a single teacher.
func GetTeacherByID(db *sql.DB, teacherID int) (*models.Teacher, error) {
	teacher := &models.Teacher{}
	err := db.QueryRow(
		`SELECT id, name, phone, gender FROM teachers WHERE id = $1`, teacherID,
	).Scan(&teacher.ID, &teacher.Name, &teacher.Phone, &teacher.Gender)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &models.NotFoundError{Entity: "teacher", ID: teacherID}
	}
	if err != nil {
		return nil, &models.StoreUnavailableError{Op: "get teacher", Err: err}
	}
	return teacher, nil
}

// ListTeachers returns all teachers with their assigned subject names
// aggregated into a comma-separated string.
func ListTeachers(db *sql.DB) ([]*models.Teacher, error) {
	rows, err := db.Query(
		`SELECT t.id, t.name, t.phone, t.gender,
		        COALESCE(STRING_AGG(s.name, ', ' ORDER BY s.name), '') AS subjects
		 FROM teachers t
		 LEFT JOIN subjects s ON t.id = s.teacher_id
		 GROUP BY t.id, t.name, t.phone, t.gender
		 ORDER BY t.name`)
	if err != nil {
		return nil, &models.StoreUnavailableError{Op: "list teachers", Err: err}
	}
	defer rows.Close()

	teachers := []*models.Teacher{}
	for rows.Next() {
		teacher := &models.Teacher{}
		if err := rows.Scan(&teacher.ID, &teacher.Name, &teacher.Phone,
			&teacher.Gender, &teacher.Subjects); err != nil {
			return nil, &models.StoreUnavailableError{Op: "list teachers", Err: err}
		}
		teachers = append(teachers, teacher)
	}
	if err := rows.Err(); err != nil {
		return nil, &models.StoreUnavailableError{Op: "list teachers", Err: err}
	}
	return teachers, nil
}

// UpdateTeacher rewrites a teacher's fields. The password is re-hashed only
// when a new one is supplied.
func UpdateTeacher(db *sql.DB, teacher *models.Teacher) error {
	if teacher.Gender != "" && !teacher.Gender.IsValid() {
		return &models.ValidationError{Field: "gender", Reason: "must be male, female or other"}
	}

	var (
		result sql.Result
		err    error
	)
	if teacher.Password != "" {
		var hashed string
		hashed, err = hashPassword(teacher.Password)
		if err != nil {
			return &models.StoreUnavailableError{Op: "update teacher", Err: err}
		}
		result, err = db.Exec(
			`UPDATE teachers SET name = $1, phone = $2, gender = $3, password = $4 WHERE id = $5`,
			teacher.Name, teacher.Phone, string(teacher.Gender), hashed, teacher.ID,
		)
	} else {
		result, err = db.Exec(
			`UPDATE teachers SET name = $1, phone = $2, gender = $3 WHERE id = $4`,
			teacher.Name, teacher.Phone, string(teacher.Gender), teacher.ID,
		)
	}
	if err != nil {
		return models.MapStoreError("update teacher", "teacher", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return &models.StoreUnavailableError{Op: "update teacher", Err: err}
	}
	if affected == 0 {
		return &models.NotFoundError{Entity: "teacher", ID: teacher.ID}
	}
	return nil
}

// DeleteTeacher removes the teacher; the store cascades its schedules away
// and nulls teacher_id on any subject it owned.
func DeleteTeacher(db *sql.DB, teacherID int) error {
	result, err := db.Exec(`DELETE FROM teachers WHERE id = $1`, teacherID)
	if err != nil {
		return models.MapStoreError("delete teacher", "teacher", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return &models.StoreUnavailableError{Op: "delete teacher", Err: err}
	}
	if affected == 0 {
		return &models.NotFoundError{Entity: "teacher", ID: teacherID}
	}
	return nil
}
