package database

import (
	"database/sql"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/Boren168-g/Daa-Management-System/app/models"
)

// hashPassword hashes a password using bcrypt.
func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

func checkPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func validateNamePassword(name, password string) error {
	if strings.TrimSpace(name) == "" {
		return &models.ValidationError{Field: "name", Reason: "is required"}
	}
	if password == "" {
		return &models.ValidationError{Field: "password", Reason: "is required"}
	}
	return nil
}

// CreateAdministrator inserts a new administrator account. Duplicate names
// surface as a DuplicateError from the unique constraint.
func CreateAdministrator(db *sql.DB, name, password string) (int, error) {
	if err := validateNamePassword(name, password); err != nil {
		return 0, err
	}
	hashed, err := hashPassword(password)
	if err != nil {
		return 0, &models.StoreUnavailableError{Op: "create administrator", Err: err}
	}

	var id int
	err = db.QueryRow(
		`INSERT INTO administrators (name, password) VALUES ($1, $2) RETURNING id`,
		name, hashed,
	).Scan(&id)
	if err != nil {
		return 0, models.MapStoreError("create administrator", "administrator", err)
	}
	return id, nil
}

// CreateTeacher inserts a new teacher account and fills in the generated id.
func CreateTeacher(db *sql.DB, teacher *models.Teacher) error {
	if err := validateNamePassword(teacher.Name, teacher.Password); err != nil {
		return err
	}
	if teacher.Gender == "" {
		teacher.Gender = models.Other
	}
	if !teacher.Gender.IsValid() {
		return &models.ValidationError{Field: "gender", Reason: "must be male, female or other"}
	}
	hashed, err := hashPassword(teacher.Password)
	if err != nil {
		return &models.StoreUnavailableError{Op: "create teacher", Err: err}
	}

	err = db.QueryRow(
		`INSERT INTO teachers (name, password, phone, gender) VALUES ($1, $2, $3, $4) RETURNING id`,
		teacher.Name, hashed, teacher.Phone, string(teacher.Gender),
	).Scan(&teacher.ID)
	if err != nil {
		return models.MapStoreError("create teacher", "teacher", err)
	}
	return nil
}

// CreateStudent inserts the account row and its detail row in one
// transaction: both rows or neither.
func CreateStudent(db *sql.DB, student *models.Student) error {
	if err := validateNamePassword(student.Name, student.Password); err != nil {
		return err
	}
	if student.Gender == "" {
		student.Gender = models.Other
	}
	if !student.Gender.IsValid() {
		return &models.ValidationError{Field: "gender", Reason: "must be male, female or other"}
	}
	hashed, err := hashPassword(student.Password)
	if err != nil {
		return &models.StoreUnavailableError{Op: "create student", Err: err}
	}

	tx, err := db.Begin()
	if err != nil {
		return &models.StoreUnavailableError{Op: "create student", Err: err}
	}
	defer tx.Rollback()

	err = tx.QueryRow(
		`INSERT INTO students (name, password, phone, gender) VALUES ($1, $2, $3, $4) RETURNING id`,
		student.Name, hashed, student.Phone, string(student.Gender),
	).Scan(&student.ID)
	if err != nil {
		return models.MapStoreError("create student", "student", err)
	}

	_, err = tx.Exec(
		`INSERT INTO student_details (id, class, grade) VALUES ($1, $2, $3)`,
		student.ID, student.Class, student.Grade,
	)
	if err != nil {
		return models.MapStoreError("create student", "student", err)
	}

	if err := tx.Commit(); err != nil {
		return &models.StoreUnavailableError{Op: "create student", Err: err}
	}
	return nil
}

// CreateParent registers a parent account, optionally linked to an existing
// child. The child FK and the unique child_id constraint report missing
// students and second parents respectively.
func CreateParent(db *sql.DB, password string, childID *int) (int, error) {
	if password == "" {
		return 0, &models.ValidationError{Field: "password", Reason: "is required"}
	}
	hashed, err := hashPassword(password)
	if err != nil {
		return 0, &models.StoreUnavailableError{Op: "create parent", Err: err}
	}

	var id int
	err = db.QueryRow(
		`INSERT INTO parents (password, child_id) VALUES ($1, $2) RETURNING id`,
		hashed, childID,
	).Scan(&id)
	if err != nil {
		return 0, models.MapStoreError("create parent", "parent", err)
	}
	return id, nil
}

// Authenticate verifies credentials for any role. The identifier is the
// account name for administrators, teachers and students, and the numeric
// parent id for parents. Failures never reveal which half was wrong.
func Authenticate(db *sql.DB, role models.Role, identifier, password string) (*models.Identity, error) {
	switch role {
	case models.RoleAdministrator:
		return authenticateNamed(db, "administrators", models.RoleAdministrator, identifier, password)
	case models.RoleTeacher:
		return authenticateNamed(db, "teachers", models.RoleTeacher, identifier, password)
	case models.RoleStudent:
		return authenticateNamed(db, "students", models.RoleStudent, identifier, password)
	case models.RoleParent:
		return AuthenticateParent(db, identifier, password)
	}
	return nil, &models.ValidationError{Field: "role", Reason: "unknown role"}
}

func authenticateNamed(db *sql.DB, table string, role models.Role, name, password string) (*models.Identity, error) {
	var (
		id     int
		dbName string
		hash   string
	)
	err := db.QueryRow(
		`SELECT id, name, password FROM `+table+` WHERE name = $1`, name,
	).Scan(&id, &dbName, &hash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &models.InvalidCredentialsError{}
	}
	if err != nil {
		return nil, &models.StoreUnavailableError{Op: "authenticate", Err: err}
	}
	if !checkPassword(password, hash) {
		return nil, &models.InvalidCredentialsError{}
	}
	return &models.Identity{ID: id, Role: role, Name: dbName}, nil
}

// AuthenticateParent signs a parent in by its numeric id.
func AuthenticateParent(db *sql.DB, identifier, password string) (*models.Identity, error) {
	parentID, err := parseID(identifier)
	if err != nil {
		return nil, &models.InvalidCredentialsError{}
	}

	var hash string
	err = db.QueryRow(`SELECT password FROM parents WHERE id = $1`, parentID).Scan(&hash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &models.InvalidCredentialsError{}
	}
	if err != nil {
		return nil, &models.StoreUnavailableError{Op: "authenticate parent", Err: err}
	}
	if !checkPassword(password, hash) {
		return nil, &models.InvalidCredentialsError{}
	}
	return &models.Identity{ID: parentID, Role: models.RoleParent, Name: parentDisplayName(parentID)}, nil
}

// ChangePassword verifies the current password and replaces it for any of
// the three named-account roles.
func ChangePassword(db *sql.DB, role models.Role, id int, current, next string) error {
	if next == "" {
		return &models.ValidationError{Field: "new_password", Reason: "is required"}
	}
	table, err := roleTable(role)
	if err != nil {
		return err
	}

	var hash string
	err = db.QueryRow(`SELECT password FROM `+table+` WHERE id = $1`, id).Scan(&hash)
	if errors.Is(err, sql.ErrNoRows) {
		return &models.NotFoundError{Entity: string(role), ID: id}
	}
	if err != nil {
		return &models.StoreUnavailableError{Op: "change password", Err: err}
	}
	if !checkPassword(current, hash) {
		return &models.InvalidCredentialsError{}
	}

	hashed, err := hashPassword(next)
	if err != nil {
		return &models.StoreUnavailableError{Op: "change password", Err: err}
	}
	_, err = db.Exec(`UPDATE `+table+` SET password = $1 WHERE id = $2`, hashed, id)
	if err != nil {
		return models.MapStoreError("change password", string(role), err)
	}
	return nil
}

func roleTable(role models.Role) (string, error) {
	switch role {
	case models.RoleAdministrator:
		return "administrators", nil
	case models.RoleTeacher:
		return "teachers", nil
	case models.RoleStudent:
		return "students", nil
	case models.RoleParent:
		return "parents", nil
	}
	return "", &models.ValidationError{Field: "role", Reason: "unknown role"}
}
