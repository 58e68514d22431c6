package database

import (
	"database/sql"
	"os"
	"testing"

	_ "github.com/lib/pq"

	"github.com/Boren168-g/Daa-Management-System/app/models"
)

// testDB opens the database named by TEST_DATABASE_URL, applies migrations
// and wipes all rows. Tests are skipped when the variable is unset.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.Ping(); err != nil {
		t.Fatalf("ping test database: %v", err)
	}
	if err := RunMigrations(db); err != nil {
		t.Fatalf("run migrations: %v", err)
	}

	_, err = db.Exec(`TRUNCATE administrators, teachers, students, student_details,
		parents, subjects, schedules, enrollments, fees RESTART IDENTITY CASCADE`)
	if err != nil {
		t.Fatalf("truncate tables: %v", err)
	}
	return db
}

func mustCreateTeacher(t *testing.T, db *sql.DB, name string) *models.Teacher {
	t.Helper()
	teacher := &models.Teacher{Name: name, Password: "secret123", Gender: models.Male}
	if err := CreateTeacher(db, teacher); err != nil {
		t.Fatalf("create teacher %s: %v", name, err)
	}
	return teacher
}

func mustCreateStudent(t *testing.T, db *sql.DB, name string) *models.Student {
	t.Helper()
	class := "S1"
	student := &models.Student{Name: name, Password: "secret123", Gender: models.Female, Class: &class}
	if err := CreateStudent(db, student); err != nil {
		t.Fatalf("create student %s: %v", name, err)
	}
	return student
}

func mustAddSubject(t *testing.T, db *sql.DB, name string, teacherID *int) int {
	t.Helper()
	id, err := AddSubject(db, name, teacherID)
	if err != nil {
		t.Fatalf("add subject %s: %v", name, err)
	}
	return id
}

func mustEnroll(t *testing.T, db *sql.DB, studentID, subjectID int) {
	t.Helper()
	if _, err := EnrollStudent(db, studentID, subjectID); err != nil {
		t.Fatalf("enroll student %d in subject %d: %v", studentID, subjectID, err)
	}
}
