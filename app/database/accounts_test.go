package database

import (
	"strconv"
	"testing"

	"github.com/Boren168-g/Daa-Management-System/app/models"
)

func TestCreateAdministratorDuplicateName(t *testing.T) {
	db := testDB(t)

	if _, err := CreateAdministrator(db, "head", "secret123"); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := CreateAdministrator(db, "head", "different456")
	if !models.IsDuplicate(err) {
		t.Fatalf("second create with same name: got %v, want DuplicateError", err)
	}
}

func TestCreateStudentWritesDetailRow(t *testing.T) {
	db := testDB(t)

	student := mustCreateStudent(t, db, "alice")

	got, err := GetStudentByID(db, student.ID)
	if err != nil {
		t.Fatalf("get student: %v", err)
	}
	if got.Class == nil || *got.Class != "S1" {
		t.Errorf("detail row not joined: class = %v", got.Class)
	}
}

func TestCreateStudentDuplicateLeavesNoDetailRow(t *testing.T) {
	db := testDB(t)

	mustCreateStudent(t, db, "alice")

	student := &models.Student{Name: "alice", Password: "secret123"}
	if err := CreateStudent(db, student); !models.IsDuplicate(err) {
		t.Fatalf("duplicate student: got %v, want DuplicateError", err)
	}

	var details int
	if err := db.QueryRow(`SELECT COUNT(*) FROM student_details`).Scan(&details); err != nil {
		t.Fatal(err)
	}
	if details != 1 {
		t.Errorf("student_details rows = %d, want 1 (failed create must not leave a row)", details)
	}
}

func TestAuthenticate(t *testing.T) {
	db := testDB(t)
	mustCreateTeacher(t, db, "mr-okello")

	identity, err := Authenticate(db, models.RoleTeacher, "mr-okello", "secret123")
	if err != nil {
		t.Fatalf("valid login: %v", err)
	}
	if identity.Role != models.RoleTeacher || identity.Name != "mr-okello" {
		t.Errorf("identity = %+v", identity)
	}

	if _, err := Authenticate(db, models.RoleTeacher, "mr-okello", "wrong"); err == nil {
		t.Fatal("wrong password should fail")
	} else if _, ok := err.(*models.InvalidCredentialsError); !ok {
		t.Errorf("wrong password: got %T, want InvalidCredentialsError", err)
	}

	if _, err := Authenticate(db, models.RoleTeacher, "nobody", "secret123"); err == nil {
		t.Fatal("unknown name should fail")
	} else if _, ok := err.(*models.InvalidCredentialsError); !ok {
		t.Errorf("unknown name: got %T, want InvalidCredentialsError", err)
	}
}

func TestAuthenticateParentByID(t *testing.T) {
	db := testDB(t)
	student := mustCreateStudent(t, db, "alice")

	parentID, err := CreateParent(db, "parentpass", &student.ID)
	if err != nil {
		t.Fatalf("create parent: %v", err)
	}

	identity, err := Authenticate(db, models.RoleParent, strconv.Itoa(parentID), "parentpass")
	if err != nil {
		t.Fatalf("parent login: %v", err)
	}
	if identity.ID != parentID || identity.Role != models.RoleParent {
		t.Errorf("identity = %+v", identity)
	}

	if _, err := Authenticate(db, models.RoleParent, "not-a-number", "parentpass"); err == nil {
		t.Fatal("non-numeric parent identifier should fail")
	}
}

func TestCreateParentConstraints(t *testing.T) {
	db := testDB(t)
	student := mustCreateStudent(t, db, "alice")

	if _, err := CreateParent(db, "pass1", &student.ID); err != nil {
		t.Fatalf("first parent: %v", err)
	}
	if _, err := CreateParent(db, "pass2", &student.ID); !models.IsDuplicate(err) {
		t.Fatalf("second parent for same child: got %v, want DuplicateError", err)
	}

	missing := student.ID + 999
	if _, err := CreateParent(db, "pass3", &missing); !models.IsNotFound(err) {
		t.Fatalf("parent for missing child: got %v, want NotFoundError", err)
	}

	if _, err := CreateParent(db, "pass4", nil); err != nil {
		t.Fatalf("parent without child: %v", err)
	}
}

func TestChangePassword(t *testing.T) {
	db := testDB(t)
	teacher := mustCreateTeacher(t, db, "mr-okello")

	if err := ChangePassword(db, models.RoleTeacher, teacher.ID, "wrong", "next456"); err == nil {
		t.Fatal("wrong current password should fail")
	}
	if err := ChangePassword(db, models.RoleTeacher, teacher.ID, "secret123", "next456"); err != nil {
		t.Fatalf("change password: %v", err)
	}
	if _, err := Authenticate(db, models.RoleTeacher, "mr-okello", "next456"); err != nil {
		t.Fatalf("login with new password: %v", err)
	}
}
