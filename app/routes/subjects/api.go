package subjects

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Boren168-g/Daa-Management-System/app/config"
	"github.com/Boren168-g/Daa-Management-System/app/database"
	"github.com/Boren168-g/Daa-Management-System/app/routes/helpers"
)

// SubjectRequest is the create/update payload.
type SubjectRequest struct {
	Name      string `json:"name" form:"name" validate:"required"`
	TeacherID *int   `json:"teacher_id" form:"teacher_id"`
}

// AssignTeacherRequest carries only the teacher reassignment. A null
// teacher_id unassigns the subject.
type AssignTeacherRequest struct {
	TeacherID *int `json:"teacher_id" form:"teacher_id"`
}

// EnrollRequest names the student to enroll in the subject.
type EnrollRequest struct {
	StudentID int `json:"student_id" form:"student_id" validate:"required"`
}

func GetSubjectsAPI(c *fiber.Ctx) error {
	subjects, err := database.ListSubjects(config.GetDB())
	if err != nil {
		return helpers.RespondError(c, err)
	}
	return c.JSON(fiber.Map{
		"subjects": subjects,
		"count":    len(subjects),
	})
}

func GetSubjectByIDAPI(c *fiber.Ctx) error {
	id, err := helpers.ParamID(c, "id")
	if err != nil {
		return helpers.RespondError(c, err)
	}
	subject, err := database.GetSubjectByID(config.GetDB(), id)
	if err != nil {
		return helpers.RespondError(c, err)
	}
	students, err := database.GetEnrolledStudents(config.GetDB(), id)
	if err != nil {
		return helpers.RespondError(c, err)
	}
	subject.EnrolledStudents = students
	subject.StudentCount = len(students)
	return c.JSON(subject)
}

func GetEnrolledStudentsAPI(c *fiber.Ctx) error {
	id, err := helpers.ParamID(c, "id")
	if err != nil {
		return helpers.RespondError(c, err)
	}
	students, err := database.GetEnrolledStudents(config.GetDB(), id)
	if err != nil {
		return helpers.RespondError(c, err)
	}
	return c.JSON(fiber.Map{
		"students": students,
		"count":    len(students),
	})
}

func CreateSubjectAPI(c *fiber.Ctx) error {
	var req SubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := helpers.ValidateStruct(&req); err != nil {
		return helpers.RespondError(c, err)
	}

	id, err := database.AddSubject(config.GetDB(), req.Name, req.TeacherID)
	if err != nil {
		return helpers.RespondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Subject created successfully",
		"id":      id,
	})
}

func UpdateSubjectAPI(c *fiber.Ctx) error {
	id, err := helpers.ParamID(c, "id")
	if err != nil {
		return helpers.RespondError(c, err)
	}

	var req SubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := helpers.ValidateStruct(&req); err != nil {
		return helpers.RespondError(c, err)
	}

	if err := database.UpdateSubject(config.GetDB(), id, req.Name, req.TeacherID); err != nil {
		return helpers.RespondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Subject updated successfully"})
}

func AssignTeacherAPI(c *fiber.Ctx) error {
	id, err := helpers.ParamID(c, "id")
	if err != nil {
		return helpers.RespondError(c, err)
	}

	var req AssignTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}

	if err := database.AssignTeacher(config.GetDB(), id, req.TeacherID); err != nil {
		return helpers.RespondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Teacher assigned successfully"})
}

func DeleteSubjectAPI(c *fiber.Ctx) error {
	id, err := helpers.ParamID(c, "id")
	if err != nil {
		return helpers.RespondError(c, err)
	}
	if err := database.DeleteSubject(config.GetDB(), id); err != nil {
		return helpers.RespondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Subject deleted successfully"})
}

func EnrollStudentAPI(c *fiber.Ctx) error {
	subjectID, err := helpers.ParamID(c, "id")
	if err != nil {
		return helpers.RespondError(c, err)
	}

	var req EnrollRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := helpers.ValidateStruct(&req); err != nil {
		return helpers.RespondError(c, err)
	}

	id, err := database.EnrollStudent(config.GetDB(), req.StudentID, subjectID)
	if err != nil {
		return helpers.RespondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Student enrolled successfully",
		"id":      id,
	})
}

func UnenrollStudentAPI(c *fiber.Ctx) error {
	subjectID, err := helpers.ParamID(c, "id")
	if err != nil {
		return helpers.RespondError(c, err)
	}
	studentID, err := helpers.ParamID(c, "student_id")
	if err != nil {
		return helpers.RespondError(c, err)
	}

	if err := database.UnenrollStudent(config.GetDB(), studentID, subjectID); err != nil {
		return helpers.RespondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Student unenrolled successfully"})
}
