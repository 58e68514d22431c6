package students

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Boren168-g/Daa-Management-System/app/config"
	"github.com/Boren168-g/Daa-Management-System/app/database"
	"github.com/Boren168-g/Daa-Management-System/app/models"
	"github.com/Boren168-g/Daa-Management-System/app/routes/helpers"
)

// StudentRequest is the create/update payload.
type StudentRequest struct {
	Name     string `json:"name" form:"name" validate:"required"`
	Password string `json:"password" form:"password"`
	Phone    string `json:"phone" form:"phone"`
	Gender   string `json:"gender" form:"gender"`
	Class    string `json:"class" form:"class"`
	Grade    string `json:"grade" form:"grade"`
}

func (r *StudentRequest) toModel() *models.Student {
	gender := models.Gender(r.Gender)
	if r.Gender == "" {
		gender = models.Other
	}
	return &models.Student{
		Name:     r.Name,
		Password: r.Password,
		Phone:    optional(r.Phone),
		Gender:   gender,
		Class:    optional(r.Class),
		Grade:    optional(r.Grade),
	}
}

func GetStudentsAPI(c *fiber.Ctx) error {
	students, err := database.ListStudents(config.GetDB(), c.Query("q"))
	if err != nil {
		return helpers.RespondError(c, err)
	}
	return c.JSON(fiber.Map{
		"students": students,
		"count":    len(students),
	})
}

func GetStudentByIDAPI(c *fiber.Ctx) error {
	id, err := helpers.ParamID(c, "id")
	if err != nil {
		return helpers.RespondError(c, err)
	}
	student, err := database.GetStudentByID(config.GetDB(), id)
	if err != nil {
		return helpers.RespondError(c, err)
	}
	return c.JSON(student)
}

func GetStudentFeesAPI(c *fiber.Ctx) error {
	id, err := helpers.ParamID(c, "id")
	if err != nil {
		return helpers.RespondError(c, err)
	}
	fees, err := database.ListStudentFees(config.GetDB(), id)
	if err != nil {
		return helpers.RespondError(c, err)
	}
	return c.JSON(fiber.Map{
		"fees":  fees,
		"count": len(fees),
	})
}

func GetStudentEnrollmentsAPI(c *fiber.Ctx) error {
	id, err := helpers.ParamID(c, "id")
	if err != nil {
		return helpers.RespondError(c, err)
	}
	enrollments, err := database.ListStudentEnrollments(config.GetDB(), id)
	if err != nil {
		return helpers.RespondError(c, err)
	}
	return c.JSON(fiber.Map{
		"enrollments": enrollments,
		"count":       len(enrollments),
	})
}

func CreateStudentAPI(c *fiber.Ctx) error {
	var req StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := helpers.ValidateStruct(&req); err != nil {
		return helpers.RespondError(c, err)
	}

	student := req.toModel()
	if err := database.CreateStudent(config.GetDB(), student); err != nil {
		return helpers.RespondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Student created successfully",
		"student": student,
	})
}

func UpdateStudentAPI(c *fiber.Ctx) error {
	id, err := helpers.ParamID(c, "id")
	if err != nil {
		return helpers.RespondError(c, err)
	}

	var req StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := helpers.ValidateStruct(&req); err != nil {
		return helpers.RespondError(c, err)
	}

	student := req.toModel()
	student.ID = id
	if err := database.UpdateStudent(config.GetDB(), student); err != nil {
		return helpers.RespondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Student updated successfully"})
}

func DeleteStudentAPI(c *fiber.Ctx) error {
	id, err := helpers.ParamID(c, "id")
	if err != nil {
		return helpers.RespondError(c, err)
	}
	if err := database.DeleteStudent(config.GetDB(), id); err != nil {
		return helpers.RespondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Student deleted successfully"})
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
