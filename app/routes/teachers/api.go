package teachers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Boren168-g/Daa-Management-System/app/config"
	"github.com/Boren168-g/Daa-Management-System/app/database"
	"github.com/Boren168-g/Daa-Management-System/app/models"
	"github.com/Boren168-g/Daa-Management-System/app/routes/helpers"
)

// TeacherRequest is the create/update payload.
type TeacherRequest struct {
	Name     string `json:"name" form:"name" validate:"required"`
	Password string `json:"password" form:"password"`
	Phone    string `json:"phone" form:"phone"`
	Gender   string `json:"gender" form:"gender"`
}

func (r *TeacherRequest) toModel() *models.Teacher {
	gender := models.Gender(r.Gender)
	if r.Gender == "" {
		gender = models.Other
	}
	return &models.Teacher{
		Name:     r.Name,
		Password: r.Password,
		Phone:    optional(r.Phone),
		Gender:   gender,
	}
}

func GetTeachersAPI(c *fiber.Ctx) error {
	teachers, err := database.ListTeachers(config.GetDB())
	if err != nil {
		return helpers.RespondError(c, err)
	}
	return c.JSON(fiber.Map{
		"teachers": teachers,
		"count":    len(teachers),
	})
}

func GetTeacherByIDAPI(c *fiber.Ctx) error {
	id, err := helpers.ParamID(c, "id")
	if err != nil {
		return helpers.RespondError(c, err)
	}
	teacher, err := database.GetTeacherByID(config.GetDB(), id)
	if err != nil {
		return helpers.RespondError(c, err)
	}
	return c.JSON(teacher)
}

func GetTeacherSchedulesAPI(c *fiber.Ctx) error {
	id, err := helpers.ParamID(c, "id")
	if err != nil {
		return helpers.RespondError(c, err)
	}
	schedules, err := database.ListTeacherSchedules(config.GetDB(), id)
	if err != nil {
		return helpers.RespondError(c, err)
	}
	return c.JSON(fiber.Map{
		"schedules": schedules,
		"count":     len(schedules),
	})
}

func CreateTeacherAPI(c *fiber.Ctx) error {
	var req TeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := helpers.ValidateStruct(&req); err != nil {
		return helpers.RespondError(c, err)
	}

	teacher := req.toModel()
	if err := database.CreateTeacher(config.GetDB(), teacher); err != nil {
		return helpers.RespondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Teacher created successfully",
		"teacher": teacher,
	})
}

func UpdateTeacherAPI(c *fiber.Ctx) error {
	id, err := helpers.ParamID(c, "id")
	if err != nil {
		return helpers.RespondError(c, err)
	}

	var req TeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := helpers.ValidateStruct(&req); err != nil {
		return helpers.RespondError(c, err)
	}

	teacher := req.toModel()
	teacher.ID = id
	if err := database.UpdateTeacher(config.GetDB(), teacher); err != nil {
		return helpers.RespondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Teacher updated successfully"})
}

func DeleteTeacherAPI(c *fiber.Ctx) error {
	id, err := helpers.ParamID(c, "id")
	if err != nil {
		return helpers.RespondError(c, err)
	}
	if err := database.DeleteTeacher(config.GetDB(), id); err != nil {
		return helpers.RespondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Teacher deleted successfully"})
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
