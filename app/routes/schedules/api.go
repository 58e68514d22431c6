package schedules

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Boren168-g/Daa-Management-System/app/config"
	"github.com/Boren168-g/Daa-Management-System/app/database"
	"github.com/Boren168-g/Daa-Management-System/app/models"
	"github.com/Boren168-g/Daa-Management-System/app/routes/helpers"
)

// ScheduleRequest is the create/update payload. Times are HH:MM or
// HH:MM:SS strings; the store column is TIME so either form works.
type ScheduleRequest struct {
	TeacherID int    `json:"teacher_id" form:"teacher_id" validate:"required"`
	Term      string `json:"term" form:"term"`
	Subject   string `json:"subject" form:"subject" validate:"required"`
	Day       string `json:"day" form:"day" validate:"required"`
	StartTime string `json:"start_time" form:"start_time" validate:"required"`
	EndTime   string `json:"end_time" form:"end_time" validate:"required"`
}

func (r *ScheduleRequest) toModel() *models.Schedule {
	return &models.Schedule{
		TeacherID: r.TeacherID,
		Term:      optional(r.Term),
		Subject:   r.Subject,
		Day:       models.DayOfWeek(r.Day),
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
	}
}

func GetSchedulesAPI(c *fiber.Ctx) error {
	schedules, err := database.ListSchedules(config.GetDB())
	if err != nil {
		return helpers.RespondError(c, err)
	}
	return c.JSON(fiber.Map{
		"schedules": schedules,
		"count":     len(schedules),
	})
}

func GetScheduleByIDAPI(c *fiber.Ctx) error {
	id, err := helpers.ParamID(c, "id")
	if err != nil {
		return helpers.RespondError(c, err)
	}
	schedule, err := database.GetScheduleByID(config.GetDB(), id)
	if err != nil {
		return helpers.RespondError(c, err)
	}
	return c.JSON(schedule)
}

func CreateScheduleAPI(c *fiber.Ctx) error {
	var req ScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := helpers.ValidateStruct(&req); err != nil {
		return helpers.RespondError(c, err)
	}

	schedule := req.toModel()
	if err := database.AddSchedule(config.GetDB(), schedule); err != nil {
		return helpers.RespondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Schedule created successfully",
		"schedule": schedule,
	})
}

func UpdateScheduleAPI(c *fiber.Ctx) error {
	id, err := helpers.ParamID(c, "id")
	if err != nil {
		return helpers.RespondError(c, err)
	}

	var req ScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := helpers.ValidateStruct(&req); err != nil {
		return helpers.RespondError(c, err)
	}

	schedule := req.toModel()
	schedule.ScheduleID = id
	if err := database.UpdateSchedule(config.GetDB(), schedule); err != nil {
		return helpers.RespondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Schedule updated successfully"})
}

func DeleteScheduleAPI(c *fiber.Ctx) error {
	id, err := helpers.ParamID(c, "id")
	if err != nil {
		return helpers.RespondError(c, err)
	}
	if err := database.DeleteSchedule(config.GetDB(), id); err != nil {
		return helpers.RespondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Schedule deleted successfully"})
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
