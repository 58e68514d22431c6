package fees

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Boren168-g/Daa-Management-System/app/config"
	"github.com/Boren168-g/Daa-Management-System/app/database"
	"github.com/Boren168-g/Daa-Management-System/app/models"
	"github.com/Boren168-g/Daa-Management-System/app/routes/helpers"
)

// FeeRequest creates or re-prices the fee for a (student, subject) pair.
type FeeRequest struct {
	StudentID int     `json:"student_id" form:"student_id" validate:"required"`
	SubjectID int     `json:"subject_id" form:"subject_id" validate:"required"`
	Amount    float64 `json:"amount" form:"amount" validate:"gte=0"`
	DueDate   string  `json:"due_date" form:"due_date"`
}

// PaymentRequest applies one payment to an existing fee.
type PaymentRequest struct {
	Amount float64 `json:"amount" form:"amount" validate:"required,gt=0"`
}

func UpsertFeeAPI(c *fiber.Ctx) error {
	var req FeeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := helpers.ValidateStruct(&req); err != nil {
		return helpers.RespondError(c, err)
	}

	var dueDate *time.Time
	if req.DueDate != "" {
		parsed, err := time.Parse("2006-01-02", req.DueDate)
		if err != nil {
			return helpers.RespondError(c, &models.ValidationError{
				Field: "due_date", Reason: "must be YYYY-MM-DD",
			})
		}
		dueDate = &parsed
	}

	id, err := database.UpsertFee(config.GetDB(), req.StudentID, req.SubjectID,
		req.Amount, dueDate, config.GetFeePolicy())
	if err != nil {
		return helpers.RespondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Fee saved successfully",
		"id":      id,
	})
}

func RecordPaymentAPI(c *fiber.Ctx) error {
	id, err := helpers.ParamID(c, "id")
	if err != nil {
		return helpers.RespondError(c, err)
	}

	var req PaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := helpers.ValidateStruct(&req); err != nil {
		return helpers.RespondError(c, err)
	}

	if err := database.RecordPayment(config.GetDB(), id, req.Amount, config.GetFeePolicy()); err != nil {
		return helpers.RespondError(c, err)
	}

	fee, err := database.GetFeeByID(config.GetDB(), id)
	if err != nil {
		return helpers.RespondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Payment recorded successfully",
		"fee":     fee,
	})
}

func GetFeeByIDAPI(c *fiber.Ctx) error {
	id, err := helpers.ParamID(c, "id")
	if err != nil {
		return helpers.RespondError(c, err)
	}
	fee, err := database.GetFeeByID(config.GetDB(), id)
	if err != nil {
		return helpers.RespondError(c, err)
	}
	return c.JSON(fee)
}

// DeleteFeeAPI removes a fee. A missing row is reported as deleted so the
// operation stays idempotent for the caller.
func DeleteFeeAPI(c *fiber.Ctx) error {
	id, err := helpers.ParamID(c, "id")
	if err != nil {
		return helpers.RespondError(c, err)
	}
	if err := database.DeleteFee(config.GetDB(), id); err != nil && !models.IsNotFound(err) {
		return helpers.RespondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Fee deleted successfully"})
}

func GetFeeStatsAPI(c *fiber.Ctx) error {
	stats, err := database.GetFeeStats(config.GetDB())
	if err != nil {
		return helpers.RespondError(c, err)
	}
	return c.JSON(stats)
}
