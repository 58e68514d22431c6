package helpers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/Boren168-g/Daa-Management-System/app/models"
)

var validate = validator.New()

// ValidateStruct runs request DTO validation and converts the first failure
// into the core's ValidationError so handlers report one taxonomy.
func ValidateStruct(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return &models.ValidationError{
			Field:  verrs[0].Field(),
			Reason: "failed on the '" + verrs[0].Tag() + "' rule",
		}
	}
	return &models.ValidationError{Reason: "invalid request"}
}

// RespondError translates the core error taxonomy into HTTP status codes.
// Everything unrecognized is treated as a store failure.
func RespondError(c *fiber.Ctx, err error) error {
	var (
		notFound    *models.NotFoundError
		duplicate   *models.DuplicateError
		credentials *models.InvalidCredentialsError
		validation  *models.ValidationError
	)
	switch {
	case errors.As(err, &validation):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validation.Error()})
	case errors.As(err, &credentials):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": credentials.Error()})
	case errors.As(err, &notFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": notFound.Error()})
	case errors.As(err, &duplicate):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": duplicate.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
}

// ParamID reads a positive integer path parameter.
func ParamID(c *fiber.Ctx, name string) (int, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, &models.ValidationError{Field: name, Reason: "must be a positive number"}
	}
	return id, nil
}
