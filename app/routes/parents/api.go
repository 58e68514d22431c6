package parents

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Boren168-g/Daa-Management-System/app/config"
	"github.com/Boren168-g/Daa-Management-System/app/database"
	"github.com/Boren168-g/Daa-Management-System/app/routes/helpers"
)

// ParentRequest creates a parent account linked to at most one student.
type ParentRequest struct {
	Password string `json:"password" form:"password" validate:"required,min=6"`
	ChildID  *int   `json:"child_id" form:"child_id"`
}

func GetParentsAPI(c *fiber.Ctx) error {
	parents, err := database.ListParents(config.GetDB())
	if err != nil {
		return helpers.RespondError(c, err)
	}
	return c.JSON(fiber.Map{
		"parents": parents,
		"count":   len(parents),
	})
}

func GetParentByIDAPI(c *fiber.Ctx) error {
	id, err := helpers.ParamID(c, "id")
	if err != nil {
		return helpers.RespondError(c, err)
	}
	parent, err := database.GetParentByID(config.GetDB(), id)
	if err != nil {
		return helpers.RespondError(c, err)
	}
	return c.JSON(parent)
}

func CreateParentAPI(c *fiber.Ctx) error {
	var req ParentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := helpers.ValidateStruct(&req); err != nil {
		return helpers.RespondError(c, err)
	}

	id, err := database.CreateParent(config.GetDB(), req.Password, req.ChildID)
	if err != nil {
		return helpers.RespondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Parent created successfully",
		"id":      id,
	})
}

func DeleteParentAPI(c *fiber.Ctx) error {
	id, err := helpers.ParamID(c, "id")
	if err != nil {
		return helpers.RespondError(c, err)
	}
	if err := database.DeleteParent(config.GetDB(), id); err != nil {
		return helpers.RespondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Parent deleted successfully"})
}
