package auth

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Boren168-g/Daa-Management-System/app/config"
	"github.com/Boren168-g/Daa-Management-System/app/database"
	"github.com/Boren168-g/Daa-Management-System/app/models"
	"github.com/Boren168-g/Daa-Management-System/app/routes/helpers"
)

// LoginAPI authenticates any of the four roles. The identifier is the
// account name, except for parents who sign in with their numeric id.
func LoginAPI(c *fiber.Ctx) error {
	type LoginRequest struct {
		Role       string `json:"role" form:"role" validate:"required"`
		Identifier string `json:"identifier" form:"identifier" validate:"required"`
		Password   string `json:"password" form:"password" validate:"required"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := helpers.ValidateStruct(&req); err != nil {
		return helpers.RespondError(c, err)
	}

	identity, err := database.Authenticate(config.GetDB(), models.Role(req.Role), req.Identifier, req.Password)
	if err != nil {
		return helpers.RespondError(c, err)
	}

	token, err := GenerateJWT(identity)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate token"})
	}

	// Set JWT as HTTP-only cookie
	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    token,
		Expires:  time.Now().Add(sessionDuration),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	// Browser form logins go straight to the dashboard.
	if strings.Contains(c.Get("Content-Type"), "application/x-www-form-urlencoded") {
		return c.Redirect("/dashboard")
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"user":    identity,
	})
}

// SignupAPI creates an account for any of the four roles.
func SignupAPI(c *fiber.Ctx) error {
	type SignupRequest struct {
		Role     string `json:"role" form:"role" validate:"required"`
		Name     string `json:"name" form:"name"`
		Password string `json:"password" form:"password" validate:"required"`
		Phone    string `json:"phone" form:"phone"`
		Gender   string `json:"gender" form:"gender"`
		Class    string `json:"class" form:"class"`
		Grade    string `json:"grade" form:"grade"`
		ChildID  *int   `json:"child_id" form:"child_id"`
	}

	var req SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := helpers.ValidateStruct(&req); err != nil {
		return helpers.RespondError(c, err)
	}

	db := config.GetDB()
	switch models.Role(req.Role) {
	case models.RoleAdministrator:
		id, err := database.CreateAdministrator(db, req.Name, req.Password)
		if err != nil {
			return helpers.RespondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Administrator account created", "id": id})

	case models.RoleTeacher:
		teacher := &models.Teacher{
			Name:     req.Name,
			Password: req.Password,
			Phone:    optional(req.Phone),
			Gender:   models.Gender(req.Gender),
		}
		if err := database.CreateTeacher(db, teacher); err != nil {
			return helpers.RespondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Teacher account created", "id": teacher.ID})

	case models.RoleStudent:
		student := &models.Student{
			Name:     req.Name,
			Password: req.Password,
			Phone:    optional(req.Phone),
			Gender:   models.Gender(req.Gender),
			Class:    optional(req.Class),
			Grade:    optional(req.Grade),
		}
		if err := database.CreateStudent(db, student); err != nil {
			return helpers.RespondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Student account created", "id": student.ID})

	case models.RoleParent:
		id, err := database.CreateParent(db, req.Password, req.ChildID)
		if err != nil {
			return helpers.RespondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "Parent account created. Sign in with this id.",
			"id":      id,
		})
	}

	return helpers.RespondError(c, &models.ValidationError{Field: "role", Reason: "unknown role"})
}

func LogoutAPI(c *fiber.Ctx) error {
	// Clear JWT cookie
	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	return c.Redirect("/auth/login")
}

func ChangePasswordAPI(c *fiber.Ctx) error {
	type ChangePasswordRequest struct {
		CurrentPassword string `json:"current_password" validate:"required"`
		NewPassword     string `json:"new_password" validate:"required,min=8"`
	}

	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := helpers.ValidateStruct(&req); err != nil {
		return helpers.RespondError(c, err)
	}

	identity := c.Locals("user").(*models.Identity)
	if err := database.ChangePassword(config.GetDB(), identity.Role, identity.ID,
		req.CurrentPassword, req.NewPassword); err != nil {
		return helpers.RespondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Password changed successfully"})
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
