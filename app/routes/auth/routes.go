package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Boren168-g/Daa-Management-System/app/models"
)

func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	// Public routes
	auth.Get("/login", ShowLoginPage)
	auth.Post("/login", LoginAPI)
	auth.Post("/signup", SignupAPI)
	auth.Post("/logout", LogoutAPI)

	// Protected routes
	auth.Use(AuthMiddleware)
	auth.Post("/change-password", ChangePasswordAPI)
}

func ShowLoginPage(c *fiber.Ctx) error {
	// Check if already logged in
	if tokenString := c.Cookies("jwt_token"); tokenString != "" {
		if _, err := ValidateJWT(tokenString); err == nil {
			return c.Redirect("/dashboard")
		}
	}

	return c.Render("auth/login", fiber.Map{
		"Title": "Login - DAA Management System",
		"Role":  c.Query("role", string(models.RoleAdministrator)),
	}, "")
}

// AuthMiddleware validates the JWT session cookie (or bearer header) and
// places the identity into the request context.
func AuthMiddleware(c *fiber.Ctx) error {
	var tokenString string

	// First try cookie
	tokenString = c.Cookies("jwt_token")

	// If no cookie, try Authorization header
	if tokenString == "" {
		auth := c.Get("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			tokenString = strings.TrimPrefix(auth, "Bearer ")
		}
	}

	isAPIRequest := strings.HasPrefix(c.Path(), "/api/")

	if tokenString == "" {
		if isAPIRequest {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "No token found"})
		}
		return c.Redirect("/auth/login")
	}

	claims, err := ValidateJWT(tokenString)
	if err != nil {
		if isAPIRequest {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
		}
		return c.Redirect("/auth/login")
	}

	identity := &models.Identity{
		ID:   claims.UserID,
		Role: claims.Role,
		Name: claims.Name,
	}

	c.Locals("user_id", identity.ID)
	c.Locals("user_role", identity.Role)
	c.Locals("user_name", identity.Name)
	c.Locals("user", identity)

	return c.Next()
}

// RequireAdministrator rejects requests whose session is not an
// administrator's.
func RequireAdministrator(c *fiber.Ctx) error {
	identity, ok := c.Locals("user").(*models.Identity)
	if !ok || identity.Role != models.RoleAdministrator {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Administrator access required"})
	}
	return c.Next()
}
