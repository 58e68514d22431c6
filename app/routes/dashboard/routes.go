package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Boren168-g/Daa-Management-System/app/config"
	"github.com/Boren168-g/Daa-Management-System/app/database"
	"github.com/Boren168-g/Daa-Management-System/app/models"
	"github.com/Boren168-g/Daa-Management-System/app/routes/auth"
	"github.com/Boren168-g/Daa-Management-System/app/routes/helpers"
)

func SetupDashboardRoutes(app *fiber.App) {
	app.Get("/dashboard", auth.AuthMiddleware, ShowDashboardPage)

	api := app.Group("/api/dashboard")
	api.Use(auth.AuthMiddleware)
	api.Get("/stats", GetDashboardStatsAPI)
}

func ShowDashboardPage(c *fiber.Ctx) error {
	user, _ := c.Locals("user").(*models.Identity)

	stats, err := database.GetDashboardStats(config.GetDB())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).Render("error", fiber.Map{
			"Title":   "Dashboard",
			"Message": "Could not load dashboard statistics",
		})
	}

	return c.Render("dashboard/index", fiber.Map{
		"Title": "Dashboard",
		"User":  user,
		"Stats": stats,
	})
}

func GetDashboardStatsAPI(c *fiber.Ctx) error {
	stats, err := database.GetDashboardStats(config.GetDB())
	if err != nil {
		return helpers.RespondError(c, err)
	}
	return c.JSON(stats)
}
