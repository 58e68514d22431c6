package schedules

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Boren168-g/Daa-Management-System/app/routes/auth"
)

func SetupSchedulesRoutes(app *fiber.App) {
	api := app.Group("/api/schedules")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetSchedulesAPI)
	api.Get("/:id", GetScheduleByIDAPI)

	api.Post("/", auth.RequireAdministrator, CreateScheduleAPI)
	api.Put("/:id", auth.RequireAdministrator, UpdateScheduleAPI)
	api.Delete("/:id", auth.RequireAdministrator, DeleteScheduleAPI)
}
