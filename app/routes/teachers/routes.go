package teachers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Boren168-g/Daa-Management-System/app/routes/auth"
)

func SetupTeachersRoutes(app *fiber.App) {
	api := app.Group("/api/teachers")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetTeachersAPI)
	api.Get("/:id", GetTeacherByIDAPI)
	api.Get("/:id/schedules", GetTeacherSchedulesAPI)

	api.Post("/", auth.RequireAdministrator, CreateTeacherAPI)
	api.Put("/:id", auth.RequireAdministrator, UpdateTeacherAPI)
	api.Delete("/:id", auth.RequireAdministrator, DeleteTeacherAPI)
}
