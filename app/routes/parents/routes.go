package parents

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Boren168-g/Daa-Management-System/app/routes/auth"
)

func SetupParentsRoutes(app *fiber.App) {
	api := app.Group("/api/parents")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetParentsAPI)
	api.Get("/:id", GetParentByIDAPI)

	api.Post("/", auth.RequireAdministrator, CreateParentAPI)
	api.Delete("/:id", auth.RequireAdministrator, DeleteParentAPI)
}
