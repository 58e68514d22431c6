package fees

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Boren168-g/Daa-Management-System/app/routes/auth"
)

func SetupFeesRoutes(app *fiber.App) {
	api := app.Group("/api/fees")
	api.Use(auth.AuthMiddleware)

	api.Get("/stats", GetFeeStatsAPI)
	api.Get("/:id", GetFeeByIDAPI)

	api.Post("/", auth.RequireAdministrator, UpsertFeeAPI)
	api.Post("/:id/payments", auth.RequireAdministrator, RecordPaymentAPI)
	api.Delete("/:id", auth.RequireAdministrator, DeleteFeeAPI)
}
