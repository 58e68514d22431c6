package students

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Boren168-g/Daa-Management-System/app/routes/auth"
)

// SetupStudentsRoutes registers the student management API.
func SetupStudentsRoutes(app *fiber.App) {
	api := app.Group("/api/students")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetStudentsAPI)           // Get all students (?q= for search)
	api.Get("/:id", GetStudentByIDAPI)     // Get single student by ID
	api.Get("/:id/fees", GetStudentFeesAPI)
	api.Get("/:id/enrollments", GetStudentEnrollmentsAPI)
	api.Post("/", auth.RequireAdministrator, CreateStudentAPI)
	api.Put("/:id", auth.RequireAdministrator, UpdateStudentAPI)
	api.Delete("/:id", auth.RequireAdministrator, DeleteStudentAPI)
}
