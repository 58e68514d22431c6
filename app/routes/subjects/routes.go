package subjects

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Boren168-g/Daa-Management-System/app/routes/auth"
)

func SetupSubjectsRoutes(app *fiber.App) {
	api := app.Group("/api/subjects")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetSubjectsAPI)
	api.Get("/:id", GetSubjectByIDAPI)
	api.Get("/:id/students", GetEnrolledStudentsAPI)

	api.Post("/", auth.RequireAdministrator, CreateSubjectAPI)
	api.Put("/:id", auth.RequireAdministrator, UpdateSubjectAPI)
	api.Put("/:id/teacher", auth.RequireAdministrator, AssignTeacherAPI)
	api.Delete("/:id", auth.RequireAdministrator, DeleteSubjectAPI)

	api.Post("/:id/enrollments", auth.RequireAdministrator, EnrollStudentAPI)
	api.Delete("/:id/enrollments/:student_id", auth.RequireAdministrator, UnenrollStudentAPI)
}
