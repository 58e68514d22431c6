package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"

	"github.com/Boren168-g/Daa-Management-System/app/config"
	"github.com/Boren168-g/Daa-Management-System/app/database"
	"github.com/Boren168-g/Daa-Management-System/app/routes/auth"
	"github.com/Boren168-g/Daa-Management-System/app/routes/dashboard"
	"github.com/Boren168-g/Daa-Management-System/app/routes/fees"
	"github.com/Boren168-g/Daa-Management-System/app/routes/parents"
	"github.com/Boren168-g/Daa-Management-System/app/routes/schedules"
	"github.com/Boren168-g/Daa-Management-System/app/routes/students"
	"github.com/Boren168-g/Daa-Management-System/app/routes/subjects"
	"github.com/Boren168-g/Daa-Management-System/app/routes/teachers"
)

// customErrorHandler renders error pages for web requests and JSON for
// anything under /api.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	if len(c.Path()) >= 4 && c.Path()[:4] == "/api" {
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"code":    code,
		})
	}

	switch code {
	case 404:
		return c.Status(404).Render("404", fiber.Map{
			"Title": "Page Not Found",
		})
	case 401:
		return c.Status(401).Render("error", fiber.Map{
			"Title":        "Unauthorized",
			"ErrorCode":    "401",
			"ErrorTitle":   "Unauthorized",
			"ErrorMessage": "Please log in to access this resource.",
		})
	case 500:
		return c.Status(500).Render("500", fiber.Map{
			"Title":        "Server Error",
			"ErrorCode":    "500",
			"ErrorTitle":   "Internal Server Error",
			"ErrorMessage": "We're experiencing technical difficulties. Please try again later.",
		})
	default:
		return c.Status(code).Render("error", fiber.Map{
			"Title":        "Error",
			"ErrorCode":    code,
			"ErrorTitle":   "An Error Occurred",
			"ErrorMessage": err.Error(),
		})
	}
}

func main() {
	config.LoadEnv()

	config.InitDB()
	defer config.GetDB().Close()

	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	engine := html.New("./app/templates", ".html")

	app := fiber.New(fiber.Config{
		Views:             engine,
		ViewsLayout:       "layouts/main",
		PassLocalsToViews: true,
		ErrorHandler:      customErrorHandler,
	})

	app.Use(logger.New())
	app.Use(cors.New())

	app.Static("/static", "./static")

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/auth/login")
	})

	auth.SetupAuthRoutes(app)
	dashboard.SetupDashboardRoutes(app)
	students.SetupStudentsRoutes(app)
	teachers.SetupTeachersRoutes(app)
	parents.SetupParentsRoutes(app)
	subjects.SetupSubjectsRoutes(app)
	schedules.SetupSchedulesRoutes(app)
	fees.SetupFeesRoutes(app)

	log.Printf("Server starting on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
