package courseRoutes

import (
	controllers "lms/controllers/course"
	"lms/middleware"
	validators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up the user-facing and admin course routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Content resolution (the full course view, generating when needed)
	courseGroup.Get("/:id/content", middleware.JWTMiddleware, validators.GetCourseView(), controllers.GetCourseView)

	// Self enrollment
	courseGroup.Post("/:id/enroll", middleware.JWTMiddleware, validators.EnrollCourse(), controllers.EnrollInCourse)

	// Completion tracking
	courseGroup.Post("/:course_id/content/:content_id/complete", middleware.JWTMiddleware, validators.MarkContentComplete(), controllers.MarkContentComplete)

	// Learner course list
	userGroup := app.Group("/user")
	userGroup.Get("/enrollments", middleware.JWTMiddleware, controllers.GetUserEnrollmentsList)

	// Admin authoring and assignment
	adminGroup := app.Group("/admin/course", middleware.JWTMiddleware, middleware.AdminOnly)
	adminGroup.Post("/", validators.CreateCourse(), controllers.CreateCourse)
	adminGroup.Post("/assign", validators.AssignCourse(), controllers.AssignCourse)
	adminGroup.Post("/:id/module", validators.CreateModule(), controllers.CreateModule)
	adminGroup.Post("/module/:module_id/section", validators.CreateSection(), controllers.CreateSection)
	adminGroup.Post("/module/:module_id/resource", validators.CreateResource(), controllers.CreateResource)
}
