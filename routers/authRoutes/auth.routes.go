package authRoutes

import (
	controllers "lms/controllers/auth"
	"lms/middleware"
	validators "lms/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes sets up the authentication routes
func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/login", validators.Login(), controllers.Login)
	authGroup.Post("/register", middleware.JWTMiddleware, middleware.AdminOnly, validators.Register(), controllers.Register)
}
