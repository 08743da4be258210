package controllers

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	"log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// Login authenticates a learner and returns a JWT
func Login(c *fiber.Ctx) error {
	reqData := c.Locals("loginData").(*models.LoginRequest)

	var user models.User
	if err := database.Database.Db.Where("email = ? AND is_deleted = ?", reqData.Email, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
	}

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email, user.IsAdmin)
	if err != nil {
		log.Printf("[AUTH] Failed to generate token for %s: %v", user.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful!", fiber.Map{
		"token": token,
		"user":  user,
	})
}

// Register creates a learner account (admin only)
func Register(c *fiber.Ctx) error {
	reqData := c.Locals("registerData").(*models.RegisterRequest)

	var existing models.User
	if database.Database.Db.Where("email = ? OR id = ?", reqData.Email, reqData.EmployeeID).First(&existing).Error == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "User already exists!", nil)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), bcrypt.DefaultCost)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process password!", nil)
	}

	user := models.User{
		ID:              reqData.EmployeeID,
		Name:            reqData.Name,
		Email:           reqData.Email,
		Password:        string(hashed),
		Role:            reqData.Role,
		Department:      reqData.Department,
		ExperienceLevel: reqData.ExperienceLevel,
	}

	if err := database.Database.Db.Create(&user).Error; err != nil {
		log.Printf("[AUTH] Failed to create user %s: %v", user.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully!", user)
}
