package controllers

import (
	"errors"
	"lms/database"
	"lms/middleware"
	courseModels "lms/models/course"
	services "lms/services/course"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Service is the resolution pipeline used by the user-facing handlers.
// It is wired once at startup from main.
var Service *services.CourseService

// GetCourseView resolves the full course view for the logged-in learner
func GetCourseView(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	courseID := c.Locals("courseID").(string)

	view, err := Service.GetCourseView(courseID, userID)
	if err != nil {
		var dsErr *services.DataSourceError
		if errors.As(err, &dsErr) {
			return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Failed to load course data!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to resolve course content!", nil)
	}
	if view == nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not enrolled in this course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course content fetched successfully!", view)
}

// MarkContentComplete records completion of a module or section and
// returns the recomputed course progress.
func MarkContentComplete(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	courseID := c.Locals("courseID").(string)
	contentID := c.Locals("contentID").(string)
	contentType := c.Locals("contentType").(string)

	progress, err := Service.MarkCompleted(userID, courseID, contentID, contentType)
	if err != nil {
		var pErr *services.PersistenceError
		if errors.As(err, &pErr) {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record completion!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid completion request!", nil)
	}

	if progress >= 100 {
		go sendCompletionEmail(userID, courseID)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Completion recorded successfully!", fiber.Map{
		"completed": true,
		"progress":  progress,
	})
}

// GetUserEnrollmentsList lists the learner's courses across direct
// enrollments and assignments.
func GetUserEnrollmentsList(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	enrollments, err := Service.ListEnrollments(userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Failed to load enrollments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": enrollments,
		"total":       len(enrollments),
	})
}

// EnrollInCourse creates a direct enrollment for the logged-in learner
func EnrollInCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	courseID := c.Locals("courseID").(string)

	var existing courseModels.Enrollment
	if database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).
		First(&existing).Error == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Already enrolled in this course!", nil)
	}

	enrollment := courseModels.Enrollment{
		UserID:     userID,
		CourseID:   courseID,
		Status:     "ENROLLED",
		RAGStatus:  courseModels.RAGAmber,
		EnrolledAt: time.Now().UTC(),
	}
	if err := database.Database.Db.Create(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrolled successfully!", enrollment)
}
