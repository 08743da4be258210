package controllers

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	services "lms/services/course"
	"lms/utils"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CreateCourse creates an authored catalog course (admin only)
func CreateCourse(c *fiber.Ctx) error {
	course := c.Locals("courseData").(*courseModels.CatalogCourse)

	var existing courseModels.CatalogCourse
	if database.Database.Db.Where("id = ?", course.ID).First(&existing).Error == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Course ID already exists!", nil)
	}

	if err := database.Database.Db.Create(course).Error; err != nil {
		log.Printf("[COURSE] Failed to create course %s: %v", course.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// AssignCourse assigns a course to a learner (admin only). The learner is
// notified by email.
func AssignCourse(c *fiber.Ctx) error {
	adminID, _ := c.Locals("userId").(string)
	assignment := c.Locals("assignmentData").(*courseModels.CourseAssignment)

	var learner models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", assignment.UserID, false).First(&learner).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Learner not found!", nil)
	}

	var existing courseModels.CourseAssignment
	if database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?",
		assignment.UserID, assignment.CourseID, false).First(&existing).Error == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Course already assigned to this learner!", nil)
	}

	assignment.AssignedBy = adminID
	assignment.Status = "ASSIGNED"
	assignment.RAGStatus = courseModels.RAGAmber
	assignment.AssignedAt = time.Now().UTC()

	if err := database.Database.Db.Create(assignment).Error; err != nil {
		log.Printf("[COURSE] Failed to assign course %s to %s: %v", assignment.CourseID, assignment.UserID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to assign course!", nil)
	}

	go utils.SendCourseAssignedEmail(learner.Email, learner.Name, courseTitle(assignment.CourseID), assignment.DueAt)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course assigned successfully!", assignment)
}

// CreateModule adds an authored module to a course (admin only)
func CreateModule(c *fiber.Ctx) error {
	module := c.Locals("moduleData").(*courseModels.Module)

	if module.ID == "" {
		module.ID = uuid.New().String()
	}
	module.Source = courseModels.SourceAuthored

	if err := database.Database.Db.Create(module).Error; err != nil {
		log.Printf("[COURSE] Failed to create module for course %s: %v", module.CourseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Module created successfully!", module)
}

// CreateSection adds an authored section to a module (admin only)
func CreateSection(c *fiber.Ctx) error {
	section := c.Locals("sectionData").(*courseModels.Section)

	var module courseModels.Module
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", section.ModuleID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	if section.ID == "" {
		section.ID = uuid.New().String()
	}
	section.CourseID = module.CourseID
	if section.DurationMinutes <= 0 {
		section.DurationMinutes = services.DefaultSectionMinutes
	}

	if err := database.Database.Db.Create(section).Error; err != nil {
		log.Printf("[COURSE] Failed to create section for module %s: %v", section.ModuleID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create section!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Section created successfully!", section)
}

// CreateResource attaches a resource to a module (admin only)
func CreateResource(c *fiber.Ctx) error {
	resource := c.Locals("resourceData").(*courseModels.Resource)

	var module courseModels.Module
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", resource.ModuleID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	resource.ID = uuid.New().String()
	resource.CourseID = module.CourseID

	if err := database.Database.Db.Create(resource).Error; err != nil {
		log.Printf("[COURSE] Failed to create resource for module %s: %v", resource.ModuleID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create resource!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Resource created successfully!", resource)
}

func courseTitle(courseID string) string {
	var course courseModels.CatalogCourse
	if database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error == nil {
		return course.Title
	}
	return courseID
}

func sendCompletionEmail(userID, courseID string) {
	var learner models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&learner).Error; err != nil {
		return
	}
	utils.SendCourseCompletionEmail(learner.Email, learner.Name, courseTitle(courseID))
}
