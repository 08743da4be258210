package courseValidator

import (
	"lms/middleware"
	courseModels "lms/models/course"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// courseIDParam validates the :id path parameter and stashes it
func courseIDParam(c *fiber.Ctx) (string, bool) {
	courseID := strings.TrimSpace(c.Params("id"))
	if courseID == "" || len(courseID) > 128 {
		return "", false
	}
	return courseID, true
}

// GetCourseView validates the course view request
func GetCourseView() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := courseIDParam(c)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}
		c.Locals("courseID", courseID)
		return c.Next()
	}
}

// EnrollCourse validates the self-enrollment request
func EnrollCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := courseIDParam(c)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}
		c.Locals("courseID", courseID)
		return c.Next()
	}
}

// MarkContentComplete validates the completion request
func MarkContentComplete() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID := strings.TrimSpace(c.Params("course_id"))
		contentID := strings.TrimSpace(c.Params("content_id"))
		if courseID == "" || contentID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID and Content ID are required!", nil)
		}

		reqData := new(struct {
			ContentType string `json:"contentType"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		contentType := strings.ToLower(strings.TrimSpace(reqData.ContentType))
		if contentType != courseModels.CompletionTypeModule && contentType != courseModels.CompletionTypeSection {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Content type must be 'module' or 'section'!", nil)
		}

		c.Locals("courseID", courseID)
		c.Locals("contentID", contentID)
		c.Locals("contentType", contentType)
		return c.Next()
	}
}

// CreateCourse validates the admin course creation payload
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ID            string `json:"id" validate:"required,min=3,max=128"`
			Title         string `json:"title" validate:"required,min=3"`
			Description   string `json:"description"`
			CoverImageURL string `json:"coverImage"`
			Level         string `json:"level" validate:"omitempty,oneof=Beginner Intermediate Advanced 'All Levels'"`
			DurationLabel string `json:"duration"`
			Instructor    string `json:"instructor"`
			IsPublished   bool   `json:"isPublished"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, err)
		}

		c.Locals("courseData", &courseModels.CatalogCourse{
			ID:            strings.TrimSpace(reqData.ID),
			Title:         reqData.Title,
			Description:   reqData.Description,
			CoverImageURL: reqData.CoverImageURL,
			Level:         reqData.Level,
			DurationLabel: reqData.DurationLabel,
			Instructor:    reqData.Instructor,
			IsPublished:   reqData.IsPublished,
		})
		return c.Next()
	}
}

// AssignCourse validates the admin course assignment payload
func AssignCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			UserID   string `json:"userId" validate:"required"`
			CourseID string `json:"courseId" validate:"required"`
			DueAt    string `json:"dueAt"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, err)
		}

		assignment := &courseModels.CourseAssignment{
			UserID:   reqData.UserID,
			CourseID: reqData.CourseID,
		}
		if reqData.DueAt != "" {
			dueAt, err := time.Parse(time.RFC3339, reqData.DueAt)
			if err != nil {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Due date must be RFC3339!", nil)
			}
			assignment.DueAt = &dueAt
		}

		c.Locals("assignmentData", assignment)
		return c.Next()
	}
}

// CreateModule validates the admin module creation payload
func CreateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := courseIDParam(c)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		reqData := new(struct {
			ID              string `json:"id"`
			Title           string `json:"title" validate:"required,min=3"`
			Description     string `json:"description"`
			OrderIndex      int    `json:"orderIndex" validate:"required,min=1"`
			DurationMinutes int    `json:"durationMinutes" validate:"omitempty,min=1"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, err)
		}

		c.Locals("moduleData", &courseModels.Module{
			ID:              strings.TrimSpace(reqData.ID),
			CourseID:        courseID,
			Title:           reqData.Title,
			Description:     reqData.Description,
			OrderIndex:      reqData.OrderIndex,
			DurationMinutes: reqData.DurationMinutes,
		})
		return c.Next()
	}
}

// CreateSection validates the admin section creation payload
func CreateSection() fiber.Handler {
	return func(c *fiber.Ctx) error {
		moduleID := strings.TrimSpace(c.Params("module_id"))
		if moduleID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Module ID is required!", nil)
		}

		reqData := new(struct {
			ID              string `json:"id"`
			Title           string `json:"title" validate:"required,min=3"`
			Content         string `json:"content" validate:"required"`
			ContentType     string `json:"contentType" validate:"omitempty,oneof=text video quiz interactive"`
			OrderIndex      int    `json:"orderIndex" validate:"required,min=1"`
			DurationMinutes int    `json:"durationMinutes" validate:"omitempty,min=1"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, err)
		}

		contentType := reqData.ContentType
		if contentType == "" {
			contentType = courseModels.ContentTypeText
		}

		c.Locals("sectionData", &courseModels.Section{
			ID:              strings.TrimSpace(reqData.ID),
			ModuleID:        moduleID,
			Title:           reqData.Title,
			Content:         reqData.Content,
			ContentType:     contentType,
			OrderIndex:      reqData.OrderIndex,
			DurationMinutes: reqData.DurationMinutes,
		})
		return c.Next()
	}
}

// CreateResource validates the admin resource creation payload
func CreateResource() fiber.Handler {
	return func(c *fiber.Ctx) error {
		moduleID := strings.TrimSpace(c.Params("module_id"))
		if moduleID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Module ID is required!", nil)
		}

		reqData := new(struct {
			Title       string `json:"title" validate:"required,min=3"`
			Type        string `json:"type" validate:"omitempty,oneof=pdf video link file"`
			URL         string `json:"url" validate:"required,url"`
			Description string `json:"description"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, err)
		}

		resourceType := reqData.Type
		if resourceType == "" {
			resourceType = courseModels.ResourceTypeLink
		}

		c.Locals("resourceData", &courseModels.Resource{
			ModuleID:    moduleID,
			Title:       reqData.Title,
			Type:        resourceType,
			URL:         reqData.URL,
			Description: reqData.Description,
		})
		return c.Next()
	}
}
