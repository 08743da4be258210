package course

import (
	"time"

	"gorm.io/datatypes"
)

// Content generation sources
const (
	SourceAuthored = "AUTHORED"
	SourceAI       = "AI_GENERATED"
	SourceTemplate = "TEMPLATE"
)

// Section content types
const (
	ContentTypeText        = "text"
	ContentTypeVideo       = "video"
	ContentTypeQuiz        = "quiz"
	ContentTypeInteractive = "interactive"
)

// Module represents a module within a course. Generated modules carry
// synthetic ids derived from the course id ("comm-skills-42-module-1").
type Module struct {
	ID                 string         `json:"id" gorm:"primaryKey"`
	CourseID           string         `json:"course_id" gorm:"index;not null"`
	Title              string         `json:"title"`
	Description        string         `json:"description"`
	OrderIndex         int            `json:"order_index" gorm:"default:0"` // Module order in course, unique per course
	DurationMinutes    int            `json:"duration_minutes" gorm:"default:0"`
	LearningObjectives datatypes.JSON `json:"learning_objectives"`
	Keywords           datatypes.JSON `json:"keywords"`
	Source             string         `json:"source" gorm:"default:'AUTHORED'"` // AUTHORED, AI_GENERATED, TEMPLATE
	IsDeleted          bool           `gorm:"default:false"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

// Section represents a content unit within a module
type Section struct {
	ID              string    `json:"id" gorm:"primaryKey"`
	ModuleID        string    `json:"module_id" gorm:"index;not null"`
	CourseID        string    `json:"course_id" gorm:"index;not null"`
	Title           string    `json:"title"`
	Content         string    `json:"content" gorm:"type:text"` // Rendered markup
	ContentType     string    `json:"content_type" gorm:"default:'text'"` // text, video, quiz, interactive
	OrderIndex      int       `json:"order_index" gorm:"default:0"`
	DurationMinutes int       `json:"duration_minutes" gorm:"default:20"`
	IsDeleted       bool      `gorm:"default:false"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
