package course

import "time"

// Completion content types
const (
	CompletionTypeModule  = "module"
	CompletionTypeSection = "section"
)

// CompletionRecord tracks a learner's completion of a module or section.
// One row per (user, course, content, type) key, upserted, never deleted.
type CompletionRecord struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	UserID      string    `json:"user_id" gorm:"index;not null;uniqueIndex:idx_completion_key"`
	CourseID    string    `json:"course_id" gorm:"index;not null;uniqueIndex:idx_completion_key"`
	ContentID   string    `json:"content_id" gorm:"not null;uniqueIndex:idx_completion_key"`
	ContentType string    `json:"content_type" gorm:"not null;uniqueIndex:idx_completion_key"` // module, section
	Completed   bool      `json:"completed" gorm:"default:true"`
	CompletedAt time.Time `json:"completed_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
