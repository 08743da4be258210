package course

import "time"

// Resource types
const (
	ResourceTypePDF   = "pdf"
	ResourceTypeVideo = "video"
	ResourceTypeLink  = "link"
	ResourceTypeFile  = "file"
)

// Resource is a supporting material attached to a module.
// Resources are immutable once created.
type Resource struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	CourseID    string    `json:"course_id" gorm:"index;not null"`
	ModuleID    string    `json:"module_id" gorm:"index;not null"`
	Title       string    `json:"title"`
	Type        string    `json:"type" gorm:"default:'link'"` // pdf, video, link, file
	URL         string    `json:"url"`
	Description string    `json:"description"`
	IsDeleted   bool      `gorm:"default:false"`
	CreatedAt   time.Time `json:"created_at"`
}
