package course

import "time"

// Course difficulty levels
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
	LevelAllLevels    = "All Levels"
)

// CatalogCourse is a course definition in the assignment-source catalog.
// The ID is a business key whose prefix selects the course family
// (e.g. "comm-skills-42", "data-analysis-7").
type CatalogCourse struct {
	ID            string    `json:"id" gorm:"primaryKey"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	CoverImageURL string    `json:"cover_image_url"`
	Level         string    `json:"level" gorm:"default:'All Levels'"`
	DurationLabel string    `json:"duration_label"` // e.g. "4 weeks"
	Instructor    string    `json:"instructor"`
	IsPublished   bool      `json:"is_published" gorm:"default:false"`
	IsDeleted     bool      `gorm:"default:false"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
