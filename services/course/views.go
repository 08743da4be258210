package services

import "time"

// CourseView is the fully resolved course a learner sees: catalog metadata,
// ordered modules with completion flags, and the learner's progress. It is
// assembled on every request and never cached.
type CourseView struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	CoverImage    string       `json:"cover_image,omitempty"`
	Level         string       `json:"level"`
	DurationLabel string       `json:"duration_label"`
	Instructor    string       `json:"instructor,omitempty"`
	Source        string       `json:"source"` // direct, assignment
	Progress      int          `json:"progress"`
	RAGStatus     string       `json:"rag_status"`
	DueAt         *time.Time   `json:"due_at,omitempty"`
	Modules       []ModuleView `json:"modules"`
}

// ModuleView is a module with its sections, resources and completion state
type ModuleView struct {
	ID              string         `json:"id"`
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	OrderIndex      int            `json:"order_index"`
	DurationMinutes int            `json:"duration_minutes"`
	IsCompleted     bool           `json:"is_completed"`
	Sections        []SectionView  `json:"sections"`
	Resources       []ResourceView `json:"resources"`
}

// SectionView is a section with its completion state
type SectionView struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Content         string `json:"content"`
	ContentType     string `json:"content_type"`
	OrderIndex      int    `json:"order_index"`
	DurationMinutes int    `json:"duration_minutes"`
	IsCompleted     bool   `json:"is_completed"`
}

// ResourceView is a module resource
type ResourceView struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Type        string    `json:"type"`
	URL         string    `json:"url"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// EnrollmentView is one row of a learner's course list, normalized across
// direct enrollments and assignments.
type EnrollmentView struct {
	CourseID       string     `json:"course_id"`
	Title          string     `json:"title"`
	Source         string     `json:"source"`
	Status         string     `json:"status"`
	Progress       int        `json:"progress"`
	RAGStatus      string     `json:"rag_status"`
	EnrolledAt     time.Time  `json:"enrolled_at"`
	DueAt          *time.Time `json:"due_at,omitempty"`
	LastAccessedAt *time.Time `json:"last_accessed_at,omitempty"`
}
