package course

import (
	"time"

	"gorm.io/gorm"
)

// RAG status tags on an enrollment (traffic-light severity)
const (
	RAGRed   = "red"
	RAGAmber = "amber"
	RAGGreen = "green"
)

// Enrollment sources
const (
	EnrollmentSourceDirect     = "direct"
	EnrollmentSourceAssignment = "assignment"
)

// Enrollment tracks a learner's direct enrollment in a course with progress
type Enrollment struct {
	gorm.Model
	UserID         string     `json:"user_id" gorm:"index;not null"`
	CourseID       string     `json:"course_id" gorm:"index;not null"`
	Status         string     `json:"status" gorm:"default:'ENROLLED'"` // ENROLLED, IN_PROGRESS, COMPLETED
	Progress       int        `json:"progress" gorm:"default:0"`        // Completion percentage (0-100)
	RAGStatus      string     `json:"rag_status" gorm:"default:'amber'"`
	EnrolledAt     time.Time  `json:"enrolled_at"`
	DueAt          *time.Time `json:"due_at"`
	LastAccessedAt *time.Time `json:"last_accessed_at"`
	CompletedAt    *time.Time `json:"completed_at"`
	IsDeleted      bool       `gorm:"default:false"`
}

// CourseAssignment tracks a course assigned to a learner by a manager or
// an automated development-plan workflow. It references the catalog course
// for title/level metadata.
type CourseAssignment struct {
	gorm.Model
	UserID         string     `json:"user_id" gorm:"index;not null"`
	CourseID       string     `json:"course_id" gorm:"index;not null"`
	AssignedBy     string     `json:"assigned_by"`
	Status         string     `json:"status" gorm:"default:'ASSIGNED'"` // ASSIGNED, IN_PROGRESS, COMPLETED
	Progress       int        `json:"progress" gorm:"default:0"`
	RAGStatus      string     `json:"rag_status" gorm:"default:'amber'"`
	AssignedAt     time.Time  `json:"assigned_at"`
	DueAt          *time.Time `json:"due_at"`
	LastAccessedAt *time.Time `json:"last_accessed_at"`
	CompletedAt    *time.Time `json:"completed_at"`
	IsDeleted      bool       `gorm:"default:false"`
}
