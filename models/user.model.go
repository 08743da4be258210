package models

import (
	"time"
)

// User represents a learner. The ID is the employee code assigned by HR
// (e.g. "emp-1042"), not an auto-increment, because enrollments and
// completion records reference learners by that code.
type User struct {
	ID              string    `json:"id" gorm:"primaryKey"`
	Name            string    `json:"name"`
	Email           string    `json:"email" gorm:"uniqueIndex"`
	Password        string    `json:"-"`
	Role            string    `json:"role"`             // e.g. "Data Scientist"
	Department      string    `json:"department"`       // e.g. "Analytics"
	ExperienceLevel string    `json:"experience_level"` // junior, mid-level, senior
	IsAdmin         bool      `json:"is_admin" gorm:"default:false"`
	IsDeleted       bool      `gorm:"default:false"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
