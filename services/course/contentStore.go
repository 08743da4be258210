package services

import (
	"errors"
	"lms/models"
	courseModels "lms/models/course"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContentStore is the persistence boundary of the resolution pipeline.
// Single-row reads return (nil, nil) when no row matches, so callers can
// tell "not found" apart from a transport or data error.
type ContentStore interface {
	GetLearner(userID string) (*models.User, error)
	GetDirectEnrollment(userID, courseID string) (*courseModels.Enrollment, error)
	GetAssignment(userID, courseID string) (*courseModels.CourseAssignment, error)
	GetCatalogCourse(courseID string) (*courseModels.CatalogCourse, error)

	GetModules(courseID string) ([]courseModels.Module, error)
	GetSections(moduleIDs []string) ([]courseModels.Section, error)
	GetResources(courseID string) ([]courseModels.Resource, error)
	GetCompletions(userID, courseID string) ([]courseModels.CompletionRecord, error)
	GetCompletion(userID, courseID, contentID, contentType string) (*courseModels.CompletionRecord, error)

	InsertModule(module *courseModels.Module) error
	InsertSection(section *courseModels.Section) error
	InsertResource(resource *courseModels.Resource) error
	UpsertCompletion(record *courseModels.CompletionRecord) error
	UpdateEnrollmentProgress(userID, courseID string, percent int, accessedAt time.Time) error

	ListEnrollments(userID string) ([]courseModels.Enrollment, error)
	ListAssignments(userID string) ([]courseModels.CourseAssignment, error)
}

// GormContentStore implements ContentStore on top of a GORM handle
type GormContentStore struct {
	db *gorm.DB
}

// NewGormContentStore creates a store backed by the given database handle
func NewGormContentStore(db *gorm.DB) *GormContentStore {
	return &GormContentStore{db: db}
}

func (s *GormContentStore) GetLearner(userID string) (*models.User, error) {
	var user models.User
	err := s.db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *GormContentStore) GetDirectEnrollment(userID, courseID string) (*courseModels.Enrollment, error) {
	var enrollment courseModels.Enrollment
	err := s.db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (s *GormContentStore) GetAssignment(userID, courseID string) (*courseModels.CourseAssignment, error) {
	var assignment courseModels.CourseAssignment
	err := s.db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&assignment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (s *GormContentStore) GetCatalogCourse(courseID string) (*courseModels.CatalogCourse, error) {
	var course courseModels.CatalogCourse
	err := s.db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (s *GormContentStore) GetModules(courseID string) ([]courseModels.Module, error) {
	var modules []courseModels.Module
	err := s.db.Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("order_index asc").Find(&modules).Error
	if err != nil {
		return nil, err
	}
	return modules, nil
}

func (s *GormContentStore) GetSections(moduleIDs []string) ([]courseModels.Section, error) {
	if len(moduleIDs) == 0 {
		return nil, nil
	}
	var sections []courseModels.Section
	err := s.db.Where("module_id IN ? AND is_deleted = ?", moduleIDs, false).
		Order("order_index asc").Find(&sections).Error
	if err != nil {
		return nil, err
	}
	return sections, nil
}

func (s *GormContentStore) GetResources(courseID string) ([]courseModels.Resource, error) {
	var resources []courseModels.Resource
	err := s.db.Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("created_at asc").Find(&resources).Error
	if err != nil {
		return nil, err
	}
	return resources, nil
}

func (s *GormContentStore) GetCompletions(userID, courseID string) ([]courseModels.CompletionRecord, error) {
	var completions []courseModels.CompletionRecord
	err := s.db.Where("user_id = ? AND course_id = ?", userID, courseID).Find(&completions).Error
	if err != nil {
		return nil, err
	}
	return completions, nil
}

func (s *GormContentStore) GetCompletion(userID, courseID, contentID, contentType string) (*courseModels.CompletionRecord, error) {
	var record courseModels.CompletionRecord
	err := s.db.Where("user_id = ? AND course_id = ? AND content_id = ? AND content_type = ?",
		userID, courseID, contentID, contentType).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *GormContentStore) InsertModule(module *courseModels.Module) error {
	err := s.db.Create(module).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrAlreadyExists
	}
	return err
}

func (s *GormContentStore) InsertSection(section *courseModels.Section) error {
	err := s.db.Create(section).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrAlreadyExists
	}
	return err
}

func (s *GormContentStore) InsertResource(resource *courseModels.Resource) error {
	err := s.db.Create(resource).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrAlreadyExists
	}
	return err
}

// UpsertCompletion inserts a new completion record or refreshes the
// existing one for the same (user, course, content, type) key.
func (s *GormContentStore) UpsertCompletion(record *courseModels.CompletionRecord) error {
	var existing courseModels.CompletionRecord
	err := s.db.Where("user_id = ? AND course_id = ? AND content_id = ? AND content_type = ?",
		record.UserID, record.CourseID, record.ContentID, record.ContentType).First(&existing).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		if record.ID == "" {
			record.ID = uuid.New().String()
		}
		return s.db.Create(record).Error
	}
	if err != nil {
		return err
	}

	existing.Completed = record.Completed
	existing.CompletedAt = record.CompletedAt
	if err := s.db.Save(&existing).Error; err != nil {
		return err
	}
	*record = existing
	return nil
}

// UpdateEnrollmentProgress writes the recomputed percentage onto whichever
// enrollment row exists for the pair, preferring the direct enrollment.
func (s *GormContentStore) UpdateEnrollmentProgress(userID, courseID string, percent int, accessedAt time.Time) error {
	var enrollment courseModels.Enrollment
	err := s.db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error
	if err == nil {
		enrollment.Progress = percent
		enrollment.LastAccessedAt = &accessedAt
		applyEnrollmentStatus(&enrollment.Status, &enrollment.RAGStatus, &enrollment.CompletedAt, percent, accessedAt, "IN_PROGRESS")
		return s.db.Save(&enrollment).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	var assignment courseModels.CourseAssignment
	err = s.db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&assignment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil // nothing to update
	}
	if err != nil {
		return err
	}
	assignment.Progress = percent
	assignment.LastAccessedAt = &accessedAt
	applyEnrollmentStatus(&assignment.Status, &assignment.RAGStatus, &assignment.CompletedAt, percent, accessedAt, "IN_PROGRESS")
	return s.db.Save(&assignment).Error
}

func applyEnrollmentStatus(status, ragStatus *string, completedAt **time.Time, percent int, at time.Time, inProgress string) {
	if percent >= 100 {
		*status = "COMPLETED"
		*ragStatus = courseModels.RAGGreen
		t := at
		*completedAt = &t
	} else if percent > 0 {
		*status = inProgress
	}
}

func (s *GormContentStore) ListEnrollments(userID string) ([]courseModels.Enrollment, error) {
	var enrollments []courseModels.Enrollment
	err := s.db.Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("created_at desc").Find(&enrollments).Error
	if err != nil {
		return nil, err
	}
	return enrollments, nil
}

func (s *GormContentStore) ListAssignments(userID string) ([]courseModels.CourseAssignment, error) {
	var assignments []courseModels.CourseAssignment
	err := s.db.Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("created_at desc").Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}
