package services

import (
	"fmt"
	courseModels "lms/models/course"
	"log"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CourseService resolves the full course view for a learner and tracks
// completion. It is stateless; every resolution re-executes the chain
// enrollment → structured content → generation fallback.
type CourseService struct {
	store     ContentStore
	generator ContentGenerator
}

// NewCourseService creates the service with its injected dependencies.
// A nil generator disables personalized generation entirely.
func NewCourseService(store ContentStore, generator ContentGenerator) *CourseService {
	return &CourseService{store: store, generator: generator}
}

// resolvedEnrollment is the normalized view over the two enrollment
// mechanisms, together with the catalog metadata of the course.
type resolvedEnrollment struct {
	UserID         string
	CourseID       string
	Source         string
	Progress       int
	RAGStatus      string
	EnrolledAt     time.Time
	DueAt          *time.Time
	LastAccessedAt *time.Time

	Title         string
	Description   string
	CoverImage    string
	Level         string
	DurationLabel string
	Instructor    string
}

// GetCourseView resolves the complete course view for a learner.
// Returns (nil, nil) when the learner has no enrollment through either
// mechanism. Structured content is loaded from the store when present,
// otherwise generated (personalized first, template as backstop) and
// persisted.
func (s *CourseService) GetCourseView(courseID, userID string) (*CourseView, error) {
	enrollment, err := s.resolveEnrollment(userID, courseID)
	if err != nil {
		return nil, err
	}
	if enrollment == nil {
		return nil, nil
	}

	moduleViews, hasContent, err := s.loadModuleViews(enrollment)
	if err != nil {
		return nil, err
	}
	if !hasContent {
		moduleViews, err = s.generateAndPersist(enrollment)
		if err != nil {
			return nil, err
		}
	}

	return &CourseView{
		ID:            enrollment.CourseID,
		Title:         enrollment.Title,
		Description:   enrollment.Description,
		CoverImage:    enrollment.CoverImage,
		Level:         enrollment.Level,
		DurationLabel: enrollment.DurationLabel,
		Instructor:    enrollment.Instructor,
		Source:        enrollment.Source,
		Progress:      enrollment.Progress,
		RAGStatus:     enrollment.RAGStatus,
		DueAt:         enrollment.DueAt,
		Modules:       moduleViews,
	}, nil
}

// resolveEnrollment checks the two enrollment mechanisms in priority
// order: direct enrollment first, then course assignment. A missing row
// in both is "not enrolled" (nil, nil), any other read failure aborts.
func (s *CourseService) resolveEnrollment(userID, courseID string) (*resolvedEnrollment, error) {
	direct, err := s.store.GetDirectEnrollment(userID, courseID)
	if err != nil {
		return nil, &DataSourceError{Op: "enrollment lookup", Err: err}
	}
	if direct != nil {
		resolved := &resolvedEnrollment{
			UserID:         userID,
			CourseID:       courseID,
			Source:         courseModels.EnrollmentSourceDirect,
			Progress:       clampPercent(direct.Progress),
			RAGStatus:      normalizeRAG(direct.RAGStatus),
			EnrolledAt:     direct.EnrolledAt,
			DueAt:          direct.DueAt,
			LastAccessedAt: direct.LastAccessedAt,
		}
		if resolved.EnrolledAt.IsZero() {
			resolved.EnrolledAt = direct.CreatedAt
		}
		if err := s.attachCourseMetadata(resolved); err != nil {
			return nil, err
		}
		return resolved, nil
	}

	assignment, err := s.store.GetAssignment(userID, courseID)
	if err != nil {
		return nil, &DataSourceError{Op: "assignment lookup", Err: err}
	}
	if assignment == nil {
		return nil, nil
	}

	resolved := &resolvedEnrollment{
		UserID:         userID,
		CourseID:       courseID,
		Source:         courseModels.EnrollmentSourceAssignment,
		Progress:       clampPercent(assignment.Progress),
		RAGStatus:      normalizeRAG(assignment.RAGStatus),
		EnrolledAt:     assignment.AssignedAt,
		DueAt:          assignment.DueAt,
		LastAccessedAt: assignment.LastAccessedAt,
	}
	if resolved.EnrolledAt.IsZero() {
		resolved.EnrolledAt = assignment.CreatedAt
	}
	if err := s.attachCourseMetadata(resolved); err != nil {
		return nil, err
	}
	return resolved, nil
}

// attachCourseMetadata fills title/level fields from the course catalog,
// deriving a readable title from the course id when no catalog row exists
// (generated-only courses never get an authored catalog entry).
func (s *CourseService) attachCourseMetadata(resolved *resolvedEnrollment) error {
	catalog, err := s.store.GetCatalogCourse(resolved.CourseID)
	if err != nil {
		return &DataSourceError{Op: "catalog lookup", Err: err}
	}
	if catalog != nil {
		resolved.Title = catalog.Title
		resolved.Description = catalog.Description
		resolved.CoverImage = catalog.CoverImageURL
		resolved.Level = catalog.Level
		resolved.DurationLabel = catalog.DurationLabel
		resolved.Instructor = catalog.Instructor
	}
	if resolved.Title == "" {
		resolved.Title = deriveCourseTitle(resolved.CourseID)
	}
	if resolved.Level == "" {
		resolved.Level = courseModels.LevelAllLevels
	}
	return nil
}

// loadModuleViews loads the structured content for a course and merges
// the learner's completion flags onto it. hasContent is false when the
// course has no modules in storage, which is not an error.
func (s *CourseService) loadModuleViews(enrollment *resolvedEnrollment) ([]ModuleView, bool, error) {
	modules, err := s.store.GetModules(enrollment.CourseID)
	if err != nil {
		return nil, false, &DataSourceError{Op: "module load", Err: err}
	}
	if len(modules) == 0 {
		return nil, false, nil
	}

	moduleIDs := make([]string, len(modules))
	for i, m := range modules {
		moduleIDs[i] = m.ID
	}

	sections, err := s.store.GetSections(moduleIDs)
	if err != nil {
		return nil, false, &DataSourceError{Op: "section load", Err: err}
	}
	resources, err := s.store.GetResources(enrollment.CourseID)
	if err != nil {
		return nil, false, &DataSourceError{Op: "resource load", Err: err}
	}
	completions, err := s.store.GetCompletions(enrollment.UserID, enrollment.CourseID)
	if err != nil {
		return nil, false, &DataSourceError{Op: "completion load", Err: err}
	}

	completed := make(map[string]bool, len(completions))
	for _, record := range completions {
		if record.Completed {
			completed[record.ContentType+":"+record.ContentID] = true
		}
	}

	sectionsByModule := make(map[string][]SectionView)
	for _, section := range sections {
		sectionsByModule[section.ModuleID] = append(sectionsByModule[section.ModuleID], SectionView{
			ID:              section.ID,
			Title:           section.Title,
			Content:         section.Content,
			ContentType:     section.ContentType,
			OrderIndex:      section.OrderIndex,
			DurationMinutes: section.DurationMinutes,
			IsCompleted:     completed[courseModels.CompletionTypeSection+":"+section.ID],
		})
	}

	resourcesByModule := make(map[string][]ResourceView)
	for _, resource := range resources {
		resourcesByModule[resource.ModuleID] = append(resourcesByModule[resource.ModuleID], ResourceView{
			ID:          resource.ID,
			Title:       resource.Title,
			Type:        resource.Type,
			URL:         resource.URL,
			Description: resource.Description,
			CreatedAt:   resource.CreatedAt,
		})
	}

	views := make([]ModuleView, len(modules))
	for i, module := range modules {
		view := ModuleView{
			ID:              module.ID,
			Title:           module.Title,
			Description:     module.Description,
			OrderIndex:      module.OrderIndex,
			DurationMinutes: module.DurationMinutes,
			IsCompleted:     completed[courseModels.CompletionTypeModule+":"+module.ID],
			Sections:        sectionsByModule[module.ID],
			Resources:       resourcesByModule[module.ID],
		}
		if view.DurationMinutes == 0 {
			for _, section := range view.Sections {
				view.DurationMinutes += section.DurationMinutes
			}
		}
		views[i] = view
	}
	return views, true, nil
}

// generateAndPersist produces the course's content from its family
// outline and writes it to the store. When a concurrent resolution has
// persisted content first, the freshly stored content is loaded instead.
func (s *CourseService) generateAndPersist(enrollment *resolvedEnrollment) ([]ModuleView, error) {
	learner, err := s.store.GetLearner(enrollment.UserID)
	if err != nil {
		return nil, &DataSourceError{Op: "learner lookup", Err: err}
	}

	audience := TargetAudience{SkillLevel: strings.ToLower(enrollment.Level)}
	if learner != nil {
		if learner.ExperienceLevel != "" {
			audience.SkillLevel = learner.ExperienceLevel
		}
		audience.Role = learner.Role
		audience.Department = learner.Department
	}

	bundles := generateCourseModules(enrollment.CourseID, enrollment.Title, audience, s.generator)

	for i := range bundles {
		if err := s.store.InsertModule(&bundles[i].Module); err != nil {
			if err == ErrAlreadyExists {
				// Another resolution generated first; its content wins.
				log.Printf("[CONTENT-GEN] Content for course %s already persisted, reloading", enrollment.CourseID)
				views, _, loadErr := s.loadModuleViews(enrollment)
				if loadErr != nil {
					return nil, loadErr
				}
				return views, nil
			}
			return nil, &PersistenceError{Op: "module persistence", Err: err}
		}
		for j := range bundles[i].Sections {
			if err := s.store.InsertSection(&bundles[i].Sections[j]); err != nil && err != ErrAlreadyExists {
				return nil, &PersistenceError{Op: "section persistence", Err: err}
			}
		}
	}

	views := make([]ModuleView, len(bundles))
	for i, bundle := range bundles {
		sectionViews := make([]SectionView, len(bundle.Sections))
		for j, section := range bundle.Sections {
			sectionViews[j] = SectionView{
				ID:              section.ID,
				Title:           section.Title,
				Content:         section.Content,
				ContentType:     section.ContentType,
				OrderIndex:      section.OrderIndex,
				DurationMinutes: section.DurationMinutes,
			}
		}
		views[i] = ModuleView{
			ID:              bundle.Module.ID,
			Title:           bundle.Module.Title,
			Description:     bundle.Module.Description,
			OrderIndex:      bundle.Module.OrderIndex,
			DurationMinutes: bundle.Module.DurationMinutes,
			Sections:        sectionViews,
			Resources:       []ResourceView{},
		}
	}
	return views, nil
}

// MarkCompleted idempotently records completion of a module or section
// and synchronously recomputes the learner's course progress. Returns the
// updated progress percentage.
func (s *CourseService) MarkCompleted(userID, courseID, contentID, contentType string) (int, error) {
	if contentType != courseModels.CompletionTypeModule && contentType != courseModels.CompletionTypeSection {
		return 0, fmt.Errorf("invalid content type %q", contentType)
	}

	record := &courseModels.CompletionRecord{
		UserID:      userID,
		CourseID:    courseID,
		ContentID:   contentID,
		ContentType: contentType,
		Completed:   true,
		CompletedAt: time.Now().UTC(),
	}

	existing, err := s.store.GetCompletion(userID, courseID, contentID, contentType)
	if err != nil {
		return 0, &PersistenceError{Op: "completion lookup", Err: err}
	}
	if existing != nil {
		record.ID = existing.ID
	} else {
		record.ID = uuid.New().String()
	}

	if err := s.store.UpsertCompletion(record); err != nil {
		return 0, &PersistenceError{Op: "completion upsert", Err: err}
	}

	return s.recomputeProgress(userID, courseID)
}

// recomputeProgress recalculates the learner's completion percentage
// from module-level completion records only. Section completion is
// informational and does not count toward the percentage.
func (s *CourseService) recomputeProgress(userID, courseID string) (int, error) {
	modules, err := s.store.GetModules(courseID)
	if err != nil {
		return 0, &PersistenceError{Op: "progress module load", Err: err}
	}
	completions, err := s.store.GetCompletions(userID, courseID)
	if err != nil {
		return 0, &PersistenceError{Op: "progress completion load", Err: err}
	}

	moduleIDs := make(map[string]bool, len(modules))
	for _, module := range modules {
		moduleIDs[module.ID] = true
	}

	completedModules := make(map[string]bool)
	for _, record := range completions {
		if record.ContentType == courseModels.CompletionTypeModule && record.Completed && moduleIDs[record.ContentID] {
			completedModules[record.ContentID] = true
		}
	}

	percent := 0
	if len(modules) > 0 {
		percent = int(math.Round(100 * float64(len(completedModules)) / float64(len(modules))))
	}

	if err := s.store.UpdateEnrollmentProgress(userID, courseID, percent, time.Now().UTC()); err != nil {
		return 0, &PersistenceError{Op: "progress update", Err: err}
	}
	return percent, nil
}

// ListEnrollments returns the learner's course list across both
// enrollment mechanisms, direct enrollments taking priority when a
// course appears through both.
func (s *CourseService) ListEnrollments(userID string) ([]EnrollmentView, error) {
	enrollments, err := s.store.ListEnrollments(userID)
	if err != nil {
		return nil, &DataSourceError{Op: "enrollment list", Err: err}
	}
	assignments, err := s.store.ListAssignments(userID)
	if err != nil {
		return nil, &DataSourceError{Op: "assignment list", Err: err}
	}

	views := make([]EnrollmentView, 0, len(enrollments)+len(assignments))
	seen := make(map[string]bool)

	for _, enrollment := range enrollments {
		views = append(views, EnrollmentView{
			CourseID:       enrollment.CourseID,
			Title:          s.courseTitle(enrollment.CourseID),
			Source:         courseModels.EnrollmentSourceDirect,
			Status:         enrollment.Status,
			Progress:       clampPercent(enrollment.Progress),
			RAGStatus:      normalizeRAG(enrollment.RAGStatus),
			EnrolledAt:     enrollment.CreatedAt,
			DueAt:          enrollment.DueAt,
			LastAccessedAt: enrollment.LastAccessedAt,
		})
		seen[enrollment.CourseID] = true
	}

	for _, assignment := range assignments {
		if seen[assignment.CourseID] {
			continue
		}
		views = append(views, EnrollmentView{
			CourseID:       assignment.CourseID,
			Title:          s.courseTitle(assignment.CourseID),
			Source:         courseModels.EnrollmentSourceAssignment,
			Status:         assignment.Status,
			Progress:       clampPercent(assignment.Progress),
			RAGStatus:      normalizeRAG(assignment.RAGStatus),
			EnrolledAt:     assignment.CreatedAt,
			DueAt:          assignment.DueAt,
			LastAccessedAt: assignment.LastAccessedAt,
		})
	}

	return views, nil
}

func (s *CourseService) courseTitle(courseID string) string {
	catalog, err := s.store.GetCatalogCourse(courseID)
	if err == nil && catalog != nil {
		return catalog.Title
	}
	return deriveCourseTitle(courseID)
}

func clampPercent(percent int) int {
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}

func normalizeRAG(tag string) string {
	switch tag {
	case courseModels.RAGRed, courseModels.RAGAmber, courseModels.RAGGreen:
		return tag
	default:
		return courseModels.RAGAmber
	}
}

// deriveCourseTitle humanizes a course id for courses that never got an
// authored catalog entry ("comm-skills-42" -> "Comm Skills 42").
func deriveCourseTitle(courseID string) string {
	words := strings.FieldsFunc(courseID, func(r rune) bool {
		return r == '-' || r == '_'
	})
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
