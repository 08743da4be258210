package services

import (
	"testing"
	"time"

	"lms/models"
	courseModels "lms/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testStore(t *testing.T) *GormContentStore {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&courseModels.CatalogCourse{},
		&courseModels.Module{},
		&courseModels.Section{},
		&courseModels.Resource{},
		&courseModels.Enrollment{},
		&courseModels.CourseAssignment{},
		&courseModels.CompletionRecord{},
	))
	return NewGormContentStore(db)
}

func TestStoreNotFoundIsNilNil(t *testing.T) {
	store := testStore(t)

	learner, err := store.GetLearner("missing")
	assert.NoError(t, err)
	assert.Nil(t, learner)

	enrollment, err := store.GetDirectEnrollment("emp-1", "comm-skills-42")
	assert.NoError(t, err)
	assert.Nil(t, enrollment)

	assignment, err := store.GetAssignment("emp-1", "comm-skills-42")
	assert.NoError(t, err)
	assert.Nil(t, assignment)

	course, err := store.GetCatalogCourse("comm-skills-42")
	assert.NoError(t, err)
	assert.Nil(t, course)

	record, err := store.GetCompletion("emp-1", "comm-skills-42", "x", courseModels.CompletionTypeModule)
	assert.NoError(t, err)
	assert.Nil(t, record)
}

func TestStoreDuplicateModuleInsert(t *testing.T) {
	store := testStore(t)
	module := courseModels.Module{
		ID: "comm-skills-42-module-1", CourseID: "comm-skills-42", Title: "Foundations", OrderIndex: 1,
		Source: courseModels.SourceTemplate,
	}

	require.NoError(t, store.InsertModule(&module))

	dup := module
	err := store.InsertModule(&dup)
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestStoreModuleOrdering(t *testing.T) {
	store := testStore(t)
	for _, idx := range []int{3, 1, 2} {
		require.NoError(t, store.InsertModule(&courseModels.Module{
			ID:         courseModuleID("comm-skills-42", idx),
			CourseID:   "comm-skills-42",
			Title:      "Module",
			OrderIndex: idx,
			Source:     courseModels.SourceTemplate,
		}))
	}

	modules, err := store.GetModules("comm-skills-42")
	require.NoError(t, err)
	require.Len(t, modules, 3)
	assert.Equal(t, 1, modules[0].OrderIndex)
	assert.Equal(t, 2, modules[1].OrderIndex)
	assert.Equal(t, 3, modules[2].OrderIndex)
}

func courseModuleID(courseID string, idx int) string {
	return courseID + "-module-" + string(rune('0'+idx))
}

func TestStoreUpsertCompletionKeepsOneRow(t *testing.T) {
	store := testStore(t)

	first := courseModels.CompletionRecord{
		UserID: "emp-1", CourseID: "comm-skills-42",
		ContentID: "comm-skills-42-module-1", ContentType: courseModels.CompletionTypeModule,
		Completed: true, CompletedAt: time.Now().UTC().Add(-time.Hour),
	}
	require.NoError(t, store.UpsertCompletion(&first))
	firstID := first.ID
	require.NotEmpty(t, firstID)

	later := time.Now().UTC()
	second := courseModels.CompletionRecord{
		UserID: "emp-1", CourseID: "comm-skills-42",
		ContentID: "comm-skills-42-module-1", ContentType: courseModels.CompletionTypeModule,
		Completed: true, CompletedAt: later,
	}
	require.NoError(t, store.UpsertCompletion(&second))

	assert.Equal(t, firstID, second.ID, "upsert reuses the existing row")

	records, err := store.GetCompletions("emp-1", "comm-skills-42")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.WithinDuration(t, later, records[0].CompletedAt, time.Second)
}

func TestStoreUpdateEnrollmentProgressDirect(t *testing.T) {
	store := testStore(t)
	require.NoError(t, store.db.Create(&courseModels.Enrollment{
		UserID: "emp-1", CourseID: "comm-skills-42", Status: "ENROLLED",
		RAGStatus: courseModels.RAGAmber, EnrolledAt: time.Now().UTC(),
	}).Error)

	now := time.Now().UTC()
	require.NoError(t, store.UpdateEnrollmentProgress("emp-1", "comm-skills-42", 33, now))

	enrollment, err := store.GetDirectEnrollment("emp-1", "comm-skills-42")
	require.NoError(t, err)
	require.NotNil(t, enrollment)
	assert.Equal(t, 33, enrollment.Progress)
	assert.Equal(t, "IN_PROGRESS", enrollment.Status)
	require.NotNil(t, enrollment.LastAccessedAt)
	assert.WithinDuration(t, now, *enrollment.LastAccessedAt, time.Second)
	assert.Nil(t, enrollment.CompletedAt)
}

func TestStoreUpdateEnrollmentProgressCompletion(t *testing.T) {
	store := testStore(t)
	require.NoError(t, store.db.Create(&courseModels.Enrollment{
		UserID: "emp-1", CourseID: "comm-skills-42", Status: "IN_PROGRESS",
		RAGStatus: courseModels.RAGAmber, EnrolledAt: time.Now().UTC(),
	}).Error)

	require.NoError(t, store.UpdateEnrollmentProgress("emp-1", "comm-skills-42", 100, time.Now().UTC()))

	enrollment, err := store.GetDirectEnrollment("emp-1", "comm-skills-42")
	require.NoError(t, err)
	assert.Equal(t, "COMPLETED", enrollment.Status)
	assert.Equal(t, courseModels.RAGGreen, enrollment.RAGStatus)
	assert.NotNil(t, enrollment.CompletedAt)
}

func TestStoreUpdateEnrollmentProgressFallsBackToAssignment(t *testing.T) {
	store := testStore(t)
	require.NoError(t, store.db.Create(&courseModels.CourseAssignment{
		UserID: "emp-1", CourseID: "data-analysis-3", Status: "ASSIGNED",
		RAGStatus: courseModels.RAGAmber, AssignedAt: time.Now().UTC(),
	}).Error)

	require.NoError(t, store.UpdateEnrollmentProgress("emp-1", "data-analysis-3", 50, time.Now().UTC()))

	assignment, err := store.GetAssignment("emp-1", "data-analysis-3")
	require.NoError(t, err)
	assert.Equal(t, 50, assignment.Progress)
	assert.Equal(t, "IN_PROGRESS", assignment.Status)
}

func TestStoreUpdateEnrollmentProgressNoRowsIsNoop(t *testing.T) {
	store := testStore(t)

	assert.NoError(t, store.UpdateEnrollmentProgress("emp-1", "comm-skills-42", 50, time.Now().UTC()))
}

func TestStoreSoftDeletedRowsAreInvisible(t *testing.T) {
	store := testStore(t)
	require.NoError(t, store.db.Create(&courseModels.Enrollment{
		UserID: "emp-1", CourseID: "comm-skills-42", Status: "ENROLLED",
		EnrolledAt: time.Now().UTC(), IsDeleted: true,
	}).Error)

	enrollment, err := store.GetDirectEnrollment("emp-1", "comm-skills-42")
	assert.NoError(t, err)
	assert.Nil(t, enrollment)
}
