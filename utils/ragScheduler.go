package utils

import (
	"lms/database"
	courseModels "lms/models/course"
	"log"
	"time"

	"github.com/jinzhu/now"
	"github.com/robfig/cron/v3"
)

// InitializeRAGScheduler sets up the daily red/amber/green status refresh
func InitializeRAGScheduler() {
	log.Println("[RAG-SCHEDULER] Initializing RAG status scheduler...")

	c := cron.New()

	// Run daily at 6 AM to refresh learner RAG statuses
	c.AddFunc("0 6 * * *", func() {
		log.Println("[RAG-SCHEDULER] Running daily RAG status refresh...")
		RefreshRAGStatuses()
	})

	c.Start()
	log.Println("[RAG-SCHEDULER] RAG scheduler started - runs daily at 6 AM")
}

// RefreshRAGStatuses recomputes the RAG status of every active enrollment
// and assignment from its due date and progress.
func RefreshRAGStatuses() {
	db := database.Database.Db
	today := now.BeginningOfDay()

	var enrollments []courseModels.Enrollment
	if err := db.Where("is_deleted = ? AND status != ?", false, "COMPLETED").Find(&enrollments).Error; err != nil {
		log.Printf("[RAG-SCHEDULER] Error fetching enrollments: %v", err)
		return
	}
	updated := 0
	for i := range enrollments {
		e := &enrollments[i]
		status := ComputeRAGStatus(e.Progress, e.DueAt, today)
		if status != e.RAGStatus {
			e.RAGStatus = status
			if err := db.Save(e).Error; err != nil {
				log.Printf("[RAG-SCHEDULER] Error updating enrollment %d: %v", e.ID, err)
				continue
			}
			updated++
		}
	}

	var assignments []courseModels.CourseAssignment
	if err := db.Where("is_deleted = ? AND status != ?", false, "COMPLETED").Find(&assignments).Error; err != nil {
		log.Printf("[RAG-SCHEDULER] Error fetching assignments: %v", err)
		return
	}
	for i := range assignments {
		a := &assignments[i]
		status := ComputeRAGStatus(a.Progress, a.DueAt, today)
		if status != a.RAGStatus {
			a.RAGStatus = status
			if err := db.Save(a).Error; err != nil {
				log.Printf("[RAG-SCHEDULER] Error updating assignment %d: %v", a.ID, err)
				continue
			}
			updated++
		}
	}

	log.Printf("[RAG-SCHEDULER] RAG refresh complete, %d rows updated", updated)
}

// ComputeRAGStatus derives the RAG flag for an incomplete course.
// Overdue work is red, work due within a week is amber, the rest green.
func ComputeRAGStatus(progress int, dueAt *time.Time, today time.Time) string {
	if progress >= 100 {
		return courseModels.RAGGreen
	}
	if dueAt == nil {
		return courseModels.RAGGreen
	}
	if dueAt.Before(today) {
		return courseModels.RAGRed
	}
	if dueAt.Before(today.AddDate(0, 0, 7)) {
		return courseModels.RAGAmber
	}
	return courseModels.RAGGreen
}
