package utils

import (
	"testing"
	"time"

	courseModels "lms/models/course"

	"github.com/stretchr/testify/assert"
)

func TestComputeRAGStatus(t *testing.T) {
	today := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)
	inThreeDays := today.AddDate(0, 0, 3)
	inTwoWeeks := today.AddDate(0, 0, 14)

	assert.Equal(t, courseModels.RAGGreen, ComputeRAGStatus(100, &yesterday, today), "completed work is always green")
	assert.Equal(t, courseModels.RAGGreen, ComputeRAGStatus(50, nil, today), "no due date means no pressure")
	assert.Equal(t, courseModels.RAGRed, ComputeRAGStatus(50, &yesterday, today), "overdue work is red")
	assert.Equal(t, courseModels.RAGAmber, ComputeRAGStatus(50, &inThreeDays, today), "due within a week is amber")
	assert.Equal(t, courseModels.RAGGreen, ComputeRAGStatus(50, &inTwoWeeks, today), "distant due dates stay green")
}
