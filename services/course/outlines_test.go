package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutlineForCoursePrefixMatch(t *testing.T) {
	assert.Equal(t, "communications-skills", OutlineForCourse("comm-skills-42").Family)
	assert.Equal(t, "communications-skills", OutlineForCourse("comm-skills").Family)
	assert.Equal(t, "data-analysis", OutlineForCourse("data-analysis-3").Family)
}

func TestOutlineForCourseUnknownPrefixIsGeneric(t *testing.T) {
	outline := OutlineForCourse("leadership-101")

	assert.Equal(t, "generic", outline.Family)
	require.Len(t, outline.Modules, 3)
	assert.Equal(t, "Introduction", outline.Modules[0].Title)
	assert.Equal(t, "Core Principles", outline.Modules[1].Title)
	assert.Equal(t, "Advanced Applications", outline.Modules[2].Title)
}

func TestOutlinesAreWellFormed(t *testing.T) {
	outlines := []CourseOutline{commSkillsOutline, dataAnalysisOutline, genericOutline}
	for _, outline := range outlines {
		require.Len(t, outline.Modules, 3, outline.Family)
		for _, module := range outline.Modules {
			assert.NotEmpty(t, module.Title)
			assert.NotEmpty(t, module.Objectives, module.Title)
			assert.NotEmpty(t, module.Sections, module.Title)
			for _, section := range module.Sections {
				assert.NotEmpty(t, section.Title)
				assert.NotEmpty(t, section.ContentType)
			}
		}
	}
}

func TestTemplateModuleDefaultDurations(t *testing.T) {
	bundle := buildTemplateModule("leadership-101", "Leadership 101", genericOutline.Modules[0], 0)

	total := 0
	for _, section := range bundle.Sections {
		assert.Greater(t, section.DurationMinutes, 0)
		total += section.DurationMinutes
	}
	assert.Equal(t, total, bundle.Module.DurationMinutes)

	// outline leaves text sections without a duration
	assert.Equal(t, DefaultSectionMinutes, bundle.Sections[0].DurationMinutes)
}
