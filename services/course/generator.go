package services

import (
	"encoding/json"
	"fmt"
	courseModels "lms/models/course"
	"log"
	"strings"
	"sync"
	"time"
)

// TargetAudience describes who the content is being generated for
type TargetAudience struct {
	SkillLevel string `json:"skillLevel"`
	Role       string `json:"role,omitempty"`
	Department string `json:"department,omitempty"`
}

// ContentRequest is one module-generation request for the external
// content generation collaborator.
type ContentRequest struct {
	Topic                string         `json:"topic"`
	TargetAudience       TargetAudience `json:"targetAudience"`
	LearningObjectives   []string       `json:"learningObjectives"`
	Keywords             []string       `json:"keywords"`
	IncludeExamples      bool           `json:"includeExamples"`
	IncludeQuizQuestions bool           `json:"includeQuizQuestions"`
}

// GeneratedSection is one section body returned by the collaborator
type GeneratedSection struct {
	Content string `json:"content"`
}

// ContentResponse is the collaborator's answer for one module
type ContentResponse struct {
	MainContent string             `json:"mainContent"`
	Sections    []GeneratedSection `json:"sections,omitempty"`
}

// ContentGenerator produces personalized module content. Implementations
// may fail; the pipeline always falls back to template content per module.
type ContentGenerator interface {
	GenerateModuleContent(req ContentRequest) (*ContentResponse, error)
}

// generatedModule bundles a module with its sections before persistence
type generatedModule struct {
	Module   courseModels.Module
	Sections []courseModels.Section
}

// generateCourseModules builds the full module set for a course from its
// family outline. When a generator is configured, all module requests run
// concurrently; any module whose generation fails gets template content
// without affecting the others. With no generator, everything is template.
func generateCourseModules(courseID, courseTitle string, audience TargetAudience, generator ContentGenerator) []generatedModule {
	outline := OutlineForCourse(courseID)
	results := make([]generatedModule, len(outline.Modules))

	if generator == nil {
		for i, mo := range outline.Modules {
			results[i] = buildTemplateModule(courseID, courseTitle, mo, i)
		}
		return results
	}

	var wg sync.WaitGroup
	for i, mo := range outline.Modules {
		wg.Add(1)
		go func(idx int, mo ModuleOutline) {
			defer wg.Done()
			results[idx] = buildPersonalizedModule(courseID, courseTitle, audience, mo, idx, generator)
		}(i, mo)
	}
	wg.Wait()

	return results
}

// buildPersonalizedModule asks the collaborator for one module's content
// and falls back to the template when the answer is unusable.
func buildPersonalizedModule(courseID, courseTitle string, audience TargetAudience, mo ModuleOutline, idx int, generator ContentGenerator) generatedModule {
	req := ContentRequest{
		Topic:                fmt.Sprintf("%s: %s", courseTitle, mo.Title),
		TargetAudience:       audience,
		LearningObjectives:   mo.Objectives,
		Keywords:             mo.Keywords,
		IncludeExamples:      true,
		IncludeQuizQuestions: true,
	}

	resp, err := generator.GenerateModuleContent(req)
	if err != nil {
		genErr := &GenerationError{ModuleTitle: mo.Title, Err: err}
		log.Printf("[CONTENT-GEN] %v, falling back to template content", genErr)
		return buildTemplateModule(courseID, courseTitle, mo, idx)
	}
	if !usableResponse(resp) {
		log.Printf("[CONTENT-GEN] Empty response for module %q, falling back to template content", mo.Title)
		return buildTemplateModule(courseID, courseTitle, mo, idx)
	}

	result := buildTemplateModule(courseID, courseTitle, mo, idx)
	result.Module.Source = courseModels.SourceAI
	for j := range result.Sections {
		if content := personalizedSectionContent(resp, j); content != "" {
			result.Sections[j].Content = content
		}
	}
	return result
}

// personalizedSectionContent picks the collaborator content for section j.
// MainContent stands in for the first section when no per-section bodies
// were returned; sections beyond what the collaborator produced keep their
// template body.
func personalizedSectionContent(resp *ContentResponse, j int) string {
	if j < len(resp.Sections) && strings.TrimSpace(resp.Sections[j].Content) != "" {
		return resp.Sections[j].Content
	}
	if j == 0 && len(resp.Sections) == 0 {
		return resp.MainContent
	}
	return ""
}

func usableResponse(resp *ContentResponse) bool {
	if resp == nil {
		return false
	}
	if strings.TrimSpace(resp.MainContent) != "" {
		return true
	}
	for _, s := range resp.Sections {
		if strings.TrimSpace(s.Content) != "" {
			return true
		}
	}
	return false
}

// buildTemplateModule deterministically synthesizes a module and its
// sections from the outline alone. This path has no failure mode.
func buildTemplateModule(courseID, courseTitle string, mo ModuleOutline, idx int) generatedModule {
	moduleID := fmt.Sprintf("%s-module-%d", courseID, idx+1)
	now := time.Now().UTC()

	sections := make([]courseModels.Section, len(mo.Sections))
	totalMinutes := 0
	for j, so := range mo.Sections {
		minutes := so.DurationMinutes
		if minutes <= 0 {
			minutes = DefaultSectionMinutes
		}
		totalMinutes += minutes

		sections[j] = courseModels.Section{
			ID:              fmt.Sprintf("%s-section-%d", moduleID, j+1),
			ModuleID:        moduleID,
			CourseID:        courseID,
			Title:           so.Title,
			Content:         templateSectionContent(courseTitle, mo, so),
			ContentType:     so.ContentType,
			OrderIndex:      j + 1,
			DurationMinutes: minutes,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
	}

	objectives, _ := json.Marshal(mo.Objectives)
	keywords, _ := json.Marshal(mo.Keywords)

	return generatedModule{
		Module: courseModels.Module{
			ID:                 moduleID,
			CourseID:           courseID,
			Title:              mo.Title,
			Description:        mo.Description,
			OrderIndex:         idx + 1,
			DurationMinutes:    totalMinutes,
			LearningObjectives: objectives,
			Keywords:           keywords,
			Source:             courseModels.SourceTemplate,
			CreatedAt:          now,
			UpdatedAt:          now,
		},
		Sections: sections,
	}
}

// templateSectionContent synthesizes section markup from the course,
// module and section titles. Pure string building, always non-empty.
func templateSectionContent(courseTitle string, mo ModuleOutline, so SectionOutline) string {
	var b strings.Builder

	fmt.Fprintf(&b, "## %s\n\n", so.Title)

	switch so.ContentType {
	case courseModels.ContentTypeQuiz:
		fmt.Fprintf(&b, "Test what you have learned in **%s**.\n\n", mo.Title)
		for i, objective := range mo.Objectives {
			fmt.Fprintf(&b, "%d. How would you %s in your current role?\n", i+1, lowerFirst(objective))
		}
		if len(mo.Objectives) == 0 {
			fmt.Fprintf(&b, "1. Summarize the key ideas of %s in your own words.\n", mo.Title)
		}
	case courseModels.ContentTypeInteractive:
		fmt.Fprintf(&b, "This hands-on exercise puts the ideas from **%s** into practice.\n\n", mo.Title)
		b.WriteString("1. Review the concepts covered so far in this module.\n")
		fmt.Fprintf(&b, "2. Apply them to a scenario from your own work related to %s.\n", courseTitle)
		b.WriteString("3. Note what worked, what did not, and one thing to try next week.\n")
	case courseModels.ContentTypeVideo:
		fmt.Fprintf(&b, "Watch the accompanying video for **%s**. It demonstrates the concepts from %s in a realistic setting.\n\n", so.Title, mo.Title)
		b.WriteString("While watching, note the techniques shown and how they map to the learning objectives of this module.\n")
	default:
		fmt.Fprintf(&b, "This section of **%s** covers %s as part of %s.\n\n", mo.Title, so.Title, courseTitle)
		if len(mo.Objectives) > 0 {
			b.WriteString("By the end of this section you will be able to:\n\n")
			for _, objective := range mo.Objectives {
				fmt.Fprintf(&b, "- %s\n", objective)
			}
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "Work through the material at your own pace and relate each idea back to %s.\n", courseTitle)
	}

	return b.String()
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
