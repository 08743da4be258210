package services

import "strings"

// DefaultSectionMinutes is used when an outline does not set a duration
const DefaultSectionMinutes = 20

// SectionOutline is the skeleton of one section to generate
type SectionOutline struct {
	Title           string
	ContentType     string
	DurationMinutes int // 0 means DefaultSectionMinutes
}

// ModuleOutline is the skeleton of one module to generate, together with
// the learning objectives and keywords fed into personalized generation.
type ModuleOutline struct {
	Title       string
	Description string
	Objectives  []string
	Keywords    []string
	Sections    []SectionOutline
}

// CourseOutline is the generation skeleton for one course family
type CourseOutline struct {
	Family  string
	Modules []ModuleOutline
}

// outlineRegistry maps course-id prefixes to course-family outlines.
// First match wins; courses with no matching prefix use genericOutline.
var outlineRegistry = []struct {
	Prefix  string
	Outline CourseOutline
}{
	{Prefix: "comm-skills", Outline: commSkillsOutline},
	{Prefix: "data-analysis", Outline: dataAnalysisOutline},
}

// OutlineForCourse returns the generation outline for the given course id
func OutlineForCourse(courseID string) CourseOutline {
	for _, entry := range outlineRegistry {
		if strings.HasPrefix(courseID, entry.Prefix) {
			return entry.Outline
		}
	}
	return genericOutline
}

var commSkillsOutline = CourseOutline{
	Family: "communications-skills",
	Modules: []ModuleOutline{
		{
			Title:       "Foundations of Workplace Communication",
			Description: "Core principles of clear, professional communication with colleagues and stakeholders.",
			Objectives: []string{
				"Identify the components of effective workplace communication",
				"Adapt tone and register to different audiences",
				"Recognize common communication breakdowns and their causes",
			},
			Keywords: []string{"communication", "clarity", "audience", "tone"},
			Sections: []SectionOutline{
				{Title: "Why Communication Matters", ContentType: "text"},
				{Title: "Knowing Your Audience", ContentType: "text"},
				{Title: "Communication Styles in Practice", ContentType: "video", DurationMinutes: 15},
				{Title: "Check Your Understanding", ContentType: "quiz", DurationMinutes: 10},
			},
		},
		{
			Title:       "Active Listening and Feedback",
			Description: "Techniques for listening with intent and giving feedback that lands.",
			Objectives: []string{
				"Apply active listening techniques in one-on-one conversations",
				"Structure constructive feedback using a situation-behavior-impact frame",
				"Handle difficult conversations without escalation",
			},
			Keywords: []string{"active listening", "feedback", "empathy", "difficult conversations"},
			Sections: []SectionOutline{
				{Title: "The Active Listening Toolkit", ContentType: "text"},
				{Title: "Giving and Receiving Feedback", ContentType: "text"},
				{Title: "Feedback Role-Play Scenarios", ContentType: "interactive", DurationMinutes: 30},
				{Title: "Check Your Understanding", ContentType: "quiz", DurationMinutes: 10},
			},
		},
		{
			Title:       "Presenting and Influencing",
			Description: "Building persuasive narratives for meetings, presentations and written proposals.",
			Objectives: []string{
				"Structure a presentation around a single clear message",
				"Use storytelling techniques to make data memorable",
				"Influence decisions without formal authority",
			},
			Keywords: []string{"presentation", "storytelling", "influence", "persuasion"},
			Sections: []SectionOutline{
				{Title: "Structuring Your Message", ContentType: "text"},
				{Title: "Data Storytelling", ContentType: "text"},
				{Title: "Delivering with Confidence", ContentType: "video", DurationMinutes: 15},
				{Title: "Final Assessment", ContentType: "quiz", DurationMinutes: 15},
			},
		},
	},
}

var dataAnalysisOutline = CourseOutline{
	Family: "data-analysis",
	Modules: []ModuleOutline{
		{
			Title:       "Data Analysis Fundamentals",
			Description: "The analysis workflow from raw data to first insights.",
			Objectives: []string{
				"Describe the stages of a data analysis workflow",
				"Assess data quality and identify cleaning needs",
				"Choose appropriate summary statistics for a dataset",
			},
			Keywords: []string{"data analysis", "data quality", "statistics", "exploration"},
			Sections: []SectionOutline{
				{Title: "The Analysis Workflow", ContentType: "text"},
				{Title: "Working with Raw Data", ContentType: "text"},
				{Title: "Exploratory Analysis Walkthrough", ContentType: "video", DurationMinutes: 25},
				{Title: "Check Your Understanding", ContentType: "quiz", DurationMinutes: 10},
			},
		},
		{
			Title:       "Visualization and Communication of Results",
			Description: "Turning analysis results into charts and narratives decision-makers can act on.",
			Objectives: []string{
				"Select the right chart type for a given question",
				"Avoid common visualization pitfalls",
				"Summarize findings for a non-technical audience",
			},
			Keywords: []string{"visualization", "charts", "dashboards", "reporting"},
			Sections: []SectionOutline{
				{Title: "Choosing the Right Chart", ContentType: "text"},
				{Title: "Visualization Pitfalls", ContentType: "text"},
				{Title: "Build a Dashboard", ContentType: "interactive", DurationMinutes: 30},
				{Title: "Check Your Understanding", ContentType: "quiz", DurationMinutes: 10},
			},
		},
		{
			Title:       "Applied Analytics Projects",
			Description: "End-to-end practice on realistic business datasets.",
			Objectives: []string{
				"Frame a business question as an analysis task",
				"Carry an analysis from data collection to recommendation",
				"Present results with quantified confidence",
			},
			Keywords: []string{"analytics", "case study", "business intelligence", "recommendation"},
			Sections: []SectionOutline{
				{Title: "Framing the Question", ContentType: "text"},
				{Title: "Case Study: Customer Churn", ContentType: "text", DurationMinutes: 30},
				{Title: "Your Analysis Project", ContentType: "interactive", DurationMinutes: 45},
				{Title: "Final Assessment", ContentType: "quiz", DurationMinutes: 15},
			},
		},
	},
}

// genericOutline is the fallback for course ids with no registered family
var genericOutline = CourseOutline{
	Family: "generic",
	Modules: []ModuleOutline{
		{
			Title:       "Introduction",
			Description: "Orientation and the key concepts of the subject.",
			Objectives: []string{
				"Understand the scope and goals of the course",
				"Define the core terminology of the subject",
			},
			Keywords: []string{"introduction", "fundamentals", "overview"},
			Sections: []SectionOutline{
				{Title: "Welcome and Course Overview", ContentType: "text"},
				{Title: "Key Concepts", ContentType: "text"},
				{Title: "Check Your Understanding", ContentType: "quiz", DurationMinutes: 10},
			},
		},
		{
			Title:       "Core Principles",
			Description: "The main body of knowledge, explained with worked examples.",
			Objectives: []string{
				"Apply the core principles to practical examples",
				"Recognize how the principles interact in real scenarios",
			},
			Keywords: []string{"principles", "techniques", "practice"},
			Sections: []SectionOutline{
				{Title: "Principles in Depth", ContentType: "text"},
				{Title: "Worked Examples", ContentType: "text"},
				{Title: "Practice Exercise", ContentType: "interactive", DurationMinutes: 30},
			},
		},
		{
			Title:       "Advanced Applications",
			Description: "Advanced topics and applying the subject in your day-to-day role.",
			Objectives: []string{
				"Apply the subject to advanced, role-specific scenarios",
				"Plan next steps for continued learning",
			},
			Keywords: []string{"advanced", "application", "case studies"},
			Sections: []SectionOutline{
				{Title: "Advanced Topics", ContentType: "text"},
				{Title: "Case Studies", ContentType: "text"},
				{Title: "Final Assessment", ContentType: "quiz", DurationMinutes: 15},
			},
		},
	},
}
