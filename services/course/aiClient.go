package services

import (
	"encoding/json"
	"fmt"
	"lms/config"
	"regexp"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// GroqClient calls an OpenAI-compatible chat completions endpoint to
// produce personalized module content. It implements ContentGenerator.
type GroqClient struct {
	client *resty.Client
	apiURL string
	apiKey string
	model  string
}

// NewGroqClient creates a generation client. Returns nil when no API key
// is configured, which makes the pipeline fall back to template content.
func NewGroqClient(apiURL, apiKey, model string, timeout time.Duration) *GroqClient {
	if apiKey == "" {
		return nil
	}
	return &GroqClient{
		client: resty.New().SetTimeout(timeout),
		apiURL: apiURL,
		apiKey: apiKey,
		model:  model,
	}
}

// NewGroqClientFromConfig builds the client from the loaded app config
func NewGroqClientFromConfig() *GroqClient {
	return NewGroqClient(
		config.AppConfig.GroqApiURL,
		config.AppConfig.GroqApiKey,
		config.AppConfig.GroqModel,
		time.Duration(config.AppConfig.GenerationTimeout)*time.Second,
	)
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// GenerateModuleContent submits one module generation request and parses
// the model's JSON answer into a ContentResponse.
func (g *GroqClient) GenerateModuleContent(req ContentRequest) (*ContentResponse, error) {
	payload := chatRequest{
		Model: g.model,
		Messages: []chatMessage{
			{
				Role:    "system",
				Content: "You are an expert educational content creator. Always respond with valid JSON and nothing else.",
			},
			{
				Role:    "user",
				Content: buildPrompt(req),
			},
		},
		Temperature: 0.3,
		MaxTokens:   4000,
	}

	resp, err := g.client.R().
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", "Bearer "+g.apiKey).
		SetBody(payload).
		Post(g.apiURL)
	if err != nil {
		return nil, fmt.Errorf("generation request failed: %v", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("generation API returned status %d: %s", resp.StatusCode(), resp.String())
	}

	var chat chatResponse
	if err := json.Unmarshal(resp.Body(), &chat); err != nil {
		return nil, fmt.Errorf("failed to parse generation API response: %v", err)
	}
	if len(chat.Choices) == 0 {
		return nil, fmt.Errorf("generation API returned no choices")
	}

	content := extractJSON(chat.Choices[0].Message.Content)
	if content == nil {
		return nil, fmt.Errorf("could not extract JSON from model output")
	}

	var result ContentResponse
	if err := json.Unmarshal(content, &result); err != nil {
		return nil, fmt.Errorf("model output did not match expected structure: %v", err)
	}
	return &result, nil
}

func buildPrompt(req ContentRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Create learning content for a course module on the topic: %s\n\n", req.Topic)
	fmt.Fprintf(&b, "Target audience: skill level %s", req.TargetAudience.SkillLevel)
	if req.TargetAudience.Role != "" {
		fmt.Fprintf(&b, ", role %s", req.TargetAudience.Role)
	}
	if req.TargetAudience.Department != "" {
		fmt.Fprintf(&b, ", department %s", req.TargetAudience.Department)
	}
	b.WriteString("\n\n")

	if len(req.LearningObjectives) > 0 {
		b.WriteString("Learning objectives:\n")
		for _, objective := range req.LearningObjectives {
			fmt.Fprintf(&b, "- %s\n", objective)
		}
		b.WriteString("\n")
	}
	if len(req.Keywords) > 0 {
		fmt.Fprintf(&b, "Keywords to cover: %s\n\n", strings.Join(req.Keywords, ", "))
	}
	if req.IncludeExamples {
		b.WriteString("Include practical, role-relevant examples.\n")
	}
	if req.IncludeQuizQuestions {
		b.WriteString("Include review questions where appropriate.\n")
	}

	b.WriteString("\nRespond with a JSON object of the form ")
	b.WriteString(`{"mainContent": "...", "sections": [{"content": "..."}]}`)
	b.WriteString(" where each section entry is the markdown body of one section, in order.\n")
	b.WriteString("Return ONLY a valid JSON object with no markdown formatting or additional text. ")
	b.WriteString("Do not include code blocks or backticks in your response.")

	return b.String()
}

var fencedJSONPattern = regexp.MustCompile("(?s)```(?:json)?(.*?)```")

// extractJSON pulls a JSON object out of the model output. Models ignore
// formatting instructions often enough that this tries, in order: the raw
// text, fenced code blocks, and the outermost brace pair.
func extractJSON(text string) []byte {
	trimmed := strings.TrimSpace(text)
	if json.Valid([]byte(trimmed)) {
		return []byte(trimmed)
	}

	for _, match := range fencedJSONPattern.FindAllStringSubmatch(text, -1) {
		candidate := strings.TrimSpace(match[1])
		if json.Valid([]byte(candidate)) {
			return []byte(candidate)
		}
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		candidate := text[start : end+1]
		if json.Valid([]byte(candidate)) {
			return []byte(candidate)
		}
	}

	return nil
}
