package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chatServer(t *testing.T, status int, modelAnswer string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req.Model)
		require.Len(t, req.Messages, 2)

		w.WriteHeader(status)
		if status == http.StatusOK {
			json.NewEncoder(w).Encode(map[string]any{
				"choices": []map[string]any{
					{"message": map[string]any{"content": modelAnswer}},
				},
			})
		}
	}))
}

func testRequest() ContentRequest {
	return ContentRequest{
		Topic:              "Comm Skills: Active Listening",
		TargetAudience:     TargetAudience{SkillLevel: "beginner", Role: "analyst"},
		LearningObjectives: []string{"Apply active listening techniques"},
		Keywords:           []string{"listening", "feedback"},
	}
}

func TestGroqClientParsesPlainJSONAnswer(t *testing.T) {
	server := chatServer(t, http.StatusOK, `{"mainContent": "listen actively", "sections": [{"content": "part one"}]}`)
	defer server.Close()

	client := NewGroqClient(server.URL, "test-key", "test-model", 5*time.Second)
	resp, err := client.GenerateModuleContent(testRequest())

	require.NoError(t, err)
	assert.Equal(t, "listen actively", resp.MainContent)
	require.Len(t, resp.Sections, 1)
	assert.Equal(t, "part one", resp.Sections[0].Content)
}

func TestGroqClientParsesFencedMarkdownAnswer(t *testing.T) {
	answer := "Here is the content you asked for:\n```json\n{\"mainContent\": \"from the fence\"}\n```\nHope this helps!"
	server := chatServer(t, http.StatusOK, answer)
	defer server.Close()

	client := NewGroqClient(server.URL, "test-key", "test-model", 5*time.Second)
	resp, err := client.GenerateModuleContent(testRequest())

	require.NoError(t, err)
	assert.Equal(t, "from the fence", resp.MainContent)
}

func TestGroqClientParsesEmbeddedBraces(t *testing.T) {
	answer := `Sure! {"mainContent": "between braces"} Let me know if you need more.`
	server := chatServer(t, http.StatusOK, answer)
	defer server.Close()

	client := NewGroqClient(server.URL, "test-key", "test-model", 5*time.Second)
	resp, err := client.GenerateModuleContent(testRequest())

	require.NoError(t, err)
	assert.Equal(t, "between braces", resp.MainContent)
}

func TestGroqClientErrorStatus(t *testing.T) {
	server := chatServer(t, http.StatusTooManyRequests, "")
	defer server.Close()

	client := NewGroqClient(server.URL, "test-key", "test-model", 5*time.Second)
	resp, err := client.GenerateModuleContent(testRequest())

	assert.Nil(t, resp)
	assert.Error(t, err)
}

func TestGroqClientUnusableAnswer(t *testing.T) {
	server := chatServer(t, http.StatusOK, "I cannot produce JSON right now, sorry.")
	defer server.Close()

	client := NewGroqClient(server.URL, "test-key", "test-model", 5*time.Second)
	resp, err := client.GenerateModuleContent(testRequest())

	assert.Nil(t, resp)
	assert.Error(t, err)
}

func TestNewGroqClientWithoutKeyIsNil(t *testing.T) {
	assert.Nil(t, NewGroqClient("https://example.com", "", "test-model", time.Second))
}

func TestExtractJSONFallbackChain(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"raw object", `{"a": 1}`, `{"a": 1}`},
		{"raw with whitespace", "  {\"a\": 1}\n", `{"a": 1}`},
		{"fenced json", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"fenced bare", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"prose around braces", `answer: {"a": 1} done`, `{"a": 1}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, string(extractJSON(tc.in)))
		})
	}

	assert.Nil(t, extractJSON("no json here"))
	assert.Nil(t, extractJSON("{broken"))
}
