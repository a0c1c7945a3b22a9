package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/studentscope/pkg/config"
	"github.com/umputun/studentscope/pkg/domain"
	"github.com/umputun/studentscope/pkg/interview"
)

// completionServer fakes the chat completions endpoint, capturing every
// request and answering with the given content
func completionServer(t *testing.T, content string, captured *[]openai.ChatCompletionRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req openai.ChatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		*captured = append(*captured, req)

		resp := openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{Content: content}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp) //nolint:errcheck
	}))
}

func TestInterviewer_Respond(t *testing.T) {
	var captured []openai.ChatCompletionRequest
	server := completionServer(t, "Great! What subjects do you enjoy most?", &captured)
	defer server.Close()

	cfg := config.LLMConfig{
		Endpoint:    server.URL + "/v1",
		APIKey:      "test-key",
		Model:       "gpt-4o-mini",
		Temperature: 0.7,
		MaxTokens:   500,
	}
	iv := NewInterviewer(cfg)

	history := []domain.Message{
		{Role: domain.RoleUser, Content: "Hi, I'm Priya"},
		{Role: domain.RoleAssistant, Content: "Nice to meet you, Priya! How old are you?"},
	}
	progress := interview.ComputeProgress(8, 2)

	resp, err := iv.Respond(context.Background(), history, "I'm 16", progress)
	require.NoError(t, err)
	assert.Equal(t, "Great! What subjects do you enjoy most?", resp)

	require.Len(t, captured, 1)
	req := captured[0]
	assert.Equal(t, "gpt-4o-mini", req.Model)
	assert.Equal(t, 500, req.MaxTokens)

	// system prompt first, then full history, then the current message
	require.Len(t, req.Messages, 4)
	assert.Equal(t, openai.ChatMessageRoleSystem, req.Messages[0].Role)
	assert.Contains(t, req.Messages[0].Content, "Student Profile Assistant")
	assert.Contains(t, req.Messages[0].Content, "Total questions to ask: 8")
	assert.Contains(t, req.Messages[0].Content, "Questions asked so far: 2")
	assert.Contains(t, req.Messages[0].Content, "Continue the interview naturally")
	assert.Equal(t, openai.ChatMessageRoleUser, req.Messages[1].Role)
	assert.Equal(t, "Hi, I'm Priya", req.Messages[1].Content)
	assert.Equal(t, openai.ChatMessageRoleAssistant, req.Messages[2].Role)
	assert.Equal(t, openai.ChatMessageRoleUser, req.Messages[3].Role)
	assert.Equal(t, "I'm 16", req.Messages[3].Content)
}

func TestInterviewer_Respond_PhaseSteering(t *testing.T) {
	tests := []struct {
		name        string
		count       int
		contains    string
		notContains string
	}{
		{"early turn", 3, "Continue the interview naturally", "CONCLUDE"},
		{"near the end", 7, "Interview is almost complete", "CONCLUDE"},
		{"final turn", 8, "CONCLUDE THE INTERVIEW NOW", "Continue the interview naturally"},
		{"past the budget", 11, "DO NOT ask any more questions", "almost complete"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured []openai.ChatCompletionRequest
			server := completionServer(t, "ok", &captured)
			defer server.Close()

			iv := NewInterviewer(config.LLMConfig{
				Endpoint: server.URL + "/v1", APIKey: "test-key", Model: "gpt-4o-mini"})

			_, err := iv.Respond(context.Background(), nil, "answer", interview.ComputeProgress(8, tt.count))
			require.NoError(t, err)

			require.Len(t, captured, 1)
			system := captured[0].Messages[0].Content
			assert.Contains(t, system, tt.contains)
			assert.NotContains(t, system, tt.notContains)
		})
	}
}

func TestInterviewer_Respond_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"message": "boom"}}`, http.StatusInternalServerError)
	}))
	defer server.Close()

	iv := NewInterviewer(config.LLMConfig{
		Endpoint: server.URL + "/v1", APIKey: "test-key", Model: "gpt-4o-mini"})

	_, err := iv.Respond(context.Background(), nil, "hello", interview.ComputeProgress(8, 1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "llm request failed")
}
