package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/umputun/studentscope/pkg/config"
	"github.com/umputun/studentscope/pkg/domain"
)

// Reporter turns a full interview transcript into a structured report card
type Reporter struct {
	client *openai.Client
	config config.LLMConfig
}

// NewReporter creates an LLM-backed report synthesizer
func NewReporter(cfg config.LLMConfig) *Reporter {
	return &Reporter{client: newClient(cfg), config: cfg}
}

const reporterSystemPrompt = "You are an expert educational counselor who creates insightful student profiles. " +
	"Always respond with valid JSON only."

// Synthesize builds a report card from the full message log of a user.
// An empty transcript short-circuits to the canonical empty card without
// calling the model. When the model returns something that is not parseable
// JSON, a degraded card carrying the raw output as the summary is returned
// instead of an error.
func (r *Reporter) Synthesize(ctx context.Context, msgs []domain.Message) (*domain.ReportCard, error) {
	if len(msgs) == 0 {
		return domain.EmptyReportCard(), nil
	}

	resp, err := r.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       r.config.Model,
		Temperature: float32(r.config.Report.Temperature),
		MaxTokens:   r.config.Report.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: reporterSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: reportPrompt(msgs)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("report request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from llm")
	}

	content := resp.Choices[0].Message.Content
	card, err := parseReportCard(content)
	if err != nil {
		log.Printf("[WARN] report card is not valid json, falling back to raw summary: %v", err)
		card = degradedReportCard(content)
	}
	return card, nil
}

// reportPrompt renders the transcript and the extraction instructions
func reportPrompt(msgs []domain.Message) string {
	var sb strings.Builder
	sb.WriteString("Analyze the following student interview conversation and extract a detailed student report card in JSON format.\n\n")
	sb.WriteString("Conversation:\n")
	for _, msg := range msgs {
		speaker := "Interviewer"
		if msg.Role == domain.RoleUser {
			speaker = "Student"
		}
		fmt.Fprintf(&sb, "%s: %s\n", speaker, msg.Content)
	}
	sb.WriteString("\n")
	sb.WriteString(reportStructurePrompt)
	return sb.String()
}

const reportStructurePrompt = `Please generate a JSON response with the following structure (use null for any information not found in the conversation):

{
  "studentProfile": {
    "name": "student's name or null",
    "age": "age or null",
    "educationLevel": "high school/undergraduate/graduate/etc or null",
    "institution": "school/college name or null",
    "favoriteSubjects": ["list of favorite subjects"],
    "challengingSubjects": ["subjects they find difficult"]
  },
  "personalityInsights": [
    "Key personality trait or characteristic observed",
    "Another insight about their personality"
  ],
  "learningProfile": {
    "preferredStyle": "visual/auditory/kinesthetic/reading-writing or mixed",
    "studyPreferences": "how they prefer to study",
    "idealEnvironment": "their ideal study environment",
    "timeManagement": "their approach to time management"
  },
  "strengths": [
    "Identified strength 1",
    "Identified strength 2"
  ],
  "growthAreas": [
    "Area for improvement 1",
    "Area for improvement 2"
  ],
  "interests": [
    "Hobby or interest 1",
    "Hobby or interest 2"
  ],
  "goals": {
    "shortTerm": "their short-term goals",
    "longTerm": "their long-term goals/dreams",
    "careerAspiration": "career goals if mentioned"
  },
  "recommendations": [
    "Personalized recommendation 1 based on their profile",
    "Personalized recommendation 2",
    "Personalized recommendation 3"
  ],
  "overallSummary": "A warm, encouraging 2-3 sentence summary of the student highlighting their potential"
}

Important:
- Be encouraging and positive in tone
- Base all insights strictly on what was discussed in the conversation
- If information wasn't discussed, use null or empty arrays
- Make recommendations specific and actionable
- The overall summary should be motivating and highlight their potential

Respond ONLY with the JSON object, no additional text.`

// parseReportCard extracts the JSON object from the model output, tolerating
// prose around it
func parseReportCard(content string) (*domain.ReportCard, error) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end == -1 || start >= end {
		return nil, fmt.Errorf("no json object found in response")
	}

	var card domain.ReportCard
	if err := json.Unmarshal([]byte(content[start:end+1]), &card); err != nil {
		return nil, fmt.Errorf("failed to parse report card: %w", err)
	}
	return &card, nil
}

// degradedReportCard wraps unparseable model output so the caller still gets
// a card with a summary
func degradedReportCard(content string) *domain.ReportCard {
	card := domain.EmptyReportCard()
	card.OverallSummary = content
	return card
}
