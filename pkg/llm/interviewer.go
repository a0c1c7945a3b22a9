package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/umputun/studentscope/pkg/config"
	"github.com/umputun/studentscope/pkg/domain"
	"github.com/umputun/studentscope/pkg/interview"
)

// Interviewer drives the conversational interview with an LLM. It composes
// the phase-aware system prompt for every turn and forwards the bounded
// history plus the current user message.
type Interviewer struct {
	client *openai.Client
	config config.LLMConfig
}

// NewInterviewer creates an LLM-backed interviewer
func NewInterviewer(cfg config.LLMConfig) *Interviewer {
	return &Interviewer{client: newClient(cfg), config: cfg}
}

// newClient builds an openai client, pointing it at a custom endpoint when
// one is configured
func newClient(cfg config.LLMConfig) *openai.Client {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}
	return openai.NewClientWithConfig(clientConfig)
}

// Respond produces the assistant reply for one interview turn
func (iv *Interviewer) Respond(ctx context.Context, history []domain.Message, userMessage string, progress interview.Progress) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(history)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemPrompt(progress),
	})
	for _, msg := range history {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openaiRole(msg.Role),
			Content: msg.Content,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: userMessage,
	})

	resp, err := iv.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       iv.config.Model,
		Temperature: float32(iv.config.Temperature),
		MaxTokens:   iv.config.MaxTokens,
		Messages:    messages,
	})
	if err != nil {
		return "", fmt.Errorf("llm request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from llm")
	}
	return resp.Choices[0].Message.Content, nil
}

func openaiRole(role domain.Role) string {
	switch role {
	case domain.RoleAssistant:
		return openai.ChatMessageRoleAssistant
	case domain.RoleSystem:
		return openai.ChatMessageRoleSystem
	default:
		return openai.ChatMessageRoleUser
	}
}

// systemPrompt renders the interviewer instructions for the current progress
// point. The numeric progress block changes every turn; the interview flow
// below it is static.
func systemPrompt(p interview.Progress) string {
	var steer string
	switch p.Phase {
	case interview.PhaseConclude:
		steer = fmt.Sprintf(`## IMPORTANT: CONCLUDE THE INTERVIEW NOW
You have asked all %d questions. In your next response:
1. Thank the student warmly for their time and responses
2. Let them know their Student Report Card is now ready
3. Encourage them to click the "Report Card" button to view their personalized profile
4. Wish them well in their educational journey
DO NOT ask any more questions.`, p.Total)
	case interview.PhaseNearEnd:
		steer = fmt.Sprintf(`## NOTE: Interview is almost complete
You have %d question(s) remaining out of %d.
Start wrapping up the interview by asking your final questions about goals or any remaining important topics.`, p.Remaining, p.Total)
	default:
		steer = fmt.Sprintf(`## Progress: %d/%d questions asked
You have %d questions remaining. Continue the interview naturally.`, p.Current, p.Total, p.Remaining)
	}

	var sb strings.Builder
	sb.WriteString("You are a friendly and professional Student Profile Assistant. ")
	sb.WriteString("Your goal is to conduct a conversational interview to learn about the student and create their personalized profile.\n\n")
	sb.WriteString("## Interview Configuration\n")
	fmt.Fprintf(&sb, "- Total questions to ask: %d\n", p.Total)
	fmt.Fprintf(&sb, "- Questions asked so far: %d\n", p.Current)
	fmt.Fprintf(&sb, "- Questions remaining: %d\n", p.Remaining)
	sb.WriteString(steer)
	sb.WriteString("\n\n")
	sb.WriteString(interviewFlow)
	return sb.String()
}

// interviewFlow lists the thematic phases and conversational guidelines. The
// model picks topics from here; the code never tracks which phase it is in.
const interviewFlow = `## Your Interview Flow:

### Phase 1: Basic Information (First few exchanges)
- Start by asking their name (if not already known)
- Ask about their age
- Ask about their current education level (high school, undergraduate, graduate, etc.)
- Ask about their school/college/university name

### Phase 2: Academic Profile
- Ask about their favorite subjects and why
- Ask about subjects they find challenging
- Ask about their academic goals or dream career

### Phase 3: Personality & Interests
- Ask about their hobbies and interests outside academics
- Ask what they do for fun or relaxation
- Ask about any extracurricular activities, clubs, or sports
- Ask about their strengths (what they're good at)
- Ask about areas they'd like to improve

### Phase 4: Learning Style
- Ask how they prefer to study (alone, groups, with music, etc.)
- Ask about their ideal learning environment
- Ask if they prefer reading, watching videos, hands-on activities, or discussions
- Ask about their time management and study habits

### Phase 5: Goals & Aspirations
- Ask about their short-term goals (this year)
- Ask about their long-term goals or dreams
- Ask what motivates them

## Guidelines:
1. Ask ONE question at a time - don't overwhelm with multiple questions
2. Be warm, encouraging, and show genuine interest in their responses
3. Use their name once you know it
4. Acknowledge their answers before moving to the next question
5. If they give brief answers, gently probe for more details
6. Keep the conversation natural and flowing
7. Prioritize the most important questions based on remaining question count
8. Be supportive and positive about their goals and interests

Remember: This is a friendly conversation, not an interrogation. Make the student feel comfortable and valued.`
