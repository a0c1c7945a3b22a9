package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/umputun/studentscope/pkg/domain"
	"github.com/umputun/studentscope/pkg/interview"
)

// startSessionHandler resolves or creates the user for an email
func (s *Server) startSessionHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	res, err := s.interview.StartSession(r.Context(), req.Email)
	if err != nil {
		s.renderAPIError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, res)
}

// chatHandler processes one interview turn
func (s *Server) chatHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID         string `json:"userId"`
		Message        string `json:"message"`
		ConversationID string `json:"conversationId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	res, err := s.interview.SubmitTurn(r.Context(), req.UserID, req.Message, req.ConversationID)
	if err != nil {
		s.renderAPIError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, turnJSON{
		Response:       res.Response,
		ConversationID: res.ConversationID,
		Timestamp:      res.Timestamp,
		QuestionProgress: progressJSON{
			Current: res.Progress.Current,
			Total:   res.Progress.Total,
		},
	})
}

// turnJSON is the wire shape of a completed interview turn
type turnJSON struct {
	Response         string       `json:"response"`
	ConversationID   string       `json:"conversationId"`
	Timestamp        time.Time    `json:"timestamp"`
	QuestionProgress progressJSON `json:"questionProgress"`
}

// progressJSON is the client-facing position within the question budget
type progressJSON struct {
	Current int `json:"current"`
	Total   int `json:"total"`
}

// messageJSON is the wire shape of a single message
type messageJSON struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

func toMessagesJSON(msgs []domain.Message) []messageJSON {
	out := make([]messageJSON, len(msgs))
	for i, m := range msgs {
		out[i] = messageJSON{ID: m.ID, Role: string(m.Role), Content: m.Content, Timestamp: m.Timestamp}
	}
	return out
}

// historyHandler returns the full message log of a conversation
func (s *Server) historyHandler(w http.ResponseWriter, r *http.Request) {
	conv, msgs, err := s.interview.History(r.Context(), r.PathValue("conversationId"))
	if err != nil {
		s.renderAPIError(w, r, err)
		return
	}

	resp := struct {
		ConversationID string        `json:"conversationId"`
		UserID         string        `json:"userId"`
		StartedAt      time.Time     `json:"startedAt"`
		EndedAt        *time.Time    `json:"endedAt,omitempty"`
		Messages       []messageJSON `json:"messages"`
	}{
		ConversationID: conv.ID,
		UserID:         conv.UserID,
		StartedAt:      conv.StartedAt,
		EndedAt:        conv.EndedAt,
		Messages:       toMessagesJSON(msgs),
	}
	renderJSON(w, r, http.StatusOK, resp)
}

// conversationJSON is one conversation with its messages, as returned by the
// report endpoint
type conversationJSON struct {
	ConversationID string        `json:"conversationId"`
	StartedAt      time.Time     `json:"startedAt"`
	EndedAt        *time.Time    `json:"endedAt,omitempty"`
	MessageCount   int           `json:"messageCount"`
	Messages       []messageJSON `json:"messages"`
}

// reportHandler returns the consolidated report: every conversation with its
// messages plus the synthesized report card
func (s *Server) reportHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := r.PathValue("userId")

	user, err := s.store.GetUser(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		renderError(w, r, fmt.Errorf("user not found"), http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("[ERROR] failed to get user for report: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	convs, err := s.store.GetConversationsByUser(ctx, userID)
	if err != nil {
		log.Printf("[ERROR] failed to get conversations for report: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	conversations := make([]conversationJSON, 0, len(convs))
	totalMessages := 0
	for _, conv := range convs {
		msgs, err := s.store.GetMessages(ctx, conv.ID)
		if err != nil {
			log.Printf("[ERROR] failed to get messages for report: %v", err)
			renderError(w, r, err, http.StatusInternalServerError)
			return
		}
		totalMessages += len(msgs)
		conversations = append(conversations, conversationJSON{
			ConversationID: conv.ID,
			StartedAt:      conv.StartedAt,
			EndedAt:        conv.EndedAt,
			MessageCount:   len(msgs),
			Messages:       toMessagesJSON(msgs),
		})
	}

	allMessages, err := s.store.GetMessagesByUser(ctx, userID)
	if err != nil {
		log.Printf("[ERROR] failed to get user messages for report: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	card, err := s.reporter.Synthesize(ctx, allMessages)
	if err != nil {
		log.Printf("[ERROR] failed to synthesize report card: %v", err)
		renderError(w, r, fmt.Errorf("failed to generate report"), http.StatusBadGateway)
		return
	}

	resp := struct {
		UserID             string             `json:"userId"`
		UserCreatedAt      time.Time          `json:"userCreatedAt"`
		Conversations      []conversationJSON `json:"conversations"`
		TotalConversations int                `json:"totalConversations"`
		TotalMessages      int                `json:"totalMessages"`
		ReportCard         *domain.ReportCard `json:"reportCard"`
		AISummary          string             `json:"aiSummary"`
		GeneratedAt        time.Time          `json:"generatedAt"`
	}{
		UserID:             userID,
		UserCreatedAt:      user.CreatedAt,
		Conversations:      conversations,
		TotalConversations: len(convs),
		TotalMessages:      totalMessages,
		ReportCard:         card,
		AISummary:          card.OverallSummary,
		GeneratedAt:        time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, resp)
}

// reportSummaryHandler returns only the synthesized summary
func (s *Server) reportSummaryHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := r.PathValue("userId")

	if _, err := s.store.GetUser(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			renderError(w, r, fmt.Errorf("user not found"), http.StatusNotFound)
			return
		}
		log.Printf("[ERROR] failed to get user for summary: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	allMessages, err := s.store.GetMessagesByUser(ctx, userID)
	if err != nil {
		log.Printf("[ERROR] failed to get user messages for summary: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	card, err := s.reporter.Synthesize(ctx, allMessages)
	if err != nil {
		log.Printf("[ERROR] failed to synthesize summary: %v", err)
		renderError(w, r, fmt.Errorf("failed to generate summary"), http.StatusBadGateway)
		return
	}

	resp := struct {
		UserID        string    `json:"userId"`
		TotalMessages int       `json:"totalMessages"`
		AISummary     string    `json:"aiSummary"`
		GeneratedAt   time.Time `json:"generatedAt"`
	}{
		UserID:        userID,
		TotalMessages: len(allMessages),
		AISummary:     card.OverallSummary,
		GeneratedAt:   time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, resp)
}

// transcribeHandler accepts an audio upload and returns its transcription
func (s *Server) transcribeHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		renderError(w, r, fmt.Errorf("invalid multipart form"), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("audio")
	if err != nil {
		renderError(w, r, fmt.Errorf("no audio data provided"), http.StatusBadRequest)
		return
	}
	defer file.Close() //nolint:errcheck

	if header.Size == 0 {
		renderError(w, r, fmt.Errorf("no audio data provided"), http.StatusBadRequest)
		return
	}

	text, err := s.speech.Transcribe(r.Context(), header.Filename, file)
	if err != nil {
		log.Printf("[ERROR] transcription failed: %v", err)
		renderError(w, r, fmt.Errorf("failed to transcribe audio"), http.StatusBadGateway)
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]string{"text": text})
}

// renderAPIError maps interview errors to HTTP status codes
func (s *Server) renderAPIError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *interview.ValidationError
	var notFoundErr *interview.NotFoundError
	var authErr *interview.AuthorizationError
	var upstreamErr *interview.UpstreamError

	switch {
	case errors.As(err, &validationErr):
		renderError(w, r, err, http.StatusBadRequest)
	case errors.As(err, &notFoundErr):
		renderError(w, r, err, http.StatusNotFound)
	case errors.As(err, &authErr):
		renderError(w, r, err, http.StatusForbidden)
	case errors.As(err, &upstreamErr):
		log.Printf("[ERROR] upstream failure: %v", err)
		renderError(w, r, fmt.Errorf("assistant is unavailable"), http.StatusBadGateway)
	default:
		log.Printf("[ERROR] internal error: %v", err)
		renderError(w, r, fmt.Errorf("internal error"), http.StatusInternalServerError)
	}
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
