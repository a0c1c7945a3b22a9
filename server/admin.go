package server

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/studentscope/pkg/domain"
	"github.com/umputun/studentscope/pkg/interview"
)

// concurrent per-student lookups when building the admin roster
const studentStatsConcurrency = 4

// adminLoginHandler verifies the admin password and issues a bearer token
func (s *Server) adminLoginHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Password == "" {
		renderError(w, r, fmt.Errorf("password required"), http.StatusBadRequest)
		return
	}

	adminCfg := s.config.GetAdminConfig()
	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(adminCfg.Password)) != 1 {
		renderError(w, r, fmt.Errorf("invalid password"), http.StatusUnauthorized)
		return
	}

	expiresAt := time.Now().Add(adminCfg.TokenTTL)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "admin",
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	})

	signed, err := token.SignedString([]byte(adminCfg.JWTSecret))
	if err != nil {
		log.Printf("[ERROR] failed to sign admin token: %v", err)
		renderError(w, r, fmt.Errorf("internal error"), http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]interface{}{
		"token":     signed,
		"expiresAt": expiresAt.UTC(),
	})
}

// adminAuth enforces a valid bearer token on admin routes
func (s *Server) adminAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			renderError(w, r, fmt.Errorf("unauthorized"), http.StatusUnauthorized)
			return
		}

		adminCfg := s.config.GetAdminConfig()
		claims := &jwt.RegisteredClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return []byte(adminCfg.JWTSecret), nil
		})
		if err != nil || !token.Valid || claims.Subject != "admin" {
			renderError(w, r, fmt.Errorf("unauthorized"), http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// settingsHandler returns all runtime settings, filling defaults for keys
// never written
func (s *Server) settingsHandler(w http.ResponseWriter, r *http.Request) {
	settings, err := s.store.GetAllSettings(r.Context())
	if err != nil {
		log.Printf("[ERROR] failed to get settings: %v", err)
		renderError(w, r, fmt.Errorf("failed to get settings"), http.StatusInternalServerError)
		return
	}

	if _, ok := settings[domain.SettingQuestionCount]; !ok {
		settings[domain.SettingQuestionCount] = strconv.Itoa(domain.DefaultQuestionCount)
	}
	if _, ok := settings[domain.SettingInterviewTitle]; !ok {
		settings[domain.SettingInterviewTitle] = domain.DefaultInterviewTitle
	}

	renderJSON(w, r, http.StatusOK, settings)
}

// updateSettingHandler upserts a single setting
func (s *Server) updateSettingHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Key   string `json:"key"`
		Value string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Key == "" || req.Value == "" {
		renderError(w, r, fmt.Errorf("key and value required"), http.StatusBadRequest)
		return
	}

	if req.Key == domain.SettingQuestionCount {
		if n, err := strconv.Atoi(req.Value); err != nil || n < 1 {
			renderError(w, r, fmt.Errorf("question_count must be a positive integer"), http.StatusBadRequest)
			return
		}
	}

	if err := s.store.SetSetting(r.Context(), req.Key, req.Value); err != nil {
		log.Printf("[ERROR] failed to update setting %s: %v", req.Key, err)
		renderError(w, r, fmt.Errorf("failed to update setting"), http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]interface{}{
		"success": true,
		"key":     req.Key,
		"value":   req.Value,
	})
}

// studentStat is one row of the admin roster
type studentStat struct {
	UserID             string    `json:"userId"`
	Email              string    `json:"email,omitempty"`
	Name               string    `json:"name,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
	TotalConversations int       `json:"totalConversations"`
	TotalMessages      int       `json:"totalMessages"`
	LastActive         time.Time `json:"lastActive"`
}

// studentsHandler lists every known student with activity stats. Per-student
// lookups run concurrently with a bounded group.
func (s *Server) studentsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := s.store.ListUsers(ctx)
	if err != nil {
		log.Printf("[ERROR] failed to list users: %v", err)
		renderError(w, r, fmt.Errorf("failed to get students"), http.StatusInternalServerError)
		return
	}

	stats := make([]studentStat, len(users))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(studentStatsConcurrency)
	for i, user := range users {
		g.Go(func() error {
			stat, err := s.studentStats(gctx, user)
			if err != nil {
				return err
			}
			stats[i] = stat
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Printf("[ERROR] failed to collect student stats: %v", err)
		renderError(w, r, fmt.Errorf("failed to get students"), http.StatusInternalServerError)
		return
	}

	sort.Slice(stats, func(i, j int) bool { return stats[i].LastActive.After(stats[j].LastActive) })
	renderJSON(w, r, http.StatusOK, stats)
}

// studentStats assembles the roster row for one user
func (s *Server) studentStats(ctx context.Context, user *domain.User) (studentStat, error) {
	convs, err := s.store.GetConversationsByUser(ctx, user.ID)
	if err != nil {
		return studentStat{}, fmt.Errorf("conversations for %s: %w", user.ID, err)
	}
	msgs, err := s.store.GetMessagesByUser(ctx, user.ID)
	if err != nil {
		return studentStat{}, fmt.Errorf("messages for %s: %w", user.ID, err)
	}

	// fall back to scanning the transcript when the name was never stored
	name := user.Name
	if name == "" {
		for _, msg := range msgs {
			if msg.Role != domain.RoleUser {
				continue
			}
			if extracted := interview.ExtractName(msg.Content); extracted != "" {
				name = extracted
				break
			}
		}
	}

	lastActive := user.CreatedAt
	if len(msgs) > 0 {
		lastActive = msgs[len(msgs)-1].Timestamp
	}

	return studentStat{
		UserID:             user.ID,
		Email:              user.Email,
		Name:               name,
		CreatedAt:          user.CreatedAt,
		TotalConversations: len(convs),
		TotalMessages:      len(msgs),
		LastActive:         lastActive,
	}, nil
}

// studentReportHandler returns the synthesized report card for one student
func (s *Server) studentReportHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := r.PathValue("userId")

	user, err := s.store.GetUser(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		renderError(w, r, fmt.Errorf("student not found"), http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("[ERROR] failed to get student: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	convs, err := s.store.GetConversationsByUser(ctx, userID)
	if err != nil {
		log.Printf("[ERROR] failed to get conversations: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	msgs, err := s.store.GetMessagesByUser(ctx, userID)
	if err != nil {
		log.Printf("[ERROR] failed to get messages: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	card, err := s.reporter.Synthesize(ctx, msgs)
	if err != nil {
		log.Printf("[ERROR] failed to synthesize report card: %v", err)
		renderError(w, r, fmt.Errorf("failed to generate report"), http.StatusBadGateway)
		return
	}

	resp := struct {
		UserID             string             `json:"userId"`
		UserCreatedAt      time.Time          `json:"userCreatedAt"`
		ReportCard         *domain.ReportCard `json:"reportCard"`
		TotalConversations int                `json:"totalConversations"`
		TotalMessages      int                `json:"totalMessages"`
		GeneratedAt        time.Time          `json:"generatedAt"`
	}{
		UserID:             userID,
		UserCreatedAt:      user.CreatedAt,
		ReportCard:         card,
		TotalConversations: len(convs),
		TotalMessages:      len(msgs),
		GeneratedAt:        time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, resp)
}

// studentPDFHandler renders the report card as a downloadable PDF
func (s *Server) studentPDFHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := r.PathValue("userId")

	if _, err := s.store.GetUser(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			renderError(w, r, fmt.Errorf("student not found"), http.StatusNotFound)
			return
		}
		log.Printf("[ERROR] failed to get student: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	msgs, err := s.store.GetMessagesByUser(ctx, userID)
	if err != nil {
		log.Printf("[ERROR] failed to get messages: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	card, err := s.reporter.Synthesize(ctx, msgs)
	if err != nil {
		log.Printf("[ERROR] failed to synthesize report card: %v", err)
		renderError(w, r, fmt.Errorf("failed to generate report"), http.StatusBadGateway)
		return
	}

	studentName := "Student"
	if card.StudentProfile != nil && card.StudentProfile.Name != "" {
		studentName = card.StudentProfile.Name
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", studentName+"_Report_Card.pdf"))

	if err := renderReportPDF(w, card); err != nil {
		log.Printf("[ERROR] failed to render pdf: %v", err)
	}
}

// endConversationHandler marks a conversation as ended
func (s *Server) endConversationHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.interview.EndConversation(r.Context(), r.PathValue("conversationId")); err != nil {
		s.renderAPIError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]bool{"success": true})
}
