package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/studentscope/pkg/config"
	"github.com/umputun/studentscope/pkg/domain"
	"github.com/umputun/studentscope/pkg/interview"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/interview_service.go -pkg mocks -skip-ensure -fmt goimports . InterviewService
//go:generate moq -out mocks/report_service.go -pkg mocks -skip-ensure -fmt goimports . ReportService
//go:generate moq -out mocks/speech_service.go -pkg mocks -skip-ensure -fmt goimports . SpeechService
//go:generate moq -out mocks/data_store.go -pkg mocks -skip-ensure -fmt goimports . DataStore

// Server represents HTTP server instance
type Server struct {
	config    ConfigProvider
	interview InterviewService
	reporter  ReportService
	speech    SpeechService
	store     DataStore
	version   string
	debug     bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
	GetAdminConfig() config.AdminConfig
}

// InterviewService drives the conversational interview
type InterviewService interface {
	StartSession(ctx context.Context, email string) (*interview.StartResult, error)
	SubmitTurn(ctx context.Context, userID, message, conversationID string) (*interview.TurnResult, error)
	History(ctx context.Context, conversationID string) (*domain.Conversation, []domain.Message, error)
	EndConversation(ctx context.Context, conversationID string) error
}

// ReportService builds a report card from a transcript
type ReportService interface {
	Synthesize(ctx context.Context, msgs []domain.Message) (*domain.ReportCard, error)
}

// SpeechService transcribes uploaded audio
type SpeechService interface {
	Transcribe(ctx context.Context, fileName string, audio io.Reader) (string, error)
}

// DataStore provides the read side for reports and admin views
type DataStore interface {
	GetUser(ctx context.Context, id string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
	GetConversationsByUser(ctx context.Context, userID string) ([]*domain.Conversation, error)
	GetMessages(ctx context.Context, conversationID string) ([]domain.Message, error)
	GetMessagesByUser(ctx context.Context, userID string) ([]domain.Message, error)
	GetAllSettings(ctx context.Context) (map[string]string, error)
	SetSetting(ctx context.Context, key, value string) error
}

// Params holds server dependencies
type Params struct {
	Config    ConfigProvider
	Interview InterviewService
	Reporter  ReportService
	Speech    SpeechService
	Store     DataStore
	Version   string
	Debug     bool
}

// New initializes a new server instance
func New(p Params) *Server {
	s := &Server{
		config:    p.Config,
		interview: p.Interview,
		reporter:  p.Reporter,
		speech:    p.Speech,
		store:     p.Store,
		version:   p.Version,
		debug:     p.Debug,
		router:    routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("studentscope", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(10 * 1024 * 1024)) // audio uploads need room
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api").Route(func(api *routegroup.Bundle) {
		api.HandleFunc("POST /session/start", s.startSessionHandler)
		api.HandleFunc("POST /chat", s.chatHandler)
		api.HandleFunc("GET /chat/history/{conversationId}", s.historyHandler)
		api.HandleFunc("GET /report/{userId}", s.reportHandler)
		api.HandleFunc("GET /report/{userId}/summary", s.reportSummaryHandler)
		api.HandleFunc("POST /transcribe", s.transcribeHandler)

		api.Mount("/admin").Route(func(admin *routegroup.Bundle) {
			admin.HandleFunc("POST /login", s.adminLoginHandler)

			admin.Group().Route(func(priv *routegroup.Bundle) {
				priv.Use(s.adminAuth)
				priv.HandleFunc("GET /settings", s.settingsHandler)
				priv.HandleFunc("PUT /settings", s.updateSettingHandler)
				priv.HandleFunc("GET /students", s.studentsHandler)
				priv.HandleFunc("GET /students/{userId}/report", s.studentReportHandler)
				priv.HandleFunc("GET /students/{userId}/pdf", s.studentPDFHandler)
				priv.HandleFunc("POST /conversations/{conversationId}/end", s.endConversationHandler)
			})
		})
	})

	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
	})
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}
