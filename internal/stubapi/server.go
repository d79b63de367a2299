// Package stubapi is an in-memory stand-in for the jobpilot backend.
//
// It serves the same REST routes under a configurable prefix (default /api)
// plus GET /health, speaks the same JSON (naive ISO timestamps, FastAPI-style
// {"detail": ...} errors) and keeps all state in a Store. Job matching,
// scraping and Telegram delivery are not performed: search filters the seeded
// vacancies, and bot messages are queued in the store's outbox instead of
// being sent.
//
// It backs the client's end-to-end tests and `cmd/stubapi`, which lets the
// CLI run without the real backend.
package stubapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/jobpilot/internal/logging"
	"github.com/gin-gonic/gin"
)

const (
	DefaultPrefix   = "/api"
	shutdownTimeout = 5 * time.Second
)

type Server struct {
	store  *Store
	log    logging.Logger
	prefix string
	engine *gin.Engine
}

type Option func(*Server)

// WithPrefix mounts the API routes under prefix instead of /api.
func WithPrefix(prefix string) Option {
	return func(s *Server) { s.prefix = prefix }
}

func WithLogger(l logging.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

func New(store *Store, opts ...Option) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{store: store, log: logging.Discard(), prefix: DefaultPrefix}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With("module", "stubapi")
	s.engine = s.routes()
	return s
}

// Handler exposes the router, e.g. for httptest.NewServer.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(requestLogger(s.log), recovery(s.log))

	r.GET("/", s.root)
	r.GET("/health", s.health)

	api := r.Group(s.prefix)

	users := api.Group("/users")
	users.POST("/", s.createUser)
	users.GET("/:id", s.getUser)
	users.PUT("/:id", s.updateUser)

	resumes := api.Group("/resumes")
	resumes.POST("/upload/:id", s.uploadResume)
	resumes.GET("/user/:id", s.listResumes)
	resumes.GET("/:id", s.getResume)
	resumes.DELETE("/:id", s.deleteResume)

	jobs := api.Group("/jobs")
	jobs.POST("/search", s.searchJobs)
	jobs.POST("/apply", s.applyToJobs)
	jobs.GET("/applications/:id", s.listApplications)

	tg := api.Group("/telegram")
	tg.POST("/webhook", s.telegramUpdate)
	tg.POST("/send-notification", s.sendNotification)
	tg.GET("/notifications/:id", s.listNotifications)
	tg.POST("/setup-webhook", s.setupWebhook)
	tg.DELETE("/webhook", s.deleteWebhook)

	r.NoRoute(func(c *gin.Context) { abortDetail(c, http.StatusNotFound, "Not Found") })
	return r
}

// Run serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	srv := &http.Server{Handler: s.engine, ReadHeaderTimeout: 10 * time.Second}

	go func() {
		<-ctx.Done()
		s.log.Info(ctx, "Stopping stub API server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.log.Error(ctx, "shutdown failed", "error", err)
		}
	}()

	s.log.Info(ctx, "Starting stub API server", "address", ln.Addr().String(), "prefix", s.prefix)

	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
