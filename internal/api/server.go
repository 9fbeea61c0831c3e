package api

import (
	"log/slog"
	"net/http"

	"github.com/dgallion1/mdsort/internal/config"
	"github.com/dgallion1/mdsort/internal/pipeline"
	"github.com/dgallion1/mdsort/internal/sorter"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP API server for mdsort.
type Server struct {
	router chi.Router
	stats  *pipeline.Stats
	log    *slog.Logger
	cfg    config.Config

	// One pipeline per case mode; both are stateless.
	pipelines map[sorter.Mode]*pipeline.Pipeline
}

// NewServer creates and configures the HTTP server.
func NewServer(stats *pipeline.Stats, log *slog.Logger, cfg config.Config) *Server {
	if stats == nil {
		stats = pipeline.NewStats(cfg.StatsWindow)
	}
	s := &Server{
		stats: stats,
		log:   log,
		cfg:   cfg,
		pipelines: map[sorter.Mode]*pipeline.Pipeline{
			sorter.ModeLower: pipeline.New(pipeline.Options{CaseMode: sorter.ModeLower}),
			sorter.ModeFold:  pipeline.New(pipeline.Options{CaseMode: sorter.ModeFold}),
		},
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	r.Group(func(r chi.Router) {
		if s.cfg.APIKey != "" {
			r.Use(AuthMiddleware(s.cfg.APIKey, s.log))
		}

		r.Post("/api/sort", s.handleSort)
		r.Post("/api/check", s.handleCheck)
		r.Post("/api/sort/batch", s.handleBatchSort)
		r.Get("/api/stats", s.handleStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// pipelineFor picks the pipeline for the request's ?case= parameter, falling
// back to the configured mode.
func (s *Server) pipelineFor(r *http.Request) (*pipeline.Pipeline, error) {
	name := r.URL.Query().Get("case")
	if name == "" {
		name = string(s.cfg.CaseMode)
	}
	mode, err := sorter.ParseMode(name)
	if err != nil {
		return nil, err
	}
	return s.pipelines[mode], nil
}
