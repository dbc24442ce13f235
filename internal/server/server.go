package server

import (
	"context"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/insightdash/insight-api/internal/config"
	"github.com/insightdash/insight-api/internal/models"
	"github.com/insightdash/insight-api/internal/refresher"
)

// InsightRunner is the pipeline contract consumed by the HTTP layer.
// Both the real pipeline and the mock-data runner implement it.
type InsightRunner interface {
	Run(ctx context.Context, req models.RunFlowRequest) (*models.InsightResponse, error)
	GetMetrics() string
}

// Server wires the insight pipeline into HTTP handlers
type Server struct {
	config    *config.Config
	pipeline  InsightRunner
	refresher *refresher.Service // nil when scheduled refresh is disabled
}

// New creates a new API server
func New(cfg *config.Config, pipeline InsightRunner, refresh *refresher.Service) *Server {
	return &Server{
		config:    cfg,
		pipeline:  pipeline,
		refresher: refresh,
	}
}

// Router builds the HTTP handler with all routes and CORS applied.
// CORS is wide open, matching the dashboard's development posture.
func (s *Server) Router() http.Handler {
	router := mux.NewRouter()

	router.HandleFunc("/", s.handleRoot).Methods("GET")
	router.HandleFunc("/health", s.handleHealth).Methods("GET")
	router.HandleFunc("/metrics", s.handleMetrics).Methods("GET")
	router.HandleFunc("/run-flow", s.handleRunFlow).Methods("POST")
	router.HandleFunc("/insights/latest", s.handleLatest).Methods("GET")

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)

	return cors(router)
}
