// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/okian/worddee/internal/domain/model"
)

// maxRequestBytes caps request bodies.
const maxRequestBytes = 64 << 10

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Score evaluates a submission with the remote-then-local policy.
	Score(ctx context.Context, sub model.Submission) (model.ScoreResult, error)
	// ScoreLocal evaluates a submission with the local engine only.
	ScoreLocal(ctx context.Context, sub model.Submission) (model.ScoreResult, error)
	// Word returns a word of the day.
	Word(ctx context.Context) (model.Word, error)
	// Summary returns the remote dashboard summary verbatim.
	Summary(ctx context.Context) (json.RawMessage, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler  *HealthHandler
	statsHandler   *StatsHandler
	scoreHandler   *ScoreHandler
	wordHandler    *WordHandler
	summaryHandler *SummaryHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:  NewHealthHandler(),
		statsHandler:   NewStatsHandler(statsProvider),
		scoreHandler:   NewScoreHandler(deps),
		wordHandler:    NewWordHandler(deps),
		summaryHandler: NewSummaryHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", wrap(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("GET /stats", wrap(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("POST /api/score", wrap(s.scoreHandler.HandleScore, "score"))
	mux.HandleFunc("POST /webhook/scorer", wrap(s.scoreHandler.HandleLocalScore, "webhook_scorer"))
	mux.HandleFunc("GET /api/word", wrap(s.wordHandler.HandleWord, "word"))
	mux.HandleFunc("GET /api/summary", wrap(s.summaryHandler.HandleSummary, "summary"))
}

// wrap applies the middleware chain shared by every route.
func wrap(h http.HandlerFunc, endpoint string) http.HandlerFunc {
	return MetricsMiddleware(RequestIDMiddleware(RecoverMiddleware(h)), endpoint)
}

// scoreRequest mirrors the OpenAPI schema for POST /api/score.
type scoreRequest struct {
	Word     string `json:"word"`
	Sentence string `json:"sentence"`
}

func (s scoreRequest) validate() error {
	switch {
	case strings.TrimSpace(s.Word) == "":
		return errors.New("missing word")
	case strings.TrimSpace(s.Sentence) == "":
		return errors.New("missing sentence")
	}
	return nil
}

func (s scoreRequest) submission() model.Submission {
	return model.Submission{Word: s.Word, Sentence: s.Sentence}
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)
	return json.NewDecoder(r.Body).Decode(v)
}
