package api

import (
	"context"
	"encoding/json"
	"net/http"
)

// SummaryDependencies defines the dashboard summary operation.
type SummaryDependencies interface {
	Summary(ctx context.Context) (json.RawMessage, error)
}

// SummaryHandler proxies the remote dashboard summary.
type SummaryHandler struct {
	deps SummaryDependencies
}

// NewSummaryHandler creates a new summary handler.
func NewSummaryHandler(deps SummaryDependencies) *SummaryHandler {
	return &SummaryHandler{deps: deps}
}

// HandleSummary handles GET /api/summary. The remote body is relayed as is;
// any failure becomes a 500 with a fixed message.
func (h *SummaryHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	raw, err := h.deps.Summary(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "summary_unavailable", ErrSummaryUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(raw)
}
