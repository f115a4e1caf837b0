package api

import (
	"context"
	"net/http"

	"github.com/okian/worddee/internal/domain/model"
	"github.com/okian/worddee/pkg/logger"
)

// ScoreDependencies defines the scoring operations the handler needs.
type ScoreDependencies interface {
	Score(ctx context.Context, sub model.Submission) (model.ScoreResult, error)
	ScoreLocal(ctx context.Context, sub model.Submission) (model.ScoreResult, error)
}

// ScoreHandler handles sentence submissions.
type ScoreHandler struct {
	deps ScoreDependencies
}

// NewScoreHandler creates a new score handler.
func NewScoreHandler(deps ScoreDependencies) *ScoreHandler {
	return &ScoreHandler{deps: deps}
}

// HandleScore handles POST /api/score. The remote evaluator is tried first;
// fallback is invisible to the client.
func (h *ScoreHandler) HandleScore(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "api.score", h.deps.Score)
}

// HandleLocalScore handles POST /webhook/scorer, which always uses the local
// engine. It has the same contract as the remote webhook, so it can stand in
// for it during development.
func (h *ScoreHandler) HandleLocalScore(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "api.webhook_scorer", h.deps.ScoreLocal)
}

func (h *ScoreHandler) handle(
	w http.ResponseWriter,
	r *http.Request,
	op string,
	score func(context.Context, model.Submission) (model.ScoreResult, error),
) {
	var req scoreRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	res, err := score(r.Context(), req.submission())
	if err != nil {
		logger.Get().Named("api").Error(r.Context(), "scoring failed",
			logger.String("op", op),
			logger.String("requestID", RequestIDFromContext(r.Context())),
			logger.Error(err),
		)
		writeError(w, http.StatusInternalServerError, "scoring_failed", NewKind(op, ErrScoringFailed))
		return
	}
	writeJSON(w, http.StatusOK, res)
}
