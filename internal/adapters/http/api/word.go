package api

import (
	"context"
	"net/http"

	"github.com/okian/worddee/internal/domain/model"
)

// WordDependencies defines the word-of-the-day operation.
type WordDependencies interface {
	Word(ctx context.Context) (model.Word, error)
}

// WordHandler handles word-of-the-day requests.
type WordHandler struct {
	deps WordDependencies
}

// NewWordHandler creates a new word handler.
func NewWordHandler(deps WordDependencies) *WordHandler {
	return &WordHandler{deps: deps}
}

// HandleWord handles GET /api/word.
func (h *WordHandler) HandleWord(w http.ResponseWriter, r *http.Request) {
	const op = "api.word"
	word, err := h.deps.Word(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "word_unavailable", WrapKind(op, ErrWordUnavailable, err))
		return
	}
	writeJSON(w, http.StatusOK, word)
}
