// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/shopfloor/frenzy/internal/domain/present"
	"github.com/shopfloor/frenzy/internal/domain/view"
)

// ViewDependencies defines the interface for leaderboard view operations.
type ViewDependencies interface {
	View(ctx context.Context, q view.Query) (present.Artifacts, error)
}

// LeaderboardHandler handles leaderboard requests.
type LeaderboardHandler struct {
	deps ViewDependencies
}

// NewLeaderboardHandler creates a new leaderboard handler.
func NewLeaderboardHandler(deps ViewDependencies) *LeaderboardHandler {
	return &LeaderboardHandler{deps: deps}
}

// HandleGetLeaderboard handles GET /api/leaderboard?sort=K&order=asc|desc&top=N
// requests and returns the full display artifacts as JSON.
func (h *LeaderboardHandler) HandleGetLeaderboard(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_leaderboard"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	q, err := queryFromValues(r.URL.Query().Get)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	artifacts, err := h.deps.View(r.Context(), q)
	if err != nil {
		writeFailure(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, artifacts)
}
