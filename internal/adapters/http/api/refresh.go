// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
)

// RefreshDependencies defines the interface for cache refresh operations.
type RefreshDependencies interface {
	Refresh(ctx context.Context)
}

// RefreshHandler handles cache refresh requests.
type RefreshHandler struct {
	deps RefreshDependencies
}

// NewRefreshHandler creates a new refresh handler.
func NewRefreshHandler(deps RefreshDependencies) *RefreshHandler {
	return &RefreshHandler{deps: deps}
}

// HandleRefresh handles POST /api/refresh requests. The cached table is
// dropped; the next view reloads from disk.
func (h *RefreshHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	h.deps.Refresh(r.Context())
	writeJSON(w, http.StatusOK, refreshResponse{Status: "refreshed"})
}
