// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/shopfloor/frenzy/internal/domain/present"
	"github.com/shopfloor/frenzy/internal/domain/view"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// View renders the leaderboard from the configured workbook.
	View(ctx context.Context, q view.Query) (present.Artifacts, error)

	// ViewFrom renders the leaderboard from an uploaded workbook stream.
	ViewFrom(ctx context.Context, r io.Reader, size int64, q view.Query) (present.Artifacts, error)

	// Refresh drops the cached table so the next view reloads from disk.
	Refresh(ctx context.Context)
}

// Server wires HTTP routes for the dashboard API.
type Server struct {
	healthHandler      *HealthHandler
	statsHandler       *StatsHandler
	dashboardHandler   *DashboardHandler
	leaderboardHandler *LeaderboardHandler
	refreshHandler     *RefreshHandler
}

// NewServer creates a new API server with all handlers. maxUploadBytes
// bounds the size of workbook uploads accepted by the dashboard.
func NewServer(deps Dependencies, statsProvider StatsProvider, maxUploadBytes int64) *Server {
	return &Server{
		healthHandler:      NewHealthHandler(),
		statsHandler:       NewStatsHandler(statsProvider),
		dashboardHandler:   NewDashboardHandler(deps, maxUploadBytes),
		leaderboardHandler: NewLeaderboardHandler(deps),
		refreshHandler:     NewRefreshHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	wrap := func(h http.HandlerFunc, endpoint string) http.HandlerFunc {
		return RequestIDMiddleware(MetricsMiddleware(h, endpoint))
	}

	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", wrap(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/metrics", s.healthHandler.HandleMetrics)
	mux.HandleFunc("/dashboard", wrap(s.dashboardHandler.HandleDashboard, "dashboard"))
	mux.HandleFunc("/stats", wrap(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/api/leaderboard", wrap(s.leaderboardHandler.HandleGetLeaderboard, "leaderboard"))
	mux.HandleFunc("/api/refresh", wrap(s.refreshHandler.HandleRefresh, "refresh"))
}

// queryFromValues builds a view query from request parameters. The same
// names are used for URL queries and dashboard form fields.
func queryFromValues(get func(string) string) (view.Query, error) {
	q := view.Query{SortKey: strings.TrimSpace(get("sort"))}

	switch order := strings.ToLower(strings.TrimSpace(get("order"))); order {
	case "", "desc":
	case "asc":
		q.Ascending = true
	default:
		return view.Query{}, WrapKind("api.parse_query", ErrBadRequest,
			errInvalidParam("order", order))
	}

	if top := strings.TrimSpace(get("top")); top != "" {
		n, err := strconv.Atoi(top)
		if err != nil {
			return view.Query{}, WrapKind("api.parse_query", ErrBadRequest,
				errInvalidParam("top", top))
		}
		q.TopN = n
	}

	return q, nil
}

type invalidParamError struct {
	name, value string
}

func (e *invalidParamError) Error() string {
	return "invalid " + e.name + " parameter: " + strconv.Quote(e.value)
}

func errInvalidParam(name, value string) error {
	return &invalidParamError{name: name, value: value}
}

type refreshResponse struct {
	Status string `json:"status"`
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

// writeFailure maps a pipeline error onto the wire via classify.
func writeFailure(w http.ResponseWriter, op string, err error) {
	status, code := classify(err)
	writeError(w, status, code, Wrap(op, err))
}
