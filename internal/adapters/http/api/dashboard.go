// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/shopfloor/frenzy/internal/domain/present"
	"github.com/shopfloor/frenzy/internal/domain/scores"
)

// dashboardTmpl renders the embedded leaderboard page.
var dashboardTmpl = template.Must(template.ParseFS(dashboardFS, "dashboard.html.tmpl"))

// DashboardHandler serves the HTML leaderboard and accepts workbook
// uploads that are rendered once without touching the cache.
type DashboardHandler struct {
	deps           Dependencies
	maxUploadBytes int64
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(deps Dependencies, maxUploadBytes int64) *DashboardHandler {
	return &DashboardHandler{deps: deps, maxUploadBytes: maxUploadBytes}
}

// dashboardPage is the template payload for one render.
type dashboardPage struct {
	Title          string
	Subtitle       string
	Artifacts      *present.Artifacts
	Alert          *pageAlert
	ReputationJSON template.JS
	AccuracyJSON   template.JS
}

// pageAlert is a banner shown instead of the leaderboard.
type pageAlert struct {
	Level   string // "error" or "warn"
	Message string
}

// HandleDashboard handles GET and POST /dashboard requests.
func (h *DashboardHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.serveDefault(w, r)
	case http.MethodPost:
		h.serveUpload(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (h *DashboardHandler) serveDefault(w http.ResponseWriter, r *http.Request) {
	const op = "api.dashboard"

	q, err := queryFromValues(r.URL.Query().Get)
	if err != nil {
		h.renderFailure(w, err)
		return
	}

	artifacts, err := h.deps.View(r.Context(), q)
	if err != nil {
		h.renderFailure(w, err)
		return
	}
	h.renderArtifacts(w, op, artifacts)
}

func (h *DashboardHandler) serveUpload(w http.ResponseWriter, r *http.Request) {
	const op = "api.dashboard_upload"

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	file, header, err := r.FormFile("scores")
	switch {
	case errors.Is(err, http.ErrMissingFile):
		// No file picked; fall through to the saved workbook.
		q, qerr := queryFromValues(r.FormValue)
		if qerr != nil {
			h.renderFailure(w, qerr)
			return
		}
		artifacts, verr := h.deps.View(r.Context(), q)
		if verr != nil {
			h.renderFailure(w, verr)
			return
		}
		h.renderArtifacts(w, op, artifacts)
		return
	case err != nil:
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			h.renderAlert(w, http.StatusRequestEntityTooLarge, &pageAlert{
				Level:   "error",
				Message: fmt.Sprintf("That workbook is too large. Uploads are capped at %d bytes.", tooBig.Limit),
			})
			return
		}
		h.renderFailure(w, WrapKind(op, ErrBadRequest, err))
		return
	}
	defer func() { _ = file.Close() }()

	q, err := queryFromValues(r.FormValue)
	if err != nil {
		h.renderFailure(w, err)
		return
	}

	artifacts, err := h.deps.ViewFrom(r.Context(), file, header.Size, q)
	if err != nil {
		h.renderFailure(w, err)
		return
	}
	h.renderArtifacts(w, op, artifacts)
}

func (h *DashboardHandler) renderArtifacts(w http.ResponseWriter, op string, artifacts present.Artifacts) {
	repJSON, err := json.Marshal(artifacts.Reputation)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "render_failed", Wrap(op, err))
		return
	}
	accJSON, err := json.Marshal(artifacts.Accuracy)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "render_failed", Wrap(op, err))
		return
	}

	h.renderPage(w, http.StatusOK, dashboardPage{
		Title:          artifacts.Title,
		Subtitle:       artifacts.Subtitle,
		Artifacts:      &artifacts,
		ReputationJSON: template.JS(repJSON),
		AccuracyJSON:   template.JS(accJSON),
	})
}

// renderFailure turns a pipeline error into a full-page alert carrying
// the same status code the JSON API would use.
func (h *DashboardHandler) renderFailure(w http.ResponseWriter, err error) {
	status, code := classify(err)
	h.renderAlert(w, status, alertFor(code, err))
}

func (h *DashboardHandler) renderAlert(w http.ResponseWriter, status int, alert *pageAlert) {
	h.renderPage(w, status, dashboardPage{
		Title:    present.Title,
		Subtitle: present.Subtitle,
		Alert:    alert,
	})
}

func (h *DashboardHandler) renderPage(w http.ResponseWriter, status int, page dashboardPage) {
	var buf bytes.Buffer
	if err := dashboardTmpl.Execute(&buf, page); err != nil {
		writeError(w, http.StatusInternalServerError, "render_failed", Wrap("api.dashboard_render", err))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// alertFor picks the on-page wording for an error code.
func alertFor(code string, err error) *pageAlert {
	switch code {
	case "data_unavailable":
		return &pageAlert{Level: "error", Message: "The scores workbook was not found. Drop scores.xlsx next to the server or set FRENZY_SCORES_PATH."}
	case "malformed_workbook":
		return &pageAlert{Level: "error", Message: "That file could not be read as an .xlsx workbook."}
	case "validation_failed":
		var verr *scores.ValidationError
		if errors.As(err, &verr) {
			return &pageAlert{Level: "error", Message: fmt.Sprintf(
				"The scores file is missing required columns: %s. Expected exactly: %s.",
				strings.Join(verr.Missing, ", "), strings.Join(verr.Expected, ", "))}
		}
		return &pageAlert{Level: "error", Message: "The scores file failed validation."}
	case "empty_table":
		return &pageAlert{Level: "warn", Message: "No teams found in the data."}
	case "unknown_sort_key":
		return &pageAlert{Level: "error", Message: "That sort column is not available."}
	case "bad_request":
		return &pageAlert{Level: "error", Message: "The view controls in the request were invalid."}
	default:
		return &pageAlert{Level: "error", Message: "Something went wrong while rendering the leaderboard."}
	}
}
