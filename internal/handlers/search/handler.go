package search

import (
	"errors"
	"net/http"

	"github.com/admybrand/dashboard-backend/internal/configstore"
	"github.com/admybrand/dashboard-backend/internal/models"
	filter "github.com/admybrand/dashboard-backend/internal/search"
	"github.com/admybrand/dashboard-backend/pkg/debug"
	"github.com/admybrand/dashboard-backend/pkg/httputil"
)

// ResultsResponse is returned by GET /api/search
type ResultsResponse struct {
	Page    filter.Page     `json:"page"`
	Query   string          `json:"query"`
	Results []filter.Result `json:"results"`
}

// Handler serves the header search box and per-page section visibility
type Handler struct {
	store   *configstore.Store
	users   []models.User
	summary models.ReportSummary
}

// NewHandler creates a new search handler. users and summary are the
// listings the dashboard and reports pages load besides the store.
func NewHandler(store *configstore.Store, users []models.User, summary models.ReportSummary) *Handler {
	return &Handler{store: store, users: users, summary: summary}
}

// Search handles GET /api/search?q=&page=
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	page, ok := filter.ParsePage(httputil.GetQueryParamWithDefault(r, "page", string(filter.PageDashboard)))
	if !ok {
		httputil.RespondWithError(w, http.StatusBadRequest, "Unknown page")
		return
	}

	query := httputil.GetQueryParam(r, "q")
	results := filter.Results(page, query, h.store.Kpis())
	debug.Debug("Search on %s for %q returned %d results", page, query, len(results))

	httputil.RespondWithJSON(w, http.StatusOK, ResultsResponse{
		Page:    page,
		Query:   query,
		Results: results,
	})
}

// Sections handles GET /api/sections?q=&page=
func (h *Handler) Sections(w http.ResponseWriter, r *http.Request) {
	page, ok := filter.ParsePage(httputil.GetQueryParamWithDefault(r, "page", string(filter.PageDashboard)))
	if !ok {
		httputil.RespondWithError(w, http.StatusBadRequest, "Unknown page")
		return
	}

	analytics := h.store.Analytics()
	summary := h.summary
	data := filter.Dataset{
		Kpis:      h.store.Kpis(),
		Users:     h.users,
		Campaigns: analytics.Campaigns,
		Channels:  analytics.ChannelData,
		Summary:   &summary,
	}

	visibility, err := filter.Evaluate(page, httputil.GetQueryParam(r, "q"), data)
	if errors.Is(err, filter.ErrUnknownPage) {
		httputil.RespondWithError(w, http.StatusNotFound, "Page has no searchable sections")
		return
	}
	if err != nil {
		debug.Error("Failed to evaluate sections for %s: %v", page, err)
		httputil.RespondWithError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	httputil.RespondWithJSON(w, http.StatusOK, visibility)
}
