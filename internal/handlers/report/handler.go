package report

import (
	"encoding/json"
	"net/http"

	"github.com/admybrand/dashboard-backend/internal/configstore"
	"github.com/admybrand/dashboard-backend/internal/models"
	"github.com/admybrand/dashboard-backend/internal/reports"
	"github.com/admybrand/dashboard-backend/internal/search"
	"github.com/admybrand/dashboard-backend/pkg/debug"
	"github.com/admybrand/dashboard-backend/pkg/httputil"
)

// CampaignsResponse is the campaign table with its filter applied
type CampaignsResponse struct {
	Query     string                `json:"query,omitempty"`
	Campaigns []reports.CampaignRow `json:"campaigns"`
}

// ChannelsResponse is the channel chart data and its summary
type ChannelsResponse struct {
	Query    string                 `json:"query,omitempty"`
	Channels []models.ChannelData   `json:"channels"`
	Summary  reports.ChannelSummary `json:"summary"`
}

// RevenueResponse is the revenue series and its summary
type RevenueResponse struct {
	Series  []models.RevenueData   `json:"series"`
	Summary reports.RevenueSummary `json:"summary"`
}

// FunnelResponse is the funnel table and its summary
type FunnelResponse struct {
	Derived bool                          `json:"derived"`
	Stages  []models.ConversionFunnelData `json:"stages"`
	Summary reports.FunnelSummary         `json:"summary"`
}

// Handler serves the reports page
type Handler struct {
	store   *configstore.Store
	summary models.ReportSummary
}

// NewHandler creates a new report handler
func NewHandler(store *configstore.Store, summary models.ReportSummary) *Handler {
	return &Handler{store: store, summary: summary}
}

// GetSummary handles GET /api/report/summary
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	httputil.RespondWithJSON(w, http.StatusOK, h.summary)
}

// GetAnalytics handles GET /api/report/analytics. It tries a fresh load
// first and always answers with whatever the store then holds.
func (h *Handler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	cfg := h.store.Load(r.Context())
	httputil.RespondWithJSON(w, http.StatusOK, models.AnalyticsResponse{
		Success: true,
		Data:    &cfg.Analytics,
	})
}

// UpdateAnalytics handles POST /api/report/analytics. The body is echoed
// back and not stored.
func (h *Handler) UpdateAnalytics(w http.ResponseWriter, r *http.Request) {
	var body json.RawMessage
	if err := httputil.ParseJSONBody(r, &body); err != nil {
		debug.Error("Failed to update analytics data: %v", err)
		httputil.RespondWithJSON(w, http.StatusInternalServerError, models.AnalyticsResponse{
			Success: false,
			Message: "Failed to update analytics data",
		})
		return
	}

	httputil.RespondWithJSON(w, http.StatusOK, struct {
		Success bool            `json:"success"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}{
		Success: true,
		Message: "Analytics data updated successfully",
		Data:    body,
	})
}

// GetCampaigns handles GET /api/report/campaigns?q=
func (h *Handler) GetCampaigns(w http.ResponseWriter, r *http.Request) {
	query := httputil.GetQueryParam(r, "q")
	campaigns := search.FilterCampaigns(h.store.Campaigns(), query)

	httputil.RespondWithJSON(w, http.StatusOK, CampaignsResponse{
		Query:     query,
		Campaigns: reports.CampaignRows(campaigns),
	})
}

// GetChannels handles GET /api/report/channels?q=. The summary covers the
// filtered channels.
func (h *Handler) GetChannels(w http.ResponseWriter, r *http.Request) {
	query := httputil.GetQueryParam(r, "q")
	channels := search.FilterChannels(h.store.ChannelData(), query)
	if channels == nil {
		channels = []models.ChannelData{}
	}

	httputil.RespondWithJSON(w, http.StatusOK, ChannelsResponse{
		Query:    query,
		Channels: channels,
		Summary:  reports.SummarizeChannels(channels),
	})
}

// GetRevenue handles GET /api/report/revenue
func (h *Handler) GetRevenue(w http.ResponseWriter, r *http.Request) {
	series := h.store.RevenueData()
	if series == nil {
		series = []models.RevenueData{}
	}

	httputil.RespondWithJSON(w, http.StatusOK, RevenueResponse{
		Series:  series,
		Summary: reports.SummarizeRevenue(series),
	})
}

// GetFunnel handles GET /api/report/funnel?derive=. Stored rates are served
// as given unless derive is set.
func (h *Handler) GetFunnel(w http.ResponseWriter, r *http.Request) {
	derive := httputil.GetBoolQueryParam(r, "derive")

	stages := h.store.ConversionFunnel()
	if derive {
		stages = reports.DeriveFunnel(stages)
	}
	if stages == nil {
		stages = []models.ConversionFunnelData{}
	}

	httputil.RespondWithJSON(w, http.StatusOK, FunnelResponse{
		Derived: derive,
		Stages:  stages,
		Summary: reports.SummarizeFunnel(stages),
	})
}
