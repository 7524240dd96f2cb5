package appconfig

import (
	"errors"
	"net/http"

	"github.com/admybrand/dashboard-backend/internal/configstore"
	"github.com/admybrand/dashboard-backend/internal/models"
	"github.com/admybrand/dashboard-backend/internal/reports"
	"github.com/admybrand/dashboard-backend/internal/search"
	"github.com/admybrand/dashboard-backend/pkg/debug"
	"github.com/admybrand/dashboard-backend/pkg/httputil"
	"github.com/gorilla/mux"
)

// UpdateResponse is returned by POST /api/config
type UpdateResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    *models.AppConfig `json:"data,omitempty"`
	Ignored []string          `json:"ignored,omitempty"`
}

// Handler serves the dashboard config and its sections
type Handler struct {
	store *configstore.Store
}

// NewHandler creates a new config handler
func NewHandler(store *configstore.Store) *Handler {
	return &Handler{store: store}
}

// GetConfig handles GET /api/config
func (h *Handler) GetConfig(w http.ResponseWriter, r *http.Request) {
	httputil.RespondWithJSON(w, http.StatusOK, h.store.Config())
}

// UpdateConfig handles POST /api/config. The body is a partial config whose
// top-level sections replace the current ones.
func (h *Handler) UpdateConfig(w http.ResponseWriter, r *http.Request) {
	var raw map[string]interface{}
	if err := httputil.ParseJSONBody(r, &raw); err != nil {
		debug.Error("Failed to decode config update: %v", err)
		httputil.RespondWithJSON(w, http.StatusInternalServerError, UpdateResponse{
			Success: false,
			Message: "Failed to update configuration",
		})
		return
	}

	partial, unused, err := configstore.DecodePartial(raw)
	if err != nil {
		debug.Warning("Rejected config update: %v", err)
		httputil.RespondWithJSON(w, http.StatusBadRequest, UpdateResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}
	if len(unused) > 0 {
		debug.Debug("Ignoring unknown config sections: %v", unused)
	}

	var updated models.AppConfig
	if partial.IsEmpty() {
		// Nothing to merge, so listeners are not woken.
		updated = h.store.Config()
	} else {
		updated = h.store.Update(partial)
		debug.Info("Configuration updated, sections: %v", partial.Sections())
	}

	httputil.RespondWithJSON(w, http.StatusOK, UpdateResponse{
		Success: true,
		Message: "Configuration updated successfully",
		Data:    &updated,
		Ignored: unused,
	})
}

// RefreshConfig handles POST /api/config/refresh
func (h *Handler) RefreshConfig(w http.ResponseWriter, r *http.Request) {
	httputil.RespondWithJSON(w, http.StatusOK, h.store.Load(r.Context()))
}

// GetStatus handles GET /api/config/status
func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	httputil.RespondWithJSON(w, http.StatusOK, h.store.Status())
}

// GetCompany handles GET /api/company
func (h *Handler) GetCompany(w http.ResponseWriter, r *http.Request) {
	httputil.RespondWithJSON(w, http.StatusOK, h.store.Company())
}

// GetCurrentUser handles GET /api/me
func (h *Handler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	httputil.RespondWithJSON(w, http.StatusOK, h.store.User())
}

// GetKpis handles GET /api/kpis?q=
func (h *Handler) GetKpis(w http.ResponseWriter, r *http.Request) {
	kpis := search.FilterKpis(h.store.Kpis(), httputil.GetQueryParam(r, "q"))
	httputil.RespondWithJSON(w, http.StatusOK, reports.KpiCards(kpis))
}

// GetChart handles GET /api/charts/{kind}
func (h *Handler) GetChart(w http.ResponseWriter, r *http.Request) {
	kind := models.ChartKind(mux.Vars(r)["kind"])

	series, err := h.store.ChartData(kind)
	if errors.Is(err, models.ErrUnknownChart) {
		debug.Debug("Unknown chart requested: %s", kind)
		httputil.RespondWithError(w, http.StatusNotFound, "Chart not found")
		return
	}
	if err != nil {
		debug.Error("Failed to get chart %s: %v", kind, err)
		httputil.RespondWithError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	httputil.RespondWithJSON(w, http.StatusOK, series)
}

// GetNotifications handles GET /api/notifications?category=&q=
func (h *Handler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	prefs := h.store.Notifications()

	if category := httputil.GetQueryParam(r, "category"); category != "" {
		filtered := make([]models.NotificationPreference, 0, len(prefs))
		for _, p := range prefs {
			if string(p.Category) == category {
				filtered = append(filtered, p)
			}
		}
		prefs = filtered
	}

	httputil.RespondWithJSON(w, http.StatusOK, search.FilterNotifications(prefs, httputil.GetQueryParam(r, "q")))
}

// GetBilling handles GET /api/billing
func (h *Handler) GetBilling(w http.ResponseWriter, r *http.Request) {
	httputil.RespondWithJSON(w, http.StatusOK, h.store.Billing())
}

// GetSettingsOptions handles GET /api/settings/options
func (h *Handler) GetSettingsOptions(w http.ResponseWriter, r *http.Request) {
	httputil.RespondWithJSON(w, http.StatusOK, h.store.Settings())
}
