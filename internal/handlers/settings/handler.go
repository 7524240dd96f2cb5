package settings

import (
	"net/http"

	"github.com/admybrand/dashboard-backend/internal/models"
	"github.com/admybrand/dashboard-backend/pkg/debug"
	"github.com/admybrand/dashboard-backend/pkg/httputil"
)

// MessageResponse is the success body of POST /api/settings
type MessageResponse struct {
	Message string `json:"message"`
}

// Handler accepts profile settings submissions
type Handler struct{}

// NewHandler creates a new settings handler
func NewHandler() *Handler {
	return &Handler{}
}

// SaveSettings handles POST /api/settings. Nothing is persisted; the
// submission is validated and logged.
func (h *Handler) SaveSettings(w http.ResponseWriter, r *http.Request) {
	var submission models.SettingsSubmission
	if err := httputil.ParseJSONBody(r, &submission); err != nil || submission == nil {
		debug.Error("Error saving settings: %v", err)
		httputil.RespondWithError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	if !submission.Complete() {
		debug.Debug("Settings submission missing required fields")
		httputil.RespondWithError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	debug.Info("Received settings: firstName=%s lastName=%s email=%s",
		submission.Field("firstName"), submission.Field("lastName"), submission.Field("email"))

	httputil.RespondWithJSON(w, http.StatusOK, MessageResponse{Message: "Settings saved successfully"})
}
