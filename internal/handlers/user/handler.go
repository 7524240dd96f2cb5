package user

import (
	"net/http"

	"github.com/admybrand/dashboard-backend/internal/models"
	"github.com/admybrand/dashboard-backend/internal/search"
	"github.com/admybrand/dashboard-backend/pkg/debug"
	"github.com/admybrand/dashboard-backend/pkg/httputil"
)

// Handler handles user-related HTTP requests
type Handler struct {
	users []models.User
}

// NewHandler creates a new user handler over a fixed listing
func NewHandler(users []models.User) *Handler {
	return &Handler{users: users}
}

// ListUsers handles GET /api/users
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	query := httputil.GetQueryParam(r, "q")
	if query != "" {
		debug.Debug("Filtering users by query: %s", query)
	}

	users := search.FilterUsers(h.users, query)
	if users == nil {
		users = []models.User{}
	}
	httputil.RespondWithJSON(w, http.StatusOK, users)
}
