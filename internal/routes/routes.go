package routes

import (
	"strings"

	"github.com/admybrand/dashboard-backend/internal/config"
	"github.com/admybrand/dashboard-backend/internal/configstore"
	"github.com/admybrand/dashboard-backend/internal/handlers/appconfig"
	"github.com/admybrand/dashboard-backend/internal/handlers/report"
	"github.com/admybrand/dashboard-backend/internal/handlers/search"
	"github.com/admybrand/dashboard-backend/internal/handlers/settings"
	"github.com/admybrand/dashboard-backend/internal/handlers/user"
	"github.com/admybrand/dashboard-backend/internal/handlers/websocket"
	"github.com/admybrand/dashboard-backend/internal/models"
	"github.com/admybrand/dashboard-backend/pkg/debug"
	"github.com/gorilla/mux"
)

/*
 * SetupRoutes configures all application routes and middleware.
 *
 * Route Groups:
 *   - Config (/api/config, /api/kpis, /api/charts, /api/notifications, ...)
 *   - Settings (/api/settings)
 *   - Users (/api/users)
 *   - Reports (/api/report/...)
 *   - Search (/api/search, /api/sections)
 *   - Live config stream (/ws/config)
 *
 * Middleware Applied:
 *   - Request id and CORS (all routes)
 *   - Request logging (API and WebSocket routes)
 */
func SetupRoutes(r *mux.Router, cfg *config.Config, store *configstore.Store, wsHandler *websocket.Handler) {
	debug.Info("Initializing route configuration")

	r.Use(RequestIDMiddleware)
	r.Use(CORSMiddleware(cfg.CORSAllowedOrigin))
	debug.Debug("Applied request id and CORS middleware to root router")

	apiRouter := r.PathPrefix("/api").Subrouter()
	apiRouter.Use(loggingMiddleware)

	users := models.DefaultUsers()
	summary := models.DefaultReportSummary()

	SetupConfigRoutes(apiRouter, appconfig.NewHandler(store))
	SetupSettingsRoutes(apiRouter, settings.NewHandler())
	SetupUserRoutes(apiRouter, user.NewHandler(users))
	SetupReportRoutes(apiRouter, report.NewHandler(store, summary))
	SetupSearchRoutes(apiRouter, search.NewHandler(store, users, summary))
	SetupWebSocketRoutes(r, wsHandler)

	debug.Info("Route configuration completed successfully")
	logRegisteredRoutes(r)
}

// SetupConfigRoutes registers the config document and its section views
func SetupConfigRoutes(router *mux.Router, h *appconfig.Handler) {
	debug.Debug("Setting up config routes")
	router.HandleFunc("/config", h.GetConfig).Methods("GET", "OPTIONS")
	router.HandleFunc("/config", h.UpdateConfig).Methods("POST")
	router.HandleFunc("/config/refresh", h.RefreshConfig).Methods("POST", "OPTIONS")
	router.HandleFunc("/config/status", h.GetStatus).Methods("GET", "OPTIONS")
	router.HandleFunc("/company", h.GetCompany).Methods("GET", "OPTIONS")
	router.HandleFunc("/me", h.GetCurrentUser).Methods("GET", "OPTIONS")
	router.HandleFunc("/kpis", h.GetKpis).Methods("GET", "OPTIONS")
	router.HandleFunc("/charts/{kind}", h.GetChart).Methods("GET", "OPTIONS")
	router.HandleFunc("/notifications", h.GetNotifications).Methods("GET", "OPTIONS")
	router.HandleFunc("/billing", h.GetBilling).Methods("GET", "OPTIONS")
	router.HandleFunc("/settings/options", h.GetSettingsOptions).Methods("GET", "OPTIONS")
}

// SetupSettingsRoutes registers the profile settings form
func SetupSettingsRoutes(router *mux.Router, h *settings.Handler) {
	debug.Debug("Setting up settings routes")
	router.HandleFunc("/settings", h.SaveSettings).Methods("POST", "OPTIONS")
}

// SetupUserRoutes registers the users listing
func SetupUserRoutes(router *mux.Router, h *user.Handler) {
	debug.Debug("Setting up user routes")
	router.HandleFunc("/users", h.ListUsers).Methods("GET", "OPTIONS")
}

// SetupReportRoutes registers the reports page endpoints
func SetupReportRoutes(router *mux.Router, h *report.Handler) {
	debug.Debug("Setting up report routes")
	reportRouter := router.PathPrefix("/report").Subrouter()
	reportRouter.HandleFunc("/summary", h.GetSummary).Methods("GET", "OPTIONS")
	reportRouter.HandleFunc("/analytics", h.GetAnalytics).Methods("GET", "OPTIONS")
	reportRouter.HandleFunc("/analytics", h.UpdateAnalytics).Methods("POST")
	reportRouter.HandleFunc("/campaigns", h.GetCampaigns).Methods("GET", "OPTIONS")
	reportRouter.HandleFunc("/channels", h.GetChannels).Methods("GET", "OPTIONS")
	reportRouter.HandleFunc("/revenue", h.GetRevenue).Methods("GET", "OPTIONS")
	reportRouter.HandleFunc("/funnel", h.GetFunnel).Methods("GET", "OPTIONS")
}

// SetupSearchRoutes registers the header search and section visibility
func SetupSearchRoutes(router *mux.Router, h *search.Handler) {
	debug.Debug("Setting up search routes")
	router.HandleFunc("/search", h.Search).Methods("GET", "OPTIONS")
	router.HandleFunc("/sections", h.Sections).Methods("GET", "OPTIONS")
}

// SetupWebSocketRoutes registers the live config stream
func SetupWebSocketRoutes(r *mux.Router, h *websocket.Handler) {
	debug.Debug("Setting up WebSocket routes")
	wsRouter := r.PathPrefix("/ws").Subrouter()
	wsRouter.Use(loggingMiddleware)
	wsRouter.HandleFunc("/config", h.ServeWS).Methods("GET")
}

// logRegisteredRoutes prints all registered routes for debugging
func logRegisteredRoutes(r *mux.Router) {
	debug.Debug("Registered routes:")
	r.Walk(func(route *mux.Route, router *mux.Router, ancestors []*mux.Route) error {
		pathTemplate, err := route.GetPathTemplate()
		if err != nil {
			pathTemplate = "<unknown>"
		}
		methods, err := route.GetMethods()
		if err != nil {
			methods = []string{"ANY"}
		}
		debug.Debug("Route: %s [%s]", pathTemplate, strings.Join(methods, ", "))
		return nil
	})
}
