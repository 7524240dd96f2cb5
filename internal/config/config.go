package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/admybrand/dashboard-backend/pkg/debug"
	"github.com/admybrand/dashboard-backend/pkg/env"
	"github.com/hashicorp/go-multierror"
	"github.com/robfig/cron/v3"
)

// RefreshDisabled turns off the periodic config refresh
const RefreshDisabled = "off"

// Config holds the application configuration
type Config struct {
	Host              string
	Port              int
	ConfigSourceURL   string        // Remote AppConfig source, empty disables fetching
	FetchTimeout      time.Duration // Deadline for a single fetch of the source
	RefreshSchedule   string        // Cron spec for periodic reloads
	SeedFile          string        // Optional overlay applied over the built-in data
	CORSAllowedOrigin string
}

// NewConfig creates a new Config instance with values from environment variables
func NewConfig() *Config {
	host := env.GetOrDefault("DASH_HOST", "")
	if host == "" {
		// In Docker, bind to all interfaces
		if env.GetBool("DASH_IN_DOCKER") {
			host = "0.0.0.0"
		} else {
			host = "localhost"
		}
	}

	cfg := &Config{
		Host:              host,
		Port:              env.GetIntOrDefault("DASH_PORT", 8080),
		ConfigSourceURL:   strings.TrimSpace(env.GetOrDefault("DASH_CONFIG_SOURCE_URL", "")),
		FetchTimeout:      env.GetDurationOrDefault("DASH_FETCH_TIMEOUT", 5*time.Second),
		RefreshSchedule:   env.GetOrDefault("DASH_REFRESH_SCHEDULE", "@every 5m"),
		SeedFile:          env.GetOrDefault("DASH_SEED_FILE", ""),
		CORSAllowedOrigin: env.GetOrDefault("CORS_ALLOWED_ORIGIN", "http://localhost:3000"),
	}

	debug.Info("Configuration loaded - Address: %s, Source: %q, Refresh: %s",
		cfg.GetAddress(), cfg.ConfigSourceURL, cfg.RefreshSchedule)
	return cfg
}

// Validate checks every field and reports all problems at once.
func (c *Config) Validate() error {
	var result *multierror.Error

	if c.Port <= 0 || c.Port > 65535 {
		result = multierror.Append(result, fmt.Errorf("port %d out of range", c.Port))
	}
	if c.FetchTimeout < 0 || (c.FetchTimeout == 0 && c.ConfigSourceURL != "") {
		result = multierror.Append(result, fmt.Errorf("fetch timeout must be positive, got %s", c.FetchTimeout))
	}
	if c.ConfigSourceURL != "" {
		u, err := url.Parse(c.ConfigSourceURL)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("invalid config source URL: %w", err))
		} else if u.Scheme != "http" && u.Scheme != "https" {
			result = multierror.Append(result, fmt.Errorf("config source URL must be http or https, got %q", u.Scheme))
		}
	}
	if c.RefreshEnabled() {
		if _, err := cron.ParseStandard(c.RefreshSchedule); err != nil {
			result = multierror.Append(result, fmt.Errorf("invalid refresh schedule %q: %w", c.RefreshSchedule, err))
		}
	}

	return result.ErrorOrNil()
}

// RefreshEnabled reports whether periodic reloads should be scheduled. They
// need both a source and a schedule.
func (c *Config) RefreshEnabled() bool {
	schedule := strings.TrimSpace(c.RefreshSchedule)
	return c.ConfigSourceURL != "" && schedule != "" && !strings.EqualFold(schedule, RefreshDisabled)
}

// GetAddress returns the full address for the server to listen on
func (c *Config) GetAddress() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// GetWSEndpoint returns the WebSocket endpoint URL for live config updates
func (c *Config) GetWSEndpoint() string {
	return fmt.Sprintf("ws://%s:%d/ws/config", c.Host, c.Port)
}

// GetAPIEndpoint returns the API endpoint URL
func (c *Config) GetAPIEndpoint() string {
	return fmt.Sprintf("http://%s:%d/api", c.Host, c.Port)
}
