package configstore

import (
	"context"
	"sync"
	"time"

	"github.com/admybrand/dashboard-backend/internal/models"
	"github.com/admybrand/dashboard-backend/pkg/debug"
	"golang.org/x/sync/singleflight"
)

// Listener is called with the new value after every change to the store.
type Listener func(cfg models.AppConfig)

// LoadStatus describes the outcome of the most recent fetch attempts.
type LoadStatus struct {
	Source      string     `json:"source,omitempty"`
	LastAttempt *time.Time `json:"lastAttempt,omitempty"`
	LastSuccess *time.Time `json:"lastSuccess,omitempty"`
	LastError   string     `json:"lastError,omitempty"`
}

// Store holds the process-wide AppConfig. It is created once at startup and
// passed to every consumer. Readers always receive copies.
type Store struct {
	mu      sync.RWMutex
	current models.AppConfig
	status  LoadStatus

	// writeMu is held from commit through notify so listeners observe
	// changes in commit order.
	writeMu sync.Mutex

	fetcher Fetcher
	group   singleflight.Group

	listenersMu sync.RWMutex
	listeners   map[int]Listener
	nextID      int

	now func() time.Time
}

// New creates a store seeded with initial. fetcher may be nil, in which case
// Load never leaves the process.
func New(initial models.AppConfig, fetcher Fetcher) *Store {
	s := &Store{
		current:   initial.Clone(),
		fetcher:   fetcher,
		listeners: make(map[int]Listener),
		now:       time.Now,
	}
	if fetcher != nil {
		s.status.Source = fetcher.Source()
	}
	return s
}

// NewDefault creates a store seeded with the built-in dashboard data.
func NewDefault(fetcher Fetcher) *Store {
	return New(models.DefaultAppConfig(), fetcher)
}

// Load attempts one fetch for a fresher config and returns whatever the store
// holds once that attempt settles or ctx is done, whichever comes first. Any
// fetch failure keeps the last good value and is only logged. Concurrent
// callers share one in-flight fetch.
func (s *Store) Load(ctx context.Context) models.AppConfig {
	if s.fetcher == nil {
		debug.Debug("No config source configured, serving in-memory config")
		return s.Config()
	}

	// The shared fetch must not die with whichever caller happened to start it.
	fetchCtx := context.WithoutCancel(ctx)

	ch := s.group.DoChan("load", func() (interface{}, error) {
		s.fetch(fetchCtx)
		return nil, nil
	})

	select {
	case <-ch:
	case <-ctx.Done():
		debug.Warning("Config fetch from %s still running, serving current values: %v", s.fetcher.Source(), ctx.Err())
	}

	return s.Config()
}

func (s *Store) fetch(ctx context.Context) {
	started := s.now()
	cfg, err := s.fetcher.Fetch(ctx)

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	s.status.LastAttempt = &started
	if err != nil {
		s.status.LastError = err.Error()
		s.mu.Unlock()
		debug.Warning("Failed to load config from %s, using current values: %v", s.fetcher.Source(), err)
		return
	}
	s.current = cfg.Clone()
	s.status.LastSuccess = &started
	s.status.LastError = ""
	snapshot := s.current.Clone()
	s.mu.Unlock()

	debug.Info("Loaded config from %s", s.fetcher.Source())
	s.notify(snapshot)
}

// Config returns the current value without fetching.
func (s *Store) Config() models.AppConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Clone()
}

// Update shallow-merges p into the current value. Last writer wins and the
// partial is not validated.
func (s *Store) Update(p Partial) models.AppConfig {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	s.current = Merge(s.current, p)
	snapshot := s.current.Clone()
	s.mu.Unlock()

	debug.Debug("Config updated, sections: %v", p.Sections())
	s.notify(snapshot)
	return snapshot
}

// Status returns the outcome of the latest fetch attempts.
func (s *Store) Status() LoadStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// Subscribe registers l for change notifications. The returned function
// removes it again. Listeners run while the store is serializing writes, so
// they must not call Update.
func (s *Store) Subscribe(l Listener) func() {
	s.listenersMu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	s.listenersMu.Unlock()

	return func() {
		s.listenersMu.Lock()
		delete(s.listeners, id)
		s.listenersMu.Unlock()
	}
}

func (s *Store) notify(cfg models.AppConfig) {
	s.listenersMu.RLock()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.listenersMu.RUnlock()

	for _, l := range listeners {
		l(cfg.Clone())
	}
}

// User returns the signed-in user.
func (s *Store) User() models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.User
}

// Company returns the tenant details.
func (s *Store) Company() models.Company {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Company
}

// Kpis returns the KPI cards.
func (s *Store) Kpis() []models.KpiData {
	return s.Config().Kpis
}

// ChartData returns one chart series.
func (s *Store) ChartData(kind models.ChartKind) ([]models.ChartData, error) {
	s.mu.RLock()
	charts := s.current.Charts.Clone()
	s.mu.RUnlock()

	series, ok := charts.Series(kind)
	if !ok {
		return nil, models.ErrUnknownChart
	}
	return series, nil
}

// Notifications returns the notification preferences.
func (s *Store) Notifications() []models.NotificationPreference {
	return s.Config().Notifications
}

// Billing returns the subscription details.
func (s *Store) Billing() models.BillingInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Billing.Clone()
}

// Settings returns the settings page options.
func (s *Store) Settings() models.SettingsOptions {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Settings.Clone()
}

// Analytics returns the reports page data.
func (s *Store) Analytics() models.AnalyticsData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Analytics.Clone()
}

// Campaigns returns the campaign table rows.
func (s *Store) Campaigns() []models.CampaignData {
	return s.Analytics().Campaigns
}

// RevenueData returns the revenue series.
func (s *Store) RevenueData() []models.RevenueData {
	return s.Analytics().RevenueData
}

// ChannelData returns per-channel performance.
func (s *Store) ChannelData() []models.ChannelData {
	return s.Analytics().ChannelData
}

// ConversionFunnel returns the funnel stages in journey order.
func (s *Store) ConversionFunnel() []models.ConversionFunnelData {
	return s.Analytics().ConversionFunnel
}
