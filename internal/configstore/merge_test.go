package configstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/admybrand/dashboard-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeIsPure(t *testing.T) {
	current := models.DefaultAppConfig()
	snapshot := current.Clone()
	kpis := []models.KpiData{{Title: "Only"}}
	p := Partial{Kpis: &kpis}

	next := Merge(current, p)
	next.Kpis[0].Title = "Changed after merge"

	assert.Equal(t, snapshot, current)
	assert.Equal(t, "Only", kpis[0].Title)
}

func TestMergeEmptyPartialIsIdentity(t *testing.T) {
	current := models.DefaultAppConfig()
	assert.Equal(t, current, Merge(current, Partial{}))
	assert.True(t, Partial{}.IsEmpty())
}

func TestMergeReplacesWholeSections(t *testing.T) {
	current := models.DefaultAppConfig()
	analytics := models.AnalyticsData{
		Campaigns: []models.CampaignData{{ID: "only", Name: "Only campaign"}},
	}

	next := Merge(current, Partial{Analytics: &analytics})

	assert.Len(t, next.Analytics.Campaigns, 1)
	assert.Nil(t, next.Analytics.RevenueData, "sections are replaced, not deep-merged")
	assert.Equal(t, current.Charts, next.Charts)
}

func TestMergeKeepsEmptySlices(t *testing.T) {
	empty := []models.KpiData{}
	next := Merge(models.DefaultAppConfig(), Partial{Kpis: &empty})

	require.NotNil(t, next.Kpis)
	assert.Empty(t, next.Kpis)
}

func decodeJSON(t *testing.T, body string) map[string]interface{} {
	t.Helper()
	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(body), &raw))
	return raw
}

func TestDecodePartial(t *testing.T) {
	raw := decodeJSON(t, `{
		"company": {"name": "Acme", "logo": "/a.png", "domain": "acme.test"},
		"kpis": [{"title": "Leads", "value": "12", "trend": "+1%", "icon": "Users", "color": "red"}],
		"charts": {"lineChart": [{"name": "Jan", "value": 10}]},
		"analytics": {"campaigns": [{"id": "c1", "name": "C", "status": "paused", "impressions": 1000, "roi": 12.5}]},
		"theme": "dark"
	}`)

	p, unused, err := DecodePartial(raw)
	require.NoError(t, err)

	assert.Equal(t, []string{"analytics", "charts", "company", "kpis"}, p.Sections())
	assert.Equal(t, []string{"theme"}, unused)
	assert.Equal(t, "Acme", p.Company.Name)
	assert.Equal(t, "Leads", (*p.Kpis)[0].Title)
	require.NotNil(t, p.Charts.LineChart[0].Value)
	assert.Equal(t, 10.0, *p.Charts.LineChart[0].Value)
	assert.Nil(t, p.Charts.LineChart[0].Sales)
	assert.Equal(t, models.CampaignPaused, p.Analytics.Campaigns[0].Status)
	assert.Equal(t, int64(1000), p.Analytics.Campaigns[0].Impressions)
	assert.Equal(t, 12.5, p.Analytics.Campaigns[0].ROI)
	assert.Nil(t, p.User)
}

func TestDecodePartialNullSectionIsAbsent(t *testing.T) {
	p, _, err := DecodePartial(decodeJSON(t, `{"user": null}`))
	require.NoError(t, err)
	assert.True(t, p.IsEmpty())
}

func TestDecodePartialRejectsWrongShape(t *testing.T) {
	_, _, err := DecodePartial(decodeJSON(t, `{"user": "john"}`))
	assert.ErrorIs(t, err, ErrInvalidPartial)
}

func TestDecodePartialIsStrict(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "fractional id", body: `{"user": {"id": 1.9, "name": "John"}}`},
		{name: "object for list", body: `{"kpis": {"title": "Leads"}}`},
		{name: "string for number", body: `{"analytics": {"campaigns": [{"impressions": "1000"}]}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := DecodePartial(decodeJSON(t, tt.body))
			assert.ErrorIs(t, err, ErrInvalidPartial)
		})
	}

	p, _, err := DecodePartial(decodeJSON(t, `{"user": {"id": 2.0}}`))
	require.NoError(t, err)
	assert.Equal(t, 2, p.User.ID)
}

func TestApplySeedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seed.yaml")
	seed := `
company:
  name: Seeded Co
  logo: /seed.png
  domain: seed.test
kpis:
  - title: Revenue
    value: "$1"
    trend: "-2.0%"
    icon: DollarSign
    color: red
`
	require.NoError(t, os.WriteFile(path, []byte(seed), 0o600))

	store := NewDefault(nil)
	require.NoError(t, store.ApplySeedFile(path))

	cfg := store.Config()
	assert.Equal(t, "Seeded Co", cfg.Company.Name)
	require.Len(t, cfg.Kpis, 1)
	assert.Equal(t, "-2.0%", cfg.Kpis[0].Trend)
	assert.Equal(t, "John Doe", cfg.User.Name)
}

func TestApplySeedFileErrors(t *testing.T) {
	store := NewDefault(nil)
	assert.NoError(t, store.ApplySeedFile(""))

	err := store.ApplySeedFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("company: [unterminated"), 0o600))
	assert.ErrorIs(t, store.ApplySeedFile(path), ErrInvalidPartial)

	assert.Equal(t, models.DefaultAppConfig(), store.Config())
}
