// Package search implements the dashboard's free-text filtering: per-record
// substring predicates, keyword driven section visibility and the global
// result cards.
package search

import (
	"strings"

	"github.com/admybrand/dashboard-backend/internal/models"
)

// Normalize lower-cases a query. It is applied once per filter call.
func Normalize(query string) string {
	return strings.ToLower(query)
}

// Filter returns the items for which at least one of fields(item) contains
// the query, ignoring case. An empty query returns items unchanged. Order is
// preserved.
func Filter[T any](items []T, query string, fields func(T) []string) []T {
	q := Normalize(query)
	if q == "" {
		return items
	}

	out := make([]T, 0, len(items))
	for _, item := range items {
		if anyContains(fields(item), q) {
			out = append(out, item)
		}
	}
	return out
}

func anyContains(fields []string, q string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// CampaignFields are matched by name, channel and status.
func CampaignFields(c models.CampaignData) []string {
	return []string{c.Name, c.Channel, string(c.Status)}
}

// ChannelFields are matched by channel name only.
func ChannelFields(c models.ChannelData) []string {
	return []string{c.Channel}
}

// UserFields are matched by name, email, role and plan.
func UserFields(u models.User) []string {
	return []string{u.Name, u.Email, u.Role, u.Plan}
}

// KpiFields are matched by title and display value.
func KpiFields(k models.KpiData) []string {
	return []string{k.Title, k.Value}
}

// NotificationFields are matched by title, description and category.
func NotificationFields(n models.NotificationPreference) []string {
	return []string{n.Title, n.Description, string(n.Category)}
}

func FilterCampaigns(items []models.CampaignData, query string) []models.CampaignData {
	return Filter(items, query, CampaignFields)
}

func FilterChannels(items []models.ChannelData, query string) []models.ChannelData {
	return Filter(items, query, ChannelFields)
}

func FilterUsers(items []models.User, query string) []models.User {
	return Filter(items, query, UserFields)
}

func FilterKpis(items []models.KpiData, query string) []models.KpiData {
	return Filter(items, query, KpiFields)
}

func FilterNotifications(items []models.NotificationPreference, query string) []models.NotificationPreference {
	return Filter(items, query, NotificationFields)
}
