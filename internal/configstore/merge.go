package configstore

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"sort"

	"github.com/admybrand/dashboard-backend/internal/models"
	"github.com/mitchellh/mapstructure"
)

// ErrInvalidPartial is returned when an update body cannot be mapped onto
// the AppConfig sections.
var ErrInvalidPartial = errors.New("invalid config update")

// Partial is a shallow update of AppConfig. A nil field leaves the current
// section untouched; a non-nil field replaces the whole section.
type Partial struct {
	Company       *models.Company                  `json:"company"`
	User          *models.User                     `json:"user"`
	Kpis          *[]models.KpiData                `json:"kpis"`
	Charts        *models.Charts                   `json:"charts"`
	Notifications *[]models.NotificationPreference `json:"notifications"`
	Billing       *models.BillingInfo              `json:"billing"`
	Settings      *models.SettingsOptions          `json:"settings"`
	Analytics     *models.AnalyticsData            `json:"analytics"`
}

// Sections lists the top-level keys present in the update, sorted.
func (p Partial) Sections() []string {
	var keys []string
	if p.Company != nil {
		keys = append(keys, "company")
	}
	if p.User != nil {
		keys = append(keys, "user")
	}
	if p.Kpis != nil {
		keys = append(keys, "kpis")
	}
	if p.Charts != nil {
		keys = append(keys, "charts")
	}
	if p.Notifications != nil {
		keys = append(keys, "notifications")
	}
	if p.Billing != nil {
		keys = append(keys, "billing")
	}
	if p.Settings != nil {
		keys = append(keys, "settings")
	}
	if p.Analytics != nil {
		keys = append(keys, "analytics")
	}
	sort.Strings(keys)
	return keys
}

// IsEmpty reports whether the update carries no section at all.
func (p Partial) IsEmpty() bool {
	return len(p.Sections()) == 0
}

// Merge applies p on top of current and returns the result. Sections present
// in p overwrite, absent sections are kept. Neither argument is modified.
func Merge(current models.AppConfig, p Partial) models.AppConfig {
	next := current.Clone()
	if p.Company != nil {
		next.Company = *p.Company
	}
	if p.User != nil {
		next.User = *p.User
	}
	if p.Kpis != nil {
		next.Kpis = make([]models.KpiData, len(*p.Kpis))
		copy(next.Kpis, *p.Kpis)
	}
	if p.Charts != nil {
		next.Charts = p.Charts.Clone()
	}
	if p.Notifications != nil {
		next.Notifications = make([]models.NotificationPreference, len(*p.Notifications))
		copy(next.Notifications, *p.Notifications)
	}
	if p.Billing != nil {
		next.Billing = p.Billing.Clone()
	}
	if p.Settings != nil {
		next.Settings = p.Settings.Clone()
	}
	if p.Analytics != nil {
		next.Analytics = p.Analytics.Clone()
	}
	return next
}

// DecodePartial maps a generic JSON or YAML document onto a Partial. Keys that
// do not name an AppConfig section are returned as unused rather than failing
// the decode, and null sections count as absent.
func DecodePartial(raw map[string]interface{}) (Partial, []string, error) {
	var p Partial
	var md mapstructure.Metadata

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:    "json",
		Result:     &p,
		Metadata:   &md,
		DecodeHook: rejectFractionalInts,
	})
	if err != nil {
		return Partial{}, nil, fmt.Errorf("failed to build decoder: %w", err)
	}

	if err := decoder.Decode(raw); err != nil {
		return Partial{}, nil, fmt.Errorf("%w: %v", ErrInvalidPartial, err)
	}

	sort.Strings(md.Unused)
	return p, md.Unused, nil
}

// rejectFractionalInts stops mapstructure from truncating JSON numbers such
// as 1.9 into integer fields.
func rejectFractionalInts(from, to reflect.Type, data interface{}) (interface{}, error) {
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
	default:
		return data, nil
	}
	if from.Kind() != reflect.Float32 && from.Kind() != reflect.Float64 {
		return data, nil
	}
	if f := reflect.ValueOf(data).Float(); f != math.Trunc(f) {
		return nil, fmt.Errorf("expected an integer, got %v", f)
	}
	return data, nil
}
