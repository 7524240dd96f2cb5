package models

import (
	"fmt"
	"math"
)

// UserStatus is the account state of a dashboard user
type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
)

// User represents the signed-in dashboard user and rows of the users table
type User struct {
	ID     int        `json:"id"`
	Name   string     `json:"name"`
	Email  string     `json:"email"`
	Avatar string     `json:"avatar,omitempty"`
	Role   string     `json:"role"`
	Plan   string     `json:"plan"`
	Status UserStatus `json:"status,omitempty"`
}

// SettingsSubmission is the profile form posted from the settings page. It is
// kept loose so any non-empty value counts as a provided field.
type SettingsSubmission map[string]interface{}

var requiredSettingsFields = []string{"firstName", "lastName", "email"}

// Complete reports whether every required field holds a truthy value.
func (s SettingsSubmission) Complete() bool {
	for _, key := range requiredSettingsFields {
		if !truthy(s[key]) {
			return false
		}
	}
	return true
}

// Field renders one submitted value for logging.
func (s SettingsSubmission) Field(key string) string {
	v, ok := s[key]
	if !ok || v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

func truthy(v interface{}) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	case float64:
		return val != 0 && !math.IsNaN(val)
	default:
		return true
	}
}
