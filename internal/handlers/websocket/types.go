package websocket

import (
	"time"

	"github.com/admybrand/dashboard-backend/internal/models"
)

// MessageType represents the type of WebSocket message
type MessageType string

const (
	// TypeConfig carries a full AppConfig snapshot. It is sent once on
	// connect and again after every change to the store.
	TypeConfig MessageType = "config"
)

// Message represents a WebSocket message
type Message struct {
	Type      MessageType       `json:"type"`
	Timestamp time.Time         `json:"timestamp"`
	Data      *models.AppConfig `json:"data,omitempty"`
}

func newConfigMessage(cfg models.AppConfig) *Message {
	return &Message{
		Type:      TypeConfig,
		Timestamp: time.Now().UTC(),
		Data:      &cfg,
	}
}
