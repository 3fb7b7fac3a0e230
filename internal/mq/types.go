package mq

import (
	"time"
)

// ClickEventMessage is the wire form of one click event. Delivery is
// at-least-once; EventID lets downstream consumers dedupe if they care.
type ClickEventMessage struct {
	EventID       string    `json:"event_id"`
	LinkID        int64     `json:"link_id"`
	Username      string    `json:"username"`
	LinkName      string    `json:"link_name"`
	IPAddress     string    `json:"ip_address"`
	UserAgent     string    `json:"user_agent"`
	Referrer      string    `json:"referrer"`
	IsExpired     bool      `json:"is_expired"`
	IsDeactivated bool      `json:"is_deactivated"`
	ClickedAt     time.Time `json:"clicked_at"`
}
