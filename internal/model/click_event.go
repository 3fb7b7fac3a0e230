package model

import (
	"time"
)

// ClickEvent is one append-only record of a resolved, redirect-producing
// request. Events are never mutated or deleted by the redirect engine.
type ClickEvent struct {
	ID            int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	LinkID        int64     `json:"link_id" gorm:"index;not null"`
	IPAddress     string    `json:"ip_address" gorm:"type:varchar(64)"`
	UserAgent     string    `json:"user_agent" gorm:"type:varchar(512)"`
	Referrer      string    `json:"referrer" gorm:"type:varchar(512)"`
	IsExpired     bool      `json:"is_expired" gorm:"default:false"`
	IsDeactivated bool      `json:"is_deactivated" gorm:"default:false"`
	ClickedAt     time.Time `json:"clicked_at" gorm:"autoCreateTime"`
}

// TableName returns the table name for ClickEvent
func (ClickEvent) TableName() string {
	return "link_clicks"
}

// Visit captures the request attributes recorded with a click. Every field
// tolerates being absent; missing headers are recorded as empty strings.
type Visit struct {
	IPAddress string
	UserAgent string
	Referrer  string
}

// LinkStats is the aggregate returned by the stats API.
type LinkStats struct {
	Username string       `json:"username"`
	LinkName string       `json:"link_name"`
	Clicks   int64        `json:"clicks"`
	PV       int64        `json:"pv"`
	UV       int64        `json:"uv"`
	Recent   []ClickEvent `json:"recent,omitempty"`
}
