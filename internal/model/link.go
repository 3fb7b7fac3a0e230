package model

import (
	"regexp"
	"time"
)

// Terminal behaviors for links accessed in a non-active state.
const (
	BehaviorInactive   = "inactive"
	BehaviorRedirect   = "redirect"
	BehaviorCustomPage = "custom_page"
)

var linkNameRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// State classifies a link at request time. Expired is derived from the
// wall clock, never stored; Deactivated reflects the owner's toggle.
type State int

const (
	StateActive State = iota
	StateExpired
	StateDeactivated
)

// String returns the state name for logging and metrics labels
func (s State) String() string {
	switch s {
	case StateExpired:
		return "expired"
	case StateDeactivated:
		return "deactivated"
	default:
		return "active"
	}
}

// Link represents a named short link under a user's namespace.
// (user_id, link_name) is unique; matching is exact and case-sensitive.
type Link struct {
	ID         int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID     int64  `json:"user_id" gorm:"index:idx_links_user_name,unique;not null"`
	LinkName   string `json:"link_name" gorm:"type:varchar(128);index:idx_links_user_name,unique;not null"`
	Title      string `json:"title" gorm:"type:varchar(255)"`
	CategoryID *int64 `json:"category_id" gorm:"index"`

	OriginalURL string `json:"original_url" gorm:"type:varchar(2048);not null"`

	IsActive  bool       `json:"is_active" gorm:"default:true"`
	ExpiresAt *time.Time `json:"expires_at" gorm:"index"`

	ExpirationBehavior string `json:"expiration_behavior" gorm:"type:varchar(16);default:'inactive'"`
	ExpiredRedirectURL string `json:"expired_redirect_url" gorm:"type:varchar(2048)"`
	ExpiredPageTitle   string `json:"expired_page_title" gorm:"type:varchar(255)"`
	ExpiredPageMessage string `json:"expired_page_message" gorm:"type:varchar(1024)"`

	DeactivationBehavior   string `json:"deactivation_behavior" gorm:"type:varchar(16);default:'inactive'"`
	DeactivatedRedirectURL string `json:"deactivated_redirect_url" gorm:"type:varchar(2048)"`
	DeactivatedPageTitle   string `json:"deactivated_page_title" gorm:"type:varchar(255)"`
	DeactivatedPageMessage string `json:"deactivated_page_message" gorm:"type:varchar(1024)"`

	Clicks    int64     `json:"clicks" gorm:"default:0"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName returns the table name for Link
func (Link) TableName() string {
	return "links"
}

// IsExpiredAt reports whether the link's expiry has passed at the given
// instant. Expiry is derived state: it is never stored, only computed.
func (l *Link) IsExpiredAt(now time.Time) bool {
	return l.ExpiresAt != nil && !l.ExpiresAt.After(now)
}

// ValidLinkName reports whether a candidate link name uses the allowed
// charset. Enforced at write time; the redirect path never re-validates.
func ValidLinkName(name string) bool {
	return linkNameRe.MatchString(name)
}
