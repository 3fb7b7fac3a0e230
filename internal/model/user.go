package model

import (
	"time"
)

// User represents an account that owns a namespace of links. The username
// doubles as the platform subdomain label; a verified custom domain is an
// alternative entry point into the same namespace.
type User struct {
	ID                      int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Username                string    `json:"username" gorm:"type:varchar(64);uniqueIndex;not null"`
	CustomDomain            *string   `json:"custom_domain" gorm:"type:varchar(255);uniqueIndex"`
	DomainVerified          bool      `json:"domain_verified" gorm:"default:false"`
	DomainVerificationToken string    `json:"-" gorm:"type:varchar(64)"`
	CreatedAt               time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// HasVerifiedDomain reports whether the user may be routed via a custom domain.
func (u *User) HasVerifiedDomain() bool {
	return u.DomainVerified && u.CustomDomain != nil && *u.CustomDomain != ""
}

// Category groups links for display in the dashboard. A category is owned by
// exactly one user and is only deletable while no link references it.
type Category struct {
	ID     int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID int64  `json:"user_id" gorm:"index:idx_categories_user_name,unique;not null"`
	Name   string `json:"name" gorm:"type:varchar(64);index:idx_categories_user_name,unique;not null"`
	Color  string `json:"color" gorm:"type:varchar(16)"`
	Icon   string `json:"icon" gorm:"type:varchar(64)"`
}

// TableName returns the table name for Category
func (Category) TableName() string {
	return "categories"
}
