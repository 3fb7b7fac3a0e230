package repository

import (
	"context"
	"time"

	"yourlinks/internal/model"
)

// MySQLRepositoryInterface defines the interface for MySQL operations
type MySQLRepositoryInterface interface {
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	GetUserByVerifiedDomain(ctx context.Context, domain string) (*model.User, error)
	GetLinkByName(ctx context.Context, username, linkName string) (*model.Link, error)
	IncrementClicks(ctx context.Context, linkID int64) error
	SaveClickEvent(ctx context.Context, ev *model.ClickEvent) error
	GetClickEvents(ctx context.Context, linkID int64, limit int) ([]model.ClickEvent, error)
	DeleteCategory(ctx context.Context, userID, categoryID int64) error
	Close() error
}

// RedisRepositoryInterface defines the interface for Redis operations
type RedisRepositoryInterface interface {
	SaveLink(ctx context.Context, username, linkName string, link *model.Link, ttl time.Duration) error
	GetLink(ctx context.Context, username, linkName string) (*model.Link, error)
	SaveDomainOwner(ctx context.Context, host, username string, ttl time.Duration) error
	GetDomainOwner(ctx context.Context, host string) (string, error)
	IncrementPV(ctx context.Context, username, linkName string) (int64, error)
	GetPV(ctx context.Context, username, linkName string) (int64, error)
	AddUV(ctx context.Context, username, linkName, visitorID string) (bool, error)
	GetUV(ctx context.Context, username, linkName string) (int64, error)
	Close() error
}
