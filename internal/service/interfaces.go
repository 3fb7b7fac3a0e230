package service

import (
	"context"
	"time"

	"yourlinks/internal/model"
)

// MySQLRepositoryInterface defines the interface for MySQL operations (for testing)
type MySQLRepositoryInterface interface {
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	GetUserByVerifiedDomain(ctx context.Context, domain string) (*model.User, error)
	GetLinkByName(ctx context.Context, username, linkName string) (*model.Link, error)
	IncrementClicks(ctx context.Context, linkID int64) error
	SaveClickEvent(ctx context.Context, ev *model.ClickEvent) error
	GetClickEvents(ctx context.Context, linkID int64, limit int) ([]model.ClickEvent, error)
}

// RedisRepositoryInterface defines the interface for Redis operations (for testing)
type RedisRepositoryInterface interface {
	SaveLink(ctx context.Context, username, linkName string, link *model.Link, ttl time.Duration) error
	GetLink(ctx context.Context, username, linkName string) (*model.Link, error)
	SaveDomainOwner(ctx context.Context, host, username string, ttl time.Duration) error
	GetDomainOwner(ctx context.Context, host string) (string, error)
	IncrementPV(ctx context.Context, username, linkName string) (int64, error)
	GetPV(ctx context.Context, username, linkName string) (int64, error)
	AddUV(ctx context.Context, username, linkName, visitorID string) (bool, error)
	GetUV(ctx context.Context, username, linkName string) (int64, error)
}

// HostResolverInterface defines the interface for host resolution
type HostResolverInterface interface {
	Resolve(ctx context.Context, host string) model.Resolution
}

// LinkServiceInterface defines the interface for link lookups
type LinkServiceInterface interface {
	Get(ctx context.Context, username, linkName string) (*model.Link, error)
	ProfileURL(ctx context.Context, username string) (string, error)
}

// ClickRecorderInterface defines the interface for click recording
type ClickRecorderInterface interface {
	Record(ctx context.Context, link *model.Link, username string, visit model.Visit, state model.State) error
}

// StatsServiceInterface defines the interface for link statistics
type StatsServiceInterface interface {
	GetStats(ctx context.Context, username, linkName string) (*model.LinkStats, error)
}
