package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"yourlinks/internal/metrics"
	"yourlinks/internal/model"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var (
	// ErrLinkNotFound is returned when no link exists for (tenant, name)
	ErrLinkNotFound = errors.New("link not found")
	// ErrUserNotFound is returned when the tenant user does not exist
	ErrUserNotFound = errors.New("user not found")
)

// LinkService retrieves link records for the redirect path. Lookups apply no
// activity or expiry filter: deactivated and expired links are returned in
// full so the lifecycle evaluator can pick their configured behavior.
type LinkService struct {
	mysqlRepo   MySQLRepositoryInterface
	redisRepo   RedisRepositoryInterface
	cacheTTL    time.Duration
	profileBase string
}

// NewLinkService creates a new LinkService
func NewLinkService(
	mysqlRepo MySQLRepositoryInterface,
	redisRepo RedisRepositoryInterface,
	cacheTTL time.Duration,
	profileBase string,
) *LinkService {
	if !strings.HasSuffix(profileBase, "/") {
		profileBase += "/"
	}
	return &LinkService{
		mysqlRepo:   mysqlRepo,
		redisRepo:   redisRepo,
		cacheTTL:    cacheTTL,
		profileBase: profileBase,
	}
}

// NormalizePath reduces a request path to a link name: leading and trailing
// slashes are stripped; query string and fragment never reach this point.
func NormalizePath(p string) string {
	return strings.Trim(p, "/")
}

// Get retrieves the full link record for a tenant and link name, cache-aside.
// The cached value is the whole record, so lifecycle state is re-evaluated on
// every request; staleness is bounded by the cache TTL.
func (s *LinkService) Get(ctx context.Context, username, linkName string) (*model.Link, error) {
	if link, err := s.redisRepo.GetLink(ctx, username, linkName); err == nil {
		metrics.RecordCacheHit()
		return link, nil
	}
	metrics.RecordCacheMiss()

	link, err := s.mysqlRepo.GetLinkByName(ctx, username, linkName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLinkNotFound
		}
		return nil, fmt.Errorf("link lookup: %w", err)
	}

	if err := s.redisRepo.SaveLink(ctx, username, linkName, link, s.cacheTTL); err != nil {
		log.Warn().Err(err).Str("username", username).Str("link_name", linkName).Msg("Failed to cache link")
	}

	return link, nil
}

// ProfileURL resolves the external profile target for an empty-path tenant
// request. The tenant must exist; there is no default profile.
func (s *LinkService) ProfileURL(ctx context.Context, username string) (string, error) {
	user, err := s.mysqlRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("user lookup: %w", err)
	}
	return s.profileBase + user.Username, nil
}
