package service

import (
	"context"
	"errors"
	"net"
	"strings"
	"time"

	"yourlinks/internal/model"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// HostResolver maps inbound hosts to tenants. Platform subdomains resolve
// without storage access; custom domains require a verified registration.
type HostResolver struct {
	mysqlRepo  MySQLRepositoryInterface
	redisRepo  RedisRepositoryInterface
	rootDomain string
	rootLabel  string
	domainTTL  time.Duration
}

// NewHostResolver creates a new HostResolver for the given root domain
func NewHostResolver(
	mysqlRepo MySQLRepositoryInterface,
	redisRepo RedisRepositoryInterface,
	rootDomain string,
	domainTTL time.Duration,
) *HostResolver {
	rootDomain = strings.ToLower(rootDomain)
	return &HostResolver{
		mysqlRepo:  mysqlRepo,
		redisRepo:  redisRepo,
		rootDomain: rootDomain,
		rootLabel:  strings.SplitN(rootDomain, ".", 2)[0],
		domainTTL:  domainTTL,
	}
}

// Resolve classifies a request host. It never returns an error: storage
// failures on the custom-domain lookup fail closed to HostNotFound, and the
// response must not reveal whether an unverified registration exists.
func (r *HostResolver) Resolve(ctx context.Context, host string) model.Resolution {
	host = normalizeHost(host)
	if host == "" {
		return model.Resolution{Kind: model.HostNotFound}
	}

	if host == r.rootDomain || host == "www."+r.rootDomain {
		return model.Resolution{Kind: model.HostMainSite}
	}

	if label, ok := strings.CutSuffix(host, "."+r.rootDomain); ok {
		// Leftmost label wins; a misconfigured double subdomain like
		// www.alice.yourlinks.click routes to the main site, not a tenant.
		label = strings.SplitN(label, ".", 2)[0]
		if label == "" || label == "www" || label == r.rootLabel {
			return model.Resolution{Kind: model.HostMainSite}
		}
		return model.Resolution{Kind: model.HostTenant, Username: label}
	}

	return r.resolveCustomDomain(ctx, host)
}

// resolveCustomDomain looks up a verified custom domain, cache-aside
func (r *HostResolver) resolveCustomDomain(ctx context.Context, host string) model.Resolution {
	if username, err := r.redisRepo.GetDomainOwner(ctx, host); err == nil && username != "" {
		return model.Resolution{Kind: model.HostTenant, Username: username}
	}

	user, err := r.mysqlRepo.GetUserByVerifiedDomain(ctx, host)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			// Infrastructure failure, not a user data problem. Still 404.
			log.Error().Err(err).Str("host", host).Msg("Custom domain lookup failed")
		}
		return model.Resolution{Kind: model.HostNotFound}
	}

	if err := r.redisRepo.SaveDomainOwner(ctx, host, user.Username, r.domainTTL); err != nil {
		log.Warn().Err(err).Str("host", host).Msg("Failed to cache domain owner")
	}

	return model.Resolution{Kind: model.HostTenant, Username: user.Username}
}

// normalizeHost strips an optional port and lowercases the host
func normalizeHost(host string) string {
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	return strings.ToLower(strings.TrimSuffix(host, "."))
}
