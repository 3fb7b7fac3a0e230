package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"yourlinks/internal/config"
	"yourlinks/internal/model"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	// Redis key prefixes
	LinkKeyPrefix       = "yl:link:"
	DomainKeyPrefix     = "yl:domain:"
	PVKeyPrefix         = "yl:pv:"
	UVKeyPrefix         = "yl:uv:"
	StatsExpireDuration = 24 * time.Hour
)

// RedisRepository handles Redis operations
type RedisRepository struct {
	client *redis.Client
	cfg    *config.RedisConfig
}

// NewRedisRepository creates a new Redis repository
func NewRedisRepository(cfg *config.RedisConfig) *RedisRepository {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Error().Err(err).Msg("Failed to connect to Redis")
	} else {
		log.Info().Msg("Redis connected successfully")
	}

	return &RedisRepository{
		client: rdb,
		cfg:    cfg,
	}
}

// GetClient returns the Redis client
func (r *RedisRepository) GetClient() *redis.Client {
	return r.client
}

// SaveLink caches a full link record. The whole record is stored, not just
// the target URL, so the lifecycle evaluator still runs on cache hits.
func (r *RedisRepository) SaveLink(ctx context.Context, username, linkName string, link *model.Link, ttl time.Duration) error {
	data, err := json.Marshal(link)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.linkKey(username, linkName), data, ttl).Err()
}

// GetLink retrieves a cached link record
func (r *RedisRepository) GetLink(ctx context.Context, username, linkName string) (*model.Link, error) {
	data, err := r.client.Get(ctx, r.linkKey(username, linkName)).Bytes()
	if err != nil {
		return nil, err
	}
	var link model.Link
	if err := json.Unmarshal(data, &link); err != nil {
		return nil, err
	}
	return &link, nil
}

// SaveDomainOwner caches the verified custom domain to username mapping
func (r *RedisRepository) SaveDomainOwner(ctx context.Context, host, username string, ttl time.Duration) error {
	return r.client.Set(ctx, r.domainKey(host), username, ttl).Err()
}

// GetDomainOwner retrieves the cached owner of a custom domain
func (r *RedisRepository) GetDomainOwner(ctx context.Context, host string) (string, error) {
	return r.client.Get(ctx, r.domainKey(host)).Result()
}

// IncrementPV increments the realtime page view counter for a link
func (r *RedisRepository) IncrementPV(ctx context.Context, username, linkName string) (int64, error) {
	key := r.pvKey(username, linkName)
	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	// Set expiration if this is the first increment
	if count == 1 {
		r.client.Expire(ctx, key, StatsExpireDuration)
	}
	return count, nil
}

// GetPV gets the realtime page view counter for a link
func (r *RedisRepository) GetPV(ctx context.Context, username, linkName string) (int64, error) {
	return r.client.Get(ctx, r.pvKey(username, linkName)).Int64()
}

// AddUV adds a unique visitor for a link
func (r *RedisRepository) AddUV(ctx context.Context, username, linkName, visitorID string) (bool, error) {
	day := time.Now().Format("2006-01-02")
	dailyKey := fmt.Sprintf("%s:%s", r.uvKey(username, linkName), day)

	added, err := r.client.SAdd(ctx, dailyKey, visitorID).Result()
	if err != nil {
		return false, err
	}
	r.client.Expire(ctx, dailyKey, StatsExpireDuration)

	return added > 0, nil
}

// GetUV gets the unique visitor count for a link
func (r *RedisRepository) GetUV(ctx context.Context, username, linkName string) (int64, error) {
	pattern := fmt.Sprintf("%s:*", r.uvKey(username, linkName))
	var keys []string

	iter := r.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}

	if err := iter.Err(); err != nil {
		return 0, err
	}

	var totalUV int64
	for _, key := range keys {
		count, err := r.client.SCard(ctx, key).Result()
		if err != nil {
			continue
		}
		totalUV += count
	}

	return totalUV, nil
}

// Close closes the Redis connection
func (r *RedisRepository) Close() error {
	return r.client.Close()
}

// Helper functions to build Redis keys

func (r *RedisRepository) linkKey(username, linkName string) string {
	return LinkKeyPrefix + username + ":" + linkName
}

func (r *RedisRepository) domainKey(host string) string {
	return DomainKeyPrefix + host
}

func (r *RedisRepository) pvKey(username, linkName string) string {
	return PVKeyPrefix + username + ":" + linkName
}

func (r *RedisRepository) uvKey(username, linkName string) string {
	return UVKeyPrefix + username + ":" + linkName
}
