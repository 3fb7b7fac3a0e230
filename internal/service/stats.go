package service

import (
	"context"
	"errors"
	"fmt"

	"yourlinks/internal/model"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const recentEventsLimit = 20

// StatsService assembles per-link statistics: the durable click counter and
// recent events from MySQL, realtime PV/UV from Redis.
type StatsService struct {
	mysqlRepo MySQLRepositoryInterface
	redisRepo RedisRepositoryInterface
}

// NewStatsService creates a new StatsService
func NewStatsService(mysqlRepo MySQLRepositoryInterface, redisRepo RedisRepositoryInterface) *StatsService {
	return &StatsService{
		mysqlRepo: mysqlRepo,
		redisRepo: redisRepo,
	}
}

// GetStats returns statistics for a link. Redis counters degrade to zero
// when unavailable; only the MySQL lookup is load-bearing.
func (s *StatsService) GetStats(ctx context.Context, username, linkName string) (*model.LinkStats, error) {
	link, err := s.mysqlRepo.GetLinkByName(ctx, username, linkName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLinkNotFound
		}
		return nil, fmt.Errorf("link lookup: %w", err)
	}

	pv, err := s.redisRepo.GetPV(ctx, username, linkName)
	if err != nil {
		pv = 0
	}

	uv, err := s.redisRepo.GetUV(ctx, username, linkName)
	if err != nil {
		uv = 0
	}

	events, err := s.mysqlRepo.GetClickEvents(ctx, link.ID, recentEventsLimit)
	if err != nil {
		log.Warn().Err(err).Int64("link_id", link.ID).Msg("Failed to load recent click events")
		events = nil
	}

	return &model.LinkStats{
		Username: username,
		LinkName: linkName,
		Clicks:   link.Clicks,
		PV:       pv,
		UV:       uv,
		Recent:   events,
	}, nil
}
