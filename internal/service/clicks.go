package service

import (
	"context"
	"fmt"
	"time"

	"yourlinks/internal/metrics"
	"yourlinks/internal/model"
	"yourlinks/internal/mq"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ClickService records redirect-producing requests: one atomic counter
// increment plus one append-only click event, with realtime PV/UV counters on
// the side. Every effect is best-effort; the redirect already sent to the
// user never depends on any of them.
type ClickService struct {
	mysqlRepo MySQLRepositoryInterface
	redisRepo RedisRepositoryInterface
	producer  mq.ProducerInterface
}

// NewClickService creates a new ClickService. producer may be nil, in which
// case click events are written to MySQL directly.
func NewClickService(
	mysqlRepo MySQLRepositoryInterface,
	redisRepo RedisRepositoryInterface,
	producer mq.ProducerInterface,
) *ClickService {
	return &ClickService{
		mysqlRepo: mysqlRepo,
		redisRepo: redisRepo,
		producer:  producer,
	}
}

// Record registers one click against a link. Individual failures are logged
// and counted but do not abort the remaining effects.
func (s *ClickService) Record(ctx context.Context, link *model.Link, username string, visit model.Visit, state model.State) error {
	if err := s.mysqlRepo.IncrementClicks(ctx, link.ID); err != nil {
		metrics.RecordClickFailure()
		log.Error().Err(err).Int64("link_id", link.ID).Msg("Failed to increment click counter")
	}

	now := time.Now()
	if s.producer != nil {
		msg := &mq.ClickEventMessage{
			EventID:       uuid.NewString(),
			LinkID:        link.ID,
			Username:      username,
			LinkName:      link.LinkName,
			IPAddress:     visit.IPAddress,
			UserAgent:     visit.UserAgent,
			Referrer:      visit.Referrer,
			IsExpired:     state == model.StateExpired,
			IsDeactivated: state == model.StateDeactivated,
			ClickedAt:     now,
		}
		if err := s.producer.SendClickEvent(ctx, msg); err != nil {
			metrics.RecordClickFailure()
			log.Error().Err(err).Int64("link_id", link.ID).Msg("Failed to publish click event, writing directly")
			s.saveDirect(ctx, link.ID, visit, state, now)
		}
	} else {
		s.saveDirect(ctx, link.ID, visit, state, now)
	}

	s.recordRealtime(ctx, username, link.LinkName, visit.IPAddress)

	metrics.RecordClick()
	return nil
}

// saveDirect appends the click event to MySQL without the MQ pipeline
func (s *ClickService) saveDirect(ctx context.Context, linkID int64, visit model.Visit, state model.State, now time.Time) {
	ev := &model.ClickEvent{
		LinkID:        linkID,
		IPAddress:     visit.IPAddress,
		UserAgent:     visit.UserAgent,
		Referrer:      visit.Referrer,
		IsExpired:     state == model.StateExpired,
		IsDeactivated: state == model.StateDeactivated,
		ClickedAt:     now,
	}
	if err := s.mysqlRepo.SaveClickEvent(ctx, ev); err != nil {
		metrics.RecordClickFailure()
		log.Error().Err(err).Int64("link_id", linkID).Msg("Failed to save click event")
	}
}

// recordRealtime updates the Redis PV/UV counters backing the stats API
func (s *ClickService) recordRealtime(ctx context.Context, username, linkName, ip string) {
	if _, err := s.redisRepo.IncrementPV(ctx, username, linkName); err != nil {
		log.Warn().Err(err).Str("username", username).Str("link_name", linkName).Msg("Failed to increment PV")
	}

	visitorID := fmt.Sprintf("%s:%s", time.Now().Format("2006-01-02"), ip)
	if _, err := s.redisRepo.AddUV(ctx, username, linkName, visitorID); err != nil {
		log.Warn().Err(err).Str("username", username).Str("link_name", linkName).Msg("Failed to add UV")
	}
}
