package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"yourlinks/internal/mocks"
	"yourlinks/internal/model"
	"yourlinks/internal/mq"
)

func testLink() *model.Link {
	return &model.Link{ID: 7, LinkName: "promo", OriginalURL: "https://example.com/x", IsActive: true}
}

func testVisit() model.Visit {
	return model.Visit{IPAddress: "192.0.2.1", UserAgent: "Mozilla/5.0", Referrer: "https://google.com"}
}

func expectRealtime(mockRedis *mocks.MockRedisRepositoryInterface) {
	mockRedis.EXPECT().IncrementPV(gomock.Any(), "alice", "promo").Return(int64(1), nil).AnyTimes()
	mockRedis.EXPECT().AddUV(gomock.Any(), "alice", "promo", gomock.Any()).Return(true, nil).AnyTimes()
}

func TestClickService_Record_Direct(t *testing.T) {
	t.Run("without producer the event is written directly", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockMySQL := mocks.NewMockMySQLRepositoryInterface(ctrl)
		mockRedis := mocks.NewMockRedisRepositoryInterface(ctrl)
		svc := NewClickService(mockMySQL, mockRedis, nil)

		mockMySQL.EXPECT().IncrementClicks(gomock.Any(), int64(7)).Return(nil)
		mockMySQL.EXPECT().SaveClickEvent(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, ev *model.ClickEvent) error {
				assert.Equal(t, int64(7), ev.LinkID)
				assert.Equal(t, "192.0.2.1", ev.IPAddress)
				assert.Equal(t, "Mozilla/5.0", ev.UserAgent)
				assert.Equal(t, "https://google.com", ev.Referrer)
				assert.False(t, ev.IsExpired)
				assert.False(t, ev.IsDeactivated)
				return nil
			})
		expectRealtime(mockRedis)

		err := svc.Record(context.Background(), testLink(), "alice", testVisit(), model.StateActive)
		assert.NoError(t, err)
	})

	t.Run("expired redirect click carries the expired flag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockMySQL := mocks.NewMockMySQLRepositoryInterface(ctrl)
		mockRedis := mocks.NewMockRedisRepositoryInterface(ctrl)
		svc := NewClickService(mockMySQL, mockRedis, nil)

		mockMySQL.EXPECT().IncrementClicks(gomock.Any(), int64(7)).Return(nil)
		mockMySQL.EXPECT().SaveClickEvent(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, ev *model.ClickEvent) error {
				assert.True(t, ev.IsExpired)
				assert.False(t, ev.IsDeactivated)
				return nil
			})
		expectRealtime(mockRedis)

		err := svc.Record(context.Background(), testLink(), "alice", testVisit(), model.StateExpired)
		assert.NoError(t, err)
	})

	t.Run("counter failure does not abort the event append", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockMySQL := mocks.NewMockMySQLRepositoryInterface(ctrl)
		mockRedis := mocks.NewMockRedisRepositoryInterface(ctrl)
		svc := NewClickService(mockMySQL, mockRedis, nil)

		mockMySQL.EXPECT().IncrementClicks(gomock.Any(), int64(7)).Return(errors.New("deadlock"))
		mockMySQL.EXPECT().SaveClickEvent(gomock.Any(), gomock.Any()).Return(nil)
		expectRealtime(mockRedis)

		err := svc.Record(context.Background(), testLink(), "alice", testVisit(), model.StateActive)
		assert.NoError(t, err)
	})

	t.Run("every effect failing still returns nil", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockMySQL := mocks.NewMockMySQLRepositoryInterface(ctrl)
		mockRedis := mocks.NewMockRedisRepositoryInterface(ctrl)
		svc := NewClickService(mockMySQL, mockRedis, nil)

		mockMySQL.EXPECT().IncrementClicks(gomock.Any(), int64(7)).Return(errors.New("down"))
		mockMySQL.EXPECT().SaveClickEvent(gomock.Any(), gomock.Any()).Return(errors.New("down"))
		mockRedis.EXPECT().IncrementPV(gomock.Any(), "alice", "promo").Return(int64(0), errors.New("down"))
		mockRedis.EXPECT().AddUV(gomock.Any(), "alice", "promo", gomock.Any()).Return(false, errors.New("down"))

		err := svc.Record(context.Background(), testLink(), "alice", testVisit(), model.StateActive)
		assert.NoError(t, err)
	})
}

func TestClickService_Record_Producer(t *testing.T) {
	t.Run("producer carries the event, no direct write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockMySQL := mocks.NewMockMySQLRepositoryInterface(ctrl)
		mockRedis := mocks.NewMockRedisRepositoryInterface(ctrl)
		mockProducer := mocks.NewMockProducerInterface(ctrl)
		svc := NewClickService(mockMySQL, mockRedis, mockProducer)

		mockMySQL.EXPECT().IncrementClicks(gomock.Any(), int64(7)).Return(nil)
		mockProducer.EXPECT().SendClickEvent(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, msg *mq.ClickEventMessage) error {
				assert.NotEmpty(t, msg.EventID)
				assert.Equal(t, int64(7), msg.LinkID)
				assert.Equal(t, "alice", msg.Username)
				assert.Equal(t, "promo", msg.LinkName)
				assert.True(t, msg.IsDeactivated)
				assert.False(t, msg.IsExpired)
				return nil
			})
		expectRealtime(mockRedis)

		err := svc.Record(context.Background(), testLink(), "alice", testVisit(), model.StateDeactivated)
		assert.NoError(t, err)
	})

	t.Run("producer failure falls back to direct write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockMySQL := mocks.NewMockMySQLRepositoryInterface(ctrl)
		mockRedis := mocks.NewMockRedisRepositoryInterface(ctrl)
		mockProducer := mocks.NewMockProducerInterface(ctrl)
		svc := NewClickService(mockMySQL, mockRedis, mockProducer)

		mockMySQL.EXPECT().IncrementClicks(gomock.Any(), int64(7)).Return(nil)
		mockProducer.EXPECT().SendClickEvent(gomock.Any(), gomock.Any()).Return(errors.New("nameserver unreachable"))
		mockMySQL.EXPECT().SaveClickEvent(gomock.Any(), gomock.Any()).Return(nil)
		expectRealtime(mockRedis)

		err := svc.Record(context.Background(), testLink(), "alice", testVisit(), model.StateActive)
		assert.NoError(t, err)
	})
}

// countingRepo is an in-memory MySQLRepositoryInterface whose counter
// increment is atomic, mirroring the single-statement UPDATE the real
// repository issues.
type countingRepo struct {
	clicks int64
	events int64
	mu     sync.Mutex
	rows   []model.ClickEvent
}

func (r *countingRepo) GetUserByUsername(context.Context, string) (*model.User, error) {
	return nil, errors.New("not implemented")
}

func (r *countingRepo) GetUserByVerifiedDomain(context.Context, string) (*model.User, error) {
	return nil, errors.New("not implemented")
}

func (r *countingRepo) GetLinkByName(context.Context, string, string) (*model.Link, error) {
	return nil, errors.New("not implemented")
}

func (r *countingRepo) IncrementClicks(_ context.Context, _ int64) error {
	atomic.AddInt64(&r.clicks, 1)
	return nil
}

func (r *countingRepo) SaveClickEvent(_ context.Context, ev *model.ClickEvent) error {
	atomic.AddInt64(&r.events, 1)
	r.mu.Lock()
	r.rows = append(r.rows, *ev)
	r.mu.Unlock()
	return nil
}

func (r *countingRepo) GetClickEvents(context.Context, int64, int) ([]model.ClickEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.ClickEvent(nil), r.rows...), nil
}

func TestClickService_Record_ConcurrentCounter(t *testing.T) {
	// N concurrent redirect-producing requests must grow the counter by
	// exactly N: the increment is one storage-side operation, never a
	// read-modify-write in engine code.
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := &countingRepo{}
	mockRedis := mocks.NewMockRedisRepositoryInterface(ctrl)
	mockRedis.EXPECT().IncrementPV(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil).AnyTimes()
	mockRedis.EXPECT().AddUV(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil).AnyTimes()

	svc := NewClickService(repo, mockRedis, nil)

	const n = 64
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_ = svc.Record(context.Background(), testLink(), "alice", testVisit(), model.StateActive)
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(n), atomic.LoadInt64(&repo.clicks))
	assert.Equal(t, int64(n), atomic.LoadInt64(&repo.events))
}

func TestClickService_VisitTolerance(t *testing.T) {
	// Absent headers are recorded as empty strings, never rejected.
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMySQL := mocks.NewMockMySQLRepositoryInterface(ctrl)
	mockRedis := mocks.NewMockRedisRepositoryInterface(ctrl)
	svc := NewClickService(mockMySQL, mockRedis, nil)

	mockMySQL.EXPECT().IncrementClicks(gomock.Any(), int64(7)).Return(nil)
	mockMySQL.EXPECT().SaveClickEvent(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, ev *model.ClickEvent) error {
			assert.Empty(t, ev.IPAddress)
			assert.Empty(t, ev.UserAgent)
			assert.Empty(t, ev.Referrer)
			return nil
		})
	expectRealtime(mockRedis)

	err := svc.Record(context.Background(), testLink(), "alice", model.Visit{}, model.StateActive)
	assert.NoError(t, err)
}
