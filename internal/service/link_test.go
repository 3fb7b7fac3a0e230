package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"yourlinks/internal/mocks"
	"yourlinks/internal/model"
)

func newTestLinkService(ctrl *gomock.Controller) (*LinkService, *mocks.MockMySQLRepositoryInterface, *mocks.MockRedisRepositoryInterface) {
	mockMySQL := mocks.NewMockMySQLRepositoryInterface(ctrl)
	mockRedis := mocks.NewMockRedisRepositoryInterface(ctrl)
	svc := NewLinkService(mockMySQL, mockRedis, 5*time.Minute, "https://twitch.tv/")
	return svc, mockMySQL, mockRedis
}

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/promo", "promo"},
		{"/promo/", "promo"},
		{"promo", "promo"},
		{"/", ""},
		{"", ""},
		{"//promo//", "promo"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizePath(tt.in))
	}
}

func TestLinkService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("cache miss loads from MySQL and caches", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, mockMySQL, mockRedis := newTestLinkService(ctrl)

		link := &model.Link{ID: 1, LinkName: "promo", OriginalURL: "https://example.com/x", IsActive: true}

		mockRedis.EXPECT().GetLink(gomock.Any(), "alice", "promo").Return(nil, errors.New("redis: nil"))
		mockMySQL.EXPECT().GetLinkByName(gomock.Any(), "alice", "promo").Return(link, nil)
		mockRedis.EXPECT().SaveLink(gomock.Any(), "alice", "promo", link, 5*time.Minute).Return(nil)

		got, err := svc.Get(ctx, "alice", "promo")
		assert.NoError(t, err)
		assert.Equal(t, link, got)
	})

	t.Run("cache hit skips MySQL", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, _, mockRedis := newTestLinkService(ctrl)

		link := &model.Link{ID: 1, LinkName: "promo", IsActive: false}
		mockRedis.EXPECT().GetLink(gomock.Any(), "alice", "promo").Return(link, nil)

		got, err := svc.Get(ctx, "alice", "promo")
		assert.NoError(t, err)
		// Deactivated records come back from cache too; filtering at
		// lookup time would lose the configured behavior.
		assert.False(t, got.IsActive)
	})

	t.Run("missing link maps to ErrLinkNotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, mockMySQL, mockRedis := newTestLinkService(ctrl)

		mockRedis.EXPECT().GetLink(gomock.Any(), "alice", "nope").Return(nil, errors.New("redis: nil"))
		mockMySQL.EXPECT().GetLinkByName(gomock.Any(), "alice", "nope").Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Get(ctx, "alice", "nope")
		assert.ErrorIs(t, err, ErrLinkNotFound)
	})

	t.Run("storage failure is not ErrLinkNotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, mockMySQL, mockRedis := newTestLinkService(ctrl)

		mockRedis.EXPECT().GetLink(gomock.Any(), "alice", "promo").Return(nil, errors.New("redis: nil"))
		mockMySQL.EXPECT().GetLinkByName(gomock.Any(), "alice", "promo").Return(nil, errors.New("connection refused"))

		_, err := svc.Get(ctx, "alice", "promo")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrLinkNotFound)
	})

	t.Run("cache write failure does not fail the lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, mockMySQL, mockRedis := newTestLinkService(ctrl)

		link := &model.Link{ID: 1, LinkName: "promo", IsActive: true}

		mockRedis.EXPECT().GetLink(gomock.Any(), "alice", "promo").Return(nil, errors.New("redis: nil"))
		mockMySQL.EXPECT().GetLinkByName(gomock.Any(), "alice", "promo").Return(link, nil)
		mockRedis.EXPECT().SaveLink(gomock.Any(), "alice", "promo", link, gomock.Any()).Return(errors.New("redis down"))

		got, err := svc.Get(ctx, "alice", "promo")
		assert.NoError(t, err)
		assert.Equal(t, link, got)
	})
}

func TestLinkService_ProfileURL(t *testing.T) {
	ctx := context.Background()

	t.Run("existing user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, mockMySQL, _ := newTestLinkService(ctrl)

		mockMySQL.EXPECT().GetUserByUsername(gomock.Any(), "alice").Return(&model.User{Username: "alice"}, nil)

		url, err := svc.ProfileURL(ctx, "alice")
		assert.NoError(t, err)
		assert.Equal(t, "https://twitch.tv/alice", url)
	})

	t.Run("missing user maps to ErrUserNotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, mockMySQL, _ := newTestLinkService(ctrl)

		mockMySQL.EXPECT().GetUserByUsername(gomock.Any(), "ghost").Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.ProfileURL(ctx, "ghost")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("base URL without trailing slash", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockMySQL := mocks.NewMockMySQLRepositoryInterface(ctrl)
		mockRedis := mocks.NewMockRedisRepositoryInterface(ctrl)
		svc := NewLinkService(mockMySQL, mockRedis, time.Minute, "https://twitch.tv")

		mockMySQL.EXPECT().GetUserByUsername(gomock.Any(), "alice").Return(&model.User{Username: "alice"}, nil)

		url, err := svc.ProfileURL(ctx, "alice")
		assert.NoError(t, err)
		assert.Equal(t, "https://twitch.tv/alice", url)
	})
}
