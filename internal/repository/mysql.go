package repository

import (
	"context"
	"errors"
	"time"

	"yourlinks/internal/config"
	"yourlinks/internal/model"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	// ErrCategoryInUse is returned when deleting a category that links still reference
	ErrCategoryInUse = errors.New("category has links attached")
)

// MySQLRepository handles MySQL operations
type MySQLRepository struct {
	db *gorm.DB
}

// NewMySQLRepository creates a new MySQL repository
func NewMySQLRepository(cfg *config.MySQLConfig) *MySQLRepository {
	// Configure GORM logger
	var gormLogger logger.Interface
	if zerolog.GlobalLevel() > zerolog.DebugLevel {
		gormLogger = logger.Default.LogMode(logger.Silent)
	} else {
		gormLogger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{
		Logger: gormLogger,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MySQL")
	}

	// Auto migrate tables
	if err := db.AutoMigrate(&model.User{}, &model.Category{}, &model.Link{}, &model.ClickEvent{}); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate database")
	}

	log.Info().Msg("MySQL connected successfully")

	return &MySQLRepository{db: db}
}

// GetDB returns the GORM DB instance
func (r *MySQLRepository) GetDB() *gorm.DB {
	return r.db
}

// GetUserByUsername retrieves a user by username
func (r *MySQLRepository) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetUserByVerifiedDomain retrieves the user owning a verified custom domain.
// Unverified registrations are deliberately invisible here.
func (r *MySQLRepository) GetUserByVerifiedDomain(ctx context.Context, domain string) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).
		Where("custom_domain = ? AND domain_verified = ?", domain, true).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetLinkByName retrieves a link by owner username and link name. No
// activity or expiry filter is applied: the lifecycle evaluator needs the
// full record to choose a behavior for expired and deactivated links.
func (r *MySQLRepository) GetLinkByName(ctx context.Context, username, linkName string) (*model.Link, error) {
	var l model.Link
	err := r.db.WithContext(ctx).
		Select("links.*").
		Joins("JOIN users ON users.id = links.user_id").
		Where("users.username = ? AND links.link_name = ?", username, linkName).
		First(&l).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// IncrementClicks bumps the click counter by one as a single UPDATE so that
// concurrent redirects never lose updates.
func (r *MySQLRepository) IncrementClicks(ctx context.Context, linkID int64) error {
	return r.db.WithContext(ctx).
		Model(&model.Link{}).
		Where("id = ?", linkID).
		UpdateColumn("clicks", gorm.Expr("clicks + ?", 1)).Error
}

// SaveClickEvent appends a click event
func (r *MySQLRepository) SaveClickEvent(ctx context.Context, ev *model.ClickEvent) error {
	return r.db.WithContext(ctx).Create(ev).Error
}

// GetClickEvents retrieves the most recent click events for a link
func (r *MySQLRepository) GetClickEvents(ctx context.Context, linkID int64, limit int) ([]model.ClickEvent, error) {
	var events []model.ClickEvent
	query := r.db.WithContext(ctx).
		Where("link_id = ?", linkID).
		Order("clicked_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	err := query.Find(&events).Error
	return events, err
}

// DeleteCategory removes a user's category. Deletion is refused while any
// link still references the category.
func (r *MySQLRepository) DeleteCategory(ctx context.Context, userID, categoryID int64) error {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Link{}).
		Where("user_id = ? AND category_id = ?", userID, categoryID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryInUse
	}

	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", categoryID, userID).
		Delete(&model.Category{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Close closes the database connection
func (r *MySQLRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
