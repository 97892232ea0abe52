package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"betenlace/models"
)

// Store truy cập dữ liệu của pipeline ingest qua gorm
type Store struct {
	db        *gorm.DB
	batchSize int
}

func NewStore(db *gorm.DB, batchSize int) *Store {
	return &Store{db: db, batchSize: batchSize}
}

// Migrate tạo/cập nhật bảng cho các model của pipeline
func (s *Store) Migrate() error {
	return s.db.AutoMigrate(
		&models.Campaign{},
		&models.Partner{},
		&models.PartnerLinkAccumulated{},
		&models.Link{},
		&models.AccountReport{},
		&models.AccountDailyReport{},
		&models.BetenlaceCPA{},
		&models.BetenlaceDailyReport{},
		&models.PartnerLinkDailyReport{},
		&models.FxPartner{},
	)
}

// Campaigns trả về toàn bộ campaign
func (s *Store) Campaigns(ctx context.Context) ([]models.Campaign, error) {
	var campaigns []models.Campaign
	if err := s.db.WithContext(ctx).Order("id").Find(&campaigns).Error; err != nil {
		return nil, err
	}
	return campaigns, nil
}

// FirstFxFrom trả về snapshot sớm nhất có created_at >= from
func (s *Store) FirstFxFrom(ctx context.Context, from time.Time) (*models.FxPartner, error) {
	var fx models.FxPartner
	err := s.db.WithContext(ctx).
		Where("created_at >= ?", from).
		Order("created_at ASC").
		First(&fx).Error
	return notFoundAsNil(&fx, err)
}

// LastFxUntil trả về snapshot muộn nhất có created_at <= until
func (s *Store) LastFxUntil(ctx context.Context, until time.Time) (*models.FxPartner, error) {
	var fx models.FxPartner
	err := s.db.WithContext(ctx).
		Where("created_at <= ?", until).
		Order("created_at DESC").
		First(&fx).Error
	return notFoundAsNil(&fx, err)
}

// HasDailyReport cho biết campaign đã có BDR cho ngày day chưa
func (s *Store) HasDailyReport(ctx context.Context, campaignID uint, day time.Time) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.BetenlaceDailyReport{}).
		Joins("JOIN links ON links.id = betenlace_daily_reports.link_id").
		Where("links.campaign_id = ? AND betenlace_daily_reports.day = ?", campaignID, day).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func notFoundAsNil[T any](row *T, err error) (*T, error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row, nil
}

func chunks[T any](items []T, size int) [][]T {
	if size <= 0 {
		size = 500
	}
	var out [][]T
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		out = append(out, items[start:end])
	}
	return out
}
