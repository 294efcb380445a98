package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/smart-commute/service-commute/internal/domain/analytics"
)

// AnalyticsModel is the GORM model for the commuter_analytics table.
type AnalyticsModel struct {
	CommuterID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	AvgTime         float64   `gorm:"not null;default:0"`
	TimeSaved       float64   `gorm:"not null;default:0"`
	RoutesOptimized int64     `gorm:"not null;default:0"`
	CarbonSaved     float64   `gorm:"not null;default:0"`
	UpdatedAt       time.Time `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (AnalyticsModel) TableName() string { return "commuter_analytics" }

// GormAnalyticsRepository is the GORM-based implementation of analytics.Repository.
type GormAnalyticsRepository struct {
	db *gorm.DB
}

// NewGormAnalyticsRepository creates a new GormAnalyticsRepository.
func NewGormAnalyticsRepository(db *gorm.DB) *GormAnalyticsRepository {
	return &GormAnalyticsRepository{db: db}
}

// Load returns zero counters when the commuter has no row yet.
func (r *GormAnalyticsRepository) Load(ctx context.Context, commuterID uuid.UUID) (analytics.Counters, error) {
	var model AnalyticsModel
	if err := r.db.WithContext(ctx).Where("commuter_id = ?", commuterID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return analytics.Counters{}, nil
		}
		return analytics.Counters{}, fmt.Errorf("failed to load analytics: %w", err)
	}
	return model.toDomain(), nil
}

// Update locks the commuter's row, applies fn and writes the counters back.
func (r *GormAnalyticsRepository) Update(ctx context.Context, commuterID uuid.UUID, fn func(*analytics.Counters)) (analytics.Counters, error) {
	var counters analytics.Counters
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		seed := AnalyticsModel{CommuterID: commuterID, UpdatedAt: time.Now().UTC()}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&seed).Error; err != nil {
			return fmt.Errorf("failed to seed analytics: %w", err)
		}

		var model AnalyticsModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("commuter_id = ?", commuterID).
			First(&model).Error; err != nil {
			return fmt.Errorf("failed to lock analytics: %w", err)
		}

		counters = model.toDomain()
		fn(&counters)

		updated := toAnalyticsModel(commuterID, counters)
		if err := tx.Save(&updated).Error; err != nil {
			return fmt.Errorf("failed to save analytics: %w", err)
		}
		return nil
	})
	if err != nil {
		return analytics.Counters{}, err
	}
	return counters, nil
}

func toAnalyticsModel(commuterID uuid.UUID, c analytics.Counters) AnalyticsModel {
	return AnalyticsModel{
		CommuterID:      commuterID,
		AvgTime:         c.AvgTime,
		TimeSaved:       c.TimeSaved,
		RoutesOptimized: c.RoutesOptimized,
		CarbonSaved:     c.CarbonSaved,
		UpdatedAt:       time.Now().UTC(),
	}
}

func (m AnalyticsModel) toDomain() analytics.Counters {
	return analytics.Counters{
		AvgTime:         m.AvgTime,
		TimeSaved:       m.TimeSaved,
		RoutesOptimized: m.RoutesOptimized,
		CarbonSaved:     m.CarbonSaved,
	}
}

var _ analytics.Repository = (*GormAnalyticsRepository)(nil)
