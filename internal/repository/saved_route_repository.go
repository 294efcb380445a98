package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/smart-commute/service-commute/internal/domain/route"
	"github.com/smart-commute/service-commute/internal/platform/apperror"
)

// SavedRouteModel is the GORM model for the saved_routes table.
type SavedRouteModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq              int64     `gorm:"autoIncrement;not null;uniqueIndex"`
	CommuterID       uuid.UUID `gorm:"type:uuid;index;not null"`
	RouteID          int       `gorm:"not null"`
	Name             string    `gorm:"not null;size:20"`
	DistanceKm       int       `gorm:"not null"`
	TrafficLevel     string    `gorm:"not null;size:10"`
	Description      string    `gorm:"size:200"`
	EstimatedMinutes int       `gorm:"not null"`
	StartLocation    string    `gorm:"not null;size:200"`
	EndLocation      string    `gorm:"not null;size:200"`
	GeneratedAt      time.Time `gorm:"not null"`
	SavedAt          time.Time `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (SavedRouteModel) TableName() string {
	return "saved_routes"
}

// GormSavedRouteRepository is the GORM-based implementation of route.SavedRouteRepository.
// Insertion order is kept by the Seq column.
type GormSavedRouteRepository struct {
	db *gorm.DB
}

// NewGormSavedRouteRepository creates a new GormSavedRouteRepository.
func NewGormSavedRouteRepository(db *gorm.DB) *GormSavedRouteRepository {
	return &GormSavedRouteRepository{db: db}
}

// List returns the commuter's saved routes in insertion order.
func (r *GormSavedRouteRepository) List(ctx context.Context, commuterID uuid.UUID) ([]*route.SavedRoute, error) {
	var models []SavedRouteModel
	if err := r.db.WithContext(ctx).
		Where("commuter_id = ?", commuterID).
		Order("seq ASC").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list saved routes: %w", err)
	}

	routes := make([]*route.SavedRoute, len(models))
	for i := range models {
		routes[i] = toDomainSavedRoute(&models[i])
	}
	return routes, nil
}

// Append persists a new saved route at the end of the commuter's list.
func (r *GormSavedRouteRepository) Append(ctx context.Context, sr *route.SavedRoute) error {
	model := toSavedRouteModel(sr)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save route: %w", err)
	}
	return nil
}

// DeleteAt removes the entry at the zero-based index of the commuter's list.
func (r *GormSavedRouteRepository) DeleteAt(ctx context.Context, commuterID uuid.UUID, index int) (*route.SavedRoute, error) {
	if index < 0 {
		return nil, apperror.NewNotFoundError("saved route", fmt.Sprint(index))
	}

	var model SavedRouteModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("commuter_id = ?", commuterID).
			Order("seq ASC").
			Offset(index).
			Limit(1).
			Find(&model).Error; err != nil {
			return fmt.Errorf("failed to find saved route: %w", err)
		}
		if model.ID == uuid.Nil {
			return apperror.NewNotFoundError("saved route", fmt.Sprint(index))
		}

		result := tx.Where("id = ?", model.ID).Delete(&SavedRouteModel{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete saved route: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return apperror.NewConflictError("saved route was modified concurrently")
		}
		return nil
	})
	if err != nil {
		var appErr *apperror.Error
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, err
	}
	return toDomainSavedRoute(&model), nil
}

func toSavedRouteModel(sr *route.SavedRoute) *SavedRouteModel {
	c := sr.Candidate()
	return &SavedRouteModel{
		ID:               sr.ID(),
		CommuterID:       sr.CommuterID(),
		RouteID:          c.ID,
		Name:             string(c.Name),
		DistanceKm:       c.DistanceKm,
		TrafficLevel:     string(c.TrafficLevel),
		Description:      c.Description,
		EstimatedMinutes: c.EstimatedMinutes,
		StartLocation:    sr.StartLocation(),
		EndLocation:      sr.EndLocation(),
		GeneratedAt:      c.CreatedAt,
		SavedAt:          sr.SavedAt(),
	}
}

func toDomainSavedRoute(m *SavedRouteModel) *route.SavedRoute {
	return route.ReconstructSavedRoute(
		m.ID,
		m.CommuterID,
		route.Candidate{
			ID:               m.RouteID,
			Name:             route.Style(m.Name),
			DistanceKm:       m.DistanceKm,
			TrafficLevel:     route.TrafficLevel(m.TrafficLevel),
			Description:      m.Description,
			EstimatedMinutes: m.EstimatedMinutes,
			CreatedAt:        m.GeneratedAt,
		},
		m.StartLocation,
		m.EndLocation,
		m.SavedAt,
	)
}

var _ route.SavedRouteRepository = (*GormSavedRouteRepository)(nil)
