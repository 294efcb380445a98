package application

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/smart-commute/service-commute/internal/domain/analytics"
)

// AnalyticsService exposes the commuter's usage counters.
type AnalyticsService struct {
	repo analytics.Repository
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(repo analytics.Repository) *AnalyticsService {
	return &AnalyticsService{repo: repo}
}

// GetAnalytics returns the rounded counters; zero when nothing was recorded yet.
func (s *AnalyticsService) GetAnalytics(ctx context.Context, commuterID uuid.UUID) (analytics.Display, error) {
	counters, err := s.repo.Load(ctx, commuterID)
	if err != nil {
		return analytics.Display{}, fmt.Errorf("failed to load analytics: %w", err)
	}
	return counters.Display(), nil
}
