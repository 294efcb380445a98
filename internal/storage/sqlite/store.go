// Package sqlite stores each commuter's saved routes and analytics as JSON
// documents in SQLite, one row per key, overwritten wholesale on every change.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/smart-commute/service-commute/internal/domain/analytics"
	"github.com/smart-commute/service-commute/internal/domain/route"
	"github.com/smart-commute/service-commute/internal/platform/apperror"
	"github.com/smart-commute/service-commute/internal/platform/sqlitemigrate"
	"github.com/smart-commute/service-commute/internal/storage/sqlite/migrations"
)

// Document keys.
const (
	KeySavedRoutes = "savedRoutes"
	KeyAnalytics   = "analytics"
)

// Store persists commuter documents in SQLite.
type Store struct {
	sqlDB *sql.DB
}

// Open opens a SQLite store at path and applies embedded migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("storage path is required")
	}
	dsn := "file:" + filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// Read-modify-write of a document must not interleave.
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.Apply(ctx, sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// PingContext reports whether the database is reachable.
func (s *Store) PingContext(ctx context.Context) error {
	return s.sqlDB.PingContext(ctx)
}

// SavedRoutes returns a route.SavedRouteRepository backed by this store.
func (s *Store) SavedRoutes() *SavedRouteRepository {
	return &SavedRouteRepository{store: s}
}

// Analytics returns an analytics.Repository backed by this store.
func (s *Store) Analytics() *AnalyticsRepository {
	return &AnalyticsRepository{store: s}
}

type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// get decodes the document into target. It reports false when the key is absent.
func get(ctx context.Context, q queryer, commuterID uuid.UUID, key string, target any) (bool, error) {
	var raw string
	err := q.QueryRowContext(ctx,
		`SELECT value FROM commuter_kv WHERE commuter_id = ? AND key = ?`,
		commuterID.String(), key,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(raw), target); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func put(ctx context.Context, q queryer, commuterID uuid.UUID, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	_, err = q.ExecContext(ctx,
		`INSERT INTO commuter_kv (commuter_id, key, value, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT (commuter_id, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		commuterID.String(), key, string(raw), time.Now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

func (s *Store) update(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// savedRouteRecord is the stored shape of one saved route.
type savedRouteRecord struct {
	ID            uuid.UUID `json:"id"`
	RouteID       int       `json:"routeId"`
	Name          string    `json:"name"`
	Distance      int       `json:"distance"`
	TrafficLevel  string    `json:"trafficLevel"`
	Description   string    `json:"description"`
	EstimatedTime int       `json:"estimatedTime"`
	Timestamp     time.Time `json:"timestamp"`
	StartLocation string    `json:"startLocation"`
	EndLocation   string    `json:"endLocation"`
	SavedAt       time.Time `json:"savedAt"`
}

func toRecord(sr *route.SavedRoute) savedRouteRecord {
	c := sr.Candidate()
	return savedRouteRecord{
		ID:            sr.ID(),
		RouteID:       c.ID,
		Name:          string(c.Name),
		Distance:      c.DistanceKm,
		TrafficLevel:  string(c.TrafficLevel),
		Description:   c.Description,
		EstimatedTime: c.EstimatedMinutes,
		Timestamp:     c.CreatedAt,
		StartLocation: sr.StartLocation(),
		EndLocation:   sr.EndLocation(),
		SavedAt:       sr.SavedAt(),
	}
}

func (r savedRouteRecord) toDomain(commuterID uuid.UUID) *route.SavedRoute {
	return route.ReconstructSavedRoute(
		r.ID,
		commuterID,
		route.Candidate{
			ID:               r.RouteID,
			Name:             route.Style(r.Name),
			DistanceKm:       r.Distance,
			TrafficLevel:     route.TrafficLevel(r.TrafficLevel),
			Description:      r.Description,
			EstimatedMinutes: r.EstimatedTime,
			CreatedAt:        r.Timestamp,
		},
		r.StartLocation,
		r.EndLocation,
		r.SavedAt,
	)
}

// SavedRouteRepository implements route.SavedRouteRepository.
type SavedRouteRepository struct {
	store *Store
}

// List returns the commuter's saved routes in insertion order.
func (r *SavedRouteRepository) List(ctx context.Context, commuterID uuid.UUID) ([]*route.SavedRoute, error) {
	var records []savedRouteRecord
	if _, err := get(ctx, r.store.sqlDB, commuterID, KeySavedRoutes, &records); err != nil {
		return nil, err
	}
	out := make([]*route.SavedRoute, len(records))
	for i, rec := range records {
		out[i] = rec.toDomain(commuterID)
	}
	return out, nil
}

// Append adds a saved route at the end of the list.
func (r *SavedRouteRepository) Append(ctx context.Context, sr *route.SavedRoute) error {
	return r.store.update(ctx, func(tx *sql.Tx) error {
		var records []savedRouteRecord
		if _, err := get(ctx, tx, sr.CommuterID(), KeySavedRoutes, &records); err != nil {
			return err
		}
		records = append(records, toRecord(sr))
		return put(ctx, tx, sr.CommuterID(), KeySavedRoutes, records)
	})
}

// DeleteAt removes the entry at index and returns it.
func (r *SavedRouteRepository) DeleteAt(ctx context.Context, commuterID uuid.UUID, index int) (*route.SavedRoute, error) {
	var removed *route.SavedRoute
	err := r.store.update(ctx, func(tx *sql.Tx) error {
		var records []savedRouteRecord
		if _, err := get(ctx, tx, commuterID, KeySavedRoutes, &records); err != nil {
			return err
		}
		if index < 0 || index >= len(records) {
			return apperror.NewNotFoundError("saved route", fmt.Sprint(index))
		}
		removed = records[index].toDomain(commuterID)
		records = append(records[:index], records[index+1:]...)
		return put(ctx, tx, commuterID, KeySavedRoutes, records)
	})
	if err != nil {
		return nil, err
	}
	return removed, nil
}

// AnalyticsRepository implements analytics.Repository.
type AnalyticsRepository struct {
	store *Store
}

// Load returns zero counters when nothing is stored.
func (r *AnalyticsRepository) Load(ctx context.Context, commuterID uuid.UUID) (analytics.Counters, error) {
	var c analytics.Counters
	if _, err := get(ctx, r.store.sqlDB, commuterID, KeyAnalytics, &c); err != nil {
		return analytics.Counters{}, err
	}
	return c, nil
}

// Update reads, changes and overwrites the counters in one transaction.
func (r *AnalyticsRepository) Update(ctx context.Context, commuterID uuid.UUID, fn func(*analytics.Counters)) (analytics.Counters, error) {
	var c analytics.Counters
	err := r.store.update(ctx, func(tx *sql.Tx) error {
		c = analytics.Counters{}
		if _, err := get(ctx, tx, commuterID, KeyAnalytics, &c); err != nil {
			return err
		}
		fn(&c)
		return put(ctx, tx, commuterID, KeyAnalytics, c)
	})
	if err != nil {
		return analytics.Counters{}, err
	}
	return c, nil
}

var (
	_ route.SavedRouteRepository = (*SavedRouteRepository)(nil)
	_ analytics.Repository       = (*AnalyticsRepository)(nil)
)
