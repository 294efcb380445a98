package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/smart-commute/service-commute/internal/platform/config"
)

// Storage drivers.
const (
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
)

// MapConfig names the tile source the client map renders.
type MapConfig struct {
	TileURL     string
	Attribution string
	LoadDelay   time.Duration
}

// ServiceConfig holds all configuration for the commute service.
type ServiceConfig struct {
	Port              string
	AppEnv            string
	StorageDriver     string
	SQLitePath        string
	DBConfig          config.DatabaseConfig
	KafkaConfig       config.KafkaConfig
	MapConfig         MapConfig
	PlanLatency       time.Duration
	WorkspaceCapacity int
	OTelEndpoint      string
	OTelSampleRatio   float64
}

// Load reads configuration from COMMUTE_* environment variables and config.yaml.
func Load() (*ServiceConfig, error) {
	v, err := config.Load("COMMUTE")
	if err != nil {
		return nil, err
	}

	v.SetDefault("STORAGE_DRIVER", StorageSQLite)
	v.SetDefault("SQLITE_PATH", "commute.db")
	v.SetDefault("DB_NAME", "commute")
	v.SetDefault("MAP_TILE_URL", "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png")
	v.SetDefault("MAP_ATTRIBUTION", "© OpenStreetMap contributors")
	v.SetDefault("WORKSPACE_CAPACITY", 10000)
	v.SetDefault("OTEL_SAMPLE_RATIO", 1.0)

	cfg := &ServiceConfig{
		Port:          config.GetServicePort(v, "SERVICE_PORT"),
		AppEnv:        config.GetAppEnv(v),
		StorageDriver: strings.ToLower(strings.TrimSpace(v.GetString("STORAGE_DRIVER"))),
		SQLitePath:    v.GetString("SQLITE_PATH"),
		DBConfig:      config.LoadDatabaseConfig(v, "DB_NAME"),
		KafkaConfig:   config.LoadKafkaConfig(v),
		MapConfig: MapConfig{
			TileURL:     v.GetString("MAP_TILE_URL"),
			Attribution: v.GetString("MAP_ATTRIBUTION"),
			LoadDelay:   config.GetDuration(v, "MAP_LOAD_DELAY", time.Second),
		},
		PlanLatency:       config.GetDuration(v, "PLAN_LATENCY", 2*time.Second),
		WorkspaceCapacity: v.GetInt("WORKSPACE_CAPACITY"),
		OTelEndpoint:      v.GetString("OTEL_ENDPOINT"),
		OTelSampleRatio:   v.GetFloat64("OTEL_SAMPLE_RATIO"),
	}

	switch cfg.StorageDriver {
	case StorageSQLite, StoragePostgres:
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
	if cfg.WorkspaceCapacity <= 0 {
		return nil, fmt.Errorf("workspace capacity must be positive, got %d", cfg.WorkspaceCapacity)
	}
	if cfg.OTelSampleRatio < 0 || cfg.OTelSampleRatio > 1 {
		return nil, fmt.Errorf("otel sample ratio must be within [0, 1], got %g", cfg.OTelSampleRatio)
	}
	return cfg, nil
}
