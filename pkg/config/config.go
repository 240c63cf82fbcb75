package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const EnvPrefix = "VELTRADE"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App       AppConfig
	DB        DBConfig
	RateLimit RateLimitConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"VELTRADE_APP_ENV" default:"dev"`
	Port         string `envconfig:"VELTRADE_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"VELTRADE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"VELTRADE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	// Path is the SQLite database file. ":memory:" keeps everything in RAM,
	// which the tests rely on.
	Path        string        `envconfig:"VELTRADE_DB_PATH" default:"orders.db"`
	BusyTimeout time.Duration `envconfig:"VELTRADE_DB_BUSY_TIMEOUT" default:"5s"`
	AutoMigrate bool          `envconfig:"VELTRADE_DB_AUTO_MIGRATE" default:"true"`

	MaxOpenConns    int           `envconfig:"VELTRADE_DB_MAX_OPEN_CONNS" default:"1"`
	MaxIdleConns    int           `envconfig:"VELTRADE_DB_MAX_IDLE_CONNS" default:"1"`
	ConnMaxLifetime time.Duration `envconfig:"VELTRADE_DB_CONN_MAX_LIFETIME" default:"1h"`
}

type RateLimitConfig struct {
	RequestLimit int           `envconfig:"VELTRADE_RATE_LIMIT_REQUESTS" default:"100"`
	Window       time.Duration `envconfig:"VELTRADE_RATE_LIMIT_WINDOW" default:"1m"`
}
