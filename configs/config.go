package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

// Config holds everything the API reads from the environment.
//
// use DATABASE_URL="host=localhost port=5432 user=postgres password=docker dbname=fruition sslmode=disable"
type Config struct {
	Port             string        `env:"PORT,default=8080"`
	DBDriver         string        `env:"DB_DRIVER,default=postgres"`
	DatabaseURL      string        `env:"DATABASE_URL"`
	LogLevel         string        `env:"LOG_LEVEL,default=info"`
	AppName          string        `env:"APP_NAME,default=Fruition Badges"`
	CORSAllowOrigins string        `env:"CORS_ALLOW_ORIGINS,default=*"`
	ReadTimeout      time.Duration `env:"READ_TIMEOUT,default=15s"`
	WriteTimeout     time.Duration `env:"WRITE_TIMEOUT,default=15s"`
	IdleTimeout      time.Duration `env:"IDLE_TIMEOUT,default=60s"`
}

const defaultSQLiteDSN = "fruition.db"

// Load reads .env (if any) into the process environment and decodes it into a Config.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		logrus.Warn(".env file not found, reading from system environment variables")
	}

	cfg := &Config{}
	if err := envdecode.Decode(cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, fmt.Errorf("decode environment: %w", err)
	}

	switch cfg.DBDriver {
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, errors.New("DATABASE_URL is required for the postgres driver")
		}
	case DriverSQLite:
		if cfg.DatabaseURL == "" {
			cfg.DatabaseURL = defaultSQLiteDSN
		}
	case DriverMemory:
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	return cfg, nil
}

func (c *Config) ListenAddr() string {
	return ":" + c.Port
}
