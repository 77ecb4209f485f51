package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

var ErrMissingSecret = errors.New("JWT_SECRET must be set in production")

type DBConfig struct {
	Driver     string
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	SSLMode    string
	SQLitePath string
}

// DSN builds the PostgreSQL connection string.
func (c DBConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

type Config struct {
	Env         string
	Port        string
	DB          DBConfig
	JWTSecret   string
	SessionTTL  time.Duration
	CORSOrigins []string
}

func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// Load reads the optional .env file and then the process environment.
func Load() (*Config, error) {
	// A missing .env file is fine, the environment may be set by the runtime.
	_ = godotenv.Load()

	cfg := &Config{
		Env:  getEnv("APP_ENV", EnvDevelopment),
		Port: getEnv("PORT", "8080"),
		DB: DBConfig{
			Driver:     getEnv("DB_DRIVER", DriverPostgres),
			Host:       getEnv("DB_HOST", "localhost"),
			Port:       getEnv("DB_PORT", "5432"),
			User:       getEnv("DB_USER", "postgres"),
			Password:   os.Getenv("DB_PASSWORD"),
			Name:       getEnv("DB_NAME", "yanews"),
			SSLMode:    getEnv("DB_SSLMODE", "disable"),
			SQLitePath: getEnv("SQLITE_PATH", "yanews.db"),
		},
		JWTSecret:   os.Getenv("JWT_SECRET"),
		CORSOrigins: splitList(os.Getenv("CORS_ORIGINS")),
	}

	ttl, err := time.ParseDuration(getEnv("SESSION_TTL", "72h"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("invalid SESSION_TTL: %s must be positive", ttl)
	}
	cfg.SessionTTL = ttl

	switch cfg.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DB.Driver)
	}

	if cfg.JWTSecret == "" {
		if cfg.IsProduction() {
			return nil, ErrMissingSecret
		}
		cfg.JWTSecret = "dev-insecure-secret"
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
