package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const EnvPrefix = "SPORTMED_"

type Config struct {
	App      AppConfig      `koanf:"app"`
	Database DatabaseConfig `koanf:"db"`
	Redis    RedisConfig    `koanf:"redis"`
	JWT      JWTConfig      `koanf:"jwt"`
	Log      LogConfig      `koanf:"log"`
}

type AppConfig struct {
	Name         string `koanf:"name" validate:"required"`
	Environment  string `koanf:"env" validate:"required,oneof=development local staging production test"`
	HTTPPort     string `koanf:"http_port" validate:"required,numeric"`
	CORSOrigins  string `koanf:"cors_origins"`
	MigrationDir string `koanf:"migration_dir"`
}

type DatabaseConfig struct {
	Host     string `koanf:"host" validate:"required"`
	Port     string `koanf:"port" validate:"required,numeric"`
	Name     string `koanf:"name" validate:"required"`
	User     string `koanf:"user" validate:"required"`
	Password string `koanf:"password"`
	SSLMode  string `koanf:"ssl_mode" validate:"omitempty,oneof=disable allow prefer require verify-ca verify-full"`

	ConnectTimeout        time.Duration `koanf:"connect_timeout"`
	PoolMaxConns          int32         `koanf:"pool_max_conns" validate:"gte=0"`
	PoolMinConns          int32         `koanf:"pool_min_conns" validate:"gte=0"`
	PoolMaxConnLifetime   time.Duration `koanf:"pool_max_conn_lifetime"`
	PoolMaxConnIdleTime   time.Duration `koanf:"pool_max_conn_idle_time"`
	PoolHealthCheckPeriod time.Duration `koanf:"pool_health_check_period"`
}

type RedisConfig struct {
	Addr     string        `koanf:"addr"`
	Password string        `koanf:"password"`
	DB       int           `koanf:"db" validate:"gte=0"`
	CacheTTL time.Duration `koanf:"cache_ttl"`
}

type JWTConfig struct {
	Secret        string        `koanf:"secret" validate:"required,min=16"`
	RefreshSecret string        `koanf:"refresh_secret" validate:"omitempty,min=16"`
	Issuer        string        `koanf:"issuer"`
	AccessTTL     time.Duration `koanf:"access_ttl" validate:"gt=0"`
	RefreshTTL    time.Duration `koanf:"refresh_ttl" validate:"gt=0"`
}

type LogConfig struct {
	Level string `koanf:"level" validate:"omitempty,oneof=debug info warn error"`
}

var errInvalidConfig = errors.New("invalid configuration")

func defaults() map[string]any {
	return map[string]any{
		"app.name":           "sportmed",
		"app.env":            "development",
		"app.http_port":      "8080",
		"app.cors_origins":   "*",
		"db.host":            "localhost",
		"db.port":            "5432",
		"db.ssl_mode":        "disable",
		"db.connect_timeout": "5s",
		"redis.cache_ttl":    "5m",
		"jwt.issuer":         "sportmed",
		"jwt.access_ttl":     "15m",
		"jwt.refresh_ttl":    "168h",
		"log.level":          "info",
	}
}

// Load reads configuration with priority: environment > JSON file > defaults.
// A .env file in the working directory is loaded into the environment first when
// present; variables already set are not overridden.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	k := koanf.New(".")
	for key, value := range defaults() {
		if err := k.Set(key, value); err != nil {
			return Config{}, err
		}
	}

	if strings.TrimSpace(path) != "" {
		if err := k.Load(file.Provider(path), json.Parser()); err != nil {
			return Config{}, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return Config{}, fmt.Errorf("failed to load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", errInvalidConfig, err)
	}

	return cfg, nil
}

// envTransform maps SPORTMED_DB_POOL_MAX_CONNS to db.pool_max_conns: the first
// segment is the section, the rest is the key.
func envTransform(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(s, "_", ".", 1)
}

func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		strings.TrimSpace(c.Host),
		strings.TrimSpace(c.Port),
		strings.TrimSpace(c.User),
		c.Password,
		strings.TrimSpace(c.Name),
		strings.TrimSpace(c.SSLMode),
	)
}

func (a AppConfig) IsProduction() bool {
	return strings.EqualFold(a.Environment, "production")
}

// AllowedOrigins splits the comma separated CORS origin list.
func (a AppConfig) AllowedOrigins() []string {
	parts := strings.Split(a.CORSOrigins, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
