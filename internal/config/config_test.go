package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("SPORTMED_DB_NAME", "sportmed")
	t.Setenv("SPORTMED_DB_USER", "postgres")
	t.Setenv("SPORTMED_JWT_SECRET", "0123456789abcdef0123")
}

func TestLoad_DefaultsAndEnv(t *testing.T) {
	setRequired(t)
	t.Setenv("SPORTMED_DB_POOL_MAX_CONNS", "12")
	t.Setenv("SPORTMED_JWT_ACCESS_TTL", "30m")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.HTTPPort)
	assert.Equal(t, "sportmed", cfg.Database.Name)
	assert.Equal(t, int32(12), cfg.Database.PoolMaxConns)
	assert.Equal(t, 5*time.Second, cfg.Database.ConnectTimeout)
	assert.Equal(t, 30*time.Minute, cfg.JWT.AccessTTL)
	assert.Equal(t, 168*time.Hour, cfg.JWT.RefreshTTL)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_FileThenEnvPriority(t *testing.T) {
	setRequired(t)
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"app":{"http_port":"9090","name":"from-file"},"redis":{"addr":"cache:6379"}}`), 0o600))
	t.Setenv("SPORTMED_APP_NAME", "from-env")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.HTTPPort)
	assert.Equal(t, "from-env", cfg.App.Name)
	assert.Equal(t, "cache:6379", cfg.Redis.Addr)
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("SPORTMED_DB_USER", "postgres")
	t.Setenv("SPORTMED_JWT_SECRET", "0123456789abcdef0123")

	_, err := Load("")
	assert.ErrorIs(t, err, errInvalidConfig)
}

func TestLoad_BadLogLevel(t *testing.T) {
	setRequired(t)
	t.Setenv("SPORTMED_LOG_LEVEL", "verbose")

	_, err := Load("")
	assert.ErrorIs(t, err, errInvalidConfig)
}

func TestEnvTransform(t *testing.T) {
	assert.Equal(t, "db.pool_max_conns", envTransform("SPORTMED_DB_POOL_MAX_CONNS"))
	assert.Equal(t, "app.http_port", envTransform("SPORTMED_APP_HTTP_PORT"))
}

func TestDSN(t *testing.T) {
	c := DatabaseConfig{Host: " db ", Port: "5432", User: "u", Password: "p", Name: "n", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=n sslmode=disable", c.DSN())
}

func TestAllowedOrigins(t *testing.T) {
	a := AppConfig{CORSOrigins: " http://a.test, ,http://b.test "}
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, a.AllowedOrigins())
	assert.Empty(t, AppConfig{}.AllowedOrigins())
}
