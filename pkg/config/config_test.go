package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "herbalroots", cfg.DBName)
	assert.Equal(t, "disable", cfg.DBSSLMode)
	assert.Equal(t, 5*time.Second, cfg.PlatformHTTPTimeout)
	assert.Empty(t, cfg.PlatformOperatorID)
}

func TestLoad_FromEnvironment(t *testing.T) {
	os.Clearenv()
	os.Setenv("SERVER_PORT", "9090")
	os.Setenv("DB_HOST", "db.internal")
	os.Setenv("PLATFORM_OPERATOR_ID", "user_op1")
	os.Setenv("PLATFORM_HTTP_TIMEOUT", "10")
	defer os.Clearenv()

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, "user_op1", cfg.PlatformOperatorID)
	assert.Equal(t, 10*time.Second, cfg.PlatformHTTPTimeout)
}

func TestRedisAddr(t *testing.T) {
	cfg := &Config{RedisHost: "cache", RedisPort: "6380"}
	assert.Equal(t, "cache:6380", cfg.RedisAddr())
}

func TestLoad_InvalidTimeoutFallsBack(t *testing.T) {
	os.Clearenv()
	os.Setenv("PLATFORM_HTTP_TIMEOUT", "not-a-number")
	defer os.Clearenv()

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.PlatformHTTPTimeout)
}
