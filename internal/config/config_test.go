package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout())
	assert.Equal(t, 4280, cfg.CallbackPort)
	assert.Equal(t, 5*time.Minute, cfg.PaymentWait())
}

func TestYamlFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.yaml")
	data := []byte("base_url: https://api.example.com/health-service\ntimeout_seconds: 30\ncallback_port: 9999\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/health-service", cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout())
	assert.Equal(t, 9999, cfg.CallbackPort)
	// Untouched keys keep defaults.
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.yaml")
	require.NoError(t, os.WriteFile(path, []byte("base_url: https://file.example.com\n"), 0o600))

	t.Setenv("MEDICLIENT_BASE_URL", "https://env.example.com")
	t.Setenv("MEDICLIENT_TIMEOUT_SECONDS", "7")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com", cfg.BaseURL)
	assert.Equal(t, 7*time.Second, cfg.RequestTimeout())
}

func TestBadYamlRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.yaml")
	require.NoError(t, os.WriteFile(path, []byte("base_url: [unclosed"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}
