package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is loaded from an optional client.yaml and overridden by
// MEDICLIENT_* environment variables.
type Config struct {
	AppEnv    string `yaml:"app_env"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`

	CallbackPort       int `yaml:"callback_port"`
	PaymentWaitSeconds int `yaml:"payment_wait_seconds"`

	StorageDir string `yaml:"storage_dir"`
}

func defaults() Config {
	return Config{
		AppEnv:             "dev",
		LogLevel:           "info",
		LogFormat:          "text",
		BaseURL:            "http://localhost:1789/health-service",
		TimeoutSeconds:     15,
		CallbackPort:       4280,
		PaymentWaitSeconds: 300,
		StorageDir:         defaultStorageDir(),
	}
}

// Load reads the config file at path (skipped when absent), then applies
// env overrides on top of the defaults.
func Load(path string) (Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg.AppEnv = getEnv("MEDICLIENT_ENV", cfg.AppEnv)
	cfg.LogLevel = getEnv("MEDICLIENT_LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnv("MEDICLIENT_LOG_FORMAT", cfg.LogFormat)
	cfg.BaseURL = getEnv("MEDICLIENT_BASE_URL", cfg.BaseURL)
	cfg.TimeoutSeconds = getEnvInt("MEDICLIENT_TIMEOUT_SECONDS", cfg.TimeoutSeconds)
	cfg.CallbackPort = getEnvInt("MEDICLIENT_CALLBACK_PORT", cfg.CallbackPort)
	cfg.PaymentWaitSeconds = getEnvInt("MEDICLIENT_PAYMENT_WAIT_SECONDS", cfg.PaymentWaitSeconds)
	cfg.StorageDir = getEnv("MEDICLIENT_STORAGE_DIR", cfg.StorageDir)

	return cfg, nil
}

func (c Config) RequestTimeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func (c Config) PaymentWait() time.Duration {
	return time.Duration(c.PaymentWaitSeconds) * time.Second
}

func defaultStorageDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "mediclient")
	}
	return ".mediclient"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)

	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}

	return n
}
