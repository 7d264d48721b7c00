package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var DefaultEnvConfig *envConfig

type envConfig struct {
	// server config
	APP_PORT string
	// upstream suite API config
	UPSTREAM_BASE_URL       string
	UPSTREAM_TIMEOUT        time.Duration
	UPSTREAM_SESSION_COOKIE string
	CSRF_COOKIE_NAME        string
	CSRF_HEADER_NAME        string
	// schedule config
	DASHBOARD_POLL_INTERVAL time.Duration
	EXPORT_LAYOUT_PATH      string
	// logger config
	LOG_FILE_PATH string
	LOG_LEVEL     string
}

func LoadEnvConfig() error {
	// A missing .env is fine in containerized deployments; the process env wins either way.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return err
	}

	DefaultEnvConfig = &envConfig{
		APP_PORT:                getEnvString("APP_PORT", "8090"),
		UPSTREAM_BASE_URL:       getEnvString("UPSTREAM_BASE_URL", "http://localhost:8000/api"),
		UPSTREAM_TIMEOUT:        getEnvDuration("UPSTREAM_TIMEOUT", 15*time.Second),
		UPSTREAM_SESSION_COOKIE: getEnvString("UPSTREAM_SESSION_COOKIE", ""),
		CSRF_COOKIE_NAME:        getEnvString("CSRF_COOKIE_NAME", "csrftoken"),
		CSRF_HEADER_NAME:        getEnvString("CSRF_HEADER_NAME", "X-CSRFToken"),
		DASHBOARD_POLL_INTERVAL: getEnvDuration("DASHBOARD_POLL_INTERVAL", 60*time.Second),
		EXPORT_LAYOUT_PATH:      getEnvString("EXPORT_LAYOUT_PATH", "schedule_export.yaml"),
		LOG_FILE_PATH:           getEnvString("LOG_FILE_PATH", ""),
		LOG_LEVEL:               getEnvString("LOG_LEVEL", "info"),
	}
	return nil
}

func getEnvString(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
		if i, err := strconv.Atoi(val); err == nil {
			return time.Duration(i) * time.Second
		}
	}
	return fallback
}
