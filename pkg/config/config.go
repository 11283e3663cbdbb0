package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Server    ServerConfig
	Artifact  ArtifactConfig
	Dashboard DashboardConfig
	Log       LogConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port         string
	AllowOrigins []string
}

// ArtifactConfig locates the pre-fit scaler and clustering model on disk.
type ArtifactConfig struct {
	ScalerPath string
	ModelPath  string
}

// DashboardConfig holds settings for the interactive client. The prediction
// endpoint address is not part of it: it is read from EndpointKey on every
// submission.
type DashboardConfig struct {
	Port             string
	EndpointKey      string
	DistributionPath string
	RequestTimeout   time.Duration
}

type LogConfig struct {
	FilePath   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// EndpointKey is the secret-configuration key holding the prediction endpoint URL.
const EndpointKey = "API_URL"

func Load() (*Config, error) {
	_ = godotenv.Load()

	timeout, err := time.ParseDuration(getEnv("DASHBOARD_REQUEST_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid DASHBOARD_REQUEST_TIMEOUT: %w", err)
	}

	maxSize, err := getEnvInt("LOG_MAX_SIZE_MB", 50)
	if err != nil {
		return nil, err
	}
	maxBackups, err := getEnvInt("LOG_MAX_BACKUPS", 3)
	if err != nil {
		return nil, err
	}
	maxAge, err := getEnvInt("LOG_MAX_AGE_DAYS", 28)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Customer Segment API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port:         getEnv("PORT", "8000"),
			AllowOrigins: splitList(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:8501")),
		},
		Artifact: ArtifactConfig{
			ScalerPath: getEnv("SCALER_PATH", "artifacts/scaler.json"),
			ModelPath:  getEnv("MODEL_PATH", "artifacts/kmeans_model.json"),
		},
		Dashboard: DashboardConfig{
			Port:             getEnv("DASHBOARD_PORT", "8501"),
			EndpointKey:      EndpointKey,
			DistributionPath: getEnv("DASHBOARD_DISTRIBUTION_PATH", "clustered_rfm.csv"),
			RequestTimeout:   timeout,
		},
		Log: LogConfig{
			FilePath:   getEnv("LOG_FILE", ""),
			MaxSizeMB:  maxSize,
			MaxBackups: maxBackups,
			MaxAgeDays: maxAge,
		},
	}

	if timeout <= 0 {
		return nil, fmt.Errorf("DASHBOARD_REQUEST_TIMEOUT must be positive, got %s", timeout)
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}

func getEnvInt(key string, defaultVal int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultVal, nil
	}

	val, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}

	return val, nil
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
