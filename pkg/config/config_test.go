package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:8501"}, cfg.Server.AllowOrigins)
	assert.Equal(t, "artifacts/scaler.json", cfg.Artifact.ScalerPath)
	assert.Equal(t, "artifacts/kmeans_model.json", cfg.Artifact.ModelPath)
	assert.Equal(t, "8501", cfg.Dashboard.Port)
	assert.Equal(t, "API_URL", cfg.Dashboard.EndpointKey)
	assert.Equal(t, "clustered_rfm.csv", cfg.Dashboard.DistributionPath)
	assert.Equal(t, 10*time.Second, cfg.Dashboard.RequestTimeout)
	assert.Equal(t, 50, cfg.Log.MaxSizeMB)
}

func TestLoadOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "9000")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://a.test, http://b.test ,")
	t.Setenv("MODEL_PATH", "/srv/model.yaml")
	t.Setenv("DASHBOARD_REQUEST_TIMEOUT", "2s")
	t.Setenv("LOG_MAX_BACKUPS", "7")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.AllowOrigins)
	assert.Equal(t, "/srv/model.yaml", cfg.Artifact.ModelPath)
	assert.Equal(t, 2*time.Second, cfg.Dashboard.RequestTimeout)
	assert.Equal(t, 7, cfg.Log.MaxBackups)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Run("timeout", func(t *testing.T) {
		t.Setenv("DASHBOARD_REQUEST_TIMEOUT", "soon")
		_, err := Load()
		require.ErrorContains(t, err, "DASHBOARD_REQUEST_TIMEOUT")
	})

	t.Run("negative timeout", func(t *testing.T) {
		t.Setenv("DASHBOARD_REQUEST_TIMEOUT", "-1s")
		_, err := Load()
		require.Error(t, err)
	})

	t.Run("log size", func(t *testing.T) {
		t.Setenv("LOG_MAX_SIZE_MB", "big")
		_, err := Load()
		require.ErrorContains(t, err, "LOG_MAX_SIZE_MB")
	})
}
