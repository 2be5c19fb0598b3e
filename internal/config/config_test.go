package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("loads all config from env", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://localhost/test")
		t.Setenv("HTTP_ADDR", ":9090")
		t.Setenv("ASSETS_DIR", "/tmp/awareness")
		t.Setenv("LOG_LEVEL", "debug")

		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, "postgres://localhost/test", cfg.DatabaseURL)
		require.Equal(t, ":9090", cfg.HTTPAddr)
		require.Equal(t, "/tmp/awareness", cfg.AssetsDir)
		require.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("applies defaults for optional settings", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://localhost/test")
		t.Setenv("HTTP_ADDR", "")
		t.Setenv("ASSETS_DIR", "")

		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, DefaultHTTPAddr, cfg.HTTPAddr)
		require.Equal(t, DefaultAssetsDir, cfg.AssetsDir)
	})

	t.Run("fails without DATABASE_URL", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "")

		_, err := Load()
		require.Error(t, err)
		require.Contains(t, err.Error(), "DATABASE_URL is required")
	})

	t.Run("loads OTLP endpoint when set", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://localhost/test")
		t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318")

		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, "localhost:4318", cfg.OTLPEndpoint)
	})
}
