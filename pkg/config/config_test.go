package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("GOOGLE_MAPS_API_KEY", "")
	t.Setenv("SEARCH_RADIUS_METERS", "")
	t.Setenv("HTTP_TIMEOUT_SECONDS", "")
	t.Setenv("USE_MOCK_DATA", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Empty(t, cfg.GoogleMapsAPIKey)
	assert.Equal(t, 5000, cfg.SearchRadiusMeters)
	assert.Equal(t, 15, cfg.HTTPTimeoutSeconds)
	assert.False(t, cfg.UseMockData)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("GOOGLE_MAPS_API_KEY", "secret")
	t.Setenv("SEARCH_RADIUS_METERS", "2500")
	t.Setenv("USE_MOCK_DATA", "true")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "secret", cfg.GoogleMapsAPIKey)
	assert.Equal(t, 2500, cfg.SearchRadiusMeters)
	assert.True(t, cfg.UseMockData)
}

func TestLoadIgnoresMalformedInt(t *testing.T) {
	t.Setenv("SEARCH_RADIUS_METERS", "five thousand")

	cfg := Load()

	assert.Equal(t, 5000, cfg.SearchRadiusMeters)
}
