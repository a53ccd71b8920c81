package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigs_Defaults(t *testing.T) {
	t.Setenv("config", "")
	t.Setenv("PORT", "")

	cfg, err := LoadConfigs()
	require.NoError(t, err)
	require.Equal(t, "8000", cfg.Config.Port)
	require.Equal(t, 256, cfg.Config.CacheCapacity)
	require.Equal(t, 60, cfg.Config.CacheTTLSeconds)
	require.Equal(t, 10, cfg.Config.FetchTimeoutSeconds)
	require.Equal(t, 1.0, cfg.Config.PatternPriceMin)
	require.Equal(t, 1000.0, cfg.Config.PatternPriceMax)
	require.Equal(t, 10000.0, cfg.Config.FreeTextPriceMax)
	require.False(t, cfg.Config.RateLimiter)
}

func TestLoadConfigs_PartialOverlayKeepsDefaults(t *testing.T) {
	t.Setenv("config", `{"port":"9000","rateLimiter":true,"patternPriceMax":5000}`)
	t.Setenv("PORT", "")

	cfg, err := LoadConfigs()
	require.NoError(t, err)
	require.Equal(t, "9000", cfg.Config.Port)
	require.True(t, cfg.Config.RateLimiter)
	require.Equal(t, 5000.0, cfg.Config.PatternPriceMax)
	// untouched fields keep their defaults
	require.Equal(t, 256, cfg.Config.CacheCapacity)
	require.Equal(t, 10, cfg.Config.FetchTimeoutSeconds)
}

func TestLoadConfigs_PortVariableWins(t *testing.T) {
	t.Setenv("config", `{"port":"9000"}`)
	t.Setenv("PORT", "3000")

	cfg, err := LoadConfigs()
	require.NoError(t, err)
	require.Equal(t, "3000", cfg.Config.Port)
}

func TestLoadConfigs_InvalidJSON(t *testing.T) {
	t.Setenv("config", `{not json`)

	_, err := LoadConfigs()
	require.Error(t, err)
}

func TestLoadConfigs_SanitizesBrokenValues(t *testing.T) {
	t.Setenv("config", `{"cacheCapacity":-1,"fetchTimeoutSeconds":0,"patternPriceMax":-5}`)
	t.Setenv("PORT", "")

	cfg, err := LoadConfigs()
	require.NoError(t, err)
	require.Equal(t, 256, cfg.Config.CacheCapacity)
	require.Equal(t, 10, cfg.Config.FetchTimeoutSeconds)
	require.Equal(t, 1000.0, cfg.Config.PatternPriceMax)
}
