package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/aryaman-sowilo/stock-price-scraper/model"
)

type SystemConfigs struct {
	Config *model.EnvConfig
}

// LoadConfigs reads an optional .env file, then overlays the JSON blob in the
// `config` environment variable onto the defaults. A bare PORT variable wins
// over both, matching how the scraper is deployed.
func LoadConfigs() (*SystemConfigs, error) {
	godotenv.Load()

	cfg := model.DefaultEnvConfig()

	if rawJson := os.Getenv("config"); rawJson != "" {
		if err := json.Unmarshal([]byte(rawJson), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}
	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}

	sanitize(cfg)

	return &SystemConfigs{Config: cfg}, nil
}

// sanitize backfills values a partial config blob may have zeroed out. The
// cache must stay bounded and the fetch must keep a deadline no matter what
// the environment says.
func sanitize(cfg *model.EnvConfig) {
	def := model.DefaultEnvConfig()
	if cfg.Port == "" {
		cfg.Port = def.Port
	}
	if cfg.FetchTimeoutSeconds <= 0 {
		cfg.FetchTimeoutSeconds = def.FetchTimeoutSeconds
	}
	if cfg.CacheCapacity <= 0 {
		cfg.CacheCapacity = def.CacheCapacity
	}
	if cfg.PatternPriceMax <= 0 {
		cfg.PatternPriceMin = def.PatternPriceMin
		cfg.PatternPriceMax = def.PatternPriceMax
	}
	if cfg.FreeTextPriceMax <= 0 {
		cfg.FreeTextPriceMin = def.FreeTextPriceMin
		cfg.FreeTextPriceMax = def.FreeTextPriceMax
	}
}
