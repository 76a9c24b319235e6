package config

import "github.com/caarlos0/env/v6"

type Config struct {
	// HTTP server configuration
	Server struct {
		Port string `env:"SERVER_PORT" envDefault:"5250"`
	}

	// INE statistics API configuration
	INE struct {
		// Base endpoint for indicator data queries
		IndicatorURL string `env:"INE_INDICATOR_URL" envDefault:"https://www.ine.pt/ine/json_indicador"`

		// Base endpoint for indicator metadata lookups
		MetadataURL string `env:"INE_METADATA_URL" envDefault:"https://www.ine.pt/ine/json_metadata"`

		// Base endpoint for the indicator catalog
		CatalogURL string `env:"INE_CATALOG_URL" envDefault:"https://www.ine.pt/ine/json_indicador"`

		// Optional bearer token for authenticated access
		APIKey string `env:"INE_API_KEY"`

		// Request timeout in seconds
		TimeoutSeconds int `env:"INE_TIMEOUT" envDefault:"10"`
	}

	// Query cache configuration
	Cache struct {
		// Redis connection URL; empty disables caching
		RedisURL string `env:"REDIS_URL"`

		// Staleness window for cached INE responses (minutes)
		TTLMinutes int `env:"CACHE_TTL_MINUTES" envDefault:"30"`
	}

	// Generator configuration
	Generator struct {
		// Optional fixed seed for reproducible synthetic data; 0 seeds
		// from the clock
		Seed int64 `env:"GENERATOR_SEED" envDefault:"0"`
	}
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
