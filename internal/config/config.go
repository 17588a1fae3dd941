package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Server     ServerConfig
	Generator  GeneratorConfig
	Cache      CacheConfig
	Batch      BatchConfig
	Validation ValidationConfig
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
}

type ServerConfig struct {
	APIPort        string        `env:"API_PORT" envDefault:"8080"`
	RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" envDefault:"30s"`
}

type GeneratorConfig struct {
	// Optional YAML file with tenant SpinText/SyntaxText configs
	VariationsFile     string `env:"URL_VARIATIONS_FILE"`
	PlaceholderAliases bool   `env:"URL_PLACEHOLDER_ALIASES" envDefault:"false"`
	ApplySyntaxRules   bool   `env:"URL_APPLY_SYNTAX_RULES" envDefault:"false"`
}

type CacheConfig struct {
	Enabled     bool `env:"CACHE_ENABLED" envDefault:"true"`
	MaxSizePow2 int  `env:"CACHE_MAX_SIZE_POW2" envDefault:"20"`
}

type BatchConfig struct {
	Workers     int `env:"BATCH_WORKERS" envDefault:"4"`
	MaxVehicles int `env:"BATCH_MAX_VEHICLES" envDefault:"500"`
}

type ValidationConfig struct {
	MaxURLLength int `env:"MAX_URL_LENGTH" envDefault:"2048"`
	MaxURLBatch  int `env:"MAX_URL_BATCH" envDefault:"5000"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if cfg.Batch.Workers < 1 {
		cfg.Batch.Workers = 1
	}

	return &cfg, nil
}
