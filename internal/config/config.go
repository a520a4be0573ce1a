package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/osse101/TavernCrawl_Go/internal/logger"
)

// Config holds the application configuration
type Config struct {
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn warning error"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev" validate:"oneof=dev test staging prod"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"tavern-crawl" validate:"required"`
	Version     string `env:"VERSION" envDefault:"dev"`

	// Seed fixes the random source; 0 draws a fresh seed per run
	Seed int64 `env:"TAVERN_SEED" envDefault:"0"`

	StartingMoney int     `env:"TAVERN_STARTING_MONEY" envDefault:"100" validate:"gte=0"`
	BaseHealth    int     `env:"TAVERN_BASE_HEALTH" envDefault:"100" validate:"min=1"`
	BaseAttack    int     `env:"TAVERN_BASE_ATTACK" envDefault:"10" validate:"gte=0"`
	BaseDefense   int     `env:"TAVERN_BASE_DEFENSE" envDefault:"5" validate:"gte=0"`
	FleeChance    float64 `env:"TAVERN_FLEE_CHANCE" envDefault:"0.5" validate:"gte=0,lte=1"`
	MaxRounds     int     `env:"TAVERN_MAX_ROUNDS" envDefault:"1000" validate:"min=1"`

	// CatalogPath overrides the embedded content catalog when set
	CatalogPath      string `env:"TAVERN_CATALOG_PATH"`
	CatalogCacheSize int    `env:"TAVERN_CATALOG_CACHE_SIZE" envDefault:"8" validate:"min=1,max=1024"`

	// JournalPath receives the session's event journal as JSON lines when set
	JournalPath       string `env:"TAVERN_JOURNAL_PATH"`
	JournalMaxEntries int    `env:"TAVERN_JOURNAL_MAX_ENTRIES" envDefault:"500" validate:"min=1"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	return Parse(nil)
}

// Parse builds a Config from environ, or from the process environment when
// environ is nil, and validates it
func Parse(environ map[string]string) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgParseEnv, err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoggerConfig maps the logging fields onto logger.Config
func (c *Config) LoggerConfig() logger.Config {
	return logger.NewConfig(c.LogLevel, c.LogFormat, c.ServiceName, c.Version, c.Environment,
		c.Environment == logger.EnvironmentDev)
}
