package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/mwhite7112/woodpantry-ingredient-groups/internal/grouping"
)

// Config holds the service settings read from the environment.
type Config struct {
	Port            string `envconfig:"PORT" default:"8080"`
	LogLevel        string `envconfig:"LOG_LEVEL" default:"info"`
	MatchScorer     string `envconfig:"MATCH_SCORER" default:"dice"`
	DefaultLanguage string `envconfig:"DEFAULT_LANGUAGE" default:"en"`
	MaxBodyBytes    int64  `envconfig:"MAX_BODY_BYTES" default:"5242880"`
}

// Load reads an optional .env file and then the environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings the service cannot run with.
func (c Config) Validate() error {
	if _, ok := grouping.ScorerByName(c.MatchScorer); !ok {
		return fmt.Errorf("invalid MATCH_SCORER %q", c.MatchScorer)
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("invalid MAX_BODY_BYTES %d", c.MaxBodyBytes)
	}
	return nil
}

// Scorer returns the configured similarity scorer.
func (c Config) Scorer() grouping.Scorer {
	s, _ := grouping.ScorerByName(c.MatchScorer)
	return s
}
