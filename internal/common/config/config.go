package config

import (
	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Debug       bool   `env:"DEBUG" envDefault:"false"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"colorado-lottery"`

	Lottery struct {
		// Residence code that does not need a national drawing to register
		HomeState  string `env:"LOTTERY_HOME_STATE" envDefault:"CO"`
		MinimumAge int    `env:"LOTTERY_MINIMUM_AGE" envDefault:"18"`
		// Fixed date reported by draws and announcements, not a computed timestamp
		DrawDate string `env:"LOTTERY_DRAW_DATE" envDefault:"06/09/2020"`
	}
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	// A missing .env is fine, the variables may be set directly.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
