package server

import (
	"github.com/caarlos0/env/v11"

	"github.com/taperlab/taper/internal/engine"
	appenv "github.com/taperlab/taper/internal/env"
)

type Config struct {
	Port      string             `env:"PORT" envDefault:"8080"`
	Env       appenv.Environment `env:"ENV" envDefault:"development"`
	RateLimit RateLimit          `envPrefix:"RATE_"`
	Redis     Redis              `envPrefix:"REDIS_"`
	Engine    engine.Config      `envPrefix:"ENGINE_"`
}

type RateLimit struct {
	Limit float64 `env:"LIMIT" envDefault:"10"`
	Burst int     `env:"BURST" envDefault:"20"`
}

type Redis struct {
	URL string `env:"URL"`
}

func ReadConfig() (Config, error) {
	return env.ParseAs[Config]()
}
