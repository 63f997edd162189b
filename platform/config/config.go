package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	_ "github.com/joho/godotenv/autoload"
)

// Config is the process configuration, parsed once at startup and threaded
// through constructors.
type Config struct {
	HTTPAddr   string `env:"HTTP_ADDR" envDefault:":4101"`
	SocketAddr string `env:"SOCKET_ADDR" envDefault:":8000"`
	CORSOrigin string `env:"CORS_ORIGIN" envDefault:"http://localhost:3000"`

	DBUser     string `env:"DB_USER"`
	DBAddr     string `env:"DB_ADDR"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME"`

	RedisURL string `env:"REDIS_URL" envDefault:"localhost:6379"`

	EditionDir string `env:"EDITION_DIR" envDefault:"platform/board/data"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
