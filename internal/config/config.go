package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type AppConfig struct {
	HTTPServer `yaml:"http_server"`
	Storage    `yaml:"storage"`
	Payout     `yaml:"payout"`
}

type HTTPServer struct {
	Port int `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
}

// Storage selects the repository driver. "memory" keeps everything in
// process; "dynamodb" persists through the AWS SDK (tables and endpoint are
// configured via the usual AWS env vars).
type Storage struct {
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"memory"`
}

type Payout struct {
	Window time.Duration `yaml:"window" env:"PAYOUT_WINDOW" env-default:"24h"`
}

// MustLoad reads the yaml file named by CONFIG_PATH when set, and the
// environment otherwise.
func MustLoad() *AppConfig {
	var cfg AppConfig

	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			log.Fatalf("failed to find config file: %v", err)
		}
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			log.Fatalf("failed to read config file: %v", err)
		}
		return &cfg
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("failed to read config from env: %v", err)
	}
	return &cfg
}
