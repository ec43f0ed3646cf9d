package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_SERVER_URL points at a running room service; an in-process one is used when empty
	ServerURL string `envconfig:"E2E_SERVER_URL"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
	// E2E_DIAL_ATTEMPTS bounds websocket dial retries of every client
	DialAttempts uint `envconfig:"E2E_DIAL_ATTEMPTS" default:"3"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
