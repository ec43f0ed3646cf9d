package internal

import (
	"fmt"
	"time"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
)

type Config struct {
	ServerURL        string        `env:"CHAT_SERVER_URL,default=http://localhost:8000"`
	RequestTimeout   time.Duration `env:"CHAT_REQUEST_TIMEOUT,default=10s"`
	HandshakeTimeout time.Duration `env:"CHAT_HANDSHAKE_TIMEOUT,default=10s"`
	WriteTimeout     time.Duration `env:"CHAT_WRITE_TIMEOUT,default=5s"`
	DialAttempts     int           `env:"CHAT_DIAL_ATTEMPTS,default=3"`
	MaxFrameBytes    int           `env:"CHAT_MAX_FRAME_BYTES,default=65536"`
	SuppressSelfEcho bool          `env:"CHAT_SUPPRESS_SELF_ECHO,default=false"`
	BadgerFilepath   string        `env:"BADGER_FILEPATH,default=.chat-room"`
	Profile          string        `env:"CHAT_PROFILE,default=default"`
	LogLevel         string        `env:"LOG_LEVEL,default=INFO"`
}

// LoadConfig reads an optional .env file, then the environment.
// Variables already set in the environment win over the file.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if config.DialAttempts < 1 {
		return Config{}, fmt.Errorf("config error: CHAT_DIAL_ATTEMPTS must be at least 1")
	}
	if config.MaxFrameBytes < 1 {
		return Config{}, fmt.Errorf("config error: CHAT_MAX_FRAME_BYTES must be at least 1")
	}
	return config, nil
}
