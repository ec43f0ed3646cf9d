package internal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	req := require.New(t)

	config, err := LoadConfig()

	req.NoError(err)
	req.Equal("http://localhost:8000", config.ServerURL)
	req.Equal(10*time.Second, config.RequestTimeout)
	req.Equal(3, config.DialAttempts)
	req.Equal(65536, config.MaxFrameBytes)
	req.False(config.SuppressSelfEcho)
	req.Equal("default", config.Profile)
}

func TestLoadConfig_From_Environment(t *testing.T) {
	req := require.New(t)
	t.Setenv("CHAT_SERVER_URL", "https://chat.example.com")
	t.Setenv("CHAT_REQUEST_TIMEOUT", "2s")
	t.Setenv("CHAT_SUPPRESS_SELF_ECHO", "true")
	t.Setenv("CHAT_PROFILE", "alice")

	config, err := LoadConfig()

	req.NoError(err)
	req.Equal("https://chat.example.com", config.ServerURL)
	req.Equal(2*time.Second, config.RequestTimeout)
	req.True(config.SuppressSelfEcho)
	req.Equal("alice", config.Profile)
}

func TestLoadConfig_Rejects_Zero_Dial_Attempts(t *testing.T) {
	t.Setenv("CHAT_DIAL_ATTEMPTS", "0")

	_, err := LoadConfig()

	require.Error(t, err)
}

func TestLoadConfig_Rejects_Zero_Max_Frame_Bytes(t *testing.T) {
	t.Setenv("CHAT_MAX_FRAME_BYTES", "0")

	_, err := LoadConfig()

	require.Error(t, err)
}
