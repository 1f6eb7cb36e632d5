package invitation

import (
	"errors"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config controls the resend anti-spam policy and token signing.
type Config struct {
	// ResendLimit caps how many times an invitation email may be sent.
	ResendLimit int `env:"INVITATION_RESEND_LIMIT" envDefault:"10"`

	// ResendWindow is the minimum interval between two sends.
	ResendWindow time.Duration `env:"INVITATION_RESEND_WINDOW" envDefault:"10m"`

	// SecretKey signs invitation tokens. Required for AcceptByToken.
	SecretKey string `env:"INVITATION_SECRET_KEY"`
}

// ErrParsingConfig is returned when environment variables cannot be parsed
// into the config struct.
var ErrParsingConfig = errors.New("invitation: failed to parse config from environment")

var defaultEnvLoaded sync.Once

// LoadConfig reads the configuration from environment variables, loading the
// default .env file first if one exists.
func LoadConfig() (Config, error) {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// DefaultConfig returns the built-in defaults without touching the environment.
func DefaultConfig() Config {
	return Config{
		ResendLimit:  10,
		ResendWindow: 10 * time.Minute,
	}
}
