package config

import (
	"context"
	"log/slog"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// APIBaseURLs is the ordered upstream candidate list: primary first,
	// then hot standbys on other hosting providers.
	APIBaseURLs     []string      `env:"API_BASE_URLS,    default=http://localhost:5000"`
	UpstreamTimeout time.Duration `env:"UPSTREAM_TIMEOUT, default=15s"`

	// FrontendBaseURL is this service's externally visible origin, used to
	// build the OAuth callback URL and QR deep links.
	FrontendBaseURL string `env:"FRONTEND_BASE_URL, default=http://localhost:8080"`
	SupportEmail    string `env:"SUPPORT_EMAIL,     default=help@clinicallabel.io"`

	Session SessionConfig
	Redis   RedisConfig
	Speech  SpeechConfig
}

type SessionConfig struct {
	// Backend selects the session store: "memory" or "redis".
	Backend string        `env:"SESSION_BACKEND, default=memory"`
	TTL     time.Duration `env:"SESSION_TTL,     default=24h"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type SpeechConfig struct {
	// Command is the host TTS binary used for read-aloud.
	Command string `env:"TTS_COMMAND, default=espeak-ng"`
	// Voices optionally overrides the voice table as "lang=voice,..." pairs.
	Voices string `env:"TTS_VOICES"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(logger *slog.Logger) *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		logger.Error("Failed to load configuration", "error", err)
		panic(err)
	}
	return &cfg
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
