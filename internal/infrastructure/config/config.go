package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string        `env:"PORT,       default=8080"`
	Env       string        `env:"ENV,        default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	JWTTTL    time.Duration `env:"JWT_TTL,    default=1h"`
	LogLevel  string        `env:"LOG_LEVEL,  default=info"`

	Mongo MongoConfig
	Redis RedisConfig
	Email EmailConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=sheba_platform"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// EmailConfig supports two alternative transport credential variants: a
// Mailgun API key plus domain, or an SMTP user/password pair. Leaving both
// unset disables delivery (a hard error only under strict delivery).
type EmailConfig struct {
	From     string `env:"EMAIL_FROM"`
	FromName string `env:"EMAIL_FROM_NAME, default=Sheba Platform"`

	MailgunDomain string `env:"MAILGUN_DOMAIN"`
	MailgunAPIKey string `env:"MAILGUN_API_KEY"`

	SMTPHost string `env:"SMTP_HOST, default=smtp.gmail.com"`
	SMTPPort string `env:"SMTP_PORT, default=587"`
	SMTPUser string `env:"EMAIL_USER"`
	SMTPPass string `env:"EMAIL_PASS"`

	// StrictDelivery makes notification failures hard errors. Enabled in
	// automated test environments, disabled in production.
	StrictDelivery bool `env:"EMAIL_STRICT_DELIVERY, default=false"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
