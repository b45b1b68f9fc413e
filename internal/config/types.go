package config

// service configuration, populated from the environment
type Config struct {
	// served by GET /
	Title   string `env:"APP_TITLE" envDefault:"Trigonal API"`
	Version string `env:"APP_VERSION" envDefault:"1.0.0"`

	// served by GET /health
	ServiceName string `env:"SERVICE_NAME" envDefault:"trigonal-backend"`

	Port           string   `env:"PORT" envDefault:"8000"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envDefault:"https://trigonaltechnology.com,http://localhost:3000" envSeparator:","`
	Environment    string   `env:"ENVIRONMENT" envDefault:"development"`

	// proxies whose X-Forwarded-For is honoured; empty trusts none
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`

	// optional backends; empty means in-memory
	DatabaseURL string `env:"DATABASE_URL"`
	RedisURL    string `env:"REDIS_URL"`

	// admin endpoints are disabled when empty
	JWTSecret string `env:"JWT_SECRET"`

	// log-only notifications when empty
	ResendAPIKey string `env:"RESEND_API_KEY"`
	NotifyFrom   string `env:"CONSULT_NOTIFY_FROM" envDefault:"consult@trigonal.tech"`
	NotifyTo     string `env:"CONSULT_NOTIFY_TO" envDefault:"architects@trigonal.tech"`

	// ulule/limiter formatted rate, e.g. "5-M"
	ConsultRateLimit string `env:"CONSULT_RATE_LIMIT" envDefault:"5-M"`
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) AdminEnabled() bool {
	return c.JWTSecret != ""
}
