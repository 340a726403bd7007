package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// DefaultJWTSecret is only suitable for local development.
const DefaultJWTSecret = "streamhub-development-secret-change-me"

// APIServiceConfig holds every setting of the API service.
type APIServiceConfig struct {
	Env             string        `env:"APP_ENV"          envDefault:"development"`
	HTTPPort        string        `env:"HTTP_PORT"        envDefault:"8080"`
	LogLevel        string        `env:"LOG_LEVEL"        envDefault:"info"`
	AppBaseURL      string        `env:"APP_BASE_URL"     envDefault:"http://localhost:5173"`
	CleanupSchedule string        `env:"CLEANUP_SCHEDULE" envDefault:"@hourly"`
	SeedEnabled     bool          `env:"SEED_ENABLED"     envDefault:"false"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	Mongo      MongoConfig      `envPrefix:"MONGODB_"`
	Token      TokenConfig
	Google     GoogleConfig     `envPrefix:"GOOGLE_"`
	Cloudinary CloudinaryConfig `envPrefix:"CLOUDINARY_"`
	Bunny      BunnyConfig      `envPrefix:"BUNNY_"`
	Redis      RedisConfig      `envPrefix:"REDIS_"`
	RateLimit  RateLimitConfig  `envPrefix:"RATE_LIMIT_"`
}

type MongoConfig struct {
	URI      string `env:"URI"`
	Database string `env:"DATABASE" envDefault:"streamhub"`
}

type TokenConfig struct {
	Secret                      string        `env:"JWT_SECRET"        envDefault:"streamhub-development-secret-change-me"`
	Issuer                      string        `env:"JWT_ISSUER"        envDefault:"streamhub-api"`
	Audience                    string        `env:"JWT_AUDIENCE"      envDefault:"streamhub-web"`
	SessionTokenExpiresIn       time.Duration `env:"SESSION_TOKEN_TTL" envDefault:"168h"`
	PasswordResetTokenExpiresIn time.Duration `env:"RESET_TOKEN_TTL"   envDefault:"1h"`
}

type GoogleConfig struct {
	ClientID     string `env:"CLIENT_ID"`
	ClientSecret string `env:"CLIENT_SECRET"`
	RedirectURL  string `env:"REDIRECT_URL"`
}

type CloudinaryConfig struct {
	URL       string `env:"URL"`
	CloudName string `env:"CLOUD_NAME"`
	APIKey    string `env:"API_KEY"`
	APISecret string `env:"API_SECRET"`
}

type BunnyConfig struct {
	LibraryID string `env:"LIBRARY_ID"`
	APIKey    string `env:"API_KEY"`
	BaseURL   string `env:"BASE_URL"`
}

type RedisConfig struct {
	Addr     string `env:"ADDR"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
}

type RateLimitConfig struct {
	RPS   float64 `env:"RPS"   envDefault:"1"`
	Burst int     `env:"BURST" envDefault:"5"`
	// TrustedProxies lists the proxy addresses or CIDRs allowed to report
	// the client address through X-Forwarded-For.
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`
}

// NewAPIServiceConfig parses the service configuration from the environment.
func NewAPIServiceConfig() (*APIServiceConfig, error) {
	cfg, err := env.ParseAs[APIServiceConfig]()
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

// IsProduction reports whether the service runs in production.
func (c *APIServiceConfig) IsProduction() bool {
	return c.Env == "production"
}

// DatabaseName returns the Mongo database for the current environment.
// Every environment other than production gets a "_dev" suffix.
func (c *APIServiceConfig) DatabaseName() string {
	if c.IsProduction() {
		return c.Mongo.Database
	}
	return c.Mongo.Database + "_dev"
}

// UsesDefaultSecret reports whether the JWT secret was left at its default.
func (c *APIServiceConfig) UsesDefaultSecret() bool {
	return c.Token.Secret == DefaultJWTSecret
}
