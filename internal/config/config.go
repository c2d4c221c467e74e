package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Accepted enum values.
const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"

	TokenPaseto = "paseto"
	TokenJWT    = "jwt"

	HasherArgon2id = "argon2id"
	HasherBcrypt   = "bcrypt"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Store     StoreConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Auth      AuthConfig
}

type ServerConfig struct {
	Port            string        `env:"SERVER_PORT" envDefault:"8080"`
	Env             string        `env:"APP_ENV" envDefault:"dev"` // dev or prod
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"15s"`
	TrustedOrigins  []string      `env:"TRUSTED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
}

type DatabaseConfig struct {
	Driver         string `env:"DB_DRIVER" envDefault:"postgres"` // postgres (lib/pq) or pgx
	Host           string `env:"DB_HOST" envDefault:"localhost"`
	Port           string `env:"DB_PORT" envDefault:"5432"`
	User           string `env:"DB_USER" envDefault:"postgres"`
	Password       string `env:"DB_PASSWORD" envDefault:"postgres"`
	DBName         string `env:"DB_NAME" envDefault:"goals"`
	SSLMode        string `env:"DB_SSLMODE" envDefault:"disable"`
	ChannelBinding string `env:"DB_CHANNEL_BINDING"` // "require" for Neon DB, empty for local
	AutoMigrate    bool   `env:"DB_AUTO_MIGRATE" envDefault:"true"`
}

type StoreConfig struct {
	Backend string `env:"STORE" envDefault:"postgres"` // postgres or memory
}

type RedisConfig struct {
	Host     string `env:"REDIS_HOST" envDefault:"localhost"`
	Port     string `env:"REDIS_PORT" envDefault:"6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

type RateLimitConfig struct {
	Enabled     bool          `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	MaxAttempts int           `env:"RATE_LIMIT_MAX_ATTEMPTS" envDefault:"10"`
	Window      time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"15m"`
}

type AuthConfig struct {
	TokenFormat string        `env:"TOKEN_FORMAT" envDefault:"paseto"`
	PasetoKey   string        `env:"PASETO_KEY"` // must be 32 bytes for v4.local
	JWTSecret   string        `env:"JWT_SECRET"`
	Issuer      string        `env:"TOKEN_ISSUER" envDefault:"goals-api"`
	TokenTTL    time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
	Hasher      string        `env:"PASSWORD_HASHER" envDefault:"argon2id"`
	BcryptCost  int           `env:"BCRYPT_COST" envDefault:"12"`
}

// Load reads an optional .env file, then the process environment.
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	return parse(env.Options{})
}

// LoadFrom parses vars instead of the process environment.
func LoadFrom(vars map[string]string) (*Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (*Config, error) {
	cfg := new(Config)
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks enum values and the key material for the selected token
// format.
func (c *Config) Validate() error {
	var errs []error

	switch c.Store.Backend {
	case StorePostgres, StoreMemory:
	default:
		errs = append(errs, fmt.Errorf("STORE must be %q or %q, got %q", StorePostgres, StoreMemory, c.Store.Backend))
	}

	switch c.Database.Driver {
	case "postgres", "pgx":
	default:
		errs = append(errs, fmt.Errorf("DB_DRIVER must be \"postgres\" or \"pgx\", got %q", c.Database.Driver))
	}

	switch c.Auth.TokenFormat {
	case TokenPaseto:
		// Validate PASETO key length (must be 32 bytes for v4.local)
		if len(c.Auth.PasetoKey) != 32 {
			errs = append(errs, fmt.Errorf("PASETO_KEY must be exactly 32 bytes, got %d", len(c.Auth.PasetoKey)))
		}
	case TokenJWT:
		if len(c.Auth.JWTSecret) < 32 {
			errs = append(errs, fmt.Errorf("JWT_SECRET must be at least 32 bytes, got %d", len(c.Auth.JWTSecret)))
		}
	default:
		errs = append(errs, fmt.Errorf("TOKEN_FORMAT must be %q or %q, got %q", TokenPaseto, TokenJWT, c.Auth.TokenFormat))
	}

	if c.Auth.TokenTTL <= 0 {
		errs = append(errs, errors.New("TOKEN_TTL must be positive"))
	}

	switch c.Auth.Hasher {
	case HasherArgon2id:
	case HasherBcrypt:
		if c.Auth.BcryptCost < 4 || c.Auth.BcryptCost > 31 {
			errs = append(errs, fmt.Errorf("BCRYPT_COST must be between 4 and 31, got %d", c.Auth.BcryptCost))
		}
	default:
		errs = append(errs, fmt.Errorf("PASSWORD_HASHER must be %q or %q, got %q", HasherArgon2id, HasherBcrypt, c.Auth.Hasher))
	}

	if c.RateLimit.Enabled && (c.RateLimit.MaxAttempts <= 0 || c.RateLimit.Window <= 0) {
		errs = append(errs, errors.New("RATE_LIMIT_MAX_ATTEMPTS and RATE_LIMIT_WINDOW must be positive when rate limiting is enabled"))
	}

	return errors.Join(errs...)
}

func (c *DatabaseConfig) ConnectionString() string {
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)

	// Add channel_binding if configured (required for Neon DB)
	if c.ChannelBinding != "" {
		connStr += fmt.Sprintf(" channel_binding=%s", c.ChannelBinding)
	}

	return connStr
}

// Address returns Redis connection address (host:port)
func (c *RedisConfig) Address() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// Address returns the listen address for the HTTP server
func (c *ServerConfig) Address() string {
	return ":" + c.Port
}

// IsDevelopment returns true if the environment is set to dev
func (c *ServerConfig) IsDevelopment() bool {
	return c.Env == "dev"
}
