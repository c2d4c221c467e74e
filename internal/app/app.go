// Package app assembles stores, password and token services, and the use
// cases from configuration. The API server and goalsctl share it.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/redmonkez12/goals-api/internal/auth"
	"github.com/redmonkez12/goals-api/internal/config"
	"github.com/redmonkez12/goals-api/internal/database"
	"github.com/redmonkez12/goals-api/internal/goal"
	"github.com/redmonkez12/goals-api/internal/logging"
	"github.com/redmonkez12/goals-api/internal/password"
	"github.com/redmonkez12/goals-api/internal/ratelimit"
	"github.com/redmonkez12/goals-api/internal/token"
	"github.com/redmonkez12/goals-api/internal/user"
)

// Tokens both issues and verifies bearer tokens.
type Tokens interface {
	auth.TokenService
	token.Verifier
}

// goalStore is what both goal backends provide.
type goalStore interface {
	goal.Store
	goal.Lister
}

type App struct {
	SignUp    *auth.SignUpUser
	SignIn    *auth.SignInUser
	Verify    *auth.VerifyUser
	AddGoal   *goal.AddGoal
	ListGoals *goal.ListGoals

	Tokens  Tokens
	Limiter ratelimit.Limiter

	sqlDB   *sql.DB
	closers []func() error
	logger  *logging.Logger
}

// Build wires everything cfg selects. Call Close when done.
func Build(ctx context.Context, cfg *config.Config, logger *logging.Logger) (*App, error) {
	a := &App{logger: logger}

	passwords, err := newPasswordService(cfg.Auth)
	if err != nil {
		return nil, err
	}

	a.Tokens, err = newTokenService(cfg.Auth)
	if err != nil {
		return nil, err
	}

	users, goals, err := a.buildStores(ctx, cfg)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.Limiter, err = a.buildLimiter(ctx, cfg)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.SignUp = auth.NewSignUpUser(users, passwords)
	a.SignIn = auth.NewSignInUser(users, passwords, a.Tokens)
	a.Verify = auth.NewVerifyUser(users)
	a.AddGoal = goal.NewAddGoal(users, goals)
	a.ListGoals = goal.NewListGoals(users, goals)

	return a, nil
}

func (a *App) buildStores(ctx context.Context, cfg *config.Config) (user.Store, goalStore, error) {
	if cfg.Store.Backend == config.StoreMemory {
		a.logger.Warn("using in-memory stores; data is lost on exit")
		return user.NewMemoryStore(), goal.NewMemoryStore(), nil
	}

	sqlDB, err := database.Open(cfg.Database.Driver, cfg.Database.ConnectionString())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	a.sqlDB = sqlDB
	a.closers = append(a.closers, sqlDB.Close)

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(ctx, sqlDB); err != nil {
			return nil, nil, err
		}
		a.logger.Info("database migrations applied")
	}

	db := database.NewBunDB(sqlDB)
	return user.NewRepository(db), goal.NewRepository(db), nil
}

func (a *App) buildLimiter(ctx context.Context, cfg *config.Config) (ratelimit.Limiter, error) {
	if !cfg.RateLimit.Enabled {
		return ratelimit.Noop{}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	a.closers = append(a.closers, client.Close)

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}

	return ratelimit.NewRedisLimiter(client, cfg.RateLimit.MaxAttempts, cfg.RateLimit.Window), nil
}

// Migrate applies pending migrations. Only valid with the Postgres store.
func (a *App) Migrate(ctx context.Context) error {
	if a.sqlDB == nil {
		return errors.New("migrations need STORE=postgres")
	}
	return database.Migrate(ctx, a.sqlDB)
}

// Close releases connections in reverse order of acquisition.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

func newPasswordService(cfg config.AuthConfig) (auth.PasswordService, error) {
	switch cfg.Hasher {
	case config.HasherBcrypt:
		return password.NewBcrypt(cfg.BcryptCost)
	case config.HasherArgon2id:
		return password.NewArgon2id(password.DefaultArgon2Params), nil
	default:
		return nil, fmt.Errorf("unsupported password hasher %q", cfg.Hasher)
	}
}

func newTokenService(cfg config.AuthConfig) (Tokens, error) {
	switch cfg.TokenFormat {
	case config.TokenJWT:
		return token.NewJWT(cfg.JWTSecret, cfg.Issuer, cfg.TokenTTL)
	case config.TokenPaseto:
		return token.NewPaseto([]byte(cfg.PasetoKey), cfg.Issuer, cfg.TokenTTL)
	default:
		return nil, fmt.Errorf("unsupported token format %q", cfg.TokenFormat)
	}
}
