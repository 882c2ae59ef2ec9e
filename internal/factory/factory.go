package factory

import (
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/openplay/courtqueue/internal/dependencies/clock"
	"github.com/openplay/courtqueue/internal/dependencies/random"
	"github.com/openplay/courtqueue/internal/services/auth"
	"github.com/openplay/courtqueue/internal/services/cooldown"
	"github.com/openplay/courtqueue/internal/services/session"
	"github.com/openplay/courtqueue/internal/storage"
	"github.com/openplay/courtqueue/internal/storage/memory"
	redisstorage "github.com/openplay/courtqueue/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	Cooldowns         *cooldown.Table
	SessionController *session.Controller
	AuthService       *auth.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// PINHash is the bcrypt hash of the organizer PIN (optional; empty
	// disables the terminate/export gate)
	PINHash string
	// CooldownDuration guards courts against double-clear after a game
	// completes. Zero means the default.
	CooldownDuration time.Duration
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	return newWithDependencies(store, clk, rnd, cfg.PINHash, cfg.CooldownDuration, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	pinHash string,
	cooldownDuration time.Duration,
	logger *slog.Logger,
) *App {
	cooldowns := cooldown.New(clk, cooldownDuration)
	sessionController := session.NewController(store, clk, rnd, cooldowns, logger)
	authService := auth.New(pinHash)

	return &App{
		Storage:           store,
		Clock:             clk,
		Random:            rnd,
		Cooldowns:         cooldowns,
		SessionController: sessionController,
		AuthService:       authService,
	}
}
