package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/openplay/courtqueue/internal/api"
	"github.com/openplay/courtqueue/internal/config"
	"github.com/openplay/courtqueue/internal/factory"
	"github.com/openplay/courtqueue/internal/model"
	redisstorage "github.com/openplay/courtqueue/internal/storage/redis"
)

func main() {
	// Load .env if present; real env always wins
	_ = godotenv.Load()

	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	configPath := os.Getenv("CONFIG_FILE")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Build factory config
	factoryCfg := factory.Config{
		Logger:           logger,
		StorageType:      cfg.Storage.Type,
		PINHash:          cfg.PINHash,
		CooldownDuration: time.Duration(cfg.CooldownSeconds) * time.Second,
	}

	if factoryCfg.StorageType == factory.StorageTypeRedis {
		if cfg.Storage.RedisURL == "" {
			logger.Error("redis_url required when storage type is redis")
			os.Exit(1)
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.Storage.RedisURL
		factoryCfg.RedisConfig = &redisCfg
	}

	// Create application factory
	app, err := factory.New(factoryCfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Pick up a previously saved session, if any
	if err := app.SessionController.RestoreFromStorage(context.Background()); err != nil {
		logger.Warn("could not restore saved session", slog.String("error", err.Error()))
	}

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Persist the session shortly after each change, batching bursts
	saver := newDebouncedSaver(ctx, app, time.Duration(cfg.SaveDebounceSeconds)*time.Second, logger)
	app.SessionController.AddListener(func(model.Event) { saver.notify() })

	// Create API router and server
	router := api.NewRouter(api.RouterConfig{
		Logger:            logger,
		AuthService:       app.AuthService,
		SessionController: app.SessionController,
	})

	serverConfig := api.DefaultServerConfig()
	serverConfig.Host = cfg.Server.Host
	serverConfig.Port = cfg.Server.Port
	server := api.NewServer(router, serverConfig, logger)

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		// One final save so nothing from the last debounce window is lost
		saveCtx, saveCancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := app.SessionController.SaveToStorage(saveCtx); err != nil {
			logger.Warn("final session save failed", slog.String("error", err.Error()))
		}
		saveCancel()

		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}

// debouncedSaver batches snapshot saves: a burst of changes produces one
// save once the session has been quiet for the debounce window.
type debouncedSaver struct {
	changes chan struct{}
}

func newDebouncedSaver(ctx context.Context, app *factory.App, window time.Duration, logger *slog.Logger) *debouncedSaver {
	if window <= 0 {
		window = 2 * time.Second
	}
	s := &debouncedSaver{changes: make(chan struct{}, 1)}

	go func() {
		var timer *time.Timer
		var fire <-chan time.Time
		for {
			select {
			case <-ctx.Done():
				return
			case <-s.changes:
				if timer == nil {
					timer = time.NewTimer(window)
					fire = timer.C
				} else {
					if !timer.Stop() {
						<-fire
					}
					timer.Reset(window)
				}
			case <-fire:
				timer = nil
				fire = nil
				saveCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
				if err := app.SessionController.SaveToStorage(saveCtx); err != nil {
					logger.Warn("session save failed", slog.String("error", err.Error()))
				}
				cancel()
			}
		}
	}()

	return s
}

// notify marks the session dirty. Non-blocking; a pending mark is enough.
func (s *debouncedSaver) notify() {
	select {
	case s.changes <- struct{}{}:
	default:
	}
}
