package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"roam-backend/internal/application/services"
	"roam-backend/internal/config"
	"roam-backend/internal/db"
	"roam-backend/internal/delivery/handler"
	"roam-backend/internal/infrastructure"
	"roam-backend/internal/infrastructure/db/mongodb"
	"roam-backend/internal/messaging"
	"roam-backend/internal/places"
)

func main() {
	// Optional .env for local development.
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg := config.Load()
	if cfg.MongoURI == "" {
		return errors.New("MONGODB_URI is required")
	}
	if cfg.MapsAPIKey == "" {
		return errors.New("MAPS_KEY is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	database, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		return err
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := database.Client().Disconnect(disconnectCtx); err != nil {
			logger.Warn("mongo disconnect failed", "error", err)
		}
	}()
	logger.Info("connected to mongodb", "database", cfg.MongoDatabase)

	if err := db.EnsureIndexes(ctx, database); err != nil {
		return err
	}

	cache := infrastructure.NewRedisService(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, logger)
	defer cache.Close()

	publisher := messaging.Connect(cfg.NatsURL, logger)
	defer publisher.Close()

	userRepo := mongodb.NewUserRepository(database)
	historyRepo := mongodb.NewEntryRepository(database, db.CollectionHistory)
	wishlistRepo := mongodb.NewEntryRepository(database, db.CollectionWishlist)
	rankRepo := mongodb.NewRankRepository(database)
	counterRepo := mongodb.NewCounterRepository(database)

	hasher := infrastructure.NewBcryptHasher()
	userService := services.NewUserService(userRepo, counterRepo, hasher, publisher, logger)
	rankService := services.NewRankService(rankRepo, cache, logger)
	statsService := services.NewStatsService(historyRepo, counterRepo)
	historyService := services.NewHistoryService(userRepo, historyRepo, rankService, statsService, publisher, logger)
	wishlistService := services.NewWishlistService(userRepo, wishlistRepo, publisher, logger)

	placesClient := places.NewClient(cfg.MapsAPIKey, cfg.UpstreamRPS)
	limiter := infrastructure.NewRateLimiter(cfg.SearchRateWindow, cfg.SearchRateLimit)
	go pruneLoop(ctx, limiter)

	h := handler.NewHandler(userService, historyService, wishlistService, rankService, placesClient, cache, limiter, logger)

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      h.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func pruneLoop(ctx context.Context, limiter *infrastructure.RateLimiter) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			limiter.Prune()
		}
	}
}
