package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ndeen17/udehglobal-shoe-showcase-sub001/internal/api"
	"github.com/ndeen17/udehglobal-shoe-showcase-sub001/internal/catalog"
	"github.com/ndeen17/udehglobal-shoe-showcase-sub001/internal/core/ports"
	"github.com/ndeen17/udehglobal-shoe-showcase-sub001/internal/core/service"
	"github.com/ndeen17/udehglobal-shoe-showcase-sub001/internal/infrastructure/config"
	"github.com/ndeen17/udehglobal-shoe-showcase-sub001/internal/infrastructure/kvstore"
	"github.com/ndeen17/udehglobal-shoe-showcase-sub001/internal/infrastructure/remote"
	"github.com/ndeen17/udehglobal-shoe-showcase-sub001/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Init(logger.Options{})
		fallback := logger.Get()
		fallback.Fatal().Err(err).Msg("configuration failed")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	store, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open key-value store")
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close key-value store")
		}
	}()

	// --- Core wiring ---
	cat := catalog.Default()
	history := service.NewHistory(store, log)
	search := service.NewSearch(cat, history, cfg.SearchLimit, log)
	session := service.NewSession(remote.NewAuthClient(cfg.APIBaseURL), store, log)
	orders := remote.NewOrderClient(cfg.APIBaseURL)
	chat := service.NewChat(log)

	// Restore the cached session before taking traffic.
	session.Restore(ctx)
	log.Info().Str("state", string(session.State())).Msg("session restored")

	e := api.NewRouter(api.Deps{
		Catalog: cat,
		Search:  search,
		History: history,
		Session: session,
		Orders:  orders,
		Chat:    chat,
		Store:   store,
		Log:     log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("storefront listening")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

func openStore(ctx context.Context, cfg *config.Config) (ports.KeyValueStore, error) {
	switch cfg.Storage.Backend {
	case "redis":
		client, err := kvstore.Connect(ctx, kvstore.RedisConfig{
			Addr: cfg.Storage.RedisAddr,
			DB:   cfg.Storage.RedisDB,
		})
		if err != nil {
			return nil, err
		}
		return kvstore.NewRedis(client, cfg.Storage.RedisPrefix), nil
	case "memory":
		return kvstore.NewMemory(), nil
	default:
		return kvstore.OpenBolt(cfg.Storage.BoltPath)
	}
}
