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

	goredis "github.com/redis/go-redis/v9"

	"github.com/primelabel/labelview/internal/api"
	"github.com/primelabel/labelview/internal/core/service"
	"github.com/primelabel/labelview/internal/gateway"
	"github.com/primelabel/labelview/internal/infrastructure/config"
	"github.com/primelabel/labelview/internal/infrastructure/db/redis"
	"github.com/primelabel/labelview/internal/session"
	"github.com/primelabel/labelview/internal/speech"
	"github.com/primelabel/labelview/pkg/logger"
)

func main() {
	cfg := config.Load(slog.Default())

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
	})
	log.Info().Str("env", cfg.Env).Msg("starting labelview")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Session store ---
	var (
		store session.Store
		rdb   *goredis.Client
	)
	switch cfg.Session.Backend {
	case "redis":
		var err error
		rdb, err = redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connect failed")
		}
		defer rdb.Close()
		store = redis.NewSessionStore(rdb, cfg.Session.TTL)
	default:
		store = session.NewMemoryStore(cfg.Session.TTL)
	}

	// --- Upstream client ---
	upstream, err := gateway.New(gateway.Config{
		BaseURLs: cfg.APIBaseURLs,
		Timeout:  cfg.UpstreamTimeout,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("gateway setup failed")
	}
	// Host selection runs in the background; requests issued before it
	// finishes use the primary and rely on per-request failover.
	go upstream.ResolveBaseURL(ctx)

	// --- Read-aloud engine ---
	voices := speech.ParseVoices(cfg.Speech.Voices)
	synth := speech.NewCommandSynthesizer(cfg.Speech.Command, voices)
	speaker := speech.NewSpeaker(synth, log)

	// --- Services and sessions ---
	labels := service.NewLabelService(upstream, log)
	auth := service.NewAuthService(upstream, log)
	sessions := session.NewManager(store, auth.TokenExpired, cfg.IsProduction(), cfg.Session.TTL, log)

	e := api.NewRouter(cfg, upstream, labels, auth, sessions, speaker, rdb)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	speaker.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("http server shutdown failed")
	}
}
