package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	server "boost_site/internal/adapters/http_server"
	"boost_site/internal/adapters/observability"
	redisad "boost_site/internal/adapters/redis"
	"boost_site/internal/app"
	"boost_site/internal/content"
	"boost_site/internal/domain"
	"boost_site/internal/shared"
	filestore "boost_site/internal/storage/file"
	sqlitestore "boost_site/internal/storage/sqlite"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve(cfg.MetricsAddr)

	store := openStore(cfg)
	defer store.Close()

	var cache domain.Cache = redisad.Nop{}
	if cfg.RedisAddr != "" {
		cache = redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		log.Info().Str("addr", cfg.RedisAddr).Msg("review list cache enabled")
	}

	// deps
	reviews := app.NewReviewService(store, cache, cfg.CacheTTL, cfg.AdminPassword)
	pages := app.NewContentService(content.Default())

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(
		&server.Handlers{Reviews: reviews, Content: pages},
		server.MutationLimit(cfg.MutationRPS, cfg.MutationBurst),
	)
	srv.MountSPA(server.NewSPA(cfg.StaticDir))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", cfg.HTTPAddr).Str("static", cfg.StaticDir).Msg("API listening")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("http server failed")
	}
	log.Info().Msg("server stopped")
}

func openStore(cfg shared.Config) domain.ReviewStore {
	switch cfg.StoreBackend {
	case "sqlite":
		repo, err := sqlitestore.Open(cfg.SQLitePath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.SQLitePath).Msg("open sqlite store failed")
		}
		log.Info().Str("path", cfg.SQLitePath).Msg("sqlite review store ready")
		return repo
	case "file":
		log.Info().Str("path", cfg.DataFile).Msg("file review store ready")
		return filestore.Open(cfg.DataFile)
	default:
		log.Fatal().Str("backend", cfg.StoreBackend).Msg("unknown STORE_BACKEND")
		return nil
	}
}
