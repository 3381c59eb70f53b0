package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iliyamo/cine-app/internal/config"
	"github.com/iliyamo/cine-app/internal/handler"
	"github.com/iliyamo/cine-app/internal/middleware"
	"github.com/iliyamo/cine-app/internal/omdb"
	"github.com/iliyamo/cine-app/internal/router"
	"github.com/iliyamo/cine-app/internal/seating"
	"github.com/iliyamo/cine-app/internal/service"
	"github.com/iliyamo/cine-app/internal/session"
	"github.com/iliyamo/cine-app/internal/view"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

func serve(ctx context.Context) error {
	cfg, log := setup()
	defer func() { _ = log.Sync() }()

	cat, err := loadCatalog(ctx, cfg, log)
	if err != nil {
		return err
	}

	// Redis is optional: without it sessions stay in memory and the cache
	// and rate limiter step aside.
	rdb := config.NewRedisClient()
	var sessions session.Store
	if rdb != nil {
		defer rdb.Close()
		sessions = session.NewRedisStore(rdb, config.SessionPrefix(), cfg.SeatSessionTTL)
		log.Info("seat sessions stored in redis", zap.String("prefix", config.SessionPrefix()))
	} else {
		sessions = session.NewMemoryStore(cfg.SeatSessionTTL)
		log.Info("redis unavailable; seat sessions kept in memory")
	}

	var pub handler.Publisher = service.NopPublisher{}
	if cfg.BookingEventsEnabled {
		pub = service.NewBookingPublisher(cfg.AMQPURL, log)
	}

	movies := omdb.NewClient(cfg.OMDbBaseURL, cfg.OMDbAPIKey, cfg.OMDbTimeout, nil, log)
	occ := seating.NewRandomOccupancy(nil, cfg.SeatOccupancyRatio)

	renderer, err := view.New()
	if err != nil {
		return err
	}
	e := router.New(router.Options{
		Pages:     handler.NewPageHandler(movies, cat, sessions, occ, pub, log),
		Public:    &handler.PublicHandler{Catalog: cat},
		Health:    &handler.HealthHandler{Redis: rdb},
		Renderer:  renderer,
		Cache:     middleware.NewRedisCache(config.LoadCacheConfig(), rdb),
		RateLimit: middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb, log),
		Log:       log,
	})

	addr := ":" + cfg.Port
	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", addr), zap.String("env", cfg.Env))
		errCh <- e.Start(addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(sctx)
}
