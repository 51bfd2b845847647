// @title        Proposal Intake API
// @version      1.0
// @description  User records, testimonial moderation and file-attached business proposals.
// @BasePath     /
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	_ "github.com/proposaldesk/intake-api/docs"
	"github.com/proposaldesk/intake-api/internal/api"
	"github.com/proposaldesk/intake-api/internal/api/handler"
	"github.com/proposaldesk/intake-api/internal/core/ports"
	"github.com/proposaldesk/intake-api/internal/core/service"
	"github.com/proposaldesk/intake-api/internal/infrastructure/db/mongo"
	"github.com/proposaldesk/intake-api/internal/infrastructure/db/redis"
	"github.com/proposaldesk/intake-api/internal/infrastructure/queue"
	"github.com/proposaldesk/intake-api/internal/infrastructure/storage"
	"github.com/proposaldesk/intake-api/internal/pkg/config"
	"github.com/proposaldesk/intake-api/pkg/logger"
)

func main() {
	// A missing .env is fine; the environment may already be populated.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Development(),
		Service: "intake-api",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Document store: failures are logged, the listener still starts ---
	gw, err := mongo.Open(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		Timeout:  cfg.Mongo.Timeout,
	})
	if err != nil {
		log.Error().Err(err).Msg("database connection failed; requests will fail until it recovers")
	} else {
		log.Info().Str("database", cfg.Mongo.Database).Msg("connected to MongoDB")
		if err := gw.EnsureIndexes(ctx); err != nil {
			log.Warn().Err(err).Msg("could not create indexes")
		}
	}

	checks := map[string]handler.Pinger{"mongodb": gw}

	// --- Notifications ---
	publisher := newPublisher(ctx, cfg, log, checks)
	dispatcher := queue.NewDispatcher(cfg.Notify.Workers, cfg.Notify.Buffer, publisher, logger.Component("dispatcher"))
	dispatcher.Start(context.Background())

	// --- Uploads ---
	files, err := storage.NewDiskStore(cfg.UploadDir)
	if err != nil {
		log.Fatal().Err(err).Msg("upload directory unavailable")
	}

	// --- Services ---
	users := mongo.NewUserRepository(gw)
	auth := service.NewAuthorizer(users, logger.Component("authorizer"))

	e := api.NewRouter(api.Deps{
		Users:        service.NewUserService(users, logger.Component("users")),
		Testimonials: service.NewTestimonialService(mongo.NewTestimonialRepository(gw), auth, logger.Component("testimonials")),
		Proposals:    service.NewProposalService(mongo.NewProposalRepository(gw), auth, dispatcher, logger.Component("proposals")),
		Files:        files,
		UploadDir:    cfg.UploadDir,
		Checks:       checks,
		Log:          log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server stopped unexpectedly")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown failed")
	}
	dispatcher.Stop()
	if c, ok := publisher.(interface{ Close() error }); ok {
		_ = c.Close()
	}
	if err := gw.Disconnect(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("mongo disconnect failed")
	}
	log.Info().Msg("shutdown complete")
}

// newPublisher returns a Redis publisher when REDIS_ADDR is set and reachable,
// and a log-only publisher otherwise.
func newPublisher(ctx context.Context, cfg *config.Config, log zerolog.Logger, checks map[string]handler.Pinger) ports.ProposalPublisher {
	if cfg.Redis.Addr == "" {
		log.Info().Msg("REDIS_ADDR not set; proposal notifications are logged only")
		return queue.NewLogPublisher(logger.Component("notifications"))
	}

	client, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis unreachable; proposal notifications are logged only")
		return queue.NewLogPublisher(logger.Component("notifications"))
	}

	p := redis.NewPublisher(client, cfg.Redis.Channel)
	checks["redis"] = p
	log.Info().Str("channel", cfg.Redis.Channel).Msg("publishing proposal notifications to redis")
	return p
}
