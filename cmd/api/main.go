// @title                      Kazi Job Board API
// @version                    1.0
// @description                Job board for informal work: employers post jobs, employees apply.
// @BasePath                   /
// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
// @description                Type "Bearer" followed by a space and the JWT.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/kazimashinani/jobboard/internal/api"
	"github.com/kazimashinani/jobboard/internal/core/auth"
	"github.com/kazimashinani/jobboard/internal/core/service"
	"github.com/kazimashinani/jobboard/internal/infrastructure/db/mongo"
	"github.com/kazimashinani/jobboard/internal/infrastructure/db/redis"
	infrahttp "github.com/kazimashinani/jobboard/internal/infrastructure/http"
	"github.com/kazimashinani/jobboard/internal/infrastructure/http/handlers"
	"github.com/kazimashinani/jobboard/internal/infrastructure/queue"
	"github.com/kazimashinani/jobboard/internal/pkg/config"
	"github.com/kazimashinani/jobboard/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.MustLoad(ctx)
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
	})

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
	log.Info().Msg("server stopped")
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		Timeout:  cfg.Mongo.Timeout,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect")
		}
	}()

	redisClient, err := redis.Connect(ctx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return err
	}
	defer redisClient.Close()

	identities := mongo.NewIdentityRepository(db)
	jobs := mongo.NewJobRepository(db)
	applications := mongo.NewApplicationRepository(db)
	if err := mongo.EnsureIndexes(ctx, identities, jobs, applications); err != nil {
		return err
	}

	credentials, err := auth.NewCredentialStore(cfg.Auth.BcryptCost)
	if err != nil {
		return err
	}
	tokens, err := auth.NewTokenService(auth.TokenConfig{
		Secret: cfg.Auth.JWTSecret,
		TTL:    cfg.Auth.TokenTTL,
	})
	if err != nil {
		return err
	}

	views := service.NewViewService(jobs, redis.NewViewDedup(redisClient, cfg.Views.DedupTTL), log)
	dispatcher := queue.NewDispatcher(cfg.Views.Workers, views, log)
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	dispatcher.Start(workerCtx)
	defer func() {
		stopWorkers()
		dispatcher.Wait()
	}()

	e := api.NewRouter(api.Deps{
		Log:          log,
		Auth:         service.NewAuthService(identities, credentials, tokens, log),
		Gate:         auth.NewGate(tokens, identities),
		Jobs:         service.NewJobService(jobs, log),
		Applications: service.NewApplicationService(jobs, applications, log),
		Views:        dispatcher,
		Checks:       []handlers.Check{handlers.MongoCheck(db), handlers.RedisCheck(redisClient)},
		CORSOrigins:  cfg.CORSOrigins,
	})

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
	return infrahttp.NewServer(e, ":"+cfg.Port, log).Run(ctx)
}
