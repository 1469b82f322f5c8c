package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	mongodrv "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"dispatch-board/config"
	"dispatch-board/internal/domain"
	repoInterface "dispatch-board/internal/repository/interface"
	mongorepo "dispatch-board/internal/repository/mongo"
	"dispatch-board/internal/repository/postgres"
	"dispatch-board/internal/service/session"
	"dispatch-board/internal/transport/api"
	"dispatch-board/internal/transport/middleware"
	"dispatch-board/internal/transport/web"
)

func main() {
	cfg := config.Load()

	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	// Connect to the upstream document store
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	client, err := mongodrv.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	source := mongorepo.NewRecordSource(client, mongorepo.Config{
		Database:               cfg.MongoDatabase,
		ReallocationCollection: cfg.ReallocationCollection,
		DispatchCollection:     cfg.DispatchCollection,
		ScheduleCollection:     cfg.ScheduleCollection,
	})

	// Load auditing is optional
	var audits repoInterface.LoadAuditRepository
	if cfg.DatabaseDSN != "" {
		db, err := sqlx.Connect("postgres", cfg.DatabaseDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer db.Close()

		if err := postgres.RunMigrations(db.DB); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}

		audits = postgres.NewLoadAuditRepository(db)
	}

	fetchTimeout, err := time.ParseDuration(cfg.FetchTimeout)
	if err != nil {
		fetchTimeout = 15 * time.Second
	}

	sess := session.New(source, audits, session.Config{
		FetchTimeout: fetchTimeout,
	})

	// Initial load runs in the background; the dashboard shows the loading
	// state until it settles.
	go func() {
		_ = sess.Refresh(context.Background(), domain.LoadCauseInitial)
	}()

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestLogger())
	e.Use(middleware.Recovery())
	e.Use(echomiddleware.CORS())

	authMiddleware := middleware.NewAuthMiddleware(cfg.JWTSecret)

	apiGroup := e.Group("/api/v1")
	api.SetupRoutes(apiGroup, sess, audits, authMiddleware, cfg.JWTSecret, cfg.OperatorPasswordHash)

	web.SetupRoutes(e, sess, authMiddleware)

	// Graceful shutdown
	go func() {
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("shutdown failed")
	}
}
