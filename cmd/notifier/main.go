package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	notifhandler "github.com/timetrackly/notifier/internal/api/handlers/notification"
	settingshandler "github.com/timetrackly/notifier/internal/api/handlers/settings"
	"github.com/timetrackly/notifier/internal/api/router"
	"github.com/timetrackly/notifier/internal/api/server"
	"github.com/timetrackly/notifier/internal/config"
	"github.com/timetrackly/notifier/internal/rescheduler"
	notifrepo "github.com/timetrackly/notifier/internal/repository/notification"
	settingsrepo "github.com/timetrackly/notifier/internal/repository/settings"
	notifsvc "github.com/timetrackly/notifier/internal/service/notification"
	settingssvc "github.com/timetrackly/notifier/internal/service/settings"
	"github.com/timetrackly/notifier/internal/worker"
	"github.com/timetrackly/notifier/pkg/email"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	val := validator.New()

	opts := &dbpg.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	slaveDSNs := make([]string, 0, len(cfg.Database.Slaves))
	for _, s := range cfg.Database.Slaves {
		slaveDSNs = append(slaveDSNs, s.DSN())
	}

	db, err := dbpg.New(cfg.Database.Master.DSN(), slaveDSNs, opts)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	dbNum, err := strconv.Atoi(cfg.Redis.Database)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse redis database")
	}

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, dbNum)
	if err = rdb.Ping(ctx).Err(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	smtpPort, err := strconv.Atoi(cfg.Email.SMTPPort)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse email smtp port")
	}

	emailClient := email.NewClient(
		cfg.Email.SMTPHost,
		smtpPort,
		cfg.Email.Username,
		cfg.Email.Password,
		cfg.Email.From,
		cfg.Email.Timeout,
	)
	if err := emailClient.Open(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to smtp server")
	}

	notificationRepo := notifrepo.NewRepository(db)
	scheduleRepo := settingsrepo.NewRepository(db)

	resched := rescheduler.New(notificationRepo)

	notificationService := notifsvc.NewService(notificationRepo, rdb)
	settingsService := settingssvc.NewService(scheduleRepo, resched, rdb)

	deliveryWorker := worker.NewWorker(notificationRepo, emailClient, worker.Config{
		BatchSize:    cfg.Worker.BatchSize,
		MaxPerRun:    cfg.Worker.MaxPerRun,
		TickInterval: cfg.Worker.TickInterval,
	})

	workerDone := make(chan struct{})
	go func() {
		defer close(workerDone)
		deliveryWorker.Run(ctx)
	}()

	notificationHandler := notifhandler.NewHandler(notificationService, val, cfg)
	scheduleHandler := settingshandler.NewHandler(settingsService, cfg)

	r := router.New(notificationHandler, scheduleHandler)
	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	// Let the in-flight batch finish before closing shared resources.
	select {
	case <-workerDone:
	case <-shutdownCtx.Done():
		zlog.Logger.Warn().Msg("timed out waiting for delivery worker")
	}

	if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
		zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
	}

	if err := emailClient.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close smtp connection")
	}

	if err := db.Master.Close(); err != nil {
		zlog.Logger.Printf("failed to close master DB: %v", err)
	}

	for i, slave := range db.Slaves {
		if err := slave.Close(); err != nil {
			zlog.Logger.Printf("failed to close slave DB %d: %v", i, err)
		}
	}
}
