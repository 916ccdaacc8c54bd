// Command consoled runs the CRM console API service: REST endpoints, the
// live notification channel, and Prometheus metrics.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mhd-interiors/crm-console/internal/api"
	"github.com/mhd-interiors/crm-console/internal/api/handler"
	"github.com/mhd-interiors/crm-console/internal/core/service"
	"github.com/mhd-interiors/crm-console/internal/infrastructure/config"
	"github.com/mhd-interiors/crm-console/internal/infrastructure/db/mongo"
	"github.com/mhd-interiors/crm-console/internal/infrastructure/db/redis"
	"github.com/mhd-interiors/crm-console/internal/push"
	"github.com/mhd-interiors/crm-console/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	redisClient, err := redis.Connect(ctx, redis.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		_ = redisClient.Close()
	}()

	customerRepo := mongo.NewCustomerRepository(db)
	userRepo := mongo.NewUserRepository(db)
	inquiryRepo := mongo.NewInquiryRepository(db)
	roleRepo := mongo.NewRoleRepository(db)
	measurementRepo := mongo.NewMeasurementRepository(db)
	notificationRepo := mongo.NewNotificationRepository(db)

	if err := customerRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("customer indexes failed")
	}
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user indexes failed")
	}

	hub := push.NewHub(log)
	sentMarker := redis.NewSentMarker(redisClient)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, time.Duration(cfg.TokenTTL)*time.Hour)
	customerService := service.NewCustomerService(customerRepo, log)
	inquiryService := service.NewInquiryService(inquiryRepo, log)
	userService := service.NewUserService(userRepo, log)
	roleService := service.NewRoleService(roleRepo, userRepo, log)
	notificationService := service.NewNotificationService(notificationRepo, hub, sentMarker, log)
	measurementService := service.NewMeasurementService(measurementRepo, notificationService, log)

	e := api.NewRouter(api.Handlers{
		Auth:         handler.NewAuthHandler(authService),
		Customer:     handler.NewCustomerHandler(customerService),
		Inquiry:      handler.NewInquiryHandler(inquiryService),
		User:         handler.NewUserHandler(userService),
		Role:         handler.NewRoleHandler(roleService),
		Measurement:  handler.NewMeasurementHandler(measurementService),
		Notification: handler.NewNotificationHandler(notificationService),
		Health:       handler.NewHealthHandler(mongoClient, redisClient),
		WS:           handler.NewWSHandler(hub, log),
	}, cfg.JWTSecret, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("console API listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown incomplete")
		os.Exit(1)
	}
}
