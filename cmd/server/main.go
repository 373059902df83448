package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"life-go/internal/config"
	"life-go/internal/models"
	"life-go/internal/router"
	"life-go/internal/utils"
	"life-go/pkg/redis_limiter"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 10 * time.Second

func main() {
	defaultPath := os.Getenv("LIFE_CONFIG")
	if defaultPath == "" {
		defaultPath = "./config/config.yaml"
	}
	configPath := flag.String("config", defaultPath, "path to the YAML config file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := newLogger(cfg.Log)

	if err := models.InitDB(cfg); err != nil {
		logger.WithError(err).Fatal("init database")
	}
	db := models.GetDB()
	defer func() {
		if err := models.Close(db); err != nil {
			logger.WithError(err).Error("close database")
		}
	}()

	var limiter *redis_limiter.RedisLimiter
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddress(),
			DB:       cfg.Redis.DB,
			Password: cfg.Redis.Password,
		})
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			logger.WithError(err).Warn("redis unreachable, rate limiter will fail open")
		}
		cancel()

		limiter = redis_limiter.NewRedisLimiter(
			redisClient,
			cfg.RateLimit.Requests,
			"life:ratelimit:",
			cfg.RateLimit.GetWindow(),
			logger,
		)
	}

	jwtManager := utils.NewJWTManager(
		cfg.JWT.SecretKey,
		cfg.JWT.Algorithm,
		cfg.JWT.GetExpireDuration(),
	)

	r, err := router.SetupRouter(cfg, jwtManager, logger, db, limiter)
	if err != nil {
		logger.WithError(err).Fatal("setup router")
	}

	srv := &http.Server{
		Addr:         cfg.Server.GetAddress(),
		Handler:      r,
		ReadTimeout:  cfg.Server.GetReadTimeout(),
		WriteTimeout: cfg.Server.GetWriteTimeout(),
	}

	go func() {
		logger.WithFields(logrus.Fields{
			"addr":       srv.Addr,
			"db_driver":  cfg.Database.Driver,
			"rate_limit": limiter != nil,
		}).Info("server starting")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	logger.WithField("signal", sig.String()).Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("graceful shutdown failed")
	}
	logger.Info("server exited")
}

func newLogger(cfg config.LogConfig) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	if cfg.Format == "text" {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}
