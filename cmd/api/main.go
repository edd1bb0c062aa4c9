package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "HealthyHabits/docs"
	"HealthyHabits/internal/archiver"
	"HealthyHabits/internal/config"
	"HealthyHabits/internal/handler"
	"HealthyHabits/internal/localization"
	"HealthyHabits/internal/logger"
	"HealthyHabits/internal/middleware"
	"HealthyHabits/internal/storage"
)

// @title        HealthyHabits API
// @version      1.0
// @description  Health profiles with personalized lifestyle recommendations in English and Hindi.
// @host         localhost:8080
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer zapLogger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := storage.Open(ctx, cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("failed to open profile store", zap.Error(err))
	}
	defer store.Close()

	// 데모 예시 파일은 실행할 때마다 덮어씀
	if err := archiver.WriteDemoExamples(cfg.Export.DemoExamplesPath); err != nil {
		zapLogger.Warn("demo examples not written", zap.String("path", cfg.Export.DemoExamplesPath), zap.Error(err))
	}

	localizer := localization.NewLocalizer(localization.NewCapability(ctx, cfg.Translation, zapLogger), zapLogger)

	gin.SetMode(cfg.Server.GinMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(zapLogger))
	router.Use(cors.New(corsConfig(cfg.Server.AllowedOrigins)))
	router.Use(middleware.RateLimit(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst))

	handler.New(store, localizer, zapLogger).Register(router)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  time.Minute,
	}

	go func() {
		zapLogger.Info("server listening",
			zap.String("addr", srv.Addr),
			zap.Bool("translation_available", localizer.Available()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("http server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	stop()
	zapLogger.Info("shutting down gracefully, press Ctrl+C again to force")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("server forced to shutdown", zap.Error(err))
	}
	zapLogger.Info("server exiting")
}

func corsConfig(origins []string) cors.Config {
	c := cors.DefaultConfig()
	if len(origins) == 0 {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	c.AllowHeaders = append(c.AllowHeaders, middleware.RequestIDHeader)
	c.ExposeHeaders = append(c.ExposeHeaders, middleware.RequestIDHeader, "Content-Disposition")
	return c
}
