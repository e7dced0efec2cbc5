package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang-news-curator/internal/api/config"
	delivery "golang-news-curator/internal/api/delivery/http"
	_ "golang-news-curator/internal/api/docs"
	"golang-news-curator/internal/api/repository"
	"golang-news-curator/internal/api/service"
	"golang-news-curator/internal/news"
	"golang-news-curator/pkg/logger"
	"golang-news-curator/pkg/mysql"
	"golang-news-curator/pkg/redis"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	swagger "github.com/swaggo/echo-swagger"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the API service",
	Run:   runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	// Create a context that is canceled on interrupt signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting API Service", logger.Field("name", cfg.App.Name))

	// Initialize database
	mysqlCfg := mysql.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		DBName:          cfg.Database.DBName,
		Charset:         cfg.Database.Charset,
		TimeZone:        cfg.Database.TimeZone,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		LogLevel:        cfg.Database.LogLevel,
	}
	db, err := mysql.NewDB(mysqlCfg)
	if err != nil {
		appLogger.Fatal("Failed to initialize database", logger.ErrorField(err))
	}
	if sqlDB, err := db.DB.DB(); err == nil {
		defer sqlDB.Close()
	}

	// Initialize Redis
	redisCfg := redis.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	}
	redisClient, err := redis.NewClient(redisCfg)
	if err != nil {
		appLogger.Fatal("Failed to initialize Redis", logger.ErrorField(err))
	}
	defer redisClient.Close()

	// Initialize repositories
	scheduleRepo := repository.NewQualityScheduleRepository(db.DB)
	historyRepo := repository.NewQualityPassHistoryRepository(db.DB)

	// Initialize services
	publisher := service.NewRedisPassPublisher(redisClient.Client, cfg.Redis.StreamMaxLen)
	newsChain := news.NewChain(&cfg.News, appLogger)
	newsSvc := service.NewNewsService(cfg, newsChain, appLogger)
	passSvc := service.NewPassService(cfg, historyRepo, publisher, appLogger)
	scheduleSvc := service.NewScheduleService(scheduleRepo, appLogger)
	schedulerSvc := service.NewSchedulerService(cfg, scheduleRepo, historyRepo, publisher, appLogger)

	// Start scheduler service
	go schedulerSvc.Start(ctx)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true

	// Initialize handlers and routes
	newsHandler := delivery.NewNewsHandler(newsSvc)
	apiV1 := e.Group("/api/v1")
	newsGroup := apiV1.Group("/news")
	newsHandler.RegisterRoutes(newsGroup)

	passHandler := delivery.NewPassHandler(passSvc)
	passesGroup := apiV1.Group("/quality/passes")
	passHandler.RegisterRoutes(passesGroup)

	scheduleHandler := delivery.NewScheduleHandler(scheduleSvc)
	schedulesGroup := apiV1.Group("/quality/schedules")
	scheduleHandler.RegisterRoutes(schedulesGroup)

	e.GET("/swagger/*", swagger.WrapHandler)

	// Start server
	go func() {
		addr := fmt.Sprintf(":%d", cfg.API.Port)
		appLogger.Info("HTTP server starting", logger.Field("address", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop() // trigger shutdown
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()

	appLogger.Info("Shutting down server...")

	// Gracefully shutdown the server
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", logger.ErrorField(err))
	}

	appLogger.Info("Server exiting")
}

// @title News Curator API
// @version 1.0
// @description API for enriched stock news retrieval and database quality passes.
// @BasePath /api/v1
func main() {
	rootCmd := &cobra.Command{Use: "api-service"}

	serveCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config-api.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing api-service CLI: %s\n", err)
		os.Exit(1)
	}
}
