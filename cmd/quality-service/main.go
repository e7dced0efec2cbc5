package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"golang-news-curator/internal/entity"
	"golang-news-curator/internal/news"
	"golang-news-curator/internal/quality/config"
	"golang-news-curator/internal/quality/delivery/consumer"
	"golang-news-curator/internal/quality/repository"
	"golang-news-curator/internal/quality/service"
	"golang-news-curator/internal/quality/strategy"
	"golang-news-curator/pkg/common"
	"golang-news-curator/pkg/logger"
	"golang-news-curator/pkg/mysql"
	"golang-news-curator/pkg/redis"
	"golang-news-curator/pkg/telegram"

	"google.golang.org/genai"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath string
	runTable   string
	runLimit   int
	runDryRun  bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the quality service",
	Run:   runServe,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a single quality pass and exit",
	Run:   runOnce,
}

func runServe(cmd *cobra.Command, args []string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting Quality Service", zap.String("name", cfg.App.Name))

	db := newDatabase(cfg, appLogger)
	if sqlDB, err := db.DB.DB(); err == nil {
		defer sqlDB.Close()
	}

	redisCfg := redis.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	}
	redisClient, err := redis.NewClient(redisCfg)
	if err != nil {
		appLogger.Fatal("Failed to initialize Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Create the consumer group if it doesn't exist
	// MKSTREAM creates the stream if it doesn't exist
	if err := redisClient.XGroupCreateMkStream(context.Background(), common.RedisStreamQualityPassExecution, common.RedisStreamGroup, "0").Err(); err != nil {
		if err.Error() != "BUSYGROUP Consumer Group name already exists" {
			appLogger.Fatal("Failed to create consumer group", logger.ErrorField(err))
		}
	}

	historyRepo := repository.NewQualityPassHistoryRepository(db.DB)
	newsRepo := repository.NewNewsRecordRepository(db.DB)
	sentimentRepo, err := repository.NewSentimentRecordRepository(db.DB)
	if err != nil {
		appLogger.Fatal("Failed to initialize sentiment repository", zap.Error(err))
	}
	signalRepo := repository.NewSignalRecordRepository(db.DB)

	aiRepo := newAIRepository(cfg, appLogger)

	telegramNotifier, err := telegram.NewClient(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
	if err != nil {
		appLogger.Fatal("Failed to initialize Telegram notifier", zap.Error(err))
	}

	newsChain := news.NewChain(&cfg.News, appLogger)

	strategies := []strategy.RemediationStrategy{
		strategy.NewNewsRemediationStrategy(cfg, appLogger, newsRepo, aiRepo, newsChain),
		strategy.NewSentimentRemediationStrategy(cfg, appLogger, sentimentRepo, aiRepo),
		strategy.NewSignalRemediationStrategy(cfg, appLogger, signalRepo, aiRepo),
	}

	qualitySvc := service.NewQualityService(cfg, redisClient.Client, historyRepo, newsRepo, sentimentRepo, signalRepo, telegramNotifier, appLogger, strategies)

	redisConsumer := consumer.NewRedisConsumer(cfg, qualitySvc, appLogger)
	redisConsumer.Start(ctx)

	appLogger.Info("Quality service started. Waiting for passes...")

	// Wait for interrupt signal to gracefully shut down the service
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down quality service...")
	cancel()
	redisConsumer.Stop()
	appLogger.Info("Quality service stopped.")
}

func runOnce(cmd *cobra.Command, args []string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	db := newDatabase(cfg, appLogger)
	if sqlDB, err := db.DB.DB(); err == nil {
		defer sqlDB.Close()
	}

	historyRepo := repository.NewQualityPassHistoryRepository(db.DB)
	newsRepo := repository.NewNewsRecordRepository(db.DB)
	sentimentRepo, err := repository.NewSentimentRecordRepository(db.DB)
	if err != nil {
		appLogger.Fatal("Failed to initialize sentiment repository", zap.Error(err))
	}
	signalRepo := repository.NewSignalRecordRepository(db.DB)

	aiRepo := newAIRepository(cfg, appLogger)
	newsChain := news.NewChain(&cfg.News, appLogger)

	strategies := []strategy.RemediationStrategy{
		strategy.NewNewsRemediationStrategy(cfg, appLogger, newsRepo, aiRepo, newsChain),
		strategy.NewSentimentRemediationStrategy(cfg, appLogger, sentimentRepo, aiRepo),
		strategy.NewSignalRemediationStrategy(cfg, appLogger, signalRepo, aiRepo),
	}

	// The one-shot path runs the pass in-process, so the Redis stream and
	// the Telegram notifier are left unwired.
	qualitySvc := service.NewQualityService(cfg, nil, historyRepo, newsRepo, sentimentRepo, signalRepo, nil, appLogger, strategies)

	result, err := qualitySvc.RunPass(ctx, entity.QualityTable(runTable), runLimit, runDryRun)
	if err != nil {
		appLogger.Fatal("Quality pass failed", zap.Error(err))
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		appLogger.Fatal("Failed to encode quality pass result", zap.Error(err))
	}
	fmt.Println(string(out))
}

func newDatabase(cfg *config.Config, appLogger *logger.Logger) *mysql.DB {
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
		appLogger.Fatal("Failed to initialize database", zap.Error(err))
	}
	return db
}

func newAIRepository(cfg *config.Config, appLogger *logger.Logger) repository.AIRepository {
	switch cfg.AI.Provider {
	case "gemini":
		genAiClient, err := genai.NewClient(context.Background(), &genai.ClientConfig{
			APIKey: cfg.Gemini.APIKey,
		})
		if err != nil {
			appLogger.Fatal("Failed to initialize Gemini AI client", zap.Error(err))
		}
		repo, err := repository.NewGeminiAIRepository(cfg, appLogger, genAiClient)
		if err != nil {
			appLogger.Fatal("Failed to initialize Gemini AI repository", zap.Error(err))
		}
		return repo
	case "openai":
		repo, err := repository.NewOpenAIRepository(cfg, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to initialize OpenAI repository", zap.Error(err))
		}
		return repo
	default:
		appLogger.Fatal("Invalid AI provider specified in config", zap.String("provider", cfg.AI.Provider))
		return nil
	}
}

func main() {
	rootCmd := &cobra.Command{Use: "quality-service"}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "configs/config-quality.yaml", "Path to the configuration file")

	runCmd.Flags().StringVar(&runTable, "table", "all", "Table to run the pass against (news, sentiment, signals, all)")
	runCmd.Flags().IntVar(&runLimit, "limit", 0, "Maximum records to inspect per table (0 uses the service default)")
	runCmd.Flags().BoolVar(&runDryRun, "dry-run", false, "Count deficient records without modifying them")

	rootCmd.AddCommand(serveCmd, runCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing quality-service CLI: %s\n", err)
		os.Exit(1)
	}
}
