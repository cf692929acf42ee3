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

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/thingsconsole/audit"
	"github.com/dev-mohitbeniwal/thingsconsole/config"
	"github.com/dev-mohitbeniwal/thingsconsole/controller"
	"github.com/dev-mohitbeniwal/thingsconsole/db"
	logger "github.com/dev-mohitbeniwal/thingsconsole/logging"
	"github.com/dev-mohitbeniwal/thingsconsole/router"
	"github.com/dev-mohitbeniwal/thingsconsole/service"
	"github.com/dev-mohitbeniwal/thingsconsole/util"
)

func main() {
	// Initialize configuration
	if err := config.InitConfig(); err != nil {
		log.Fatalf("Failed to initialize config: %v", err)
	}
	cfg := config.GetConfig()

	// Initialize logger
	if err := logger.InitLogger(cfg.Server.LogDir); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Redis backs rate limiting, tracker locks and the persisted response log.
	// The console still runs without it.
	var rdb redis.Cmdable
	var locker db.Locker
	if cfg.Redis.Addr != "" {
		if err := db.InitRedis(cfg.Redis); err != nil {
			logger.Warn("Redis unavailable, continuing without it", zap.Error(err))
		} else {
			rdb = db.RedisClient
			locker = db.NewRedisLocker(db.RedisClient)
		}
		defer db.CloseRedis()
	}

	// Initialize EventBus
	eventBus := util.NewEventBus(0)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	eventBus.Start(ctx)

	order, err := audit.ParseOrder(cfg.ResponseLog.Order)
	if err != nil {
		logger.Fatal("Invalid response log order", zap.Error(err))
	}
	logOpts := []audit.Option{
		audit.WithOrder(order),
		audit.WithCapacity(cfg.ResponseLog.Capacity),
		audit.WithEventBus(eventBus),
	}

	var redisRepository *audit.RedisRepository
	if cfg.ResponseLog.Persist && rdb != nil {
		redisRepository = audit.NewRedisRepository(rdb, cfg.ResponseLog.RedisKey, order, cfg.ResponseLog.Capacity)
		logOpts = append(logOpts, audit.WithSink(redisRepository))
	}

	var history audit.Service
	if cfg.ResponseLog.Mirror && cfg.Elasticsearch.URL != "" {
		esRepository, err := audit.NewElasticsearchRepository(cfg.Elasticsearch.URL, cfg.Elasticsearch.Index)
		if err != nil {
			logger.Fatal("Failed to initialize Elasticsearch", zap.Error(err))
		}
		logOpts = append(logOpts, audit.WithSink(esRepository))
		history = audit.NewService(esRepository)
	}

	responseLog := audit.NewResponseLog(logOpts...)
	defer responseLog.Close()
	if redisRepository != nil {
		entries, err := redisRepository.Load(ctx)
		if err != nil {
			logger.Warn("Failed to restore response log", zap.Error(err))
		} else {
			responseLog.Restore(entries)
			logger.Info("Response log restored", zap.Int("entries", len(entries)))
		}
	}

	// Initialize services
	services, err := service.InitializeServices(cfg, responseLog, history, locker)
	if err != nil {
		logger.Fatal("Failed to initialize services", zap.Error(err))
	}
	if poller, ok := services.Inventory.(*service.Poller); ok {
		poller.Start(ctx)
		defer poller.Stop()
	}

	// Initialize controllers
	controllers := controller.InitializeControllers(services)

	// Set up Gin
	gin.SetMode(gin.ReleaseMode)
	engine := router.SetupRouter(controllers, rdb, cfg.Console)

	// Set up the server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: engine,
	}

	// Start the server in a goroutine
	go func() {
		logger.Info("Starting server", zap.String("port", cfg.Server.Port), zap.String("things", cfg.Things.BaseURL))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exiting")
}
