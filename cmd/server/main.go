package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"yourlinks/internal/config"
	"yourlinks/internal/handler"
	"yourlinks/internal/model"
	"yourlinks/internal/mq"
	"yourlinks/internal/repository"
	"yourlinks/internal/service"
	"yourlinks/pkg/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title YourLinks Redirect Engine API
// @version 1.0
// @description Multi-tenant link redirect service with click tracking

// @host localhost:8080
// @BasePath /
func main() {
	// Load configuration
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Setup logger
	setupLogger(cfg.Server.Mode)

	// Initialize repositories
	redisRepo := repository.NewRedisRepository(&cfg.Database.Redis)
	defer redisRepo.Close()

	mysqlRepo := repository.NewMySQLRepository(&cfg.Database.MySQL)
	defer mysqlRepo.Close()

	// Initialize MQ (optional, can be nil)
	var mqProducer *mq.Producer
	if cfg.RocketMQ.NameServer != "" {
		mqProducer, err = mq.NewProducer(&cfg.RocketMQ)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to initialize RocketMQ producer, running without MQ")
		}
	}

	// Initialize services
	hostResolver := service.NewHostResolver(mysqlRepo, redisRepo, cfg.Server.RootDomain, cfg.Cache.DomainTTL)
	linkSvc := service.NewLinkService(mysqlRepo, redisRepo, cfg.Cache.LinkTTL, cfg.Profile.BaseURL)
	statsSvc := service.NewStatsService(mysqlRepo, redisRepo)

	// A typed nil producer must not end up inside the interface value.
	var clickProducer mq.ProducerInterface
	if mqProducer != nil {
		clickProducer = mqProducer
	}
	clickSvc := service.NewClickService(mysqlRepo, redisRepo, clickProducer)

	// Setup Gin
	gin.SetMode(cfg.Server.Mode)
	router := gin.New()

	// Middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	// Templates for the landing page and custom link pages
	router.LoadHTMLGlob("templates/*")

	// Registered paths are reserved on every host: api/v1, metrics, swagger
	// and health shadow tenant links of the same name.
	v1 := router.Group("/api/v1")
	{
		statsHandler := handler.NewStatsHandler(statsSvc)
		v1.GET("/stats/:username/:linkName", statsHandler.GetStats)
	}

	// Every unclaimed route is a candidate redirect: the handler resolves
	// host to tenant and path to link.
	redirectHandler := handler.NewRedirectHandler(hostResolver, linkSvc, clickSvc)
	router.NoRoute(redirectHandler.Resolve)

	// Metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger documentation
	setupSwagger(router)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// Start MQ consumer if configured
	var mqConsumer *mq.Consumer
	if cfg.RocketMQ.NameServer != "" {
		// Create consumer with handler that persists click events to MySQL
		mqConsumer, err = mq.NewConsumer(&cfg.RocketMQ, func(ctx context.Context, msg *mq.ClickEventMessage) error {
			ev := &model.ClickEvent{
				LinkID:        msg.LinkID,
				IPAddress:     msg.IPAddress,
				UserAgent:     msg.UserAgent,
				Referrer:      msg.Referrer,
				IsExpired:     msg.IsExpired,
				IsDeactivated: msg.IsDeactivated,
				ClickedAt:     msg.ClickedAt,
			}
			return mysqlRepo.SaveClickEvent(ctx, ev)
		})

		if err != nil {
			log.Warn().Err(err).Msg("Failed to initialize RocketMQ consumer")
		} else {
			go func() {
				if err := mqConsumer.Subscribe(); err != nil {
					log.Error().Err(err).Msg("Failed to subscribe to RocketMQ")
				}
			}()
			defer mqConsumer.Close()
		}
	}

	// Start server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Msgf("Starting server on port %d", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Close producer
	if mqProducer != nil {
		mqProducer.Close()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// setupLogger configures the logger
func setupLogger(mode string) {
	if mode == "release" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	// Use console writer for pretty output
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
}

// setupSwagger sets up Swagger UI
func setupSwagger(router *gin.Engine) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
