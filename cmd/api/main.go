package main

import (
	"context"
	"fmt"
	"time"

	"analytics-srv/config"
	"analytics-srv/internal/httpserver"
	"analytics-srv/pkg/discord"
	pkgHTTP "analytics-srv/pkg/http"
	"analytics-srv/pkg/kafka"
	"analytics-srv/pkg/log"
	pkgRedis "analytics-srv/pkg/redis"
	pkgSolr "analytics-srv/pkg/solr"
	"analytics-srv/pkg/stopwords"
)

// @title       SMAP Analytics Service API
// @description Analytics layer in front of the social media document index.
// @version     1
// @BasePath    /
func main() {
	// 1. Load configuration
	// Reads config from YAML file and environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	// 3. Initialize Discord (optional)
	discordClient, err := discord.New(logger, &discord.DiscordWebhook{
		ID:    cfg.Discord.WebhookID,
		Token: cfg.Discord.WebhookToken,
	})
	if err != nil {
		logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		discordClient = nil // Continue without Discord
	} else {
		logger.Infof(ctx, "Discord webhook initialized successfully")
	}

	// 4. Initialize Solr client
	solrClient := pkgSolr.New(logger, pkgHTTP.NewClient(pkgHTTP.ClientConfig{
		Timeout:   60 * time.Second,
		Retries:   2,
		RetryWait: time.Second,
	}), pkgSolr.Config{
		BaseURL: cfg.Solr.BaseURL,
		Port:    cfg.Solr.Port,
		Cores:   cfg.Solr.Cores,
	})
	logger.Infof(ctx, "Solr client initialized for %s:%d (%d cores)", cfg.Solr.BaseURL, cfg.Solr.Port, len(cfg.Solr.Cores))

	// 5. Load stopwords
	stop, err := stopwords.Load(cfg.Stopwords.Path)
	if err != nil {
		logger.Warnf(ctx, "Failed to load stopwords from %q: %v", cfg.Stopwords.Path, err)
	} else if stop.Len() > 0 {
		logger.Infof(ctx, "Loaded %d stopwords", stop.Len())
	}

	// 6. Initialize Redis (optional, report caching)
	var redisClient pkgRedis.IRedis
	if cfg.Redis.Enabled {
		redisClient, err = pkgRedis.New(pkgRedis.Config{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			logger.Error(ctx, "Failed to connect to Redis: ", err)
			return
		}
		defer redisClient.Close()
		logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)
	}

	// 7. Initialize Kafka producer (optional, extraction events)
	var producer kafka.IProducer
	if len(cfg.Kafka.Brokers) > 0 {
		producer, err = kafka.NewProducer(kafka.Config{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
		})
		if err != nil {
			logger.Warnf(ctx, "Kafka producer not available (optional): %v", err)
			producer = nil
		} else {
			defer producer.Close()
			logger.Infof(ctx, "Kafka producer connected to %v (topic %s)", cfg.Kafka.Brokers, cfg.Kafka.Topic)
		}
	}

	// 8. Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		// Index Configuration
		SolrClient: solrClient,
		Stopwords:  stop,

		// Cache Configuration (optional)
		RedisClient: redisClient,

		// Event Bus Configuration (optional)
		Producer: producer,

		// Service Configuration
		Config: cfg,

		// Monitoring & Notification Configuration
		Discord: discordClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}
