package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Solr - Document index
	Solr SolrConfig

	// Stopwords - Token filtering
	Stopwords StopwordsConfig

	// Redis - Report caching
	Redis RedisConfig

	// Kafka - Extraction events
	Kafka KafkaConfig

	// Report - Generator tuning
	Report ReportConfig

	// Monitoring & Notification Configuration
	Discord DiscordConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// SolrConfig is the configuration for the Solr index
type SolrConfig struct {
	BaseURL string
	Port    int
	Cores   []string
}

// StopwordsConfig points at the stopword list on disk
type StopwordsConfig struct {
	Path string
}

// KafkaConfig is the configuration for Kafka
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// RedisConfig is the configuration for Redis
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	Enabled  bool
}

// ReportConfig tunes the report generator
type ReportConfig struct {
	Limit       int
	TopN        int
	CacheTTLSec int
}

// HTTPServerConfig is the configuration for the HTTP server
type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type DiscordConfig struct {
	WebhookID    string
	WebhookToken string
}

// Load loads configuration using Viper
func Load() (*Config, error) {
	// Set config file name and paths
	viper.SetConfigName("analytics-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/smap/")

	// Enable environment variable override
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set defaults
	setDefaults()

	// Read config file (optional - will use env vars if file not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Host = viper.GetString("http_server.host")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Solr
	cfg.Solr.BaseURL = viper.GetString("solr.base_url")
	cfg.Solr.Port = viper.GetInt("solr.port")
	cfg.Solr.Cores = viper.GetStringSlice("solr.cores")

	// Stopwords
	cfg.Stopwords.Path = viper.GetString("stopwords.path")

	// Redis - Report caching (optional)
	cfg.Redis.Host = viper.GetString("redis.host")
	cfg.Redis.Port = viper.GetInt("redis.port")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")
	cfg.Redis.Enabled = viper.GetBool("redis.enabled")

	// Kafka - Extraction events (optional)
	cfg.Kafka.Brokers = viper.GetStringSlice("kafka.brokers")
	cfg.Kafka.Topic = viper.GetString("kafka.topic")

	// Report generator
	cfg.Report.Limit = viper.GetInt("report.limit")
	cfg.Report.TopN = viper.GetInt("report.top_n")
	cfg.Report.CacheTTLSec = viper.GetInt("report.cache_ttl")

	// Discord
	cfg.Discord.WebhookID = viper.GetString("discord.webhook_id")
	cfg.Discord.WebhookToken = viper.GetString("discord.webhook_token")

	// Validate required fields
	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	// Environment
	viper.SetDefault("environment.name", "production")

	// HTTP Server
	viper.SetDefault("http_server.host", "")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")

	// Logger
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// 1. Solr
	viper.SetDefault("solr.base_url", "http://localhost")
	viper.SetDefault("solr.port", 8983)
	viper.SetDefault("solr.cores", []string{})

	// 2. Stopwords
	viper.SetDefault("stopwords.path", "")

	// 3. Redis
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.enabled", false)

	// 4. Kafka (topic per specs: analytics.events)
	viper.SetDefault("kafka.brokers", []string{})
	viper.SetDefault("kafka.topic", "analytics.events")

	// 5. Report generator
	viper.SetDefault("report.limit", 0)
	viper.SetDefault("report.top_n", 0)
	viper.SetDefault("report.cache_ttl", 600)
}

func validate(cfg *Config) error {
	if cfg.Solr.BaseURL == "" {
		return fmt.Errorf("solr.base_url is required")
	}
	if cfg.Solr.Port == 0 {
		return fmt.Errorf("solr.port is required")
	}

	if cfg.Redis.Enabled {
		if cfg.Redis.Host == "" {
			return fmt.Errorf("redis.host is required")
		}
		if cfg.Redis.Port == 0 {
			return fmt.Errorf("redis.port is required")
		}
	}

	return nil
}
