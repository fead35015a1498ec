package httpserver

import (
	"errors"

	"analytics-srv/config"
	"analytics-srv/pkg/discord"
	"analytics-srv/pkg/kafka"
	"analytics-srv/pkg/log"
	pkgRedis "analytics-srv/pkg/redis"
	pkgSolr "analytics-srv/pkg/solr"
	"analytics-srv/pkg/stopwords"

	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	// Index Configuration
	solrClient pkgSolr.IClient
	stopwords  stopwords.List

	// Cache Configuration (optional)
	redisClient pkgRedis.IRedis

	// Event Bus Configuration (optional)
	producer kafka.IProducer

	// Service Configuration
	config *config.Config

	// Monitoring & Notification Configuration
	discord discord.IDiscord
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string

	// Index Configuration
	SolrClient pkgSolr.IClient
	Stopwords  stopwords.List

	// Cache Configuration (optional)
	RedisClient pkgRedis.IRedis

	// Event Bus Configuration (optional)
	Producer kafka.IProducer

	// Service Configuration
	Config *config.Config

	// Monitoring & Notification Configuration
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		// Server Configuration
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,

		// Index Configuration
		solrClient: cfg.SolrClient,
		stopwords:  cfg.Stopwords,

		// Cache Configuration (optional)
		redisClient: cfg.RedisClient,

		// Event Bus Configuration (optional)
		producer: cfg.Producer,

		// Service Configuration
		config: cfg.Config,

		// Monitoring & Notification Configuration
		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv HTTPServer) validate() error {
	// Server Configuration
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}

	// Index Configuration
	if srv.solrClient == nil {
		return errors.New("solr client is required")
	}

	// Service Configuration
	if srv.config == nil {
		return errors.New("config is required")
	}

	return nil
}
