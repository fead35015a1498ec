package usecase

import (
	"analytics-srv/internal/network"
	"analytics-srv/internal/network/repository"
	"analytics-srv/pkg/kafka"
	"analytics-srv/pkg/log"
	"analytics-srv/pkg/solr"
)

// Config tunes the network analytics defaults.
type Config struct {
	// Limit caps community facet buckets per query.
	Limit int
}

type implUseCase struct {
	l        log.Logger
	repo     repository.IndexRepository
	producer kafka.IProducer
	cfg      Config
}

// New - Factory. producer may be nil to disable extraction events.
func New(l log.Logger, repo repository.IndexRepository, producer kafka.IProducer, cfg Config) network.UseCase {
	if cfg.Limit <= 0 {
		cfg.Limit = solr.QueryLimit
	}
	return &implUseCase{l: l, repo: repo, producer: producer, cfg: cfg}
}
