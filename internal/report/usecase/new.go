package usecase

import (
	"analytics-srv/internal/report"
	"analytics-srv/internal/report/repository"
	"analytics-srv/pkg/log"
	"analytics-srv/pkg/solr"
	"analytics-srv/pkg/stopwords"
)

// Config tunes the report generator defaults.
type Config struct {
	// Limit caps facet buckets and grouped documents per query.
	Limit int
	// TopN caps ranked top-content lists before the hard cap.
	TopN int
}

type implUseCase struct {
	l     log.Logger
	repo  repository.IndexRepository
	cache repository.CacheRepository
	stop  stopwords.List
	cfg   Config
}

// New - Factory. cache may be nil to disable report caching.
func New(l log.Logger, repo repository.IndexRepository, cache repository.CacheRepository, stop stopwords.List, cfg Config) report.UseCase {
	if cfg.Limit <= 0 {
		cfg.Limit = solr.QueryLimit
	}
	if cfg.TopN <= 0 {
		cfg.TopN = solr.GroupsLimit
	}
	return &implUseCase{l: l, repo: repo, cache: cache, stop: stop, cfg: cfg}
}
