package repository

import (
	"context"

	"analytics-srv/pkg/solr"
)

//go:generate mockery --name IndexRepository
type IndexRepository interface {
	// FetchReport runs the canned report facet tree for one keyword query
	// and returns the raw faceted, sentiment-grouped response.
	FetchReport(ctx context.Context, core, query string, limit int) (*solr.FacetResponse, error)
}

//go:generate mockery --name CacheRepository
type CacheRepository interface {
	GetReport(ctx context.Context, key string) ([]byte, bool, error)
	SaveReport(ctx context.Context, key string, data []byte) error
}
