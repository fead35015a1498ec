package repository

import (
	"context"

	"analytics-srv/internal/model"
	"analytics-srv/internal/network"
	"analytics-srv/pkg/solr"
)

//go:generate mockery --name IndexRepository
type IndexRepository interface {
	// FetchInteractionDocs fetches the documents carrying relation
	// strings for one interaction kind, most retweeted first.
	FetchInteractionDocs(ctx context.Context, core, nodesField, query string) ([]model.Document, error)
	// FetchCommunityStats runs the community summary and traffic facets.
	FetchCommunityStats(ctx context.Context, core, query string, fields network.CommunityFields, limit int) (*solr.FacetResponse, error)
	// FetchCommunityMapInfo runs the per-community location and language
	// facets.
	FetchCommunityMapInfo(ctx context.Context, core, query, communityField string) (*solr.FacetResponse, error)
	// StreamInteractions pages through every document matching query and
	// hands each page to fn. Returns the total hit count.
	StreamInteractions(ctx context.Context, core, query string, fields []string, fn func([]model.Document) error) (int, error)
	// UpdateDocuments writes partial documents back to the core. Returns
	// the documents that could not be written.
	UpdateDocuments(ctx context.Context, core string, docs []map[string]any) ([]map[string]any, error)
}
