package solr

import (
	"context"
	"encoding/json"

	pkghttp "analytics-srv/pkg/http"
	"analytics-srv/pkg/log"
)

// IClient defines the operations against one Solr deployment.
// Implementations are safe for concurrent use.
type IClient interface {
	// Cores lists the registered core names.
	Cores() []string
	// HasCore reports whether the core is registered.
	HasCore(core string) bool
	// Select runs a plain select and returns the matching documents.
	Select(ctx context.Context, core string, params SelectParams) (*SelectResult, error)
	// FacetSelect runs a select with a JSON facet request body.
	FacetSelect(ctx context.Context, core string, req FacetRequest, params SelectParams) (*FacetResponse, error)
	// SelectAll pages through all matches in fixed-size batches and hands
	// each batch to fn. It returns the total number of matches.
	SelectAll(ctx context.Context, core string, params SelectParams, fn func(docs []json.RawMessage) error) (int, error)
	// Update writes partial document updates in shrinking batches. It
	// returns the documents that could not be written.
	Update(ctx context.Context, core string, docs []map[string]any) ([]map[string]any, error)
}

// New creates a Solr client. Returns the interface.
func New(l log.Logger, httpClient pkghttp.IClient, cfg Config) IClient {
	cores := make(map[string]struct{}, len(cfg.Cores))
	for _, core := range cfg.Cores {
		cores[core] = struct{}{}
	}
	return &implClient{
		l:          l,
		httpClient: httpClient,
		baseURL:    coreBaseURL(cfg),
		cores:      cores,
	}
}
