package solr

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"analytics-srv/internal/model"
	"analytics-srv/internal/network"
	"analytics-srv/internal/network/repository"
	pkgsolr "analytics-srv/pkg/solr"
)

// topAccountsLimit caps the per-community most-retweeted accounts facet.
const topAccountsLimit = 20

func (r *implRepository) FetchInteractionDocs(ctx context.Context, core, nodesField, query string) ([]model.Document, error) {
	res, err := r.client.Select(ctx, core, pkgsolr.SelectParams{
		Query:   query,
		Fields:  []string{"userScreenName", "usersDescription", nodesField},
		Sort:    "retweetCount desc",
		Rows:    pkgsolr.RowsLimit,
		QueryOp: "OR",
	})
	if err != nil {
		return nil, mapErr(err)
	}

	docs := make([]model.Document, 0, len(res.Docs))
	for _, raw := range res.Docs {
		var doc model.Document
		if err := json.Unmarshal(raw, &doc); err != nil {
			r.l.Warnf(ctx, "network.repository.solr.FetchInteractionDocs.Unmarshal: %v", err)
			continue
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// statsFacets builds the community summary facet tree: per-community
// repost totals, distinct active accounts, the most retweeted accounts,
// and a separate unbounded per-community traffic facet.
func statsFacets(fields network.CommunityFields, limit int) map[string]pkgsolr.FacetNode {
	return map[string]pkgsolr.FacetNode{
		"stats": pkgsolr.Terms(fields.Community, limit).
			SortedBy("nb_accounts desc").
			With(map[string]pkgsolr.FacetNode{
				"retweeted":   pkgsolr.Func(fmt.Sprintf("sum(%s)", fields.Count)),
				"nb_accounts": pkgsolr.Func("countvals(userScreenName)"),
				"most_ret_accounts": pkgsolr.Terms("userScreenName", topAccountsLimit).
					SortedBy("retweeters desc").
					With(map[string]pkgsolr.FacetNode{
						"retweeters": pkgsolr.Func(fmt.Sprintf("sum(%s)", fields.Count)),
					}),
			}),
		"communities_traffic": pkgsolr.Terms(fields.Community, -1).
			SortedBy("count desc").
			With(map[string]pkgsolr.FacetNode{
				"traffic": pkgsolr.Terms("createdAtDays", -1),
			}),
	}
}

func (r *implRepository) FetchCommunityStats(ctx context.Context, core, query string, fields network.CommunityFields, limit int) (*pkgsolr.FacetResponse, error) {
	resp, err := r.client.FacetSelect(ctx, core, pkgsolr.FacetRequest{
		Query: query,
		Limit: limit,
		Facet: statsFacets(fields, limit),
	}, pkgsolr.SelectParams{
		Rows:    0,
		QueryOp: "OR",
	})
	if err != nil {
		return nil, mapErr(err)
	}
	return resp, nil
}

// mapFacets breaks locations and languages down per community. Limits
// stay unbounded so the caller's community filter is the only cap.
func mapFacets(communityField string) map[string]pkgsolr.FacetNode {
	return map[string]pkgsolr.FacetNode{
		"stats": pkgsolr.Terms(communityField, -1).With(map[string]pkgsolr.FacetNode{
			"tweets_locations_by_communities": pkgsolr.Terms("locationGps", -1),
			"users_locations_by_communities":  pkgsolr.Terms("userLocation", -1),
			"Languages_per_community":         pkgsolr.Terms("language", -1),
		}),
	}
}

func (r *implRepository) FetchCommunityMapInfo(ctx context.Context, core, query, communityField string) (*pkgsolr.FacetResponse, error) {
	resp, err := r.client.FacetSelect(ctx, core, pkgsolr.FacetRequest{
		Query: query,
		Facet: mapFacets(communityField),
	}, pkgsolr.SelectParams{
		Rows:    0,
		QueryOp: "OR",
	})
	if err != nil {
		return nil, mapErr(err)
	}
	return resp, nil
}

func (r *implRepository) StreamInteractions(ctx context.Context, core, query string, fields []string, fn func([]model.Document) error) (int, error) {
	total, err := r.client.SelectAll(ctx, core, pkgsolr.SelectParams{
		Query:   query,
		Fields:  fields,
		QueryOp: "OR",
	}, func(page []json.RawMessage) error {
		docs := make([]model.Document, 0, len(page))
		for _, raw := range page {
			var doc model.Document
			if err := json.Unmarshal(raw, &doc); err != nil {
				r.l.Warnf(ctx, "network.repository.solr.StreamInteractions.Unmarshal: %v", err)
				continue
			}
			docs = append(docs, doc)
		}
		return fn(docs)
	})
	if err != nil {
		return total, mapErr(err)
	}
	return total, nil
}

func (r *implRepository) UpdateDocuments(ctx context.Context, core string, docs []map[string]any) ([]map[string]any, error) {
	remaining, err := r.client.Update(ctx, core, docs)
	if err != nil {
		return remaining, mapErr(err)
	}
	return nil, nil
}

func mapErr(err error) error {
	if errors.Is(err, pkgsolr.ErrNotFound) || errors.Is(err, pkgsolr.ErrCoreNotRegistered) {
		return fmt.Errorf("%w: %v", repository.ErrCoreNotFound, err)
	}
	return fmt.Errorf("%w: %v", repository.ErrRequestFailed, err)
}
