package solr

import (
	"context"
	"errors"
	"fmt"

	"analytics-srv/internal/report/repository"
	pkgsolr "analytics-srv/pkg/solr"
)

// groupedFields is the field list fetched for the per-sentiment top
// document groups.
var groupedFields = []string{
	"id", "fullText", "videoId", "createdAtDays", "userScreenName",
	"usersDescription", "locationGps", "userLocation", "usersFollowersCount",
	"retweetCommunity", "replyCommunity", "processedTokens",
	"retweetCount", "replyCount", "favoriteCount", "language",
}

// listFeatures are the top-content fields faceted under each sentiment.
var listFeatures = []string{
	"urls", "mentions", "retweeters", "hashtags", "userScreenName",
	"media", "emojis", "processedTokens", "processedDescTokens",
}

// reportFacets builds the full report facet tree: overall traffic, a
// sentiment tree with per-sentiment timelines, locations, languages and
// top-content fields, and a language tree with per-language sentiment
// timelines and locations.
func reportFacets(limit int) map[string]pkgsolr.FacetNode {
	sentimentSub := map[string]pkgsolr.FacetNode{
		"Sentiments_Distributions":      pkgsolr.Terms("createdAtDays", limit),
		"tweets_locations_by_sentiments": pkgsolr.Terms("locationGps", limit),
		"users_locations_by_sentiments":  pkgsolr.Terms("userLocation", limit),
		"Sentiment_per_Language":         pkgsolr.Terms("language", limit),
		"retweeted": pkgsolr.Terms("userScreenName", limit).With(map[string]pkgsolr.FacetNode{
			"retweeted": pkgsolr.Func("countvals(retweeters)"),
		}),
	}
	for _, feature := range listFeatures {
		sentimentSub[feature] = pkgsolr.Terms(feature, limit)
	}

	return map[string]pkgsolr.FacetNode{
		"traffic": pkgsolr.Terms("createdAtDays", limit),
		"Sentiments": pkgsolr.Terms("sentiment", limit).With(sentimentSub),
		"Languages": pkgsolr.Terms("language", limit).With(map[string]pkgsolr.FacetNode{
			"tweets_languages_by_sentiments": pkgsolr.Terms("sentiment", limit).With(map[string]pkgsolr.FacetNode{
				"createdAtDays": pkgsolr.Terms("createdAtDays", limit),
			}),
			"tweets_locations_by_languages": pkgsolr.Terms("locationGps", limit),
			"users_locations_by_languages":  pkgsolr.Terms("userLocation", limit),
		}),
	}
}

func (r *implRepository) FetchReport(ctx context.Context, core, query string, limit int) (*pkgsolr.FacetResponse, error) {
	resp, err := r.client.FacetSelect(ctx, core, pkgsolr.FacetRequest{
		Query: query,
		Limit: limit,
		Facet: reportFacets(limit),
	}, pkgsolr.SelectParams{
		Fields:     groupedFields,
		Rows:       0,
		QueryOp:    "OR",
		Sort:       "retweetCount desc",
		Group:      true,
		GroupField: "sentiment",
		GroupLimit: limit,
		GroupSort:  "retweetCount desc,userLocation asc,locationGps asc",
	})
	if err != nil {
		if errors.Is(err, pkgsolr.ErrNotFound) || errors.Is(err, pkgsolr.ErrCoreNotRegistered) {
			return nil, fmt.Errorf("%w: %v", repository.ErrCoreNotFound, err)
		}
		return nil, fmt.Errorf("%w: %v", repository.ErrRequestFailed, err)
	}
	return resp, nil
}
