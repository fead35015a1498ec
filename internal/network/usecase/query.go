package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"

	"analytics-srv/internal/model"
	"analytics-srv/internal/network"
	"analytics-srv/internal/network/repository"
	pkgsolr "analytics-srv/pkg/solr"
)

// keywordClause turns the raw keyword fragment into a query clause.
// Empty or catch-all keywords match everything.
func keywordClause(keyword string) string {
	kw := strings.TrimSpace(keyword)
	if kw == "" || kw == "*" || kw == "*:*" {
		return "*:*"
	}
	return "(" + kw + ")"
}

func (uc *implUseCase) wrapErr(ctx context.Context, op string, err error) error {
	uc.l.Errorf(ctx, "network.usecase.%s: %v", op, err)
	if errors.Is(err, repository.ErrCoreNotFound) {
		return network.ErrCoreNotAvailable
	}
	return network.ErrFetchFailed
}

func dateCounts(list pkgsolr.BucketList) []model.DateCount {
	out := make([]model.DateCount, 0, len(list.Buckets))
	for _, b := range list.Buckets {
		out = append(out, model.DateCount{Date: b.Val, Count: b.Count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

func locationCounts(list pkgsolr.BucketList) []model.ValueCount {
	out := make([]model.ValueCount, 0, len(list.Buckets))
	for _, b := range list.Buckets {
		loc := model.CleanLocation(b.Val)
		if loc == "" {
			continue
		}
		out = append(out, model.ValueCount{Value: loc, Count: b.Count})
	}
	return out
}
