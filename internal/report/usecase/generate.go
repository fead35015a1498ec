package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"analytics-srv/internal/report"
	"analytics-srv/internal/report/repository"
	"analytics-srv/pkg/solr"
)

func (uc *implUseCase) Generate(ctx context.Context, input report.GenerateInput) (report.GenerateOutput, error) {
	operator := strings.ToUpper(strings.TrimSpace(input.Operator))
	if operator == "" {
		operator = "AND"
	}
	if operator != "AND" && operator != "OR" {
		return report.GenerateOutput{}, report.ErrInvalidOperator
	}
	limit := input.Limit
	if limit <= 0 || limit > uc.cfg.Limit {
		limit = uc.cfg.Limit
	}
	topN := input.TopN
	if topN <= 0 || topN > uc.cfg.TopN {
		topN = uc.cfg.TopN
	}

	cacheKey := generateCacheKey(input, operator, limit, topN)
	if cached, ok := uc.cachedReport(ctx, cacheKey); ok {
		return *cached, nil
	}

	queries := solr.NewQueryBuilder(input.Filters).Build(input.Keywords, operator)

	out := report.GenerateOutput{
		Report:        make(map[string]*report.KeywordReport, len(queries)),
		DatasetOrigin: report.OriginTweets,
	}
	coreMissing := false
	for _, kq := range queries {
		resp, err := uc.repo.FetchReport(ctx, input.Core, kq.Query, limit)
		if err != nil {
			// One keyword failing must not sink the others.
			uc.l.Warnf(ctx, "report.usecase.Generate: fetch for %q failed: %v", kq.Keyword, err)
			if errors.Is(err, repository.ErrCoreNotFound) {
				coreMissing = true
				out.ErrorMessage = fmt.Sprintf(
					"Data collection %s is not available. Please check that Solr is running and the core %s is available.",
					input.Core, input.Core)
			} else {
				out.ErrorMessage = "An error occurred while fetching the data."
			}
			continue
		}

		kr := uc.flatten(ctx, resp, topN)
		out.Report[kq.Keyword] = kr
		if kr.Count > out.Hits {
			out.Hits = kr.Count
		}
		if origin := datasetOrigin(kr); origin != "" {
			out.DatasetOrigin = origin
		}
	}

	// A partially failed report is still worth returning; only a total
	// failure surfaces as an error.
	if len(out.Report) == 0 && out.ErrorMessage != "" {
		if coreMissing {
			return out, report.ErrCoreNotAvailable
		}
		return out, report.ErrFetchFailed
	}

	uc.storeReport(ctx, cacheKey, &out)
	return out, nil
}

// datasetOrigin tells posts from video comments apart by the presence of
// a video id on the top post.
func datasetOrigin(kr *report.KeywordReport) string {
	all := kr.TopTweets[report.AllSentimentsKey]
	if len(all) == 0 {
		return report.OriginTweets
	}
	if all[0].VideoID != nil && *all[0].VideoID != "" {
		return report.OriginComments
	}
	return report.OriginTweets
}

func generateCacheKey(input report.GenerateInput, operator string, limit, topN int) string {
	payload, _ := json.Marshal(struct {
		Core     string
		Keywords []string
		Operator string
		Filters  solr.Filters
		Limit    int
		TopN     int
	}{input.Core, input.Keywords, operator, input.Filters, limit, topN})
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}

func (uc *implUseCase) cachedReport(ctx context.Context, key string) (*report.GenerateOutput, bool) {
	if uc.cache == nil {
		return nil, false
	}
	data, ok, err := uc.cache.GetReport(ctx, key)
	if err != nil {
		uc.l.Warnf(ctx, "report.usecase.Generate: cache read failed: %v", err)
		return nil, false
	}
	if !ok {
		return nil, false
	}
	var out report.GenerateOutput
	if err := json.Unmarshal(data, &out); err != nil {
		uc.l.Warnf(ctx, "report.usecase.Generate: cache entry corrupt: %v", err)
		return nil, false
	}
	return &out, true
}

func (uc *implUseCase) storeReport(ctx context.Context, key string, out *report.GenerateOutput) {
	if uc.cache == nil {
		return
	}
	data, err := json.Marshal(out)
	if err != nil {
		uc.l.Warnf(ctx, "report.usecase.Generate: cache marshal failed: %v", err)
		return
	}
	if err := uc.cache.SaveReport(ctx, key, data); err != nil {
		uc.l.Warnf(ctx, "report.usecase.Generate: cache write failed: %v", err)
	}
}
