package usecase

import (
	"context"

	"analytics-srv/internal/model"
	"analytics-srv/internal/network"
	"analytics-srv/pkg/solr"
)

// unassignedCommunity labels documents the community detection did not
// place; it never appears in community summaries.
const unassignedCommunity = "0"

func (uc *implUseCase) GetStats(ctx context.Context, input network.StatsInput) (network.StatsOutput, error) {
	fields, ok := network.CommunityField(input.Interaction)
	if !ok {
		return network.StatsOutput{}, network.ErrUnknownInteraction
	}

	query := keywordClause(input.Keyword) + solr.NewQueryBuilder(input.Filters).Suffix()
	limit := input.Limit
	if limit <= 0 {
		limit = uc.cfg.Limit
	}

	resp, err := uc.repo.FetchCommunityStats(ctx, input.Core, query, fields, limit)
	if err != nil {
		return network.StatsOutput{}, uc.wrapErr(ctx, "GetStats", err)
	}

	out := network.StatsOutput{Traffic: map[string][]model.DateCount{}}

	for _, b := range resp.Facets.Fields["stats"].Buckets {
		if b.Val == unassignedCommunity {
			continue
		}
		count := float64(b.Count)
		accounts := b.Funcs["nb_accounts"]

		cs := network.CommunityStats{
			ID:             b.Val,
			ActiveAccounts: int(accounts),
			TopAccounts:    []string{},
		}
		if accounts > 0 {
			cs.PostsPerAccount = count / accounts
		}
		if count > 0 {
			cs.RepostsPerPost = b.Funcs["retweeted"] / count
		}
		for _, a := range b.Sub["most_ret_accounts"].Buckets {
			cs.TopAccounts = append(cs.TopAccounts, a.Val)
		}
		out.Communities = append(out.Communities, cs)
	}

	for _, b := range resp.Facets.Fields["communities_traffic"].Buckets {
		// -1 marks documents outside every detected community.
		if b.Val == unassignedCommunity || b.Val == "-1" {
			continue
		}
		out.Traffic[b.Val] = dateCounts(b.Sub["traffic"])
	}

	return out, nil
}
