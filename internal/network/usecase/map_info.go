package usecase

import (
	"context"
	"unicode"

	"analytics-srv/internal/model"
	"analytics-srv/internal/network"
	"analytics-srv/pkg/solr"
)

func (uc *implUseCase) GetMapInfo(ctx context.Context, input network.MapInfoInput) (network.MapInfoOutput, error) {
	fields, ok := network.CommunityField(input.Interaction)
	if !ok {
		return network.MapInfoOutput{}, network.ErrUnknownInteraction
	}

	query := keywordClause(input.Keyword) +
		solr.NewQueryBuilder(input.Filters).Suffix() +
		solr.CommunityFilterClause(fields.Community, input.Communities)

	resp, err := uc.repo.FetchCommunityMapInfo(ctx, input.Core, query, fields.Community)
	if err != nil {
		return network.MapInfoOutput{}, uc.wrapErr(ctx, "GetMapInfo", err)
	}

	out := network.MapInfoOutput{
		TweetLocations: map[string][]model.ValueCount{},
		UserLocations:  map[string][]model.ValueCount{},
		Languages:      map[string][]model.LanguageCount{},
	}
	allTweets := newLocationUnion()
	allUsers := newLocationUnion()

	for _, b := range resp.Facets.Fields["stats"].Buckets {
		if b.Val == unassignedCommunity {
			continue
		}
		tweets := locationCounts(b.Sub["tweets_locations_by_communities"])
		users := locationCounts(b.Sub["users_locations_by_communities"])
		out.TweetLocations[b.Val] = tweets
		out.UserLocations[b.Val] = users
		allTweets.add(tweets)
		allUsers.add(users)

		langs := make([]model.LanguageCount, 0, len(b.Sub["Languages_per_community"].Buckets))
		for _, lb := range b.Sub["Languages_per_community"].Buckets {
			langs = append(langs, model.LanguageCount{Language: upperFirst(lb.Val), Count: lb.Count})
		}
		out.Languages[b.Val] = langs
	}

	out.TweetLocations[network.AllCommunitiesKey] = allTweets.counts()
	out.UserLocations[network.AllCommunitiesKey] = allUsers.counts()

	return out, nil
}

// locationUnion sums location counts across communities, keeping the
// order each location was first seen.
type locationUnion struct {
	idx  map[string]int
	rows []model.ValueCount
}

func newLocationUnion() *locationUnion {
	return &locationUnion{idx: map[string]int{}}
}

func (u *locationUnion) add(rows []model.ValueCount) {
	for _, row := range rows {
		if i, ok := u.idx[row.Value]; ok {
			u.rows[i].Count += row.Count
			continue
		}
		u.idx[row.Value] = len(u.rows)
		u.rows = append(u.rows, row)
	}
}

func (u *locationUnion) counts() []model.ValueCount {
	if u.rows == nil {
		return []model.ValueCount{}
	}
	return u.rows
}

// upperFirst uppercases only the first rune, leaving the rest as
// indexed.
func upperFirst(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
