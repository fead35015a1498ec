package usecase

import (
	"context"
	"sort"
	"strings"

	"analytics-srv/internal/model"
	"analytics-srv/internal/report"
	"analytics-srv/pkg/solr"
)

// tokenFeatures get a stopword-filtered companion list.
var tokenFeatures = []string{"processedTokens", "processedDescTokens"}

// cappedFeatures are the top-content lists truncated to the hard cap.
var cappedFeatures = map[string]bool{
	"hashtags": true, "emojis": true, "media": true, "mentions": true,
	"urls": true, "processedTokens": true, "processedDescTokens": true,
	"userScreenName": true, "retweeters": true, "retweeted": true,
}

// flatten walks the faceted response into the keyword report: the facet
// tree becomes flat per-sentiment and per-language maps, bias rankings
// and rollups are computed, and the grouped documents become the top
// post and account lists.
func (uc *implUseCase) flatten(ctx context.Context, resp *solr.FacetResponse, topN int) *report.KeywordReport {
	kr := &report.KeywordReport{
		Count:              resp.Facets.Count,
		SentimentTimelines: map[string][]model.DateCount{},
		SentimentLanguages: map[string][]model.ValueCount{},
		LanguageTimelines:  map[string]map[string][]model.DateCount{},
		Features:           map[string]*report.FeatureBreakdown{},
		TweetLocationsBySentiment: newBreakdown(),
		UserLocationsBySentiment:  newBreakdown(),
		TweetLocationsByLanguage:  report.LocationsByLanguage{PerLanguage: map[string][]model.ValueCount{}},
		UserLocationsByLanguage:   report.LocationsByLanguage{PerLanguage: map[string][]model.ValueCount{}},
	}

	kr.Traffic = dateCounts(resp.Facets.Fields["traffic"])
	sort.Slice(kr.Traffic, func(i, j int) bool { return kr.Traffic[i].Date < kr.Traffic[j].Date })

	sentimentOrder := uc.flattenSentiments(kr, resp.Facets.Fields["Sentiments"])
	languageOrder := uc.flattenLanguages(kr, resp.Facets.Fields["Languages"])

	for _, fb := range kr.Features {
		opts := biasOptions{withNegativePositive: true}
		computeBias(fb, sentimentOrder, topN, opts)
	}
	if fb, ok := kr.Features["processedTokens"]; ok {
		substituteCounts(fb.PositiveNegative, fb.BySentiment[solr.SentimentPositive])
	}
	// Location spreads rank by bias too, but a most-negative list of
	// places is not reported.
	computeBias(kr.TweetLocationsBySentiment, sentimentOrder, topN, biasOptions{})
	computeBias(kr.UserLocationsBySentiment, sentimentOrder, topN, biasOptions{})

	kr.TweetLocationsByLanguage.AllLanguages = sumAcross(kr.TweetLocationsByLanguage.PerLanguage, languageOrder, topN)
	kr.UserLocationsByLanguage.AllLanguages = sumAcross(kr.UserLocationsByLanguage.PerLanguage, languageOrder, topN)

	for _, name := range tokenFeatures {
		if fb, ok := kr.Features[name]; ok {
			kr.Features[name+"Stopped"] = uc.stopFiltered(fb)
		}
	}
	for name, fb := range kr.Features {
		if cappedFeatures[name] {
			capBreakdown(fb, report.RankedCap)
		}
	}

	kr.TopUsers, kr.TopTweets = combineGroups(ctx, uc.l, resp.Grouped["sentiment"].Groups)
	return kr
}

// flattenSentiments distributes the sentiment tree's sub-facets into the
// report and returns the sentiment labels in bucket order.
func (uc *implUseCase) flattenSentiments(kr *report.KeywordReport, sentiments solr.BucketList) []string {
	order := make([]string, 0, len(sentiments.Buckets))
	for _, sb := range sentiments.Buckets {
		sentiment := sb.Val
		order = append(order, sentiment)
		for name, list := range sb.Sub {
			switch name {
			case "Sentiments_Distributions":
				kr.SentimentTimelines[sentiment] = dateCounts(list)
			case "Sentiment_per_Language":
				kr.SentimentLanguages[sentiment] = valueCounts(list)
			case "tweets_locations_by_sentiments":
				kr.TweetLocationsBySentiment.BySentiment[sentiment] = valueCounts(list)
			case "users_locations_by_sentiments":
				kr.UserLocationsBySentiment.BySentiment[sentiment] = valueCounts(list)
			default:
				fb, ok := kr.Features[name]
				if !ok {
					fb = newBreakdown()
					kr.Features[name] = fb
				}
				fb.BySentiment[sentiment] = valueCounts(list)
			}
		}
	}
	return order
}

// flattenLanguages distributes the language tree and returns the
// language values in bucket order.
func (uc *implUseCase) flattenLanguages(kr *report.KeywordReport, languages solr.BucketList) []string {
	order := make([]string, 0, len(languages.Buckets))
	for _, lb := range languages.Buckets {
		lang := lb.Val
		order = append(order, lang)
		kr.LanguageDistributions = append(kr.LanguageDistributions, model.LanguageCount{
			Language: capitalize(lang),
			Count:    lb.Count,
		})
		for name, list := range lb.Sub {
			switch name {
			case "tweets_languages_by_sentiments":
				timeline := map[string][]model.DateCount{}
				for _, sb := range list.Buckets {
					timeline[sb.Val] = dateCounts(sb.Sub["createdAtDays"])
				}
				kr.LanguageTimelines[lang] = timeline
			case "tweets_locations_by_languages":
				kr.TweetLocationsByLanguage.PerLanguage[lang] = valueCounts(list)
			case "users_locations_by_languages":
				kr.UserLocationsByLanguage.PerLanguage[lang] = valueCounts(list)
			}
		}
	}
	sort.SliceStable(kr.LanguageDistributions, func(i, j int) bool {
		return kr.LanguageDistributions[i].Count > kr.LanguageDistributions[j].Count
	})
	return order
}

// stopFiltered clones a token breakdown without stopwords and
// single-character tokens.
func (uc *implUseCase) stopFiltered(fb *report.FeatureBreakdown) *report.FeatureBreakdown {
	keepValue := func(v string) bool {
		return len([]rune(v)) > 1 && !uc.stop.Has(v)
	}
	filterCounts := func(in []model.ValueCount) []model.ValueCount {
		out := make([]model.ValueCount, 0, len(in))
		for _, vc := range in {
			if keepValue(vc.Value) {
				out = append(out, vc)
			}
		}
		return out
	}
	filterScores := func(in []model.ScoredValue) []model.ScoredValue {
		out := make([]model.ScoredValue, 0, len(in))
		for _, sv := range in {
			if keepValue(sv.Value) {
				out = append(out, sv)
			}
		}
		return out
	}

	filtered := newBreakdown()
	for sentiment, list := range fb.BySentiment {
		filtered.BySentiment[sentiment] = filterCounts(list)
	}
	filtered.AllSentiments = filterCounts(fb.AllSentiments)
	filtered.PositiveNegative = filterScores(fb.PositiveNegative)
	filtered.NegativePositive = filterScores(fb.NegativePositive)
	return filtered
}

func capBreakdown(fb *report.FeatureBreakdown, n int) {
	for sentiment, list := range fb.BySentiment {
		if len(list) > n {
			fb.BySentiment[sentiment] = list[:n]
		}
	}
	if len(fb.AllSentiments) > n {
		fb.AllSentiments = fb.AllSentiments[:n]
	}
	if len(fb.PositiveNegative) > n {
		fb.PositiveNegative = fb.PositiveNegative[:n]
	}
	if len(fb.NegativePositive) > n {
		fb.NegativePositive = fb.NegativePositive[:n]
	}
}

func newBreakdown() *report.FeatureBreakdown {
	return &report.FeatureBreakdown{BySentiment: map[string][]model.ValueCount{}}
}

func dateCounts(list solr.BucketList) []model.DateCount {
	out := make([]model.DateCount, 0, len(list.Buckets))
	for _, b := range list.Buckets {
		out = append(out, model.DateCount{Date: b.Val, Count: b.Count})
	}
	return out
}

func valueCounts(list solr.BucketList) []model.ValueCount {
	out := make([]model.ValueCount, 0, len(list.Buckets))
	for _, b := range list.Buckets {
		out = append(out, model.ValueCount{Value: b.Val, Count: b.Count})
	}
	return out
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
