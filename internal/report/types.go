package report

import (
	"analytics-srv/internal/model"
	"analytics-srv/pkg/solr"
)

// RankedCap is the hard cap on ranked top-content lists.
const RankedCap = 150

// Pseudo-group keys added by the aggregator.
const (
	AllSentimentsKey    = "All Sentiments"
	AllLanguagesKey     = "All Languages"
	PositiveNegativeKey = "Positive_Negative"
	NegativePositiveKey = "Negative_Positive"
)

// Dataset origins reported to the caller.
const (
	OriginTweets   = "Tweets"
	OriginComments = "Comment"
)

// GenerateInput describes one report request.
type GenerateInput struct {
	Core     string
	Keywords []string
	Operator string
	Filters  solr.Filters
	// Limit caps facet buckets and grouped documents. Zero means the
	// default query limit.
	Limit int
	// TopN caps ranked lists before the hard cap applies. Zero means the
	// default groups limit.
	TopN int
}

// GenerateOutput is the flattened analytics report.
type GenerateOutput struct {
	// Report holds one entry per keyword, plus the combined "All" entry
	// when several keywords were queried.
	Report map[string]*KeywordReport
	// Hits is the largest match count seen across the keyword queries.
	Hits          int
	DatasetOrigin string
	// ErrorMessage carries the latest per-keyword failure. Failed
	// keywords are absent from Report.
	ErrorMessage string
}

// KeywordReport is the flattened report of a single keyword query.
type KeywordReport struct {
	Count   int
	Traffic []model.DateCount

	// SentimentTimelines maps sentiment -> per-day counts.
	SentimentTimelines map[string][]model.DateCount
	// SentimentLanguages maps sentiment -> language distribution.
	SentimentLanguages map[string][]model.ValueCount
	// LanguageTimelines maps language -> sentiment -> per-day counts.
	LanguageTimelines map[string]map[string][]model.DateCount
	// LanguageDistributions is the overall language spread, largest first.
	LanguageDistributions []model.LanguageCount

	// Features maps feature name (hashtags, mentions, urls, ...) to its
	// per-sentiment breakdown with bias rankings.
	Features map[string]*FeatureBreakdown

	// Location breakdowns by sentiment and by language.
	TweetLocationsBySentiment *FeatureBreakdown
	UserLocationsBySentiment  *FeatureBreakdown
	TweetLocationsByLanguage  LocationsByLanguage
	UserLocationsByLanguage   LocationsByLanguage

	TopTweets map[string][]TopTweet
	TopUsers  map[string][]TopUser
}

// FeatureBreakdown holds one feature's values per sentiment together
// with the cross-sentiment rollup and bias rankings.
type FeatureBreakdown struct {
	// BySentiment keeps the facet's bucket order per sentiment label.
	BySentiment map[string][]model.ValueCount
	// AllSentiments sums counts across sentiments, ranked by count.
	AllSentiments []model.ValueCount
	// PositiveNegative ranks values by normalized sentiment bias, most
	// positive first. NegativePositive ranks the most negative first and
	// is omitted for location features.
	PositiveNegative []model.ScoredValue
	NegativePositive []model.ScoredValue
}

// LocationsByLanguage holds a location spread per language plus the
// union across languages.
type LocationsByLanguage struct {
	PerLanguage  map[string][]model.ValueCount
	AllLanguages []model.ValueCount
}

// TopTweet is one deduplicated top post.
type TopTweet struct {
	ID            string  `json:"id"`
	FullText      string  `json:"fullText"`
	Date          string  `json:"date"`
	RetweetCount  int     `json:"retweetCount"`
	FavoriteCount int     `json:"favoriteCount"`
	Language      string  `json:"language"`
	Location      string  `json:"location"`
	VideoID       *string `json:"videoId,omitempty"`
}

// TopUser is one deduplicated top account.
type TopUser struct {
	ScreenName  string  `json:"userScreenName"`
	Description string  `json:"userDescription"`
	RetweetCount int    `json:"retweetCount"`
	Language    string  `json:"language"`
	Community   *int    `json:"community,omitempty"`
	Followers   int     `json:"nbFollowers"`
	Location    string  `json:"userLocation"`
	VideoID     *string `json:"videoId,omitempty"`
}
