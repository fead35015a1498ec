package network

import (
	"analytics-srv/internal/model"
	"analytics-srv/pkg/solr"
)

// Supported interaction kinds.
const (
	InteractionRetweet = "retweet"
	InteractionReply   = "reply"
)

// Index fields per interaction kind.
var (
	nodesFields = map[string]string{
		InteractionRetweet: "retweetNetworkNodes",
		InteractionReply:   "replyNetworkNodes",
	}
	timesFields = map[string]string{
		InteractionRetweet: "retweetTimes",
		InteractionReply:   "repliesTimes",
	}
	communityFields = map[string]CommunityFields{
		InteractionRetweet: {Community: "retweetCommunity", Count: "retweetCount"},
		InteractionReply:   {Community: "replyCommunity", Count: "replyCount"},
	}
)

// CommunityFields names the per-interaction community id and count fields.
type CommunityFields struct {
	Community string
	Count     string
}

// NodesField resolves the relation-string field of an interaction.
func NodesField(interaction string) (string, bool) {
	f, ok := nodesFields[interaction]
	return f, ok
}

// TimesField resolves the interaction-times field of an interaction.
func TimesField(interaction string) (string, bool) {
	f, ok := timesFields[interaction]
	return f, ok
}

// CommunityField resolves the community fields of an interaction.
func CommunityField(interaction string) (CommunityFields, bool) {
	f, ok := communityFields[interaction]
	return f, ok
}

// GraphInput selects the documents whose relation strings are exploded
// into the graph. Keyword is a raw query fragment; empty means all.
type GraphInput struct {
	Core        string
	Keyword     string
	Interaction string
	Filters     solr.Filters
}

// Edge is one weighted interaction between two accounts.
type Edge struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Weight int    `json:"weight"`
}

// Node is one account in the reconstructed graph. X and Y are nil when
// the relation string carried no coordinates.
type Node struct {
	Name        string   `json:"node"`
	Community   int      `json:"community"`
	Degree      int      `json:"degree"`
	X           *float64 `json:"x"`
	Y           *float64 `json:"y"`
	Description string   `json:"desc"`
}

// GraphOutput is the reconstructed interaction graph.
type GraphOutput struct {
	Edges []Edge
	Nodes []Node
}

// StatsInput selects the community statistics facets.
type StatsInput struct {
	Core        string
	Keyword     string
	Interaction string
	Filters     solr.Filters
	Limit       int
}

// CommunityStats summarizes one detected community.
type CommunityStats struct {
	ID              string   `json:"id"`
	ActiveAccounts  int      `json:"nbActiveAccounts"`
	PostsPerAccount float64  `json:"nbTweetsPerAccount"`
	RepostsPerPost  float64  `json:"nbRetweetsPerTweet"`
	TopAccounts     []string `json:"topRetweetedAccounts"`
}

// StatsOutput pairs community summaries with per-community traffic.
type StatsOutput struct {
	Communities []CommunityStats
	Traffic     map[string][]model.DateCount
}

// MapInfoInput selects the per-community location and language facets.
type MapInfoInput struct {
	Core        string
	Keyword     string
	Interaction string
	Filters     solr.Filters
	Communities []string
}

// AllCommunitiesKey labels the cross-community location union.
const AllCommunitiesKey = "All Communities"

// MapInfoOutput holds geolocation and language spreads keyed by
// community id.
type MapInfoOutput struct {
	TweetLocations map[string][]model.ValueCount
	UserLocations  map[string][]model.ValueCount
	Languages      map[string][]model.LanguageCount
}

// ExtractInput selects the raw interaction extraction scan.
type ExtractInput struct {
	Core        string
	Interaction string
}

// ExtractOutput is the aggregated interaction map: target account ->
// source account -> interaction count.
type ExtractOutput struct {
	Interactions map[string]map[string]int
	Hits         int
	EventID      string
}

// FieldUpdate is one partial document write.
type FieldUpdate struct {
	ID     string
	Fields map[string]any
}
