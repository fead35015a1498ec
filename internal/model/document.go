package model

// Document is one indexed post as stored in a Solr core. Multi-valued
// and optional fields keep pointer/slice types so absence survives
// decoding.
type Document struct {
	ID               string  `json:"id"`
	VideoID          *string `json:"videoId,omitempty"`
	FullText         string  `json:"fullText,omitempty"`
	CreatedAtDays    string  `json:"createdAtDays,omitempty"`
	Sentiment        string  `json:"sentiment,omitempty"`
	Language         string  `json:"language,omitempty"`
	UserScreenName   string  `json:"userScreenName,omitempty"`
	UsersDescription string  `json:"usersDescription,omitempty"`
	UserLocation     string  `json:"userLocation,omitempty"`
	LocationGps      string  `json:"locationGps,omitempty"`

	UsersFollowersCount int `json:"usersFollowersCount,omitempty"`
	RetweetCount        int `json:"retweetCount,omitempty"`
	ReplyCount          int `json:"replyCount,omitempty"`
	FavoriteCount       int `json:"favoriteCount,omitempty"`

	RetweetCommunity *int `json:"retweetCommunity,omitempty"`
	ReplyCommunity   *int `json:"replyCommunity,omitempty"`

	Retweeters   []string `json:"retweeters,omitempty"`
	RetweetTimes []string `json:"retweetTimes,omitempty"`
	RepliesTimes []string `json:"repliesTimes,omitempty"`

	RetweetNetworkNodes []string `json:"retweetNetworkNodes,omitempty"`
	ReplyNetworkNodes   []string `json:"replyNetworkNodes,omitempty"`

	ProcessedTokens []string `json:"processedTokens,omitempty"`
}

// notAvailable marks location fields the ingestion pipeline could not
// resolve.
const notAvailable = "not_available"

// CleanLocation hides the ingestion placeholder for unresolved locations.
func CleanLocation(loc string) string {
	if loc == notAvailable {
		return ""
	}
	return loc
}

// Community returns the document's interaction community, preferring the
// retweet community when both are present.
func (d Document) Community() *int {
	if d.RetweetCommunity != nil {
		return d.RetweetCommunity
	}
	return d.ReplyCommunity
}
