package usecase

import (
	"context"
	"encoding/json"
	"reflect"
	"testing"

	"analytics-srv/internal/model"
	"analytics-srv/pkg/log"
	"analytics-srv/pkg/solr"
	"analytics-srv/pkg/stopwords"
)

func buckets(pairs ...any) solr.BucketList {
	var list solr.BucketList
	for i := 0; i < len(pairs); i += 2 {
		list.Buckets = append(list.Buckets, solr.Bucket{
			Val:   pairs[i].(string),
			Count: pairs[i+1].(int),
		})
	}
	return list
}

func testFacetResponse() *solr.FacetResponse {
	positive := solr.Bucket{
		Val: solr.SentimentPositive, Count: 6,
		Sub: map[string]solr.BucketList{
			"Sentiments_Distributions": buckets("2020-01-02", 4, "2020-01-01", 2),
			"hashtags":                 buckets("cop28", 3, "go", 1),
			"processedTokens":          buckets("climate", 4, "a", 2, "the", 3),
			"tweets_locations_by_sentiments": buckets("Paris", 2),
			"users_locations_by_sentiments":  buckets("London", 1),
			"Sentiment_per_Language":         buckets("en", 5, "fr", 1),
		},
	}
	negative := solr.Bucket{
		Val: solr.SentimentNegative, Count: 2,
		Sub: map[string]solr.BucketList{
			"Sentiments_Distributions": buckets("2020-01-01", 2),
			"hashtags":                 buckets("cop28", 1),
			"processedTokens":          buckets("climate", 1),
		},
	}
	languages := solr.BucketList{Buckets: []solr.Bucket{
		{
			Val: "en", Count: 3,
			Sub: map[string]solr.BucketList{
				"tweets_locations_by_languages": buckets("Paris", 2),
				"users_locations_by_languages":  buckets("London", 1),
				"tweets_languages_by_sentiments": {Buckets: []solr.Bucket{{
					Val:   solr.SentimentPositive,
					Count: 3,
					Sub:   map[string]solr.BucketList{"createdAtDays": buckets("2020-01-01", 3)},
				}}},
			},
		},
		{
			Val: "fr", Count: 5,
			Sub: map[string]solr.BucketList{
				"tweets_locations_by_languages": buckets("Paris", 1, "Lyon", 1),
			},
		},
	}}

	return &solr.FacetResponse{
		Facets: solr.FacetSet{
			Count: 8,
			Fields: map[string]solr.BucketList{
				"traffic":    buckets("2020-01-02", 4, "2020-01-01", 4),
				"Sentiments": {Buckets: []solr.Bucket{positive, negative}},
				"Languages":  languages,
			},
		},
	}
}

func newTestUseCase() *implUseCase {
	stop := stopwords.List{"the": {}}
	return New(log.NewNoop(), &fakeIndexRepo{}, nil, stop, Config{}).(*implUseCase)
}

func TestFlatten(t *testing.T) {
	uc := newTestUseCase()
	kr := uc.flatten(context.Background(), testFacetResponse(), 10)

	if kr.Count != 8 {
		t.Errorf("Count = %d, want 8", kr.Count)
	}

	wantTraffic := []model.DateCount{{Date: "2020-01-01", Count: 4}, {Date: "2020-01-02", Count: 4}}
	if !reflect.DeepEqual(kr.Traffic, wantTraffic) {
		t.Errorf("Traffic = %v, want sorted by date %v", kr.Traffic, wantTraffic)
	}

	if got := kr.SentimentTimelines[solr.SentimentPositive]; len(got) != 2 {
		t.Errorf("positive timeline = %v, want 2 days", got)
	}

	// Language distributions are capitalized and sorted by count.
	wantLangs := []model.LanguageCount{{Language: "Fr", Count: 5}, {Language: "En", Count: 3}}
	if !reflect.DeepEqual(kr.LanguageDistributions, wantLangs) {
		t.Errorf("LanguageDistributions = %v, want %v", kr.LanguageDistributions, wantLangs)
	}

	hashtags := kr.Features["hashtags"]
	if hashtags == nil {
		t.Fatal("hashtags breakdown missing")
	}
	// cop28: (3-1)/4 = 0.5, go: 1/1 = 1
	if hashtags.PositiveNegative[0].Value != "go" || hashtags.PositiveNegative[0].Count != 1 {
		t.Errorf("most positive hashtag = %+v, want go/1", hashtags.PositiveNegative[0])
	}

	// processedTokens substitutes raw positive counts in the positive
	// ranking; the stopped variant drops stopwords and 1-char tokens.
	tokens := kr.Features["processedTokens"]
	for _, sv := range tokens.PositiveNegative {
		if sv.Value == "climate" && sv.Count != 4 {
			t.Errorf("climate count = %v, want raw positive count 4", sv.Count)
		}
	}
	stopped := kr.Features["processedTokensStopped"]
	if stopped == nil {
		t.Fatal("processedTokensStopped missing")
	}
	for _, vc := range stopped.BySentiment[solr.SentimentPositive] {
		if vc.Value == "the" || vc.Value == "a" {
			t.Errorf("stopped list still contains %q", vc.Value)
		}
	}

	// Location union across languages sums per-language counts.
	wantUnion := []model.ValueCount{{Value: "Paris", Count: 3}, {Value: "Lyon", Count: 1}}
	if !reflect.DeepEqual(kr.TweetLocationsByLanguage.AllLanguages, wantUnion) {
		t.Errorf("AllLanguages union = %v, want %v", kr.TweetLocationsByLanguage.AllLanguages, wantUnion)
	}

	if kr.TweetLocationsBySentiment.NegativePositive != nil {
		t.Error("location breakdown must not carry a most-negative ranking")
	}

	if tl := kr.LanguageTimelines["en"][solr.SentimentPositive]; len(tl) != 1 || tl[0].Count != 3 {
		t.Errorf("language timeline = %v", tl)
	}
}

func TestFlattenIdempotentShape(t *testing.T) {
	uc := newTestUseCase()
	a := uc.flatten(context.Background(), testFacetResponse(), 10)
	b := uc.flatten(context.Background(), testFacetResponse(), 10)

	aj, _ := json.Marshal(a)
	bj, _ := json.Marshal(b)
	if string(aj) != string(bj) {
		t.Error("flatten is not deterministic for identical input")
	}
}

func TestCombineGroups(t *testing.T) {
	doc := func(id, user string, retweets int) json.RawMessage {
		raw, _ := json.Marshal(map[string]any{
			"id": id, "userScreenName": user, "retweetCount": retweets,
			"createdAtDays": "2020-01-01", "language": "en",
		})
		return raw
	}
	groups := []solr.Group{
		{GroupValue: solr.SentimentPositive},
		{GroupValue: solr.SentimentNegative},
	}
	groups[0].Doclist.Docs = []json.RawMessage{
		doc("t1", "alice", 10),
		doc("t1", "alice", 10), // duplicate within group
		doc("t2", "bob", 3),
	}
	groups[1].Doclist.Docs = []json.RawMessage{
		doc("t3", "alice", 25),
	}

	users, tweets := combineGroups(context.Background(), log.NewNoop(), groups)

	if got := len(tweets[solr.SentimentPositive]); got != 2 {
		t.Errorf("positive tweets = %d, want 2 after dedup", got)
	}
	if got := len(tweets["All Sentiments"]); got != 3 {
		t.Errorf("all tweets = %d, want 3", got)
	}

	var alice *struct {
		retweets int
	}
	for _, u := range users["All Sentiments"] {
		if u.ScreenName == "alice" {
			alice = &struct{ retweets int }{u.RetweetCount}
		}
	}
	if alice == nil || alice.retweets != 25 {
		t.Errorf("alice retweets = %v, want max 25 across sentiments", alice)
	}
	if got := len(users["All Sentiments"]); got != 2 {
		t.Errorf("all users = %d, want 2", got)
	}
}
