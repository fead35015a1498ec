package usecase

import (
	"context"
	"reflect"
	"testing"

	"analytics-srv/internal/model"
	"analytics-srv/internal/network"
	"analytics-srv/pkg/log"
	pkgsolr "analytics-srv/pkg/solr"
)

func bucketList(buckets ...pkgsolr.Bucket) pkgsolr.BucketList {
	return pkgsolr.BucketList{Buckets: buckets}
}

func TestGetStats(t *testing.T) {
	repo := &fakeIndexRepo{
		stats: func(_, _ string, fields network.CommunityFields, _ int) (*pkgsolr.FacetResponse, error) {
			if fields.Community != "retweetCommunity" || fields.Count != "retweetCount" {
				t.Errorf("fields = %+v", fields)
			}
			return &pkgsolr.FacetResponse{
				Facets: pkgsolr.FacetSet{Fields: map[string]pkgsolr.BucketList{
					"stats": bucketList(
						pkgsolr.Bucket{
							Val:   "1",
							Count: 40,
							Funcs: map[string]float64{"nb_accounts": 10, "retweeted": 120},
							Sub: map[string]pkgsolr.BucketList{
								"most_ret_accounts": bucketList(
									pkgsolr.Bucket{Val: "alice", Count: 12},
									pkgsolr.Bucket{Val: "bob", Count: 5},
								),
							},
						},
						pkgsolr.Bucket{Val: "0", Count: 99, Funcs: map[string]float64{"nb_accounts": 3}},
						pkgsolr.Bucket{Val: "2", Count: 0, Funcs: map[string]float64{"nb_accounts": 0}},
					),
					"communities_traffic": bucketList(
						pkgsolr.Bucket{Val: "1", Sub: map[string]pkgsolr.BucketList{
							"traffic": bucketList(
								pkgsolr.Bucket{Val: "2023-02-01", Count: 3},
								pkgsolr.Bucket{Val: "2023-01-01", Count: 5},
							),
						}},
						pkgsolr.Bucket{Val: "0"},
						pkgsolr.Bucket{Val: "-1"},
					),
				}},
			}, nil
		},
	}
	uc := New(log.NewNoop(), repo, nil, Config{})

	got, err := uc.GetStats(context.Background(), network.StatsInput{
		Core:        "tweets",
		Interaction: network.InteractionRetweet,
	})
	if err != nil {
		t.Fatalf("GetStats() error = %v", err)
	}

	if len(got.Communities) != 2 {
		t.Fatalf("len(communities) = %d, want 2 (unassigned excluded)", len(got.Communities))
	}
	first := got.Communities[0]
	if first.ID != "1" || first.ActiveAccounts != 10 {
		t.Errorf("community = %+v", first)
	}
	if first.PostsPerAccount != 4 {
		t.Errorf("posts per account = %v, want 4", first.PostsPerAccount)
	}
	if first.RepostsPerPost != 3 {
		t.Errorf("reposts per post = %v, want 3", first.RepostsPerPost)
	}
	if !reflect.DeepEqual(first.TopAccounts, []string{"alice", "bob"}) {
		t.Errorf("top accounts = %v", first.TopAccounts)
	}
	// empty community keeps zero ratios rather than dividing by zero
	second := got.Communities[1]
	if second.PostsPerAccount != 0 || second.RepostsPerPost != 0 {
		t.Errorf("empty community ratios = %+v", second)
	}

	if len(got.Traffic) != 1 {
		t.Fatalf("traffic keys = %v, want only community 1", got.Traffic)
	}
	want := []model.DateCount{{Date: "2023-01-01", Count: 5}, {Date: "2023-02-01", Count: 3}}
	if !reflect.DeepEqual(got.Traffic["1"], want) {
		t.Errorf("traffic = %v, want dates ascending %v", got.Traffic["1"], want)
	}
}
