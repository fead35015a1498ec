package usecase

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"analytics-srv/internal/model"
	"analytics-srv/internal/network"
	"analytics-srv/pkg/log"
	pkgsolr "analytics-srv/pkg/solr"
)

func TestGetMapInfo(t *testing.T) {
	repo := &fakeIndexRepo{
		mapInfo: func(_, _, communityField string) (*pkgsolr.FacetResponse, error) {
			if communityField != "replyCommunity" {
				t.Errorf("community field = %q", communityField)
			}
			return &pkgsolr.FacetResponse{
				Facets: pkgsolr.FacetSet{Fields: map[string]pkgsolr.BucketList{
					"stats": bucketList(
						pkgsolr.Bucket{Val: "1", Sub: map[string]pkgsolr.BucketList{
							"tweets_locations_by_communities": bucketList(
								pkgsolr.Bucket{Val: "Paris", Count: 4},
								pkgsolr.Bucket{Val: "not_available", Count: 9},
							),
							"users_locations_by_communities": bucketList(
								pkgsolr.Bucket{Val: "Lyon", Count: 2},
							),
							"Languages_per_community": bucketList(
								pkgsolr.Bucket{Val: "en-GB", Count: 7},
							),
						}},
						pkgsolr.Bucket{Val: "0", Sub: map[string]pkgsolr.BucketList{
							"tweets_locations_by_communities": bucketList(
								pkgsolr.Bucket{Val: "Nowhere", Count: 1},
							),
						}},
						pkgsolr.Bucket{Val: "2", Sub: map[string]pkgsolr.BucketList{
							"tweets_locations_by_communities": bucketList(
								pkgsolr.Bucket{Val: "Paris", Count: 2},
								pkgsolr.Bucket{Val: "Berlin", Count: 1},
							),
						}},
					),
				}},
			}, nil
		},
	}
	uc := New(log.NewNoop(), repo, nil, Config{})

	got, err := uc.GetMapInfo(context.Background(), network.MapInfoInput{
		Core:        "tweets",
		Interaction: network.InteractionReply,
		Communities: []string{"1", "2"},
	})
	if err != nil {
		t.Fatalf("GetMapInfo() error = %v", err)
	}

	if _, ok := got.TweetLocations["0"]; ok {
		t.Errorf("unassigned community should be excluded")
	}

	wantOne := []model.ValueCount{{Value: "Paris", Count: 4}}
	if !reflect.DeepEqual(got.TweetLocations["1"], wantOne) {
		t.Errorf("community 1 tweet locations = %v, want %v (placeholder hidden)", got.TweetLocations["1"], wantOne)
	}

	wantAll := []model.ValueCount{{Value: "Paris", Count: 6}, {Value: "Berlin", Count: 1}}
	if !reflect.DeepEqual(got.TweetLocations[network.AllCommunitiesKey], wantAll) {
		t.Errorf("all communities = %v, want summed union %v", got.TweetLocations[network.AllCommunitiesKey], wantAll)
	}

	if !reflect.DeepEqual(got.UserLocations[network.AllCommunitiesKey], []model.ValueCount{{Value: "Lyon", Count: 2}}) {
		t.Errorf("all communities user locations = %v", got.UserLocations[network.AllCommunitiesKey])
	}

	langs := got.Languages["1"]
	if len(langs) != 1 || langs[0].Language != "En-GB" || langs[0].Count != 7 {
		t.Errorf("languages = %v, want first rune uppercased only", langs)
	}
}

func TestGetMapInfoCommunityFilter(t *testing.T) {
	repo := &fakeIndexRepo{
		mapInfo: func(_, _, _ string) (*pkgsolr.FacetResponse, error) {
			return &pkgsolr.FacetResponse{}, nil
		},
	}
	uc := New(log.NewNoop(), repo, nil, Config{})

	_, err := uc.GetMapInfo(context.Background(), network.MapInfoInput{
		Core:        "tweets",
		Interaction: network.InteractionRetweet,
		Communities: []string{"1", "4"},
	})
	if err != nil {
		t.Fatalf("GetMapInfo() error = %v", err)
	}
	if !strings.Contains(repo.lastQueries[0], "retweetCommunity:(1 OR 4)") {
		t.Errorf("query = %q, want community filter", repo.lastQueries[0])
	}
}
