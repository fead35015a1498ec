package usecase

import (
	"context"
	"encoding/json"

	"analytics-srv/internal/model"
	"analytics-srv/internal/report"
	"analytics-srv/pkg/log"
	"analytics-srv/pkg/solr"
)

// noNameFound stands in for documents missing an account name.
const noNameFound = "_NoNameFound_"

// indexed keeps insertion order next to a lookup index.
type indexed[T any] struct {
	keys []string
	idx  map[string]int
	vals []T
}

func newIndexed[T any]() *indexed[T] {
	return &indexed[T]{idx: map[string]int{}}
}

func (x *indexed[T]) lookup(key string) (int, bool) {
	i, ok := x.idx[key]
	return i, ok
}

func (x *indexed[T]) put(key string, v T) {
	if i, ok := x.idx[key]; ok {
		x.vals[i] = v
		return
	}
	x.idx[key] = len(x.keys)
	x.keys = append(x.keys, key)
	x.vals = append(x.vals, v)
}

// combineGroups dedups the per-sentiment document groups into top account
// and top post lists, and merges them into an "All Sentiments" list that
// keeps the highest-retweet entry per account and per post.
func combineGroups(ctx context.Context, l log.Logger, groups []solr.Group) (map[string][]report.TopUser, map[string][]report.TopTweet) {
	allUsers := newIndexed[report.TopUser]()
	allTweets := newIndexed[report.TopTweet]()
	users := map[string][]report.TopUser{}
	tweets := map[string][]report.TopTweet{}

	for _, group := range groups {
		sentiment := group.GroupValue
		groupUsers := newIndexed[report.TopUser]()
		groupTweets := newIndexed[report.TopTweet]()

		for _, raw := range group.Doclist.Docs {
			var doc model.Document
			if err := json.Unmarshal(raw, &doc); err != nil {
				l.Warnf(ctx, "report.usecase.combineGroups: skipping bad document: %v", err)
				continue
			}
			if doc.UserScreenName == "" {
				doc.UserScreenName = noNameFound
			}

			if _, seen := groupUsers.lookup(doc.UserScreenName); !seen {
				user := report.TopUser{
					ScreenName:   doc.UserScreenName,
					Description:  doc.UsersDescription,
					RetweetCount: doc.RetweetCount,
					Language:     doc.Language,
					Community:    doc.Community(),
					Followers:    doc.UsersFollowersCount,
					Location:     model.CleanLocation(doc.UserLocation),
					VideoID:      doc.VideoID,
				}
				groupUsers.put(doc.UserScreenName, user)
				if i, ok := allUsers.lookup(doc.UserScreenName); !ok {
					allUsers.put(doc.UserScreenName, user)
				} else if allUsers.vals[i].RetweetCount < user.RetweetCount {
					allUsers.vals[i] = user
				}
			}

			if _, seen := groupTweets.lookup(doc.ID); !seen {
				tweet := report.TopTweet{
					ID:            doc.ID,
					FullText:      doc.FullText,
					Date:          doc.CreatedAtDays,
					RetweetCount:  doc.RetweetCount,
					FavoriteCount: doc.FavoriteCount,
					Language:      doc.Language,
					Location:      model.CleanLocation(doc.LocationGps),
					VideoID:       doc.VideoID,
				}
				groupTweets.put(doc.ID, tweet)
				if i, ok := allTweets.lookup(doc.ID); !ok {
					allTweets.put(doc.ID, tweet)
				} else if allTweets.vals[i].RetweetCount < tweet.RetweetCount {
					allTweets.vals[i] = tweet
				}
			}
		}

		users[sentiment] = groupUsers.vals
		tweets[sentiment] = groupTweets.vals
	}

	users[report.AllSentimentsKey] = allUsers.vals
	tweets[report.AllSentimentsKey] = allTweets.vals
	return users, tweets
}
