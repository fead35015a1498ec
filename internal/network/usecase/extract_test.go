package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"analytics-srv/internal/model"
	"analytics-srv/internal/network"
	"analytics-srv/pkg/log"
)

type fakeProducer struct {
	keys     [][]byte
	payloads [][]byte
	err      error
}

func (f *fakeProducer) Publish(key, value []byte) error {
	f.keys = append(f.keys, key)
	f.payloads = append(f.payloads, value)
	return f.err
}

func (f *fakeProducer) Close() error       { return nil }
func (f *fakeProducer) HealthCheck() error { return nil }

func TestExtractInteractions(t *testing.T) {
	repo := &fakeIndexRepo{
		stream: func(_, query string, _ []string, fn func([]model.Document) error) (int, error) {
			if query != "userScreenName:* AND (retweetTimes:* OR retweeters:*)" {
				t.Errorf("query = %q", query)
			}
			pages := [][]model.Document{
				{
					{
						UserScreenName: "alice",
						RetweetTimes:   []string{"bob 2023-01-01T10:00:00Z", "bob 2023-01-02T10:00:00Z"},
						Retweeters:     []string{"carol"},
					},
				},
				{
					{
						UserScreenName: "alice",
						RetweetTimes:   []string{"bob 2023-01-03T10:00:00Z"},
					},
					{UserScreenName: "", RetweetTimes: []string{"dave 2023-01-01T00:00:00Z"}},
				},
			}
			for _, page := range pages {
				if err := fn(page); err != nil {
					return 0, err
				}
			}
			return 3, nil
		},
	}
	producer := &fakeProducer{}
	uc := New(log.NewNoop(), repo, producer, Config{})

	got, err := uc.ExtractInteractions(context.Background(), network.ExtractInput{
		Core:        "tweets",
		Interaction: network.InteractionRetweet,
	})
	if err != nil {
		t.Fatalf("ExtractInteractions() error = %v", err)
	}

	// bob appears twice in the first document but counts once per
	// document; the second document adds one more.
	if got.Interactions["alice"]["bob"] != 2 {
		t.Errorf("alice<-bob = %d, want 2", got.Interactions["alice"]["bob"])
	}
	if got.Interactions["alice"]["carol"] != 1 {
		t.Errorf("alice<-carol = %d, want 1", got.Interactions["alice"]["carol"])
	}
	if len(got.Interactions) != 1 {
		t.Errorf("targets = %d, want 1 (nameless doc skipped)", len(got.Interactions))
	}
	if got.Hits != 3 {
		t.Errorf("hits = %d, want 3", got.Hits)
	}
	if got.EventID == "" {
		t.Errorf("missing event id")
	}

	if len(producer.payloads) != 1 {
		t.Fatalf("published %d events, want 1", len(producer.payloads))
	}
	var event struct {
		ID          string `json:"id"`
		Core        string `json:"core"`
		Interaction string `json:"interaction"`
		Accounts    int    `json:"accounts"`
		Hits        int    `json:"hits"`
	}
	if err := json.Unmarshal(producer.payloads[0], &event); err != nil {
		t.Fatalf("event payload: %v", err)
	}
	if event.ID != got.EventID || event.Core != "tweets" || event.Interaction != "retweet" {
		t.Errorf("event = %+v", event)
	}
	if event.Accounts != 1 || event.Hits != 3 {
		t.Errorf("event sizes = %+v", event)
	}
}

func TestExtractInteractionsReplyQuery(t *testing.T) {
	repo := &fakeIndexRepo{
		stream: func(_, query string, fields []string, _ func([]model.Document) error) (int, error) {
			if query != "userScreenName:* AND repliesTimes:*" {
				t.Errorf("query = %q", query)
			}
			for _, f := range fields {
				if f == "retweeters" {
					t.Errorf("reply scan should not fetch retweeters")
				}
			}
			return 0, nil
		},
	}
	uc := New(log.NewNoop(), repo, nil, Config{})
	if _, err := uc.ExtractInteractions(context.Background(), network.ExtractInput{Interaction: network.InteractionReply}); err != nil {
		t.Fatalf("ExtractInteractions() error = %v", err)
	}
}

func TestExtractInteractionsProducerFailureIsNotFatal(t *testing.T) {
	repo := &fakeIndexRepo{
		stream: func(_, _ string, _ []string, _ func([]model.Document) error) (int, error) {
			return 0, nil
		},
	}
	uc := New(log.NewNoop(), repo, &fakeProducer{err: errors.New("broker down")}, Config{})
	if _, err := uc.ExtractInteractions(context.Background(), network.ExtractInput{Interaction: network.InteractionRetweet}); err != nil {
		t.Fatalf("ExtractInteractions() error = %v", err)
	}
}

func TestExtractInteractionsUnknownInteraction(t *testing.T) {
	uc := New(log.NewNoop(), &fakeIndexRepo{}, nil, Config{})
	if _, err := uc.ExtractInteractions(context.Background(), network.ExtractInput{Interaction: "like"}); !errors.Is(err, network.ErrUnknownInteraction) {
		t.Fatalf("got %v, want ErrUnknownInteraction", err)
	}
}

func TestUpdateCommunityFields(t *testing.T) {
	var written []map[string]any
	repo := &fakeIndexRepo{
		update: func(_ string, docs []map[string]any) ([]map[string]any, error) {
			written = docs
			return nil, nil
		},
	}
	uc := New(log.NewNoop(), repo, nil, Config{})

	failed, err := uc.UpdateCommunityFields(context.Background(), "tweets", []network.FieldUpdate{
		{ID: "t1", Fields: map[string]any{"retweetCommunity": 3}},
	})
	if err != nil {
		t.Fatalf("UpdateCommunityFields() error = %v", err)
	}
	if failed != 0 {
		t.Errorf("failed = %d, want 0", failed)
	}
	if len(written) != 1 || written[0]["id"] != "t1" {
		t.Fatalf("written = %+v", written)
	}
	set, ok := written[0]["retweetCommunity"].(map[string]any)
	if !ok || set["set"] != 3 {
		t.Errorf("update doc = %+v, want atomic set", written[0])
	}
}

func TestUpdateCommunityFieldsPartialWrite(t *testing.T) {
	repo := &fakeIndexRepo{
		update: func(_ string, docs []map[string]any) ([]map[string]any, error) {
			return docs[1:], errors.New("update failed")
		},
	}
	uc := New(log.NewNoop(), repo, nil, Config{})

	failed, err := uc.UpdateCommunityFields(context.Background(), "tweets", []network.FieldUpdate{
		{ID: "t1", Fields: map[string]any{"replyCommunity": 1}},
		{ID: "t2", Fields: map[string]any{"replyCommunity": 2}},
	})
	if !errors.Is(err, network.ErrPartialWrite) {
		t.Fatalf("got %v, want ErrPartialWrite", err)
	}
	if failed != 1 {
		t.Errorf("failed = %d, want 1", failed)
	}
}
