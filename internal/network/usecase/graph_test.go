package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"analytics-srv/internal/model"
	"analytics-srv/internal/network"
	"analytics-srv/internal/network/repository"
	"analytics-srv/pkg/log"
	pkgsolr "analytics-srv/pkg/solr"
)

type fakeIndexRepo struct {
	docs        func(core, nodesField, query string) ([]model.Document, error)
	stats       func(core, query string, fields network.CommunityFields, limit int) (*pkgsolr.FacetResponse, error)
	mapInfo     func(core, query, communityField string) (*pkgsolr.FacetResponse, error)
	stream      func(core, query string, fields []string, fn func([]model.Document) error) (int, error)
	update      func(core string, docs []map[string]any) ([]map[string]any, error)
	lastQueries []string
}

func (f *fakeIndexRepo) FetchInteractionDocs(_ context.Context, core, nodesField, query string) ([]model.Document, error) {
	f.lastQueries = append(f.lastQueries, query)
	return f.docs(core, nodesField, query)
}

func (f *fakeIndexRepo) FetchCommunityStats(_ context.Context, core, query string, fields network.CommunityFields, limit int) (*pkgsolr.FacetResponse, error) {
	f.lastQueries = append(f.lastQueries, query)
	return f.stats(core, query, fields, limit)
}

func (f *fakeIndexRepo) FetchCommunityMapInfo(_ context.Context, core, query, communityField string) (*pkgsolr.FacetResponse, error) {
	f.lastQueries = append(f.lastQueries, query)
	return f.mapInfo(core, query, communityField)
}

func (f *fakeIndexRepo) StreamInteractions(_ context.Context, core, query string, fields []string, fn func([]model.Document) error) (int, error) {
	f.lastQueries = append(f.lastQueries, query)
	return f.stream(core, query, fields, fn)
}

func (f *fakeIndexRepo) UpdateDocuments(_ context.Context, core string, docs []map[string]any) ([]map[string]any, error) {
	return f.update(core, docs)
}

var _ repository.IndexRepository = (*fakeIndexRepo)(nil)

func TestGetGraphExplodesRelations(t *testing.T) {
	repo := &fakeIndexRepo{
		docs: func(_, _, _ string) ([]model.Document, error) {
			return []model.Document{
				{
					UserScreenName:      "alice",
					UsersDescription:    "climate reporter",
					RetweetNetworkNodes: []string{"bob 1 2 (0.5,1.5)", "carol 2 3", "bob 1 2 (0.5,1.5)"},
				},
				{
					UserScreenName:      "bob",
					RetweetNetworkNodes: []string{"bob 1 2", "alice 3 4 (2.0,3.0)"},
				},
			}, nil
		},
	}
	uc := New(log.NewNoop(), repo, nil, Config{})

	got, err := uc.GetGraph(context.Background(), network.GraphInput{
		Core:        "tweets",
		Interaction: network.InteractionRetweet,
	})
	if err != nil {
		t.Fatalf("GetGraph() error = %v", err)
	}

	wantEdges := []network.Edge{
		{Source: "bob", Target: "alice", Weight: 2},
		{Source: "carol", Target: "alice", Weight: 1},
		{Source: "alice", Target: "bob", Weight: 1},
	}
	if !reflect.DeepEqual(got.Edges, wantEdges) {
		t.Errorf("edges = %+v, want %+v", got.Edges, wantEdges)
	}

	// bob's self relation keeps the node but adds no edge; each source
	// appears once.
	if len(got.Nodes) != 3 {
		t.Fatalf("len(nodes) = %d, want 3", len(got.Nodes))
	}
	names := []string{got.Nodes[0].Name, got.Nodes[1].Name, got.Nodes[2].Name}
	if !reflect.DeepEqual(names, []string{"bob", "carol", "alice"}) {
		t.Errorf("node order = %v", names)
	}
	if got.Nodes[0].Community != 1 || got.Nodes[0].Degree != 2 {
		t.Errorf("bob node = %+v", got.Nodes[0])
	}
	if got.Nodes[0].X == nil || *got.Nodes[0].X != 0.5 {
		t.Errorf("bob x = %v, want 0.5", got.Nodes[0].X)
	}
	if got.Nodes[1].X != nil {
		t.Errorf("carol x = %v, want nil", got.Nodes[1].X)
	}
	if got.Nodes[2].Description != "climate reporter" {
		t.Errorf("alice desc = %q", got.Nodes[2].Description)
	}
}

func TestGetGraphKeywordAndFilters(t *testing.T) {
	repo := &fakeIndexRepo{
		docs: func(_, _, _ string) ([]model.Document, error) { return nil, nil },
	}
	uc := New(log.NewNoop(), repo, nil, Config{})

	_, err := uc.GetGraph(context.Background(), network.GraphInput{
		Core:        "tweets",
		Keyword:     `fullText:"cop28"`,
		Interaction: network.InteractionReply,
		Filters:     pkgsolr.Filters{Language: "EN"},
	})
	if err != nil {
		t.Fatalf("GetGraph() error = %v", err)
	}
	want := `replyNetworkNodes:* AND (fullText:"cop28") AND language:"en"`
	if repo.lastQueries[0] != want {
		t.Errorf("query = %q, want %q", repo.lastQueries[0], want)
	}
}

func TestGetGraphUnknownInteraction(t *testing.T) {
	uc := New(log.NewNoop(), &fakeIndexRepo{}, nil, Config{})
	if _, err := uc.GetGraph(context.Background(), network.GraphInput{Interaction: "quote"}); !errors.Is(err, network.ErrUnknownInteraction) {
		t.Fatalf("got %v, want ErrUnknownInteraction", err)
	}
}

func TestGetGraphCoreNotAvailable(t *testing.T) {
	repo := &fakeIndexRepo{
		docs: func(_, _, _ string) ([]model.Document, error) {
			return nil, repository.ErrCoreNotFound
		},
	}
	uc := New(log.NewNoop(), repo, nil, Config{})
	if _, err := uc.GetGraph(context.Background(), network.GraphInput{Interaction: network.InteractionRetweet}); !errors.Is(err, network.ErrCoreNotAvailable) {
		t.Fatalf("got %v, want ErrCoreNotAvailable", err)
	}
}

func TestWrapDescription(t *testing.T) {
	got := wrapDescription("one two three four", 9)
	want := "one two<br>three<br>four"
	if got != want {
		t.Errorf("wrapDescription() = %q, want %q", got, want)
	}
	if wrapDescription("", 10) != "" {
		t.Errorf("empty input should stay empty")
	}
	if wrapDescription("short", 64) != "short" {
		t.Errorf("single word should not wrap")
	}
}
