package solr

import (
	"strings"
	"testing"
)

func TestBuildTwoKeywords(t *testing.T) {
	qb := NewQueryBuilder(Filters{})
	queries := qb.Build([]string{"climate change", "@greta"}, "AND")

	if len(queries) != 3 {
		t.Fatalf("got %d queries, want 3", len(queries))
	}
	if queries[0].Keyword != AllKey {
		t.Fatalf("first keyword = %q, want %q", queries[0].Keyword, AllKey)
	}

	all := queries[0].Query
	for _, fragment := range []string{
		SentimentGate,
		`fullText:("climate%20change")`,
		`(userScreenName:("greta") OR usersDescription:("greta"))`,
	} {
		if !strings.Contains(all, fragment) {
			t.Errorf("combined query missing %q:\n%s", fragment, all)
		}
	}

	byKeyword := map[string]string{}
	for _, q := range queries[1:] {
		byKeyword[q.Keyword] = q.Query
	}
	if q, ok := byKeyword["climate change"]; !ok || !strings.Contains(q, `fullText:"climate%20change"`) {
		t.Errorf("single text query wrong: %q", q)
	}
	if q, ok := byKeyword["@greta"]; !ok || !strings.Contains(q, `userScreenName:"greta"`) {
		t.Errorf("single account query wrong: %q", q)
	}
}

func TestBuildSingleKeyword(t *testing.T) {
	qb := NewQueryBuilder(Filters{})
	queries := qb.Build([]string{"#cop28"}, "OR")

	if len(queries) != 1 {
		t.Fatalf("got %d queries, want 1 (no combined entry for a single keyword)", len(queries))
	}
	if queries[0].Keyword != "#cop28" {
		t.Errorf("keyword = %q, want %q", queries[0].Keyword, "#cop28")
	}
	if want := `hashtags:"cop28"`; !strings.Contains(queries[0].Query, want) {
		t.Errorf("query missing %q: %s", want, queries[0].Query)
	}
}

func TestBuildNoKeywords(t *testing.T) {
	qb := NewQueryBuilder(Filters{Language: "English"})
	queries := qb.Build(nil, "AND")

	if len(queries) != 1 || queries[0].Keyword != AllKey {
		t.Fatalf("got %v, want a single All query", queries)
	}
	want := SentimentGate + ` AND language:"english"`
	if queries[0].Query != want {
		t.Errorf("query = %q, want %q", queries[0].Query, want)
	}
}

func TestFilterSuffix(t *testing.T) {
	tests := []struct {
		name    string
		filters Filters
		want    string
	}{
		{name: "empty", filters: Filters{}, want: ""},
		{name: "all values are no-ops", filters: Filters{Language: "All", Sentiment: "All"}, want: ""},
		{
			name:    "language lowercased",
			filters: Filters{Language: "French"},
			want:    ` AND language:"french"`,
		},
		{
			name:    "author location",
			filters: Filters{Location: "New York", LocationType: "author"},
			want:    ` AND userLocation:"New%20York"`,
		},
		{
			name:    "tweet location",
			filters: Filters{Location: "Paris", LocationType: "tweet"},
			want:    ` AND locationGps:"Paris"`,
		},
		{
			name:    "location without type ignored",
			filters: Filters{Location: "Paris"},
			want:    "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewQueryBuilder(tt.filters).Suffix(); got != tt.want {
				t.Errorf("suffix = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDateRangeClause(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		want       string
	}{
		{name: "both empty", start: "", end: "", want: ""},
		{name: "both invalid collapse", start: "nope", end: "also-nope", want: ""},
		{name: "start only", start: "2020-01-01", end: "", want: " AND createdAt:[2020-01-01T00:00:00Z TO *]"},
		{name: "end only", start: "", end: "2020-06-30", want: " AND createdAt:[* TO 2020-06-30T23:59:59Z]"},
		{
			name:  "closed range",
			start: "2020-01-01",
			end:   "2020-06-30",
			want:  " AND createdAt:[2020-01-01T00:00:00Z TO 2020-06-30T23:59:59Z]",
		},
		{name: "invalid start widens", start: "01/02/2020", end: "2020-06-30", want: " AND createdAt:[* TO 2020-06-30T23:59:59Z]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dateRangeClause(tt.start, tt.end); got != tt.want {
				t.Errorf("dateRangeClause(%q, %q) = %q, want %q", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestDecodeQuery(t *testing.T) {
	in := SentimentGate + ` AND fullText:"climate%20change" AND language:"english"`
	want := SentimentGate + ` AND fullText:"climate change" AND language:"english"`
	if got := DecodeQuery(in); got != want {
		t.Errorf("DecodeQuery() = %q, want %q", got, want)
	}
}
