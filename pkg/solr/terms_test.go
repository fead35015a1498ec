package solr

import (
	"reflect"
	"testing"
)

func TestEscapeTerm(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "climate", want: "climate"},
		{name: "control characters stripped", in: "cli?mate!.", want: "climate"},
		{name: "internal spaces encoded", in: "climate change", want: "climate%20change"},
		{name: "whitespace runs collapse", in: "climate \t\n change", want: "climate%20change"},
		{name: "outer whitespace trimmed", in: "  climate  ", want: "climate"},
		{name: "only control characters", in: "?!=.$/%", want: ""},
		{name: "percent stripped before encoding", in: "50% off now", want: "50%20off%20now"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EscapeTerm(tt.in); got != tt.want {
				t.Errorf("EscapeTerm(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestEscapeTermRoundTrip(t *testing.T) {
	// Decoding an escaped multi-word term restores single spaces.
	terms := []string{"climate change", "global   warming", "one two three"}
	want := []string{"climate change", "global warming", "one two three"}
	for i, term := range terms {
		if got := DecodeTerm(EscapeTerm(term)); got != want[i] {
			t.Errorf("round trip of %q = %q, want %q", term, got, want[i])
		}
	}
}

func TestTermList(t *testing.T) {
	got := TermList([]string{" climate change ", "", "climate change", "#tag", "@user", "  "})
	want := []string{"climate%20change", "#tag", "@user"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TermList() = %v, want %v", got, want)
	}
}

func TestSplitKeywords(t *testing.T) {
	got := SplitKeywords("climate change, paris , ,#cop28")
	want := []string{"climate change", "paris", "#cop28"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitKeywords() = %v, want %v", got, want)
	}
}
