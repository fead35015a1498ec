package solr

import (
	"regexp"
	"strings"
)

var (
	controlChars = regexp.MustCompile(`[?!=.$/%]+`)
	whitespace   = regexp.MustCompile(`[\s]+`)
)

// EscapeTerm strips query control characters from a raw term, trims it,
// and collapses internal whitespace into the index space token. Returns
// the empty string when nothing survives.
func EscapeTerm(term string) string {
	term = controlChars.ReplaceAllString(term, "")
	term = strings.TrimSpace(term)
	return whitespace.ReplaceAllString(term, SpaceToken)
}

// DecodeTerm reverses EscapeTerm's space encoding, yielding the display
// form of a term.
func DecodeTerm(term string) string {
	return strings.ReplaceAll(term, SpaceToken, " ")
}

// DecodeQuery turns a built query fragment into the literal query string
// the index parses, replacing the space token inside terms with spaces.
func DecodeQuery(query string) string {
	return strings.ReplaceAll(query, SpaceToken, " ")
}

// TermList normalizes a raw keyword list: each entry is escaped, empties
// are dropped, and duplicates are removed keeping first occurrence order.
func TermList(keywords []string) []string {
	seen := make(map[string]struct{}, len(keywords))
	out := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		term := EscapeTerm(kw)
		if term == "" {
			continue
		}
		if _, ok := seen[term]; ok {
			continue
		}
		seen[term] = struct{}{}
		out = append(out, term)
	}
	return out
}

// SplitKeywords splits a comma-separated keyword string into raw entries.
func SplitKeywords(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
