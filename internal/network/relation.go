package network

import (
	"errors"
	"strconv"
	"strings"
)

// ErrMalformedRelation - the relation string has too few fields to name
// an account.
var ErrMalformedRelation = errors.New("network: malformed relation string")

// Relation is one decoded relation string of the form
// "<account> <community> <degree> (<x>,<y>)".
type Relation struct {
	Account   string
	Community int
	Degree    int
	X         *float64
	Y         *float64
}

// ParseRelation decodes a relation string. Missing or malformed
// coordinates leave X and Y nil rather than failing the row; community
// and degree fall back to zero when unreadable.
func ParseRelation(s string) (Relation, error) {
	fields := strings.Fields(s)
	if len(fields) < 3 {
		return Relation{}, ErrMalformedRelation
	}

	rel := Relation{Account: fields[0]}
	rel.Community, _ = strconv.Atoi(fields[1])
	rel.Degree, _ = strconv.Atoi(fields[2])

	open := strings.Index(s, "(")
	if open < 0 {
		return rel, nil
	}
	coords := strings.TrimSuffix(strings.TrimSpace(s[open+1:]), ")")
	parts := strings.Split(coords, ",")
	if len(parts) != 2 {
		return rel, nil
	}
	x, errX := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	y, errY := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if errX != nil || errY != nil {
		return rel, nil
	}
	rel.X, rel.Y = &x, &y
	return rel, nil
}
