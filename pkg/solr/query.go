package solr

import (
	"fmt"
	"strings"
	"time"
)

// SentimentGate restricts matches to documents carrying a sentiment label.
const SentimentGate = "sentiment:(Positive OR Neutral OR Negative)"

// AllKey names the combined query covering every keyword at once.
const AllKey = "All"

// Filters narrows every built query. Zero values and the literal "All"
// are no-ops.
type Filters struct {
	DateStart    string
	DateEnd      string
	Language     string
	Sentiment    string
	Location     string
	LocationType string
}

// LocationField maps the location type onto the index field it filters.
func (f Filters) LocationField() string {
	switch f.LocationType {
	case "author":
		return "userLocation"
	case "tweet":
		return "locationGps"
	}
	return ""
}

// KeywordQuery pairs a display keyword with its built query fragment.
type KeywordQuery struct {
	Keyword string
	Query   string
}

// QueryBuilder builds per-keyword queries with a fixed filter suffix.
type QueryBuilder struct {
	suffix string
}

// NewQueryBuilder precomputes the filter suffix shared by all queries.
func NewQueryBuilder(f Filters) *QueryBuilder {
	var b strings.Builder
	b.WriteString(filterClause("language", strings.ToLower(f.Language)))
	b.WriteString(filterClause("sentiment", f.Sentiment))
	if field := f.LocationField(); field != "" {
		b.WriteString(filterClause(field, f.Location))
	}
	b.WriteString(dateRangeClause(f.DateStart, f.DateEnd))
	return &QueryBuilder{suffix: b.String()}
}

// Suffix returns the filter clauses appended to every query.
func (qb *QueryBuilder) Suffix() string {
	return qb.suffix
}

// Build turns raw keywords into one query per keyword, plus a combined
// query under AllKey when more than one keyword survives normalization.
// Keywords keep their # and @ prefixes as map keys; the prefixes select
// the hashtag and account fields in the built queries.
func (qb *QueryBuilder) Build(keywords []string, operator string) []KeywordQuery {
	terms := TermList(keywords)
	if operator != "OR" {
		operator = "AND"
	}

	if len(terms) == 0 {
		return []KeywordQuery{{Keyword: AllKey, Query: SentimentGate + qb.suffix}}
	}

	queries := make([]KeywordQuery, 0, len(terms)+1)
	if len(terms) > 1 {
		queries = append(queries, KeywordQuery{
			Keyword: AllKey,
			Query:   qb.combinedQuery(terms, operator) + qb.suffix,
		})
	}
	for _, term := range terms {
		queries = append(queries, KeywordQuery{
			Keyword: DecodeTerm(term),
			Query:   qb.singleQuery(term) + qb.suffix,
		})
	}
	return queries
}

func (qb *QueryBuilder) combinedQuery(terms []string, operator string) string {
	var text, users, hashtags []string
	for _, term := range terms {
		switch {
		case strings.HasPrefix(term, "#"):
			hashtags = append(hashtags, strings.TrimPrefix(term, "#"))
		case strings.HasPrefix(term, "@"):
			users = append(users, strings.TrimPrefix(term, "@"))
		default:
			text = append(text, term)
		}
	}

	join := func(field string, values []string) string {
		quoted := make([]string, len(values))
		for i, v := range values {
			quoted[i] = `"` + v + `"`
		}
		return field + ":(" + strings.Join(quoted, " "+operator+" ") + ")"
	}

	var clauses []string
	if len(text) > 0 {
		clauses = append(clauses, join("fullText", text))
	}
	if len(users) > 0 {
		clauses = append(clauses, "("+join("userScreenName", users)+" OR "+join("usersDescription", users)+")")
	}
	if len(hashtags) > 0 {
		clauses = append(clauses, join("hashtags", hashtags))
	}
	return SentimentGate + " AND " + strings.Join(clauses, " "+operator+" ")
}

func (qb *QueryBuilder) singleQuery(term string) string {
	switch {
	case strings.HasPrefix(term, "#"):
		return fmt.Sprintf(`%s AND hashtags:"%s"`, SentimentGate, strings.TrimPrefix(term, "#"))
	case strings.HasPrefix(term, "@"):
		name := strings.TrimPrefix(term, "@")
		return fmt.Sprintf(`%s AND (userScreenName:"%s" OR usersDescription:"%s")`, SentimentGate, name, name)
	default:
		return fmt.Sprintf(`%s AND fullText:"%s"`, SentimentGate, term)
	}
}

func filterClause(field, value string) string {
	if value == "" || value == "All" || strings.EqualFold(value, "all") {
		return ""
	}
	value = whitespace.ReplaceAllString(strings.TrimSpace(value), SpaceToken)
	return fmt.Sprintf(` AND %s:"%s"`, field, value)
}

// CommunityFilterClause restricts a community field to the listed ids.
func CommunityFilterClause(field string, communities []string) string {
	if len(communities) == 0 {
		return ""
	}
	return fmt.Sprintf(" AND %s:(%s)", field, strings.Join(communities, " OR "))
}

func dateRangeClause(start, end string) string {
	from := dateBound(start, "T00:00:00Z")
	to := dateBound(end, "T23:59:59Z")
	if from == "*" && to == "*" {
		return ""
	}
	return fmt.Sprintf(" AND createdAt:[%s TO %s]", from, to)
}

// dateBound validates a YYYY-MM-DD date and widens invalid or missing
// values to the open bound.
func dateBound(date, timeSuffix string) string {
	if date == "" {
		return "*"
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return "*"
	}
	return date + timeSuffix
}
