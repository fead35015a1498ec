package solr

import (
	"encoding/json"
	"strconv"

	pkghttp "analytics-srv/pkg/http"
	"analytics-srv/pkg/log"
)

// Config contains the connection settings for one Solr deployment.
type Config struct {
	BaseURL string
	Port    int
	Cores   []string
}

type implClient struct {
	l          log.Logger
	httpClient pkghttp.IClient
	baseURL    string
	cores      map[string]struct{}
}

// SelectParams are the non-body parameters of a select request.
type SelectParams struct {
	Query      string
	Fields     []string
	Sort       string
	Rows       int
	Start      int
	QueryOp    string
	Group      bool
	GroupField string
	GroupLimit int
	GroupSort  string
}

// FacetRequest is the JSON request body for a faceted select.
type FacetRequest struct {
	Query string               `json:"query"`
	Limit int                  `json:"limit"`
	Facet map[string]FacetNode `json:"facet,omitempty"`
}

// SelectResult is the plain (ungrouped) select response.
type SelectResult struct {
	NumFound int               `json:"numFound"`
	Docs     []json.RawMessage `json:"docs"`
}

type selectEnvelope struct {
	Response SelectResult `json:"response"`
}

// FacetResponse is the response of a faceted, sentiment-grouped select.
type FacetResponse struct {
	Response SelectResult            `json:"response"`
	Grouped  map[string]GroupedField `json:"grouped"`
	Facets   FacetSet                `json:"facets"`
}

// GroupedField holds the groups of one group.field result.
type GroupedField struct {
	Matches int     `json:"matches"`
	Groups  []Group `json:"groups"`
}

// Group is one group of documents sharing a field value.
type Group struct {
	GroupValue string `json:"groupValue"`
	Doclist    struct {
		NumFound int               `json:"numFound"`
		Docs     []json.RawMessage `json:"docs"`
	} `json:"doclist"`
}

// FacetSet is the top-level "facets" object: the match count plus the
// named facet results.
type FacetSet struct {
	Count  int
	Fields map[string]BucketList
}

// UnmarshalJSON separates the "count" member from the named facets.
func (s *FacetSet) UnmarshalJSON(data []byte) error {
	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.Fields = make(map[string]BucketList, len(raw))
	for name, msg := range raw {
		if name == "count" {
			if err := json.Unmarshal(msg, &s.Count); err != nil {
				return err
			}
			continue
		}
		var list BucketList
		if err := json.Unmarshal(msg, &list); err != nil {
			return err
		}
		s.Fields[name] = list
	}
	return nil
}

// BucketList is the result of one terms facet.
type BucketList struct {
	Buckets []Bucket `json:"buckets"`
}

// Bucket is one value of a terms facet, with any nested facet results.
// Funcs holds the values of nested function facets keyed by facet name;
// Sub holds nested terms facets.
type Bucket struct {
	Val   string
	Count int
	Funcs map[string]float64
	Sub   map[string]BucketList
}

// UnmarshalJSON routes the reserved val/count members and sorts the rest
// into function results (numbers) and nested bucket lists (objects).
func (b *Bucket) UnmarshalJSON(data []byte) error {
	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for name, msg := range raw {
		switch name {
		case "val":
			var sv string
			if err := json.Unmarshal(msg, &sv); err == nil {
				b.Val = sv
				continue
			}
			var nv json.Number
			if err := json.Unmarshal(msg, &nv); err != nil {
				return err
			}
			b.Val = nv.String()
		case "count":
			if err := json.Unmarshal(msg, &b.Count); err != nil {
				return err
			}
		default:
			var fv float64
			if err := json.Unmarshal(msg, &fv); err == nil {
				if b.Funcs == nil {
					b.Funcs = map[string]float64{}
				}
				b.Funcs[name] = fv
				continue
			}
			var list BucketList
			if err := json.Unmarshal(msg, &list); err != nil {
				return err
			}
			if b.Sub == nil {
				b.Sub = map[string]BucketList{}
			}
			b.Sub[name] = list
		}
	}
	return nil
}

// ValInt returns the bucket value as an integer, or the fallback when the
// value does not parse.
func (b Bucket) ValInt(fallback int) int {
	n, err := strconv.Atoi(b.Val)
	if err != nil {
		return fallback
	}
	return n
}
