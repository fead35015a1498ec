package solr

import "encoding/json"

// FacetType is the kind of a JSON facet node.
type FacetType string

const (
	FacetTerms FacetType = "terms"
	FacetFunc  FacetType = "func"
)

// FacetNode is one node of a JSON facet tree. Terms nodes bucket a field
// and may nest sub-facets; func nodes evaluate an aggregation expression
// inside their parent bucket.
type FacetNode struct {
	Type  FacetType
	Field string
	Limit int
	Func  string
	Sort  string
	Facet map[string]FacetNode
}

// Terms builds a terms facet over a field. limit < 0 means unlimited.
func Terms(field string, limit int) FacetNode {
	return FacetNode{Type: FacetTerms, Field: field, Limit: limit}
}

// With returns a copy of the node with nested sub-facets attached.
func (n FacetNode) With(sub map[string]FacetNode) FacetNode {
	n.Facet = sub
	return n
}

// SortedBy returns a copy of the node sorted by the given expression,
// e.g. "count desc" or "nb_accounts desc".
func (n FacetNode) SortedBy(sort string) FacetNode {
	n.Sort = sort
	return n
}

// Func builds a function facet from an aggregation expression.
func Func(expr string) FacetNode {
	return FacetNode{Type: FacetFunc, Func: expr}
}

// MarshalJSON emits only the members the facet kind uses.
func (n FacetNode) MarshalJSON() ([]byte, error) {
	out := map[string]any{"type": n.Type}
	switch n.Type {
	case FacetFunc:
		out["func"] = n.Func
	default:
		out["field"] = n.Field
		if n.Limit != 0 {
			out["limit"] = n.Limit
		}
	}
	if n.Sort != "" {
		out["sort"] = n.Sort
	}
	if len(n.Facet) > 0 {
		out["facet"] = n.Facet
	}
	return json.Marshal(out)
}
