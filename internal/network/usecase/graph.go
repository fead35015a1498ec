package usecase

import (
	"context"
	"sort"
	"strings"

	"analytics-srv/internal/model"
	"analytics-srv/internal/network"
	"analytics-srv/pkg/log"
	"analytics-srv/pkg/solr"
)

func (uc *implUseCase) GetGraph(ctx context.Context, input network.GraphInput) (network.GraphOutput, error) {
	nodesField, ok := network.NodesField(input.Interaction)
	if !ok {
		return network.GraphOutput{}, network.ErrUnknownInteraction
	}

	query := nodesField + ":*"
	if clause := keywordClause(input.Keyword); clause != "*:*" {
		query += " AND " + clause
	}
	query += solr.NewQueryBuilder(input.Filters).Suffix()

	docs, err := uc.repo.FetchInteractionDocs(ctx, input.Core, nodesField, query)
	if err != nil {
		return network.GraphOutput{}, uc.wrapErr(ctx, "GetGraph", err)
	}

	return buildGraph(ctx, uc.l, input.Interaction, docs), nil
}

func relationStrings(doc model.Document, interaction string) []string {
	if interaction == network.InteractionReply {
		return doc.ReplyNetworkNodes
	}
	return doc.RetweetNetworkNodes
}

type edgeKey struct {
	target string
	source string
}

// buildGraph explodes every document's relation strings into weighted
// edges and one node row per distinct source account. A source
// interacting with itself keeps its node but carries no edge.
func buildGraph(ctx context.Context, l log.Logger, interaction string, docs []model.Document) network.GraphOutput {
	descs := map[string]string{}
	weights := map[edgeKey]int{}
	var edgeKeys []edgeKey
	nodeIdx := map[string]struct{}{}
	var nodes []network.Node

	for _, doc := range docs {
		target := doc.UserScreenName
		if target == "" {
			continue
		}
		if _, seen := descs[target]; !seen && doc.UsersDescription != "" {
			descs[target] = doc.UsersDescription
		}

		for _, raw := range relationStrings(doc, interaction) {
			rel, err := network.ParseRelation(raw)
			if err != nil {
				l.Warnf(ctx, "network.usecase.buildGraph.ParseRelation: %v", err)
				continue
			}
			if _, seen := nodeIdx[rel.Account]; !seen {
				nodeIdx[rel.Account] = struct{}{}
				nodes = append(nodes, network.Node{
					Name:      rel.Account,
					Community: rel.Community,
					Degree:    rel.Degree,
					X:         rel.X,
					Y:         rel.Y,
				})
			}
			if rel.Account == target {
				continue
			}
			k := edgeKey{target: target, source: rel.Account}
			if _, seen := weights[k]; !seen {
				edgeKeys = append(edgeKeys, k)
			}
			weights[k]++
		}
	}

	sort.Slice(edgeKeys, func(i, j int) bool {
		if edgeKeys[i].target != edgeKeys[j].target {
			return edgeKeys[i].target < edgeKeys[j].target
		}
		return edgeKeys[i].source < edgeKeys[j].source
	})
	edges := make([]network.Edge, 0, len(edgeKeys))
	for _, k := range edgeKeys {
		edges = append(edges, network.Edge{Source: k.source, Target: k.target, Weight: weights[k]})
	}

	for i := range nodes {
		if desc, ok := descs[nodes[i].Name]; ok {
			nodes[i].Description = wrapDescription(desc, descWrapWidth)
		}
	}

	return network.GraphOutput{Edges: edges, Nodes: nodes}
}

// descWrapWidth is the column at which node descriptions wrap for the
// hover tooltip.
const descWrapWidth = 64

// wrapDescription greedily wraps words at width columns, joining lines
// with the tooltip line break.
func wrapDescription(s string, width int) string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}

	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		if len(line)+1+len(word) > width {
			lines = append(lines, line)
			line = word
			continue
		}
		line += " " + word
	}
	lines = append(lines, line)
	return strings.Join(lines, "<br>")
}
