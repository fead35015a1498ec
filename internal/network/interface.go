package network

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// GetGraph reconstructs the weighted interaction graph from the
	// documents' relation strings.
	GetGraph(ctx context.Context, input GraphInput) (GraphOutput, error)
	// GetStats summarizes the detected communities.
	GetStats(ctx context.Context, input StatsInput) (StatsOutput, error)
	// GetMapInfo breaks locations and languages down per community.
	GetMapInfo(ctx context.Context, input MapInfoInput) (MapInfoOutput, error)
	// ExtractInteractions scans the whole core and aggregates who
	// interacted with whom, announcing the result on the event bus.
	ExtractInteractions(ctx context.Context, input ExtractInput) (ExtractOutput, error)
	// UpdateCommunityFields writes community assignments back to the
	// index. Returns the number of documents that could not be written.
	UpdateCommunityFields(ctx context.Context, core string, updates []FieldUpdate) (int, error)
}
