package http

import (
	"analytics-srv/internal/model"
	"analytics-srv/internal/network"
)

type graphResp struct {
	Edges []network.Edge `json:"edges"`
	Nodes []network.Node `json:"nodes"`
}

func (h *handler) newGraphResp(output network.GraphOutput) graphResp {
	resp := graphResp{Edges: output.Edges, Nodes: output.Nodes}
	if resp.Edges == nil {
		resp.Edges = []network.Edge{}
	}
	if resp.Nodes == nil {
		resp.Nodes = []network.Node{}
	}
	return resp
}

type statsResp struct {
	Communities []network.CommunityStats     `json:"communities"`
	Traffic     map[string][]model.DateCount `json:"communities_traffic"`
}

func (h *handler) newStatsResp(output network.StatsOutput) statsResp {
	resp := statsResp{Communities: output.Communities, Traffic: output.Traffic}
	if resp.Communities == nil {
		resp.Communities = []network.CommunityStats{}
	}
	return resp
}

type mapInfoResp struct {
	TweetLocations map[string][]model.ValueCount    `json:"tweets_locations"`
	UserLocations  map[string][]model.ValueCount    `json:"users_locations"`
	Languages      map[string][]model.LanguageCount `json:"languages"`
}

func (h *handler) newMapInfoResp(output network.MapInfoOutput) mapInfoResp {
	return mapInfoResp{
		TweetLocations: output.TweetLocations,
		UserLocations:  output.UserLocations,
		Languages:      output.Languages,
	}
}

type extractResp struct {
	EventID      string                    `json:"eventId"`
	Hits         int                       `json:"hits"`
	Accounts     int                       `json:"accounts"`
	Interactions map[string]map[string]int `json:"interactions"`
}

func (h *handler) newExtractResp(output network.ExtractOutput) extractResp {
	return extractResp{
		EventID:      output.EventID,
		Hits:         output.Hits,
		Accounts:     len(output.Interactions),
		Interactions: output.Interactions,
	}
}

type communityUpdateResp struct {
	Updated int `json:"updated"`
	Failed  int `json:"failed"`
}
