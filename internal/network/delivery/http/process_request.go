package http

import (
	"analytics-srv/internal/network"
	"analytics-srv/pkg/solr"

	"github.com/gin-gonic/gin"
)

type filterReq struct {
	DateStart    string `json:"date_start"`
	DateEnd      string `json:"date_end"`
	Language     string `json:"language"`
	Sentiment    string `json:"sentiment"`
	Location     string `json:"location"`
	LocationType string `json:"location_type"`
}

func (req filterReq) toFilters() solr.Filters {
	return solr.Filters{
		DateStart:    req.DateStart,
		DateEnd:      req.DateEnd,
		Language:     req.Language,
		Sentiment:    req.Sentiment,
		Location:     req.Location,
		LocationType: req.LocationType,
	}
}

type graphReq struct {
	Source      string `json:"source"`
	Keyword     string `json:"keyword"`
	Interaction string `json:"interaction"`
	filterReq
}

func (h *handler) processGraphRequest(c *gin.Context) (graphReq, error) {
	ctx := c.Request.Context()

	var req graphReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "network.delivery.http.processGraphRequest: invalid body: %v", err)
		return graphReq{}, errWrongBody
	}
	if req.Source == "" {
		return graphReq{}, errNoDataSource
	}
	return req, nil
}

func (req graphReq) toInput() network.GraphInput {
	return network.GraphInput{
		Core:        req.Source,
		Keyword:     req.Keyword,
		Interaction: req.Interaction,
		Filters:     req.toFilters(),
	}
}

type statsReq struct {
	Source      string `json:"source"`
	Keyword     string `json:"keyword"`
	Interaction string `json:"interaction"`
	Limit       int    `json:"nb_communities"`
	filterReq
}

func (h *handler) processStatsRequest(c *gin.Context) (statsReq, error) {
	ctx := c.Request.Context()

	var req statsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "network.delivery.http.processStatsRequest: invalid body: %v", err)
		return statsReq{}, errWrongBody
	}
	if req.Source == "" {
		return statsReq{}, errNoDataSource
	}
	return req, nil
}

func (req statsReq) toInput() network.StatsInput {
	return network.StatsInput{
		Core:        req.Source,
		Keyword:     req.Keyword,
		Interaction: req.Interaction,
		Filters:     req.toFilters(),
		Limit:       req.Limit,
	}
}

type mapInfoReq struct {
	Source      string   `json:"source"`
	Keyword     string   `json:"keyword"`
	Interaction string   `json:"interaction"`
	Communities []string `json:"communities"`
	filterReq
}

func (h *handler) processMapInfoRequest(c *gin.Context) (mapInfoReq, error) {
	ctx := c.Request.Context()

	var req mapInfoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "network.delivery.http.processMapInfoRequest: invalid body: %v", err)
		return mapInfoReq{}, errWrongBody
	}
	if req.Source == "" {
		return mapInfoReq{}, errNoDataSource
	}
	return req, nil
}

func (req mapInfoReq) toInput() network.MapInfoInput {
	return network.MapInfoInput{
		Core:        req.Source,
		Keyword:     req.Keyword,
		Interaction: req.Interaction,
		Filters:     req.toFilters(),
		Communities: req.Communities,
	}
}

type extractReq struct {
	Source      string `json:"source"`
	Interaction string `json:"interaction"`
}

func (h *handler) processExtractRequest(c *gin.Context) (extractReq, error) {
	ctx := c.Request.Context()

	var req extractReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "network.delivery.http.processExtractRequest: invalid body: %v", err)
		return extractReq{}, errWrongBody
	}
	if req.Source == "" {
		return extractReq{}, errNoDataSource
	}
	return req, nil
}

func (req extractReq) toInput() network.ExtractInput {
	return network.ExtractInput{
		Core:        req.Source,
		Interaction: req.Interaction,
	}
}

type communityUpdateReq struct {
	Source  string `json:"source"`
	Updates []struct {
		ID     string         `json:"id"`
		Fields map[string]any `json:"fields"`
	} `json:"updates"`
}

func (h *handler) processCommunityUpdateRequest(c *gin.Context) (communityUpdateReq, error) {
	ctx := c.Request.Context()

	var req communityUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "network.delivery.http.processCommunityUpdateRequest: invalid body: %v", err)
		return communityUpdateReq{}, errWrongBody
	}
	if req.Source == "" {
		return communityUpdateReq{}, errNoDataSource
	}
	if len(req.Updates) == 0 {
		return communityUpdateReq{}, errNoUpdates
	}
	return req, nil
}

func (req communityUpdateReq) toUpdates() []network.FieldUpdate {
	updates := make([]network.FieldUpdate, 0, len(req.Updates))
	for _, u := range req.Updates {
		updates = append(updates, network.FieldUpdate{ID: u.ID, Fields: u.Fields})
	}
	return updates
}
