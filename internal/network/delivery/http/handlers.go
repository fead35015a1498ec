package http

import (
	"analytics-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// GetGraph - Reconstruct the weighted interaction graph
// @Summary Get interaction graph
// @Description Explodes relation strings into weighted edges and positioned account nodes
// @Tags Network
// @Accept json
// @Produce json
// @Param body body graphReq true "Graph request"
// @Success 200 {object} graphResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/network [post]
func (h *handler) GetGraph(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Process request
	req, err := h.processGraphRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "network.delivery.http.GetGraph: processGraphRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	// 2. Convert to UseCase input
	input := req.toInput()

	// 3. Call UseCase
	output, err := h.uc.GetGraph(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "network.delivery.http.GetGraph: usecase GetGraph failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	// 4. Return response
	response.OK(c, h.newGraphResp(output))
}

// GetStats - Summarize detected communities
// @Summary Get community statistics
// @Description Per-community active accounts, activity ratios, top retweeted accounts and traffic
// @Tags Network
// @Accept json
// @Produce json
// @Param body body statsReq true "Stats request"
// @Success 200 {object} statsResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/network/stats [post]
func (h *handler) GetStats(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Process request
	req, err := h.processStatsRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "network.delivery.http.GetStats: processStatsRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	// 2. Convert to UseCase input
	input := req.toInput()

	// 3. Call UseCase
	output, err := h.uc.GetStats(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "network.delivery.http.GetStats: usecase GetStats failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	// 4. Return response
	response.OK(c, h.newStatsResp(output))
}

// GetMapInfo - Break locations and languages down per community
// @Summary Get community map info
// @Description Geolocation and language spreads keyed by community, plus a cross-community union
// @Tags Network
// @Accept json
// @Produce json
// @Param body body mapInfoReq true "Map info request"
// @Success 200 {object} mapInfoResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/network/map [post]
func (h *handler) GetMapInfo(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Process request
	req, err := h.processMapInfoRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "network.delivery.http.GetMapInfo: processMapInfoRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	// 2. Convert to UseCase input
	input := req.toInput()

	// 3. Call UseCase
	output, err := h.uc.GetMapInfo(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "network.delivery.http.GetMapInfo: usecase GetMapInfo failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	// 4. Return response
	response.OK(c, h.newMapInfoResp(output))
}

// ExtractInteractions - Scan a core and aggregate account interactions
// @Summary Extract interactions
// @Description Pages through every matching document and tallies who interacted with whom
// @Tags Network
// @Accept json
// @Produce json
// @Param body body extractReq true "Extract request"
// @Success 200 {object} extractResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/network/extract [post]
func (h *handler) ExtractInteractions(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Process request
	req, err := h.processExtractRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "network.delivery.http.ExtractInteractions: processExtractRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	// 2. Convert to UseCase input
	input := req.toInput()

	// 3. Call UseCase
	output, err := h.uc.ExtractInteractions(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "network.delivery.http.ExtractInteractions: usecase ExtractInteractions failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	// 4. Return response
	response.OK(c, h.newExtractResp(output))
}

// UpdateCommunities - Write community assignments back to the index
// @Summary Update community fields
// @Description Applies atomic field updates to the named documents
// @Tags Network
// @Accept json
// @Produce json
// @Param body body communityUpdateReq true "Update request"
// @Success 200 {object} communityUpdateResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/network/communities [post]
func (h *handler) UpdateCommunities(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Process request
	req, err := h.processCommunityUpdateRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "network.delivery.http.UpdateCommunities: processCommunityUpdateRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	// 2. Convert to UseCase input
	updates := req.toUpdates()

	// 3. Call UseCase
	failed, err := h.uc.UpdateCommunityFields(ctx, req.Source, updates)
	if err != nil {
		h.l.Errorf(ctx, "network.delivery.http.UpdateCommunities: usecase UpdateCommunityFields failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	// 4. Return response
	response.OK(c, communityUpdateResp{Updated: len(updates) - failed, Failed: failed})
}
