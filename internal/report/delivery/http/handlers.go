package http

import (
	"analytics-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Generate - Build the flattened analytics report for a keyword query
// @Summary Generate analytics report
// @Description Builds per-keyword traffic, sentiment, language, location and top-content breakdowns
// @Tags Report
// @Accept json
// @Produce json
// @Param body body generateReq true "Report request"
// @Success 200 {object} generateResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/report [post]
func (h *handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Process request
	req, err := h.processGenerateRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.Generate: processGenerateRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	// 2. Convert to UseCase input
	input := req.toInput()

	// 3. Call UseCase
	output, err := h.uc.Generate(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.Generate: usecase Generate failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	// 4. Return response
	resp := h.newGenerateResp(req, output)
	response.OK(c, resp)
}
