package http

import (
	"analytics-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/network")
	{
		api.POST("", h.GetGraph)
		api.POST("/stats", h.GetStats)
		api.POST("/map", h.GetMapInfo)
		api.POST("/extract", h.ExtractInteractions)
		api.POST("/communities", h.UpdateCommunities)
	}
}
