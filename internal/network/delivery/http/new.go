package http

import (
	"analytics-srv/internal/middleware"
	"analytics-srv/internal/network"
	"analytics-srv/pkg/discord"
	"analytics-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - Interface for the network HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      network.UseCase
	discord discord.IDiscord
}

// New - Factory
func New(l log.Logger, uc network.UseCase, discord discord.IDiscord) Handler {
	return &handler{l: l, uc: uc, discord: discord}
}
