package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"analytics-srv/internal/middleware"
	networkHTTP "analytics-srv/internal/network/delivery/http"
	networkSolr "analytics-srv/internal/network/repository/solr"
	networkUsecase "analytics-srv/internal/network/usecase"
)

func (srv *HTTPServer) setupNetworkDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	repo := networkSolr.New(srv.l, srv.solrClient)

	uc := networkUsecase.New(srv.l, repo, srv.producer, networkUsecase.Config{
		Limit: srv.config.Report.Limit,
	})

	handler := networkHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Network domain registered")
	return nil
}
