package httpserver

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"analytics-srv/internal/middleware"
	reportHTTP "analytics-srv/internal/report/delivery/http"
	"analytics-srv/internal/report/repository"
	reportRedis "analytics-srv/internal/report/repository/redis"
	reportSolr "analytics-srv/internal/report/repository/solr"
	reportUsecase "analytics-srv/internal/report/usecase"
)

func (srv *HTTPServer) setupReportDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	repo := reportSolr.New(srv.l, srv.solrClient)

	var cache repository.CacheRepository
	if srv.redisClient != nil {
		ttl := time.Duration(srv.config.Report.CacheTTLSec) * time.Second
		cache = reportRedis.New(srv.l, srv.redisClient, ttl)
	}

	uc := reportUsecase.New(srv.l, repo, cache, srv.stopwords, reportUsecase.Config{
		Limit: srv.config.Report.Limit,
		TopN:  srv.config.Report.TopN,
	})

	handler := reportHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Report domain registered")
	return nil
}
