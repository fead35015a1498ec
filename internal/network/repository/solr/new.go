package solr

import (
	"analytics-srv/internal/network/repository"
	"analytics-srv/pkg/log"
	pkgsolr "analytics-srv/pkg/solr"
)

type implRepository struct {
	l      log.Logger
	client pkgsolr.IClient
}

// New - Factory
func New(l log.Logger, client pkgsolr.IClient) repository.IndexRepository {
	return &implRepository{l: l, client: client}
}
