package solr

import "errors"

var (
	ErrCoreNotRegistered = errors.New("solr: core is not registered")
	ErrNotFound          = errors.New("solr: resource not found")
	ErrRequestFailed     = errors.New("solr: request failed")
	ErrBadResponse       = errors.New("solr: malformed response")
)
