package repository

import "errors"

var (
	// ErrCoreNotFound - the core is not registered or Solr answered 404
	ErrCoreNotFound = errors.New("core not found")

	// ErrRequestFailed - the index request failed
	ErrRequestFailed = errors.New("request failed")
)
