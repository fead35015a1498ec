package repository

import "errors"

var (
	// ErrCoreNotFound - the core does not exist or the index is unreachable
	ErrCoreNotFound = errors.New("repository: core not found")

	// ErrRequestFailed - the index rejected or failed the request
	ErrRequestFailed = errors.New("repository: request failed")
)
