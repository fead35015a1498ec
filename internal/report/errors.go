package report

import "errors"

// Domain errors
var (
	// ErrCoreNotAvailable - the requested collection is missing or Solr is down
	ErrCoreNotAvailable = errors.New("report: data collection not available")

	// ErrFetchFailed - the index answered but the data could not be fetched
	ErrFetchFailed = errors.New("report: failed to fetch data")

	// ErrInvalidOperator - operator is neither AND nor OR
	ErrInvalidOperator = errors.New("report: invalid operator")
)
