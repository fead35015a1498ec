package network

import "errors"

// Domain errors
var (
	// ErrUnknownInteraction - interaction is neither retweet nor reply
	ErrUnknownInteraction = errors.New("network: unknown interaction kind")

	// ErrCoreNotAvailable - the requested collection is missing or Solr is down
	ErrCoreNotAvailable = errors.New("network: data collection not available")

	// ErrFetchFailed - the index answered but the data could not be fetched
	ErrFetchFailed = errors.New("network: failed to fetch data")

	// ErrPartialWrite - some documents could not be written back
	ErrPartialWrite = errors.New("network: some documents were not written")
)
