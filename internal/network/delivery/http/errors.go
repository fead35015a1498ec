package http

import (
	"errors"

	"analytics-srv/internal/network"
	pkgErrors "analytics-srv/pkg/errors"
)

var (
	errWrongBody = pkgErrors.NewHTTPError(
		400, "Invalid request body",
	)
	errNoDataSource = pkgErrors.NewHTTPError(
		400, "No data source specified, or wrong data source provided!",
	)
	errNoUpdates = pkgErrors.NewHTTPError(
		400, "No document updates provided",
	)
	errUnknownInteraction = pkgErrors.NewHTTPError(
		400, "Interaction must be retweet or reply",
	)
	errCoreNotAvailable = pkgErrors.NewHTTPError(
		404, "Data collection not available",
	)
	errPartialWrite = pkgErrors.NewHTTPError(
		500, "Some documents could not be written",
	)
	errFetchFailed = pkgErrors.NewHTTPError(
		500, "Failed to fetch data from the index",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, network.ErrUnknownInteraction):
		return errUnknownInteraction
	case errors.Is(err, network.ErrCoreNotAvailable):
		return errCoreNotAvailable
	case errors.Is(err, network.ErrPartialWrite):
		return errPartialWrite
	case errors.Is(err, network.ErrFetchFailed):
		return errFetchFailed
	default:
		return errFetchFailed
	}
}
