package http

import (
	"errors"

	"analytics-srv/internal/report"
	pkgErrors "analytics-srv/pkg/errors"
)

var (
	errWrongBody = pkgErrors.NewHTTPError(
		400, "Invalid request body",
	)
	errNoDataSource = pkgErrors.NewHTTPError(
		400, "No data source specified, or wrong data source provided!",
	)
	errInvalidOperator = pkgErrors.NewHTTPError(
		400, "Operator must be AND or OR",
	)
	errCoreNotAvailable = pkgErrors.NewHTTPError(
		404, "Data collection not available",
	)
	errFetchFailed = pkgErrors.NewHTTPError(
		500, "Failed to fetch data from the index",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, report.ErrInvalidOperator):
		return errInvalidOperator
	case errors.Is(err, report.ErrCoreNotAvailable):
		return errCoreNotAvailable
	case errors.Is(err, report.ErrFetchFailed):
		return errFetchFailed
	default:
		return errFetchFailed
	}
}
