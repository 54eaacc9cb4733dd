package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"hoteldesk/entity"
)

// toHTTPError maps the entity error taxonomy to user-facing responses. The
// messages distinguish "no hotel configured" from generic fetch failures and
// cross-hotel "access denied" from "not found", since they call for
// different corrective actions.
func toHTTPError(err error) error {
	switch {
	case errors.Is(err, entity.ErrUnauthorized):
		return echo.NewHTTPError(http.StatusUnauthorized,
			"Session expired. Please log in again.")
	case errors.Is(err, entity.ErrNoHotel):
		return echo.NewHTTPError(http.StatusNotFound,
			"No hotel found. Please create a hotel first.")
	case errors.Is(err, entity.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden,
			"Access denied. You can only manage bookings for your own hotel.")
	case errors.Is(err, entity.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound,
			"Booking not found or already deleted.")
	case errors.Is(err, entity.ErrIllegalTransition):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, entity.ErrBusy):
		return echo.NewHTTPError(http.StatusConflict,
			"Another operation is already running for this booking.")
	case errors.Is(err, entity.ErrEmptyBatch):
		return echo.NewHTTPError(http.StatusBadRequest,
			"No bookings to send emails to.")
	case errors.Is(err, entity.ErrConfirmationRequired):
		return echo.NewHTTPError(http.StatusPreconditionRequired,
			"Bulk send requires explicit confirmation.")
	case errors.Is(err, entity.ErrRenderFailure), errors.Is(err, entity.ErrDispatchFailure):
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	default:
		return err
	}
}
