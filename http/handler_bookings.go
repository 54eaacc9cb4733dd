package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/samber/lo"

	"hoteldesk/booking"
	"hoteldesk/entity"
)

type bookingResponse struct {
	ID             string           `json:"id"`
	ConfirmationID string           `json:"confirmation_id"`
	Guest          entity.Guest     `json:"guest"`
	Room           entity.Room      `json:"room"`
	Stay           entity.Stay      `json:"stay"`
	Amount         string           `json:"amount"`
	Payment        entity.Payment   `json:"payment"`
	Actions        []booking.Action `json:"actions"`
	Busy           bool             `json:"busy"`
}

type bookingsResponse struct {
	Total        int               `json:"total"`
	Visible      int               `json:"visible"`
	RefreshError string            `json:"refresh_error,omitempty"`
	Bookings     []bookingResponse `json:"bookings"`
}

func (s *Server) bookingResponse(b entity.Booking) bookingResponse {
	return bookingResponse{
		ID:             b.ID,
		ConfirmationID: b.ConfirmationNumber(),
		Guest:          b.Guest,
		Room:           b.Room,
		Stay:           b.Stay,
		Amount:         entity.FormatINR(b.Amount.GrandTotal),
		Payment:        b.Payment,
		Actions:        booking.Actions(b.Payment.Status),
		Busy:           s.transitions.InFlight(b.ID) || s.pipeline.InFlight(b.ID),
	}
}

func (s *Server) GetBookings(c echo.Context) error {
	statusFilter := c.QueryParam("status")
	if statusFilter == "" {
		statusFilter = booking.StatusFilterAll
	}

	all := s.cache.List()
	visible := booking.Visible(all, statusFilter, c.QueryParam("search"))

	return c.JSON(http.StatusOK, bookingsResponse{
		Total:        len(all),
		Visible:      len(visible),
		RefreshError: s.refresher.LastError(),
		Bookings: lo.Map(visible, func(b entity.Booking, _ int) bookingResponse {
			return s.bookingResponse(b)
		}),
	})
}

type putStatusRequest struct {
	Status entity.PaymentStatus `json:"status"`
}

func (s *Server) PutBookingStatus(c echo.Context) error {
	var request putStatusRequest
	if err := c.Bind(&request); err != nil {
		return err
	}

	if !request.Status.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown payment status: "+string(request.Status))
	}

	bookingID := c.Param("id")
	if err := s.transitions.Apply(c.Request().Context(), s.sess, bookingID, request.Status); err != nil {
		return toHTTPError(err)
	}

	updated, _ := s.cache.Get(bookingID)
	return c.JSON(http.StatusOK, s.bookingResponse(updated))
}

func (s *Server) DeleteBooking(c echo.Context) error {
	if err := s.transitions.Delete(c.Request().Context(), s.sess, c.Param("id")); err != nil {
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) PostBookingNotification(c echo.Context) error {
	b, ok := s.cache.Get(c.Param("id"))
	if !ok {
		return toHTTPError(entity.ErrNotFound)
	}

	if err := s.pipeline.SendOne(c.Request().Context(), s.sess, b); err != nil {
		return toHTTPError(err)
	}

	return c.NoContent(http.StatusAccepted)
}

type bulkNotificationsRequest struct {
	StatusFilter string `json:"status_filter"`
	SearchTerm   string `json:"search_term"`
	Confirm      bool   `json:"confirm"`
}

// PostBulkNotifications sends confirmations for the currently visible
// filtered set. The confirm flag is the explicit "are you sure" affordance;
// without it the batch is refused.
func (s *Server) PostBulkNotifications(c echo.Context) error {
	var request bulkNotificationsRequest
	if err := c.Bind(&request); err != nil {
		return err
	}
	if request.StatusFilter == "" {
		request.StatusFilter = booking.StatusFilterAll
	}

	visible := booking.Visible(s.cache.List(), request.StatusFilter, request.SearchTerm)

	result, err := s.pipeline.SendBulk(c.Request().Context(), s.sess, visible, request.Confirm)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, result)
}
