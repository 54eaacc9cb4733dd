package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hoteldesk/booking"
	"hoteldesk/cache"
	"hoteldesk/dashboard"
	"hoteldesk/entity"
	"hoteldesk/gateway"
	"hoteldesk/notification"
	"hoteldesk/readmodel"
	"hoteldesk/scheduler"
	"hoteldesk/session"
)

type nopPublisher struct{}

func (nopPublisher) Publish(ctx context.Context, event any) error { return nil }

type fixture struct {
	server *Server
	cache  *cache.Bookings
	client *gateway.BookingsMock
	mail   *gateway.MailMock
}

func newFixture(bookings ...entity.Booking) *fixture {
	client := &gateway.BookingsMock{Bookings: bookings}
	rooms := &gateway.RoomsMock{}
	mail := &gateway.MailMock{}
	c := cache.NewBookings()
	c.ReplaceAll(bookings)

	sess := session.New("token", session.AdminProfile{
		Email:     "owner@grandpalace.example",
		HotelName: "Grand Palace",
	})

	server := NewServer(
		":0",
		sess,
		c,
		booking.NewTransitions(client, c, nopPublisher{}),
		notification.NewPipeline(&gateway.RendererMock{}, mail, nopPublisher{}, notification.Templates{Guest: "tpl_guest", Admin: "tpl_admin"}),
		dashboard.NewBuilder(client, rooms, sess),
		readmodel.NewActivityFeed(),
		scheduler.NewRefresher("calendar", client, c, nopPublisher{}, sess),
	)

	return &fixture{server: server, cache: c, client: client, mail: mail}
}

func (f *fixture) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	f.server.e.ServeHTTP(rec, req)
	return rec
}

func fixtureBooking(id string, status entity.PaymentStatus) entity.Booking {
	return entity.Booking{
		ID:      id,
		Guest:   entity.Guest{FirstName: "Asha", LastName: "Patel", Email: "asha@example.com"},
		Room:    entity.Room{RoomType: "Deluxe"},
		Amount:  entity.Amount{GrandTotal: decimal.NewFromInt(12500)},
		Payment: entity.Payment{Status: status},
	}
}

func TestGetBookings(t *testing.T) {
	f := newFixture(
		fixtureBooking("650c1f77bcf86cd799439011", entity.PaymentPending),
		fixtureBooking("650c1f77bcf86cd799439012", entity.PaymentCompleted),
	)

	rec := f.do(t, http.MethodGet, "/bookings", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var response struct {
		Total    int `json:"total"`
		Visible  int `json:"visible"`
		Bookings []struct {
			ID             string `json:"id"`
			ConfirmationID string `json:"confirmation_id"`
			Amount         string `json:"amount"`
			Actions        []struct {
				Label string `json:"label"`
			} `json:"actions"`
			Busy bool `json:"busy"`
		} `json:"bookings"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))

	assert.Equal(t, 2, response.Total)
	assert.Equal(t, 2, response.Visible)
	require.Len(t, response.Bookings, 2)
	assert.Equal(t, "99439011", response.Bookings[0].ConfirmationID)
	assert.Equal(t, "₹12,500", response.Bookings[0].Amount)
	require.Len(t, response.Bookings[0].Actions, 1)
	assert.Equal(t, "Mark as Paid", response.Bookings[0].Actions[0].Label)
	assert.False(t, response.Bookings[0].Busy)
}

func TestGetBookingsFiltered(t *testing.T) {
	f := newFixture(
		fixtureBooking("b1", entity.PaymentPending),
		fixtureBooking("b2", entity.PaymentCompleted),
	)

	rec := f.do(t, http.MethodGet, "/bookings?status=pending", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var response struct {
		Total   int `json:"total"`
		Visible int `json:"visible"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, 2, response.Total)
	assert.Equal(t, 1, response.Visible)
}

func TestPutBookingStatus(t *testing.T) {
	f := newFixture(fixtureBooking("b1", entity.PaymentPending))

	rec := f.do(t, http.MethodPut, "/bookings/b1/status", `{"status":"completed"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	got, _ := f.cache.Get("b1")
	assert.Equal(t, entity.PaymentCompleted, got.Payment.Status)
}

func TestPutBookingStatusIllegalTransition(t *testing.T) {
	f := newFixture(fixtureBooking("b1", entity.PaymentFailed))

	rec := f.do(t, http.MethodPut, "/bookings/b1/status", `{"status":"completed"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	got, _ := f.cache.Get("b1")
	assert.Equal(t, entity.PaymentFailed, got.Payment.Status)
}

func TestPutBookingStatusUnknownStatus(t *testing.T) {
	f := newFixture(fixtureBooking("b1", entity.PaymentPending))

	rec := f.do(t, http.MethodPut, "/bookings/b1/status", `{"status":"refunded"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPutBookingStatusForbidden(t *testing.T) {
	f := newFixture(fixtureBooking("b1", entity.PaymentPending))
	f.client.UpdateErr = entity.ErrForbidden

	rec := f.do(t, http.MethodPut, "/bookings/b1/status", `{"status":"completed"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// the cache still shows the old status
	got, _ := f.cache.Get("b1")
	assert.Equal(t, entity.PaymentPending, got.Payment.Status)
}

func TestDeleteBooking(t *testing.T) {
	f := newFixture(fixtureBooking("b1", entity.PaymentPending))

	rec := f.do(t, http.MethodDelete, "/bookings/b1", "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	_, ok := f.cache.Get("b1")
	assert.False(t, ok)
}

func TestPostBookingNotification(t *testing.T) {
	f := newFixture(fixtureBooking("b1", entity.PaymentCompleted))

	rec := f.do(t, http.MethodPost, "/bookings/b1/notifications", "")
	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())

	assert.Len(t, f.mail.Sent, 2)
}

func TestPostBookingNotificationUnknownBooking(t *testing.T) {
	f := newFixture()

	rec := f.do(t, http.MethodPost, "/bookings/missing/notifications", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPostBulkNotifications(t *testing.T) {
	f := newFixture(
		fixtureBooking("b1", entity.PaymentPending),
		fixtureBooking("b2", entity.PaymentCompleted),
	)

	rec := f.do(t, http.MethodPost, "/notifications", `{"status_filter":"pending","confirm":true}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var result notification.BulkResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 1, result.Attempted)
	assert.Equal(t, 1, result.Succeeded)
}

func TestPostBulkNotificationsWithoutConfirm(t *testing.T) {
	f := newFixture(fixtureBooking("b1", entity.PaymentPending))

	rec := f.do(t, http.MethodPost, "/notifications", `{"confirm":false}`)
	assert.Equal(t, http.StatusPreconditionRequired, rec.Code)
	assert.Empty(t, f.mail.Sent)
}

func TestPostBulkNotificationsEmptyBatch(t *testing.T) {
	f := newFixture()

	rec := f.do(t, http.MethodPost, "/notifications", `{"confirm":true}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCalendarFlow(t *testing.T) {
	f := newFixture(fixtureBooking("b1", entity.PaymentCompleted))

	rec := f.do(t, http.MethodGet, "/calendar", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var response struct {
		CurrentView string `json:"current_view"`
		Header      string `json:"header"`
		Events      []struct {
			Title string `json:"title"`
			Color string `json:"color"`
		} `json:"events"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "month", response.CurrentView)
	require.Len(t, response.Events, 1)
	assert.Equal(t, "Asha Patel - Deluxe", response.Events[0].Title)
	assert.Equal(t, "#198754", response.Events[0].Color)

	rec = f.do(t, http.MethodPost, "/calendar/view", `{"view":"week"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var weekResponse struct {
		CurrentView string `json:"current_view"`
		WeekRange   string `json:"week_range"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &weekResponse))
	assert.Equal(t, "week", weekResponse.CurrentView)
	assert.NotEmpty(t, weekResponse.WeekRange)

	rec = f.do(t, http.MethodPost, "/calendar/navigate", `{"action":"NEXT"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodPost, "/calendar/navigate", `{"action":"SIDEWAYS"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(t, http.MethodPost, "/calendar/view", `{"view":"year"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetDashboardBeforeFirstBuild(t *testing.T) {
	f := newFixture()

	rec := f.do(t, http.MethodGet, "/dashboard", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestGetActivity(t *testing.T) {
	f := newFixture()

	rec := f.do(t, http.MethodGet, "/activity", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestHealth(t *testing.T) {
	f := newFixture()

	rec := f.do(t, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
