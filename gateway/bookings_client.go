package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"hoteldesk/entity"
	"hoteldesk/session"
)

// BookingsClient talks to the external booking service. All reads are scoped
// to the calling admin's hotel by the bearer credential.
type BookingsClient struct {
	baseURL string
	client  *http.Client
}

func NewBookingsClient(baseURL string) *BookingsClient {
	return &BookingsClient{
		baseURL: baseURL,
		client:  newHTTPClient(),
	}
}

// FetchAll returns every booking of the admin's hotel.
func (c *BookingsClient) FetchAll(ctx context.Context, sess session.Session) ([]entity.Booking, error) {
	return c.fetch(ctx, sess, nil)
}

// FetchActive returns only bookings the booking service considers active.
func (c *BookingsClient) FetchActive(ctx context.Context, sess session.Session) ([]entity.Booking, error) {
	return c.fetch(ctx, sess, url.Values{"status": {"active"}})
}

// FetchRecent returns the most recently created bookings, newest first.
func (c *BookingsClient) FetchRecent(ctx context.Context, sess session.Session, limit int) ([]entity.Booking, error) {
	return c.fetch(ctx, sess, url.Values{
		"limit": {strconv.Itoa(limit)},
		"sort":  {"-createdAt"},
	})
}

func (c *BookingsClient) fetch(ctx context.Context, sess session.Session, query url.Values) ([]entity.Booking, error) {
	u := c.baseURL + "/my-hotel"
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+sess.BearerToken())

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching bookings: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return nil, entity.ErrUnauthorized
	case http.StatusNotFound:
		return nil, entity.ErrNoHotel
	default:
		return nil, fmt.Errorf("unexpected status code for GET %s: %d", u, resp.StatusCode)
	}

	var bookings []entity.Booking
	if err := json.NewDecoder(resp.Body).Decode(&bookings); err != nil {
		return nil, fmt.Errorf("decoding bookings: %w", err)
	}

	return bookings, nil
}

// UpdateStatus applies a partial update changing only the payment status and
// returns the updated record.
func (c *BookingsClient) UpdateStatus(ctx context.Context, sess session.Session, bookingID string, status entity.PaymentStatus) (entity.Booking, error) {
	body, err := json.Marshal(map[string]string{
		"paymentDetails.paymentStatus": string(status),
	})
	if err != nil {
		return entity.Booking{}, err
	}

	u := c.baseURL + "/" + bookingID
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, u, bytes.NewReader(body))
	if err != nil {
		return entity.Booking{}, err
	}
	req.Header.Set("Authorization", "Bearer "+sess.BearerToken())
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return entity.Booking{}, fmt.Errorf("updating booking %s: %w", bookingID, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return entity.Booking{}, entity.ErrUnauthorized
	case http.StatusForbidden:
		return entity.Booking{}, entity.ErrForbidden
	case http.StatusNotFound:
		return entity.Booking{}, entity.ErrNotFound
	default:
		return entity.Booking{}, fmt.Errorf("unexpected status code for PUT %s: %d", u, resp.StatusCode)
	}

	var booking entity.Booking
	if err := json.NewDecoder(resp.Body).Decode(&booking); err != nil {
		return entity.Booking{}, fmt.Errorf("decoding booking: %w", err)
	}

	return booking, nil
}

// Delete removes a booking from the booking service.
func (c *BookingsClient) Delete(ctx context.Context, sess session.Session, bookingID string) error {
	u := c.baseURL + "/" + bookingID
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+sess.BearerToken())

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("deleting booking %s: %w", bookingID, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusUnauthorized:
		return entity.ErrUnauthorized
	case http.StatusForbidden:
		return entity.ErrForbidden
	case http.StatusNotFound:
		return entity.ErrNotFound
	default:
		return fmt.Errorf("unexpected status code for DELETE %s: %d", u, resp.StatusCode)
	}
}

// Revenue returns the total revenue for bookings within the date range.
func (c *BookingsClient) Revenue(ctx context.Context, sess session.Session, from, to time.Time) (decimal.Decimal, error) {
	query := url.Values{
		"startDate": {from.Format(time.RFC3339)},
		"endDate":   {to.Format(time.RFC3339)},
	}

	u := c.baseURL + "/revenue?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return decimal.Zero, err
	}
	req.Header.Set("Authorization", "Bearer "+sess.BearerToken())

	resp, err := c.client.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("fetching revenue: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return decimal.Zero, entity.ErrUnauthorized
	case http.StatusNotFound:
		return decimal.Zero, entity.ErrNoHotel
	default:
		return decimal.Zero, fmt.Errorf("unexpected status code for GET %s: %d", u, resp.StatusCode)
	}

	var payload struct {
		TotalRevenue decimal.Decimal `json:"totalRevenue"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return decimal.Zero, fmt.Errorf("decoding revenue: %w", err)
	}

	return payload.TotalRevenue, nil
}
