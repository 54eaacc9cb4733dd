package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"hoteldesk/entity"
	"hoteldesk/session"
)

// RoomsClient reads room master data from the external room service.
type RoomsClient struct {
	baseURL string
	client  *http.Client
}

func NewRoomsClient(baseURL string) *RoomsClient {
	return &RoomsClient{
		baseURL: baseURL,
		client:  newHTTPClient(),
	}
}

// List returns the admin's rooms.
func (c *RoomsClient) List(ctx context.Context, sess session.Session) ([]entity.HotelRoom, error) {
	var rooms []entity.HotelRoom
	if err := c.get(ctx, sess, "/my-rooms", &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// Stats returns per-room-type availability aggregates.
func (c *RoomsClient) Stats(ctx context.Context, sess session.Session) ([]entity.RoomStat, error) {
	var stats []entity.RoomStat
	if err := c.get(ctx, sess, "/room-stats", &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

func (c *RoomsClient) get(ctx context.Context, sess session.Session, path string, out any) error {
	u := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+sess.BearerToken())

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetching rooms: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return entity.ErrUnauthorized
	case http.StatusNotFound:
		return entity.ErrNoHotel
	default:
		return fmt.Errorf("unexpected status code for GET %s: %d", u, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding rooms response: %w", err)
	}

	return nil
}
