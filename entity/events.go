package entity

import (
	"time"

	"github.com/google/uuid"
)

type EventHeader struct {
	ID          string    `json:"id"`
	PublishedAt time.Time `json:"published_at"`
}

func NewEventHeader() EventHeader {
	return EventHeader{
		ID:          uuid.NewString(),
		PublishedAt: time.Now().UTC(),
	}
}

// BookingsRefreshed is published after a scheduled refresh atomically
// replaced the booking cache.
type BookingsRefreshed struct {
	Header      EventHeader `json:"header"`
	Count       int         `json:"count"`
	RefreshedAt time.Time   `json:"refreshed_at"`
}

// BookingsRefreshFailed is published when a scheduled refresh failed; the
// previously cached bookings stay visible.
type BookingsRefreshFailed struct {
	Header EventHeader `json:"header"`
	Reason string      `json:"reason"`
}

type PaymentStatusUpdated struct {
	Header         EventHeader   `json:"header"`
	BookingID      string        `json:"booking_id"`
	PreviousStatus PaymentStatus `json:"previous_status"`
	NewStatus      PaymentStatus `json:"new_status"`
}

type BookingDeleted struct {
	Header    EventHeader `json:"header"`
	BookingID string      `json:"booking_id"`
}

type NotificationSent struct {
	Header         EventHeader `json:"header"`
	BookingID      string      `json:"booking_id"`
	ConfirmationID string      `json:"confirmation_id"`
	GuestEmail     string      `json:"guest_email"`
}

type NotificationFailed struct {
	Header    EventHeader `json:"header"`
	BookingID string      `json:"booking_id"`
	Reason    string      `json:"reason"`
}

type BulkSendCompleted struct {
	Header    EventHeader `json:"header"`
	Attempted int         `json:"attempted"`
	Succeeded int         `json:"succeeded"`
}
