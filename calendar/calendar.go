// Package calendar projects bookings onto a navigable calendar: one all-day
// event per booking, colored by payment status, plus a month/week/day
// navigation state machine.
package calendar

import (
	"time"

	"github.com/samber/lo"

	"hoteldesk/entity"
)

// Event is a derived, ephemeral projection of one booking. It is recomputed
// on every cache refresh and never persisted.
type Event struct {
	Title   string               `json:"title"`
	Start   time.Time            `json:"start"`
	End     time.Time            `json:"end"`
	AllDay  bool                 `json:"allDay"`
	Status  entity.PaymentStatus `json:"status"`
	Booking entity.Booking       `json:"resource"`
}

// Project maps bookings to calendar events, one per booking, dropping and
// duplicating nothing.
func Project(bookings []entity.Booking) []Event {
	return lo.Map(bookings, func(b entity.Booking, _ int) Event {
		return Event{
			Title:   b.Guest.FullName() + " - " + b.Room.RoomType,
			Start:   b.Stay.CheckIn,
			End:     b.Stay.CheckOut,
			AllDay:  true,
			Status:  b.Payment.Status,
			Booking: b,
		}
	})
}

const (
	colorSuccess = "#198754"
	colorWarning = "#ffc107"
	colorDanger  = "#dc3545"
	colorNeutral = "#6c757d"
	colorPrimary = "#3788d8"
)

// StatusColor maps a payment status to its display color. Unknown statuses
// fall back to the primary color so future status values degrade gracefully
// instead of erroring.
func StatusColor(status entity.PaymentStatus) string {
	switch status {
	case entity.PaymentCompleted:
		return colorSuccess
	case entity.PaymentPending:
		return colorWarning
	case entity.PaymentFailed:
		return colorDanger
	case entity.PaymentCancelled:
		return colorNeutral
	default:
		return colorPrimary
	}
}
