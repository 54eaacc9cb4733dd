// Package readmodel keeps in-memory projections of the console's internal
// events for the presentation layer.
package readmodel

import (
	"context"
	"fmt"
	"sync"
	"time"

	"hoteldesk/entity"
)

const feedCapacity = 100

// Entry is one line of the console's activity feed.
type Entry struct {
	At      time.Time `json:"at"`
	Kind    string    `json:"kind"`
	Message string    `json:"message"`
}

// ActivityFeed subscribes to every console event and keeps the most recent
// entries, newest first. It is the structured notification channel the
// presentation layer reads instead of ad hoc alert boxes.
type ActivityFeed struct {
	mu      sync.RWMutex
	entries []Entry
}

func NewActivityFeed() *ActivityFeed {
	return &ActivityFeed{}
}

func (f *ActivityFeed) append(at time.Time, kind, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.entries = append([]Entry{{At: at, Kind: kind, Message: message}}, f.entries...)
	if len(f.entries) > feedCapacity {
		f.entries = f.entries[:feedCapacity]
	}
}

// Recent returns the feed newest first.
func (f *ActivityFeed) Recent() []Entry {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make([]Entry, len(f.entries))
	copy(out, f.entries)
	return out
}

func (f *ActivityFeed) OnBookingsRefreshed(ctx context.Context, event *entity.BookingsRefreshed) error {
	f.append(event.Header.PublishedAt, "refresh",
		fmt.Sprintf("booking cache refreshed, %d bookings", event.Count))
	return nil
}

func (f *ActivityFeed) OnBookingsRefreshFailed(ctx context.Context, event *entity.BookingsRefreshFailed) error {
	f.append(event.Header.PublishedAt, "refresh_failed",
		"booking refresh failed: "+event.Reason)
	return nil
}

func (f *ActivityFeed) OnPaymentStatusUpdated(ctx context.Context, event *entity.PaymentStatusUpdated) error {
	f.append(event.Header.PublishedAt, "status",
		fmt.Sprintf("booking %s: payment status %s -> %s",
			event.BookingID, event.PreviousStatus, event.NewStatus))
	return nil
}

func (f *ActivityFeed) OnBookingDeleted(ctx context.Context, event *entity.BookingDeleted) error {
	f.append(event.Header.PublishedAt, "delete",
		fmt.Sprintf("booking %s deleted", event.BookingID))
	return nil
}

func (f *ActivityFeed) OnNotificationSent(ctx context.Context, event *entity.NotificationSent) error {
	f.append(event.Header.PublishedAt, "notification",
		fmt.Sprintf("confirmation %s sent to %s", event.ConfirmationID, event.GuestEmail))
	return nil
}

func (f *ActivityFeed) OnNotificationFailed(ctx context.Context, event *entity.NotificationFailed) error {
	f.append(event.Header.PublishedAt, "notification_failed",
		fmt.Sprintf("booking %s: %s", event.BookingID, event.Reason))
	return nil
}

func (f *ActivityFeed) OnBulkSendCompleted(ctx context.Context, event *entity.BulkSendCompleted) error {
	f.append(event.Header.PublishedAt, "bulk_send",
		fmt.Sprintf("bulk send finished: %d/%d succeeded", event.Succeeded, event.Attempted))
	return nil
}
