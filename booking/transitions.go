package booking

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"hoteldesk/cache"
	"hoteldesk/entity"
	"hoteldesk/metrics"
	"hoteldesk/session"
)

// Action is a status change the console may offer for a booking.
type Action struct {
	Label  string               `json:"label"`
	Target entity.PaymentStatus `json:"target"`
}

// Actions returns the transition affordances valid for the current status.
// Failed and cancelled bookings are terminal display states here; they are
// only entered through the external booking flow.
func Actions(status entity.PaymentStatus) []Action {
	switch status {
	case entity.PaymentPending:
		return []Action{{Label: "Mark as Paid", Target: entity.PaymentCompleted}}
	case entity.PaymentCompleted:
		return []Action{{Label: "Mark as Pending", Target: entity.PaymentPending}}
	default:
		return nil
	}
}

// CanTransition reports whether from -> to is one of the legal pairs.
func CanTransition(from, to entity.PaymentStatus) bool {
	for _, a := range Actions(from) {
		if a.Target == to {
			return true
		}
	}
	return false
}

type UpdateDeleter interface {
	UpdateStatus(ctx context.Context, sess session.Session, bookingID string, status entity.PaymentStatus) (entity.Booking, error)
	Delete(ctx context.Context, sess session.Session, bookingID string) error
}

type Publisher interface {
	Publish(ctx context.Context, event any) error
}

// Transitions applies payment status changes and deletes, write-through: the
// external booking service is updated first, the cache is patched only after
// the service confirmed. One operation per booking id at a time.
type Transitions struct {
	client UpdateDeleter
	cache  *cache.Bookings
	events Publisher

	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewTransitions(client UpdateDeleter, c *cache.Bookings, events Publisher) *Transitions {
	return &Transitions{
		client:   client,
		cache:    c,
		events:   events,
		inFlight: map[string]struct{}{},
	}
}

func (t *Transitions) acquire(id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, busy := t.inFlight[id]; busy {
		return fmt.Errorf("booking %s: %w", id, entity.ErrBusy)
	}
	t.inFlight[id] = struct{}{}
	return nil
}

func (t *Transitions) release(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.inFlight, id)
}

// InFlight reports whether an operation is currently running for the booking.
func (t *Transitions) InFlight(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, busy := t.inFlight[id]
	return busy
}

// Apply transitions one booking to the target status. The cached record is
// patched transactionally on success and left untouched on any failure. No
// automatic retry.
func (t *Transitions) Apply(ctx context.Context, sess session.Session, bookingID string, target entity.PaymentStatus) error {
	current, ok := t.cache.Get(bookingID)
	if !ok {
		return fmt.Errorf("booking %s: %w", bookingID, entity.ErrNotFound)
	}

	if !CanTransition(current.Payment.Status, target) {
		return fmt.Errorf("%s -> %s: %w", current.Payment.Status, target, entity.ErrIllegalTransition)
	}

	if err := t.acquire(bookingID); err != nil {
		return err
	}
	defer t.release(bookingID)

	if _, err := t.client.UpdateStatus(ctx, sess, bookingID, target); err != nil {
		return fmt.Errorf("updating payment status: %w", err)
	}

	t.cache.SetStatus(bookingID, target)
	metrics.StatusTransitions.WithLabelValues(string(current.Payment.Status), string(target)).Inc()

	event := entity.PaymentStatusUpdated{
		Header:         entity.NewEventHeader(),
		BookingID:      bookingID,
		PreviousStatus: current.Payment.Status,
		NewStatus:      target,
	}
	if err := t.events.Publish(ctx, event); err != nil {
		logrus.WithError(err).WithField("booking_id", bookingID).
			Warn("failed to publish PaymentStatusUpdated")
	}

	return nil
}

// Delete removes one booking. The cache entry is dropped only after the
// booking service confirmed the delete.
func (t *Transitions) Delete(ctx context.Context, sess session.Session, bookingID string) error {
	if err := t.acquire(bookingID); err != nil {
		return err
	}
	defer t.release(bookingID)

	if err := t.client.Delete(ctx, sess, bookingID); err != nil {
		return fmt.Errorf("deleting booking: %w", err)
	}

	t.cache.Remove(bookingID)

	event := entity.BookingDeleted{
		Header:    entity.NewEventHeader(),
		BookingID: bookingID,
	}
	if err := t.events.Publish(ctx, event); err != nil {
		logrus.WithError(err).WithField("booking_id", bookingID).
			Warn("failed to publish BookingDeleted")
	}

	return nil
}
