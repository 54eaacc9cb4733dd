package scheduler

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"hoteldesk/cache"
	"hoteldesk/entity"
	"hoteldesk/metrics"
	"hoteldesk/session"
)

type BookingsFetcher interface {
	FetchAll(ctx context.Context, sess session.Session) ([]entity.Booking, error)
}

type Publisher interface {
	Publish(ctx context.Context, event any) error
}

// Refresher re-synchronizes the booking cache from the booking service. On
// failure the previous cache is retained and the error is surfaced through
// the event bus and LastError; nothing already shown is discarded.
type Refresher struct {
	name    string
	client  BookingsFetcher
	cache   *cache.Bookings
	events  Publisher
	sess    session.Session
	lastErr atomic.Value
}

func NewRefresher(name string, client BookingsFetcher, c *cache.Bookings, events Publisher, sess session.Session) *Refresher {
	return &Refresher{
		name:   name,
		client: client,
		cache:  c,
		events: events,
		sess:   sess,
	}
}

// Refresh fetches the full booking set and atomically replaces the cache.
// A fetch that raced with a newer cache mutation is dropped as stale rather
// than applied.
func (r *Refresher) Refresh(ctx context.Context) error {
	gen := r.cache.Generation()

	bookings, err := r.client.FetchAll(ctx, r.sess)
	if err != nil {
		r.lastErr.Store(err.Error())
		metrics.CacheRefreshes.WithLabelValues(r.name, "failed").Inc()

		if pubErr := r.events.Publish(ctx, entity.BookingsRefreshFailed{
			Header: entity.NewEventHeader(),
			Reason: err.Error(),
		}); pubErr != nil {
			logrus.WithError(pubErr).Warn("failed to publish BookingsRefreshFailed")
		}
		return fmt.Errorf("refreshing bookings: %w", err)
	}

	r.lastErr.Store("")

	if !r.cache.ReplaceAllIfCurrent(gen, bookings) {
		metrics.CacheRefreshes.WithLabelValues(r.name, "stale").Inc()
		logrus.WithField("task", r.name).Info("dropping stale refresh result")
		return nil
	}

	metrics.CacheRefreshes.WithLabelValues(r.name, "ok").Inc()

	if err := r.events.Publish(ctx, entity.BookingsRefreshed{
		Header:      entity.NewEventHeader(),
		Count:       len(bookings),
		RefreshedAt: time.Now().UTC(),
	}); err != nil {
		logrus.WithError(err).Warn("failed to publish BookingsRefreshed")
	}

	return nil
}

// LastError returns the message of the most recent failed refresh, or ""
// after a successful one.
func (r *Refresher) LastError() string {
	v, _ := r.lastErr.Load().(string)
	return v
}
