// Package dashboard builds the aggregate stats snapshot shown on the admin
// console landing view.
package dashboard

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"

	"hoteldesk/entity"
	"hoteldesk/session"
)

const recentBookingsLimit = 5

type BookingsAPI interface {
	FetchActive(ctx context.Context, sess session.Session) ([]entity.Booking, error)
	FetchRecent(ctx context.Context, sess session.Session, limit int) ([]entity.Booking, error)
	Revenue(ctx context.Context, sess session.Session, from, to time.Time) (decimal.Decimal, error)
}

type RoomsAPI interface {
	List(ctx context.Context, sess session.Session) ([]entity.HotelRoom, error)
	Stats(ctx context.Context, sess session.Session) ([]entity.RoomStat, error)
}

type Snapshot struct {
	TotalRooms     int              `json:"total_rooms"`
	ActiveBookings int              `json:"active_bookings"`
	TodayRevenue   string           `json:"today_revenue"`
	RecentBookings []entity.Booking `json:"recent_bookings"`
	RoomStats      []entity.RoomStat `json:"room_stats"`
	FetchedAt      time.Time        `json:"fetched_at"`
}

// Builder assembles dashboard snapshots and keeps the most recent one for
// the HTTP layer. A failed rebuild keeps the previous snapshot visible.
type Builder struct {
	bookings BookingsAPI
	rooms    RoomsAPI
	sess     session.Session
	current  atomic.Value
}

func NewBuilder(bookings BookingsAPI, rooms RoomsAPI, sess session.Session) *Builder {
	return &Builder{
		bookings: bookings,
		rooms:    rooms,
		sess:     sess,
	}
}

// Rebuild fetches all dashboard inputs and swaps in a fresh snapshot.
func (b *Builder) Rebuild(ctx context.Context) error {
	rooms, err := b.rooms.List(ctx, b.sess)
	if err != nil {
		return fmt.Errorf("fetching rooms: %w", err)
	}

	stats, err := b.rooms.Stats(ctx, b.sess)
	if err != nil {
		return fmt.Errorf("fetching room stats: %w", err)
	}

	active, err := b.bookings.FetchActive(ctx, b.sess)
	if err != nil {
		return fmt.Errorf("fetching active bookings: %w", err)
	}

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	endOfDay := startOfDay.Add(24*time.Hour - time.Millisecond)

	revenue, err := b.bookings.Revenue(ctx, b.sess, startOfDay, endOfDay)
	if err != nil {
		return fmt.Errorf("fetching revenue: %w", err)
	}

	recent, err := b.bookings.FetchRecent(ctx, b.sess, recentBookingsLimit)
	if err != nil {
		return fmt.Errorf("fetching recent bookings: %w", err)
	}

	b.current.Store(Snapshot{
		TotalRooms:     len(rooms),
		ActiveBookings: len(active),
		TodayRevenue:   entity.FormatINR(revenue),
		RecentBookings: recent,
		RoomStats:      stats,
		FetchedAt:      now.UTC(),
	})

	return nil
}

// Current returns the latest snapshot; ok is false before the first
// successful rebuild.
func (b *Builder) Current() (Snapshot, bool) {
	s, ok := b.current.Load().(Snapshot)
	return s, ok
}
