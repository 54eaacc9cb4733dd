package dashboard_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hoteldesk/dashboard"
	"hoteldesk/entity"
	"hoteldesk/gateway"
	"hoteldesk/session"
)

func TestRebuildBuildsSnapshot(t *testing.T) {
	bookings := &gateway.BookingsMock{Bookings: []entity.Booking{
		{ID: "b1", Amount: entity.Amount{GrandTotal: decimal.NewFromInt(4500)}},
		{ID: "b2", Amount: entity.Amount{GrandTotal: decimal.NewFromInt(120000)}},
	}}
	rooms := &gateway.RoomsMock{
		Rooms: []entity.HotelRoom{
			{ID: "r1", RoomType: "Deluxe", Price: 4500},
			{ID: "r2", RoomType: "Suite", Price: 9000},
			{ID: "r3", RoomType: "Suite", Price: 9000},
		},
		RoomStats: []entity.RoomStat{
			{RoomType: "Deluxe", TotalRooms: 1, Booked: 1, Available: 0},
			{RoomType: "Suite", TotalRooms: 2, Booked: 1, Available: 1},
		},
	}

	builder := dashboard.NewBuilder(bookings, rooms, session.Session{})

	_, ok := builder.Current()
	assert.False(t, ok, "no snapshot before the first rebuild")

	require.NoError(t, builder.Rebuild(context.Background()))

	snap, ok := builder.Current()
	require.True(t, ok)
	assert.Equal(t, 3, snap.TotalRooms)
	assert.Equal(t, 2, snap.ActiveBookings)
	assert.Equal(t, "₹1,24,500", snap.TodayRevenue)
	assert.Len(t, snap.RecentBookings, 2)
	assert.Len(t, snap.RoomStats, 2)
	assert.False(t, snap.FetchedAt.IsZero())
}

func TestRebuildFailureKeepsPreviousSnapshot(t *testing.T) {
	bookings := &gateway.BookingsMock{Bookings: []entity.Booking{{ID: "b1"}}}
	rooms := &gateway.RoomsMock{Rooms: []entity.HotelRoom{{ID: "r1"}}}
	builder := dashboard.NewBuilder(bookings, rooms, session.Session{})

	require.NoError(t, builder.Rebuild(context.Background()))
	first, ok := builder.Current()
	require.True(t, ok)

	rooms.Err = entity.ErrUnauthorized
	err := builder.Rebuild(context.Background())
	require.ErrorIs(t, err, entity.ErrUnauthorized)

	snap, ok := builder.Current()
	require.True(t, ok)
	assert.Equal(t, first, snap)
}
