package readmodel_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hoteldesk/entity"
	"hoteldesk/readmodel"
)

func TestFeedIsNewestFirst(t *testing.T) {
	feed := readmodel.NewActivityFeed()
	ctx := context.Background()

	require.NoError(t, feed.OnBookingsRefreshed(ctx, &entity.BookingsRefreshed{
		Header: entity.NewEventHeader(),
		Count:  12,
	}))
	require.NoError(t, feed.OnPaymentStatusUpdated(ctx, &entity.PaymentStatusUpdated{
		Header:         entity.NewEventHeader(),
		BookingID:      "b1",
		PreviousStatus: entity.PaymentPending,
		NewStatus:      entity.PaymentCompleted,
	}))

	entries := feed.Recent()
	require.Len(t, entries, 2)
	assert.Equal(t, "status", entries[0].Kind)
	assert.Contains(t, entries[0].Message, "pending -> completed")
	assert.Equal(t, "refresh", entries[1].Kind)
	assert.Contains(t, entries[1].Message, "12 bookings")
}

func TestFeedIsCapped(t *testing.T) {
	feed := readmodel.NewActivityFeed()
	ctx := context.Background()

	for i := 0; i < 150; i++ {
		require.NoError(t, feed.OnBookingDeleted(ctx, &entity.BookingDeleted{
			Header:    entity.NewEventHeader(),
			BookingID: fmt.Sprintf("b%d", i),
		}))
	}

	entries := feed.Recent()
	assert.Len(t, entries, 100)
	assert.Contains(t, entries[0].Message, "b149")
}

func TestFeedHandlersCoverEveryEvent(t *testing.T) {
	feed := readmodel.NewActivityFeed()
	ctx := context.Background()

	require.NoError(t, feed.OnBookingsRefreshFailed(ctx, &entity.BookingsRefreshFailed{
		Header: entity.NewEventHeader(),
		Reason: "session expired",
	}))
	require.NoError(t, feed.OnNotificationSent(ctx, &entity.NotificationSent{
		Header:         entity.NewEventHeader(),
		BookingID:      "b1",
		ConfirmationID: "99439011",
		GuestEmail:     "asha@example.com",
	}))
	require.NoError(t, feed.OnNotificationFailed(ctx, &entity.NotificationFailed{
		Header:    entity.NewEventHeader(),
		BookingID: "b2",
		Reason:    "mailbox unavailable",
	}))
	require.NoError(t, feed.OnBulkSendCompleted(ctx, &entity.BulkSendCompleted{
		Header:    entity.NewEventHeader(),
		Attempted: 5,
		Succeeded: 4,
	}))

	entries := feed.Recent()
	require.Len(t, entries, 4)
	assert.Equal(t, "bulk_send", entries[0].Kind)
	assert.Contains(t, entries[0].Message, "4/5 succeeded")
	assert.Equal(t, "notification_failed", entries[1].Kind)
	assert.Equal(t, "notification", entries[2].Kind)
	assert.Contains(t, entries[2].Message, "99439011")
	assert.Equal(t, "refresh_failed", entries[3].Kind)
}
