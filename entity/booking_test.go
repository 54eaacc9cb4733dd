package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hoteldesk/entity"
)

func TestConfirmationNumber(t *testing.T) {
	testCases := []struct {
		name     string
		booking  entity.Booking
		expected string
	}{
		{
			name:     "explicit confirmation id wins",
			booking:  entity.Booking{ID: "650c1f77bcf86cd799439011", ConfirmationID: "ABC123"},
			expected: "ABC123",
		},
		{
			name:     "derived from last 8 characters upper-cased",
			booking:  entity.Booking{ID: "650c1f77bcf86cd799439011"},
			expected: "99439011",
		},
		{
			name:     "hex suffix is upper-cased",
			booking:  entity.Booking{ID: "650c1f77bcf86cd79943abcd"},
			expected: "9943ABCD",
		},
		{
			name:     "short id used whole",
			booking:  entity.Booking{ID: "ab12"},
			expected: "AB12",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.booking.ConfirmationNumber())
		})
	}
}

func TestConfirmationNumberStable(t *testing.T) {
	b := entity.Booking{ID: "650c1f77bcf86cd799439011"}
	assert.Equal(t, b.ConfirmationNumber(), b.ConfirmationNumber())
}

func TestPaymentStatusLabel(t *testing.T) {
	assert.Equal(t, "Pending", entity.PaymentPending.Label())
	assert.Equal(t, "Completed", entity.PaymentCompleted.Label())
	assert.Equal(t, "Failed", entity.PaymentFailed.Label())
	assert.Equal(t, "Cancelled", entity.PaymentCancelled.Label())
	assert.Equal(t, "", entity.PaymentStatus("").Label())
}

func TestPaymentStatusValid(t *testing.T) {
	assert.True(t, entity.PaymentPending.Valid())
	assert.True(t, entity.PaymentCompleted.Valid())
	assert.True(t, entity.PaymentFailed.Valid())
	assert.True(t, entity.PaymentCancelled.Valid())
	assert.False(t, entity.PaymentStatus("refunded").Valid())
	assert.False(t, entity.PaymentStatus("").Valid())
}

func TestRoomChildrenLabel(t *testing.T) {
	assert.Equal(t, "N/A", entity.Room{}.ChildrenLabel())

	two := 2
	assert.Equal(t, "2", entity.Room{NumberOfChildren: &two}.ChildrenLabel())

	zero := 0
	assert.Equal(t, "0", entity.Room{NumberOfChildren: &zero}.ChildrenLabel())
}

func TestGuestFullName(t *testing.T) {
	g := entity.Guest{FirstName: "Asha", LastName: "Patel"}
	assert.Equal(t, "Asha Patel", g.FullName())
}
