package cache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hoteldesk/cache"
	"hoteldesk/entity"
)

func booking(id string, status entity.PaymentStatus) entity.Booking {
	return entity.Booking{
		ID:      id,
		Guest:   entity.Guest{FirstName: "Guest", LastName: id, Email: id + "@example.com"},
		Payment: entity.Payment{Status: status},
	}
}

func TestReplaceAllAndList(t *testing.T) {
	c := cache.NewBookings()

	c.ReplaceAll([]entity.Booking{
		booking("b1", entity.PaymentPending),
		booking("b2", entity.PaymentCompleted),
	})

	assert.Equal(t, 2, c.Len())

	list := c.List()
	require.Len(t, list, 2)
	assert.Equal(t, "b1", list[0].ID)
	assert.Equal(t, "b2", list[1].ID)

	got, ok := c.Get("b2")
	require.True(t, ok)
	assert.Equal(t, entity.PaymentCompleted, got.Payment.Status)

	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestListReturnsCopy(t *testing.T) {
	c := cache.NewBookings()
	c.ReplaceAll([]entity.Booking{booking("b1", entity.PaymentPending)})

	list := c.List()
	list[0].Payment.Status = entity.PaymentCancelled

	got, ok := c.Get("b1")
	require.True(t, ok)
	assert.Equal(t, entity.PaymentPending, got.Payment.Status)
}

func TestSetStatusPatchesOnlyOneEntry(t *testing.T) {
	c := cache.NewBookings()
	c.ReplaceAll([]entity.Booking{
		booking("b1", entity.PaymentPending),
		booking("b2", entity.PaymentPending),
		booking("b3", entity.PaymentCompleted),
	})
	before := c.List()

	require.True(t, c.SetStatus("b2", entity.PaymentCompleted))

	after := c.List()
	require.Len(t, after, 3)
	for i := range after {
		if after[i].ID == "b2" {
			assert.Equal(t, entity.PaymentCompleted, after[i].Payment.Status)
			continue
		}
		assert.Equal(t, before[i], after[i])
	}

	assert.False(t, c.SetStatus("missing", entity.PaymentCompleted))
}

func TestRemovePreservesOrder(t *testing.T) {
	c := cache.NewBookings()
	c.ReplaceAll([]entity.Booking{
		booking("b1", entity.PaymentPending),
		booking("b2", entity.PaymentPending),
		booking("b3", entity.PaymentPending),
	})

	require.True(t, c.Remove("b2"))

	list := c.List()
	require.Len(t, list, 2)
	assert.Equal(t, "b1", list[0].ID)
	assert.Equal(t, "b3", list[1].ID)

	_, ok := c.Get("b2")
	assert.False(t, ok)

	// index is rebuilt for shifted entries
	got, ok := c.Get("b3")
	require.True(t, ok)
	assert.Equal(t, "b3", got.ID)

	assert.False(t, c.Remove("b2"))
}

func TestReplaceAllIfCurrentDropsStaleResult(t *testing.T) {
	c := cache.NewBookings()
	c.ReplaceAll([]entity.Booking{booking("b1", entity.PaymentPending)})

	gen := c.Generation()

	// a transition lands while a slow fetch is in flight
	require.True(t, c.SetStatus("b1", entity.PaymentCompleted))

	applied := c.ReplaceAllIfCurrent(gen, []entity.Booking{booking("b1", entity.PaymentPending)})
	assert.False(t, applied)

	got, ok := c.Get("b1")
	require.True(t, ok)
	assert.Equal(t, entity.PaymentCompleted, got.Payment.Status)
}

func TestReplaceAllIfCurrentAppliesFreshResult(t *testing.T) {
	c := cache.NewBookings()
	c.ReplaceAll([]entity.Booking{booking("b1", entity.PaymentPending)})

	gen := c.Generation()
	applied := c.ReplaceAllIfCurrent(gen, []entity.Booking{
		booking("b1", entity.PaymentPending),
		booking("b2", entity.PaymentPending),
	})

	assert.True(t, applied)
	assert.Equal(t, 2, c.Len())
	assert.NotEqual(t, gen, c.Generation())
}
