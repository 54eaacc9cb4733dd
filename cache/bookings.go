// Package cache holds the locally cached view of the hotel's bookings. The
// store of record is the external booking service; this cache is replaced
// wholesale by the refresh scheduler and patched entry-by-entry by status
// transitions and deletes. Every mutation is atomic with respect to readers.
package cache

import (
	"sync"

	"hoteldesk/entity"
)

type Bookings struct {
	mu         sync.RWMutex
	bookings   []entity.Booking
	index      map[string]int
	generation uint64
}

func NewBookings() *Bookings {
	return &Bookings{index: map[string]int{}}
}

// ReplaceAll swaps the whole cached set, preserving the given order.
func (c *Bookings) ReplaceAll(bookings []entity.Booking) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.replaceLocked(bookings)
}

// ReplaceAllIfCurrent swaps the cached set only if no other mutation happened
// since the caller observed generation gen. It reports whether the replace
// was applied; a false return means the fetched data is stale and was
// dropped.
func (c *Bookings) ReplaceAllIfCurrent(gen uint64, bookings []entity.Booking) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.generation != gen {
		return false
	}
	c.replaceLocked(bookings)
	return true
}

func (c *Bookings) replaceLocked(bookings []entity.Booking) {
	c.bookings = make([]entity.Booking, len(bookings))
	copy(c.bookings, bookings)

	c.index = make(map[string]int, len(bookings))
	for i, b := range c.bookings {
		c.index[b.ID] = i
	}
	c.generation++
}

// List returns a copy of the cached bookings in cache order.
func (c *Bookings) List() []entity.Booking {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]entity.Booking, len(c.bookings))
	copy(out, c.bookings)
	return out
}

func (c *Bookings) Get(id string) (entity.Booking, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i, ok := c.index[id]
	if !ok {
		return entity.Booking{}, false
	}
	return c.bookings[i], true
}

func (c *Bookings) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.bookings)
}

// Generation returns the current mutation counter. Refreshers capture it
// before fetching so a slow fetch cannot clobber newer data.
func (c *Bookings) Generation() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.generation
}

// SetStatus patches exactly one entry's payment status. It reports whether
// the entry existed; all other entries are untouched.
func (c *Bookings) SetStatus(id string, status entity.PaymentStatus) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	i, ok := c.index[id]
	if !ok {
		return false
	}
	c.bookings[i].Payment.Status = status
	c.generation++
	return true
}

// Remove drops one entry, keeping the order of the rest.
func (c *Bookings) Remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	i, ok := c.index[id]
	if !ok {
		return false
	}

	c.bookings = append(c.bookings[:i], c.bookings[i+1:]...)
	delete(c.index, id)
	for j := i; j < len(c.bookings); j++ {
		c.index[c.bookings[j].ID] = j
	}
	c.generation++
	return true
}
