package gateway

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"hoteldesk/entity"
	"hoteldesk/session"
)

// BookingsMock implements the booking service contract in memory.
type BookingsMock struct {
	lock sync.Mutex

	Bookings []entity.Booking

	// FetchErr, UpdateErr and DeleteErr, when set, are returned instead of
	// touching the in-memory set.
	FetchErr  error
	UpdateErr error
	DeleteErr error

	FetchCalls  int
	UpdateCalls []string
	DeleteCalls []string
}

func (m *BookingsMock) FetchAll(ctx context.Context, sess session.Session) ([]entity.Booking, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.FetchCalls++
	if m.FetchErr != nil {
		return nil, m.FetchErr
	}

	out := make([]entity.Booking, len(m.Bookings))
	copy(out, m.Bookings)
	return out, nil
}

func (m *BookingsMock) FetchActive(ctx context.Context, sess session.Session) ([]entity.Booking, error) {
	return m.FetchAll(ctx, sess)
}

func (m *BookingsMock) FetchRecent(ctx context.Context, sess session.Session, limit int) ([]entity.Booking, error) {
	all, err := m.FetchAll(ctx, sess)
	if err != nil {
		return nil, err
	}
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (m *BookingsMock) UpdateStatus(ctx context.Context, sess session.Session, bookingID string, status entity.PaymentStatus) (entity.Booking, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.UpdateCalls = append(m.UpdateCalls, bookingID)
	if m.UpdateErr != nil {
		return entity.Booking{}, m.UpdateErr
	}

	for i, b := range m.Bookings {
		if b.ID == bookingID {
			m.Bookings[i].Payment.Status = status
			return m.Bookings[i], nil
		}
	}

	return entity.Booking{}, entity.ErrNotFound
}

func (m *BookingsMock) Delete(ctx context.Context, sess session.Session, bookingID string) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.DeleteCalls = append(m.DeleteCalls, bookingID)
	if m.DeleteErr != nil {
		return m.DeleteErr
	}

	for i, b := range m.Bookings {
		if b.ID == bookingID {
			m.Bookings = append(m.Bookings[:i], m.Bookings[i+1:]...)
			return nil
		}
	}

	return entity.ErrNotFound
}

func (m *BookingsMock) Revenue(ctx context.Context, sess session.Session, from, to time.Time) (decimal.Decimal, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	total := decimal.Zero
	for _, b := range m.Bookings {
		total = total.Add(b.Amount.GrandTotal)
	}
	return total, nil
}
