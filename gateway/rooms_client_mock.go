package gateway

import (
	"context"
	"sync"

	"hoteldesk/entity"
	"hoteldesk/session"
)

type RoomsMock struct {
	lock sync.Mutex

	Rooms     []entity.HotelRoom
	RoomStats []entity.RoomStat
	Err       error
}

func (m *RoomsMock) List(ctx context.Context, sess session.Session) ([]entity.HotelRoom, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]entity.HotelRoom, len(m.Rooms))
	copy(out, m.Rooms)
	return out, nil
}

func (m *RoomsMock) Stats(ctx context.Context, sess session.Session) ([]entity.RoomStat, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]entity.RoomStat, len(m.RoomStats))
	copy(out, m.RoomStats)
	return out, nil
}
