package entity

// HotelRoom is a room record owned by the external room service.
type HotelRoom struct {
	ID       string `json:"_id"`
	RoomType string `json:"roomType"`
	Price    int    `json:"price"`
}

// RoomStat is the per-room-type availability aggregate from the room service.
type RoomStat struct {
	RoomType   string `json:"roomType"`
	TotalRooms int    `json:"totalRooms"`
	Booked     int    `json:"booked"`
	Available  int    `json:"available"`
}
