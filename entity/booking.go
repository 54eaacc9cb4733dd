package entity

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentCancelled PaymentStatus = "cancelled"
)

// Label returns the human-facing form of the status ("pending" -> "Pending").
func (s PaymentStatus) Label() string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentCompleted, PaymentFailed, PaymentCancelled:
		return true
	}
	return false
}

type Guest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

func (g Guest) FullName() string {
	return g.FirstName + " " + g.LastName
}

type Room struct {
	RoomType         string `json:"roomType"`
	NumberOfRooms    int    `json:"numberOfRooms"`
	NumberOfAdults   int    `json:"numberOfAdults"`
	NumberOfChildren *int   `json:"numberOfChildren,omitempty"`
}

// ChildrenLabel renders the optional children count, "N/A" when absent.
func (r Room) ChildrenLabel() string {
	if r.NumberOfChildren == nil {
		return "N/A"
	}
	return strconv.Itoa(*r.NumberOfChildren)
}

type Stay struct {
	CheckIn  time.Time `json:"checkIn"`
	CheckOut time.Time `json:"checkOut"`
}

type Amount struct {
	GrandTotal decimal.Decimal `json:"grandTotal"`
}

type Payment struct {
	Status        PaymentStatus `json:"paymentStatus"`
	Method        string        `json:"paymentMethod"`
	ProofImageURL string        `json:"paymentProofImageUrl,omitempty"`
}

// Booking is the central entity. The store of record lives in the external
// booking service; this process holds a read/write cache of it.
type Booking struct {
	ID             string    `json:"_id"`
	ConfirmationID string    `json:"confirmationId,omitempty"`
	Guest          Guest     `json:"guestDetails"`
	Room           Room      `json:"roomDetails"`
	Stay           Stay      `json:"bookingDetails"`
	Amount         Amount    `json:"amountDetails"`
	Payment        Payment   `json:"paymentDetails"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ConfirmationNumber is the human-facing booking reference: the explicit
// confirmation id when present, otherwise the last 8 characters of the
// booking id, upper-cased. Pure and stable, so documents and screens always
// agree on the number.
func (b Booking) ConfirmationNumber() string {
	if b.ConfirmationID != "" {
		return b.ConfirmationID
	}
	id := b.ID
	if len(id) > 8 {
		id = id[len(id)-8:]
	}
	return strings.ToUpper(id)
}
