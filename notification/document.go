package notification

import (
	"bytes"
	"html/template"

	"hoteldesk/entity"
)

// Artifact is the rendered booking confirmation document, encoded as a
// binary object suitable for attachment.
type Artifact struct {
	Name        string
	ContentType string
	Data        []byte
}

// documentTemplate is the visual rendering the external renderer captures.
// It is deterministic: the same booking always produces the same markup.
var documentTemplate = template.Must(template.New("booking-document").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Booking Confirmation</title></head>
<body>
<h1>{{.HotelName}}</h1>
<h2>Booking Confirmation {{.Confirmation}}</h2>
<table>
<tr><td>Guest</td><td>{{.Booking.Guest.FullName}}</td></tr>
<tr><td>Email</td><td>{{.Booking.Guest.Email}}</td></tr>
<tr><td>Phone</td><td>{{.Booking.Guest.Phone}}</td></tr>
<tr><td>Room</td><td>{{.Booking.Room.RoomType}}</td></tr>
<tr><td>Rooms Count</td><td>{{.Booking.Room.NumberOfRooms}}</td></tr>
<tr><td>Guest Count</td><td>{{.Booking.Room.NumberOfAdults}} adults</td></tr>
<tr><td>Children Count</td><td>{{.Booking.Room.ChildrenLabel}}</td></tr>
<tr><td>Check-In</td><td>{{.CheckIn}}</td></tr>
<tr><td>Check-Out</td><td>{{.CheckOut}}</td></tr>
<tr><td>Amount</td><td>{{.Amount}}</td></tr>
<tr><td>Payment Method</td><td>{{.Booking.Payment.Method}}</td></tr>
<tr><td>Payment Status</td><td>{{.Status}}</td></tr>
</table>
</body>
</html>
`))

type documentData struct {
	Booking      entity.Booking
	HotelName    string
	Confirmation string
	CheckIn      string
	CheckOut     string
	Amount       string
	Status       string
}

const dateLayout = "1/2/2006"

func documentHTML(b entity.Booking, hotelName string) (string, error) {
	var buf bytes.Buffer
	err := documentTemplate.Execute(&buf, documentData{
		Booking:      b,
		HotelName:    hotelName,
		Confirmation: b.ConfirmationNumber(),
		CheckIn:      b.Stay.CheckIn.Format(dateLayout),
		CheckOut:     b.Stay.CheckOut.Format(dateLayout),
		Amount:       entity.FormatINR(b.Amount.GrandTotal),
		Status:       b.Payment.Status.Label(),
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

func artifactName(b entity.Booking) string {
	return b.ConfirmationNumber() + "-booking-details.pdf"
}
