// Package notification renders a booking into a portable document artifact
// and dispatches it through the external mail service to the guest and the
// hotel admin.
package notification

import (
	"context"
	"encoding/base64"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"hoteldesk/entity"
	"hoteldesk/metrics"
	"hoteldesk/session"
)

// BulkTarget is the busy marker used while a bulk send is in flight.
const BulkTarget = "all"

const (
	fallbackHotelName  = "Your Hotel"
	fallbackAdminEmail = "admin@example.com"
)

type Renderer interface {
	RenderPDF(ctx context.Context, html string) ([]byte, error)
}

type Mailer interface {
	Send(ctx context.Context, templateID string, params map[string]any) error
}

type Publisher interface {
	Publish(ctx context.Context, event any) error
}

// Templates names the two message variants at the mail service.
type Templates struct {
	Guest string
	Admin string
}

type Pipeline struct {
	renderer  Renderer
	mailer    Mailer
	events    Publisher
	templates Templates

	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewPipeline(renderer Renderer, mailer Mailer, events Publisher, templates Templates) *Pipeline {
	return &Pipeline{
		renderer:  renderer,
		mailer:    mailer,
		events:    events,
		templates: templates,
		inFlight:  map[string]struct{}{},
	}
}

func (p *Pipeline) acquire(target string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, busy := p.inFlight[target]; busy {
		return fmt.Errorf("send for %s: %w", target, entity.ErrBusy)
	}
	p.inFlight[target] = struct{}{}
	return nil
}

func (p *Pipeline) release(target string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.inFlight, target)
}

// InFlight reports whether a send is running for the booking id or for the
// BulkTarget marker. The presentation layer disables the matching affordance.
func (p *Pipeline) InFlight(target string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, busy := p.inFlight[target]
	return busy
}

// Render produces the document artifact for one booking.
func (p *Pipeline) Render(ctx context.Context, b entity.Booking, hotelName string) (Artifact, error) {
	if hotelName == "" {
		hotelName = fallbackHotelName
	}

	html, err := documentHTML(b, hotelName)
	if err != nil {
		return Artifact{}, fmt.Errorf("%w: %s", entity.ErrRenderFailure, err)
	}

	pdf, err := p.renderer.RenderPDF(ctx, html)
	if err != nil {
		return Artifact{}, err
	}

	return Artifact{
		Name:        artifactName(b),
		ContentType: "application/pdf",
		Data:        pdf,
	}, nil
}

// GuestParams builds the guest message variant.
func GuestParams(b entity.Booking, sess session.Session, doc Artifact) map[string]any {
	hotelName := sess.Admin.HotelName
	if hotelName == "" {
		hotelName = fallbackHotelName
	}

	return map[string]any{
		"guest_name":      b.Guest.FullName(),
		"hotel_name":      hotelName,
		"confirmation_id": b.ConfirmationNumber(),
		"check_in_date":   b.Stay.CheckIn.Format(dateLayout),
		"check_out_date":  b.Stay.CheckOut.Format(dateLayout),
		"room_type":       b.Room.RoomType,
		"amount":          b.Amount.GrandTotal.String(),
		"to_email_guest":  b.Guest.Email,
		"attachment":      attachmentParam(doc),
	}
}

// AdminParams builds the admin message variant: the same core fields plus the
// guest's address for reference, delivered to the configured admin address.
func AdminParams(b entity.Booking, sess session.Session, doc Artifact) map[string]any {
	adminEmail := sess.Admin.Email
	if adminEmail == "" {
		adminEmail = fallbackAdminEmail
	}

	return map[string]any{
		"guest_name":      b.Guest.FullName(),
		"to_guest_email":  b.Guest.Email,
		"confirmation_id": b.ConfirmationNumber(),
		"check_in_date":   b.Stay.CheckIn.Format(dateLayout),
		"check_out_date":  b.Stay.CheckOut.Format(dateLayout),
		"room_type":       b.Room.RoomType,
		"amount":          b.Amount.GrandTotal.String(),
		"to_email_admin":  adminEmail,
		"attachment":      attachmentParam(doc),
	}
}

func attachmentParam(doc Artifact) map[string]any {
	return map[string]any{
		"data": base64.StdEncoding.EncodeToString(doc.Data),
		"name": doc.Name,
		"type": doc.ContentType,
	}
}

// SendOne renders the booking document and dispatches the guest message, then
// the admin message. Both must be accepted for the send to count as a
// success; a message already accepted is not rolled back when the other
// fails.
func (p *Pipeline) SendOne(ctx context.Context, sess session.Session, b entity.Booking) error {
	if err := p.acquire(b.ID); err != nil {
		return err
	}
	defer p.release(b.ID)

	return p.sendLocked(ctx, sess, b)
}

func (p *Pipeline) sendLocked(ctx context.Context, sess session.Session, b entity.Booking) error {
	start := time.Now()
	defer func() {
		metrics.NotificationDuration.Observe(time.Since(start).Seconds())
	}()

	err := p.dispatch(ctx, sess, b)
	if err != nil {
		metrics.NotificationsSent.WithLabelValues("failed").Inc()
		p.publish(ctx, entity.NotificationFailed{
			Header:    entity.NewEventHeader(),
			BookingID: b.ID,
			Reason:    err.Error(),
		})
		return err
	}

	metrics.NotificationsSent.WithLabelValues("sent").Inc()
	p.publish(ctx, entity.NotificationSent{
		Header:         entity.NewEventHeader(),
		BookingID:      b.ID,
		ConfirmationID: b.ConfirmationNumber(),
		GuestEmail:     b.Guest.Email,
	})
	return nil
}

func (p *Pipeline) dispatch(ctx context.Context, sess session.Session, b entity.Booking) error {
	doc, err := p.Render(ctx, b, sess.Admin.HotelName)
	if err != nil {
		return fmt.Errorf("rendering booking %s: %w", b.ID, err)
	}

	if err := p.mailer.Send(ctx, p.templates.Guest, GuestParams(b, sess, doc)); err != nil {
		return fmt.Errorf("guest message for booking %s: %w", b.ID, err)
	}

	if err := p.mailer.Send(ctx, p.templates.Admin, AdminParams(b, sess, doc)); err != nil {
		return fmt.Errorf("admin message for booking %s: %w", b.ID, err)
	}

	return nil
}

// Failure records one booking's failed send within a bulk run.
type Failure struct {
	BookingID string `json:"booking_id"`
	Reason    string `json:"reason"`
}

type BulkResult struct {
	Attempted int       `json:"attempted"`
	Succeeded int       `json:"succeeded"`
	Failures  []Failure `json:"failures,omitempty"`
}

// SendBulk applies SendOne to each booking, strictly sequentially: rendering
// is an exclusive one-at-a-time capture on the renderer side, so booking N+1
// does not start until booking N finished. Individual failures are collected
// and never abort the rest of the batch.
func (p *Pipeline) SendBulk(ctx context.Context, sess session.Session, bookings []entity.Booking, confirmed bool) (BulkResult, error) {
	if len(bookings) == 0 {
		return BulkResult{}, entity.ErrEmptyBatch
	}
	if !confirmed {
		return BulkResult{}, entity.ErrConfirmationRequired
	}

	if err := p.acquire(BulkTarget); err != nil {
		return BulkResult{}, err
	}
	defer p.release(BulkTarget)

	result := BulkResult{Attempted: len(bookings)}
	for _, b := range bookings {
		if err := p.SendOne(ctx, sess, b); err != nil {
			logrus.WithError(err).WithField("booking_id", b.ID).
				Error("bulk send: booking failed")
			result.Failures = append(result.Failures, Failure{
				BookingID: b.ID,
				Reason:    err.Error(),
			})
			continue
		}
		result.Succeeded++
	}

	p.publish(ctx, entity.BulkSendCompleted{
		Header:    entity.NewEventHeader(),
		Attempted: result.Attempted,
		Succeeded: result.Succeeded,
	})

	return result, nil
}

func (p *Pipeline) publish(ctx context.Context, event any) {
	if err := p.events.Publish(ctx, event); err != nil {
		logrus.WithError(err).Warn("failed to publish notification event")
	}
}
