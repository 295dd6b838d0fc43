package submission

import (
	"context"
	"errors"
	"fmt"
	"html"

	"github.com/noirfolio/noirfolio/backend/go-services/internal/mailer"
	"github.com/noirfolio/noirfolio/backend/go-services/internal/portfolio"
	"github.com/noirfolio/noirfolio/backend/go-services/pkg/logger"
	"github.com/noirfolio/noirfolio/backend/go-services/pkg/metrics"
)

// ErrPersistFailed is terminal for a submission: nothing was recorded and the
// caller must tell the user so.
var ErrPersistFailed = errors.New("submission not recorded")

// Store is the slice of the content store a submission needs.
type Store interface {
	AppendMessage(ctx context.Context, msg portfolio.Message) error
	AppendBooking(ctx context.Context, b portfolio.Booking) error
}

// Service orchestrates the two-phase protocol shared by contact messages and
// bookings: persist first, then notify. Persisting first guarantees a record
// of every submission survives even when the mail transport is down; the
// notification is best-effort and its failure is invisible to the submitter.
type Service struct {
	store      Store
	dispatcher mailer.Dispatcher
	recipient  string
}

func NewService(store Store, dispatcher mailer.Dispatcher, recipient string) *Service {
	return &Service{store: store, dispatcher: dispatcher, recipient: recipient}
}

// SubmitMessage records a contact-form submission and notifies the owner.
func (s *Service) SubmitMessage(ctx context.Context, name, email, body string) (portfolio.Message, error) {
	msg := portfolio.NewMessage(name, email, body)
	if err := s.store.AppendMessage(ctx, msg); err != nil {
		return portfolio.Message{}, fmt.Errorf("%w: %v", ErrPersistFailed, err)
	}
	metrics.SubmissionsStored.WithLabelValues("message").Inc()

	s.notify("message", fmt.Sprintf("Contact Form: %s", name), contactBody(msg))
	return msg, nil
}

// SubmitBooking records a service/consultation booking and notifies the owner.
func (s *Service) SubmitBooking(ctx context.Context, kind, title, price, name, email, date, notes string) (portfolio.Booking, error) {
	b := portfolio.NewBooking(kind, title, price, name, email, date, notes)
	if err := s.store.AppendBooking(ctx, b); err != nil {
		return portfolio.Booking{}, fmt.Errorf("%w: %v", ErrPersistFailed, err)
	}
	metrics.SubmissionsStored.WithLabelValues("booking").Inc()

	s.notify("booking", fmt.Sprintf("New %s Booking: %s", kind, title), bookingBody(b))
	return b, nil
}

// notify runs after the store write has completed and holds no lock on it.
func (s *Service) notify(kind, subject, body string) {
	if s.dispatcher == nil {
		return
	}
	if err := s.dispatcher.Notify(s.recipient, subject, body); err != nil {
		metrics.DispatchFailures.WithLabelValues(kind).Inc()
		logger.Warnf("submission: %s stored but notification failed: %v", kind, err)
	}
}

func contactBody(m portfolio.Message) string {
	return fmt.Sprintf(`
        <div style="font-family: sans-serif; padding: 20px; border: 1px solid #ddd;">
            <h2 style="color: #333;">New Portfolio Message</h2>
            <p><strong>Name:</strong> %s</p>
            <p><strong>Email:</strong> %s</p>
            <p style="background: #f4f4f4; padding: 15px;">%s</p>
        </div>
    `, html.EscapeString(m.Name), html.EscapeString(m.Email), html.EscapeString(m.Message))
}

func bookingBody(b portfolio.Booking) string {
	return fmt.Sprintf(`
        <div style="font-family: sans-serif; padding: 20px; border: 1px solid #ddd;">
            <h2 style="color: #000;">New Booking Alert</h2>
            <p><strong>Type:</strong> %s</p>
            <p><strong>Service:</strong> %s</p>
            <p><strong>Client:</strong> %s (%s)</p>
            <p><strong>Date:</strong> %s</p>
        </div>
    `, html.EscapeString(b.Type), html.EscapeString(b.Title), html.EscapeString(b.Name),
		html.EscapeString(b.Email), html.EscapeString(b.Date))
}
