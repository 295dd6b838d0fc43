// Package booking models the multi-step booking flow a visitor walks through
// before a booking is submitted: pick a bookable item, fill in details, read
// the payment instructions, confirm. The states and transitions live here as
// an explicit machine, independent of any rendering, so the flow is testable
// without a UI.
package booking

import (
	"context"
	"errors"
	"strings"

	"github.com/noirfolio/noirfolio/backend/go-services/internal/portfolio"
)

// Step is the workflow position.
type Step int

const (
	StepInactive Step = iota
	StepDetails
	StepPayment
	StepSuccess
)

func (s Step) String() string {
	switch s {
	case StepDetails:
		return "details"
	case StepPayment:
		return "payment"
	case StepSuccess:
		return "success"
	default:
		return "inactive"
	}
}

// Item is the selected bookable offering: a general service or a paid
// consultation topic.
type Item struct {
	Kind  string // portfolio.BookingService or portfolio.BookingConsultation
	Title string
	Price string
}

// Details is the visitor-supplied booking record.
type Details struct {
	Name  string
	Email string
	Date  string
	Notes string
}

// SubmitFunc performs the one network call of the whole flow.
type SubmitFunc func(ctx context.Context, item Item, d Details) error

var (
	ErrNameRequired      = errors.New("name is required")
	ErrEmailRequired     = errors.New("email is required")
	ErrDateRequired      = errors.New("date is required for service bookings")
	ErrInvalidTransition = errors.New("invalid workflow transition")
)

// Workflow drives one booking attempt. Not safe for concurrent use; it models
// a single visitor's form.
type Workflow struct {
	step    Step
	item    Item
	details Details
	submit  SubmitFunc
}

func NewWorkflow(submit SubmitFunc) *Workflow {
	return &Workflow{step: StepInactive, submit: submit}
}

func (w *Workflow) Step() Step       { return w.step }
func (w *Workflow) Item() Item       { return w.item }
func (w *Workflow) Details() Details { return w.details }

// Select binds a bookable item and a fresh empty details record.
func (w *Workflow) Select(item Item) error {
	if w.step != StepInactive {
		return ErrInvalidTransition
	}
	w.item = item
	w.details = Details{}
	w.step = StepDetails
	return nil
}

// SubmitDetails validates the form and, when valid, advances to the payment
// instructions. No network call happens here.
func (w *Workflow) SubmitDetails(d Details) error {
	if w.step != StepDetails {
		return ErrInvalidTransition
	}
	if err := w.validate(d); err != nil {
		return err
	}
	w.details = d
	w.step = StepPayment
	return nil
}

func (w *Workflow) validate(d Details) error {
	if strings.TrimSpace(d.Name) == "" {
		return ErrNameRequired
	}
	if strings.TrimSpace(d.Email) == "" {
		return ErrEmailRequired
	}
	if w.item.Kind == portfolio.BookingService && strings.TrimSpace(d.Date) == "" {
		return ErrDateRequired
	}
	return nil
}

// Back returns from the payment instructions to the details form without
// discarding anything.
func (w *Workflow) Back() error {
	if w.step != StepPayment {
		return ErrInvalidTransition
	}
	w.step = StepDetails
	return nil
}

// Confirm performs the submit call. On failure the workflow stays at Payment
// so the visitor can retry; on success it advances to Success. Confirming
// again after success is a no-op, so one logical confirmation produces
// exactly one booking record even on a double click.
func (w *Workflow) Confirm(ctx context.Context) error {
	if w.step == StepSuccess {
		return nil
	}
	if w.step != StepPayment {
		return ErrInvalidTransition
	}
	if err := w.submit(ctx, w.item, w.details); err != nil {
		return err
	}
	w.step = StepSuccess
	return nil
}

// Close abandons the flow from any state and discards the draft entirely.
func (w *Workflow) Close() {
	w.step = StepInactive
	w.item = Item{}
	w.details = Details{}
}
