package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noirfolio/noirfolio/backend/go-services/internal/portfolio"
)

type submitRecorder struct {
	calls int
	err   error
}

func (r *submitRecorder) submit(ctx context.Context, item Item, d Details) error {
	r.calls++
	return r.err
}

func webDev() Item {
	return Item{Kind: portfolio.BookingService, Title: "Web Dev", Price: "$100"}
}

func careerTopic() Item {
	return Item{Kind: portfolio.BookingConsultation, Title: "Career Advice", Price: "$50"}
}

func TestSelect_BindsItemAndFreshDetails(t *testing.T) {
	rec := &submitRecorder{}
	w := NewWorkflow(rec.submit)

	require.Equal(t, StepInactive, w.Step())
	require.NoError(t, w.Select(webDev()))
	require.Equal(t, StepDetails, w.Step())
	require.Equal(t, "Web Dev", w.Item().Title)
	require.Equal(t, Details{}, w.Details())

	// selecting again mid-flow is not a transition the flow offers
	require.ErrorIs(t, w.Select(careerTopic()), ErrInvalidTransition)
}

func TestSubmitDetails_ValidationBlocksTransition(t *testing.T) {
	rec := &submitRecorder{}
	w := NewWorkflow(rec.submit)
	require.NoError(t, w.Select(webDev()))

	require.ErrorIs(t, w.SubmitDetails(Details{Email: "a@x.com", Date: "2026-09-01"}), ErrNameRequired)
	require.ErrorIs(t, w.SubmitDetails(Details{Name: "A", Date: "2026-09-01"}), ErrEmailRequired)
	require.ErrorIs(t, w.SubmitDetails(Details{Name: "A", Email: "a@x.com"}), ErrDateRequired)
	require.Equal(t, StepDetails, w.Step())
	require.Zero(t, rec.calls, "validation must not reach the network")

	require.NoError(t, w.SubmitDetails(Details{Name: "A", Email: "a@x.com", Date: "2026-09-01"}))
	require.Equal(t, StepPayment, w.Step())
	require.Zero(t, rec.calls, "no network call on details -> payment")
}

func TestSubmitDetails_ConsultationNeedsNoDate(t *testing.T) {
	w := NewWorkflow((&submitRecorder{}).submit)
	require.NoError(t, w.Select(careerTopic()))
	require.NoError(t, w.SubmitDetails(Details{Name: "A", Email: "a@x.com"}))
	require.Equal(t, StepPayment, w.Step())
}

func TestConfirm_FailureStaysAtPayment(t *testing.T) {
	rec := &submitRecorder{err: errors.New("persist failed")}
	w := NewWorkflow(rec.submit)
	require.NoError(t, w.Select(careerTopic()))
	require.NoError(t, w.SubmitDetails(Details{Name: "A", Email: "a@x.com"}))

	require.Error(t, w.Confirm(context.Background()))
	require.Equal(t, StepPayment, w.Step())
	require.Equal(t, 1, rec.calls)

	// retry after the store recovers
	rec.err = nil
	require.NoError(t, w.Confirm(context.Background()))
	require.Equal(t, StepSuccess, w.Step())
	require.Equal(t, 2, rec.calls)
}

func TestConfirm_DoubleClickSubmitsOnce(t *testing.T) {
	rec := &submitRecorder{}
	w := NewWorkflow(rec.submit)
	require.NoError(t, w.Select(webDev()))
	require.NoError(t, w.SubmitDetails(Details{Name: "A", Email: "a@x.com", Date: "2026-09-01"}))

	require.NoError(t, w.Confirm(context.Background()))
	require.NoError(t, w.Confirm(context.Background()))
	require.Equal(t, StepSuccess, w.Step())
	require.Equal(t, 1, rec.calls, "one logical confirmation, one booking record")
}

func TestBack_KeepsDetails(t *testing.T) {
	rec := &submitRecorder{}
	w := NewWorkflow(rec.submit)
	require.NoError(t, w.Select(webDev()))
	d := Details{Name: "A", Email: "a@x.com", Date: "2026-09-01"}
	require.NoError(t, w.SubmitDetails(d))

	require.NoError(t, w.Back())
	require.Equal(t, StepDetails, w.Step())
	require.Equal(t, d, w.Details())
	require.Zero(t, rec.calls, "navigating back and forward must not re-send")
}

func TestConfirm_OnlyFromPayment(t *testing.T) {
	w := NewWorkflow((&submitRecorder{}).submit)
	require.ErrorIs(t, w.Confirm(context.Background()), ErrInvalidTransition)
	require.NoError(t, w.Select(webDev()))
	require.ErrorIs(t, w.Confirm(context.Background()), ErrInvalidTransition)
}

func TestClose_DiscardsDraft(t *testing.T) {
	w := NewWorkflow((&submitRecorder{}).submit)
	require.NoError(t, w.Select(webDev()))
	require.NoError(t, w.SubmitDetails(Details{Name: "A", Email: "a@x.com", Date: "2026-09-01"}))

	w.Close()
	require.Equal(t, StepInactive, w.Step())
	require.Equal(t, Item{}, w.Item())
	require.Equal(t, Details{}, w.Details())
}

func TestStepString(t *testing.T) {
	require.Equal(t, "inactive", StepInactive.String())
	require.Equal(t, "details", StepDetails.String())
	require.Equal(t, "payment", StepPayment.String())
	require.Equal(t, "success", StepSuccess.String())
}
