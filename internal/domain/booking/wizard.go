// Package booking drives the three-step booking form: personal details,
// tour details, emergency contact, then submission through the gateway. The
// in-progress draft is persisted per tour id after every field change and
// deleted only on a successful submission.
package booking

import (
	"context"
	"encoding/json"
	"time"

	"github.com/mapmytour/tour-api/internal/domain/tour"
	"github.com/mapmytour/tour-api/internal/gateway"
	"github.com/mapmytour/tour-api/internal/pkg/kvstore"
)

// Step is a wizard form step.
type Step int

const (
	StepPersonal Step = iota + 1
	StepTourDetails
	StepEmergency
)

const defaultExitDelay = 3 * time.Second

// Draft is the not-yet-submitted form state for one tour.
type Draft struct {
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Participants     int    `json:"participants"`
	StartDate        string `json:"startDate"`
	SpecialRequests  string `json:"specialRequests"`
	EmergencyContact string `json:"emergencyContact"`
	EmergencyPhone   string `json:"emergencyPhone"`
}

func draftKey(tourID string) string {
	return "booking_" + tourID
}

// Wizard is the booking form state machine for one tour. Like the catalog
// store it belongs to a single session and is not safe for concurrent use;
// re-entrant submission is rejected via the submitting flag.
type Wizard struct {
	svc gateway.TourService
	kv  kvstore.Store
	t   tour.Tour

	step       Step
	draft      Draft
	submitting bool
	confirmed  bool
	exitDelay  time.Duration
}

// NewWizard creates a wizard for the given tour, seeding the draft from any
// persisted state under booking_<tourId>. Without one the draft starts empty
// with one participant.
func NewWizard(ctx context.Context, svc gateway.TourService, kv kvstore.Store, t tour.Tour) *Wizard {
	w := &Wizard{
		svc:       svc,
		kv:        kv,
		t:         t,
		step:      StepPersonal,
		draft:     Draft{Participants: 1},
		exitDelay: defaultExitDelay,
	}

	if raw, err := kv.Get(ctx, draftKey(t.ID)); err == nil {
		var saved Draft
		if json.Unmarshal(raw, &saved) == nil {
			w.draft = saved
		}
	}
	return w
}

// SetExitDelay overrides the delay between confirmation and the exit
// callback.
func (w *Wizard) SetExitDelay(d time.Duration) { w.exitDelay = d }

// Step returns the current form step.
func (w *Wizard) Step() Step { return w.step }

// Draft returns a copy of the current draft.
func (w *Wizard) Draft() Draft { return w.draft }

// Submitting reports whether a submission is in flight.
func (w *Wizard) Submitting() bool { return w.submitting }

// Confirmed reports whether the booking has been confirmed.
func (w *Wizard) Confirmed() bool { return w.confirmed }

// TotalPrice is the running total shown next to the form.
func (w *Wizard) TotalPrice() int {
	return w.t.Price * w.draft.Participants
}

// UpdateDraft applies fn to the draft and re-persists the whole draft,
// regardless of which step the wizard is on.
func (w *Wizard) UpdateDraft(ctx context.Context, fn func(*Draft)) error {
	fn(&w.draft)
	data, err := json.Marshal(w.draft)
	if err != nil {
		return err
	}
	return w.kv.Set(ctx, draftKey(w.t.ID), data)
}

// Next advances to the following step. No cross-field validation happens at
// this layer.
func (w *Wizard) Next() error {
	if w.step >= StepEmergency {
		return ErrAlreadyAtLastStep
	}
	w.step++
	return nil
}

// Previous returns to the prior step without discarding entered data.
func (w *Wizard) Previous() error {
	if w.step <= StepPersonal {
		return ErrAlreadyAtFirstStep
	}
	w.step--
	return nil
}

// Submit sends the booking from the last step. On success the persisted
// draft is deleted and, after the exit delay, onExit fires (on a timer
// goroutine). On failure the wizard stays interactable and both the
// in-memory and persisted draft survive for a retry.
func (w *Wizard) Submit(ctx context.Context, onExit func()) (*tour.Booking, error) {
	if w.step != StepEmergency {
		return nil, ErrNotAtFinalStep
	}
	if w.submitting {
		return nil, ErrSubmitInFlight
	}

	w.submitting = true
	booking, err := w.svc.SubmitBooking(ctx, w.payload())
	w.submitting = false

	if err != nil {
		return nil, err
	}

	w.confirmed = true
	_ = w.kv.Delete(ctx, draftKey(w.t.ID))

	if onExit != nil {
		time.AfterFunc(w.exitDelay, onExit)
	}
	return booking, nil
}

// payload derives the submission payload from the draft and the tour.
func (w *Wizard) payload() tour.BookingRequest {
	return tour.BookingRequest{
		TourID:           w.t.ID,
		TourTitle:        w.t.Title,
		CustomerName:     w.draft.FirstName + " " + w.draft.LastName,
		Email:            w.draft.Email,
		Phone:            w.draft.Phone,
		Participants:     w.draft.Participants,
		StartDate:        w.draft.StartDate,
		SpecialRequests:  w.draft.SpecialRequests,
		EmergencyContact: w.draft.EmergencyContact,
		EmergencyPhone:   w.draft.EmergencyPhone,
		TotalPrice:       w.t.Price * w.draft.Participants,
	}
}
