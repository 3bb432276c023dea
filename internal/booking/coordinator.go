// Package booking orchestrates appointment mutations against the
// remote store: one state machine per form, pessimistic re-fetch after
// every successful mutation, user-visible notifications on both
// outcomes.
package booking

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"therapycare-api/internal/client"
	"therapycare-api/internal/directory"
	"therapycare-api/internal/model"
)

// State of the current or last mutation on this coordinator.
type State int

const (
	Idle State = iota
	Submitting
	Succeeded
	Failed
)

func (s State) String() string {
	switch s {
	case Submitting:
		return "submitting"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "idle"
	}
}

var (
	// ErrBusy means a mutation is already in flight on this form.
	ErrBusy = errors.New("submission already in flight")
	// ErrCancelled means the user declined the delete confirmation.
	ErrCancelled = errors.New("cancelled")
)

// ValidationError is raised before any request leaves the client.
type ValidationError struct{ Reason string }

func (e *ValidationError) Error() string { return e.Reason }

// API is the slice of the client the coordinator drives.
type API interface {
	ListAppointments(ctx context.Context) ([]model.Appointment, error)
	CreateAppointment(ctx context.Context, in client.AppointmentInput) (*model.Appointment, error)
	DeleteAppointment(ctx context.Context, id string) error
}

// Notifier receives the user-visible outcome messages.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// NopNotifier discards notifications.
type NopNotifier struct{}

func (NopNotifier) Success(string) {}
func (NopNotifier) Error(string)   {}

// CreateInput is what the booking form collects. PatientName is filled
// by the coordinator from the directory; callers only pick an id.
type CreateInput struct {
	PatientID string
	Date      string
	Time      string
	Duration  int
	Notes     string
}

type Coordinator struct {
	mu      sync.Mutex
	state   State
	appts   []model.Appointment
	api     API
	dir     *directory.Directory
	notify  Notifier
	confirm func(prompt string) bool
	log     zerolog.Logger
}

// New builds a coordinator. confirm gates deletions; a nil confirm
// refuses every delete, which is the safe default for an
// irreversible operation.
func New(api API, dir *directory.Directory, notify Notifier, confirm func(string) bool, log zerolog.Logger) *Coordinator {
	if notify == nil {
		notify = NopNotifier{}
	}
	if confirm == nil {
		confirm = func(string) bool { return false }
	}
	return &Coordinator{api: api, dir: dir, notify: notify, confirm: confirm, log: log}
}

func (co *Coordinator) State() State {
	co.mu.Lock()
	defer co.mu.Unlock()
	return co.state
}

// Appointments returns the last snapshot fetched from the server. The
// coordinator never patches this locally: it is always whatever the
// server said last.
func (co *Coordinator) Appointments() []model.Appointment {
	co.mu.Lock()
	defer co.mu.Unlock()
	out := make([]model.Appointment, len(co.appts))
	copy(out, co.appts)
	return out
}

// Refresh re-fetches the full appointment set. A failed read keeps the
// stale snapshot and surfaces a notification; the page stays usable.
func (co *Coordinator) Refresh(ctx context.Context) error {
	appts, err := co.api.ListAppointments(ctx)
	if err != nil {
		co.notify.Error("could not load appointments")
		return err
	}
	co.mu.Lock()
	co.appts = appts
	co.mu.Unlock()
	return nil
}

// begin moves the form into Submitting, rejecting when a request is
// already in flight. This guard is client-side only; two distinct
// coordinators (two tabs, two forms) can still race, and the server
// accepts both.
func (co *Coordinator) begin() error {
	co.mu.Lock()
	defer co.mu.Unlock()
	if co.state == Submitting {
		return ErrBusy
	}
	co.state = Submitting
	return nil
}

func (co *Coordinator) finish(s State) {
	co.mu.Lock()
	co.state = s
	co.mu.Unlock()
}

// Create validates, submits, and on success re-synchronizes from the
// server. Validation failures never reach the wire.
func (co *Coordinator) Create(ctx context.Context, in CreateInput) error {
	name, ok := co.dir.Resolve(in.PatientID)
	if !ok {
		return &ValidationError{Reason: "patient must be selected from the directory"}
	}
	if in.Date == "" || in.Time == "" {
		return &ValidationError{Reason: "date and time required"}
	}
	if in.Duration <= 0 {
		return &ValidationError{Reason: "duration must be positive"}
	}

	if err := co.begin(); err != nil {
		return err
	}

	_, err := co.api.CreateAppointment(ctx, client.AppointmentInput{
		PatientID:   in.PatientID,
		PatientName: name,
		Date:        in.Date,
		Time:        in.Time,
		Duration:    in.Duration,
		Notes:       in.Notes,
	})
	if err != nil {
		co.finish(Failed)
		co.log.Warn().Err(err).Msg("create appointment failed")
		co.notify.Error("could not add the appointment")
		return err
	}

	co.finish(Succeeded)
	co.notify.Success("appointment added")
	return co.Refresh(ctx)
}

// Delete asks for confirmation, then submits. A 404 from the server
// means the appointment is already gone; the client treats that as
// settled and still refreshes to the true state.
func (co *Coordinator) Delete(ctx context.Context, id string) error {
	if !co.confirm("Supprimer ce rendez-vous ?") {
		return ErrCancelled
	}

	if err := co.begin(); err != nil {
		return err
	}

	err := co.api.DeleteAppointment(ctx, id)
	switch {
	case err == nil:
		co.finish(Succeeded)
		co.notify.Success("appointment deleted")
	case client.NotFound(err):
		co.finish(Succeeded)
		co.notify.Success("appointment deleted")
	default:
		co.finish(Failed)
		co.log.Warn().Err(err).Str("appointment_id", id).Msg("delete appointment failed")
		co.notify.Error("could not delete the appointment")
		return err
	}

	return co.Refresh(ctx)
}
