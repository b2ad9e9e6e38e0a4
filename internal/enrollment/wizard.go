package enrollment

import (
	"context"
	"time"

	"github.com/Sheddybata/sdp.app/internal/model"
)

// Step is a wizard position.
type Step int

const (
	StepIdentity Step = iota + 1
	StepContact
	StepGeography
	StepVerification
	StepPreview
)

var stepNames = map[Step]string{
	StepIdentity:     "identity",
	StepContact:      "contact",
	StepGeography:    "geography",
	StepVerification: "verification",
	StepPreview:      "preview",
}

func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return "unknown"
}

// ClampStep maps any integer onto [StepIdentity, StepPreview].
func ClampStep(n int) Step {
	switch {
	case n < int(StepIdentity):
		return StepIdentity
	case n > int(StepPreview):
		return StepPreview
	default:
		return Step(n)
	}
}

// structFields names the Form fields a step owns.
func (s Step) structFields() []string {
	switch s {
	case StepIdentity:
		return []string{"Title", "Surname", "FirstName", "OtherNames"}
	case StepContact:
		return []string{"Phone", "Email", "DateOfBirth"}
	case StepGeography:
		return []string{"JoinDate", "State", "LGA", "Ward"}
	case StepVerification:
		return []string{"VoterRegistrationNumber", "PortraitDataURL", "AgreedToConstitution"}
	}
	return nil
}

// merge copies the fields step owns from values into record.
func (s Step) merge(record, values Form) Form {
	switch s {
	case StepIdentity:
		record.Title = values.Title
		record.Surname = values.Surname
		record.FirstName = values.FirstName
		record.OtherNames = values.OtherNames
	case StepContact:
		record.Phone = values.Phone
		record.Email = values.Email
		record.DateOfBirth = values.DateOfBirth
	case StepGeography:
		record.JoinDate = values.JoinDate
		record.State = values.State
		record.LGA = values.LGA
		record.Ward = values.Ward
	case StepVerification:
		record.VoterRegistrationNumber = values.VoterRegistrationNumber
		record.PortraitDataURL = values.PortraitDataURL
		record.AgreedToConstitution = values.AgreedToConstitution
	}
	return record
}

// State is the wizard position plus the record collected so far. Result is
// set only at StepPreview.
type State struct {
	Step   Step        `json:"step"`
	Record Form        `json:"record"`
	Result *Enrollment `json:"result,omitempty"`
}

// Sanitized clamps a state received from an untrusted client: the step is
// forced into range and StepPreview without a result falls back to
// StepVerification.
func (s State) Sanitized() State {
	s.Step = ClampStep(int(s.Step))
	if s.Step == StepPreview && s.Result == nil {
		s.Step = StepVerification
	}
	if s.Step != StepPreview {
		s.Result = nil
	}
	return s
}

// Submitter persists a fully validated record.
type Submitter interface {
	Submit(ctx context.Context, form Form) (*Enrollment, error)
}

// Machine drives the five-step enrollment wizard. It holds no per-user
// state; every transition takes and returns a State.
type Machine struct {
	validator *FormValidator
	submitter Submitter
	now       func() time.Time
}

func NewMachine(validator *FormValidator, submitter Submitter) *Machine {
	return &Machine{
		validator: validator,
		submitter: submitter,
		now:       time.Now,
	}
}

// WithClock replaces the clock used for the default join date.
func (m *Machine) WithClock(now func() time.Time) *Machine {
	m.now = now
	return m
}

// Start returns step 1 with an empty record dated today.
func (m *Machine) Start() State {
	return State{
		Step:   StepIdentity,
		Record: Form{JoinDate: m.now().Format(model.DateLayout)},
	}
}

// Reset discards everything, including a completed enrollment.
func (m *Machine) Reset() State {
	return m.Start()
}

// Advance validates the current step's fields of values and moves forward by
// one. On failure the returned state is the input state. Leaving
// StepVerification submits the merged record; if that fails the state stays
// at StepVerification with the merged record kept for a retry.
func (m *Machine) Advance(ctx context.Context, state State, values Form) (State, error) {
	state = state.Sanitized()
	if state.Step == StepPreview {
		return state, ErrWizardComplete
	}

	values = values.Normalized()
	if err := m.validator.ValidateStep(values, state.Step); err != nil {
		return state, err
	}

	next := state
	next.Record = state.Step.merge(state.Record, values)
	if state.Step != StepVerification {
		next.Step++
		return next, nil
	}

	if err := m.validator.ValidateAll(next.Record); err != nil {
		return next, err
	}
	result, err := m.submitter.Submit(ctx, next.Record)
	if err != nil {
		return next, err
	}

	next.Step = StepPreview
	next.Result = result
	return next, nil
}

// Retreat moves back one step without validating. StepPreview is terminal.
func (m *Machine) Retreat(state State) State {
	state = state.Sanitized()
	if state.Step > StepIdentity && state.Step < StepPreview {
		state.Step--
	}
	return state
}

// Sync moves the wizard toward an externally requested step, such as a deep
// link or browser history entry. Backward moves retreat. Forward moves
// advance one step at a time with the record's own values and stop at the
// first step that fails. Sync never submits, so it stops at
// StepVerification.
func (m *Machine) Sync(ctx context.Context, state State, requested int) (State, error) {
	state = state.Sanitized()
	if state.Step == StepPreview {
		return state, nil
	}

	target := ClampStep(requested)
	if target > StepVerification {
		target = StepVerification
	}

	for state.Step > target {
		state = m.Retreat(state)
	}
	for state.Step < target {
		next, err := m.Advance(ctx, state, state.Record)
		if err != nil {
			return state, err
		}
		state = next
	}
	return state, nil
}
