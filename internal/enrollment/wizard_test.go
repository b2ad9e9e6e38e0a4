package enrollment_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Sheddybata/sdp.app/internal/enrollment"
	"github.com/Sheddybata/sdp.app/internal/identifier"
	"github.com/Sheddybata/sdp.app/internal/member"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, time.March, 10, 9, 30, 0, 0, time.UTC)

type fakeSubmitter struct {
	err   error
	calls int
	got   enrollment.Form
}

func (f *fakeSubmitter) Submit(_ context.Context, form enrollment.Form) (*enrollment.Enrollment, error) {
	f.calls++
	f.got = form
	if f.err != nil {
		return nil, f.err
	}
	return &enrollment.Enrollment{
		Card: enrollment.Card{
			MembershipID: identifier.DeriveMembershipID(form.Surname, form.VoterRegistrationNumber),
		},
	}, nil
}

func newMachine(t *testing.T, submitter enrollment.Submitter) *enrollment.Machine {
	t.Helper()
	return enrollment.NewMachine(newFormValidator(t), submitter).WithClock(func() time.Time { return fixedNow })
}

func TestMachine_Start(t *testing.T) {
	m := newMachine(t, &fakeSubmitter{})

	want := enrollment.State{
		Step:   enrollment.StepIdentity,
		Record: enrollment.Form{JoinDate: "2026-03-10"},
	}
	if diff := cmp.Diff(want, m.Start()); diff != "" {
		t.Errorf("Start() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, m.Start(), m.Reset())
}

func TestMachine_WalkToPreview(t *testing.T) {
	submitter := &fakeSubmitter{}
	m := newMachine(t, submitter)
	ctx := context.Background()

	state := m.Start()
	for want := enrollment.StepContact; want <= enrollment.StepPreview; want++ {
		next, err := m.Advance(ctx, state, validForm())
		require.NoError(t, err, "advance from %s", state.Step)
		assert.Equal(t, want, next.Step)
		state = next
	}

	assert.Equal(t, 1, submitter.calls)
	if diff := cmp.Diff(validForm(), state.Record); diff != "" {
		t.Errorf("record mismatch (-want +got):\n%s", diff)
	}
	require.NotNil(t, state.Result)
	assert.Equal(t, "SDP-OKO-567890", state.Result.Card.MembershipID)

	_, err := m.Advance(ctx, state, validForm())
	assert.ErrorIs(t, err, enrollment.ErrWizardComplete)
}

func TestMachine_AdvanceMergesOnlyCurrentStep(t *testing.T) {
	m := newMachine(t, &fakeSubmitter{})

	next, err := m.Advance(context.Background(), m.Start(), validForm())
	require.NoError(t, err)

	want := enrollment.Form{
		Title:      "Chief",
		Surname:    "Okonkwo",
		FirstName:  "Chidi",
		OtherNames: "Emeka",
		JoinDate:   "2026-03-10",
	}
	if diff := cmp.Diff(want, next.Record); diff != "" {
		t.Errorf("record mismatch (-want +got):\n%s", diff)
	}
}

func TestMachine_AdvanceRejectsInvalidStep(t *testing.T) {
	m := newMachine(t, &fakeSubmitter{})
	start := m.Start()

	values := validForm()
	values.Surname = ""

	next, err := m.Advance(context.Background(), start, values)

	assert.Contains(t, fieldsOf(t, err), "surname")
	if diff := cmp.Diff(start, next); diff != "" {
		t.Errorf("state changed on failed advance (-want +got):\n%s", diff)
	}
}

func TestMachine_AdvanceStoresTrimmedValues(t *testing.T) {
	m := newMachine(t, &fakeSubmitter{})
	start := m.Start()

	values := validForm()
	values.Surname = "A "
	next, err := m.Advance(context.Background(), start, values)
	assert.Contains(t, fieldsOf(t, err), "surname")
	assert.Equal(t, start, next)

	values.Surname = " Okonkwo "
	next, err = m.Advance(context.Background(), start, values)
	require.NoError(t, err)
	assert.Equal(t, "Okonkwo", next.Record.Surname)
}

func TestMachine_SubmissionFailureStaysOnVerification(t *testing.T) {
	submitter := &fakeSubmitter{err: member.ErrAlreadyRegistered}
	m := newMachine(t, submitter)

	record := validForm()
	record.VoterRegistrationNumber = ""
	record.AgreedToConstitution = false
	state := enrollment.State{Step: enrollment.StepVerification, Record: record}

	next, err := m.Advance(context.Background(), state, validForm())

	assert.ErrorIs(t, err, member.ErrAlreadyRegistered)
	assert.Equal(t, enrollment.StepVerification, next.Step)
	assert.Nil(t, next.Result)
	if diff := cmp.Diff(validForm(), next.Record); diff != "" {
		t.Errorf("merged record lost (-want +got):\n%s", diff)
	}

	// Retrying with the kept record succeeds once the submitter recovers.
	submitter.err = nil
	next, err = m.Advance(context.Background(), next, next.Record)
	require.NoError(t, err)
	assert.Equal(t, enrollment.StepPreview, next.Step)
	assert.Equal(t, 2, submitter.calls)
}

func TestMachine_FinalValidationCoversEarlierSteps(t *testing.T) {
	submitter := &fakeSubmitter{}
	m := newMachine(t, submitter)

	record := validForm()
	record.Surname = ""
	state := enrollment.State{Step: enrollment.StepVerification, Record: record}

	next, err := m.Advance(context.Background(), state, validForm())

	assert.Contains(t, fieldsOf(t, err), "surname")
	assert.Equal(t, enrollment.StepVerification, next.Step)
	assert.Zero(t, submitter.calls)
}

func TestMachine_Retreat(t *testing.T) {
	m := newMachine(t, &fakeSubmitter{})

	tests := []struct {
		name string
		from enrollment.Step
		want enrollment.Step
	}{
		{"from identity stays", enrollment.StepIdentity, enrollment.StepIdentity},
		{"from contact", enrollment.StepContact, enrollment.StepIdentity},
		{"from verification", enrollment.StepVerification, enrollment.StepGeography},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := enrollment.State{Step: tt.from, Record: validForm()}
			got := m.Retreat(state)
			assert.Equal(t, tt.want, got.Step)
			assert.Equal(t, validForm(), got.Record)
		})
	}

	preview := enrollment.State{Step: enrollment.StepPreview, Record: validForm(), Result: &enrollment.Enrollment{}}
	assert.Equal(t, enrollment.StepPreview, m.Retreat(preview).Step)
}

func TestMachine_Sync(t *testing.T) {
	submitter := &fakeSubmitter{}
	m := newMachine(t, submitter)
	ctx := context.Background()

	t.Run("forward stops before submission", func(t *testing.T) {
		state := enrollment.State{Step: enrollment.StepIdentity, Record: validForm()}
		got, err := m.Sync(ctx, state, 5)
		require.NoError(t, err)
		assert.Equal(t, enrollment.StepVerification, got.Step)
		assert.Zero(t, submitter.calls)
	})

	t.Run("forward stops at first failing step", func(t *testing.T) {
		record := validForm()
		record.Phone = ""
		state := enrollment.State{Step: enrollment.StepIdentity, Record: record}

		got, err := m.Sync(ctx, state, 4)
		assert.Contains(t, fieldsOf(t, err), "phone")
		assert.Equal(t, enrollment.StepContact, got.Step)
	})

	t.Run("backward keeps values", func(t *testing.T) {
		state := enrollment.State{Step: enrollment.StepVerification, Record: validForm()}
		got, err := m.Sync(ctx, state, 2)
		require.NoError(t, err)
		assert.Equal(t, enrollment.StepContact, got.Step)
		assert.Equal(t, validForm(), got.Record)
	})

	t.Run("out of range request is clamped", func(t *testing.T) {
		state := enrollment.State{Step: enrollment.StepGeography, Record: validForm()}
		got, err := m.Sync(ctx, state, -7)
		require.NoError(t, err)
		assert.Equal(t, enrollment.StepIdentity, got.Step)
	})

	t.Run("preview is terminal", func(t *testing.T) {
		state := enrollment.State{Step: enrollment.StepPreview, Record: validForm(), Result: &enrollment.Enrollment{}}
		got, err := m.Sync(ctx, state, 1)
		require.NoError(t, err)
		assert.Equal(t, enrollment.StepPreview, got.Step)
	})
}

func TestState_Sanitized(t *testing.T) {
	result := &enrollment.Enrollment{}

	tests := []struct {
		name       string
		in         enrollment.State
		wantStep   enrollment.Step
		wantResult bool
	}{
		{"below range", enrollment.State{Step: 0}, enrollment.StepIdentity, false},
		{"above range", enrollment.State{Step: 42, Result: result}, enrollment.StepPreview, true},
		{"preview without result", enrollment.State{Step: enrollment.StepPreview}, enrollment.StepVerification, false},
		{"result before preview is dropped", enrollment.State{Step: enrollment.StepGeography, Result: result}, enrollment.StepGeography, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Sanitized()
			assert.Equal(t, tt.wantStep, got.Step)
			assert.Equal(t, tt.wantResult, got.Result != nil)
		})
	}
}

func TestMachine_SubmitterErrorIsSurfaced(t *testing.T) {
	boom := errors.New("boom")
	m := newMachine(t, &fakeSubmitter{err: boom})

	state := enrollment.State{Step: enrollment.StepVerification, Record: validForm()}
	_, err := m.Advance(context.Background(), state, validForm())
	assert.ErrorIs(t, err, boom)
}
