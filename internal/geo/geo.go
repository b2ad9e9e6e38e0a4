// Package geo provides the State -> LGA -> Ward hierarchy used by the
// enrollment form's cascading selects, chain validation and exports.
package geo

import (
	"errors"
	"fmt"
)

type Ward struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

type LGA struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Wards []Ward `json:"wards,omitempty" yaml:"wards"`
}

type State struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	LGAs []LGA  `json:"lgas,omitempty" yaml:"lgas"`
}

var (
	ErrUnknownState = errors.New("geo: unknown state")
	ErrUnknownLGA   = errors.New("geo: unknown LGA for state")
	ErrUnknownWard  = errors.New("geo: unknown ward for LGA")
)

// ChainError names the first level of a state/lga/ward selection that does not resolve.
type ChainError struct {
	Field string // "state", "lga" or "ward"
	Err   error
}

func (e *ChainError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *ChainError) Unwrap() error {
	return e.Err
}

// Provider answers geography lookups. Implementations are read-only and safe
// for concurrent use.
type Provider interface {
	States() []State
	State(stateID string) (State, bool)
	LGAs(stateID string) []LGA
	Wards(stateID, lgaID string) []Ward
	// ValidateChain returns a *ChainError when the selection is not a valid chain.
	ValidateChain(stateID, lgaID, wardID string) error
	// Names resolves ids to display names, echoing any id it does not know.
	Names(stateID, lgaID, wardID string) (state, lga, ward string)
}

// Dataset is an indexed, immutable Provider.
type Dataset struct {
	source string
	states []State
	byID   map[string]int
}

var _ Provider = (*Dataset)(nil)

// NewDataset indexes states. source labels where the data came from.
func NewDataset(source string, states []State) *Dataset {
	byID := make(map[string]int, len(states))
	for i, s := range states {
		byID[s.ID] = i
	}
	return &Dataset{source: source, states: states, byID: byID}
}

// Sample returns the built-in dataset.
func Sample() *Dataset {
	return NewDataset(SourceSample, sampleStates)
}

// Source reports which source the dataset was loaded from.
func (d *Dataset) Source() string {
	return d.source
}

// States returns states without their LGAs.
func (d *Dataset) States() []State {
	out := make([]State, len(d.states))
	for i, s := range d.states {
		out[i] = State{ID: s.ID, Name: s.Name}
	}
	return out
}

func (d *Dataset) State(stateID string) (State, bool) {
	i, ok := d.byID[stateID]
	if !ok {
		return State{}, false
	}
	return d.states[i], true
}

// LGAs returns the LGAs of a state without their wards.
func (d *Dataset) LGAs(stateID string) []LGA {
	s, ok := d.State(stateID)
	if !ok {
		return nil
	}
	out := make([]LGA, len(s.LGAs))
	for i, l := range s.LGAs {
		out[i] = LGA{ID: l.ID, Name: l.Name}
	}
	return out
}

func (d *Dataset) Wards(stateID, lgaID string) []Ward {
	l, ok := d.lga(stateID, lgaID)
	if !ok {
		return nil
	}
	out := make([]Ward, len(l.Wards))
	copy(out, l.Wards)
	return out
}

func (d *Dataset) ValidateChain(stateID, lgaID, wardID string) error {
	s, ok := d.State(stateID)
	if !ok {
		return &ChainError{Field: "state", Err: ErrUnknownState}
	}
	l, ok := findLGA(s, lgaID)
	if !ok {
		return &ChainError{Field: "lga", Err: ErrUnknownLGA}
	}
	for _, w := range l.Wards {
		if w.ID == wardID {
			return nil
		}
	}
	return &ChainError{Field: "ward", Err: ErrUnknownWard}
}

func (d *Dataset) Names(stateID, lgaID, wardID string) (string, string, string) {
	state, lga, ward := stateID, lgaID, wardID

	s, ok := d.State(stateID)
	if !ok {
		return state, lga, ward
	}
	state = s.Name

	l, ok := findLGA(s, lgaID)
	if !ok {
		return state, lga, ward
	}
	lga = l.Name

	for _, w := range l.Wards {
		if w.ID == wardID {
			ward = w.Name
			break
		}
	}
	return state, lga, ward
}

func (d *Dataset) lga(stateID, lgaID string) (LGA, bool) {
	s, ok := d.State(stateID)
	if !ok {
		return LGA{}, false
	}
	return findLGA(s, lgaID)
}

func findLGA(s State, lgaID string) (LGA, bool) {
	for _, l := range s.LGAs {
		if l.ID == lgaID {
			return l, true
		}
	}
	return LGA{}, false
}
