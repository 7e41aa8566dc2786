// Package wheel holds the prize wheel state and the pure transitions that
// mutate it. Rendering and timing live elsewhere; everything here is a
// function of its inputs.
package wheel

import (
	"fmt"
	"strings"
)

// ResultPrefix is prepended to the label of the reward a spin lands on.
const ResultPrefix = "You got: "

type SpinStatus string

const (
	StatusIdle     SpinStatus = "idle"
	StatusSpinning SpinStatus = "spinning"
)

// RemoveMode selects what a confirmed removal deletes.
type RemoveMode string

const (
	// RemoveByValue deletes every reward whose label matches.
	RemoveByValue RemoveMode = "value"
	// RemoveByEntry deletes only the reward that was picked.
	RemoveByEntry RemoveMode = "entry"
)

func ParseRemoveMode(raw string) (RemoveMode, error) {
	switch RemoveMode(strings.ToLower(strings.TrimSpace(raw))) {
	case "", RemoveByValue:
		return RemoveByValue, nil
	case RemoveByEntry:
		return RemoveByEntry, nil
	default:
		return "", fmt.Errorf("unknown remove mode %q", raw)
	}
}

// Reward is one wheel segment. Labels may repeat; IDs do not.
type Reward struct {
	ID    string
	Label string
}

// Spin is the in-flight spin. The reward is chosen when the spin starts,
// so Label is fixed even if the list changes before it settles.
type Spin struct {
	Seq    int
	Index  int
	Label  string
	From   float64
	Target float64
}

// Removal is a removal request waiting for confirmation.
type Removal struct {
	ID    string
	Label string
}

type State struct {
	Rewards []Reward
	Pending string
	Result  string
	Angle   float64
	Status  SpinStatus
	Spin    *Spin
	Removal *Removal
	// Seq counts spins started on this state; animation events carry it.
	Seq int
}

// NewState seeds a wheel with labels, applying the same rule as Add: blank
// labels are skipped and the rest are trimmed.
func NewState(labels ...string) State {
	s := State{Status: StatusIdle}
	for _, l := range labels {
		s, _ = Reduce(s, Add{Label: l})
	}
	s.Pending = ""
	return s
}

func (s State) Spinning() bool { return s.Status == StatusSpinning && s.Spin != nil }

func (s State) AwaitingConfirmation() bool { return s.Removal != nil }

func (s State) Labels() []string {
	out := make([]string, len(s.Rewards))
	for i, r := range s.Rewards {
		out[i] = r.Label
	}
	return out
}

func (s State) Count(label string) int {
	n := 0
	for _, r := range s.Rewards {
		if r.Label == label {
			n++
		}
	}
	return n
}

func (s State) indexOf(id string) int {
	for i, r := range s.Rewards {
		if r.ID == id {
			return i
		}
	}
	return -1
}

func (s State) indexOfLabel(label string) int {
	for i, r := range s.Rewards {
		if r.Label == label {
			return i
		}
	}
	return -1
}
