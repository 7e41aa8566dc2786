package wheel

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// Action is a state transition request. The set is closed.
type Action interface{ isAction() }

// SetInput mirrors the staging field.
type SetInput struct{ Text string }

// Add appends the trimmed label. Blank labels are ignored silently.
type Add struct{ Label string }

// RequestRemove opens the confirmation gate for one reward, picked by ID or,
// when ID is empty, by the first reward carrying Label.
type RequestRemove struct {
	ID    string
	Label string
}

type CancelRemove struct{}

type ConfirmRemove struct{}

// StartSpin begins a spin landing on Index. The index is drawn by the
// caller so the transition stays deterministic.
type StartSpin struct{ Index int }

// Frame moves the displayed angle of spin Seq.
type Frame struct {
	Seq   int
	Angle float64
}

// Settle completes spin Seq and publishes its result.
type Settle struct{ Seq int }

func (SetInput) isAction()      {}
func (Add) isAction()           {}
func (RequestRemove) isAction() {}
func (CancelRemove) isAction()  {}
func (ConfirmRemove) isAction() {}
func (StartSpin) isAction()     {}
func (Frame) isAction()         {}
func (Settle) isAction()        {}

// Rules parameterise the transitions.
type Rules struct {
	// Rotations is the number of whole turns added to every spin.
	Rotations  int
	RemoveMode RemoveMode
}

func DefaultRules() Rules {
	return Rules{Rotations: 10, RemoveMode: RemoveByValue}
}

// Reduce applies a with DefaultRules.
func Reduce(s State, a Action) (State, error) {
	return DefaultRules().Reduce(s, a)
}

// Reduce returns the state after a. On error the input state is returned
// unchanged.
func (r Rules) Reduce(s State, a Action) (State, error) {
	switch a := a.(type) {
	case SetInput:
		s.Pending = a.Text
		return s, nil
	case Add:
		return add(s, a.Label), nil
	case RequestRemove:
		return requestRemove(s, a)
	case CancelRemove:
		if s.Removal == nil {
			return s, ErrNoPendingRemoval
		}
		s.Removal = nil
		return s, nil
	case ConfirmRemove:
		return r.confirmRemove(s)
	case StartSpin:
		return r.startSpin(s, a.Index)
	case Frame:
		if !s.Spinning() || s.Spin.Seq != a.Seq {
			return s, nil
		}
		angle := math.Min(a.Angle, s.Spin.Target)
		if angle > s.Angle {
			s.Angle = angle
		}
		return s, nil
	case Settle:
		if !s.Spinning() || s.Spin.Seq != a.Seq {
			return s, nil
		}
		s.Angle = s.Spin.Target
		s.Result = ResultPrefix + s.Spin.Label
		s.Status = StatusIdle
		s.Spin = nil
		return s, nil
	default:
		return s, fmt.Errorf("unknown action %T", a)
	}
}

// Spin draws an index from rng and starts a spin on it.
func (r Rules) Spin(s State, rng RNG) (State, error) {
	if s.Spinning() {
		return s, ErrSpinInProgress
	}
	idx, err := Draw(rng, len(s.Rewards))
	if err != nil {
		return s, err
	}
	return r.startSpin(s, idx)
}

func add(s State, label string) State {
	label = strings.TrimSpace(label)
	if label == "" {
		return s
	}
	s.Rewards = append(slices.Clip(s.Rewards), Reward{ID: uuid.NewString(), Label: label})
	s.Pending = ""
	return s
}

func requestRemove(s State, a RequestRemove) (State, error) {
	if s.Removal != nil {
		return s, ErrRemovalPending
	}
	var idx int
	if a.ID != "" {
		idx = s.indexOf(a.ID)
	} else {
		idx = s.indexOfLabel(a.Label)
	}
	if idx < 0 {
		return s, ErrRewardNotFound
	}
	picked := s.Rewards[idx]
	s.Removal = &Removal{ID: picked.ID, Label: picked.Label}
	return s, nil
}

func (r Rules) confirmRemove(s State) (State, error) {
	if s.Removal == nil {
		return s, ErrNoPendingRemoval
	}
	req := *s.Removal
	kept := make([]Reward, 0, len(s.Rewards))
	for _, rw := range s.Rewards {
		switch r.RemoveMode {
		case RemoveByEntry:
			if rw.ID == req.ID {
				continue
			}
		default:
			if rw.Label == req.Label {
				continue
			}
		}
		kept = append(kept, rw)
	}
	s.Rewards = kept
	s.Removal = nil
	return s, nil
}

func (r Rules) startSpin(s State, idx int) (State, error) {
	n := len(s.Rewards)
	if n == 0 {
		return s, ErrEmptyRewardList
	}
	if s.Spinning() {
		return s, ErrSpinInProgress
	}
	if idx < 0 || idx >= n {
		return s, fmt.Errorf("spin index %d of %d: %w", idx, n, ErrRewardNotFound)
	}
	s.Seq++
	s.Spin = &Spin{
		Seq:    s.Seq,
		Index:  idx,
		Label:  s.Rewards[idx].Label,
		From:   s.Angle,
		Target: TargetAngle(s.Angle, r.Rotations, idx, n),
	}
	s.Status = StatusSpinning
	return s, nil
}

// TargetAngle is the angle a spin from current stops at so that segment
// idx of n sits under the pointer. The first spin from zero lands on
// rotations*360 + idx*(360/n); later spins start from the next whole turn
// so the angle never goes backwards.
func TargetAngle(current float64, rotations, idx, n int) float64 {
	base := math.Ceil(current/360) * 360
	return base + float64(rotations)*360 + float64(idx)*(360/float64(n))
}

// SegmentAt reports which of n segments sits under the pointer at angle.
func SegmentAt(angle float64, n int) int {
	if n <= 0 {
		return -1
	}
	width := 360 / float64(n)
	a := math.Mod(angle, 360)
	if a < 0 {
		a += 360
	}
	return int(math.Floor(a/width+1e-9)) % n
}
