// Package animation interpolates a value over a fixed duration. It stands in
// for a UI toolkit's timed transition: start at From, settle at To.
package animation

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"
)

// Easing maps linear progress in [0,1] onto eased progress in [0,1]. It
// must be non-decreasing with Easing(0)=0 and Easing(1)=1.
type Easing func(t float64) float64

func Linear(t float64) float64 { return t }

func EaseOutCubic(t float64) float64 { return 1 - math.Pow(1-t, 3) }

func ParseEasing(name string) (Easing, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "ease-out", "ease_out", "easeout":
		return EaseOutCubic, nil
	case "linear":
		return Linear, nil
	default:
		return nil, fmt.Errorf("unknown easing %q", name)
	}
}

type Transition struct {
	From     float64
	To       float64
	Duration time.Duration
	Easing   Easing
}

// Progress is the linear fraction of Duration elapsed, clamped to [0,1].
func (t Transition) Progress(elapsed time.Duration) float64 {
	if t.Duration <= 0 || elapsed >= t.Duration {
		return 1
	}
	if elapsed <= 0 {
		return 0
	}
	return float64(elapsed) / float64(t.Duration)
}

func (t Transition) Done(elapsed time.Duration) bool {
	return t.Progress(elapsed) >= 1
}

// At returns the interpolated value after elapsed. It is exactly To once
// the transition is done.
func (t Transition) At(elapsed time.Duration) float64 {
	p := t.Progress(elapsed)
	if p >= 1 {
		return t.To
	}
	ease := t.Easing
	if ease == nil {
		ease = EaseOutCubic
	}
	return t.From + (t.To-t.From)*ease(p)
}

// FrameInterval converts a frame rate into a tick interval.
func FrameInterval(rate int) time.Duration {
	if rate <= 0 {
		rate = 30
	}
	return time.Second / time.Duration(rate)
}

// Run plays t in real time, calling onFrame with the value and progress on
// every tick. The last call always carries t.To and progress 1. Run returns
// ctx.Err() if the context ends first.
func Run(ctx context.Context, t Transition, rate int, onFrame func(value, progress float64)) error {
	if onFrame == nil {
		onFrame = func(float64, float64) {}
	}
	if t.Duration <= 0 {
		onFrame(t.To, 1)
		return nil
	}
	start := time.Now()
	ticker := time.NewTicker(FrameInterval(rate))
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			elapsed := now.Sub(start)
			if t.Done(elapsed) {
				onFrame(t.To, 1)
				return nil
			}
			onFrame(t.At(elapsed), t.Progress(elapsed))
		}
	}
}
