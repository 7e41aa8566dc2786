package animation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestTransitionEndpoints(t *testing.T) {
	for _, ease := range []Easing{Linear, EaseOutCubic, nil} {
		tr := Transition{From: 90, To: 3690, Duration: 4 * time.Second, Easing: ease}
		require.Equal(t, 90.0, tr.At(0))
		require.Equal(t, 3690.0, tr.At(4*time.Second))
		require.Equal(t, 3690.0, tr.At(time.Minute))
		require.True(t, tr.Done(4*time.Second))
		require.False(t, tr.Done(3999*time.Millisecond))
	}
}

func TestTransitionIsMonotonic(t *testing.T) {
	for _, ease := range []Easing{Linear, EaseOutCubic} {
		tr := Transition{From: 0, To: 3600, Duration: 4 * time.Second, Easing: ease}
		prev := tr.At(0)
		for ms := 0; ms <= 4100; ms += 16 {
			v := tr.At(time.Duration(ms) * time.Millisecond)
			require.GreaterOrEqual(t, v, prev)
			require.LessOrEqual(t, v, 3600.0)
			prev = v
		}
	}
}

func TestLinearMidpoint(t *testing.T) {
	tr := Transition{From: 0, To: 100, Duration: time.Second, Easing: Linear}
	require.InDelta(t, 50.0, tr.At(500*time.Millisecond), 1e-9)
	require.InDelta(t, 0.5, tr.Progress(500*time.Millisecond), 1e-9)
}

func TestZeroDurationSettlesImmediately(t *testing.T) {
	tr := Transition{From: 1, To: 2}
	require.True(t, tr.Done(0))
	require.Equal(t, 2.0, tr.At(0))

	var got []float64
	require.NoError(t, Run(context.Background(), tr, 60, func(v, _ float64) { got = append(got, v) }))
	require.Equal(t, []float64{2}, got)
}

func TestParseEasing(t *testing.T) {
	e, err := ParseEasing("linear")
	require.NoError(t, err)
	require.Equal(t, 0.25, e(0.25))

	e, err = ParseEasing("")
	require.NoError(t, err)
	require.InDelta(t, EaseOutCubic(0.25), e(0.25), 1e-12)

	_, err = ParseEasing("bounce")
	require.Error(t, err)
}

func TestFrameInterval(t *testing.T) {
	require.Equal(t, time.Second/60, FrameInterval(60))
	require.Equal(t, time.Second/30, FrameInterval(0))
}

func TestRunSettlesOnTarget(t *testing.T) {
	tr := Transition{From: 0, To: 360, Duration: 40 * time.Millisecond, Easing: Linear}
	var values, progress []float64
	err := Run(context.Background(), tr, 200, func(v, p float64) {
		values = append(values, v)
		progress = append(progress, p)
	})
	require.NoError(t, err)
	require.NotEmpty(t, values)
	require.Equal(t, 360.0, values[len(values)-1])
	require.Equal(t, 1.0, progress[len(progress)-1])
	for i := 1; i < len(values); i++ {
		require.GreaterOrEqual(t, values[i], values[i-1])
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	tr := Transition{From: 0, To: 1, Duration: time.Hour}
	done := make(chan error, 1)
	go func() { done <- Run(ctx, tr, 100, nil) }()

	time.Sleep(20 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
