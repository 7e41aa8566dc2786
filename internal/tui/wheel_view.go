package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/prizewheel/internal/wheel"
)

var wheelGlyphs = []string{"◐", "◓", "◑", "◒"}

// maxSegmentWidth caps how much of a label a wheel segment shows.
const maxSegmentWidth = 16

// wheelGlyph turns with the angle, a quarter glyph per 90 degrees.
func wheelGlyph(angle float64) string {
	i := int(math.Floor(angle/90)) % len(wheelGlyphs)
	if i < 0 {
		i += len(wheelGlyphs)
	}
	return wheelGlyphs[i]
}

// renderWheel shows the segment under the pointer with up to two
// neighbours on each side.
func renderWheel(s wheel.State, width int) string {
	inner := max(width-4, 20)
	n := len(s.Rewards)
	if n == 0 {
		return wheelBoxStyle.Width(inner).Render(mutedStyle.Render("(add a reward to spin)"))
	}
	idxs, active := segmentWindow(wheel.SegmentAt(s.Angle, n), n)
	parts := make([]string, len(idxs))
	for i, idx := range idxs {
		label := ansi.Truncate(s.Rewards[idx].Label, maxSegmentWidth, "…")
		if i == active {
			parts[i] = activeStyle.Render(label)
			continue
		}
		parts[i] = segmentStyle.Render(label)
	}
	strip := ansi.Truncate(strings.Join(parts, mutedStyle.Render("│")), inner, "…")
	pointer := pointerPad(parts, active) + pointerStyle.Render("▼")

	state := "idle"
	if s.Spinning() {
		state = "spinning"
	}
	footer := mutedStyle.Render(fmt.Sprintf("%s %.0f°  %d segments  %s", wheelGlyph(s.Angle), s.Angle, n, state))

	body := lipgloss.JoinVertical(lipgloss.Left, pointer, strip, footer)
	return wheelBoxStyle.Width(inner).Render(body)
}

// segmentWindow lists the segments to draw around cur, at most two on each
// side, and the position of cur in that list. With an even count the
// segment opposite the pointer goes on the right.
func segmentWindow(cur, n int) ([]int, int) {
	reach := min((n-1)/2, 2)
	out := make([]int, 0, 2*reach+2)
	for off := -reach; off <= reach; off++ {
		out = append(out, ((cur+off)%n+n)%n)
	}
	if n > 1 && n%2 == 0 && reach < 2 {
		out = append(out, (cur+reach+1)%n)
	}
	return out, reach
}

// pointerPad returns spaces that put the pointer above the middle of the
// active segment.
func pointerPad(parts []string, active int) string {
	col := 0
	for i := 0; i < active; i++ {
		col += ansi.StringWidth(parts[i]) + 1
	}
	col += ansi.StringWidth(parts[active]) / 2
	return strings.Repeat(" ", col)
}
