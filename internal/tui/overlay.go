package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// renderModal draws a bordered card centred over base, which is first
// fitted to width x height.
func renderModal(base, body string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	canvas := toLines(base, height)
	for i := range canvas {
		canvas[i] = padRight(canvas[i], width)
	}
	card := toLines(modalStyle.Render(body), 0)
	cardW := 0
	for _, l := range card {
		cardW = max(cardW, ansi.StringWidth(l))
	}
	x := max((width-cardW)/2, 0)
	y := max((height-len(card))/2, 0)
	for i, line := range card {
		row := y + i
		if row >= len(canvas) {
			break
		}
		left := ansi.Truncate(canvas[row], x, "")
		if w := ansi.StringWidth(left); w < x {
			left += strings.Repeat(" ", x-w)
		}
		mid := padRight(line, cardW)
		right := dropColumns(canvas[row], x+cardW)
		canvas[row] = padRight(left+mid+right, width)
	}
	return strings.Join(canvas, "\n")
}

func toLines(s string, height int) []string {
	lines := strings.Split(s, "\n")
	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}
	for height > 0 && len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}

func dropColumns(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	return strings.TrimPrefix(s, ansi.Truncate(s, cols, ""))
}

func padRight(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
