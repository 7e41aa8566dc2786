package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/jask/prizewheel/internal/animation"
	"github.com/jask/prizewheel/internal/wheel"
)

// App is the wheel screen. All wheel data lives in state and only changes
// through wheel transitions; the rest is view state.
type App struct {
	opts      Options
	state     wheel.State
	input     textinput.Model
	focus     focusArea
	cursor    int
	status    string
	statusErr bool
	keys      keyMap
	help      help.Model
	width     int
	height    int
	spinStart time.Time
}

// Options wire the screen to its collaborators.
type Options struct {
	Rules        wheel.Rules
	RNG          wheel.RNG
	SpinDuration time.Duration
	Easing       animation.Easing
	FrameRate    int
	Logger       *zap.Logger
	// Now is the clock used to time spins; defaults to time.Now.
	Now func() time.Time
}

type focusArea string

const (
	focusList  focusArea = "list"
	focusInput focusArea = "input"
)

// frameMsg is one animation tick for spin seq.
type frameMsg struct {
	seq int
	at  time.Time
}

func New(state wheel.State, opts Options) *App {
	if opts.RNG == nil {
		opts.RNG = wheel.NewRNG(0)
	}
	if opts.Easing == nil {
		opts.Easing = animation.EaseOutCubic
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Rules.RemoveMode == "" {
		opts.Rules.RemoveMode = wheel.RemoveByValue
	}
	if state.Status == "" {
		state.Status = wheel.StatusIdle
	}

	ti := textinput.New()
	ti.Placeholder = "Enter a new reward"
	ti.Prompt = "New reward: "
	ti.CharLimit = 0
	ti.Width = 40
	ti.SetValue(state.Pending)

	return &App{
		opts:   opts,
		state:  state,
		input:  ti,
		focus:  focusList,
		keys:   newKeyMap(),
		help:   help.New(),
		width:  80,
		height: 24,
	}
}

// State returns the current wheel state.
func (a *App) State() wheel.State { return a.state }

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.help.Width = m.Width
		a.input.Width = max(m.Width-len(a.input.Prompt)-6, 10)
	case tea.KeyMsg:
		if key.Matches(m, a.keys.ForceQ) {
			return a, tea.Quit
		}
		if a.state.AwaitingConfirmation() {
			return a.handleModalKey(m)
		}
		if a.focus == focusInput {
			return a.handleInputKey(m)
		}
		return a.handleListKey(m)
	case frameMsg:
		return a, a.handleFrame(m)
	}
	return a, nil
}

func (a *App) handleListKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(m, a.keys.Spin):
		return a, a.spin()
	case key.Matches(m, a.keys.Input):
		a.focus = focusInput
		return a, a.input.Focus()
	case key.Matches(m, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}
	case key.Matches(m, a.keys.Down):
		if a.cursor < len(a.state.Rewards)-1 {
			a.cursor++
		}
	case key.Matches(m, a.keys.Remove):
		a.requestRemove()
	case key.Matches(m, a.keys.Help):
		a.help.ShowAll = !a.help.ShowAll
	}
	return a, nil
}

func (a *App) handleInputKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Submit):
		a.add(a.input.Value())
		return a, nil
	case key.Matches(m, a.keys.Leave):
		a.focus = focusList
		a.input.Blur()
		return a, nil
	}
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(m)
	a.apply(wheel.SetInput{Text: a.input.Value()})
	return a, cmd
}

func (a *App) handleModalKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Confirm):
		req := *a.state.Removal
		before := len(a.state.Rewards)
		if err := a.apply(wheel.ConfirmRemove{}); err != nil {
			return a, nil
		}
		removed := before - len(a.state.Rewards)
		a.clampCursor()
		a.opts.Logger.Info("reward removed", zap.String("label", req.Label), zap.Int("count", removed))
		a.setStatus(fmt.Sprintf("Removed %q", req.Label))
	case key.Matches(m, a.keys.Cancel):
		if err := a.apply(wheel.CancelRemove{}); err != nil {
			return a, nil
		}
		a.setStatus("Removal cancelled")
	}
	return a, nil
}

func (a *App) add(raw string) {
	label := strings.TrimSpace(raw)
	hint, similar := wheel.SimilarLabel(a.state.Rewards, label)
	before := len(a.state.Rewards)
	if err := a.apply(wheel.Add{Label: raw}); err != nil || len(a.state.Rewards) == before {
		return
	}
	a.input.Reset()
	a.opts.Logger.Debug("reward added", zap.String("label", label), zap.Int("rewards", len(a.state.Rewards)))
	switch {
	case similar && hint.Exact && a.opts.Rules.RemoveMode == wheel.RemoveByValue:
		a.setStatus(fmt.Sprintf("Added %q again; removing it removes every copy", label))
	case similar && hint.Exact:
		a.setStatus(fmt.Sprintf("Added %q again (%d copies)", label, a.state.Count(label)))
	case similar:
		a.setStatus(fmt.Sprintf("Added %q (similar to %q)", label, hint.Existing))
	default:
		a.setStatus(fmt.Sprintf("Added %q", label))
	}
}

func (a *App) requestRemove() {
	if len(a.state.Rewards) == 0 {
		a.setError(wheel.ErrRewardNotFound)
		return
	}
	a.clampCursor()
	_ = a.apply(wheel.RequestRemove{ID: a.state.Rewards[a.cursor].ID})
}

func (a *App) spin() tea.Cmd {
	next, err := a.opts.Rules.Spin(a.state, a.opts.RNG)
	if err != nil {
		if errors.Is(err, wheel.ErrSpinInProgress) {
			a.opts.Logger.Debug("spin ignored", zap.Error(err))
		}
		a.setError(err)
		return nil
	}
	a.state = next
	a.spinStart = a.opts.Now()
	sp := a.state.Spin
	a.opts.Logger.Info("spin started",
		zap.Int("seq", sp.Seq),
		zap.Int("index", sp.Index),
		zap.Float64("from", sp.From),
		zap.Float64("target", sp.Target),
	)
	a.setStatus("Spinning...")
	return a.frameCmd(sp.Seq)
}

func (a *App) frameCmd(seq int) tea.Cmd {
	return tea.Tick(animation.FrameInterval(a.opts.FrameRate), func(t time.Time) tea.Msg {
		return frameMsg{seq: seq, at: t}
	})
}

func (a *App) handleFrame(m frameMsg) tea.Cmd {
	sp := a.state.Spin
	if !a.state.Spinning() || sp.Seq != m.seq {
		return nil
	}
	tr := animation.Transition{From: sp.From, To: sp.Target, Duration: a.opts.SpinDuration, Easing: a.opts.Easing}
	elapsed := m.at.Sub(a.spinStart)
	if tr.Done(elapsed) {
		_ = a.apply(wheel.Settle{Seq: m.seq})
		a.opts.Logger.Info("spin settled", zap.Int("seq", m.seq), zap.String("result", a.state.Result))
		a.setStatus("Ready")
		return nil
	}
	_ = a.apply(wheel.Frame{Seq: m.seq, Angle: tr.At(elapsed)})
	return a.frameCmd(m.seq)
}

// apply runs one transition and reports failures in the status bar.
func (a *App) apply(action wheel.Action) error {
	next, err := a.opts.Rules.Reduce(a.state, action)
	if err != nil {
		a.opts.Logger.Debug("transition rejected", zap.String("action", fmt.Sprintf("%T", action)), zap.Error(err))
		a.setError(err)
		return err
	}
	a.state = next
	return nil
}

func (a *App) clampCursor() {
	if a.cursor >= len(a.state.Rewards) {
		a.cursor = len(a.state.Rewards) - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

func (a *App) setStatus(msg string) {
	a.status = msg
	a.statusErr = false
}

func (a *App) setError(err error) {
	if err == nil {
		a.setStatus("")
		return
	}
	a.status = err.Error()
	a.statusErr = true
}

func (a *App) View() string {
	sections := []string{
		titleStyle.Render("Prize Wheel"),
		renderWheel(a.state, a.width),
		a.input.View(),
		a.renderResult(),
		a.renderRewards(),
		a.renderStatus(),
		a.renderHelp(),
	}
	body := lipgloss.JoinVertical(lipgloss.Left, sections...)
	if a.state.AwaitingConfirmation() {
		return renderModal(body, a.renderConfirm(), a.width, max(a.height, lipgloss.Height(body)))
	}
	return body
}

func (a *App) renderResult() string {
	if a.state.Result == "" {
		return mutedStyle.Render("Press s to spin")
	}
	return resultStyle.Render(a.state.Result)
}

func (a *App) renderRewards() string {
	out := titleStyle.Render("Rewards:") + "\n"
	if len(a.state.Rewards) == 0 {
		return out + mutedStyle.Render("  (no rewards yet)")
	}
	lines := make([]string, 0, len(a.state.Rewards))
	for i, r := range a.state.Rewards {
		marker := " "
		if i == a.cursor && a.focus == focusList {
			marker = cursorStyle.Render("▶")
		}
		lines = append(lines, fmt.Sprintf("%s %2d. %s", marker, i+1, r.Label))
	}
	return out + strings.Join(lines, "\n")
}

func (a *App) renderConfirm() string {
	req := a.state.Removal
	out := titleStyle.Render("Remove Reward") + "\n"
	out += fmt.Sprintf("Are you sure you want to remove %q?", req.Label)
	if n := a.state.Count(req.Label); n > 1 && a.opts.Rules.RemoveMode == wheel.RemoveByValue {
		out += fmt.Sprintf("\nAll %d entries with this label will be removed.", n)
	}
	return out + "\n\n[n] Cancel  [y] OK"
}

func (a *App) renderStatus() string {
	msg := strings.TrimSpace(a.status)
	if msg == "" {
		msg = "Ready"
	}
	style := statusBarStyle
	if a.statusErr {
		style = statusErrBarStyle
	}
	width := max(a.width, 1)
	return style.Width(width).MaxWidth(width).Render(padRight(" "+msg, width))
}

func (a *App) renderHelp() string {
	switch {
	case a.state.AwaitingConfirmation():
		return a.help.View(modalKeys{a.keys})
	case a.focus == focusInput:
		return a.help.View(inputKeys{a.keys})
	default:
		return a.help.View(listKeys{a.keys})
	}
}
