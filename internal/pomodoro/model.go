// Package pomodoro is the focus timer. It counts down in one-second ticks
// and hands the finished session to a Recorder; it never touches progress
// state itself.
package pomodoro

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepquest/internal/progress"
	"github.com/abhisek/prepquest/internal/ui/components"
	"github.com/abhisek/prepquest/internal/ui/layout"
	"github.com/abhisek/prepquest/internal/ui/theme"
)

const (
	maxMinutes   = 180
	tickInterval = time.Second
)

// Recorder stores a finished session. *app.Tracker satisfies it.
type Recorder interface {
	AddPomodoroSession(ctx context.Context, p progress.NewPomodoro) (progress.PomodoroSession, progress.Result, error)
}

// Config controls the timer.
type Config struct {
	DefaultMinutes int
	XPPerMinute    int
	Header         layout.HeaderStats
}

type phase int

const (
	phaseSetup phase = iota
	phaseRunning
	phaseSaving
	phaseDone
)

// Session is a recorded pomodoro and the engine's verdict on it.
type Session struct {
	progress.PomodoroSession
	Result progress.Result
}

type tickMsg struct {
	id int
}

type savedMsg struct {
	session progress.PomodoroSession
	result  progress.Result
	err     error
}

// Model is the bubbletea model for one pomodoro.
type Model struct {
	rec Recorder
	cfg Config
	now func() time.Time

	phase   phase
	input   components.NumberInput
	minutes int
	start   time.Time
	elapsed time.Duration
	paused  bool
	tickID  int

	completed bool
	saved     *savedMsg

	width  int
	height int
}

// New returns a model in the setup phase.
func New(rec Recorder, cfg Config) Model {
	if cfg.DefaultMinutes <= 0 {
		cfg.DefaultMinutes = 25
	}
	return Model{
		rec:   rec,
		cfg:   cfg,
		now:   time.Now,
		input: components.NewNumberInput("minutes", cfg.DefaultMinutes, 3),
	}
}

func (m Model) Init() tea.Cmd {
	return m.input.Model.Focus()
}

func (m Model) tick() tea.Cmd {
	id := m.tickID
	return tea.Tick(tickInterval, func(time.Time) tea.Msg {
		return tickMsg{id: id}
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tickMsg:
		if m.phase != phaseRunning || m.paused || msg.id != m.tickID {
			return m, nil
		}
		m.elapsed += tickInterval
		if m.elapsed >= m.duration() {
			return m.finish(true)
		}
		return m, m.tick()

	case savedMsg:
		m.phase = phaseDone
		m.saved = &msg
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	if m.phase == phaseSetup {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch m.phase {
	case phaseSetup:
		switch key {
		case "ctrl+c", "esc", "q":
			return m, tea.Quit
		case "enter":
			n, err := m.input.Int()
			if err != nil || n <= 0 || n > maxMinutes {
				m.input.SetError(fmt.Sprintf("enter 1 to %d minutes", maxMinutes))
				return m, nil
			}
			m.minutes = n
			m.phase = phaseRunning
			m.start = m.now()
			return m, m.tick()
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case phaseRunning:
		switch key {
		case "ctrl+c", "q", "esc":
			return m.finish(false)
		case "p", "space":
			m.paused = !m.paused
			m.tickID++
			if m.paused {
				return m, nil
			}
			return m, m.tick()
		}

	case phaseDone:
		return m, tea.Quit
	}
	return m, nil
}

// finish stops the timer and records the session. Abandoned sessions are
// stored as incomplete and earn nothing.
func (m Model) finish(completed bool) (tea.Model, tea.Cmd) {
	m.phase = phaseSaving
	m.completed = completed
	m.tickID++

	p := progress.NewPomodoro{
		StartTime: m.start,
		Duration:  m.minutes,
		Completed: completed,
	}
	if completed {
		p.XPEarned = m.minutes * m.cfg.XPPerMinute
	}
	rec := m.rec
	return m, func() tea.Msg {
		s, r, err := rec.AddPomodoroSession(context.Background(), p)
		return savedMsg{session: s, result: r, err: err}
	}
}

func (m Model) duration() time.Duration {
	return time.Duration(m.minutes) * time.Minute
}

func (m Model) remaining() time.Duration {
	return max(m.duration()-m.elapsed, 0)
}

// Saved returns the recorded session once the model has finished. ok is
// false while the timer is still running or was quit during setup.
func (m Model) Saved() (s Session, ok bool, err error) {
	if m.saved == nil {
		return Session{}, false, nil
	}
	return Session{PomodoroSession: m.saved.session, Result: m.saved.result}, true, m.saved.err
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	header := layout.RenderHeader("Focus", m.cfg.Header, m.width)
	footer := layout.RenderFooter(m.hints(), m.width)
	v.SetContent(layout.RenderFrame(header, theme.Card.Render(m.body()), footer, m.width, m.height))
	return v
}

func (m Model) hints() []layout.KeyHint {
	switch m.phase {
	case phaseSetup:
		return []layout.KeyHint{{Key: "Enter", Description: "Start"}, {Key: "Esc", Description: "Quit"}}
	case phaseRunning:
		return []layout.KeyHint{{Key: "P", Description: "Pause"}, {Key: "Q", Description: "Abandon"}}
	default:
		return []layout.KeyHint{{Key: "Any key", Description: "Exit"}}
	}
}

func (m Model) body() string {
	var b strings.Builder
	switch m.phase {
	case phaseSetup:
		b.WriteString(theme.Title.Render("How long will you focus?"))
		b.WriteString("\n\n")
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render(fmt.Sprintf("%d XP per minute when you finish", m.cfg.XPPerMinute)))

	case phaseRunning, phaseSaving:
		rem := m.remaining()
		clock := fmt.Sprintf("%02d:%02d", int(rem.Minutes()), int(rem.Seconds())%60)
		b.WriteString(theme.Title.Render(clock))
		b.WriteString("\n\n")
		pct := float64(m.elapsed) / float64(m.duration())
		b.WriteString(components.NewProgressBar("", pct, true, 36).View())
		if m.paused {
			b.WriteString("\n\n")
			b.WriteString(theme.Hint.Render("paused"))
		}

	case phaseDone:
		b.WriteString(m.summary())
	}
	return lipgloss.NewStyle().Width(40).Align(lipgloss.Center).Render(b.String())
}

func (m Model) summary() string {
	if m.saved.err != nil {
		return theme.Warning.Render("Could not save session: " + m.saved.err.Error())
	}
	if !m.completed {
		return theme.Body.Render(fmt.Sprintf("Session abandoned after %s.", m.elapsed.Truncate(time.Second)))
	}
	lines := []string{
		theme.Title.Render("Session complete!"),
		"",
		theme.Reward.Render(fmt.Sprintf("+%d XP", m.saved.result.XPDelta)),
	}
	if m.saved.result.LeveledUp {
		lines = append(lines, theme.Reward.Render("Level up!"))
	}
	for _, id := range m.saved.result.NewBadges {
		lines = append(lines, theme.Body.Render("Badge unlocked: "+id))
	}
	return strings.Join(lines, "\n")
}

// Run shows the timer and blocks until the user exits.
func Run(rec Recorder, cfg Config) (Session, bool, error) {
	final, err := tea.NewProgram(New(rec, cfg)).Run()
	if err != nil {
		return Session{}, false, err
	}
	return final.(Model).Saved()
}
