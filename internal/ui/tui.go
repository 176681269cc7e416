package ui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jorbush/rusty-pomo/internal/core"
	"github.com/jorbush/rusty-pomo/internal/theme"
)

const (
	tickInterval = 200 * time.Millisecond
	appTitle     = "Rusty Pomo"
	minBarWidth  = 20
	maxBarWidth  = 60
)

// PhaseNotifier announces phase changes. It is called from a tea.Cmd, never
// from Update.
type PhaseNotifier interface {
	Enabled() bool
	NotifyPhase(ctx context.Context, phase core.Phase) error
}

type Model struct {
	engine   *core.PomodoroEngine
	notifier PhaseNotifier

	width  int
	height int

	styles   styles
	keys     keyMap
	help     help.Model
	focusBar progress.Model
	breakBar progress.Model

	interval time.Duration
	now      func() time.Time
	lastTick time.Time
	// phases entered since the last Update, waiting to be announced
	pending []core.Phase
	quit    bool
}

func NewModel(engine *core.PomodoroEngine, notifier PhaseNotifier, th theme.Theme) (*Model, error) {
	if engine == nil {
		return nil, errors.New("ui: nil engine")
	}
	palette := th.Palette()
	st := newStyles(palette)

	h := help.New()
	h.Styles.ShortKey = st.help.Bold(true)
	h.Styles.ShortDesc = st.help
	h.Styles.ShortSeparator = st.help
	h.Styles.FullKey = st.help.Bold(true)
	h.Styles.FullDesc = st.help
	h.Styles.FullSeparator = st.help

	m := &Model{
		engine:   engine,
		notifier: notifier,
		styles:   st,
		keys:     defaultKeyMap,
		help:     h,
		focusBar: progress.New(progress.WithSolidFill(string(palette.Accent)), progress.WithoutPercentage()),
		breakBar: progress.New(progress.WithSolidFill(string(palette.OK)), progress.WithoutPercentage()),
		interval: tickInterval,
		now:      time.Now,
		lastTick: time.Now(),
	}
	m.focusBar.Width = maxBarWidth
	m.breakBar.Width = maxBarWidth

	// every advance, automatic or skipped, queues a notification
	engine.SetOnAdvance(func(st core.State) {
		m.pending = append(m.pending, st.Phase)
	})
	return m, nil
}

// Run drives m until the user quits or the process is signalled. The
// terminal is restored on every exit path, panics included.
func Run(m *Model) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}

func (m *Model) Init() tea.Cmd {
	return m.tickCmd()
}

type tickMsg time.Time

type notifiedMsg struct {
	phase core.Phase
	err   error
}

func (m *Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.elapse(m.now())
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quit = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Pause):
			m.engine.TogglePause()
		case key.Matches(msg, m.keys.Skip):
			m.engine.Skip()
		case key.Matches(msg, m.keys.Reset):
			m.engine.ResetPhase()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}

	case tickMsg:
		m.elapse(time.Time(msg))
		cmd = m.tickCmd()

	case notifiedMsg:
		if msg.err != nil {
			log.Printf("notification for %s failed: %v", msg.phase, msg.err)
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		w := min(max(msg.Width-12, minBarWidth), maxBarWidth)
		m.focusBar.Width = w
		m.breakBar.Width = w
	}

	return m, tea.Batch(cmd, m.flushNotifications())
}

// elapse feeds the time since the previous tick or key press to the engine.
// A paused engine ignores it, so paused time is never charged later.
func (m *Model) elapse(now time.Time) {
	if !now.After(m.lastTick) {
		return
	}
	m.engine.Tick(now.Sub(m.lastTick))
	m.lastTick = now
}

// flushNotifications turns queued phase changes into dispatch commands.
func (m *Model) flushNotifications() tea.Cmd {
	pending := m.pending
	m.pending = nil
	if m.notifier == nil || !m.notifier.Enabled() || len(pending) == 0 {
		return nil
	}

	cmds := make([]tea.Cmd, 0, len(pending))
	for _, phase := range pending {
		cmds = append(cmds, m.notifyCmd(phase))
	}
	return tea.Batch(cmds...)
}

func (m *Model) notifyCmd(phase core.Phase) tea.Cmd {
	n := m.notifier
	return func() tea.Msg {
		return notifiedMsg{phase: phase, err: n.NotifyPhase(context.Background(), phase)}
	}
}

func (m *Model) View() string {
	if m.quit {
		return ""
	}
	st := m.engine.State()

	phaseStyle, bar := m.styles.focus, m.focusBar
	if st.Phase.IsBreak() {
		phaseStyle, bar = m.styles.brk, m.breakBar
	}

	header := m.styles.brand.Render(appTitle+" · ") + phaseStyle.Render(st.Phase.String())
	timer := m.styles.timer.Render(formatDuration(st.Remaining))

	cfg := m.engine.Config()
	status := m.styles.status.Render(fmt.Sprintf("Session %d/%d  ·  %d completed",
		st.SessionCount+1, cfg.LongEvery, st.PomodoroDone))
	if st.Phase.IsBreak() {
		status = m.styles.status.Render(fmt.Sprintf("%d completed", st.PomodoroDone))
	}

	keys := m.keys
	if st.Paused {
		keys.Pause.SetHelp("␣", "resume")
		status += "  " + m.styles.paused.Render("PAUSED")
	} else {
		keys.Pause.SetHelp("␣", "pause")
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		header,
		"",
		timer,
		bar.ViewAs(m.engine.Progress()),
		"",
		status,
		"",
		m.help.View(keys),
	)
	box := m.styles.frame.Render(body)

	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// formatDuration renders d as MM:SS, dropping fractions of a second.
func formatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
