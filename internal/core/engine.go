package core

import (
	"errors"
	"fmt"
	"time"
)

type Phase int

const (
	PhaseFocus Phase = iota
	PhaseShortBreak
	PhaseLongBreak
)

func (p Phase) String() string {
	switch p {
	case PhaseFocus:
		return "Focus"
	case PhaseShortBreak:
		return "Short Break"
	case PhaseLongBreak:
		return "Long Break"
	default:
		return "Unknown"
	}
}

// IsBreak reports whether p is one of the two break phases.
func (p Phase) IsBreak() bool {
	return p == PhaseShortBreak || p == PhaseLongBreak
}

type Config struct {
	Focus     time.Duration
	ShortBrk  time.Duration
	LongBrk   time.Duration
	LongEvery int
}

var ErrInvalidConfig = errors.New("invalid timer config")

// Validate checks that every duration is positive and the cadence is at least one.
func (c Config) Validate() error {
	switch {
	case c.Focus <= 0:
		return fmt.Errorf("%w: focus duration must be positive, got %s", ErrInvalidConfig, c.Focus)
	case c.ShortBrk <= 0:
		return fmt.Errorf("%w: short break duration must be positive, got %s", ErrInvalidConfig, c.ShortBrk)
	case c.LongBrk <= 0:
		return fmt.Errorf("%w: long break duration must be positive, got %s", ErrInvalidConfig, c.LongBrk)
	case c.LongEvery < 1:
		return fmt.Errorf("%w: long break cadence must be at least 1, got %d", ErrInvalidConfig, c.LongEvery)
	}
	return nil
}

type State struct {
	Phase     Phase
	Remaining time.Duration
	Paused    bool
	// SessionCount is the number of focus phases finished since the last long break.
	SessionCount int
	// PomodoroDone counts every focus phase finished during this run.
	PomodoroDone int
}

// PomodoroEngine is the phase state machine. It is not safe for concurrent use:
// the render loop is its only caller.
type PomodoroEngine struct {
	cfg   Config
	state State

	// optional subscriber (e.g., notifications)
	onAdvance func(State)
}

func New(cfg Config) *PomodoroEngine {
	return &PomodoroEngine{
		cfg: cfg,
		state: State{
			Phase:     PhaseFocus,
			Remaining: cfg.Focus,
		},
	}
}

func (p *PomodoroEngine) SetOnAdvance(fn func(State)) {
	p.onAdvance = fn
}

// State returns a snapshot of the current state.
func (p *PomodoroEngine) State() State {
	return p.state
}

func (p *PomodoroEngine) Config() Config {
	return p.cfg
}

func (p *PomodoroEngine) Remaining() time.Duration {
	return p.state.Remaining
}

// PhaseDuration returns the configured length of phase.
func (p *PomodoroEngine) PhaseDuration(phase Phase) time.Duration {
	switch phase {
	case PhaseShortBreak:
		return p.cfg.ShortBrk
	case PhaseLongBreak:
		return p.cfg.LongBrk
	default:
		return p.cfg.Focus
	}
}

// Progress is the completed fraction of the current phase, in [0, 1].
func (p *PomodoroEngine) Progress() float64 {
	total := p.PhaseDuration(p.state.Phase)
	if total <= 0 {
		return 0
	}
	ratio := 1 - float64(p.state.Remaining)/float64(total)
	if ratio < 0 {
		return 0
	}
	if ratio > 1 {
		return 1
	}
	return ratio
}

// Tick counts dt down from the current phase. When the phase runs out it
// advances exactly once; time left over past zero is dropped. It reports
// whether a phase advance happened.
func (p *PomodoroEngine) Tick(dt time.Duration) bool {
	if p.state.Paused || dt <= 0 {
		return false
	}
	p.state.Remaining -= dt
	if p.state.Remaining > 0 {
		return false
	}
	p.state.Remaining = 0
	p.advance()
	return true
}

func (p *PomodoroEngine) TogglePause() {
	p.state.Paused = !p.state.Paused
}

// Skip ends the current phase early.
func (p *PomodoroEngine) Skip() {
	p.advance()
}

// ResetPhase restarts the countdown of the current phase. It does not notify.
func (p *PomodoroEngine) ResetPhase() {
	p.state.Remaining = p.PhaseDuration(p.state.Phase)
}

func (p *PomodoroEngine) advance() {
	switch p.state.Phase {
	case PhaseFocus:
		p.state.PomodoroDone++
		p.state.SessionCount++
		if p.state.SessionCount >= p.cfg.LongEvery {
			p.state.Phase = PhaseLongBreak
			p.state.SessionCount = 0
		} else {
			p.state.Phase = PhaseShortBreak
		}
	case PhaseShortBreak, PhaseLongBreak:
		p.state.Phase = PhaseFocus
	}
	p.state.Remaining = p.PhaseDuration(p.state.Phase)

	if p.onAdvance != nil {
		p.onAdvance(p.state)
	}
}
