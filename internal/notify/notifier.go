// Package notify sends desktop notifications when the timer changes phase.
// The OS-facing backend is picked at build time; see the notifier_*.go files.
package notify

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/jorbush/rusty-pomo/internal/core"
)

// DefaultTimeout bounds a single dispatch so a stuck notification service
// cannot stall the timer.
const DefaultTimeout = 3 * time.Second

const defaultSound = "default"

// Notification is one request to the OS notification service. Backends skip
// the optional fields their platform cannot honor.
type Notification struct {
	Title string
	Body  string
	// Sound is a platform specific sound name, empty when none was configured.
	Sound string
	// Timeout is how long the notification stays on screen. Zero leaves it
	// until dismissed where the platform supports that.
	Timeout time.Duration
	// Icon is a path to an image file, empty for the platform default.
	Icon string
}

type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// Settings is the notification part of the startup configuration.
type Settings struct {
	AppName  string
	Enabled  bool
	Sound    string
	Duration time.Duration
	// BundleID attributes notifications to an installed macOS application.
	BundleID string
}

// Dispatcher turns phase changes into notifications for a backend.
type Dispatcher struct {
	settings Settings
	backend  Notifier
	icon     string
	timeout  time.Duration
}

// New returns a Dispatcher using the backend for the current platform.
func New(s Settings) *Dispatcher {
	return NewDispatcher(s, newPlatformNotifier(s))
}

func NewDispatcher(s Settings, backend Notifier) *Dispatcher {
	return &Dispatcher{
		settings: s,
		backend:  backend,
		icon:     iconPath(),
		timeout:  DefaultTimeout,
	}
}

// Enabled reports whether phase changes produce notifications at all.
func (d *Dispatcher) Enabled() bool {
	return d.settings.Enabled
}

// Message builds the notification announcing the start of phase.
func (d *Dispatcher) Message(phase core.Phase) Notification {
	var body string
	switch phase {
	case core.PhaseFocus:
		body = "Let’s get to work."
	case core.PhaseShortBreak:
		body = "Time for a quick breather."
	case core.PhaseLongBreak:
		body = "Enjoy a longer rest."
	}

	return Notification{
		Title:   d.settings.AppName + " · " + phase.String(),
		Body:    body,
		Sound:   d.settings.Sound,
		Timeout: d.settings.Duration,
		Icon:    d.icon,
	}
}

// NotifyPhase announces phase. It returns nil without touching the backend
// when notifications are disabled, and gives up once the dispatch timeout
// passes.
func (d *Dispatcher) NotifyPhase(ctx context.Context, phase core.Phase) error {
	if !d.settings.Enabled {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	n := d.Message(phase)
	return runWithContext(ctx, func() error {
		return d.backend.Notify(ctx, n)
	})
}

// soundOrDefault returns the sound backends with a system default should
// play when none was configured.
func soundOrDefault(sound string) string {
	if sound == "" {
		return defaultSound
	}
	return sound
}

// runWithContext runs fn and returns its error, or ctx's error if ctx ends
// first. fn keeps running in the background in that case.
func runWithContext(ctx context.Context, fn func() error) error {
	done := make(chan error, 1)
	go func() {
		done <- fn()
	}()
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// iconPath returns the bundled notification icon when one is installed next
// to the binary or in the working directory.
func iconPath() string {
	rel := filepath.Join("docs", "assets", "rusty_pomo.png")
	candidates := []string{rel}
	if exe, err := os.Executable(); err == nil {
		candidates = append([]string{filepath.Join(filepath.Dir(exe), rel)}, candidates...)
	}
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			if abs, err := filepath.Abs(c); err == nil {
				return abs
			}
			return c
		}
	}
	return ""
}
