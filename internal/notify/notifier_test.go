package notify

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jorbush/rusty-pomo/internal/core"
)

/*********** fakes ***********/

type recordingNotifier struct {
	got []Notification
	err error
}

func (r *recordingNotifier) Notify(_ context.Context, n Notification) error {
	r.got = append(r.got, n)
	return r.err
}

// hangingNotifier blocks until released, ignoring ctx like a stuck OS call.
type hangingNotifier struct {
	release chan struct{}
}

func (h hangingNotifier) Notify(context.Context, Notification) error {
	<-h.release
	return nil
}

func settings() Settings {
	return Settings{
		AppName:  "Rusty Pomo",
		Enabled:  true,
		Duration: 10 * time.Second,
	}
}

/*********** tests ***********/

func TestMessage_PerPhase(t *testing.T) {
	d := NewDispatcher(settings(), &recordingNotifier{})

	cases := []struct {
		phase core.Phase
		title string
		body  string
	}{
		{core.PhaseFocus, "Rusty Pomo · Focus", "Let’s get to work."},
		{core.PhaseShortBreak, "Rusty Pomo · Short Break", "Time for a quick breather."},
		{core.PhaseLongBreak, "Rusty Pomo · Long Break", "Enjoy a longer rest."},
	}
	for _, c := range cases {
		n := d.Message(c.phase)
		if n.Title != c.title {
			t.Errorf("%v: title %q, want %q", c.phase, n.Title, c.title)
		}
		if n.Body != c.body {
			t.Errorf("%v: body %q, want %q", c.phase, n.Body, c.body)
		}
		if n.Timeout != 10*time.Second {
			t.Errorf("%v: timeout %v, want 10s", c.phase, n.Timeout)
		}
	}
}

func TestMessage_Sound(t *testing.T) {
	d := NewDispatcher(settings(), &recordingNotifier{})
	if got := d.Message(core.PhaseFocus).Sound; got != "" {
		t.Errorf("unconfigured sound should stay empty, got %q", got)
	}

	s := settings()
	s.Sound = "Submarine"
	d = NewDispatcher(s, &recordingNotifier{})
	if got := d.Message(core.PhaseFocus).Sound; got != "Submarine" {
		t.Errorf("expected configured sound, got %q", got)
	}
}

func TestSoundOrDefault(t *testing.T) {
	if got := soundOrDefault(""); got != "default" {
		t.Errorf("expected default sound, got %q", got)
	}
	if got := soundOrDefault("Ping"); got != "Ping" {
		t.Errorf("expected configured sound, got %q", got)
	}
}

func TestNotifyPhase_SendsToBackend(t *testing.T) {
	rec := &recordingNotifier{}
	d := NewDispatcher(settings(), rec)

	if err := d.NotifyPhase(context.Background(), core.PhaseLongBreak); err != nil {
		t.Fatalf("NotifyPhase failed: %v", err)
	}
	if len(rec.got) != 1 {
		t.Fatalf("expected 1 backend call, got %d", len(rec.got))
	}
	if !strings.HasSuffix(rec.got[0].Title, "Long Break") {
		t.Errorf("unexpected title %q", rec.got[0].Title)
	}
}

func TestNotifyPhase_DisabledNeverCallsBackend(t *testing.T) {
	rec := &recordingNotifier{}
	s := settings()
	s.Enabled = false
	d := NewDispatcher(s, rec)

	if d.Enabled() {
		t.Fatal("dispatcher should report disabled")
	}
	for _, p := range []core.Phase{core.PhaseFocus, core.PhaseShortBreak, core.PhaseLongBreak, core.PhaseFocus} {
		if err := d.NotifyPhase(context.Background(), p); err != nil {
			t.Fatalf("disabled dispatch returned error: %v", err)
		}
	}
	if len(rec.got) != 0 {
		t.Fatalf("expected zero backend calls, got %d", len(rec.got))
	}
}

func TestNotifyPhase_PropagatesBackendError(t *testing.T) {
	boom := errors.New("no notification daemon")
	d := NewDispatcher(settings(), &recordingNotifier{err: boom})

	if err := d.NotifyPhase(context.Background(), core.PhaseFocus); !errors.Is(err, boom) {
		t.Fatalf("expected backend error, got %v", err)
	}
}

func TestNotifyPhase_BoundedByTimeout(t *testing.T) {
	h := hangingNotifier{release: make(chan struct{})}
	defer close(h.release)

	d := NewDispatcher(settings(), h)
	d.timeout = 20 * time.Millisecond

	start := time.Now()
	err := d.NotifyPhase(context.Background(), core.PhaseFocus)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("dispatch took %v, timeout not applied", elapsed)
	}
}

func TestNew_UsesPlatformBackend(t *testing.T) {
	d := New(settings())
	if d.backend == nil {
		t.Fatal("expected a platform backend")
	}
}
