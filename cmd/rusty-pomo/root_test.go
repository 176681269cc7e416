package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/jorbush/rusty-pomo/internal/config"
	"github.com/jorbush/rusty-pomo/internal/theme"
)

// execute runs the root command with args and returns the config the timer
// would have been started with, or nil if it never got that far.
func execute(t *testing.T, args ...string) (*config.Config, string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var got *config.Config
	cmd := newRootCmd(func(cfg *config.Config, _ string) error {
		got = cfg
		return nil
	})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return got, out.String(), err
}

func TestRoot_Defaults(t *testing.T) {
	cfg, _, err := execute(t)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if cfg == nil {
		t.Fatal("timer was not started")
	}
	if *cfg != *config.Default() {
		t.Errorf("expected defaults, got %+v", *cfg)
	}
}

func TestRoot_Flags(t *testing.T) {
	cfg, _, err := execute(t, "--focus", "50", "--long-every=2", "--theme", "solarized-dark", "--notifications=false")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if cfg.FocusMinutes != 50 || cfg.LongEvery != 2 || cfg.Theme != theme.SolarizedDark || cfg.Notifications {
		t.Errorf("flags not applied: %+v", *cfg)
	}
}

func TestRoot_InvalidConfigNeverStartsTimer(t *testing.T) {
	cases := [][]string{
		{"--focus", "0"},
		{"--long-every", "0"},
		{"--theme", "neon"},
	}
	for _, args := range cases {
		cfg, _, err := execute(t, args...)
		if !errors.Is(err, config.ErrInvalid) {
			t.Errorf("%v: expected ErrInvalid, got %v", args, err)
		}
		if cfg != nil {
			t.Errorf("%v: timer started with invalid config", args)
		}
	}
}

func TestRoot_UnparsableFlag(t *testing.T) {
	cfg, _, err := execute(t, "--short", "five")
	if err == nil {
		t.Fatal("expected a flag parse error")
	}
	if cfg != nil {
		t.Fatal("timer started despite a bad flag")
	}
}

func TestVersionCmd(t *testing.T) {
	_, out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.HasPrefix(out, "rusty-pomo version ") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestThemesCmd(t *testing.T) {
	_, out, err := execute(t, "themes")
	if err != nil {
		t.Fatalf("themes failed: %v", err)
	}
	for _, name := range theme.Names() {
		if !strings.Contains(out, name) {
			t.Errorf("themes output missing %q:\n%s", name, out)
		}
	}
	if !strings.Contains(out, "#bd93f9") || !strings.Contains(out, "(default)") {
		t.Errorf("expected dracula colors marked as default:\n%s", out)
	}
}
