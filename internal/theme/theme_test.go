package theme

import "testing"

func TestParse(t *testing.T) {
	cases := map[string]Theme{
		"dracula":        Dracula,
		"Solarized-Dark": SolarizedDark,
		" gruvbox-dark ": GruvboxDark,
	}
	for in, want := range cases {
		got, err := Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", in, err)
		}
		if got != want {
			t.Errorf("Parse(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParse_Unknown(t *testing.T) {
	if _, err := Parse("monokai"); err == nil {
		t.Fatal("expected error for unknown theme")
	}
}

func TestPalette_FallsBackToDefault(t *testing.T) {
	if Theme("nope").Palette() != Default.Palette() {
		t.Error("unknown theme should render with the default palette")
	}
	if GruvboxDark.Palette().Accent != "#fabd2f" {
		t.Errorf("unexpected gruvbox accent %q", GruvboxDark.Palette().Accent)
	}
}
