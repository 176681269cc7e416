package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"

	"github.com/jorbush/rusty-pomo/internal/theme"
)

func newThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the available color themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printThemes(cmd.OutOrStdout())
		},
	}
}

func printThemes(w io.Writer) error {
	for _, t := range theme.All() {
		p := t.Palette()
		line := fmt.Sprintf("%-16s", t)
		for _, c := range []string{string(p.Background), string(p.Accent), string(p.OK)} {
			s, err := swatch(c)
			if err != nil {
				return fmt.Errorf("theme %s: %w", t, err)
			}
			line += s + " "
		}
		if t == theme.Default {
			line += "(default)"
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// swatch renders a short block in the given hex color. fatih/color drops the
// escape codes when output is not a terminal.
func swatch(hex string) (string, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return "", err
	}
	r, g, b := c.RGB255()
	return color.BgRGB(int(r), int(g), int(b)).Sprint("   ") + " " + hex, nil
}
