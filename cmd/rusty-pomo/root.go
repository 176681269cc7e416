package main

import (
	"github.com/spf13/cobra"

	"github.com/jorbush/rusty-pomo/internal/config"
	"github.com/jorbush/rusty-pomo/internal/version"
)

type runFunc func(cfg *config.Config, logPath string) error

func newRootCmd(run runFunc) *cobra.Command {
	var (
		configPath string
		logPath    string
	)

	rootCmd := &cobra.Command{
		Use:   "rusty-pomo",
		Short: "Minimalist, visually pleasing Pomodoro timer for the terminal",
		Long: `rusty-pomo cycles through focus and break intervals with a live countdown.

A long break replaces the short one after every --long-every focus sessions.
Values can also come from $XDG_CONFIG_HOME/rusty-pomo/config.yaml (or --config)
and RUSTY_POMO_* environment variables; flags win.

Keys:
  space  pause/resume
  n      skip to the next phase
  r      restart the current phase
  q/esc  quit`,
		Version:       version.Get(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags(), configPath)
			if err != nil {
				return err
			}
			return run(cfg, logPath)
		},
	}

	config.RegisterFlags(rootCmd.Flags())
	rootCmd.Flags().StringVar(&configPath, "config", "", "Config file (default "+config.UserConfigDir()+"/config.yaml)")
	rootCmd.Flags().StringVar(&logPath, "log-file", "", "Write debug logs to this file")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newThemesCmd())
	return rootCmd
}
