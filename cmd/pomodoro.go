package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/prepquest/internal/pomodoro"
	"github.com/abhisek/prepquest/internal/ui/layout"
)

var pomodoroCmd = &cobra.Command{
	Use:   "pomodoro",
	Short: "Run a focus timer",
	Long:  "Run a focus timer. Finishing earns XP per minute; quitting early records an incomplete session.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, func(e *env) error {
			s := e.tracker.Stats()
			cfg := pomodoro.Config{
				DefaultMinutes: e.cfg.Pomodoro.DefaultMinutes,
				XPPerMinute:    e.cfg.Pomodoro.XPPerMinute,
				Header:         layout.HeaderStats{Level: s.Level, XP: s.TotalXP, Streak: s.CurrentStreak},
			}
			if m, _ := cmd.Flags().GetInt("minutes"); m > 0 {
				cfg.DefaultMinutes = m
			}

			session, ok, err := pomodoro.Run(e.tracker, cfg)
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
			w := cmd.OutOrStdout()
			if session.Completed {
				fmt.Fprintf(w, "Focused for %d minutes.\n", session.Duration)
			} else {
				fmt.Fprintln(w, "Session abandoned.")
			}
			printResult(w, session.Result, e.tracker.State().TotalXP)
			return nil
		})
	},
}

func init() {
	pomodoroCmd.Flags().Int("minutes", 0, "Pre-fill the timer length")
}
