package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var hoursCmd = &cobra.Command{
	Use:   "hours <hours>",
	Short: "Set today's study hours",
	Long:  "Set today's study hours. The value replaces what was recorded for today.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hours, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("hours must be a number: %w", err)
		}
		return withTracker(cmd, func(e *env) error {
			r, err := e.tracker.UpdateHoursStudied(cmd.Context(), hours)
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), r, e.tracker.State().TotalXP)
			return nil
		})
	},
}
