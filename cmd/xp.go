package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var xpCmd = &cobra.Command{
	Use:   "xp",
	Short: "Award XP or acknowledge a level up",
}

var xpAddCmd = &cobra.Command{
	Use:   "add <amount>",
	Short: "Award XP directly",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("amount must be an integer: %w", err)
		}
		return withTracker(cmd, func(e *env) error {
			r, err := e.tracker.AddXP(cmd.Context(), amount)
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), r, e.tracker.State().TotalXP)
			return nil
		})
	},
}

var xpAckCmd = &cobra.Command{
	Use:   "ack",
	Short: "Dismiss a pending level-up notice",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, func(e *env) error {
			r, err := e.tracker.AcknowledgeLevelUp(cmd.Context())
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), r, e.tracker.State().TotalXP)
			return nil
		})
	},
}

func init() {
	xpCmd.AddCommand(xpAddCmd)
	xpCmd.AddCommand(xpAckCmd)
}
