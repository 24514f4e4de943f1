package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Synchronise problem-set progress with the backend",
}

var syncStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show how many deltas are waiting in the outbox",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, func(e *env) error {
			n, err := e.tracker.PendingSync(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d pending\n", n)
			return nil
		})
	},
}

var syncFlushCmd = &cobra.Command{
	Use:   "flush",
	Short: "Deliver queued deltas",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, func(e *env) error {
			n, err := e.tracker.FlushSync(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Delivered %d\n", n)
			return nil
		})
	},
}

var syncPullCmd = &cobra.Command{
	Use:   "pull [set...]",
	Short: "Replace local problem lists with the server's",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, func(e *env) error {
			sets := args
			if len(sets) == 0 {
				sets = e.tracker.Content().Names()
			}
			for _, set := range sets {
				completed, err := e.tracker.PullSync(cmd.Context(), set)
				if err != nil {
					return fmt.Errorf("pull %s: %w", set, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d completed\n", set, len(completed))
			}
			return nil
		})
	},
}

func init() {
	syncCmd.AddCommand(syncStatusCmd)
	syncCmd.AddCommand(syncFlushCmd)
	syncCmd.AddCommand(syncPullCmd)
}
