package cmd

import (
	"github.com/spf13/cobra"
)

var topicCmd = &cobra.Command{
	Use:   "topic",
	Short: "Mark study topics complete or incomplete",
}

var topicDoneCmd = &cobra.Command{
	Use:   "done <topic-id>",
	Short: "Complete a topic and earn its XP",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		xp, _ := cmd.Flags().GetInt("xp")
		return withTracker(cmd, func(e *env) error {
			r, err := e.tracker.CompleteTopic(cmd.Context(), args[0], xp)
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), r, e.tracker.State().TotalXP)
			return nil
		})
	},
}

var topicUndoCmd = &cobra.Command{
	Use:   "undo <topic-id>",
	Short: "Un-complete a topic and give back its XP",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		xp, _ := cmd.Flags().GetInt("xp")
		return withTracker(cmd, func(e *env) error {
			r, err := e.tracker.UncompleteTopic(cmd.Context(), args[0], xp)
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), r, e.tracker.State().TotalXP)
			return nil
		})
	},
}

func init() {
	topicDoneCmd.Flags().Int("xp", 30, "XP for the topic")
	topicUndoCmd.Flags().Int("xp", 30, "XP to remove")

	topicCmd.AddCommand(topicDoneCmd)
	topicCmd.AddCommand(topicUndoCmd)
}
