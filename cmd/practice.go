package cmd

import (
	"github.com/spf13/cobra"
)

var practiceCmd = &cobra.Command{
	Use:   "practice <question-id>",
	Short: "Mark an interview question as practiced",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, func(e *env) error {
			r, err := e.tracker.MarkQuestionPracticed(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), r, e.tracker.State().TotalXP)
			return nil
		})
	},
}
