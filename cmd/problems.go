package cmd

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
)

var problemsCmd = &cobra.Command{
	Use:   "problems",
	Short: "Work through problem sets",
}

var problemsListCmd = &cobra.Command{
	Use:   "list [set]",
	Short: "List problem sets, or the items of one set",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, func(e *env) error {
			w := cmd.OutOrStdout()

			if len(args) == 0 {
				fmt.Fprintf(w, "%-18s  %-28s  %9s  %11s\n", "Set", "Title", "Done", "XP")
				rule(w, 74)
				for _, name := range e.tracker.Content().Names() {
					p, err := e.tracker.ProblemProgress(name)
					if err != nil {
						return err
					}
					fmt.Fprintf(w, "%-18s  %-28s  %4d/%-4d  %5d/%-5d\n",
						name, truncate(p.Set.Title, 28), len(p.Completed), len(p.Set.Items), p.EarnedXP, p.TotalXP)
				}
				return nil
			}

			p, err := e.tracker.ProblemProgress(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s: %d/%d done, %d/%d XP\n", p.Set.Title, len(p.Completed), len(p.Set.Items), p.EarnedXP, p.TotalXP)
			rule(w, 80)
			for _, it := range p.Set.Items {
				mark := " "
				if slices.Contains(p.Completed, it.ID) {
					mark = "✓"
				}
				fmt.Fprintf(w, "%s %-28s  %-40s  %-6s  %3d XP\n",
					mark, it.ID, truncate(it.Title, 40), it.Difficulty, it.XP)
			}
			return nil
		})
	},
}

var problemsToggleCmd = &cobra.Command{
	Use:   "toggle <set> <item>",
	Short: "Toggle completion of one problem",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, func(e *env) error {
			t, err := e.tracker.ToggleProblem(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if t.Completed {
				fmt.Fprintf(w, "Completed %s/%s\n", t.Set, t.ItemID)
			} else {
				fmt.Fprintf(w, "Reopened %s/%s\n", t.Set, t.ItemID)
			}
			printResult(w, t.Result, e.tracker.State().TotalXP)
			return nil
		})
	},
}

func init() {
	problemsCmd.AddCommand(problemsListCmd)
	problemsCmd.AddCommand(problemsToggleCmd)
}
