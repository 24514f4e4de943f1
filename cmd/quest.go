package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/prepquest/internal/progress"
)

var questCmd = &cobra.Command{
	Use:   "quest",
	Short: "Manage daily quests",
}

var questAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a quest",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")
		xp, _ := cmd.Flags().GetInt("xp")

		return withTracker(cmd, func(e *env) error {
			q, r, err := e.tracker.AddQuest(cmd.Context(), progress.NewQuest{
				Title:    args[0],
				Category: progress.QuestCategory(category),
				XP:       xp,
			})
			if err != nil {
				return err
			}
			if !r.Applied() {
				printResult(cmd.OutOrStdout(), r, 0)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added quest %s (%s, %d XP)\n", q.ID, q.Category, q.XP)
			return nil
		})
	},
}

var questListCmd = &cobra.Command{
	Use:   "list",
	Short: "List quests",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")
		if category != "" && !progress.QuestCategory(category).Valid() {
			return fmt.Errorf("unknown category %q (want %s)", category, joinNames(progress.AllQuestCategories()))
		}

		return withTracker(cmd, func(e *env) error {
			w := cmd.OutOrStdout()
			quests := e.tracker.Quests(progress.QuestCategory(category))
			if len(quests) == 0 {
				fmt.Fprintln(w, "No quests yet.")
				return nil
			}

			fmt.Fprintf(w, "%-36s  %-4s  %-9s  %5s  %s\n", "ID", "Done", "Category", "XP", "Title")
			rule(w, 90)
			for _, q := range quests {
				done := " "
				if q.Completed {
					done = "✓"
				}
				fmt.Fprintf(w, "%-36s  %-4s  %-9s  %5d  %s\n", q.ID, done, q.Category, q.XP, truncate(q.Title, 40))
			}
			return nil
		})
	},
}

var questDoneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Complete a quest",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, func(e *env) error {
			r, err := e.tracker.CompleteTask(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), r, e.tracker.State().TotalXP)
			return nil
		})
	},
}

var questRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a quest",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, func(e *env) error {
			r, err := e.tracker.RemoveQuest(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), r, e.tracker.State().TotalXP)
			return nil
		})
	},
}

func init() {
	questAddCmd.Flags().String("category", string(progress.QuestCoding), "Quest category ("+joinNames(progress.AllQuestCategories())+")")
	questAddCmd.Flags().Int("xp", 50, "XP awarded on completion")
	questListCmd.Flags().String("category", "", "Filter by category")

	questCmd.AddCommand(questAddCmd)
	questCmd.AddCommand(questListCmd)
	questCmd.AddCommand(questDoneCmd)
	questCmd.AddCommand(questRmCmd)
}
