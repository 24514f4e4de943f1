package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/prepquest/internal/progress"
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Set and track the weekly goal",
}

var goalSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set this week's goal",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		problems, _ := cmd.Flags().GetInt("problems")
		hours, _ := cmd.Flags().GetFloat64("hours")
		topics, _ := cmd.Flags().GetInt("topics")
		week, _ := cmd.Flags().GetString("week")

		ng := progress.NewGoal{ProblemsTarget: problems, HoursTarget: hours, TopicsTarget: topics}
		if week != "" {
			t, err := time.Parse(time.DateOnly, week)
			if err != nil {
				return fmt.Errorf("--week must be YYYY-MM-DD: %w", err)
			}
			ng.WeekStart = t
		}

		return withTracker(cmd, func(e *env) error {
			g, r, err := e.tracker.SetWeeklyGoal(cmd.Context(), ng)
			if err != nil {
				return err
			}
			if !r.Applied() {
				printResult(cmd.OutOrStdout(), r, 0)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Goal for week of %s: %d problems, %.1f hours, %d topics\n",
				g.WeekStart, g.ProblemsTarget, g.HoursTarget, g.TopicsTarget)
			return nil
		})
	},
}

var goalProgressCmd = &cobra.Command{
	Use:   "progress <problems|hours|topics> <amount>",
	Short: "Add progress to the current goal",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		metric := progress.GoalMetric(args[0])
		if !metric.Valid() {
			return fmt.Errorf("unknown metric %q", args[0])
		}
		amount, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("amount must be a number: %w", err)
		}

		return withTracker(cmd, func(e *env) error {
			r, err := e.tracker.UpdateGoalProgress(cmd.Context(), metric, amount)
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), r, e.tracker.State().TotalXP)
			return showGoal(cmd, e)
		})
	},
}

var goalShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current goal",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, func(e *env) error {
			return showGoal(cmd, e)
		})
	},
}

func showGoal(cmd *cobra.Command, e *env) error {
	w := cmd.OutOrStdout()
	g, ok := e.tracker.CurrentGoal()
	if !ok {
		fmt.Fprintln(w, "No weekly goal set.")
		return nil
	}
	fmt.Fprintf(w, "Week of %s\n", g.WeekStart)
	fmt.Fprintf(w, "  Problems  %d / %d\n", g.ProblemsCompleted, g.ProblemsTarget)
	fmt.Fprintf(w, "  Hours     %.1f / %.1f\n", g.HoursCompleted, g.HoursTarget)
	fmt.Fprintf(w, "  Topics    %d / %d\n", g.TopicsCompleted, g.TopicsTarget)
	if g.Achieved {
		fmt.Fprintln(w, "Achieved!")
	}
	fmt.Fprintf(w, "Goal streak: %d weeks\n", e.tracker.State().GoalStreak)
	return nil
}

func init() {
	goalSetCmd.Flags().Int("problems", 10, "Problems to solve")
	goalSetCmd.Flags().Float64("hours", 10, "Hours to study")
	goalSetCmd.Flags().Int("topics", 5, "Topics to complete")
	goalSetCmd.Flags().String("week", "", "Any date in the target week (default: this week)")

	goalCmd.AddCommand(goalSetCmd)
	goalCmd.AddCommand(goalProgressCmd)
	goalCmd.AddCommand(goalShowCmd)
}
