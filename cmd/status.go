package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/prepquest/internal/ui/components"
)

var statusCmd = &cobra.Command{
	Use:     "status",
	Aliases: []string{"stats"},
	Short:   "Show level, streak and study statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStatus(cmd)
	},
}

func runStatus(cmd *cobra.Command) error {
	return withTracker(cmd, func(e *env) error {
		w := cmd.OutOrStdout()
		s := e.tracker.Stats()

		fmt.Fprintf(w, "Level %d, %s\n", s.Level, s.Title)
		pct := 0.0
		if s.XPLevelSpan > 0 {
			pct = float64(s.XPIntoLevel) / float64(s.XPLevelSpan)
		}
		fmt.Fprintln(w, components.NewProgressBar(fmt.Sprintf("%d XP", s.TotalXP), pct, true, 50).View())
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Streak:     %d days (best %d)\n", s.CurrentStreak, s.LongestStreak)
		fmt.Fprintf(w, "Hours:      %.1f\n", s.TotalHours)
		fmt.Fprintf(w, "Quests:     %d open, %d done (%d tasks completed)\n", s.QuestsOpen, s.QuestsDone, s.TasksCompleted)
		fmt.Fprintf(w, "Topics:     %d completed\n", s.TopicsCompleted)
		fmt.Fprintf(w, "Focus:      %d minutes over %d pomodoros\n", s.FocusMinutes, s.PomodorosDone)
		fmt.Fprintf(w, "Practiced:  %d questions\n", s.QuestionsPracticed)
		fmt.Fprintf(w, "Badges:     %d / %d\n", s.BadgesUnlocked, s.BadgesTotal)

		if g := s.Goal; g != nil {
			fmt.Fprintf(w, "\nWeek of %s", g.WeekStart)
			if g.Achieved {
				fmt.Fprint(w, " (achieved)")
			}
			fmt.Fprintln(w)
			fmt.Fprintln(w, components.NewProgressBar("Problems", g.Problems, true, 50).View())
			fmt.Fprintln(w, components.NewProgressBar("Hours   ", g.Hours, true, 50).View())
			fmt.Fprintln(w, components.NewProgressBar("Topics  ", g.Topics, true, 50).View())
		}

		if len(s.RecentActivity) > 0 {
			fmt.Fprintln(w, "\nLast 7 days")
			for _, d := range s.RecentActivity {
				fmt.Fprintf(w, "  %s  %3d XP  %d tasks\n", d.Date, d.XPEarned, d.TasksCompleted)
			}
		}

		if st := e.tracker.State(); st.LevelUpPending {
			fmt.Fprintf(w, "\nYou reached level %d! Run `prepquest xp ack` to dismiss.\n", s.Level)
		}
		return nil
	})
}
