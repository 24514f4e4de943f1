package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/prepquest/internal/roadmap"
)

var roadmapCmd = &cobra.Command{
	Use:   "roadmap",
	Short: "Generate and follow a study roadmap",
}

var roadmapGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a new roadmap, replacing the current one",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		roleFlag, _ := cmd.Flags().GetString("role")
		tfFlag, _ := cmd.Flags().GetString("timeframe")
		companyFlag, _ := cmd.Flags().GetString("company")

		role, err := roadmap.ParseRole(roleFlag)
		if err != nil {
			return err
		}
		tf, err := roadmap.ParseTimeframe(tfFlag)
		if err != nil {
			return err
		}
		company, err := roadmap.ParseCompanyType(companyFlag)
		if err != nil {
			return err
		}

		return withTracker(cmd, func(e *env) error {
			r, err := e.tracker.GenerateRoadmap(cmd.Context(), role, tf, company)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Generated a %d-day %s roadmap for %s companies.\n",
				r.TotalDays, r.Role.DisplayName(), r.CompanyType)
			return nil
		})
	},
}

var roadmapShowCmd = &cobra.Command{
	Use:   "show [day]",
	Short: "Show the roadmap, or one day in detail",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, func(e *env) error {
			st := e.tracker.Roadmap()
			if st.Roadmap == nil {
				return fmt.Errorf("%w: run `prepquest roadmap generate`", roadmap.ErrNoRoadmap)
			}
			w := cmd.OutOrStdout()

			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("day must be an integer: %w", err)
				}
				d, ok := st.Roadmap.Day(n)
				if !ok {
					return fmt.Errorf("%w: %d", roadmap.ErrDayOutOfRange, n)
				}
				printDay(w, d, st.IsCompleted(n))
				return nil
			}

			p := st.Progress()
			fmt.Fprintf(w, "%s, %s, %s: %d/%d days (%.0f%%), %d/%d XP\n",
				st.Roadmap.Role.DisplayName(), st.Roadmap.Timeframe, st.Roadmap.CompanyType,
				p.CompletedCount, p.TotalDays, p.ProgressPercent, p.EarnedXP, p.TotalXP)
			rule(w, 80)

			limit, _ := cmd.Flags().GetInt("limit")
			from := st.NextDay()
			if all, _ := cmd.Flags().GetBool("all"); all || from == 0 {
				from, limit = 1, st.Roadmap.TotalDays
			}
			for n := from; n < from+limit && n <= st.Roadmap.TotalDays; n++ {
				d, _ := st.Roadmap.Day(n)
				mark := " "
				if st.IsCompleted(n) {
					mark = "✓"
				}
				fmt.Fprintf(w, "%s %3d  wk%-2d  %-12s  %-40s  %3d XP\n",
					mark, d.Day, d.Week, d.Phase, truncate(d.Title, 40), d.XP)
			}
			return nil
		})
	},
}

func printDay(w io.Writer, d roadmap.Day, done bool) {
	status := "pending"
	if done {
		status = "completed"
	}
	fmt.Fprintf(w, "Day %d (week %d, month %d, %s): %s [%s]\n", d.Day, d.Week, d.Month, d.Phase, d.Title, status)
	fmt.Fprintf(w, "Category: %s, %d XP\n", d.Category, d.XP)
	if len(d.Topics) > 0 {
		fmt.Fprintf(w, "Topics: %s\n", strings.Join(d.Topics, ", "))
	}
	for _, r := range d.Resources {
		fmt.Fprintf(w, "  - %s (%s) %s\n", r.Name, r.Type, r.Link)
	}
}

var roadmapDoneCmd = &cobra.Command{
	Use:   "done <day>",
	Short: "Complete a roadmap day and earn its XP",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("day must be an integer: %w", err)
		}
		return withTracker(cmd, func(e *env) error {
			_, r, err := e.tracker.CompleteRoadmapDay(cmd.Context(), n)
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), r, e.tracker.State().TotalXP)
			return nil
		})
	},
}

var roadmapUndoCmd = &cobra.Command{
	Use:   "undo <day>",
	Short: "Mark a roadmap day as not done (XP is kept)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("day must be an integer: %w", err)
		}
		return withTracker(cmd, func(e *env) error {
			changed, err := e.tracker.UncompleteRoadmapDay(cmd.Context(), n)
			if err != nil {
				return err
			}
			if !changed {
				fmt.Fprintf(cmd.OutOrStdout(), "Day %d was not completed.\n", n)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Day %d marked as not done.\n", n)
			return nil
		})
	},
}

func init() {
	roadmapGenerateCmd.Flags().String("role", string(roadmap.RoleSDE), "Target role (full-stack, frontend, backend, sde)")
	roadmapGenerateCmd.Flags().String("timeframe", string(roadmap.ThreeMonths), "Timeframe (3_months, 6_months)")
	roadmapGenerateCmd.Flags().String("company", string(roadmap.CompanyMixed), "Company type (FAANG, Startups, Service_Based, Mixed)")
	roadmapShowCmd.Flags().Int("limit", 14, "Days to list starting at the next pending day")
	roadmapShowCmd.Flags().Bool("all", false, "List every day")

	roadmapCmd.AddCommand(roadmapGenerateCmd)
	roadmapCmd.AddCommand(roadmapShowCmd)
	roadmapCmd.AddCommand(roadmapDoneCmd)
	roadmapCmd.AddCommand(roadmapUndoCmd)
}
