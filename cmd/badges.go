package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/prepquest/internal/app"
	"github.com/abhisek/prepquest/internal/badges"
)

var badgesCmd = &cobra.Command{
	Use:   "badges",
	Short: "List badges and which are unlocked",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		showLocked, _ := cmd.Flags().GetBool("all")

		return withTracker(cmd, func(e *env) error {
			w := cmd.OutOrStdout()
			groups := make(map[badges.Trigger][]app.BadgeStatus)
			unlocked := 0
			for _, b := range e.tracker.Badges() {
				if b.Unlocked {
					unlocked++
				} else if !showLocked {
					continue
				}
				groups[b.Trigger] = append(groups[b.Trigger], b)
			}
			for _, tr := range badges.AllTriggers() {
				list := groups[tr]
				if len(list) == 0 {
					continue
				}
				fmt.Fprintln(w, tr.DisplayName())
				for _, b := range list {
					mark := "  "
					if b.Unlocked {
						mark = b.Icon
					}
					fmt.Fprintf(w, "  %s  %-20s  %-9s  %s\n", mark, b.Name, b.Rarity.DisplayName(), b.Condition)
				}
			}
			fmt.Fprintf(w, "\n%d unlocked\n", unlocked)
			return nil
		})
	},
}

func init() {
	badgesCmd.Flags().Bool("all", false, "Include locked badges")
}
