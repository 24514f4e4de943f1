package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/prepquest/internal/level"
	"github.com/abhisek/prepquest/internal/progress"
)

// printResult reports what a command did.
func printResult(w io.Writer, r progress.Result, totalXP int) {
	if !r.Applied() {
		fmt.Fprintf(w, "Nothing changed: %s\n", r.Reason)
		return
	}
	switch {
	case r.XPDelta > 0:
		fmt.Fprintf(w, "+%d XP (total %d)\n", r.XPDelta, totalXP)
	case r.XPDelta < 0:
		fmt.Fprintf(w, "%d XP (total %d)\n", r.XPDelta, totalXP)
	default:
		fmt.Fprintln(w, "Done.")
	}
	if r.LeveledUp {
		lvl := level.ForXP(totalXP)
		fmt.Fprintf(w, "Level up! You are now level %d, %s.\n", lvl, level.Title(lvl))
	}
	for _, id := range r.NewBadges {
		fmt.Fprintf(w, "Badge unlocked: %s\n", id)
	}
}

// joinNames renders a list of string-like values for flag help.
func joinNames[T ~string](vals []T) string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = string(v)
	}
	return strings.Join(out, ", ")
}

func rule(w io.Writer, n int) {
	fmt.Fprintln(w, strings.Repeat("─", n))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
