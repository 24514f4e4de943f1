package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/prepquest/internal/progress"
)

var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Keep study notes",
}

var noteAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")
		content, _ := cmd.Flags().GetString("content")

		return withTracker(cmd, func(e *env) error {
			n, r, err := e.tracker.AddNote(cmd.Context(), progress.NewNote{
				Title:    args[0],
				Content:  content,
				Category: progress.NoteCategory(category),
			})
			if err != nil {
				return err
			}
			if !r.Applied() {
				printResult(cmd.OutOrStdout(), r, 0)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added note %s\n", n.ID)
			return nil
		})
	},
}

var noteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")
		if category != "" && !progress.NoteCategory(category).Valid() {
			return fmt.Errorf("unknown category %q (want %s)", category, joinNames(progress.AllNoteCategories()))
		}

		return withTracker(cmd, func(e *env) error {
			w := cmd.OutOrStdout()
			notes := e.tracker.Notes(progress.NoteCategory(category))
			if len(notes) == 0 {
				fmt.Fprintln(w, "No notes yet.")
				return nil
			}
			for _, n := range notes {
				fmt.Fprintf(w, "%s  [%s]  %s  (updated %s)\n",
					n.ID, n.Category, n.Title, n.UpdatedAt.Local().Format("2006-01-02 15:04"))
				if n.Content != "" {
					fmt.Fprintf(w, "    %s\n", truncate(n.Content, 76))
				}
			}
			return nil
		})
	},
}

var noteEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a note's title, content or category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var u progress.NoteUpdate
		if cmd.Flags().Changed("title") {
			v, _ := cmd.Flags().GetString("title")
			u.Title = &v
		}
		if cmd.Flags().Changed("content") {
			v, _ := cmd.Flags().GetString("content")
			u.Content = &v
		}
		if cmd.Flags().Changed("category") {
			v, _ := cmd.Flags().GetString("category")
			c := progress.NoteCategory(v)
			u.Category = &c
		}

		return withTracker(cmd, func(e *env) error {
			_, r, err := e.tracker.UpdateNote(cmd.Context(), args[0], u)
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), r, 0)
			return nil
		})
	},
}

var noteRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, func(e *env) error {
			r, err := e.tracker.DeleteNote(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), r, 0)
			return nil
		})
	},
}

func init() {
	noteAddCmd.Flags().String("category", string(progress.NoteGeneral), "Category ("+joinNames(progress.AllNoteCategories())+")")
	noteAddCmd.Flags().String("content", "", "Note body")
	noteListCmd.Flags().String("category", "", "Filter by category")
	noteEditCmd.Flags().String("title", "", "New title")
	noteEditCmd.Flags().String("content", "", "New content")
	noteEditCmd.Flags().String("category", "", "New category")

	noteCmd.AddCommand(noteAddCmd)
	noteCmd.AddCommand(noteListCmd)
	noteCmd.AddCommand(noteEditCmd)
	noteCmd.AddCommand(noteRmCmd)
}
