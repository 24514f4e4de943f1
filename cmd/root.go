package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/abhisek/prepquest/internal/config"
	"github.com/abhisek/prepquest/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "prepquest",
	Short: "Gamified interview prep tracker",
	Long: "PrepQuest tracks interview preparation as a game: XP and levels, daily streaks,\n" +
		"quests, badges, weekly goals, a generated study roadmap and problem sets.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStatus(cmd)
	},
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PREPQUEST_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to TOML config file (default $XDG_CONFIG_HOME/prepquest/config.toml)")

	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(xpCmd)
	rootCmd.AddCommand(questCmd)
	rootCmd.AddCommand(topicCmd)
	rootCmd.AddCommand(hoursCmd)
	rootCmd.AddCommand(pomodoroCmd)
	rootCmd.AddCommand(noteCmd)
	rootCmd.AddCommand(goalCmd)
	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(roadmapCmd)
	rootCmd.AddCommand(problemsCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(badgesCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads --config, falling back to the default path.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultConfigPath()
	}
	return config.Load(path)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the config file or PREPQUEST_DB, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}
