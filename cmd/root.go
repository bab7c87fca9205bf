package cmd

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/kunalarora/studypath/internal/engine"
	"github.com/kunalarora/studypath/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "studypath",
	Short: "Prerequisite-aware study planner",
	Long: "Studypath maintains a prerequisite graph over learning concepts, tracks\n" +
		"understanding scores per concept, finds the root causes of weakness, and\n" +
		"compiles a prioritized, dependency-respecting study plan.",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if v, _ := cmd.Flags().GetBool("verbose"); v {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

// logger is the CLI-wide logger. Core packages return errors; only the
// command layer logs.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
})

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides STUDYPATH_DB env var)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(weightsCmd)
	rootCmd.AddCommand(gapsCmd)
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then STUDYPATH_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openEngine opens the store and loads a fully wired engine from it.
// The returned store must be closed by the caller.
func openEngine(cmd *cobra.Command) (*engine.Engine, *store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("opening store", "path", dbPath)

	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, err
	}
	eng, err := engine.Open(cmd.Context(), st)
	if err != nil {
		st.Close()
		return nil, nil, err
	}
	return eng, st, nil
}
