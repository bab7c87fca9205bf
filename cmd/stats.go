package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kunalarora/studypath/internal/pathplan"
	"github.com/kunalarora/studypath/internal/weakness"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize the graph and a user's progress",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		user, _ := cmd.Flags().GetString("user")

		eng, st, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		g := eng.Graph()
		fmt.Printf("Concepts: %d\n", g.Len())
		fmt.Printf("Edges:    %d\n", len(g.Edges()))

		levels := g.TopologicalLevels()
		fmt.Printf("Levels:   %d\n", len(levels))
		for i, level := range levels {
			fmt.Printf("  L%d: %s\n", i, strings.Join(level, ", "))
		}

		scores := eng.Scores().CurrentScores(user)
		mastered, weak := 0, 0
		for _, score := range scores {
			switch {
			case score >= pathplan.MasteryThreshold:
				mastered++
			case score < weakness.WeakThreshold:
				weak++
			}
		}
		fmt.Printf("\nUser %s: %d assessed, %d mastered, %d weak\n", user, len(scores), mastered, weak)
		return nil
	},
}

func init() {
	statsCmd.Flags().String("user", "default", "User whose progress to summarize")
}
