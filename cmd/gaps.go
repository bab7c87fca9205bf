package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var gapsCmd = &cobra.Command{
	Use:   "gaps <concept-id>",
	Short: "Trace a weak concept back to its root prerequisite gaps",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		user, _ := cmd.Flags().GetString("user")

		eng, st, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		gaps, err := eng.RootGaps(user, args[0])
		if err != nil {
			return err
		}
		if len(gaps) == 0 {
			fmt.Printf("No root gaps found beneath %s.\n", args[0])
			return nil
		}

		fmt.Printf("Root gaps beneath %s, highest priority first:\n", args[0])
		for i, g := range gaps {
			fmt.Printf("%2d. %-24s score %.2f  priority %.3f  blocks %d concept(s)\n",
				i+1, g.ConceptID, g.UnderstandingScore, g.Priority, len(g.AffectedConcepts))
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose && len(g.AffectedConcepts) > 0 {
				fmt.Printf("    affects: %s\n", strings.Join(g.AffectedConcepts, ", "))
			}
		}
		return nil
	},
}

func init() {
	gapsCmd.Flags().String("user", "default", "User whose scores to analyze")
}
