package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the concept graph for cycles and unreachable concepts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, st, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := eng.Validate(); err != nil {
			return err
		}
		fmt.Printf("Graph is valid: %d concepts, %d edges.\n", eng.Graph().Len(), len(eng.Graph().Edges()))
		return nil
	},
}
