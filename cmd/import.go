package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kunalarora/studypath/internal/intake"
)

var importCmd = &cobra.Command{
	Use:   "import <graph.json>",
	Short: "Import a concept graph from a text-analysis payload",
	Long: "Import reads a JSON graph payload (concept and edge candidates produced\n" +
		"by the text-analysis service), validates it, and replaces the stored graph.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read payload: %w", err)
		}
		concepts, edges, err := intake.DecodeGraphPayload(raw)
		if err != nil {
			return err
		}

		eng, st, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := eng.ImportGraph(cmd.Context(), concepts, edges); err != nil {
			return err
		}

		logger.Info("graph imported", "concepts", len(concepts), "edges", len(edges))
		fmt.Printf("Imported %d concepts and %d edges.\n", len(concepts), len(edges))
		return nil
	},
}
