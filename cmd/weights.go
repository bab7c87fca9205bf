package cmd

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/kunalarora/studypath/internal/intake"
)

var weightsCmd = &cobra.Command{
	Use:   "weights",
	Short: "Inspect and calibrate exam weights",
}

var weightsRecalcCmd = &cobra.Command{
	Use:   "recalc <papers-file>",
	Short: "Recalculate weights from an exam-paper archive",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read exam papers: %w", err)
		}
		papers, err := intake.DecodeExamPapers(raw)
		if err != nil {
			return err
		}

		eng, st, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		year, _ := cmd.Flags().GetInt("year")
		weights, err := eng.RecalculateWeights(cmd.Context(), papers, year)
		if err != nil {
			return err
		}
		logger.Info("recalculated weights", "papers", len(papers), "concepts", len(weights))
		printWeights(eng.Weights().RankedIDs(), weights, eng.Weights().Overrides())
		return nil
	},
}

var weightsSetCmd = &cobra.Command{
	Use:   "set <concept-id> <weight>",
	Short: "Pin a manual weight override for a concept",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		weight, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("parse weight %q: %w", args[1], err)
		}

		eng, st, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := eng.SetWeightOverride(cmd.Context(), args[0], weight); err != nil {
			return err
		}
		fmt.Printf("Override set: %s = %.2f\n", args[0], weight)
		return nil
	},
}

var weightsClearCmd = &cobra.Command{
	Use:   "clear <concept-id>",
	Short: "Clear a manual weight override",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, st, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := eng.ClearWeightOverride(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("Override cleared: %s\n", args[0])
		return nil
	},
}

var weightsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current weights, highest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, st, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		cal := eng.Weights()
		printWeights(cal.RankedIDs(), cal.Weights(), cal.Overrides())
		return nil
	},
}

func printWeights(ranked []string, weights, overrides map[string]float64) {
	if len(ranked) == 0 {
		fmt.Println("No weights calibrated yet. Run `studypath weights recalc` first.")
		return
	}
	for _, id := range ranked {
		marker := ""
		if _, ok := overrides[id]; ok {
			marker = "  (override)"
		}
		fmt.Printf("  %-24s %.3f%s\n", id, weights[id], marker)
	}
}

func init() {
	weightsRecalcCmd.Flags().Int("year", time.Now().Year(), "Reference year for recency decay")
	weightsCmd.AddCommand(weightsRecalcCmd, weightsSetCmd, weightsClearCmd, weightsShowCmd)
}
