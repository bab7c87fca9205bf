package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kunalarora/studypath/internal/intake"
	"github.com/kunalarora/studypath/internal/scoring"
)

var recordCmd = &cobra.Command{
	Use:   "record <concept-id>",
	Short: "Record one assessment session for a concept",
	Long: "Record appends a new understanding record computed from the session's\n" +
		"signals. Signals come either from flags or from an assessment-service\n" +
		"payload file (--assessment), which also carries misconceptions.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		conceptID := args[0]
		user, _ := cmd.Flags().GetString("user")

		var (
			completeness, coherence, accuracy float64
			misconceptions                    []scoring.Misconception
		)
		if file, _ := cmd.Flags().GetString("assessment"); file != "" {
			raw, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("read assessment payload: %w", err)
			}
			payload, err := intake.DecodeAssessment(raw)
			if err != nil {
				return err
			}
			completeness = payload.Completeness
			coherence = payload.Coherence
			accuracy = payload.QuestionAccuracy
			misconceptions = payload.Misconceptions
		} else {
			completeness, _ = cmd.Flags().GetFloat64("completeness")
			coherence, _ = cmd.Flags().GetFloat64("coherence")
			accuracy, _ = cmd.Flags().GetFloat64("accuracy")
			if file, _ := cmd.Flags().GetString("misconceptions"); file != "" {
				raw, err := os.ReadFile(file)
				if err != nil {
					return fmt.Errorf("read misconceptions payload: %w", err)
				}
				misconceptions, err = intake.DecodeMisconceptions(raw)
				if err != nil {
					return err
				}
			}
		}

		eng, st, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		rec, err := eng.RecordSession(cmd.Context(), user, conceptID, completeness, coherence, accuracy, misconceptions)
		if err != nil {
			return err
		}

		fmt.Printf("Recorded session for %s: understanding %.2f\n", conceptID, rec.Score)
		if len(rec.PrerequisiteGaps) > 0 {
			fmt.Printf("Prerequisite gaps: %v\n", rec.PrerequisiteGaps)
		}
		return nil
	},
}

func init() {
	recordCmd.Flags().String("user", "default", "User the session belongs to")
	recordCmd.Flags().Float64("completeness", 0, "Explanation completeness in [0,1]")
	recordCmd.Flags().Float64("coherence", 0, "Explanation coherence in [0,1]")
	recordCmd.Flags().Float64("accuracy", 0, "Average adversarial-question accuracy in [0,1]")
	recordCmd.Flags().String("misconceptions", "", "Path to a misconceptions JSON payload")
	recordCmd.Flags().String("assessment", "", "Path to an assessment-service JSON payload")
}
