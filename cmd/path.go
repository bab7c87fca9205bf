package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kunalarora/studypath/internal/pathplan"
)

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Compile a prioritized learning path and weekly roadmap",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		user, _ := cmd.Flags().GetString("user")
		modeName, _ := cmd.Flags().GetString("mode")
		hours, _ := cmd.Flags().GetFloat64("hours-per-week")

		mode, err := pathplan.ParseMode(modeName)
		if err != nil {
			return err
		}

		eng, st, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		path, err := eng.BuildPath(cmd.Context(), user, mode, hours)
		if err != nil {
			return err
		}
		if len(path.Steps) == 0 {
			fmt.Println("Nothing to study: every concept is mastered.")
			return nil
		}

		fmt.Printf("Learning path (%s mode), %.1f hours total:\n", path.Mode, path.TotalEstimatedHours)
		for i, step := range path.Steps {
			fmt.Printf("%2d. %-24s priority %.3f  score %.2f  ~%.1fh\n",
				i+1, step.ConceptID, step.Priority, step.UnderstandingScore, step.EstimatedHours)
		}
		if hours > 0 {
			fmt.Println()
			for _, week := range path.WeeklyRoadmap {
				fmt.Printf("Week %d (%.1fh):\n", week.Number, week.Hours)
				for _, step := range week.Steps {
					fmt.Printf("    %-24s ~%.1fh\n", step.ConceptID, step.EstimatedHours)
				}
			}
		}
		return nil
	},
}

func init() {
	pathCmd.Flags().String("user", "default", "User the path is compiled for")
	pathCmd.Flags().String("mode", string(pathplan.DefaultMode), "Study mode: survival, rank, or interview")
	pathCmd.Flags().Float64("hours-per-week", 0, "Weekly study budget; 0 skips the roadmap")
}
