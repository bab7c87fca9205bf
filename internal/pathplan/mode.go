package pathplan

import "fmt"

// Mode selects the priority weighting strategy for path generation.
type Mode string

const (
	// ModeSurvival optimizes for passing: exam weight dominates.
	ModeSurvival Mode = "survival"
	// ModeRank optimizes for ranking well: structural centrality dominates.
	ModeRank Mode = "rank"
	// ModeInterview optimizes for depth: weakness dominates and root
	// concepts get a bonus.
	ModeInterview Mode = "interview"
)

// DefaultMode applies when no mode is specified.
const DefaultMode = ModeRank

// weights holds one mode's priority coefficients:
// Priority = examWeight*Exam + normalizedCentrality*Centrality +
// (1-understandingScore)*Weakness, plus RootBonus for zero-prerequisite
// concepts.
type weights struct {
	Exam       float64
	Centrality float64
	Weakness   float64
	RootBonus  float64
}

var modeWeights = map[Mode]weights{
	ModeSurvival:  {Exam: 0.7, Centrality: 0.2, Weakness: 0.1},
	ModeRank:      {Exam: 0.3, Centrality: 0.5, Weakness: 0.2},
	ModeInterview: {Exam: 0.2, Centrality: 0.3, Weakness: 0.5, RootBonus: 0.1},
}

// ParseMode converts a user-supplied string to a Mode. The empty string
// resolves to DefaultMode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeSurvival, ModeRank, ModeInterview:
		return Mode(s), nil
	case "":
		return DefaultMode, nil
	}
	return "", fmt.Errorf("unknown learning mode %q (valid: survival, rank, interview)", s)
}

// AllModes returns the modes in display order.
func AllModes() []Mode {
	return []Mode{ModeSurvival, ModeRank, ModeInterview}
}
