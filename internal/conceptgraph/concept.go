package conceptgraph

// Concept represents a single learning topic in the prerequisite graph.
type Concept struct {
	ID          string
	Name        string
	Description string
	Complexity  int // 1 (trivial) to 5 (hard)
}

// Edge is a directed prerequisite relationship: Prerequisite must be
// understood before Dependent. Strength expresses how hard the dependency
// is, in [0,1].
type Edge struct {
	Prerequisite string
	Dependent    string
	Strength     float64
}

// edgeKey identifies an edge by its ordered endpoint pair.
type edgeKey struct {
	prerequisite string
	dependent    string
}

// MinComplexity and MaxComplexity bound the Concept.Complexity scale.
const (
	MinComplexity = 1
	MaxComplexity = 5
)
