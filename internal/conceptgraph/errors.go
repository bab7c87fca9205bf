package conceptgraph

import "errors"

// Failure taxonomy for graph mutations and queries. Callers discriminate
// with errors.Is; every mutation that returns one of these leaves the
// store exactly as it was before the call.
var (
	// ErrDuplicateConcept is returned when adding a concept whose ID
	// already exists.
	ErrDuplicateConcept = errors.New("duplicate concept")

	// ErrUnknownConcept is returned when an operation references a
	// concept ID that is not in the graph.
	ErrUnknownConcept = errors.New("unknown concept")

	// ErrSelfLoop is returned when an edge's prerequisite and dependent
	// are the same concept.
	ErrSelfLoop = errors.New("self-loop edge")

	// ErrCycleDetected is returned when adding an edge would make the
	// prerequisite relation cyclic.
	ErrCycleDetected = errors.New("cycle detected")

	// ErrDuplicateEdge is returned when an edge already exists for the
	// ordered (prerequisite, dependent) pair.
	ErrDuplicateEdge = errors.New("duplicate edge")

	// ErrUnknownEdge is returned when removing or updating an edge that
	// does not exist.
	ErrUnknownEdge = errors.New("unknown edge")

	// ErrGraphIntegrity is returned when structural validation fails:
	// a cycle survived the constructive checks (should never happen) or
	// some concept is unreachable from every root.
	ErrGraphIntegrity = errors.New("graph integrity violation")

	// ErrInvalidScoreRange is returned for numeric inputs outside their
	// documented range: strengths, scores and weights outside [0,1], or
	// complexity outside 1..5.
	ErrInvalidScoreRange = errors.New("value out of range")
)
