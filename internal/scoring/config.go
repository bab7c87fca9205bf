package scoring

// Understanding score combination weights. Completeness and question
// accuracy dominate; coherence refines.
const (
	CompletenessWeight = 0.4
	AccuracyWeight     = 0.4
	CoherenceWeight    = 0.2
)

// GapThreshold is the current-score cutoff below which a direct
// prerequisite is recorded as a gap on a new record.
const GapThreshold = 0.5
