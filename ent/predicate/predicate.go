// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Concept is the predicate function for concept builders.
type Concept func(*sql.Selector)

// DependencyEdge is the predicate function for dependencyedge builders.
type DependencyEdge func(*sql.Selector)

// Snapshot is the predicate function for snapshot builders.
type Snapshot func(*sql.Selector)

// UnderstandingRecord is the predicate function for understandingrecord builders.
type UnderstandingRecord func(*sql.Selector)

// WeightOverride is the predicate function for weightoverride builders.
type WeightOverride func(*sql.Selector)
