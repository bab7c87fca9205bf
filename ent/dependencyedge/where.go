// Code generated by ent, DO NOT EDIT.

package dependencyedge

import (
	"entgo.io/ent/dialect/sql"
	"github.com/kunalarora/studypath/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.DependencyEdge {
	return predicate.DependencyEdge(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.DependencyEdge {
	return predicate.DependencyEdge(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.DependencyEdge {
	return predicate.DependencyEdge(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.DependencyEdge {
	return predicate.DependencyEdge(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.DependencyEdge {
	return predicate.DependencyEdge(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.DependencyEdge {
	return predicate.DependencyEdge(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.DependencyEdge {
	return predicate.DependencyEdge(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.DependencyEdge {
	return predicate.DependencyEdge(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.DependencyEdge {
	return predicate.DependencyEdge(sql.FieldLTE(FieldID, id))
}

// PrerequisiteID applies equality check predicate on the "prerequisite_id" field. It's identical to PrerequisiteIDEQ.
func PrerequisiteID(v string) predicate.DependencyEdge {
	return predicate.DependencyEdge(sql.FieldEQ(FieldPrerequisiteID, v))
}

// DependentID applies equality check predicate on the "dependent_id" field. It's identical to DependentIDEQ.
func DependentID(v string) predicate.DependencyEdge {
	return predicate.DependencyEdge(sql.FieldEQ(FieldDependentID, v))
}

// Strength applies equality check predicate on the "strength" field. It's identical to StrengthEQ.
func Strength(v float64) predicate.DependencyEdge {
	return predicate.DependencyEdge(sql.FieldEQ(FieldStrength, v))
}

// PrerequisiteIDEQ applies the EQ predicate on the "prerequisite_id" field.
func PrerequisiteIDEQ(v string) predicate.DependencyEdge {
	return predicate.DependencyEdge(sql.FieldEQ(FieldPrerequisiteID, v))
}

// PrerequisiteIDNEQ applies the NEQ predicate on the "prerequisite_id" field.
func PrerequisiteIDNEQ(v string) predicate.DependencyEdge {
	return predicate.DependencyEdge(sql.FieldNEQ(FieldPrerequisiteID, v))
}

// PrerequisiteIDIn applies the In predicate on the "prerequisite_id" field.
func PrerequisiteIDIn(vs ...string) predicate.DependencyEdge {
	return predicate.DependencyEdge(sql.FieldIn(FieldPrerequisiteID, vs...))
}

// PrerequisiteIDNotIn applies the NotIn predicate on the "prerequisite_id" field.
func PrerequisiteIDNotIn(vs ...string) predicate.DependencyEdge {
	return predicate.DependencyEdge(sql.FieldNotIn(FieldPrerequisiteID, vs...))
}

// PrerequisiteIDGT applies the GT predicate on the "prerequisite_id" field.
func PrerequisiteIDGT(v string) predicate.DependencyEdge {
	return predicate.DependencyEdge(sql.FieldGT(FieldPrerequisiteID, v))
}

// PrerequisiteIDGTE applies the GTE predicate on the "prerequisite_id" field.
func PrerequisiteIDGTE(v string) predicate.DependencyEdge {
	return predicate.DependencyEdge(sql.FieldGTE(FieldPrerequisiteID, v))
}

// PrerequisiteIDLT applies the LT predicate on the "prerequisite_id" field.
func PrerequisiteIDLT(v string) predicate.DependencyEdge {
	return predicate.DependencyEdge(sql.FieldLT(FieldPrerequisiteID, v))
}

// PrerequisiteIDLTE applies the LTE predicate on the "prerequisite_id" field.
func PrerequisiteIDLTE(v string) predicate.DependencyEdge {
	return predicate.DependencyEdge(sql.FieldLTE(FieldPrerequisiteID, v))
}

// PrerequisiteIDContains applies the Contains predicate on the "prerequisite_id" field.
func PrerequisiteIDContains(v string) predicate.DependencyEdge {
	return predicate.DependencyEdge(sql.FieldContains(FieldPrerequisiteID, v))
}

// PrerequisiteIDHasPrefix applies the HasPrefix predicate on the "prerequisite_id" field.
func PrerequisiteIDHasPrefix(v string) predicate.DependencyEdge {
	return predicate.DependencyEdge(sql.FieldHasPrefix(FieldPrerequisiteID, v))
}

// PrerequisiteIDHasSuffix applies the HasSuffix predicate on the "prerequisite_id" field.
func PrerequisiteIDHasSuffix(v string) predicate.DependencyEdge {
	return predicate.DependencyEdge(sql.FieldHasSuffix(FieldPrerequisiteID, v))
}

// PrerequisiteIDEqualFold applies the EqualFold predicate on the "prerequisite_id" field.
func PrerequisiteIDEqualFold(v string) predicate.DependencyEdge {
	return predicate.DependencyEdge(sql.FieldEqualFold(FieldPrerequisiteID, v))
}

// PrerequisiteIDContainsFold applies the ContainsFold predicate on the "prerequisite_id" field.
func PrerequisiteIDContainsFold(v string) predicate.DependencyEdge {
	return predicate.DependencyEdge(sql.FieldContainsFold(FieldPrerequisiteID, v))
}

// DependentIDEQ applies the EQ predicate on the "dependent_id" field.
func DependentIDEQ(v string) predicate.DependencyEdge {
	return predicate.DependencyEdge(sql.FieldEQ(FieldDependentID, v))
}

// DependentIDNEQ applies the NEQ predicate on the "dependent_id" field.
func DependentIDNEQ(v string) predicate.DependencyEdge {
	return predicate.DependencyEdge(sql.FieldNEQ(FieldDependentID, v))
}

// DependentIDIn applies the In predicate on the "dependent_id" field.
func DependentIDIn(vs ...string) predicate.DependencyEdge {
	return predicate.DependencyEdge(sql.FieldIn(FieldDependentID, vs...))
}

// DependentIDNotIn applies the NotIn predicate on the "dependent_id" field.
func DependentIDNotIn(vs ...string) predicate.DependencyEdge {
	return predicate.DependencyEdge(sql.FieldNotIn(FieldDependentID, vs...))
}

// DependentIDGT applies the GT predicate on the "dependent_id" field.
func DependentIDGT(v string) predicate.DependencyEdge {
	return predicate.DependencyEdge(sql.FieldGT(FieldDependentID, v))
}

// DependentIDGTE applies the GTE predicate on the "dependent_id" field.
func DependentIDGTE(v string) predicate.DependencyEdge {
	return predicate.DependencyEdge(sql.FieldGTE(FieldDependentID, v))
}

// DependentIDLT applies the LT predicate on the "dependent_id" field.
func DependentIDLT(v string) predicate.DependencyEdge {
	return predicate.DependencyEdge(sql.FieldLT(FieldDependentID, v))
}

// DependentIDLTE applies the LTE predicate on the "dependent_id" field.
func DependentIDLTE(v string) predicate.DependencyEdge {
	return predicate.DependencyEdge(sql.FieldLTE(FieldDependentID, v))
}

// DependentIDContains applies the Contains predicate on the "dependent_id" field.
func DependentIDContains(v string) predicate.DependencyEdge {
	return predicate.DependencyEdge(sql.FieldContains(FieldDependentID, v))
}

// DependentIDHasPrefix applies the HasPrefix predicate on the "dependent_id" field.
func DependentIDHasPrefix(v string) predicate.DependencyEdge {
	return predicate.DependencyEdge(sql.FieldHasPrefix(FieldDependentID, v))
}

// DependentIDHasSuffix applies the HasSuffix predicate on the "dependent_id" field.
func DependentIDHasSuffix(v string) predicate.DependencyEdge {
	return predicate.DependencyEdge(sql.FieldHasSuffix(FieldDependentID, v))
}

// DependentIDEqualFold applies the EqualFold predicate on the "dependent_id" field.
func DependentIDEqualFold(v string) predicate.DependencyEdge {
	return predicate.DependencyEdge(sql.FieldEqualFold(FieldDependentID, v))
}

// DependentIDContainsFold applies the ContainsFold predicate on the "dependent_id" field.
func DependentIDContainsFold(v string) predicate.DependencyEdge {
	return predicate.DependencyEdge(sql.FieldContainsFold(FieldDependentID, v))
}

// StrengthEQ applies the EQ predicate on the "strength" field.
func StrengthEQ(v float64) predicate.DependencyEdge {
	return predicate.DependencyEdge(sql.FieldEQ(FieldStrength, v))
}

// StrengthNEQ applies the NEQ predicate on the "strength" field.
func StrengthNEQ(v float64) predicate.DependencyEdge {
	return predicate.DependencyEdge(sql.FieldNEQ(FieldStrength, v))
}

// StrengthIn applies the In predicate on the "strength" field.
func StrengthIn(vs ...float64) predicate.DependencyEdge {
	return predicate.DependencyEdge(sql.FieldIn(FieldStrength, vs...))
}

// StrengthNotIn applies the NotIn predicate on the "strength" field.
func StrengthNotIn(vs ...float64) predicate.DependencyEdge {
	return predicate.DependencyEdge(sql.FieldNotIn(FieldStrength, vs...))
}

// StrengthGT applies the GT predicate on the "strength" field.
func StrengthGT(v float64) predicate.DependencyEdge {
	return predicate.DependencyEdge(sql.FieldGT(FieldStrength, v))
}

// StrengthGTE applies the GTE predicate on the "strength" field.
func StrengthGTE(v float64) predicate.DependencyEdge {
	return predicate.DependencyEdge(sql.FieldGTE(FieldStrength, v))
}

// StrengthLT applies the LT predicate on the "strength" field.
func StrengthLT(v float64) predicate.DependencyEdge {
	return predicate.DependencyEdge(sql.FieldLT(FieldStrength, v))
}

// StrengthLTE applies the LTE predicate on the "strength" field.
func StrengthLTE(v float64) predicate.DependencyEdge {
	return predicate.DependencyEdge(sql.FieldLTE(FieldStrength, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DependencyEdge) predicate.DependencyEdge {
	return predicate.DependencyEdge(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DependencyEdge) predicate.DependencyEdge {
	return predicate.DependencyEdge(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DependencyEdge) predicate.DependencyEdge {
	return predicate.DependencyEdge(sql.NotPredicates(p))
}
