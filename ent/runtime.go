// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/kunalarora/studypath/ent/concept"
	"github.com/kunalarora/studypath/ent/dependencyedge"
	"github.com/kunalarora/studypath/ent/schema"
	"github.com/kunalarora/studypath/ent/snapshot"
	"github.com/kunalarora/studypath/ent/understandingrecord"
	"github.com/kunalarora/studypath/ent/weightoverride"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	conceptFields := schema.Concept{}.Fields()
	_ = conceptFields
	// conceptDescConceptID is the schema descriptor for concept_id field.
	conceptDescConceptID := conceptFields[0].Descriptor()
	// concept.ConceptIDValidator is a validator for the "concept_id" field. It is called by the builders before save.
	concept.ConceptIDValidator = conceptDescConceptID.Validators[0].(func(string) error)
	// conceptDescName is the schema descriptor for name field.
	conceptDescName := conceptFields[1].Descriptor()
	// concept.NameValidator is a validator for the "name" field. It is called by the builders before save.
	concept.NameValidator = conceptDescName.Validators[0].(func(string) error)
	// conceptDescComplexity is the schema descriptor for complexity field.
	conceptDescComplexity := conceptFields[3].Descriptor()
	// concept.ComplexityValidator is a validator for the "complexity" field. It is called by the builders before save.
	concept.ComplexityValidator = func() func(int) error {
		validators := conceptDescComplexity.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(complexity int) error {
			for _, fn := range fns {
				if err := fn(complexity); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	dependencyedgeFields := schema.DependencyEdge{}.Fields()
	_ = dependencyedgeFields
	// dependencyedgeDescPrerequisiteID is the schema descriptor for prerequisite_id field.
	dependencyedgeDescPrerequisiteID := dependencyedgeFields[0].Descriptor()
	// dependencyedge.PrerequisiteIDValidator is a validator for the "prerequisite_id" field. It is called by the builders before save.
	dependencyedge.PrerequisiteIDValidator = dependencyedgeDescPrerequisiteID.Validators[0].(func(string) error)
	// dependencyedgeDescDependentID is the schema descriptor for dependent_id field.
	dependencyedgeDescDependentID := dependencyedgeFields[1].Descriptor()
	// dependencyedge.DependentIDValidator is a validator for the "dependent_id" field. It is called by the builders before save.
	dependencyedge.DependentIDValidator = dependencyedgeDescDependentID.Validators[0].(func(string) error)
	// dependencyedgeDescStrength is the schema descriptor for strength field.
	dependencyedgeDescStrength := dependencyedgeFields[2].Descriptor()
	// dependencyedge.StrengthValidator is a validator for the "strength" field. It is called by the builders before save.
	dependencyedge.StrengthValidator = func() func(float64) error {
		validators := dependencyedgeDescStrength.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(strength float64) error {
			for _, fn := range fns {
				if err := fn(strength); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
	understandingrecordMixin := schema.UnderstandingRecord{}.Mixin()
	understandingrecordMixinFields0 := understandingrecordMixin[0].Fields()
	_ = understandingrecordMixinFields0
	understandingrecordFields := schema.UnderstandingRecord{}.Fields()
	_ = understandingrecordFields
	// understandingrecordDescTimestamp is the schema descriptor for timestamp field.
	understandingrecordDescTimestamp := understandingrecordMixinFields0[1].Descriptor()
	// understandingrecord.DefaultTimestamp holds the default value on creation for the timestamp field.
	understandingrecord.DefaultTimestamp = understandingrecordDescTimestamp.Default.(func() time.Time)
	// understandingrecordDescRecordID is the schema descriptor for record_id field.
	understandingrecordDescRecordID := understandingrecordFields[0].Descriptor()
	// understandingrecord.RecordIDValidator is a validator for the "record_id" field. It is called by the builders before save.
	understandingrecord.RecordIDValidator = understandingrecordDescRecordID.Validators[0].(func(string) error)
	// understandingrecordDescUserID is the schema descriptor for user_id field.
	understandingrecordDescUserID := understandingrecordFields[1].Descriptor()
	// understandingrecord.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	understandingrecord.UserIDValidator = understandingrecordDescUserID.Validators[0].(func(string) error)
	// understandingrecordDescConceptID is the schema descriptor for concept_id field.
	understandingrecordDescConceptID := understandingrecordFields[2].Descriptor()
	// understandingrecord.ConceptIDValidator is a validator for the "concept_id" field. It is called by the builders before save.
	understandingrecord.ConceptIDValidator = understandingrecordDescConceptID.Validators[0].(func(string) error)
	weightoverrideFields := schema.WeightOverride{}.Fields()
	_ = weightoverrideFields
	// weightoverrideDescConceptID is the schema descriptor for concept_id field.
	weightoverrideDescConceptID := weightoverrideFields[0].Descriptor()
	// weightoverride.ConceptIDValidator is a validator for the "concept_id" field. It is called by the builders before save.
	weightoverride.ConceptIDValidator = weightoverrideDescConceptID.Validators[0].(func(string) error)
	// weightoverrideDescWeight is the schema descriptor for weight field.
	weightoverrideDescWeight := weightoverrideFields[1].Descriptor()
	// weightoverride.WeightValidator is a validator for the "weight" field. It is called by the builders before save.
	weightoverride.WeightValidator = func() func(float64) error {
		validators := weightoverrideDescWeight.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(weight float64) error {
			for _, fn := range fns {
				if err := fn(weight); err != nil {
					return err
				}
			}
			return nil
		}
	}()
}
