// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/kunalarora/studypath/ent/concept"
	"github.com/kunalarora/studypath/ent/dependencyedge"
	"github.com/kunalarora/studypath/ent/predicate"
	"github.com/kunalarora/studypath/ent/schema"
	"github.com/kunalarora/studypath/ent/snapshot"
	"github.com/kunalarora/studypath/ent/understandingrecord"
	"github.com/kunalarora/studypath/ent/weightoverride"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeConcept             = "Concept"
	TypeDependencyEdge      = "DependencyEdge"
	TypeSnapshot            = "Snapshot"
	TypeUnderstandingRecord = "UnderstandingRecord"
	TypeWeightOverride      = "WeightOverride"
)

// ConceptMutation represents an operation that mutates the Concept nodes in the graph.
type ConceptMutation struct {
	config
	op            Op
	typ           string
	id            *int
	concept_id    *string
	name          *string
	description   *string
	complexity    *int
	addcomplexity *int
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Concept, error)
	predicates    []predicate.Concept
}

var _ ent.Mutation = (*ConceptMutation)(nil)

// conceptOption allows management of the mutation configuration using functional options.
type conceptOption func(*ConceptMutation)

// newConceptMutation creates new mutation for the Concept entity.
func newConceptMutation(c config, op Op, opts ...conceptOption) *ConceptMutation {
	m := &ConceptMutation{
		config:        c,
		op:            op,
		typ:           TypeConcept,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withConceptID sets the ID field of the mutation.
func withConceptID(id int) conceptOption {
	return func(m *ConceptMutation) {
		var (
			err   error
			once  sync.Once
			value *Concept
		)
		m.oldValue = func(ctx context.Context) (*Concept, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Concept.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withConcept sets the old Concept of the mutation.
func withConcept(node *Concept) conceptOption {
	return func(m *ConceptMutation) {
		m.oldValue = func(context.Context) (*Concept, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ConceptMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ConceptMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ConceptMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ConceptMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Concept.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetConceptID sets the "concept_id" field.
func (m *ConceptMutation) SetConceptID(s string) {
	m.concept_id = &s
}

// ConceptID returns the value of the "concept_id" field in the mutation.
func (m *ConceptMutation) ConceptID() (r string, exists bool) {
	v := m.concept_id
	if v == nil {
		return
	}
	return *v, true
}

// OldConceptID returns the old "concept_id" field's value of the Concept entity.
// If the Concept object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConceptMutation) OldConceptID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConceptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConceptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConceptID: %w", err)
	}
	return oldValue.ConceptID, nil
}

// ResetConceptID resets all changes to the "concept_id" field.
func (m *ConceptMutation) ResetConceptID() {
	m.concept_id = nil
}

// SetName sets the "name" field.
func (m *ConceptMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ConceptMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Concept entity.
// If the Concept object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConceptMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ConceptMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *ConceptMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ConceptMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Concept entity.
// If the Concept object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConceptMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ConceptMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[concept.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ConceptMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[concept.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ConceptMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, concept.FieldDescription)
}

// SetComplexity sets the "complexity" field.
func (m *ConceptMutation) SetComplexity(i int) {
	m.complexity = &i
	m.addcomplexity = nil
}

// Complexity returns the value of the "complexity" field in the mutation.
func (m *ConceptMutation) Complexity() (r int, exists bool) {
	v := m.complexity
	if v == nil {
		return
	}
	return *v, true
}

// OldComplexity returns the old "complexity" field's value of the Concept entity.
// If the Concept object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConceptMutation) OldComplexity(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComplexity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComplexity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComplexity: %w", err)
	}
	return oldValue.Complexity, nil
}

// AddComplexity adds i to the "complexity" field.
func (m *ConceptMutation) AddComplexity(i int) {
	if m.addcomplexity != nil {
		*m.addcomplexity += i
	} else {
		m.addcomplexity = &i
	}
}

// AddedComplexity returns the value that was added to the "complexity" field in this mutation.
func (m *ConceptMutation) AddedComplexity() (r int, exists bool) {
	v := m.addcomplexity
	if v == nil {
		return
	}
	return *v, true
}

// ResetComplexity resets all changes to the "complexity" field.
func (m *ConceptMutation) ResetComplexity() {
	m.complexity = nil
	m.addcomplexity = nil
}

// Where appends a list predicates to the ConceptMutation builder.
func (m *ConceptMutation) Where(ps ...predicate.Concept) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ConceptMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ConceptMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Concept, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ConceptMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ConceptMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Concept).
func (m *ConceptMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ConceptMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.concept_id != nil {
		fields = append(fields, concept.FieldConceptID)
	}
	if m.name != nil {
		fields = append(fields, concept.FieldName)
	}
	if m.description != nil {
		fields = append(fields, concept.FieldDescription)
	}
	if m.complexity != nil {
		fields = append(fields, concept.FieldComplexity)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ConceptMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case concept.FieldConceptID:
		return m.ConceptID()
	case concept.FieldName:
		return m.Name()
	case concept.FieldDescription:
		return m.Description()
	case concept.FieldComplexity:
		return m.Complexity()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ConceptMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case concept.FieldConceptID:
		return m.OldConceptID(ctx)
	case concept.FieldName:
		return m.OldName(ctx)
	case concept.FieldDescription:
		return m.OldDescription(ctx)
	case concept.FieldComplexity:
		return m.OldComplexity(ctx)
	}
	return nil, fmt.Errorf("unknown Concept field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConceptMutation) SetField(name string, value ent.Value) error {
	switch name {
	case concept.FieldConceptID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConceptID(v)
		return nil
	case concept.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case concept.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case concept.FieldComplexity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComplexity(v)
		return nil
	}
	return fmt.Errorf("unknown Concept field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ConceptMutation) AddedFields() []string {
	var fields []string
	if m.addcomplexity != nil {
		fields = append(fields, concept.FieldComplexity)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ConceptMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case concept.FieldComplexity:
		return m.AddedComplexity()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConceptMutation) AddField(name string, value ent.Value) error {
	switch name {
	case concept.FieldComplexity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddComplexity(v)
		return nil
	}
	return fmt.Errorf("unknown Concept numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ConceptMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(concept.FieldDescription) {
		fields = append(fields, concept.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ConceptMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ConceptMutation) ClearField(name string) error {
	switch name {
	case concept.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown Concept nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ConceptMutation) ResetField(name string) error {
	switch name {
	case concept.FieldConceptID:
		m.ResetConceptID()
		return nil
	case concept.FieldName:
		m.ResetName()
		return nil
	case concept.FieldDescription:
		m.ResetDescription()
		return nil
	case concept.FieldComplexity:
		m.ResetComplexity()
		return nil
	}
	return fmt.Errorf("unknown Concept field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ConceptMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ConceptMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ConceptMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ConceptMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ConceptMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ConceptMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ConceptMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Concept unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ConceptMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Concept edge %s", name)
}

// DependencyEdgeMutation represents an operation that mutates the DependencyEdge nodes in the graph.
type DependencyEdgeMutation struct {
	config
	op              Op
	typ             string
	id              *int
	prerequisite_id *string
	dependent_id    *string
	strength        *float64
	addstrength     *float64
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*DependencyEdge, error)
	predicates      []predicate.DependencyEdge
}

var _ ent.Mutation = (*DependencyEdgeMutation)(nil)

// dependencyedgeOption allows management of the mutation configuration using functional options.
type dependencyedgeOption func(*DependencyEdgeMutation)

// newDependencyEdgeMutation creates new mutation for the DependencyEdge entity.
func newDependencyEdgeMutation(c config, op Op, opts ...dependencyedgeOption) *DependencyEdgeMutation {
	m := &DependencyEdgeMutation{
		config:        c,
		op:            op,
		typ:           TypeDependencyEdge,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDependencyEdgeID sets the ID field of the mutation.
func withDependencyEdgeID(id int) dependencyedgeOption {
	return func(m *DependencyEdgeMutation) {
		var (
			err   error
			once  sync.Once
			value *DependencyEdge
		)
		m.oldValue = func(ctx context.Context) (*DependencyEdge, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DependencyEdge.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDependencyEdge sets the old DependencyEdge of the mutation.
func withDependencyEdge(node *DependencyEdge) dependencyedgeOption {
	return func(m *DependencyEdgeMutation) {
		m.oldValue = func(context.Context) (*DependencyEdge, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DependencyEdgeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DependencyEdgeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DependencyEdgeMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DependencyEdgeMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DependencyEdge.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPrerequisiteID sets the "prerequisite_id" field.
func (m *DependencyEdgeMutation) SetPrerequisiteID(s string) {
	m.prerequisite_id = &s
}

// PrerequisiteID returns the value of the "prerequisite_id" field in the mutation.
func (m *DependencyEdgeMutation) PrerequisiteID() (r string, exists bool) {
	v := m.prerequisite_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPrerequisiteID returns the old "prerequisite_id" field's value of the DependencyEdge entity.
// If the DependencyEdge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DependencyEdgeMutation) OldPrerequisiteID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrerequisiteID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrerequisiteID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrerequisiteID: %w", err)
	}
	return oldValue.PrerequisiteID, nil
}

// ResetPrerequisiteID resets all changes to the "prerequisite_id" field.
func (m *DependencyEdgeMutation) ResetPrerequisiteID() {
	m.prerequisite_id = nil
}

// SetDependentID sets the "dependent_id" field.
func (m *DependencyEdgeMutation) SetDependentID(s string) {
	m.dependent_id = &s
}

// DependentID returns the value of the "dependent_id" field in the mutation.
func (m *DependencyEdgeMutation) DependentID() (r string, exists bool) {
	v := m.dependent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDependentID returns the old "dependent_id" field's value of the DependencyEdge entity.
// If the DependencyEdge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DependencyEdgeMutation) OldDependentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDependentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDependentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDependentID: %w", err)
	}
	return oldValue.DependentID, nil
}

// ResetDependentID resets all changes to the "dependent_id" field.
func (m *DependencyEdgeMutation) ResetDependentID() {
	m.dependent_id = nil
}

// SetStrength sets the "strength" field.
func (m *DependencyEdgeMutation) SetStrength(f float64) {
	m.strength = &f
	m.addstrength = nil
}

// Strength returns the value of the "strength" field in the mutation.
func (m *DependencyEdgeMutation) Strength() (r float64, exists bool) {
	v := m.strength
	if v == nil {
		return
	}
	return *v, true
}

// OldStrength returns the old "strength" field's value of the DependencyEdge entity.
// If the DependencyEdge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DependencyEdgeMutation) OldStrength(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStrength is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStrength requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStrength: %w", err)
	}
	return oldValue.Strength, nil
}

// AddStrength adds f to the "strength" field.
func (m *DependencyEdgeMutation) AddStrength(f float64) {
	if m.addstrength != nil {
		*m.addstrength += f
	} else {
		m.addstrength = &f
	}
}

// AddedStrength returns the value that was added to the "strength" field in this mutation.
func (m *DependencyEdgeMutation) AddedStrength() (r float64, exists bool) {
	v := m.addstrength
	if v == nil {
		return
	}
	return *v, true
}

// ResetStrength resets all changes to the "strength" field.
func (m *DependencyEdgeMutation) ResetStrength() {
	m.strength = nil
	m.addstrength = nil
}

// Where appends a list predicates to the DependencyEdgeMutation builder.
func (m *DependencyEdgeMutation) Where(ps ...predicate.DependencyEdge) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DependencyEdgeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DependencyEdgeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DependencyEdge, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DependencyEdgeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DependencyEdgeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DependencyEdge).
func (m *DependencyEdgeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DependencyEdgeMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.prerequisite_id != nil {
		fields = append(fields, dependencyedge.FieldPrerequisiteID)
	}
	if m.dependent_id != nil {
		fields = append(fields, dependencyedge.FieldDependentID)
	}
	if m.strength != nil {
		fields = append(fields, dependencyedge.FieldStrength)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DependencyEdgeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case dependencyedge.FieldPrerequisiteID:
		return m.PrerequisiteID()
	case dependencyedge.FieldDependentID:
		return m.DependentID()
	case dependencyedge.FieldStrength:
		return m.Strength()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DependencyEdgeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case dependencyedge.FieldPrerequisiteID:
		return m.OldPrerequisiteID(ctx)
	case dependencyedge.FieldDependentID:
		return m.OldDependentID(ctx)
	case dependencyedge.FieldStrength:
		return m.OldStrength(ctx)
	}
	return nil, fmt.Errorf("unknown DependencyEdge field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DependencyEdgeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case dependencyedge.FieldPrerequisiteID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrerequisiteID(v)
		return nil
	case dependencyedge.FieldDependentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDependentID(v)
		return nil
	case dependencyedge.FieldStrength:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStrength(v)
		return nil
	}
	return fmt.Errorf("unknown DependencyEdge field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DependencyEdgeMutation) AddedFields() []string {
	var fields []string
	if m.addstrength != nil {
		fields = append(fields, dependencyedge.FieldStrength)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DependencyEdgeMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case dependencyedge.FieldStrength:
		return m.AddedStrength()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DependencyEdgeMutation) AddField(name string, value ent.Value) error {
	switch name {
	case dependencyedge.FieldStrength:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStrength(v)
		return nil
	}
	return fmt.Errorf("unknown DependencyEdge numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DependencyEdgeMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DependencyEdgeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DependencyEdgeMutation) ClearField(name string) error {
	return fmt.Errorf("unknown DependencyEdge nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DependencyEdgeMutation) ResetField(name string) error {
	switch name {
	case dependencyedge.FieldPrerequisiteID:
		m.ResetPrerequisiteID()
		return nil
	case dependencyedge.FieldDependentID:
		m.ResetDependentID()
		return nil
	case dependencyedge.FieldStrength:
		m.ResetStrength()
		return nil
	}
	return fmt.Errorf("unknown DependencyEdge field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DependencyEdgeMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DependencyEdgeMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DependencyEdgeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DependencyEdgeMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DependencyEdgeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DependencyEdgeMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DependencyEdgeMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DependencyEdge unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DependencyEdgeMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DependencyEdge edge %s", name)
}

// SnapshotMutation represents an operation that mutates the Snapshot nodes in the graph.
type SnapshotMutation struct {
	config
	op            Op
	typ           string
	id            *int
	sequence      *int64
	addsequence   *int64
	timestamp     *time.Time
	data          *map[string]interface{}
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Snapshot, error)
	predicates    []predicate.Snapshot
}

var _ ent.Mutation = (*SnapshotMutation)(nil)

// snapshotOption allows management of the mutation configuration using functional options.
type snapshotOption func(*SnapshotMutation)

// newSnapshotMutation creates new mutation for the Snapshot entity.
func newSnapshotMutation(c config, op Op, opts ...snapshotOption) *SnapshotMutation {
	m := &SnapshotMutation{
		config:        c,
		op:            op,
		typ:           TypeSnapshot,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSnapshotID sets the ID field of the mutation.
func withSnapshotID(id int) snapshotOption {
	return func(m *SnapshotMutation) {
		var (
			err   error
			once  sync.Once
			value *Snapshot
		)
		m.oldValue = func(ctx context.Context) (*Snapshot, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Snapshot.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSnapshot sets the old Snapshot of the mutation.
func withSnapshot(node *Snapshot) snapshotOption {
	return func(m *SnapshotMutation) {
		m.oldValue = func(context.Context) (*Snapshot, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SnapshotMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SnapshotMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SnapshotMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SnapshotMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Snapshot.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *SnapshotMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *SnapshotMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the Snapshot entity.
// If the Snapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SnapshotMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *SnapshotMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *SnapshotMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *SnapshotMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *SnapshotMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *SnapshotMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the Snapshot entity.
// If the Snapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SnapshotMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *SnapshotMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetData sets the "data" field.
func (m *SnapshotMutation) SetData(value map[string]interface{}) {
	m.data = &value
}

// Data returns the value of the "data" field in the mutation.
func (m *SnapshotMutation) Data() (r map[string]interface{}, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the Snapshot entity.
// If the Snapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SnapshotMutation) OldData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ResetData resets all changes to the "data" field.
func (m *SnapshotMutation) ResetData() {
	m.data = nil
}

// Where appends a list predicates to the SnapshotMutation builder.
func (m *SnapshotMutation) Where(ps ...predicate.Snapshot) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SnapshotMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SnapshotMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Snapshot, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SnapshotMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SnapshotMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Snapshot).
func (m *SnapshotMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SnapshotMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.sequence != nil {
		fields = append(fields, snapshot.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, snapshot.FieldTimestamp)
	}
	if m.data != nil {
		fields = append(fields, snapshot.FieldData)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SnapshotMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case snapshot.FieldSequence:
		return m.Sequence()
	case snapshot.FieldTimestamp:
		return m.Timestamp()
	case snapshot.FieldData:
		return m.Data()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SnapshotMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case snapshot.FieldSequence:
		return m.OldSequence(ctx)
	case snapshot.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case snapshot.FieldData:
		return m.OldData(ctx)
	}
	return nil, fmt.Errorf("unknown Snapshot field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SnapshotMutation) SetField(name string, value ent.Value) error {
	switch name {
	case snapshot.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case snapshot.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case snapshot.FieldData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	}
	return fmt.Errorf("unknown Snapshot field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SnapshotMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, snapshot.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SnapshotMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case snapshot.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SnapshotMutation) AddField(name string, value ent.Value) error {
	switch name {
	case snapshot.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown Snapshot numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SnapshotMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SnapshotMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SnapshotMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Snapshot nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SnapshotMutation) ResetField(name string) error {
	switch name {
	case snapshot.FieldSequence:
		m.ResetSequence()
		return nil
	case snapshot.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case snapshot.FieldData:
		m.ResetData()
		return nil
	}
	return fmt.Errorf("unknown Snapshot field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SnapshotMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SnapshotMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SnapshotMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SnapshotMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SnapshotMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SnapshotMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SnapshotMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Snapshot unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SnapshotMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Snapshot edge %s", name)
}

// UnderstandingRecordMutation represents an operation that mutates the UnderstandingRecord nodes in the graph.
type UnderstandingRecordMutation struct {
	config
	op                      Op
	typ                     string
	id                      *int
	sequence                *int64
	addsequence             *int64
	timestamp               *time.Time
	record_id               *string
	user_id                 *string
	concept_id              *string
	completeness            *float64
	addcompleteness         *float64
	coherence               *float64
	addcoherence            *float64
	question_accuracy       *float64
	addquestion_accuracy    *float64
	score                   *float64
	addscore                *float64
	misconceptions          *[]schema.MisconceptionRecord
	appendmisconceptions    []schema.MisconceptionRecord
	prerequisite_gaps       *[]string
	appendprerequisite_gaps []string
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*UnderstandingRecord, error)
	predicates              []predicate.UnderstandingRecord
}

var _ ent.Mutation = (*UnderstandingRecordMutation)(nil)

// understandingrecordOption allows management of the mutation configuration using functional options.
type understandingrecordOption func(*UnderstandingRecordMutation)

// newUnderstandingRecordMutation creates new mutation for the UnderstandingRecord entity.
func newUnderstandingRecordMutation(c config, op Op, opts ...understandingrecordOption) *UnderstandingRecordMutation {
	m := &UnderstandingRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeUnderstandingRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUnderstandingRecordID sets the ID field of the mutation.
func withUnderstandingRecordID(id int) understandingrecordOption {
	return func(m *UnderstandingRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *UnderstandingRecord
		)
		m.oldValue = func(ctx context.Context) (*UnderstandingRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UnderstandingRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUnderstandingRecord sets the old UnderstandingRecord of the mutation.
func withUnderstandingRecord(node *UnderstandingRecord) understandingrecordOption {
	return func(m *UnderstandingRecordMutation) {
		m.oldValue = func(context.Context) (*UnderstandingRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UnderstandingRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UnderstandingRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UnderstandingRecordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UnderstandingRecordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UnderstandingRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *UnderstandingRecordMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *UnderstandingRecordMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the UnderstandingRecord entity.
// If the UnderstandingRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnderstandingRecordMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *UnderstandingRecordMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *UnderstandingRecordMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *UnderstandingRecordMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *UnderstandingRecordMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *UnderstandingRecordMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the UnderstandingRecord entity.
// If the UnderstandingRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnderstandingRecordMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *UnderstandingRecordMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetRecordID sets the "record_id" field.
func (m *UnderstandingRecordMutation) SetRecordID(s string) {
	m.record_id = &s
}

// RecordID returns the value of the "record_id" field in the mutation.
func (m *UnderstandingRecordMutation) RecordID() (r string, exists bool) {
	v := m.record_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordID returns the old "record_id" field's value of the UnderstandingRecord entity.
// If the UnderstandingRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnderstandingRecordMutation) OldRecordID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordID: %w", err)
	}
	return oldValue.RecordID, nil
}

// ResetRecordID resets all changes to the "record_id" field.
func (m *UnderstandingRecordMutation) ResetRecordID() {
	m.record_id = nil
}

// SetUserID sets the "user_id" field.
func (m *UnderstandingRecordMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *UnderstandingRecordMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the UnderstandingRecord entity.
// If the UnderstandingRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnderstandingRecordMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *UnderstandingRecordMutation) ResetUserID() {
	m.user_id = nil
}

// SetConceptID sets the "concept_id" field.
func (m *UnderstandingRecordMutation) SetConceptID(s string) {
	m.concept_id = &s
}

// ConceptID returns the value of the "concept_id" field in the mutation.
func (m *UnderstandingRecordMutation) ConceptID() (r string, exists bool) {
	v := m.concept_id
	if v == nil {
		return
	}
	return *v, true
}

// OldConceptID returns the old "concept_id" field's value of the UnderstandingRecord entity.
// If the UnderstandingRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnderstandingRecordMutation) OldConceptID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConceptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConceptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConceptID: %w", err)
	}
	return oldValue.ConceptID, nil
}

// ResetConceptID resets all changes to the "concept_id" field.
func (m *UnderstandingRecordMutation) ResetConceptID() {
	m.concept_id = nil
}

// SetCompleteness sets the "completeness" field.
func (m *UnderstandingRecordMutation) SetCompleteness(f float64) {
	m.completeness = &f
	m.addcompleteness = nil
}

// Completeness returns the value of the "completeness" field in the mutation.
func (m *UnderstandingRecordMutation) Completeness() (r float64, exists bool) {
	v := m.completeness
	if v == nil {
		return
	}
	return *v, true
}

// OldCompleteness returns the old "completeness" field's value of the UnderstandingRecord entity.
// If the UnderstandingRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnderstandingRecordMutation) OldCompleteness(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompleteness is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompleteness requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompleteness: %w", err)
	}
	return oldValue.Completeness, nil
}

// AddCompleteness adds f to the "completeness" field.
func (m *UnderstandingRecordMutation) AddCompleteness(f float64) {
	if m.addcompleteness != nil {
		*m.addcompleteness += f
	} else {
		m.addcompleteness = &f
	}
}

// AddedCompleteness returns the value that was added to the "completeness" field in this mutation.
func (m *UnderstandingRecordMutation) AddedCompleteness() (r float64, exists bool) {
	v := m.addcompleteness
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompleteness resets all changes to the "completeness" field.
func (m *UnderstandingRecordMutation) ResetCompleteness() {
	m.completeness = nil
	m.addcompleteness = nil
}

// SetCoherence sets the "coherence" field.
func (m *UnderstandingRecordMutation) SetCoherence(f float64) {
	m.coherence = &f
	m.addcoherence = nil
}

// Coherence returns the value of the "coherence" field in the mutation.
func (m *UnderstandingRecordMutation) Coherence() (r float64, exists bool) {
	v := m.coherence
	if v == nil {
		return
	}
	return *v, true
}

// OldCoherence returns the old "coherence" field's value of the UnderstandingRecord entity.
// If the UnderstandingRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnderstandingRecordMutation) OldCoherence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCoherence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCoherence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCoherence: %w", err)
	}
	return oldValue.Coherence, nil
}

// AddCoherence adds f to the "coherence" field.
func (m *UnderstandingRecordMutation) AddCoherence(f float64) {
	if m.addcoherence != nil {
		*m.addcoherence += f
	} else {
		m.addcoherence = &f
	}
}

// AddedCoherence returns the value that was added to the "coherence" field in this mutation.
func (m *UnderstandingRecordMutation) AddedCoherence() (r float64, exists bool) {
	v := m.addcoherence
	if v == nil {
		return
	}
	return *v, true
}

// ResetCoherence resets all changes to the "coherence" field.
func (m *UnderstandingRecordMutation) ResetCoherence() {
	m.coherence = nil
	m.addcoherence = nil
}

// SetQuestionAccuracy sets the "question_accuracy" field.
func (m *UnderstandingRecordMutation) SetQuestionAccuracy(f float64) {
	m.question_accuracy = &f
	m.addquestion_accuracy = nil
}

// QuestionAccuracy returns the value of the "question_accuracy" field in the mutation.
func (m *UnderstandingRecordMutation) QuestionAccuracy() (r float64, exists bool) {
	v := m.question_accuracy
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionAccuracy returns the old "question_accuracy" field's value of the UnderstandingRecord entity.
// If the UnderstandingRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnderstandingRecordMutation) OldQuestionAccuracy(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionAccuracy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionAccuracy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionAccuracy: %w", err)
	}
	return oldValue.QuestionAccuracy, nil
}

// AddQuestionAccuracy adds f to the "question_accuracy" field.
func (m *UnderstandingRecordMutation) AddQuestionAccuracy(f float64) {
	if m.addquestion_accuracy != nil {
		*m.addquestion_accuracy += f
	} else {
		m.addquestion_accuracy = &f
	}
}

// AddedQuestionAccuracy returns the value that was added to the "question_accuracy" field in this mutation.
func (m *UnderstandingRecordMutation) AddedQuestionAccuracy() (r float64, exists bool) {
	v := m.addquestion_accuracy
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuestionAccuracy resets all changes to the "question_accuracy" field.
func (m *UnderstandingRecordMutation) ResetQuestionAccuracy() {
	m.question_accuracy = nil
	m.addquestion_accuracy = nil
}

// SetScore sets the "score" field.
func (m *UnderstandingRecordMutation) SetScore(f float64) {
	m.score = &f
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *UnderstandingRecordMutation) Score() (r float64, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the UnderstandingRecord entity.
// If the UnderstandingRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnderstandingRecordMutation) OldScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds f to the "score" field.
func (m *UnderstandingRecordMutation) AddScore(f float64) {
	if m.addscore != nil {
		*m.addscore += f
	} else {
		m.addscore = &f
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *UnderstandingRecordMutation) AddedScore() (r float64, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *UnderstandingRecordMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetMisconceptions sets the "misconceptions" field.
func (m *UnderstandingRecordMutation) SetMisconceptions(sr []schema.MisconceptionRecord) {
	m.misconceptions = &sr
	m.appendmisconceptions = nil
}

// Misconceptions returns the value of the "misconceptions" field in the mutation.
func (m *UnderstandingRecordMutation) Misconceptions() (r []schema.MisconceptionRecord, exists bool) {
	v := m.misconceptions
	if v == nil {
		return
	}
	return *v, true
}

// OldMisconceptions returns the old "misconceptions" field's value of the UnderstandingRecord entity.
// If the UnderstandingRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnderstandingRecordMutation) OldMisconceptions(ctx context.Context) (v []schema.MisconceptionRecord, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMisconceptions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMisconceptions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMisconceptions: %w", err)
	}
	return oldValue.Misconceptions, nil
}

// AppendMisconceptions adds sr to the "misconceptions" field.
func (m *UnderstandingRecordMutation) AppendMisconceptions(sr []schema.MisconceptionRecord) {
	m.appendmisconceptions = append(m.appendmisconceptions, sr...)
}

// AppendedMisconceptions returns the list of values that were appended to the "misconceptions" field in this mutation.
func (m *UnderstandingRecordMutation) AppendedMisconceptions() ([]schema.MisconceptionRecord, bool) {
	if len(m.appendmisconceptions) == 0 {
		return nil, false
	}
	return m.appendmisconceptions, true
}

// ClearMisconceptions clears the value of the "misconceptions" field.
func (m *UnderstandingRecordMutation) ClearMisconceptions() {
	m.misconceptions = nil
	m.appendmisconceptions = nil
	m.clearedFields[understandingrecord.FieldMisconceptions] = struct{}{}
}

// MisconceptionsCleared returns if the "misconceptions" field was cleared in this mutation.
func (m *UnderstandingRecordMutation) MisconceptionsCleared() bool {
	_, ok := m.clearedFields[understandingrecord.FieldMisconceptions]
	return ok
}

// ResetMisconceptions resets all changes to the "misconceptions" field.
func (m *UnderstandingRecordMutation) ResetMisconceptions() {
	m.misconceptions = nil
	m.appendmisconceptions = nil
	delete(m.clearedFields, understandingrecord.FieldMisconceptions)
}

// SetPrerequisiteGaps sets the "prerequisite_gaps" field.
func (m *UnderstandingRecordMutation) SetPrerequisiteGaps(s []string) {
	m.prerequisite_gaps = &s
	m.appendprerequisite_gaps = nil
}

// PrerequisiteGaps returns the value of the "prerequisite_gaps" field in the mutation.
func (m *UnderstandingRecordMutation) PrerequisiteGaps() (r []string, exists bool) {
	v := m.prerequisite_gaps
	if v == nil {
		return
	}
	return *v, true
}

// OldPrerequisiteGaps returns the old "prerequisite_gaps" field's value of the UnderstandingRecord entity.
// If the UnderstandingRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UnderstandingRecordMutation) OldPrerequisiteGaps(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrerequisiteGaps is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrerequisiteGaps requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrerequisiteGaps: %w", err)
	}
	return oldValue.PrerequisiteGaps, nil
}

// AppendPrerequisiteGaps adds s to the "prerequisite_gaps" field.
func (m *UnderstandingRecordMutation) AppendPrerequisiteGaps(s []string) {
	m.appendprerequisite_gaps = append(m.appendprerequisite_gaps, s...)
}

// AppendedPrerequisiteGaps returns the list of values that were appended to the "prerequisite_gaps" field in this mutation.
func (m *UnderstandingRecordMutation) AppendedPrerequisiteGaps() ([]string, bool) {
	if len(m.appendprerequisite_gaps) == 0 {
		return nil, false
	}
	return m.appendprerequisite_gaps, true
}

// ClearPrerequisiteGaps clears the value of the "prerequisite_gaps" field.
func (m *UnderstandingRecordMutation) ClearPrerequisiteGaps() {
	m.prerequisite_gaps = nil
	m.appendprerequisite_gaps = nil
	m.clearedFields[understandingrecord.FieldPrerequisiteGaps] = struct{}{}
}

// PrerequisiteGapsCleared returns if the "prerequisite_gaps" field was cleared in this mutation.
func (m *UnderstandingRecordMutation) PrerequisiteGapsCleared() bool {
	_, ok := m.clearedFields[understandingrecord.FieldPrerequisiteGaps]
	return ok
}

// ResetPrerequisiteGaps resets all changes to the "prerequisite_gaps" field.
func (m *UnderstandingRecordMutation) ResetPrerequisiteGaps() {
	m.prerequisite_gaps = nil
	m.appendprerequisite_gaps = nil
	delete(m.clearedFields, understandingrecord.FieldPrerequisiteGaps)
}

// Where appends a list predicates to the UnderstandingRecordMutation builder.
func (m *UnderstandingRecordMutation) Where(ps ...predicate.UnderstandingRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UnderstandingRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UnderstandingRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UnderstandingRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UnderstandingRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UnderstandingRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UnderstandingRecord).
func (m *UnderstandingRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UnderstandingRecordMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.sequence != nil {
		fields = append(fields, understandingrecord.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, understandingrecord.FieldTimestamp)
	}
	if m.record_id != nil {
		fields = append(fields, understandingrecord.FieldRecordID)
	}
	if m.user_id != nil {
		fields = append(fields, understandingrecord.FieldUserID)
	}
	if m.concept_id != nil {
		fields = append(fields, understandingrecord.FieldConceptID)
	}
	if m.completeness != nil {
		fields = append(fields, understandingrecord.FieldCompleteness)
	}
	if m.coherence != nil {
		fields = append(fields, understandingrecord.FieldCoherence)
	}
	if m.question_accuracy != nil {
		fields = append(fields, understandingrecord.FieldQuestionAccuracy)
	}
	if m.score != nil {
		fields = append(fields, understandingrecord.FieldScore)
	}
	if m.misconceptions != nil {
		fields = append(fields, understandingrecord.FieldMisconceptions)
	}
	if m.prerequisite_gaps != nil {
		fields = append(fields, understandingrecord.FieldPrerequisiteGaps)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UnderstandingRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case understandingrecord.FieldSequence:
		return m.Sequence()
	case understandingrecord.FieldTimestamp:
		return m.Timestamp()
	case understandingrecord.FieldRecordID:
		return m.RecordID()
	case understandingrecord.FieldUserID:
		return m.UserID()
	case understandingrecord.FieldConceptID:
		return m.ConceptID()
	case understandingrecord.FieldCompleteness:
		return m.Completeness()
	case understandingrecord.FieldCoherence:
		return m.Coherence()
	case understandingrecord.FieldQuestionAccuracy:
		return m.QuestionAccuracy()
	case understandingrecord.FieldScore:
		return m.Score()
	case understandingrecord.FieldMisconceptions:
		return m.Misconceptions()
	case understandingrecord.FieldPrerequisiteGaps:
		return m.PrerequisiteGaps()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UnderstandingRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case understandingrecord.FieldSequence:
		return m.OldSequence(ctx)
	case understandingrecord.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case understandingrecord.FieldRecordID:
		return m.OldRecordID(ctx)
	case understandingrecord.FieldUserID:
		return m.OldUserID(ctx)
	case understandingrecord.FieldConceptID:
		return m.OldConceptID(ctx)
	case understandingrecord.FieldCompleteness:
		return m.OldCompleteness(ctx)
	case understandingrecord.FieldCoherence:
		return m.OldCoherence(ctx)
	case understandingrecord.FieldQuestionAccuracy:
		return m.OldQuestionAccuracy(ctx)
	case understandingrecord.FieldScore:
		return m.OldScore(ctx)
	case understandingrecord.FieldMisconceptions:
		return m.OldMisconceptions(ctx)
	case understandingrecord.FieldPrerequisiteGaps:
		return m.OldPrerequisiteGaps(ctx)
	}
	return nil, fmt.Errorf("unknown UnderstandingRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UnderstandingRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case understandingrecord.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case understandingrecord.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case understandingrecord.FieldRecordID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordID(v)
		return nil
	case understandingrecord.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case understandingrecord.FieldConceptID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConceptID(v)
		return nil
	case understandingrecord.FieldCompleteness:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompleteness(v)
		return nil
	case understandingrecord.FieldCoherence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCoherence(v)
		return nil
	case understandingrecord.FieldQuestionAccuracy:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionAccuracy(v)
		return nil
	case understandingrecord.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case understandingrecord.FieldMisconceptions:
		v, ok := value.([]schema.MisconceptionRecord)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMisconceptions(v)
		return nil
	case understandingrecord.FieldPrerequisiteGaps:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrerequisiteGaps(v)
		return nil
	}
	return fmt.Errorf("unknown UnderstandingRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UnderstandingRecordMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, understandingrecord.FieldSequence)
	}
	if m.addcompleteness != nil {
		fields = append(fields, understandingrecord.FieldCompleteness)
	}
	if m.addcoherence != nil {
		fields = append(fields, understandingrecord.FieldCoherence)
	}
	if m.addquestion_accuracy != nil {
		fields = append(fields, understandingrecord.FieldQuestionAccuracy)
	}
	if m.addscore != nil {
		fields = append(fields, understandingrecord.FieldScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UnderstandingRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case understandingrecord.FieldSequence:
		return m.AddedSequence()
	case understandingrecord.FieldCompleteness:
		return m.AddedCompleteness()
	case understandingrecord.FieldCoherence:
		return m.AddedCoherence()
	case understandingrecord.FieldQuestionAccuracy:
		return m.AddedQuestionAccuracy()
	case understandingrecord.FieldScore:
		return m.AddedScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UnderstandingRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case understandingrecord.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case understandingrecord.FieldCompleteness:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompleteness(v)
		return nil
	case understandingrecord.FieldCoherence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCoherence(v)
		return nil
	case understandingrecord.FieldQuestionAccuracy:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuestionAccuracy(v)
		return nil
	case understandingrecord.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	}
	return fmt.Errorf("unknown UnderstandingRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UnderstandingRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(understandingrecord.FieldMisconceptions) {
		fields = append(fields, understandingrecord.FieldMisconceptions)
	}
	if m.FieldCleared(understandingrecord.FieldPrerequisiteGaps) {
		fields = append(fields, understandingrecord.FieldPrerequisiteGaps)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UnderstandingRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UnderstandingRecordMutation) ClearField(name string) error {
	switch name {
	case understandingrecord.FieldMisconceptions:
		m.ClearMisconceptions()
		return nil
	case understandingrecord.FieldPrerequisiteGaps:
		m.ClearPrerequisiteGaps()
		return nil
	}
	return fmt.Errorf("unknown UnderstandingRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UnderstandingRecordMutation) ResetField(name string) error {
	switch name {
	case understandingrecord.FieldSequence:
		m.ResetSequence()
		return nil
	case understandingrecord.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case understandingrecord.FieldRecordID:
		m.ResetRecordID()
		return nil
	case understandingrecord.FieldUserID:
		m.ResetUserID()
		return nil
	case understandingrecord.FieldConceptID:
		m.ResetConceptID()
		return nil
	case understandingrecord.FieldCompleteness:
		m.ResetCompleteness()
		return nil
	case understandingrecord.FieldCoherence:
		m.ResetCoherence()
		return nil
	case understandingrecord.FieldQuestionAccuracy:
		m.ResetQuestionAccuracy()
		return nil
	case understandingrecord.FieldScore:
		m.ResetScore()
		return nil
	case understandingrecord.FieldMisconceptions:
		m.ResetMisconceptions()
		return nil
	case understandingrecord.FieldPrerequisiteGaps:
		m.ResetPrerequisiteGaps()
		return nil
	}
	return fmt.Errorf("unknown UnderstandingRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UnderstandingRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UnderstandingRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UnderstandingRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UnderstandingRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UnderstandingRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UnderstandingRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UnderstandingRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown UnderstandingRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UnderstandingRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown UnderstandingRecord edge %s", name)
}

// WeightOverrideMutation represents an operation that mutates the WeightOverride nodes in the graph.
type WeightOverrideMutation struct {
	config
	op            Op
	typ           string
	id            *int
	concept_id    *string
	weight        *float64
	addweight     *float64
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*WeightOverride, error)
	predicates    []predicate.WeightOverride
}

var _ ent.Mutation = (*WeightOverrideMutation)(nil)

// weightoverrideOption allows management of the mutation configuration using functional options.
type weightoverrideOption func(*WeightOverrideMutation)

// newWeightOverrideMutation creates new mutation for the WeightOverride entity.
func newWeightOverrideMutation(c config, op Op, opts ...weightoverrideOption) *WeightOverrideMutation {
	m := &WeightOverrideMutation{
		config:        c,
		op:            op,
		typ:           TypeWeightOverride,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWeightOverrideID sets the ID field of the mutation.
func withWeightOverrideID(id int) weightoverrideOption {
	return func(m *WeightOverrideMutation) {
		var (
			err   error
			once  sync.Once
			value *WeightOverride
		)
		m.oldValue = func(ctx context.Context) (*WeightOverride, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WeightOverride.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWeightOverride sets the old WeightOverride of the mutation.
func withWeightOverride(node *WeightOverride) weightoverrideOption {
	return func(m *WeightOverrideMutation) {
		m.oldValue = func(context.Context) (*WeightOverride, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WeightOverrideMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WeightOverrideMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WeightOverrideMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WeightOverrideMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WeightOverride.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetConceptID sets the "concept_id" field.
func (m *WeightOverrideMutation) SetConceptID(s string) {
	m.concept_id = &s
}

// ConceptID returns the value of the "concept_id" field in the mutation.
func (m *WeightOverrideMutation) ConceptID() (r string, exists bool) {
	v := m.concept_id
	if v == nil {
		return
	}
	return *v, true
}

// OldConceptID returns the old "concept_id" field's value of the WeightOverride entity.
// If the WeightOverride object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeightOverrideMutation) OldConceptID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConceptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConceptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConceptID: %w", err)
	}
	return oldValue.ConceptID, nil
}

// ResetConceptID resets all changes to the "concept_id" field.
func (m *WeightOverrideMutation) ResetConceptID() {
	m.concept_id = nil
}

// SetWeight sets the "weight" field.
func (m *WeightOverrideMutation) SetWeight(f float64) {
	m.weight = &f
	m.addweight = nil
}

// Weight returns the value of the "weight" field in the mutation.
func (m *WeightOverrideMutation) Weight() (r float64, exists bool) {
	v := m.weight
	if v == nil {
		return
	}
	return *v, true
}

// OldWeight returns the old "weight" field's value of the WeightOverride entity.
// If the WeightOverride object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeightOverrideMutation) OldWeight(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeight is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeight requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeight: %w", err)
	}
	return oldValue.Weight, nil
}

// AddWeight adds f to the "weight" field.
func (m *WeightOverrideMutation) AddWeight(f float64) {
	if m.addweight != nil {
		*m.addweight += f
	} else {
		m.addweight = &f
	}
}

// AddedWeight returns the value that was added to the "weight" field in this mutation.
func (m *WeightOverrideMutation) AddedWeight() (r float64, exists bool) {
	v := m.addweight
	if v == nil {
		return
	}
	return *v, true
}

// ResetWeight resets all changes to the "weight" field.
func (m *WeightOverrideMutation) ResetWeight() {
	m.weight = nil
	m.addweight = nil
}

// Where appends a list predicates to the WeightOverrideMutation builder.
func (m *WeightOverrideMutation) Where(ps ...predicate.WeightOverride) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WeightOverrideMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WeightOverrideMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WeightOverride, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WeightOverrideMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WeightOverrideMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WeightOverride).
func (m *WeightOverrideMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WeightOverrideMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.concept_id != nil {
		fields = append(fields, weightoverride.FieldConceptID)
	}
	if m.weight != nil {
		fields = append(fields, weightoverride.FieldWeight)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WeightOverrideMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case weightoverride.FieldConceptID:
		return m.ConceptID()
	case weightoverride.FieldWeight:
		return m.Weight()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WeightOverrideMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case weightoverride.FieldConceptID:
		return m.OldConceptID(ctx)
	case weightoverride.FieldWeight:
		return m.OldWeight(ctx)
	}
	return nil, fmt.Errorf("unknown WeightOverride field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WeightOverrideMutation) SetField(name string, value ent.Value) error {
	switch name {
	case weightoverride.FieldConceptID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConceptID(v)
		return nil
	case weightoverride.FieldWeight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeight(v)
		return nil
	}
	return fmt.Errorf("unknown WeightOverride field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WeightOverrideMutation) AddedFields() []string {
	var fields []string
	if m.addweight != nil {
		fields = append(fields, weightoverride.FieldWeight)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WeightOverrideMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case weightoverride.FieldWeight:
		return m.AddedWeight()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WeightOverrideMutation) AddField(name string, value ent.Value) error {
	switch name {
	case weightoverride.FieldWeight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWeight(v)
		return nil
	}
	return fmt.Errorf("unknown WeightOverride numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WeightOverrideMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WeightOverrideMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WeightOverrideMutation) ClearField(name string) error {
	return fmt.Errorf("unknown WeightOverride nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WeightOverrideMutation) ResetField(name string) error {
	switch name {
	case weightoverride.FieldConceptID:
		m.ResetConceptID()
		return nil
	case weightoverride.FieldWeight:
		m.ResetWeight()
		return nil
	}
	return fmt.Errorf("unknown WeightOverride field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WeightOverrideMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WeightOverrideMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WeightOverrideMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WeightOverrideMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WeightOverrideMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WeightOverrideMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WeightOverrideMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown WeightOverride unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WeightOverrideMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown WeightOverride edge %s", name)
}
