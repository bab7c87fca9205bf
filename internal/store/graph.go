package store

import (
	"context"
	"fmt"

	"github.com/kunalarora/studypath/ent"
	"github.com/kunalarora/studypath/ent/concept"
	"github.com/kunalarora/studypath/ent/dependencyedge"
	"github.com/kunalarora/studypath/internal/conceptgraph"
)

// graphRepo implements GraphRepo using the ent client.
type graphRepo struct {
	client *ent.Client
}

func (r *graphRepo) SaveGraph(ctx context.Context, concepts []conceptgraph.Concept, edges []conceptgraph.Edge) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	rollback := func(err error) error {
		if rerr := tx.Rollback(); rerr != nil {
			return fmt.Errorf("%w: rollback failed: %v", err, rerr)
		}
		return err
	}

	if _, err := tx.DependencyEdge.Delete().Exec(ctx); err != nil {
		return rollback(fmt.Errorf("clear edges: %w", err))
	}
	if _, err := tx.Concept.Delete().Exec(ctx); err != nil {
		return rollback(fmt.Errorf("clear concepts: %w", err))
	}

	for _, c := range concepts {
		_, err := tx.Concept.Create().
			SetConceptID(c.ID).
			SetName(c.Name).
			SetDescription(c.Description).
			SetComplexity(c.Complexity).
			Save(ctx)
		if err != nil {
			return rollback(fmt.Errorf("save concept %q: %w", c.ID, err))
		}
	}
	for _, e := range edges {
		_, err := tx.DependencyEdge.Create().
			SetPrerequisiteID(e.Prerequisite).
			SetDependentID(e.Dependent).
			SetStrength(e.Strength).
			Save(ctx)
		if err != nil {
			return rollback(fmt.Errorf("save edge %q -> %q: %w", e.Prerequisite, e.Dependent, err))
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit graph: %w", err)
	}
	return nil
}

func (r *graphRepo) LoadGraph(ctx context.Context) ([]conceptgraph.Concept, []conceptgraph.Edge, error) {
	rows, err := r.client.Concept.Query().
		Order(ent.Asc(concept.FieldConceptID)).
		All(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("query concepts: %w", err)
	}
	concepts := make([]conceptgraph.Concept, 0, len(rows))
	for _, row := range rows {
		concepts = append(concepts, conceptgraph.Concept{
			ID:          row.ConceptID,
			Name:        row.Name,
			Description: row.Description,
			Complexity:  row.Complexity,
		})
	}

	edgeRows, err := r.client.DependencyEdge.Query().
		Order(ent.Asc(dependencyedge.FieldPrerequisiteID), ent.Asc(dependencyedge.FieldDependentID)).
		All(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("query edges: %w", err)
	}
	edges := make([]conceptgraph.Edge, 0, len(edgeRows))
	for _, row := range edgeRows {
		edges = append(edges, conceptgraph.Edge{
			Prerequisite: row.PrerequisiteID,
			Dependent:    row.DependentID,
			Strength:     row.Strength,
		})
	}
	return concepts, edges, nil
}
