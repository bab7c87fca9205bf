package store

import (
	"context"
	"fmt"

	"github.com/kunalarora/studypath/ent"
	"github.com/kunalarora/studypath/ent/weightoverride"
)

// overrideRepo implements OverrideRepo using the ent client.
type overrideRepo struct {
	client *ent.Client
}

func (r *overrideRepo) Set(ctx context.Context, conceptID string, weight float64) error {
	n, err := r.client.WeightOverride.Update().
		Where(weightoverride.ConceptID(conceptID)).
		SetWeight(weight).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update override %q: %w", conceptID, err)
	}
	if n > 0 {
		return nil
	}

	_, err = r.client.WeightOverride.Create().
		SetConceptID(conceptID).
		SetWeight(weight).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create override %q: %w", conceptID, err)
	}
	return nil
}

func (r *overrideRepo) Clear(ctx context.Context, conceptID string) error {
	_, err := r.client.WeightOverride.Delete().
		Where(weightoverride.ConceptID(conceptID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("clear override %q: %w", conceptID, err)
	}
	return nil
}

func (r *overrideRepo) LoadAll(ctx context.Context) (map[string]float64, error) {
	rows, err := r.client.WeightOverride.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query overrides: %w", err)
	}
	out := make(map[string]float64, len(rows))
	for _, row := range rows {
		out[row.ConceptID] = row.Weight
	}
	return out, nil
}
