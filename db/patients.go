package db

import (
	"context"
	"fmt"

	"google.golang.org/api/iterator"

	"optiroute/types"
)

// ListPatients is read-only; patient documents are written by the hospital
// intake systems, not this service.
func (s *Store) ListPatients(ctx context.Context, hospitalID string) ([]types.Patient, error) {
	query := s.client.Collection(colPatients).Query
	if hospitalID != "" {
		query = query.Where("hospitalId", "==", hospitalID)
	}

	var patients []types.Patient
	iter := query.Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error iterating patients: %w", err)
		}

		var p types.Patient
		if err := doc.DataTo(&p); err != nil {
			return nil, fmt.Errorf("failed to parse patient %s: %w", doc.Ref.ID, err)
		}
		p.PatientID = doc.Ref.ID
		patients = append(patients, p)
	}
	return patients, nil
}
