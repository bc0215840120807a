package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"optiroute/types"
)

func (s *Store) CreateDoctor(ctx context.Context, d types.Doctor) (*types.Doctor, error) {
	d.DoctorID = uuid.NewString()
	if d.Status == "" {
		d.Status = types.DoctorOffDuty
	}

	_, err := s.client.Collection(colDoctors).Doc(d.DoctorID).Set(ctx, d)
	if err != nil {
		return nil, fmt.Errorf("failed to create doctor: %w", err)
	}
	return &d, nil
}

func (s *Store) GetDoctor(ctx context.Context, id string) (*types.Doctor, error) {
	doc, err := s.client.Collection(colDoctors).Doc(id).Get(ctx)
	if err != nil {
		return nil, err
	}

	var d types.Doctor
	if err := doc.DataTo(&d); err != nil {
		return nil, fmt.Errorf("failed to parse doctor: %w", err)
	}
	d.DoctorID = doc.Ref.ID
	return &d, nil
}

// ListDoctors returns all doctors, optionally scoped to one hospital.
func (s *Store) ListDoctors(ctx context.Context, hospitalID string) ([]types.Doctor, error) {
	query := s.client.Collection(colDoctors).Query
	if hospitalID != "" {
		query = query.Where("hospitalId", "==", hospitalID)
	}

	var doctors []types.Doctor
	iter := query.Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error iterating doctors: %w", err)
		}

		var d types.Doctor
		if err := doc.DataTo(&d); err != nil {
			return nil, fmt.Errorf("failed to parse doctor %s: %w", doc.Ref.ID, err)
		}
		d.DoctorID = doc.Ref.ID
		doctors = append(doctors, d)
	}
	return doctors, nil
}

// UpdateDoctor replaces the document. Handlers bind the full resource, so
// there is nothing to merge; a missing document is an error.
func (s *Store) UpdateDoctor(ctx context.Context, d types.Doctor) (*types.Doctor, error) {
	if _, err := s.GetDoctor(ctx, d.DoctorID); err != nil {
		return nil, err
	}

	_, err := s.client.Collection(colDoctors).Doc(d.DoctorID).Set(ctx, d)
	if err != nil {
		return nil, fmt.Errorf("failed to update doctor: %w", err)
	}
	return &d, nil
}

func (s *Store) DeleteDoctor(ctx context.Context, id string) error {
	_, err := s.client.Collection(colDoctors).Doc(id).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete doctor: %w", err)
	}
	return nil
}
