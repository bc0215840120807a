package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"optiroute/types"
)

// CreateHospital validates capacity invariants and writes the document.
func (s *Store) CreateHospital(ctx context.Context, h types.Hospital) (*types.Hospital, error) {
	if err := validateBeds(h); err != nil {
		return nil, err
	}

	h.HospitalID = uuid.NewString()
	h.CreatedAt = time.Now().UTC()
	h.UpdatedAt = h.CreatedAt

	_, err := s.client.Collection(colHospitals).Doc(h.HospitalID).Set(ctx, h)
	if err != nil {
		return nil, fmt.Errorf("failed to create hospital: %w", err)
	}
	return &h, nil
}

func (s *Store) GetHospital(ctx context.Context, id string) (*types.Hospital, error) {
	doc, err := s.client.Collection(colHospitals).Doc(id).Get(ctx)
	if err != nil {
		return nil, err
	}

	var h types.Hospital
	if err := doc.DataTo(&h); err != nil {
		return nil, fmt.Errorf("failed to parse hospital: %w", err)
	}
	h.HospitalID = doc.Ref.ID
	return &h, nil
}

func (s *Store) ListHospitals(ctx context.Context) ([]types.Hospital, error) {
	var hospitals []types.Hospital
	iter := s.client.Collection(colHospitals).Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error iterating hospitals: %w", err)
		}

		var h types.Hospital
		if err := doc.DataTo(&h); err != nil {
			return nil, fmt.Errorf("failed to parse hospital %s: %w", doc.Ref.ID, err)
		}
		h.HospitalID = doc.Ref.ID
		hospitals = append(hospitals, h)
	}
	return hospitals, nil
}

// UpdateHospital replaces the document with the full resource the handler
// bound, keeping the original creation time. A missing document is an
// error, not an upsert.
func (s *Store) UpdateHospital(ctx context.Context, h types.Hospital) (*types.Hospital, error) {
	if err := validateBeds(h); err != nil {
		return nil, err
	}

	existing, err := s.GetHospital(ctx, h.HospitalID)
	if err != nil {
		return nil, err
	}
	h.CreatedAt = existing.CreatedAt
	h.UpdatedAt = time.Now().UTC()

	_, err = s.client.Collection(colHospitals).Doc(h.HospitalID).Set(ctx, h)
	if err != nil {
		return nil, fmt.Errorf("failed to update hospital: %w", err)
	}
	return &h, nil
}

func (s *Store) DeleteHospital(ctx context.Context, id string) error {
	_, err := s.client.Collection(colHospitals).Doc(id).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete hospital: %w", err)
	}
	return nil
}

// validateBeds enforces what the dashboards assume: availability never
// exceeds capacity.
func validateBeds(h types.Hospital) error {
	if h.TotalBeds < 0 || h.ICUBeds < 0 || h.AvailableBeds < 0 || h.AvailableICUBeds < 0 {
		return fmt.Errorf("bed counts must be non-negative")
	}
	if h.AvailableBeds > h.TotalBeds {
		return fmt.Errorf("available_beds (%d) exceeds total_beds (%d)", h.AvailableBeds, h.TotalBeds)
	}
	if h.AvailableICUBeds > h.ICUBeds {
		return fmt.Errorf("available_icu_beds (%d) exceeds icu_beds (%d)", h.AvailableICUBeds, h.ICUBeds)
	}
	return nil
}
