package db

import (
	"context"
	"fmt"
	"time"

	"optiroute/types"
)

// StatSnapshot is a point-in-time aggregate written by the cron job so the
// dashboard can chart history without rescanning collections.
type StatSnapshot struct {
	TakenAt  time.Time           `firestore:"takenAt"`
	Hospital types.HospitalStats `firestore:"hospital"`
	Waste    types.WasteStats    `firestore:"waste"`
	Shelter  types.ShelterStats  `firestore:"shelter"`
}

func (s *Store) WriteStatSnapshot(ctx context.Context, snap StatSnapshot) error {
	docID := snap.TakenAt.UTC().Format(time.RFC3339)
	_, err := s.client.Collection(colStats).Doc(docID).Set(ctx, snap)
	if err != nil {
		return fmt.Errorf("failed to write stat snapshot: %w", err)
	}
	return nil
}
