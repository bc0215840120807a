package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"optiroute/types"
)

func (s *Store) CreateAllocation(ctx context.Context, a types.Allocation) (*types.Allocation, error) {
	a.AllocationID = uuid.NewString()
	a.CreatedAt = time.Now().UTC()

	_, err := s.client.Collection(colAllocations).Doc(a.AllocationID).Set(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("failed to create allocation: %w", err)
	}
	return &a, nil
}

func (s *Store) GetAllocation(ctx context.Context, id string) (*types.Allocation, error) {
	doc, err := s.client.Collection(colAllocations).Doc(id).Get(ctx)
	if err != nil {
		return nil, err
	}

	var a types.Allocation
	if err := doc.DataTo(&a); err != nil {
		return nil, fmt.Errorf("failed to parse allocation: %w", err)
	}
	a.AllocationID = doc.Ref.ID
	return &a, nil
}

func (s *Store) ListAllocations(ctx context.Context) ([]types.Allocation, error) {
	docs, err := s.client.Collection(colAllocations).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list allocations: %w", err)
	}

	var allocations []types.Allocation
	for _, doc := range docs {
		var a types.Allocation
		if err := doc.DataTo(&a); err != nil {
			return nil, fmt.Errorf("failed to parse allocation %s: %w", doc.Ref.ID, err)
		}
		a.AllocationID = doc.Ref.ID
		allocations = append(allocations, a)
	}
	return allocations, nil
}
