package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"optiroute/types"
)

// OperationRepo is the capability set the NGO handlers program against.
// The Firestore implementation is the default; the in-memory one backs
// tests and keyless local runs.
type OperationRepo interface {
	Create(ctx context.Context, op types.Operation) (*types.Operation, error)
	Get(ctx context.Context, id string) (*types.Operation, error)
	Update(ctx context.Context, op types.Operation) (*types.Operation, error)
	List(ctx context.Context, ngoID string) ([]types.Operation, error)
}

type VolunteerRepo interface {
	Create(ctx context.Context, v types.Volunteer) (*types.Volunteer, error)
	Get(ctx context.Context, id string) (*types.Volunteer, error)
	Update(ctx context.Context, v types.Volunteer) (*types.Volunteer, error)
	List(ctx context.Context, ngoID string) ([]types.Volunteer, error)
}

// --- Firestore implementations ---

type FirestoreOperationRepo struct {
	store *Store
}

func NewOperationRepo(store *Store) *FirestoreOperationRepo {
	return &FirestoreOperationRepo{store: store}
}

func (r *FirestoreOperationRepo) Create(ctx context.Context, op types.Operation) (*types.Operation, error) {
	op.ID = uuid.NewString()
	op.CreatedAt = time.Now().UTC()
	op.UpdatedAt = op.CreatedAt
	if op.Status == "" {
		op.Status = types.OperationPlanned
	}

	_, err := r.store.client.Collection(colOperations).Doc(op.ID).Set(ctx, op)
	if err != nil {
		return nil, fmt.Errorf("failed to create operation: %w", err)
	}
	return &op, nil
}

func (r *FirestoreOperationRepo) Get(ctx context.Context, id string) (*types.Operation, error) {
	doc, err := r.store.client.Collection(colOperations).Doc(id).Get(ctx)
	if err != nil {
		return nil, err
	}

	var op types.Operation
	if err := doc.DataTo(&op); err != nil {
		return nil, fmt.Errorf("failed to parse operation: %w", err)
	}
	op.ID = doc.Ref.ID
	return &op, nil
}

func (r *FirestoreOperationRepo) Update(ctx context.Context, op types.Operation) (*types.Operation, error) {
	existing, err := r.Get(ctx, op.ID)
	if err != nil {
		return nil, err
	}
	op.CreatedAt = existing.CreatedAt
	op.UpdatedAt = time.Now().UTC()

	_, err = r.store.client.Collection(colOperations).Doc(op.ID).Set(ctx, op)
	if err != nil {
		return nil, fmt.Errorf("failed to update operation: %w", err)
	}
	return &op, nil
}

func (r *FirestoreOperationRepo) List(ctx context.Context, ngoID string) ([]types.Operation, error) {
	query := r.store.client.Collection(colOperations).Query
	if ngoID != "" {
		query = query.Where("ngoId", "==", ngoID)
	}

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list operations: %w", err)
	}

	var ops []types.Operation
	for _, doc := range docs {
		var op types.Operation
		if err := doc.DataTo(&op); err != nil {
			return nil, fmt.Errorf("failed to parse operation %s: %w", doc.Ref.ID, err)
		}
		op.ID = doc.Ref.ID
		ops = append(ops, op)
	}
	return ops, nil
}

type FirestoreVolunteerRepo struct {
	store *Store
}

func NewVolunteerRepo(store *Store) *FirestoreVolunteerRepo {
	return &FirestoreVolunteerRepo{store: store}
}

func (r *FirestoreVolunteerRepo) Create(ctx context.Context, v types.Volunteer) (*types.Volunteer, error) {
	v.ID = uuid.NewString()
	v.JoinedAt = time.Now().UTC()
	if v.Status == "" {
		v.Status = "active"
	}

	_, err := r.store.client.Collection(colVolunteers).Doc(v.ID).Set(ctx, v)
	if err != nil {
		return nil, fmt.Errorf("failed to create volunteer: %w", err)
	}
	return &v, nil
}

func (r *FirestoreVolunteerRepo) Get(ctx context.Context, id string) (*types.Volunteer, error) {
	doc, err := r.store.client.Collection(colVolunteers).Doc(id).Get(ctx)
	if err != nil {
		return nil, err
	}

	var v types.Volunteer
	if err := doc.DataTo(&v); err != nil {
		return nil, fmt.Errorf("failed to parse volunteer: %w", err)
	}
	v.ID = doc.Ref.ID
	return &v, nil
}

func (r *FirestoreVolunteerRepo) Update(ctx context.Context, v types.Volunteer) (*types.Volunteer, error) {
	existing, err := r.Get(ctx, v.ID)
	if err != nil {
		return nil, err
	}
	v.JoinedAt = existing.JoinedAt

	_, err = r.store.client.Collection(colVolunteers).Doc(v.ID).Set(ctx, v)
	if err != nil {
		return nil, fmt.Errorf("failed to update volunteer: %w", err)
	}
	return &v, nil
}

func (r *FirestoreVolunteerRepo) List(ctx context.Context, ngoID string) ([]types.Volunteer, error) {
	query := r.store.client.Collection(colVolunteers).Query
	if ngoID != "" {
		query = query.Where("ngoId", "==", ngoID)
	}

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list volunteers: %w", err)
	}

	var volunteers []types.Volunteer
	for _, doc := range docs {
		var v types.Volunteer
		if err := doc.DataTo(&v); err != nil {
			return nil, fmt.Errorf("failed to parse volunteer %s: %w", doc.Ref.ID, err)
		}
		v.ID = doc.Ref.ID
		volunteers = append(volunteers, v)
	}
	return volunteers, nil
}
