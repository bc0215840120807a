package db

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"optiroute/types"
)

// In-memory repos for tests and keyless local runs. Same semantics as the
// Firestore implementations, minus persistence.

type MemoryOperationRepo struct {
	mu  sync.RWMutex
	ops map[string]types.Operation
}

func NewMemoryOperationRepo() *MemoryOperationRepo {
	return &MemoryOperationRepo{ops: make(map[string]types.Operation)}
}

func (r *MemoryOperationRepo) Create(ctx context.Context, op types.Operation) (*types.Operation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	op.ID = uuid.NewString()
	op.CreatedAt = time.Now().UTC()
	op.UpdatedAt = op.CreatedAt
	if op.Status == "" {
		op.Status = types.OperationPlanned
	}
	r.ops[op.ID] = op
	return &op, nil
}

func (r *MemoryOperationRepo) Get(ctx context.Context, id string) (*types.Operation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	op, ok := r.ops[id]
	if !ok {
		return nil, fmt.Errorf("operation %s not found", id)
	}
	return &op, nil
}

func (r *MemoryOperationRepo) Update(ctx context.Context, op types.Operation) (*types.Operation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.ops[op.ID]
	if !ok {
		return nil, fmt.Errorf("operation %s not found", op.ID)
	}
	op.CreatedAt = existing.CreatedAt
	op.UpdatedAt = time.Now().UTC()
	r.ops[op.ID] = op
	return &op, nil
}

func (r *MemoryOperationRepo) List(ctx context.Context, ngoID string) ([]types.Operation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var ops []types.Operation
	for _, op := range r.ops {
		if ngoID == "" || op.NGOID == ngoID {
			ops = append(ops, op)
		}
	}
	return ops, nil
}

type MemoryVolunteerRepo struct {
	mu         sync.RWMutex
	volunteers map[string]types.Volunteer
}

func NewMemoryVolunteerRepo() *MemoryVolunteerRepo {
	return &MemoryVolunteerRepo{volunteers: make(map[string]types.Volunteer)}
}

func (r *MemoryVolunteerRepo) Create(ctx context.Context, v types.Volunteer) (*types.Volunteer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	v.ID = uuid.NewString()
	v.JoinedAt = time.Now().UTC()
	if v.Status == "" {
		v.Status = "active"
	}
	r.volunteers[v.ID] = v
	return &v, nil
}

func (r *MemoryVolunteerRepo) Get(ctx context.Context, id string) (*types.Volunteer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.volunteers[id]
	if !ok {
		return nil, fmt.Errorf("volunteer %s not found", id)
	}
	return &v, nil
}

func (r *MemoryVolunteerRepo) Update(ctx context.Context, v types.Volunteer) (*types.Volunteer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.volunteers[v.ID]
	if !ok {
		return nil, fmt.Errorf("volunteer %s not found", v.ID)
	}
	v.JoinedAt = existing.JoinedAt
	r.volunteers[v.ID] = v
	return &v, nil
}

func (r *MemoryVolunteerRepo) List(ctx context.Context, ngoID string) ([]types.Volunteer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var volunteers []types.Volunteer
	for _, v := range r.volunteers {
		if ngoID == "" || v.NGOID == ngoID {
			volunteers = append(volunteers, v)
		}
	}
	return volunteers, nil
}
