package db

import (
	"context"
	"net"
	"sync"
	"testing"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/firestore/apiv1/firestorepb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/timestamppb"

	"optiroute/types"
)

// fakeFirestore implements the handful of RPCs the Store issues, so the
// real client write path (including its client-side data validation) can be
// exercised without an emulator.
type fakeFirestore struct {
	firestorepb.UnimplementedFirestoreServer

	mu   sync.Mutex
	docs map[string]*firestorepb.Document
}

func newFakeFirestore() *fakeFirestore {
	return &fakeFirestore{docs: make(map[string]*firestorepb.Document)}
}

func (f *fakeFirestore) BatchGetDocuments(req *firestorepb.BatchGetDocumentsRequest, stream firestorepb.Firestore_BatchGetDocumentsServer) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, name := range req.Documents {
		resp := &firestorepb.BatchGetDocumentsResponse{ReadTime: timestamppb.Now()}
		if doc, ok := f.docs[name]; ok {
			resp.Result = &firestorepb.BatchGetDocumentsResponse_Found{Found: doc}
		} else {
			resp.Result = &firestorepb.BatchGetDocumentsResponse_Missing{Missing: name}
		}
		if err := stream.Send(resp); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeFirestore) Commit(ctx context.Context, req *firestorepb.CommitRequest) (*firestorepb.CommitResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	now := timestamppb.Now()
	results := make([]*firestorepb.WriteResult, 0, len(req.Writes))
	for _, w := range req.Writes {
		switch op := w.Operation.(type) {
		case *firestorepb.Write_Update:
			doc := &firestorepb.Document{
				Name:       op.Update.Name,
				Fields:     op.Update.Fields,
				CreateTime: now,
				UpdateTime: now,
			}
			if existing, ok := f.docs[op.Update.Name]; ok {
				doc.CreateTime = existing.CreateTime
				if w.UpdateMask != nil {
					fields := make(map[string]*firestorepb.Value, len(existing.Fields))
					for k, v := range existing.Fields {
						fields[k] = v
					}
					for _, p := range w.UpdateMask.FieldPaths {
						if v, ok := op.Update.Fields[p]; ok {
							fields[p] = v
						} else {
							delete(fields, p)
						}
					}
					doc.Fields = fields
				}
			}
			f.docs[op.Update.Name] = doc
		case *firestorepb.Write_Delete:
			delete(f.docs, op.Delete)
		default:
			return nil, status.Errorf(codes.Unimplemented, "write type %T", op)
		}
		results = append(results, &firestorepb.WriteResult{UpdateTime: now})
	}
	return &firestorepb.CommitResponse{WriteResults: results, CommitTime: now}, nil
}

func testStore(t *testing.T) *Store {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	firestorepb.RegisterFirestoreServer(srv, newFakeFirestore())
	go srv.Serve(lis)
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	client, err := firestore.NewClient(context.Background(), "test-project", option.WithGRPCConn(conn))
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	return &Store{client: client}
}

func TestUpdateHospital(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	created, err := store.CreateHospital(ctx, types.Hospital{
		Name:          "Central General",
		Address:       "1 Marina Rd",
		TotalBeds:     100,
		AvailableBeds: 60,
	})
	require.NoError(t, err)

	t.Run("replaces the document and keeps the creation time", func(t *testing.T) {
		changed := *created
		changed.AvailableBeds = 10
		updated, err := store.UpdateHospital(ctx, changed)
		require.NoError(t, err)
		assert.Equal(t, 10, updated.AvailableBeds)
		assert.True(t, updated.CreatedAt.Equal(created.CreatedAt))

		got, err := store.GetHospital(ctx, created.HospitalID)
		require.NoError(t, err)
		assert.Equal(t, 10, got.AvailableBeds)
		assert.True(t, got.CreatedAt.Equal(created.CreatedAt))
	})

	t.Run("missing hospital is not found, not an upsert", func(t *testing.T) {
		_, err := store.UpdateHospital(ctx, types.Hospital{
			HospitalID:    "nope",
			Name:          "Ghost",
			TotalBeds:     10,
			AvailableBeds: 5,
		})
		require.Error(t, err)
		assert.True(t, IsNotFound(err))
	})
}

func TestUpdateDoctor(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	created, err := store.CreateDoctor(ctx, types.Doctor{Name: "Dr. Rao", Specialization: "cardiology"})
	require.NoError(t, err)

	changed := *created
	changed.Status = types.DoctorOnDuty
	updated, err := store.UpdateDoctor(ctx, changed)
	require.NoError(t, err)
	assert.Equal(t, types.DoctorOnDuty, updated.Status)

	_, err = store.UpdateDoctor(ctx, types.Doctor{DoctorID: "nope", Name: "Ghost"})
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestFirestoreOperationRepoUpdate(t *testing.T) {
	store := testStore(t)
	repo := NewOperationRepo(store)
	ctx := context.Background()

	created, err := repo.Create(ctx, types.Operation{NGOID: "ngo-1", Title: "Flood relief camp", Progress: 10})
	require.NoError(t, err)

	t.Run("keeps creation time and bumps the update time", func(t *testing.T) {
		changed := *created
		changed.Progress = 70
		changed.Status = types.OperationActive
		updated, err := repo.Update(ctx, changed)
		require.NoError(t, err)
		assert.Equal(t, 70, updated.Progress)
		assert.True(t, updated.CreatedAt.Equal(created.CreatedAt))
		assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
	})

	t.Run("missing operation fails like the in-memory repo", func(t *testing.T) {
		_, err := repo.Update(ctx, types.Operation{ID: "nope", Title: "ghost"})
		require.Error(t, err)
		assert.True(t, IsNotFound(err))
	})
}

func TestFirestoreVolunteerRepoUpdate(t *testing.T) {
	store := testStore(t)
	repo := NewVolunteerRepo(store)
	ctx := context.Background()

	created, err := repo.Create(ctx, types.Volunteer{NGOID: "ngo-1", Name: "Priya"})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, types.Volunteer{ID: created.ID, NGOID: "ngo-1", Name: "Priya", Skills: []string{"first aid"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"first aid"}, updated.Skills)
	assert.True(t, updated.JoinedAt.Equal(created.JoinedAt))
}

func TestMergeUserFields(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	user := types.User{UID: "u1", Email: "relief@example.org", DisplayName: "A", Role: types.RoleFarmer, RoleName: "farmer"}
	require.NoError(t, store.CreateUser(ctx, user))

	require.NoError(t, store.MergeUserFields(ctx, "u1", map[string]interface{}{"roleName": "warehouse"}))

	got, err := store.GetUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "relief@example.org", got.Email)
	assert.Equal(t, "warehouse", got.RoleName)
}
