package db

import (
	"context"
	"encoding/base64"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Collection names.
const (
	colUsers       = "users"
	colHospitals   = "hospitals"
	colDoctors     = "doctors"
	colPatients    = "patients"
	colInventory   = "inventory"
	colDemands     = "demands"
	colPartners    = "logisticsPartners"
	colStorage     = "storageSites"
	colFarmers     = "farmers"
	colAllocations = "allocations"
	colOperations  = "ngoOperations"
	colVolunteers  = "ngoVolunteers"
	colStats       = "statSnapshots"
)

// Store wraps the Firestore client. One Store is constructed in main and
// handed to handlers; there is no package-level client.
type Store struct {
	client *firestore.Client
}

// NewStore initializes Firestore from base64-encoded service-account JSON.
func NewStore(ctx context.Context, encodedCreds string) (*Store, error) {
	creds, err := base64.StdEncoding.DecodeString(encodedCreds)
	if err != nil {
		return nil, fmt.Errorf("failed to decode Firestore credentials: %w", err)
	}

	opt := option.WithCredentialsJSON(creds)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("error initializing Firebase app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting Firestore client: %w", err)
	}

	return &Store{client: client}, nil
}

func (s *Store) Close() error {
	return s.client.Close()
}

// IsNotFound reports whether err is a Firestore missing-document error.
func IsNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}
