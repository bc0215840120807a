package db

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"

	"optiroute/types"
)

// CreateUser writes a new user document keyed by uid.
func (s *Store) CreateUser(ctx context.Context, user types.User) error {
	_, err := s.client.Collection(colUsers).Doc(user.UID).Set(ctx, user)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetUser loads a user document by uid.
func (s *Store) GetUser(ctx context.Context, uid string) (*types.User, error) {
	doc, err := s.client.Collection(colUsers).Doc(uid).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	var user types.User
	if err := doc.DataTo(&user); err != nil {
		return nil, fmt.Errorf("failed to parse user: %w", err)
	}
	user.UID = doc.Ref.ID
	return &user, nil
}

// GetUserByEmail finds the user document with the given email, or a
// NotFound-style nil when no document matches.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*types.User, error) {
	docs, err := s.client.Collection(colUsers).
		Where("email", "==", email).
		Limit(1).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to query user by email: %w", err)
	}
	if len(docs) == 0 {
		return nil, nil
	}

	var user types.User
	if err := docs[0].DataTo(&user); err != nil {
		return nil, fmt.Errorf("failed to parse user: %w", err)
	}
	user.UID = docs[0].Ref.ID
	return &user, nil
}

// MergeUserFields merges arbitrary profile fields into the user document.
// This is how role profiles (farmer, warehouse, logistics) attach to a
// user without schema enforcement.
func (s *Store) MergeUserFields(ctx context.Context, uid string, fields map[string]interface{}) error {
	_, err := s.client.Collection(colUsers).Doc(uid).Set(ctx, fields, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to merge user fields: %w", err)
	}
	return nil
}
