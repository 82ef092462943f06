// Package store bridges validated entities and the MongoDB collections
// backing them. It exposes insert/find primitives only; every read path
// maps documents to their public shape before returning them.
package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrNotConfigured means the store connection was never established.
	ErrNotConfigured = errors.New("database not configured")
	// ErrNotFound covers both a missing document and a malformed id.
	ErrNotFound = errors.New("not found")
)

// Store wraps the shared database handle acquired at process start. A nil
// handle is valid: the process runs degraded and every operation reports
// ErrNotConfigured.
type Store struct {
	db *mongo.Database
}

func New(db *mongo.Database) *Store {
	return &Store{db: db}
}

// Configured reports whether a database handle was injected.
func (s *Store) Configured() bool {
	return s.db != nil
}

// Insert persists one document and returns its generated id as hex.
func (s *Store) Insert(ctx context.Context, collection string, doc any) (string, error) {
	if s.db == nil {
		return "", ErrNotConfigured
	}

	result, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("failed to insert into %s: %w", collection, err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprint(result.InsertedID), nil
}

// Find runs a filter query and returns a lazy, one-pass sequence of public
// documents. The caller must drain or Close it; iterating again requires a
// new Find.
func (s *Store) Find(ctx context.Context, collection string, filter bson.M) (Seq, error) {
	if s.db == nil {
		return nil, ErrNotConfigured
	}

	cursor, err := s.db.Collection(collection).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", collection, err)
	}
	return &cursorSeq{cursor: cursor}, nil
}

// FindByID fetches a single document by its hex id. A malformed id and a
// missing document both report ErrNotFound; the caller cannot tell them
// apart and does not need to.
func (s *Store) FindByID(ctx context.Context, collection, id string) (PublicDoc, error) {
	if s.db == nil {
		return nil, ErrNotConfigured
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid id %q", ErrNotFound, id)
	}

	var doc bson.M
	err = s.db.Collection(collection).FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: no document %s in %s", ErrNotFound, id, collection)
		}
		return nil, fmt.Errorf("failed to fetch from %s: %w", collection, err)
	}
	return ToPublic(doc), nil
}

// Count returns the number of documents matching filter.
func (s *Store) Count(ctx context.Context, collection string, filter bson.M) (int64, error) {
	if s.db == nil {
		return 0, ErrNotConfigured
	}

	n, err := s.db.Collection(collection).CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", collection, err)
	}
	return n, nil
}

// Ping checks that the store is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if s.db == nil {
		return ErrNotConfigured
	}
	return s.db.Client().Ping(ctx, nil)
}

// Collections lists the collection names present in the database.
func (s *Store) Collections(ctx context.Context) ([]string, error) {
	if s.db == nil {
		return nil, ErrNotConfigured
	}

	names, err := s.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	return names, nil
}
