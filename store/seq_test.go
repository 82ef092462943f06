package store

import (
	"context"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeCursor satisfies the cursor contract cursorSeq adapts.
type fakeCursor struct {
	docs   []bson.M
	pos    int
	closed bool
}

func (f *fakeCursor) Next(context.Context) bool {
	if f.pos >= len(f.docs) {
		return false
	}
	f.pos++
	return true
}

func (f *fakeCursor) Decode(val any) error {
	*(val.(*bson.M)) = f.docs[f.pos-1]
	return nil
}

func (f *fakeCursor) Err() error { return nil }

func (f *fakeCursor) Close(context.Context) error {
	f.closed = true
	return nil
}

func TestSeqYieldsPublicDocuments(t *testing.T) {
	oid := primitive.NewObjectID()
	seq := &cursorSeq{cursor: &fakeCursor{docs: []bson.M{
		{"_id": oid, "title": "Home Kit"},
	}}}

	ctx := context.Background()
	if !seq.Next(ctx) {
		t.Fatal("expected one document")
	}
	doc := seq.Doc()
	if doc["id"] != oid.Hex() {
		t.Errorf("id = %v, want %s", doc["id"], oid.Hex())
	}
	if seq.Next(ctx) {
		t.Error("sequence should be exhausted after one document")
	}
	if err := seq.Err(); err != nil {
		t.Errorf("Err() = %v", err)
	}
}

func TestSeqIsOnePass(t *testing.T) {
	seq := &cursorSeq{cursor: &fakeCursor{docs: []bson.M{
		{"_id": primitive.NewObjectID()},
		{"_id": primitive.NewObjectID()},
	}}}

	ctx := context.Background()
	n := 0
	for seq.Next(ctx) {
		n++
	}
	if n != 2 {
		t.Fatalf("drained %d documents, want 2", n)
	}
	// Exhausted for good: a second pass yields nothing.
	if seq.Next(ctx) {
		t.Error("a drained sequence must not restart")
	}
}

func TestDrainClosesAndNeverReturnsNil(t *testing.T) {
	cursor := &fakeCursor{}
	docs, err := Drain(context.Background(), &cursorSeq{cursor: cursor})
	if err != nil {
		t.Fatalf("Drain returned error: %v", err)
	}
	if docs == nil {
		t.Error("Drain must return an empty slice, not nil")
	}
	if !cursor.closed {
		t.Error("Drain must close the sequence")
	}
}
