package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

// Seq is a lazy, finite, one-pass sequence of public documents produced by
// a find query. It is not restartable: once drained, a new query is needed.
type Seq interface {
	// Next advances to the next document, reporting false when the
	// sequence is exhausted or failed. Check Err after a false return.
	Next(ctx context.Context) bool
	// Doc returns the document Next positioned on.
	Doc() PublicDoc
	Err() error
	Close(ctx context.Context) error
}

// cursorSeq adapts a mongo cursor, mapping each document to its public
// shape as it is yielded.
type cursorSeq struct {
	cursor interface {
		Next(ctx context.Context) bool
		Decode(val any) error
		Err() error
		Close(ctx context.Context) error
	}
	doc PublicDoc
	err error
}

func (s *cursorSeq) Next(ctx context.Context) bool {
	if s.err != nil {
		return false
	}
	if !s.cursor.Next(ctx) {
		return false
	}

	var raw bson.M
	if err := s.cursor.Decode(&raw); err != nil {
		s.err = err
		return false
	}
	s.doc = ToPublic(raw)
	return true
}

func (s *cursorSeq) Doc() PublicDoc { return s.doc }

func (s *cursorSeq) Err() error {
	if s.err != nil {
		return s.err
	}
	return s.cursor.Err()
}

func (s *cursorSeq) Close(ctx context.Context) error {
	return s.cursor.Close(ctx)
}

// Drain collects the remainder of a sequence into a slice and closes it.
// The result is never nil, so an empty query serializes as [].
func Drain(ctx context.Context, seq Seq) ([]PublicDoc, error) {
	defer seq.Close(ctx)

	docs := []PublicDoc{}
	for seq.Next(ctx) {
		docs = append(docs, seq.Doc())
	}
	if err := seq.Err(); err != nil {
		return nil, err
	}
	return docs, nil
}
