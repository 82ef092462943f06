package handlers

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mcalger/store-backend-go/store"
)

// memStore is the in-memory Store the handler tests run against. Fixture
// documents are added with add(); documents persisted by handlers are
// captured in inserted, keyed by collection.
type memStore struct {
	configured bool
	docs       map[string]map[string]store.PublicDoc
	inserted   map[string][]any
}

func newMemStore() *memStore {
	return &memStore{
		configured: true,
		docs:       map[string]map[string]store.PublicDoc{},
		inserted:   map[string][]any{},
	}
}

func (m *memStore) add(collection string, doc store.PublicDoc) string {
	id := primitive.NewObjectID().Hex()
	doc["id"] = id
	if m.docs[collection] == nil {
		m.docs[collection] = map[string]store.PublicDoc{}
	}
	m.docs[collection][id] = doc
	return id
}

func (m *memStore) Configured() bool { return m.configured }

func (m *memStore) Insert(_ context.Context, collection string, doc any) (string, error) {
	if !m.configured {
		return "", store.ErrNotConfigured
	}
	m.inserted[collection] = append(m.inserted[collection], doc)
	return primitive.NewObjectID().Hex(), nil
}

func (m *memStore) Find(_ context.Context, collection string, filter bson.M) (store.Seq, error) {
	if !m.configured {
		return nil, store.ErrNotConfigured
	}

	var out []store.PublicDoc
	for _, doc := range m.docs[collection] {
		if matches(doc, filter) {
			out = append(out, doc)
		}
	}
	return &memSeq{docs: out}, nil
}

func (m *memStore) FindByID(_ context.Context, collection, id string) (store.PublicDoc, error) {
	if !m.configured {
		return nil, store.ErrNotConfigured
	}
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, fmt.Errorf("%w: invalid id %q", store.ErrNotFound, id)
	}
	doc, ok := m.docs[collection][id]
	if !ok {
		return nil, fmt.Errorf("%w: no document %s in %s", store.ErrNotFound, id, collection)
	}
	return doc, nil
}

func (m *memStore) Count(_ context.Context, collection string, _ bson.M) (int64, error) {
	if !m.configured {
		return 0, store.ErrNotConfigured
	}
	return int64(len(m.docs[collection]) + len(m.inserted[collection])), nil
}

func (m *memStore) Ping(context.Context) error {
	if !m.configured {
		return store.ErrNotConfigured
	}
	return nil
}

func (m *memStore) Collections(context.Context) ([]string, error) {
	if !m.configured {
		return nil, store.ErrNotConfigured
	}
	names := []string{}
	for name := range m.docs {
		names = append(names, name)
	}
	return names, nil
}

// matches mirrors the filter semantics the handlers rely on: equality per
// key, substring regex for the title condition, array containment for
// sizes.
func matches(doc store.PublicDoc, filter bson.M) bool {
	for key, want := range filter {
		got := doc[key]
		switch w := want.(type) {
		case primitive.Regex:
			s, _ := got.(string)
			if !strings.Contains(strings.ToLower(s), strings.ToLower(w.Pattern)) {
				return false
			}
		default:
			if list, ok := got.([]string); ok {
				found := false
				for _, v := range list {
					if v == want {
						found = true
					}
				}
				if !found {
					return false
				}
				continue
			}
			if got != want {
				return false
			}
		}
	}
	return true
}

type memSeq struct {
	docs []store.PublicDoc
	pos  int
}

func (s *memSeq) Next(context.Context) bool {
	if s.pos >= len(s.docs) {
		return false
	}
	s.pos++
	return true
}

func (s *memSeq) Doc() store.PublicDoc        { return s.docs[s.pos-1] }
func (s *memSeq) Err() error                  { return nil }
func (s *memSeq) Close(context.Context) error { return nil }
