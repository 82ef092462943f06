package store

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PublicDoc is a stored document shaped for external consumption: the
// internal "_id" key is exposed as the string field "id" instead.
type PublicDoc map[string]any

// ToPublic maps a raw document to its public shape. The rename is the only
// transformation; every other field passes through untouched.
func ToPublic(doc bson.M) PublicDoc {
	if doc == nil {
		return nil
	}

	out := make(PublicDoc, len(doc))
	for k, v := range doc {
		if k == "_id" {
			continue
		}
		out[k] = v
	}

	if id, ok := doc["_id"]; ok {
		if oid, isOID := id.(primitive.ObjectID); isOID {
			out["id"] = oid.Hex()
		} else {
			out["id"] = fmt.Sprint(id)
		}
	}
	return out
}
