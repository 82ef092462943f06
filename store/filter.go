package store

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductQuery enumerates the supported product listing filters. Absent
// fields impose no condition; present ones are AND-combined.
type ProductQuery struct {
	Title      string // case-insensitive substring match
	Category   string
	Color      string
	Collection string
	Size       string // matches any element of the sizes array
}

// Filter builds the store filter for the query.
func (q ProductQuery) Filter() bson.M {
	filter := bson.M{}
	if q.Title != "" {
		filter["title"] = primitive.Regex{Pattern: q.Title, Options: "i"}
	}
	if q.Category != "" {
		filter["category"] = q.Category
	}
	if q.Color != "" {
		filter["color"] = q.Color
	}
	if q.Collection != "" {
		filter["collection"] = q.Collection
	}
	if q.Size != "" {
		filter["sizes"] = q.Size
	}
	return filter
}
