package repo

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductFilter holds the optional list-endpoint filters. Empty fields
// impose no constraint.
type ProductFilter struct {
	Category string
	Status   string
	Search   string
}

// Query translates the filter into a find predicate. Present fields
// combine with logical AND; search is a case-insensitive substring match
// on the product name.
func (f ProductFilter) Query() bson.M {
	query := bson.M{}

	if f.Category != "" {
		query["category"] = f.Category
	}
	if f.Status != "" {
		query["status"] = f.Status
	}
	if f.Search != "" {
		query["name"] = bson.M{"$regex": primitive.Regex{Pattern: f.Search, Options: "i"}}
	}

	return query
}
