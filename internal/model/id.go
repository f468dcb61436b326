package model

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalidID is returned for anything that is not a canonical 24-hex document id.
var ErrInvalidID = errors.New("id is not a valid ObjectId")

// ParseID converts a request-supplied id string into an ObjectID.
// The round-trip comparison rejects ids that decode but do not re-encode
// to the same string (e.g. uppercase hex), so every handler sees either a
// canonical id or a validation failure.
func ParseID(s string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	if id.Hex() != s {
		return primitive.NilObjectID, ErrInvalidID
	}
	return id, nil
}

// ParseIDs parses a batch of id strings, failing on the first invalid one.
func ParseIDs(ss []string) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(ss))
	for _, s := range ss {
		id, err := ParseID(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
