package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned by every repository when a document is absent.
var ErrNotFound = mongo.ErrNoDocuments

// Store runs a function inside a multi-document transaction. Writes that
// touch more than one collection (business create, card create/delete,
// transaction create) go through here so partial failures roll back.
type Store interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type mongoStore struct {
	db *mongo.Database
}

func NewStore(db *mongo.Database) Store {
	return &mongoStore{db}
}

func (s *mongoStore) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := s.db.Client().StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}
