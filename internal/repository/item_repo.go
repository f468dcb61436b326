package repository

import (
	"context"

	"go-pos-backend/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ItemRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Item, error)
	Create(ctx context.Context, item *model.Item) error
	Update(ctx context.Context, item *model.Item) error
	DeleteByIDs(ctx context.Context, ids []primitive.ObjectID) error
}

type itemRepo struct {
	col *mongo.Collection
}

func NewItemRepo(db *mongo.Database) ItemRepository {
	return &itemRepo{db.Collection("items")}
}

func (r *itemRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Item, error) {
	var item model.Item
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepo) Create(ctx context.Context, item *model.Item) error {
	res, err := r.col.InsertOne(ctx, item)
	if err != nil {
		return err
	}
	item.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *itemRepo) Update(ctx context.Context, item *model.Item) error {
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": item.ID}, item)
	return err
}

func (r *itemRepo) DeleteByIDs(ctx context.Context, ids []primitive.ObjectID) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.col.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	return err
}
