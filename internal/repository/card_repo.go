package repository

import (
	"context"

	"go-pos-backend/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CardRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Card, error)
	Create(ctx context.Context, card *model.Card) error
	UpdatePosition(ctx context.Context, id primitive.ObjectID, dims model.Dimensions, static bool) error
	UpdateNameColor(ctx context.Context, id primitive.ObjectID, name, color string) error
	AddItem(ctx context.Context, id, itemID primitive.ObjectID) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type cardRepo struct {
	col *mongo.Collection
}

func NewCardRepo(db *mongo.Database) CardRepository {
	return &cardRepo{db.Collection("cards")}
}

func (r *cardRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Card, error) {
	var card model.Card
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&card); err != nil {
		return nil, err
	}
	return &card, nil
}

func (r *cardRepo) Create(ctx context.Context, card *model.Card) error {
	if card.Items == nil {
		card.Items = []primitive.ObjectID{}
	}
	res, err := r.col.InsertOne(ctx, card)
	if err != nil {
		return err
	}
	card.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *cardRepo) UpdatePosition(ctx context.Context, id primitive.ObjectID, dims model.Dimensions, static bool) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"dimensions": dims, "static": static}})
	return err
}

func (r *cardRepo) UpdateNameColor(ctx context.Context, id primitive.ObjectID, name, color string) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"name": name, "color": color}})
	return err
}

func (r *cardRepo) AddItem(ctx context.Context, id, itemID primitive.ObjectID) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$push": bson.M{"items": itemID}})
	return err
}

func (r *cardRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
