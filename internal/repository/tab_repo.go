package repository

import (
	"context"

	"go-pos-backend/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type TabRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Tab, error)
	FindAll(ctx context.Context) ([]model.Tab, error)
	Create(ctx context.Context, tab *model.Tab) error
	AddCard(ctx context.Context, id, cardID primitive.ObjectID) error
	RemoveCard(ctx context.Context, id, cardID primitive.ObjectID) error
}

type tabRepo struct {
	col *mongo.Collection
}

func NewTabRepo(db *mongo.Database) TabRepository {
	return &tabRepo{db.Collection("tabs")}
}

func (r *tabRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Tab, error) {
	var tab model.Tab
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&tab); err != nil {
		return nil, err
	}
	return &tab, nil
}

func (r *tabRepo) FindAll(ctx context.Context) ([]model.Tab, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var tabs []model.Tab
	if err := cursor.All(ctx, &tabs); err != nil {
		return nil, err
	}
	return tabs, nil
}

func (r *tabRepo) Create(ctx context.Context, tab *model.Tab) error {
	if tab.Cards == nil {
		tab.Cards = []primitive.ObjectID{}
	}
	res, err := r.col.InsertOne(ctx, tab)
	if err != nil {
		return err
	}
	tab.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *tabRepo) AddCard(ctx context.Context, id, cardID primitive.ObjectID) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$push": bson.M{"cards": cardID}})
	return err
}

func (r *tabRepo) RemoveCard(ctx context.Context, id, cardID primitive.ObjectID) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$pull": bson.M{"cards": cardID}})
	return err
}
