package repository

import (
	"context"

	"go-pos-backend/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TillRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Till, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.Till, error)
	Create(ctx context.Context, till *model.Till) error
	AddEmployees(ctx context.Context, id primitive.ObjectID, emails []string) (*model.Till, error)
	AddTransaction(ctx context.Context, id, transactionID primitive.ObjectID) error
}

type tillRepo struct {
	col *mongo.Collection
}

func NewTillRepo(db *mongo.Database) TillRepository {
	return &tillRepo{db.Collection("tills")}
}

func (r *tillRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Till, error) {
	var till model.Till
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&till); err != nil {
		return nil, err
	}
	return &till, nil
}

func (r *tillRepo) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.Till, error) {
	cursor, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	var tills []model.Till
	if err := cursor.All(ctx, &tills); err != nil {
		return nil, err
	}
	return tills, nil
}

func (r *tillRepo) Create(ctx context.Context, till *model.Till) error {
	if till.Employees == nil {
		till.Employees = []string{}
	}
	if till.Transactions == nil {
		till.Transactions = []primitive.ObjectID{}
	}
	res, err := r.col.InsertOne(ctx, till)
	if err != nil {
		return err
	}
	till.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// AddEmployees uses $addToSet so an email appears on the till at most once.
func (r *tillRepo) AddEmployees(ctx context.Context, id primitive.ObjectID, emails []string) (*model.Till, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var till model.Till
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id},
		bson.M{"$addToSet": bson.M{"employees": bson.M{"$each": emails}}}, opts).Decode(&till)
	if err != nil {
		return nil, err
	}
	return &till, nil
}

func (r *tillRepo) AddTransaction(ctx context.Context, id, transactionID primitive.ObjectID) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$push": bson.M{"transactions": transactionID}})
	return err
}
