package repository

import (
	"context"

	"go-pos-backend/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type TransactionRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Transaction, error)
	Create(ctx context.Context, transaction *model.Transaction) error
}

type transactionRepo struct {
	col *mongo.Collection
}

func NewTransactionRepo(db *mongo.Database) TransactionRepository {
	return &transactionRepo{db.Collection("transactions")}
}

func (r *transactionRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Transaction, error) {
	var transaction model.Transaction
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&transaction); err != nil {
		return nil, err
	}
	return &transaction, nil
}

func (r *transactionRepo) Create(ctx context.Context, transaction *model.Transaction) error {
	res, err := r.col.InsertOne(ctx, transaction)
	if err != nil {
		return err
	}
	transaction.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}
