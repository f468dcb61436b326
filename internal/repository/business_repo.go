package repository

import (
	"context"

	"go-pos-backend/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BusinessRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Business, error)
	FindByOwner(ctx context.Context, ownerID primitive.ObjectID) (*model.Business, error)
	FindByName(ctx context.Context, name string) (*model.Business, error)
	FindByAdmin(ctx context.Context, userID primitive.ObjectID) (*model.Business, error)
	Create(ctx context.Context, business *model.Business) error
	UpdateNameType(ctx context.Context, id primitive.ObjectID, name, businessType string) (*model.Business, error)
	AddAdmins(ctx context.Context, id primitive.ObjectID, admins []primitive.ObjectID) (*model.Business, error)
	SetTills(ctx context.Context, id primitive.ObjectID, tills []primitive.ObjectID) (*model.Business, error)
	AddTill(ctx context.Context, id, tillID primitive.ObjectID) error
}

type businessRepo struct {
	col *mongo.Collection
}

func NewBusinessRepo(db *mongo.Database) BusinessRepository {
	return &businessRepo{db.Collection("businesses")}
}

func (r *businessRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Business, error) {
	var business model.Business
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&business); err != nil {
		return nil, err
	}
	return &business, nil
}

func (r *businessRepo) FindByOwner(ctx context.Context, ownerID primitive.ObjectID) (*model.Business, error) {
	var business model.Business
	if err := r.col.FindOne(ctx, bson.M{"ownerId": ownerID}).Decode(&business); err != nil {
		return nil, err
	}
	return &business, nil
}

func (r *businessRepo) FindByName(ctx context.Context, name string) (*model.Business, error) {
	var business model.Business
	if err := r.col.FindOne(ctx, bson.M{"name": name}).Decode(&business); err != nil {
		return nil, err
	}
	return &business, nil
}

// FindByAdmin returns a business listing the user on its admin roster.
func (r *businessRepo) FindByAdmin(ctx context.Context, userID primitive.ObjectID) (*model.Business, error) {
	var business model.Business
	if err := r.col.FindOne(ctx, bson.M{"admins": userID}).Decode(&business); err != nil {
		return nil, err
	}
	return &business, nil
}

func (r *businessRepo) Create(ctx context.Context, business *model.Business) error {
	res, err := r.col.InsertOne(ctx, business)
	if err != nil {
		return err
	}
	business.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *businessRepo) UpdateNameType(ctx context.Context, id primitive.ObjectID, name, businessType string) (*model.Business, error) {
	return r.findAndUpdate(ctx, id, bson.M{"$set": bson.M{"name": name, "type": businessType}})
}

// AddAdmins uses $addToSet so the admin list stays a set no matter how often
// the same ids are submitted.
func (r *businessRepo) AddAdmins(ctx context.Context, id primitive.ObjectID, admins []primitive.ObjectID) (*model.Business, error) {
	return r.findAndUpdate(ctx, id, bson.M{"$addToSet": bson.M{"admins": bson.M{"$each": admins}}})
}

func (r *businessRepo) SetTills(ctx context.Context, id primitive.ObjectID, tills []primitive.ObjectID) (*model.Business, error) {
	return r.findAndUpdate(ctx, id, bson.M{"$set": bson.M{"tills": tills}})
}

func (r *businessRepo) AddTill(ctx context.Context, id, tillID primitive.ObjectID) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$push": bson.M{"tills": tillID}})
	return err
}

func (r *businessRepo) findAndUpdate(ctx context.Context, id primitive.ObjectID, update bson.M) (*model.Business, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var business model.Business
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&business); err != nil {
		return nil, err
	}
	return &business, nil
}
