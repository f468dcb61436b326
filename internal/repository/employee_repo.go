package repository

import (
	"context"

	"go-pos-backend/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type EmployeeRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Employee, error)
	FindByEmail(ctx context.Context, email string) (*model.Employee, error)
	FindByEmails(ctx context.Context, emails []string) ([]model.Employee, error)
	Create(ctx context.Context, employee *model.Employee) error
}

type employeeRepo struct {
	col *mongo.Collection
}

func NewEmployeeRepo(db *mongo.Database) EmployeeRepository {
	return &employeeRepo{db.Collection("employees")}
}

func (r *employeeRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Employee, error) {
	var employee model.Employee
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&employee); err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepo) FindByEmail(ctx context.Context, email string) (*model.Employee, error) {
	var employee model.Employee
	if err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&employee); err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepo) FindByEmails(ctx context.Context, emails []string) ([]model.Employee, error) {
	cursor, err := r.col.Find(ctx, bson.M{"email": bson.M{"$in": emails}})
	if err != nil {
		return nil, err
	}
	var employees []model.Employee
	if err := cursor.All(ctx, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *employeeRepo) Create(ctx context.Context, employee *model.Employee) error {
	res, err := r.col.InsertOne(ctx, employee)
	if err != nil {
		return err
	}
	employee.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}
