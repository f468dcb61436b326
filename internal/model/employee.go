package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Employee works one or more tills, identified on a till by email.
type Employee struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string             `bson:"email" json:"email"`
	IsManager bool               `bson:"isManager" json:"isManager"`
}

// FormattedEmployee is the public shape of an employee.
type FormattedEmployee struct {
	ID        primitive.ObjectID `json:"id"`
	Email     string             `json:"email"`
	IsManager bool               `json:"isManager"`
}

func (e *Employee) ToFormatted() FormattedEmployee {
	return FormattedEmployee{ID: e.ID, Email: e.Email, IsManager: e.IsManager}
}
