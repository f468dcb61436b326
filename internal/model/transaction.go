package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TransactionLine is one sold item with its quantity.
type TransactionLine struct {
	ID       primitive.ObjectID `bson:"id" json:"id"`
	Quantity int                `bson:"quantity" json:"quantity"`
}

// Transaction is a completed sale recorded against a till.
type Transaction struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EmployeeID primitive.ObjectID `bson:"employeeId" json:"employeeId"`
	Items      []TransactionLine  `bson:"items" json:"items"`
	Price      float64            `bson:"price" json:"price"`
	Date       time.Time          `bson:"date" json:"date"`
}

// FormattedTransaction is the public shape returned by /transaction/create.
type FormattedTransaction struct {
	ID         primitive.ObjectID `json:"id"`
	EmployeeID primitive.ObjectID `json:"employeeId"`
	Items      []TransactionLine  `json:"items"`
	Price      float64            `json:"price"`
	Date       time.Time          `json:"date"`
}

func (t *Transaction) ToFormatted() FormattedTransaction {
	return FormattedTransaction{
		ID:         t.ID,
		EmployeeID: t.EmployeeID,
		Items:      t.Items,
		Price:      t.Price,
		Date:       t.Date,
	}
}

// TransactionLineDetail joins a sold line with the item's name and price.
type TransactionLineDetail struct {
	ID       primitive.ObjectID `json:"id"`
	Name     string             `json:"name"`
	Price    float64            `json:"price"`
	Quantity int                `json:"quantity"`
}

// TransactionDetail is the enriched shape returned by /transaction/get.
type TransactionDetail struct {
	ID       primitive.ObjectID      `json:"id"`
	Employee FormattedEmployee       `json:"employee"`
	Items    []TransactionLineDetail `json:"items"`
	Price    float64                 `json:"price"`
	Date     string                  `json:"date"`
}
