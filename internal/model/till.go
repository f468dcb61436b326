package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Till is a point-of-sale register. Employees are listed by email; only a
// listed employee may record transactions on the till.
type Till struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Employees    []string             `bson:"employees" json:"employees"`
	Transactions []primitive.ObjectID `bson:"transactions" json:"transactions"`
}

// HasEmployee reports whether the email is on the till's employee list.
func (t *Till) HasEmployee(email string) bool {
	for _, e := range t.Employees {
		if e == email {
			return true
		}
	}
	return false
}

// FormattedTill is the public shape returned by the /till routes.
type FormattedTill struct {
	ID           primitive.ObjectID   `json:"id"`
	Employees    []string             `json:"employees"`
	Transactions []primitive.ObjectID `json:"transactions"`
}

func (t *Till) ToFormatted() FormattedTill {
	return FormattedTill{ID: t.ID, Employees: t.Employees, Transactions: t.Transactions}
}
