package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Business is owned by exactly one user; admins hold elevated rights over it.
type Business struct {
	ID      primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name    string               `bson:"name" json:"name"`
	OwnerID primitive.ObjectID   `bson:"ownerId" json:"ownerId"`
	Type    string               `bson:"type" json:"type"`
	Admins  []primitive.ObjectID `bson:"admins" json:"admins"`
	Tills   []primitive.ObjectID `bson:"tills" json:"tills"`
}

// HasAdmin reports whether the given user id is on the admin list.
func (b *Business) HasAdmin(id primitive.ObjectID) bool {
	for _, a := range b.Admins {
		if a == id {
			return true
		}
	}
	return false
}

// FormattedBusiness is the public shape returned by the /business routes.
type FormattedBusiness struct {
	ID      primitive.ObjectID   `json:"id"`
	Name    string               `json:"name"`
	OwnerID primitive.ObjectID   `json:"ownerId"`
	Type    string               `json:"type"`
	Admins  []primitive.ObjectID `json:"admins"`
	Tills   []primitive.ObjectID `json:"tills"`
}

func (b *Business) ToFormatted() FormattedBusiness {
	return FormattedBusiness{
		ID:      b.ID,
		Name:    b.Name,
		OwnerID: b.OwnerID,
		Type:    b.Type,
		Admins:  b.Admins,
		Tills:   b.Tills,
	}
}
