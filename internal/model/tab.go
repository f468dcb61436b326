package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Tab is a named layout grouping an ordered set of cards.
type Tab struct {
	ID    primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name  string               `bson:"name" json:"name"`
	Color string               `bson:"color" json:"color"`
	Cards []primitive.ObjectID `bson:"cards" json:"cards"`
}

// FormattedTab is the public shape returned by the /tab routes.
type FormattedTab struct {
	ID    primitive.ObjectID   `json:"id"`
	Name  string               `json:"name"`
	Color string               `json:"color"`
	Cards []primitive.ObjectID `json:"cards"`
}

func (t *Tab) ToFormatted() FormattedTab {
	return FormattedTab{ID: t.ID, Name: t.Name, Color: t.Color, Cards: t.Cards}
}
