package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Dimensions is a card's placement on the layout grid.
type Dimensions struct {
	X      int `bson:"x" json:"x"`
	Y      int `bson:"y" json:"y"`
	Width  int `bson:"width" json:"width"`
	Height int `bson:"height" json:"height"`
}

// Card is a positioned layout tile referencing a set of sellable items.
// It belongs to exactly one tab.
type Card struct {
	ID         primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name       string               `bson:"name" json:"name"`
	Color      string               `bson:"color" json:"color"`
	Dimensions Dimensions           `bson:"dimensions" json:"dimensions"`
	Items      []primitive.ObjectID `bson:"items" json:"items"`
	Static     bool                 `bson:"static" json:"static"`
}

// FormattedCard is the public shape returned by /card/get and /card/create.
type FormattedCard struct {
	ID         primitive.ObjectID   `json:"id"`
	Name       string               `json:"name"`
	Color      string               `json:"color"`
	Dimensions Dimensions           `json:"dimensions"`
	Items      []primitive.ObjectID `json:"items"`
	Static     bool                 `json:"static"`
}

func (c *Card) ToFormatted() FormattedCard {
	return FormattedCard{
		ID:         c.ID,
		Name:       c.Name,
		Color:      c.Color,
		Dimensions: c.Dimensions,
		Items:      c.Items,
		Static:     c.Static,
	}
}

// CardWithItems is the nested shape returned by /card/getall: the card with
// every referenced item resolved.
type CardWithItems struct {
	ID         primitive.ObjectID `json:"id"`
	Name       string             `json:"name"`
	Color      string             `json:"color"`
	Dimensions Dimensions         `json:"dimensions"`
	Items      []FormattedItem    `json:"items"`
	Static     bool               `json:"static"`
}
