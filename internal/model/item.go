package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Item is a sellable product shown on a card.
type Item struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name  string             `bson:"name" json:"name"`
	Price float64            `bson:"price" json:"price"`
	Image string             `bson:"image" json:"image"`
	Props map[string]string  `bson:"props" json:"props"`
	Stock int                `bson:"stock" json:"stock"`
}

// FormattedItem is the public shape of an item.
type FormattedItem struct {
	ID    primitive.ObjectID `json:"id"`
	Name  string             `json:"name"`
	Price float64            `json:"price"`
	Image string             `json:"image"`
	Props map[string]string  `json:"props"`
	Stock int                `json:"stock"`
}

func (i *Item) ToFormatted() FormattedItem {
	return FormattedItem{
		ID:    i.ID,
		Name:  i.Name,
		Price: i.Price,
		Image: i.Image,
		Props: i.Props,
		Stock: i.Stock,
	}
}
