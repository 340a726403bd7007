package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Product struct {
	ID          bson.ObjectID `bson:"_id,omitempty"         json:"_id"`
	Name        string        `bson:"name"                  json:"name"`
	Description string        `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64       `bson:"price"                 json:"price"`
	Discount    float64       `bson:"discount"              json:"discount"`
	Image       string        `bson:"image,omitempty"       json:"image,omitempty"`
	CategoryID  string        `bson:"categoryId"            json:"categoryId"`
	Stock       int           `bson:"stock"                 json:"stock"`
	CreatedAt   time.Time     `bson:"createdAt"             json:"createdAt"`
}

type Category struct {
	ID    bson.ObjectID `bson:"_id,omitempty"   json:"_id"`
	Name  string        `bson:"name"            json:"name"`
	Icon  string        `bson:"icon,omitempty"  json:"icon,omitempty"`
	Order int           `bson:"order,omitempty" json:"order,omitempty"`
}

// Todo is the sample entity used to exercise the dispatcher end to end.
type Todo struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	Text      string        `bson:"text"          json:"text"`
	Completed bool          `bson:"completed"     json:"completed"`
	CreatedAt time.Time     `bson:"createdAt"     json:"createdAt"`
}
