package model

import (
	gModel "github.com/anupam2nd/mylavanya-sub003/shared/model"
)

const (
	EntityName = "wishlist"
	TableName  = "wishlists"
	FieldID    = "id"
)

type Wishlist struct {
	ID          string  `db:"id"`
	UserID      string  `db:"user_id"`
	ServiceName string  `db:"service_name"`
	SubService  string  `db:"sub_service"`
	ProductName string  `db:"product_name"`
	Price       float64 `db:"price"`
	gModel.Metadata
}
