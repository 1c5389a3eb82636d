package model

import (
	"github.com/anupam2nd/mylavanya-sub003/shared/model"
)

const (
	TableName  = "banners"
	EntityName = "banner"

	FieldID        = "id"
	FieldTitle     = "title"
	FieldImageURL  = "image_url"
	FieldTargetURL = "target_url"
	FieldSortOrder = "sort_order"
	FieldActive    = "active"
)

type Banner struct {
	ID        string `db:"id"`
	Title     string `db:"title"`
	ImageURL  string `db:"image_url"`
	TargetURL string `db:"target_url"`
	SortOrder int    `db:"sort_order"`
	Active    bool   `db:"active"`
	model.Metadata
}
