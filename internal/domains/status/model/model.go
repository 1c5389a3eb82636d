package model

import (
	"github.com/anupam2nd/mylavanya-sub003/shared/model"
)

const (
	TableName  = "statuses"
	EntityName = "status"

	FieldID          = "id"
	FieldStatusCode  = "status_code"
	FieldStatusName  = "status_name"
	FieldDescription = "description"
	FieldColor       = "color"
	FieldActive      = "active"
)

type Status struct {
	ID          string `db:"id"`
	StatusCode  string `db:"status_code"`
	StatusName  string `db:"status_name"`
	Description string `db:"description"`
	Color       string `db:"color"`
	Active      bool   `db:"active"`
	model.Metadata
}
