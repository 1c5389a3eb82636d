package model

import (
	"github.com/anupam2nd/mylavanya-sub003/shared/model"
)

const (
	TableName  = "artists"
	EntityName = "artist"

	FieldID      = "id"
	FieldName    = "name"
	FieldEmpCode = "emp_code"
	FieldPhone   = "phone"
	FieldEmail   = "email"
	FieldRating  = "rating"
	FieldActive  = "active"
)

type Artist struct {
	ID      string  `db:"id"`
	Name    string  `db:"name"`
	EmpCode string  `db:"emp_code"`
	Phone   string  `db:"phone"`
	Email   string  `db:"email"`
	Rating  float64 `db:"rating"`
	Active  bool    `db:"active"`
	model.Metadata
}
