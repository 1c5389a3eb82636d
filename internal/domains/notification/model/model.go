package model

import (
	"github.com/anupam2nd/mylavanya-sub003/shared/model"
)

const (
	TableName  = "notifications"
	EntityName = "notification"

	FieldID        = "id"
	FieldEmail     = "email"
	FieldBookingNo = "booking_no"
	FieldMessage   = "message"
	FieldRead      = "read"
)

type Notification struct {
	ID        string `db:"id"`
	Email     string `db:"email"`
	BookingNo string `db:"booking_no"`
	Message   string `db:"message"`
	Read      bool   `db:"read"`
	model.Metadata
}
