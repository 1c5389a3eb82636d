package model

import (
	"time"

	"github.com/anupam2nd/mylavanya-sub003/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "id"
	FieldBookingNo     = "booking_no"
	FieldJobNo         = "jobno"
	FieldCustomerName  = "customer_name"
	FieldCustomerEmail = "customer_email"
	FieldCustomerPhone = "customer_phone"
	FieldAddress       = "address"
	FieldPincode       = "pincode"
	FieldBookingDate   = "booking_date"
	FieldBookingTime   = "booking_time"
	FieldServiceName   = "service_name"
	FieldSubService    = "sub_service"
	FieldProductName   = "product_name"
	FieldPrice         = "price"
	FieldQuantity      = "quantity"
	FieldStatus        = "status"
	FieldArtistID      = "artist_id"
	FieldAssignedBy    = "assigned_by"
	FieldAssignedAt    = "assigned_at"
	FieldCreatedBy     = "created_by"
)

// Booking is one service line item. All line items of a single customer
// checkout share the same BookingNo and are numbered by JobNo starting at 1.
type Booking struct {
	ID            string     `db:"id"`
	BookingNo     string     `db:"booking_no"`
	JobNo         int        `db:"jobno"`
	CustomerName  string     `db:"customer_name"`
	CustomerEmail string     `db:"customer_email"`
	CustomerPhone string     `db:"customer_phone"`
	Address       string     `db:"address"`
	Pincode       string     `db:"pincode"`
	BookingDate   time.Time  `db:"booking_date"`
	BookingTime   string     `db:"booking_time"`
	ServiceName   string     `db:"service_name"`
	SubService    string     `db:"sub_service"`
	ProductName   string     `db:"product_name"`
	Price         float64    `db:"price"`
	Quantity      int        `db:"quantity"`
	Status        string     `db:"status"`
	ArtistID      *string    `db:"artist_id"`
	AssignedBy    *string    `db:"assigned_by"`
	AssignedAt    *time.Time `db:"assigned_at"`
	model.Metadata
}
