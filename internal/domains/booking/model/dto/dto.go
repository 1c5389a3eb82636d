package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/anupam2nd/mylavanya-sub003/internal/domains/booking/model"
	"github.com/anupam2nd/mylavanya-sub003/shared"
	"github.com/anupam2nd/mylavanya-sub003/shared/constant"
	gDto "github.com/anupam2nd/mylavanya-sub003/shared/dto"
	gModel "github.com/anupam2nd/mylavanya-sub003/shared/model"
	"github.com/anupam2nd/mylavanya-sub003/shared/timezone"
)

type BookingServiceItem struct {
	ServiceName string  `json:"service_name" validate:"required,max=100"`
	SubService  string  `json:"sub_service"  validate:"omitempty,max=100"`
	ProductName string  `json:"product_name" validate:"omitempty,max=100"`
	Price       float64 `json:"price"        validate:"gte=0"`
	Quantity    int     `json:"quantity"     validate:"required,gte=1"`
}

type CreateBookingRequest struct {
	CustomerName  string               `json:"customer_name"  validate:"required,max=100"`
	CustomerEmail string               `json:"customer_email" validate:"omitempty,email,max=100"`
	CustomerPhone string               `json:"customer_phone" validate:"required,max=20"`
	Address       string               `json:"address"        validate:"required,max=255"`
	Pincode       string               `json:"pincode"        validate:"required,max=10"`
	BookingDate   string               `json:"booking_date"   validate:"required"`
	BookingTime   string               `json:"booking_time"   validate:"required"`
	Services      []BookingServiceItem `json:"services"       validate:"required,min=1,dive"`
}

// ToModels materializes one line item per requested service, numbered from 1,
// all sharing the given booking number.
func (c *CreateBookingRequest) ToModels(bookingNo, user string) ([]model.Booking, error) {
	bookingDate, err := time.Parse(constant.DateFormat, c.BookingDate)
	if err != nil {
		return nil, err
	}

	now := timezone.Now()

	items := make([]model.Booking, len(c.Services))
	for i, svc := range c.Services {
		items[i] = model.Booking{
			ID:            uuid.NewString(),
			BookingNo:     bookingNo,
			JobNo:         i + 1,
			CustomerName:  c.CustomerName,
			CustomerEmail: c.CustomerEmail,
			CustomerPhone: c.CustomerPhone,
			Address:       c.Address,
			Pincode:       c.Pincode,
			BookingDate:   bookingDate,
			BookingTime:   c.BookingTime,
			ServiceName:   svc.ServiceName,
			SubService:    svc.SubService,
			ProductName:   svc.ProductName,
			Price:         svc.Price,
			Quantity:      svc.Quantity,
			Status:        model.StatusPending,
			Metadata: gModel.Metadata{
				CreatedAt:  now,
				ModifiedAt: now,
				CreatedBy:  user,
				ModifiedBy: user,
			},
		}
	}

	return items, nil
}

type CreateBookingResponse struct {
	BookingNo    string `json:"booking_no"`
	ServiceCount int    `json:"service_count"`
}

// UpdateBookingRequest edits customer and schedule fields. The change fans
// out to every line item of the booking group.
type UpdateBookingRequest struct {
	CustomerName  string `db:"customer_name"  json:"customer_name"  validate:"omitempty,max=100"`
	CustomerEmail string `db:"customer_email" json:"customer_email" validate:"omitempty,email,max=100"`
	CustomerPhone string `db:"customer_phone" json:"customer_phone" validate:"omitempty,max=20"`
	Address       string `db:"address"        json:"address"        validate:"omitempty,max=255"`
	Pincode       string `db:"pincode"        json:"pincode"        validate:"omitempty,max=10"`
	BookingDate   string `json:"booking_date"  validate:"omitempty"`
	BookingTime   string `db:"booking_time"   json:"booking_time"   validate:"omitempty"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,max=50"`
}

type AssignArtistRequest struct {
	ArtistID string `json:"artist_id" validate:"required"`
}

type AddServiceRequest struct {
	BookingServiceItem
}

type AddServiceResponse struct {
	BookingNo string `json:"booking_no"`
	JobNo     int    `json:"jobno"`
}

type BookingItemResponse struct {
	ID          string  `json:"id"`
	BookingNo   string  `json:"booking_no"`
	JobNo       int     `json:"jobno"`
	ServiceName string  `json:"service_name"`
	SubService  string  `json:"sub_service"`
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Status      string  `json:"status"`
	StatusName  string  `json:"status_name"`
	ArtistID    string  `json:"artist_id,omitempty"`
	gDto.Metadata
}

func (r *BookingItemResponse) FromModel(mod model.Booking, statusName string) {
	r.ID = mod.ID
	r.BookingNo = mod.BookingNo
	r.JobNo = mod.JobNo
	r.ServiceName = mod.ServiceName
	r.SubService = mod.SubService
	r.ProductName = mod.ProductName
	r.Price = mod.Price
	r.Quantity = mod.Quantity
	r.Status = mod.Status
	r.StatusName = statusName

	if mod.ArtistID != nil {
		r.ArtistID = *mod.ArtistID
	}

	r.Metadata.FromModel(mod.Metadata)
}

// BookingGroupResponse is the detail view of one booking group: the shared
// customer and schedule fields plus every line item.
type BookingGroupResponse struct {
	BookingNo     string                `json:"booking_no"`
	CustomerName  string                `json:"customer_name"`
	CustomerEmail string                `json:"customer_email"`
	CustomerPhone string                `json:"customer_phone"`
	Address       string                `json:"address"`
	Pincode       string                `json:"pincode"`
	BookingDate   string                `json:"booking_date"`
	BookingTime   string                `json:"booking_time"`
	Status        string                `json:"status"`
	StatusName    string                `json:"status_name"`
	ArtistID      string                `json:"artist_id,omitempty"`
	AssignedBy    string                `json:"assigned_by,omitempty"`
	AssignedAt    string                `json:"assigned_at,omitempty"`
	ServiceCount  int                   `json:"service_count"`
	TotalAmount   float64               `json:"total_amount"`
	Items         []BookingItemResponse `json:"items"`
}

func (r *BookingGroupResponse) FromModels(models []model.Booking, statusName string) {
	if len(models) == 0 {
		return
	}

	primary := models[0]

	r.BookingNo = primary.BookingNo
	r.CustomerName = primary.CustomerName
	r.CustomerEmail = primary.CustomerEmail
	r.CustomerPhone = primary.CustomerPhone
	r.Address = primary.Address
	r.Pincode = primary.Pincode
	r.BookingDate = primary.BookingDate.Format(constant.DateFormat)
	r.BookingTime = primary.BookingTime
	r.Status = primary.Status
	r.StatusName = statusName
	r.ServiceCount = len(models)

	if primary.ArtistID != nil {
		r.ArtistID = *primary.ArtistID
	}

	if primary.AssignedBy != nil {
		r.AssignedBy = *primary.AssignedBy
	}

	if primary.AssignedAt != nil {
		r.AssignedAt = timezone.Format(*primary.AssignedAt, constant.DateTimeFormat)
	}

	r.Items = make([]BookingItemResponse, len(models))
	for i, mod := range models {
		r.Items[i].FromModel(mod, statusName)
		r.TotalAmount += mod.Price * float64(mod.Quantity)
	}
}

// BookingListItem is the primary line item of a group annotated with the
// number of services it carries.
type BookingListItem struct {
	BookingNo     string  `json:"booking_no"`
	CustomerName  string  `json:"customer_name"`
	CustomerPhone string  `json:"customer_phone"`
	BookingDate   string  `json:"booking_date"`
	BookingTime   string  `json:"booking_time"`
	ServiceName   string  `json:"service_name"`
	Price         float64 `json:"price"`
	Status        string  `json:"status"`
	StatusName    string  `json:"status_name"`
	ArtistID      string  `json:"artist_id,omitempty"`
	ServiceCount  int     `json:"service_count"`
}

func (r *BookingListItem) FromModel(mod model.Booking, statusName string, serviceCount int) {
	r.BookingNo = mod.BookingNo
	r.CustomerName = mod.CustomerName
	r.CustomerPhone = mod.CustomerPhone
	r.BookingDate = mod.BookingDate.Format(constant.DateFormat)
	r.BookingTime = mod.BookingTime
	r.ServiceName = mod.ServiceName
	r.Price = mod.Price
	r.Status = mod.Status
	r.StatusName = statusName
	r.ServiceCount = serviceCount

	if mod.ArtistID != nil {
		r.ArtistID = *mod.ArtistID
	}
}

type GetBookingsResponse struct {
	Bookings  []BookingListItem `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

// FromModels groups a flat page of line items by booking number and exposes
// one representative row per group, preserving list order.
func (r *GetBookingsResponse) FromModels(models []model.Booking, statusNames map[string]string, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)
	r.Bookings = []BookingListItem{}

	counts := make(map[string]int, len(models))
	for _, mod := range models {
		counts[mod.BookingNo]++
	}

	seen := make(map[string]bool, len(counts))

	for _, mod := range models {
		if seen[mod.BookingNo] {
			continue
		}

		seen[mod.BookingNo] = true

		statusName := statusNames[mod.Status]
		if statusName == constant.Empty {
			statusName = shared.HumanizeCode(mod.Status)
		}

		var item BookingListItem

		item.FromModel(mod, statusName, counts[mod.BookingNo])
		r.Bookings = append(r.Bookings, item)
	}
}

// TrackBookingResponse is the public, unauthenticated view of a booking group.
type TrackBookingResponse struct {
	BookingNo    string   `json:"booking_no"`
	Status       string   `json:"status"`
	StatusName   string   `json:"status_name"`
	StatusColor  string   `json:"status_color"`
	BookingDate  string   `json:"booking_date"`
	BookingTime  string   `json:"booking_time"`
	Services     []string `json:"services"`
	ServiceCount int      `json:"service_count"`
}

func (r *TrackBookingResponse) FromModels(models []model.Booking, statusName, statusColor string) {
	if len(models) == 0 {
		return
	}

	primary := models[0]

	r.BookingNo = primary.BookingNo
	r.Status = primary.Status
	r.StatusName = statusName
	r.StatusColor = statusColor
	r.BookingDate = primary.BookingDate.Format(constant.DateFormat)
	r.BookingTime = primary.BookingTime
	r.ServiceCount = len(models)

	r.Services = make([]string, len(models))
	for i, mod := range models {
		r.Services[i] = mod.ServiceName
	}
}
