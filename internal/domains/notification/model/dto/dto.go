package dto

import (
	"time"

	"github.com/anupam2nd/mylavanya-sub003/internal/domains/notification/model"
	"github.com/anupam2nd/mylavanya-sub003/shared"
	gDto "github.com/anupam2nd/mylavanya-sub003/shared/dto"
)

// NotificationEvent is the payload published to the notifications topic.
type NotificationEvent struct {
	Email     string    `json:"email"`
	BookingNo string    `json:"booking_no"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type NotificationResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	BookingNo string `json:"booking_no"`
	Message   string `json:"message"`
	Read      bool   `json:"read"`
	gDto.Metadata
}

func (r *NotificationResponse) FromModel(model model.Notification) {
	r.ID = model.ID
	r.Email = model.Email
	r.BookingNo = model.BookingNo
	r.Message = model.Message
	r.Read = model.Read
	r.Metadata.FromModel(model.Metadata)
}

type GetNotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	TotalPage     int                    `json:"total_page"`
	TotalData     int                    `json:"total_data"`
}

func (r *GetNotificationsResponse) FromModels(models []model.Notification, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Notifications = make([]NotificationResponse, len(models))
	for i, mod := range models {
		r.Notifications[i].FromModel(mod)
	}
}
