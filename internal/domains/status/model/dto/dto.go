package dto

import (
	"github.com/google/uuid"

	"github.com/anupam2nd/mylavanya-sub003/internal/domains/status/model"
	"github.com/anupam2nd/mylavanya-sub003/shared"
	gDto "github.com/anupam2nd/mylavanya-sub003/shared/dto"
	gModel "github.com/anupam2nd/mylavanya-sub003/shared/model"
	"github.com/anupam2nd/mylavanya-sub003/shared/timezone"
)

type CreateStatusRequest struct {
	StatusCode  string `json:"status_code" validate:"required,max=50"`
	StatusName  string `json:"status_name" validate:"required,max=100"`
	Description string `json:"description" validate:"omitempty,max=255"`
	Color       string `json:"color"       validate:"omitempty,hexcolor"`
	Active      *bool  `json:"active"      validate:"omitempty"`
}

func (c *CreateStatusRequest) ToModel(user string) model.Status {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Status{
		ID:          uuid.NewString(),
		StatusCode:  c.StatusCode,
		StatusName:  c.StatusName,
		Description: c.Description,
		Color:       c.Color,
		Active:      active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateStatusRequest struct {
	StatusCode  string `db:"status_code" json:"status_code" validate:"omitempty,max=50"`
	StatusName  string `db:"status_name" json:"status_name" validate:"omitempty,max=100"`
	Description string `db:"description" json:"description" validate:"omitempty,max=255"`
	Color       string `db:"color"       json:"color"       validate:"omitempty,hexcolor"`
	Active      *bool  `db:"active"      json:"active"      validate:"omitempty"`
}

type StatusResponse struct {
	ID          string `json:"id"`
	StatusCode  string `json:"status_code"`
	StatusName  string `json:"status_name"`
	Description string `json:"description"`
	Color       string `json:"color"`
	Active      bool   `json:"active"`
	gDto.Metadata
}

func (r *StatusResponse) FromModel(model model.Status) {
	r.ID = model.ID
	r.StatusCode = model.StatusCode
	r.StatusName = model.StatusName
	r.Description = model.Description
	r.Color = model.Color
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetStatusesResponse struct {
	Statuses  []StatusResponse `json:"statuses"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetStatusesResponse) FromModels(models []model.Status, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Statuses = make([]StatusResponse, len(models))
	for i, mod := range models {
		r.Statuses[i].FromModel(mod)
	}
}
