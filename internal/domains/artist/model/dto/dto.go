package dto

import (
	"github.com/google/uuid"

	"github.com/anupam2nd/mylavanya-sub003/internal/domains/artist/model"
	"github.com/anupam2nd/mylavanya-sub003/shared"
	gDto "github.com/anupam2nd/mylavanya-sub003/shared/dto"
	gModel "github.com/anupam2nd/mylavanya-sub003/shared/model"
	"github.com/anupam2nd/mylavanya-sub003/shared/timezone"
)

type CreateArtistRequest struct {
	Name    string  `json:"name"     validate:"required,max=100"`
	EmpCode string  `json:"emp_code" validate:"required,max=20"`
	Phone   string  `json:"phone"    validate:"required,max=20"`
	Email   string  `json:"email"    validate:"omitempty,email,max=100"`
	Rating  float64 `json:"rating"   validate:"omitempty,gte=0,lte=5"`
}

func (c *CreateArtistRequest) ToModel(user string) model.Artist {
	return model.Artist{
		ID:      uuid.NewString(),
		Name:    c.Name,
		EmpCode: c.EmpCode,
		Phone:   c.Phone,
		Email:   c.Email,
		Rating:  c.Rating,
		Active:  true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateArtistRequest struct {
	Name    string  `db:"name"     json:"name"     validate:"omitempty,max=100"`
	EmpCode string  `db:"emp_code" json:"emp_code" validate:"omitempty,max=20"`
	Phone   string  `db:"phone"    json:"phone"    validate:"omitempty,max=20"`
	Email   string  `db:"email"    json:"email"    validate:"omitempty,email,max=100"`
	Rating  float64 `db:"rating"   json:"rating"   validate:"omitempty,gte=0,lte=5"`
}

type SetArtistActiveRequest struct {
	Active *bool `json:"active" validate:"required"`
}

type ArtistResponse struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	EmpCode string  `json:"emp_code"`
	Phone   string  `json:"phone"`
	Email   string  `json:"email"`
	Rating  float64 `json:"rating"`
	Active  bool    `json:"active"`
	gDto.Metadata
}

func (r *ArtistResponse) FromModel(model model.Artist) {
	r.ID = model.ID
	r.Name = model.Name
	r.EmpCode = model.EmpCode
	r.Phone = model.Phone
	r.Email = model.Email
	r.Rating = model.Rating
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetArtistsResponse struct {
	Artists   []ArtistResponse `json:"artists"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetArtistsResponse) FromModels(models []model.Artist, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Artists = make([]ArtistResponse, len(models))
	for i, mod := range models {
		r.Artists[i].FromModel(mod)
	}
}
