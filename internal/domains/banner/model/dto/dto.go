package dto

import (
	"mime/multipart"

	"github.com/google/uuid"

	"github.com/anupam2nd/mylavanya-sub003/internal/domains/banner/model"
	"github.com/anupam2nd/mylavanya-sub003/shared"
	gDto "github.com/anupam2nd/mylavanya-sub003/shared/dto"
	gModel "github.com/anupam2nd/mylavanya-sub003/shared/model"
	"github.com/anupam2nd/mylavanya-sub003/shared/timezone"
)

type CreateBannerRequest struct {
	Title     string                `json:"title"      validate:"required,min=3,max=100"`
	TargetURL string                `json:"target_url" validate:"omitempty,url"`
	SortOrder int                   `json:"sort_order" validate:"omitempty,gte=0"`
	Image     *multipart.FileHeader `json:"image"      swaggerignore:"true" validate:"required,mimetypes=image/png image/jpg image/jpeg"`
	ImageFile multipart.File        `json:"-"`
}

func (c *CreateBannerRequest) ToModel(user, imageURL string) model.Banner {
	return model.Banner{
		ID:        uuid.NewString(),
		Title:     c.Title,
		ImageURL:  imageURL,
		TargetURL: c.TargetURL,
		SortOrder: c.SortOrder,
		Active:    true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateBannerRequest struct {
	Title     string `db:"title"      json:"title"      validate:"omitempty,min=3,max=100"`
	TargetURL string `db:"target_url" json:"target_url" validate:"omitempty,url"`
	SortOrder *int   `db:"sort_order" json:"sort_order" validate:"omitempty,gte=0"`
	Active    *bool  `db:"active"     json:"active"     validate:"omitempty"`
}

type BannerResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	ImageURL  string `json:"image_url"`
	TargetURL string `json:"target_url"`
	SortOrder int    `json:"sort_order"`
	Active    bool   `json:"active"`
	gDto.Metadata
}

func (r *BannerResponse) FromModel(model model.Banner) {
	r.ID = model.ID
	r.Title = model.Title
	r.ImageURL = model.ImageURL
	r.TargetURL = model.TargetURL
	r.SortOrder = model.SortOrder
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetBannersResponse struct {
	Banners   []BannerResponse `json:"banners"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetBannersResponse) FromModels(models []model.Banner, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Banners = make([]BannerResponse, len(models))
	for i, mod := range models {
		r.Banners[i].FromModel(mod)
	}
}
