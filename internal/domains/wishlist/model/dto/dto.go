package dto

import (
	"github.com/google/uuid"

	"github.com/anupam2nd/mylavanya-sub003/internal/domains/wishlist/model"
	"github.com/anupam2nd/mylavanya-sub003/shared"
	gDto "github.com/anupam2nd/mylavanya-sub003/shared/dto"
	gModel "github.com/anupam2nd/mylavanya-sub003/shared/model"
	"github.com/anupam2nd/mylavanya-sub003/shared/timezone"
)

type CreateWishlistRequest struct {
	ServiceName string  `json:"service_name" validate:"required,min=2,max=100"`
	SubService  string  `json:"sub_service"  validate:"omitempty,max=100"`
	ProductName string  `json:"product_name" validate:"omitempty,max=100"`
	Price       float64 `json:"price"        validate:"omitempty,gte=0"`
}

func (c *CreateWishlistRequest) ToModel(userID string) model.Wishlist {
	return model.Wishlist{
		ID:          uuid.NewString(),
		UserID:      userID,
		ServiceName: c.ServiceName,
		SubService:  c.SubService,
		ProductName: c.ProductName,
		Price:       c.Price,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  userID,
			ModifiedBy: userID,
		},
	}
}

type WishlistResponse struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	ServiceName string  `json:"service_name"`
	SubService  string  `json:"sub_service"`
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
	gDto.Metadata
}

func (r *WishlistResponse) FromModel(model model.Wishlist) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.ServiceName = model.ServiceName
	r.SubService = model.SubService
	r.ProductName = model.ProductName
	r.Price = model.Price
	r.Metadata.FromModel(model.Metadata)
}

type GetWishlistsResponse struct {
	Wishlists []WishlistResponse `json:"wishlists"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetWishlistsResponse) FromModels(models []model.Wishlist, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Wishlists = make([]WishlistResponse, len(models))
	for i, mod := range models {
		r.Wishlists[i].FromModel(mod)
	}
}
