package dto

import (
	"github.com/google/uuid"

	"github.com/anupam2nd/mylavanya-sub003/internal/domains/user/model"
	"github.com/anupam2nd/mylavanya-sub003/shared"
	"github.com/anupam2nd/mylavanya-sub003/shared/constant"
	gDto "github.com/anupam2nd/mylavanya-sub003/shared/dto"
	gModel "github.com/anupam2nd/mylavanya-sub003/shared/model"
	"github.com/anupam2nd/mylavanya-sub003/shared/timezone"
)

type CreateUserRequest struct {
	Email    string  `json:"email"     validate:"required,email,max=100"`
	Phone    string  `json:"phone"     validate:"required,max=20"`
	Password string  `json:"password"  validate:"required,min=8"`
	Role     string  `json:"role"      validate:"required,oneof=superadmin admin controller artist member"`
	FullName *string `json:"full_name" validate:"omitempty,max=100"`
}

func (c *CreateUserRequest) ToModel(user, hashedPassword string) model.User {
	return model.User{
		ID:         uuid.NewString(),
		Email:      c.Email,
		Phone:      c.Phone,
		Password:   hashedPassword,
		Role:       c.Role,
		FullName:   c.FullName,
		IsVerified: true,
		Active:     true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateUserRequest struct {
	Phone    string  `db:"phone"     json:"phone"     validate:"omitempty,max=20"`
	Role     string  `db:"role"      json:"role"      validate:"omitempty,oneof=superadmin admin controller artist member"`
	FullName *string `db:"full_name" json:"full_name" validate:"omitempty,max=100"`
	Active   *bool   `db:"active"    json:"active"    validate:"omitempty"`
}

type UserResponse struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Role       string `json:"role"`
	FullName   string `json:"full_name,omitempty"`
	IsVerified bool   `json:"is_verified"`
	LastLogin  string `json:"last_login,omitempty"`
	Active     bool   `json:"active"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Email = model.Email
	r.Phone = model.Phone
	r.Role = model.Role
	r.IsVerified = model.IsVerified
	r.Active = model.Active

	if model.FullName != nil {
		r.FullName = *model.FullName
	}

	if model.LastLogin != nil {
		r.LastLogin = timezone.Format(*model.LastLogin, constant.DateTimeFormat)
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}
