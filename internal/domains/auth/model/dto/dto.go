package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/anupam2nd/mylavanya-sub003/infras/jwt"
	userModel "github.com/anupam2nd/mylavanya-sub003/internal/domains/user/model"
	"github.com/anupam2nd/mylavanya-sub003/shared/constant"
	gModel "github.com/anupam2nd/mylavanya-sub003/shared/model"
	"github.com/anupam2nd/mylavanya-sub003/shared/timezone"
)

// RegisterRequest signs up a member. Email is optional: phone-only
// registrants get a synthetic address derived from their phone number.
type RegisterRequest struct {
	Phone    string  `json:"phone"               validate:"required,max=20"`
	Email    string  `json:"email"               validate:"omitempty,email,max=100"`
	Password string  `json:"password"            validate:"required,min=8"`
	FullName *string `json:"full_name,omitempty" validate:"omitempty,max=100"`
}

func (r *RegisterRequest) ToUserModel(email, hashedPassword string) userModel.User {
	return userModel.User{
		ID:         uuid.NewString(),
		Email:      email,
		Phone:      r.Phone,
		Password:   hashedPassword,
		Role:       constant.RoleMember,
		FullName:   r.FullName,
		IsVerified: false,
		Active:     true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  email,
			ModifiedBy: email,
		},
	}
}

// LoginRequest authenticates by email or phone; exactly one must be set.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required_without=Phone,omitempty,email"`
	Phone    string `json:"phone"    validate:"required_without=Email,omitempty,max=20"`
	Password string `json:"password" validate:"required"`
}

type UpdateLastLoginRequest struct {
	LastLogin time.Time `db:"last_login" json:"last_login" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	Role         string `json:"role"`
}

func (l *LoginResponse) FromTokenPair(tokenPair *jwt.TokenPair, role string) {
	l.AccessToken = tokenPair.AccessToken
	l.RefreshToken = tokenPair.RefreshToken
	l.ExpiresIn = tokenPair.ExpiresIn
	l.Role = role
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (r *RefreshTokenResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	r.AccessToken = tokenPair.AccessToken
	r.RefreshToken = tokenPair.RefreshToken
	r.ExpiresIn = tokenPair.ExpiresIn
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8"`
}

type UpdatePasswordRequest struct {
	Password string `db:"password" json:"password" validate:"required,min=8"`
}
