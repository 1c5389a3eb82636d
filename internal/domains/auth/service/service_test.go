package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/anupam2nd/mylavanya-sub003/config"
	"github.com/anupam2nd/mylavanya-sub003/infras/jwt"
	jwtMocks "github.com/anupam2nd/mylavanya-sub003/infras/jwt/mocks"
	"github.com/anupam2nd/mylavanya-sub003/infras/otel/mocks"
	"github.com/anupam2nd/mylavanya-sub003/internal/domains/auth/model/dto"
	"github.com/anupam2nd/mylavanya-sub003/internal/domains/auth/service"
	userMocks "github.com/anupam2nd/mylavanya-sub003/internal/domains/user/mocks"
	userModel "github.com/anupam2nd/mylavanya-sub003/internal/domains/user/model"
	"github.com/anupam2nd/mylavanya-sub003/shared/constant"
	gModel "github.com/anupam2nd/mylavanya-sub003/shared/model"
	"github.com/anupam2nd/mylavanya-sub003/shared/password"
	"github.com/anupam2nd/mylavanya-sub003/shared/timezone"
)

func newAuthService(t *testing.T) (service.Auth, *userMocks.MockUser, *jwtMocks.MockJWT) {
	ctrl := gomock.NewController(t)

	mockRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)

	cfg := &config.Config{}
	cfg.App.MemberEmailDomain = "mylavanya.com"

	svc := service.New(mockRepo, cfg, mocks.NewOtel(), mockJWT)

	return svc, mockRepo, mockJWT
}

func activeUser(t *testing.T, plaintext string) userModel.User {
	t.Helper()

	hashed, err := password.Hash(plaintext)
	require.NoError(t, err)

	return userModel.User{
		ID:       "user-1",
		Email:    "asha@example.com",
		Phone:    "9876543210",
		Password: hashed,
		Role:     constant.RoleMember,
		Active:   true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.RegisterRequest
		setupMock func(mockRepo *userMocks.MockUser)
		wantErr   bool
	}{
		{
			name: "registers with an explicit email",
			req: dto.RegisterRequest{
				Phone:    "9876543210",
				Email:    "asha@example.com",
				Password: "s3cretpass",
			},
			setupMock: func(mockRepo *userMocks.MockUser) {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user userModel.User) error {
						assert.Equal(t, "asha@example.com", user.Email)

						return nil
					})
			},
		},
		{
			name: "phone only signup gets a synthetic email",
			req: dto.RegisterRequest{
				Phone:    "9876543210",
				Password: "s3cretpass",
			},
			setupMock: func(mockRepo *userMocks.MockUser) {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user userModel.User) error {
						assert.Equal(t, "+919876543210@member.mylavanya.com", user.Email)

						return nil
					})
			},
		},
		{
			name: "duplicate email or phone",
			req: dto.RegisterRequest{
				Phone:    "9876543210",
				Password: "s3cretpass",
			},
			setupMock: func(mockRepo *userMocks.MockUser) {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr: true,
		},
		{
			name: "exist check error",
			req: dto.RegisterRequest{
				Phone:    "9876543210",
				Password: "s3cretpass",
			},
			setupMock: func(mockRepo *userMocks.MockUser) {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, _ := newAuthService(t)
			tt.setupMock(mockRepo)

			err := svc.Register(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestAuthService_RegisterStoresHashedPassword(t *testing.T) {
	svc, mockRepo, _ := newAuthService(t)

	var created userModel.User

	mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user userModel.User) error {
			created = user

			return nil
		})

	err := svc.Register(context.Background(), dto.RegisterRequest{
		Phone:    "9876543210",
		Password: "s3cretpass",
	})

	require.NoError(t, err)
	assert.Equal(t, "+919876543210@member.mylavanya.com", created.Email)
	assert.Equal(t, constant.RoleMember, created.Role)
	assert.True(t, created.Active)
	assert.False(t, created.IsVerified)
	assert.Contains(t, created.Password, "$pbkdf2-sha256$i=")
	assert.NoError(t, password.Verify("s3cretpass", created.Password))
}

func TestAuthService_Login(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		TokenType:    "Bearer",
		ExpiresIn:    900,
	}

	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func(t *testing.T, mockRepo *userMocks.MockUser, mockJWT *jwtMocks.MockJWT)
		wantErr   bool
	}{
		{
			name: "login by email",
			req:  dto.LoginRequest{Email: "asha@example.com", Password: "s3cretpass"},
			setupMock: func(t *testing.T, mockRepo *userMocks.MockUser, mockJWT *jwtMocks.MockJWT) {
				user := activeUser(t, "s3cretpass")

				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)
				mockJWT.EXPECT().GenerateTokenPair(gomock.Any(), user.ID, user.Email, user.Role).Return(tokenPair, nil)
				mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "login by phone",
			req:  dto.LoginRequest{Phone: "9876543210", Password: "s3cretpass"},
			setupMock: func(t *testing.T, mockRepo *userMocks.MockUser, mockJWT *jwtMocks.MockJWT) {
				user := activeUser(t, "s3cretpass")

				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)
				mockJWT.EXPECT().GenerateTokenPair(gomock.Any(), user.ID, user.Email, user.Role).Return(tokenPair, nil)
				mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "unknown account",
			req:  dto.LoginRequest{Email: "nobody@example.com", Password: "s3cretpass"},
			setupMock: func(t *testing.T, mockRepo *userMocks.MockUser, mockJWT *jwtMocks.MockJWT) {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)
			},
			wantErr: true,
		},
		{
			name: "wrong password",
			req:  dto.LoginRequest{Email: "asha@example.com", Password: "wrongpass"},
			setupMock: func(t *testing.T, mockRepo *userMocks.MockUser, mockJWT *jwtMocks.MockJWT) {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeUser(t, "s3cretpass"), nil)
			},
			wantErr: true,
		},
		{
			name: "deactivated account",
			req:  dto.LoginRequest{Email: "asha@example.com", Password: "s3cretpass"},
			setupMock: func(t *testing.T, mockRepo *userMocks.MockUser, mockJWT *jwtMocks.MockJWT) {
				user := activeUser(t, "s3cretpass")
				user.Active = false

				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)
			},
			wantErr: true,
		},
		{
			name: "token generation error",
			req:  dto.LoginRequest{Email: "asha@example.com", Password: "s3cretpass"},
			setupMock: func(t *testing.T, mockRepo *userMocks.MockUser, mockJWT *jwtMocks.MockJWT) {
				user := activeUser(t, "s3cretpass")

				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)
				mockJWT.EXPECT().GenerateTokenPair(gomock.Any(), user.ID, user.Email, user.Role).Return(nil, errors.New("signing error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockJWT := newAuthService(t)
			tt.setupMock(t, mockRepo, mockJWT)

			res, err := svc.Login(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "access-token", res.AccessToken)
			assert.Equal(t, "refresh-token", res.RefreshToken)
			assert.Equal(t, constant.RoleMember, res.Role)
		})
	}
}

func TestAuthService_ChangePassword(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.ChangePasswordRequest
		setupMock func(t *testing.T, mockRepo *userMocks.MockUser)
		wantErr   bool
	}{
		{
			name: "successful change",
			req:  dto.ChangePasswordRequest{CurrentPassword: "s3cretpass", NewPassword: "newersecret"},
			setupMock: func(t *testing.T, mockRepo *userMocks.MockUser) {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeUser(t, "s3cretpass"), nil)
				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						hashed, ok := fields[userModel.FieldPassword].(string)
						require.True(t, ok)
						assert.NoError(t, password.Verify("newersecret", hashed))

						return nil
					})
			},
		},
		{
			name: "wrong current password",
			req:  dto.ChangePasswordRequest{CurrentPassword: "wrongpass", NewPassword: "newersecret"},
			setupMock: func(t *testing.T, mockRepo *userMocks.MockUser) {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeUser(t, "s3cretpass"), nil)
			},
			wantErr: true,
		},
		{
			name: "user not found",
			req:  dto.ChangePasswordRequest{CurrentPassword: "s3cretpass", NewPassword: "newersecret"},
			setupMock: func(t *testing.T, mockRepo *userMocks.MockUser) {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, _ := newAuthService(t)
			tt.setupMock(t, mockRepo)

			err := svc.ChangePassword(context.Background(), tt.req, "user-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	svc, _, mockJWT := newAuthService(t)

	mockJWT.EXPECT().
		RefreshTokens(gomock.Any(), "old-refresh").
		Return(&jwt.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh", ExpiresIn: 900}, nil)

	res, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "old-refresh"})

	assert.NoError(t, err)
	assert.Equal(t, "new-access", res.AccessToken)
	assert.Equal(t, "new-refresh", res.RefreshToken)
}

func TestAuthService_RefreshTokenInvalid(t *testing.T) {
	svc, _, mockJWT := newAuthService(t)

	mockJWT.EXPECT().
		RefreshTokens(gomock.Any(), "stale-refresh").
		Return(nil, errors.New("token has expired"))

	_, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "stale-refresh"})

	assert.Error(t, err)
}

func TestAuthService_MarkPhoneVerified(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mockRepo *userMocks.MockUser)
		wantErr   bool
	}{
		{
			name: "flips the verified flag",
			setupMock: func(mockRepo *userMocks.MockUser) {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						assert.Equal(t, true, fields[userModel.FieldIsVerified])

						return nil
					})
			},
		},
		{
			name: "unknown phone",
			setupMock: func(mockRepo *userMocks.MockUser) {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, _ := newAuthService(t)
			tt.setupMock(mockRepo)

			err := svc.MarkPhoneVerified(context.Background(), "9876543210")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
