package jwt_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/anupam2nd/mylavanya-sub003/config"
	"github.com/anupam2nd/mylavanya-sub003/infras/jwt"
)

func newJWT() jwt.JWT {
	cfg := &config.Config{}
	cfg.App.Name = "mylavanya"
	cfg.JWT.AccessSecret = "access-secret"
	cfg.JWT.RefreshSecret = "refresh-secret"
	cfg.JWT.AccessExpireMin = 15
	cfg.JWT.RefreshExpireMin = 60 * 24

	return jwt.New(cfg)
}

func TestGenerateTokenPair(t *testing.T) {
	svc := newJWT()

	pair, err := svc.GenerateTokenPair(context.Background(), "member-1", "asha@example.com", "member")
	assert.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)
	assert.Equal(t, "Bearer", pair.TokenType)
	assert.Equal(t, int64(15*60), pair.ExpiresIn)
}

func TestValidateToken(t *testing.T) {
	svc := newJWT()

	pair, err := svc.GenerateTokenPair(context.Background(), "member-1", "asha@example.com", "member")
	assert.NoError(t, err)

	claims, err := svc.ValidateToken(context.Background(), pair.AccessToken, jwt.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, "member-1", claims.UserID)
	assert.Equal(t, "asha@example.com", claims.Email)
	assert.Equal(t, "member", claims.Role)
	assert.Equal(t, jwt.AccessToken, claims.Type)
	assert.NotEmpty(t, claims.TokenID)

	// A refresh token must not pass access validation, and vice versa.
	_, err = svc.ValidateToken(context.Background(), pair.RefreshToken, jwt.AccessToken)
	assert.Error(t, err)

	_, err = svc.ValidateToken(context.Background(), pair.AccessToken, jwt.RefreshToken)
	assert.Error(t, err)

	_, err = svc.ValidateToken(context.Background(), "not-a-token", jwt.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestRefreshTokens(t *testing.T) {
	svc := newJWT()

	pair, err := svc.GenerateTokenPair(context.Background(), "member-1", "asha@example.com", "member")
	assert.NoError(t, err)

	refreshed, err := svc.RefreshTokens(context.Background(), pair.RefreshToken)
	assert.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	claims, err := svc.ValidateToken(context.Background(), refreshed.AccessToken, jwt.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, "member-1", claims.UserID)
	assert.Equal(t, "member", claims.Role)

	_, err = svc.RefreshTokens(context.Background(), pair.AccessToken)
	assert.Error(t, err)
}

func TestExtractTokenFromHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "bearer token", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "lowercase scheme", header: "bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "missing scheme", header: "abc.def.ghi", wantErr: true},
		{name: "empty token", header: "Bearer ", wantErr: true},
		{name: "empty header", header: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := jwt.ExtractTokenFromHeader(tt.header)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
