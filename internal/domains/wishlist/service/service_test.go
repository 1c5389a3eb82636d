package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/anupam2nd/mylavanya-sub003/config"
	"github.com/anupam2nd/mylavanya-sub003/infras/otel/mocks"
	wishlistMocks "github.com/anupam2nd/mylavanya-sub003/internal/domains/wishlist/mocks"
	"github.com/anupam2nd/mylavanya-sub003/internal/domains/wishlist/model"
	"github.com/anupam2nd/mylavanya-sub003/internal/domains/wishlist/model/dto"
	"github.com/anupam2nd/mylavanya-sub003/internal/domains/wishlist/service"
	cacheMocks "github.com/anupam2nd/mylavanya-sub003/shared/cache/mocks"
	"github.com/anupam2nd/mylavanya-sub003/shared/constant"
	gDto "github.com/anupam2nd/mylavanya-sub003/shared/dto"
	"github.com/anupam2nd/mylavanya-sub003/shared/failure"
	gModel "github.com/anupam2nd/mylavanya-sub003/shared/model"
	"github.com/anupam2nd/mylavanya-sub003/shared/timezone"
)

func newWishlistService(t *testing.T) (service.Wishlist, *wishlistMocks.MockWishlist, *cacheMocks.MockRedisCache) {
	ctrl := gomock.NewController(t)

	mockRepo := wishlistMocks.NewMockWishlist(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	// Cache writes and invalidations run on goroutines after the call returns.
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, cfg, mockCache, mocks.NewOtel())

	return svc, mockRepo, mockCache
}

func memberCtx(userID string) context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, userID)
}

func wishlistItem(id, userID string) model.Wishlist {
	return model.Wishlist{
		ID:          id,
		UserID:      userID,
		ServiceName: "Bridal Makeup",
		SubService:  "HD Makeup",
		ProductName: "Premium Kit",
		Price:       4999,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  userID,
			ModifiedBy: userID,
		},
	}
}

func TestWishlistService_Create(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mockRepo *wishlistMocks.MockWishlist)
		wantErr   bool
	}{
		{
			name: "successful creation",
			setupMock: func(mockRepo *wishlistMocks.MockWishlist) {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "service already in wishlist",
			setupMock: func(mockRepo *wishlistMocks.MockWishlist) {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr: true,
		},
		{
			name: "exist check error",
			setupMock: func(mockRepo *wishlistMocks.MockWishlist) {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, errors.New("database error"))
			},
			wantErr: true,
		},
		{
			name: "insert error",
			setupMock: func(mockRepo *wishlistMocks.MockWishlist) {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, _ := newWishlistService(t)
			tt.setupMock(mockRepo)

			res, err := svc.Create(memberCtx("member-1"), dto.CreateWishlistRequest{
				ServiceName: "Bridal Makeup",
				SubService:  "HD Makeup",
				Price:       4999,
			})

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "member-1", res.UserID)
			assert.Equal(t, "Bridal Makeup", res.ServiceName)
			assert.NotEmpty(t, res.ID)
		})
	}
}

func TestWishlistService_CreateScopesDuplicateCheckToUser(t *testing.T) {
	svc, mockRepo, _ := newWishlistService(t)

	mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, filter gDto.FilterGroup) (bool, error) {
			values := make(map[string]any, len(filter.Filters))
			for _, f := range filter.Filters {
				flt, ok := f.(gDto.Filter)
				if !ok {
					continue
				}
				values[flt.Field] = flt.Value
			}

			assert.Equal(t, "member-1", values["user_id"])
			assert.Equal(t, "Bridal Makeup", values["service_name"])
			assert.Equal(t, "HD Makeup", values["sub_service"])

			return false, nil
		})
	mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

	_, err := svc.Create(memberCtx("member-1"), dto.CreateWishlistRequest{
		ServiceName: "Bridal Makeup",
		SubService:  "HD Makeup",
	})
	assert.NoError(t, err)
}

func TestWishlistService_GetAll(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mockRepo *wishlistMocks.MockWishlist, mockCache *cacheMocks.MockRedisCache)
		wantErr   bool
		wantLen   int
	}{
		{
			name: "cache hit",
			setupMock: func(mockRepo *wishlistMocks.MockWishlist, mockCache *cacheMocks.MockRedisCache) {
				mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "cache miss loads the member wishlist",
			setupMock: func(mockRepo *wishlistMocks.MockWishlist, mockCache *cacheMocks.MockRedisCache) {
				mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
				mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Wishlist{
					wishlistItem("wishlist-1", "member-1"),
					wishlistItem("wishlist-2", "member-1"),
				}, nil)
			},
			wantLen: 2,
		},
		{
			name: "repository error",
			setupMock: func(mockRepo *wishlistMocks.MockWishlist, mockCache *cacheMocks.MockRedisCache) {
				mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache := newWishlistService(t)
			tt.setupMock(mockRepo, mockCache)

			res, err := svc.GetAll(memberCtx("member-1"), gDto.QueryParams{Limit: 10})

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Len(t, res.Wishlists, tt.wantLen)
		})
	}
}

func TestWishlistService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mockRepo *wishlistMocks.MockWishlist)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful deletion",
			setupMock: func(mockRepo *wishlistMocks.MockWishlist) {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(wishlistItem("wishlist-1", "member-1"), nil)
				mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "item belongs to another member",
			setupMock: func(mockRepo *wishlistMocks.MockWishlist) {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(wishlistItem("wishlist-1", "member-2"), nil)
			},
			wantErr:  true,
			wantCode: 403,
		},
		{
			name: "item not found",
			setupMock: func(mockRepo *wishlistMocks.MockWishlist) {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Wishlist{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "lookup error",
			setupMock: func(mockRepo *wishlistMocks.MockWishlist) {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Wishlist{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, _ := newWishlistService(t)
			tt.setupMock(mockRepo)

			err := svc.Delete(memberCtx("member-1"), "wishlist-1")

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
		})
	}
}
