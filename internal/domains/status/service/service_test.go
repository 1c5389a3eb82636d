package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/anupam2nd/mylavanya-sub003/config"
	"github.com/anupam2nd/mylavanya-sub003/infras/otel/mocks"
	statusMocks "github.com/anupam2nd/mylavanya-sub003/internal/domains/status/mocks"
	"github.com/anupam2nd/mylavanya-sub003/internal/domains/status/model"
	"github.com/anupam2nd/mylavanya-sub003/internal/domains/status/model/dto"
	"github.com/anupam2nd/mylavanya-sub003/internal/domains/status/service"
	cacheMocks "github.com/anupam2nd/mylavanya-sub003/shared/cache/mocks"
	"github.com/anupam2nd/mylavanya-sub003/shared/constant"
	gModel "github.com/anupam2nd/mylavanya-sub003/shared/model"
	"github.com/anupam2nd/mylavanya-sub003/shared/timezone"
)

func newStatusService(t *testing.T) (service.Status, *statusMocks.MockStatus, *cacheMocks.MockRedisCache) {
	ctrl := gomock.NewController(t)

	mockRepo := statusMocks.NewMockStatus(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, cfg, mockCache, mocks.NewOtel())

	return svc, mockRepo, mockCache
}

func catalog() []model.Status {
	return []model.Status{
		{
			ID:         "status-1",
			StatusCode: "pending",
			StatusName: "Pending Confirmation",
			Color:      "#FFC107",
			Active:     true,
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
			},
		},
		{
			ID:         "status-2",
			StatusCode: "service_started",
			StatusName: "Service In Progress",
			Color:      "#2196F3",
			Active:     true,
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
			},
		},
	}
}

func TestStatusService_Create(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mockRepo *statusMocks.MockStatus)
		wantErr   bool
	}{
		{
			name: "successful creation",
			setupMock: func(mockRepo *statusMocks.MockStatus) {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "duplicate status code",
			setupMock: func(mockRepo *statusMocks.MockStatus) {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr: true,
		},
		{
			name: "exist check error",
			setupMock: func(mockRepo *statusMocks.MockStatus) {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, _ := newStatusService(t)
			tt.setupMock(mockRepo)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
			err := svc.Create(ctx, dto.CreateStatusRequest{
				StatusCode: "ontheway",
				StatusName: "On The Way",
			})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStatusService_DisplayNames(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mockRepo *statusMocks.MockStatus, mockCache *cacheMocks.MockRedisCache)
		wantErr   bool
		want      map[string]string
	}{
		{
			name: "cache miss loads the active catalog",
			setupMock: func(mockRepo *statusMocks.MockStatus, mockCache *cacheMocks.MockRedisCache) {
				mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(catalog(), nil)
			},
			want: map[string]string{
				"pending":         "Pending Confirmation",
				"service_started": "Service In Progress",
			},
		},
		{
			name: "repository error",
			setupMock: func(mockRepo *statusMocks.MockStatus, mockCache *cacheMocks.MockRedisCache) {
				mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache := newStatusService(t)
			tt.setupMock(mockRepo, mockCache)

			names, err := svc.DisplayNames(context.Background())

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestStatusService_ResolveDisplayName(t *testing.T) {
	tests := []struct {
		name      string
		code      string
		setupMock func(mockRepo *statusMocks.MockStatus, mockCache *cacheMocks.MockRedisCache)
		want      string
	}{
		{
			name: "catalog match",
			code: "service_started",
			setupMock: func(mockRepo *statusMocks.MockStatus, mockCache *cacheMocks.MockRedisCache) {
				mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(catalog(), nil)
			},
			want: "Service In Progress",
		},
		{
			name: "unknown code is humanized",
			code: "ontheway",
			setupMock: func(mockRepo *statusMocks.MockStatus, mockCache *cacheMocks.MockRedisCache) {
				mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(catalog(), nil)
			},
			want: "Ontheway",
		},
		{
			name: "catalog unavailable falls back to humanizing",
			code: "service_started",
			setupMock: func(mockRepo *statusMocks.MockStatus, mockCache *cacheMocks.MockRedisCache) {
				mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))
			},
			want: "Service Started",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache := newStatusService(t)
			tt.setupMock(mockRepo, mockCache)

			assert.Equal(t, tt.want, svc.ResolveDisplayName(context.Background(), tt.code))
		})
	}
}

func TestStatusService_ResolveColor(t *testing.T) {
	tests := []struct {
		name      string
		code      string
		setupMock func(mockRepo *statusMocks.MockStatus, mockCache *cacheMocks.MockRedisCache)
		want      string
	}{
		{
			name: "catalog match",
			code: "service_started",
			setupMock: func(mockRepo *statusMocks.MockStatus, mockCache *cacheMocks.MockRedisCache) {
				mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(catalog(), nil)
			},
			want: "#2196F3",
		},
		{
			name: "unknown code gets the neutral color",
			code: "ontheway",
			setupMock: func(mockRepo *statusMocks.MockStatus, mockCache *cacheMocks.MockRedisCache) {
				mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(catalog(), nil)
			},
			want: "#9E9E9E",
		},
		{
			name: "catalog unavailable gets the neutral color",
			code: "service_started",
			setupMock: func(mockRepo *statusMocks.MockStatus, mockCache *cacheMocks.MockRedisCache) {
				mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))
			},
			want: "#9E9E9E",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache := newStatusService(t)
			tt.setupMock(mockRepo, mockCache)

			assert.Equal(t, tt.want, svc.ResolveColor(context.Background(), tt.code))
		})
	}
}

func TestStatusService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mockRepo *statusMocks.MockStatus)
		wantErr   bool
	}{
		{
			name: "successful deletion",
			setupMock: func(mockRepo *statusMocks.MockStatus) {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "status not found",
			setupMock: func(mockRepo *statusMocks.MockStatus) {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, _ := newStatusService(t)
			tt.setupMock(mockRepo)

			err := svc.Delete(context.Background(), "status-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
