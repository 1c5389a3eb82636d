package service_test

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/anupam2nd/mylavanya-sub003/config"
	"github.com/anupam2nd/mylavanya-sub003/infras/otel/mocks"
	artistMocks "github.com/anupam2nd/mylavanya-sub003/internal/domains/artist/mocks"
	bookingMocks "github.com/anupam2nd/mylavanya-sub003/internal/domains/booking/mocks"
	"github.com/anupam2nd/mylavanya-sub003/internal/domains/booking/model"
	"github.com/anupam2nd/mylavanya-sub003/internal/domains/booking/model/dto"
	"github.com/anupam2nd/mylavanya-sub003/internal/domains/booking/service"
	notificationMocks "github.com/anupam2nd/mylavanya-sub003/internal/domains/notification/mocks"
	statusMocks "github.com/anupam2nd/mylavanya-sub003/internal/domains/status/mocks"
	cacheMocks "github.com/anupam2nd/mylavanya-sub003/shared/cache/mocks"
	"github.com/anupam2nd/mylavanya-sub003/shared/constant"
	gDto "github.com/anupam2nd/mylavanya-sub003/shared/dto"
	gModel "github.com/anupam2nd/mylavanya-sub003/shared/model"
	"github.com/anupam2nd/mylavanya-sub003/shared/timezone"
)

type bookingMockSet struct {
	repo         *bookingMocks.MockBooking
	artistRepo   *artistMocks.MockArtist
	status       *statusMocks.MockStatusService
	notification *notificationMocks.MockNotificationService
	cache        *cacheMocks.MockRedisCache
}

func newBookingService(t *testing.T) (service.Booking, bookingMockSet) {
	ctrl := gomock.NewController(t)

	set := bookingMockSet{
		repo:         bookingMocks.NewMockBooking(ctrl),
		artistRepo:   artistMocks.NewMockArtist(ctrl),
		status:       statusMocks.NewMockStatusService(ctrl),
		notification: notificationMocks.NewMockNotificationService(ctrl),
		cache:        cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	// Cache writes and invalidations run on goroutines after the call returns.
	set.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	set.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	set.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(set.repo, set.artistRepo, set.status, set.notification, cfg, set.cache, mocks.NewOtel())

	return svc, set
}

func newTestTx(t *testing.T) (*sqlx.Tx, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	mock.ExpectBegin()

	tx, err := sqlx.NewDb(db, "sqlmock").Beginx()
	require.NoError(t, err)

	return tx, mock
}

func bookingGroup(bookingNo string, artistID *string, status string, jobs int) []model.Booking {
	group := make([]model.Booking, jobs)
	for i := range group {
		group[i] = model.Booking{
			ID:            "booking-id-" + strings.Repeat("x", i+1),
			BookingNo:     bookingNo,
			JobNo:         i + 1,
			CustomerName:  "Asha Verma",
			CustomerEmail: "asha@example.com",
			CustomerPhone: "9876543210",
			Address:       "12 Park Street",
			Pincode:       "700016",
			BookingDate:   time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
			BookingTime:   "10:30",
			ServiceName:   "Bridal Makeup",
			Price:         4500,
			Quantity:      1,
			Status:        status,
			ArtistID:      artistID,
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
				CreatedBy:  "member-1",
				ModifiedBy: "member-1",
			},
		}
	}

	return group
}

func TestBookingService_Create(t *testing.T) {
	prefix := timezone.Now().Format(constant.BookingMonthFormat)

	req := dto.CreateBookingRequest{
		CustomerName:  "Asha Verma",
		CustomerPhone: "9876543210",
		Address:       "12 Park Street",
		Pincode:       "700016",
		BookingDate:   "2026-09-15",
		BookingTime:   "10:30",
		Services: []dto.BookingServiceItem{
			{ServiceName: "Bridal Makeup", Price: 4500, Quantity: 1},
			{ServiceName: "Hair Styling", Price: 1200, Quantity: 1},
		},
	}

	tests := []struct {
		name          string
		setupMock     func(set bookingMockSet)
		wantErr       bool
		wantBookingNo string
		wantPattern   string
	}{
		{
			name: "first booking of the month starts at 0001",
			setupMock: func(set bookingMockSet) {
				set.repo.EXPECT().MaxBookingNo(gomock.Any(), prefix).Return("", nil)
				set.repo.EXPECT().InsertBulk(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantBookingNo: prefix + "0001",
		},
		{
			name: "continues from the highest existing suffix",
			setupMock: func(set bookingMockSet) {
				set.repo.EXPECT().MaxBookingNo(gomock.Any(), prefix).Return(prefix+"0042", nil)
				set.repo.EXPECT().InsertBulk(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantBookingNo: prefix + "0043",
		},
		{
			name: "suffix wraps around after 9999",
			setupMock: func(set bookingMockSet) {
				set.repo.EXPECT().MaxBookingNo(gomock.Any(), prefix).Return(prefix+"9999", nil)
				set.repo.EXPECT().InsertBulk(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantBookingNo: prefix + "0000",
		},
		{
			name: "falls back to a random suffix when the max query fails",
			setupMock: func(set bookingMockSet) {
				set.repo.EXPECT().MaxBookingNo(gomock.Any(), prefix).Return("", errors.New("database error"))
				set.repo.EXPECT().InsertBulk(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantPattern: "^" + prefix + `\d{4}$`,
		},
		{
			name: "falls back to a random suffix on a malformed max value",
			setupMock: func(set bookingMockSet) {
				set.repo.EXPECT().MaxBookingNo(gomock.Any(), prefix).Return(prefix+"XYZW", nil)
				set.repo.EXPECT().InsertBulk(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantPattern: "^" + prefix + `\d{4}$`,
		},
		{
			name: "insert error",
			setupMock: func(set bookingMockSet) {
				set.repo.EXPECT().MaxBookingNo(gomock.Any(), prefix).Return("", nil)
				set.repo.EXPECT().InsertBulk(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, set := newBookingService(t)
			tt.setupMock(set)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "member-1")
			res, err := svc.Create(ctx, req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, len(req.Services), res.ServiceCount)
			assert.Regexp(t, regexp.MustCompile(`^\d{8}$`), res.BookingNo)

			if tt.wantBookingNo != "" {
				assert.Equal(t, tt.wantBookingNo, res.BookingNo)
			}

			if tt.wantPattern != "" {
				assert.Regexp(t, regexp.MustCompile(tt.wantPattern), res.BookingNo)
			}
		})
	}
}

func TestBookingService_CreateNumbersLineItemsFromOne(t *testing.T) {
	svc, set := newBookingService(t)

	prefix := timezone.Now().Format(constant.BookingMonthFormat)

	var inserted []model.Booking

	set.repo.EXPECT().MaxBookingNo(gomock.Any(), prefix).Return("", nil)
	set.repo.EXPECT().
		InsertBulk(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, items []model.Booking) error {
			inserted = items

			return nil
		})

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "member-1")
	res, err := svc.Create(ctx, dto.CreateBookingRequest{
		CustomerName:  "Asha Verma",
		CustomerPhone: "9876543210",
		Address:       "12 Park Street",
		Pincode:       "700016",
		BookingDate:   "2026-09-15",
		BookingTime:   "10:30",
		Services: []dto.BookingServiceItem{
			{ServiceName: "Bridal Makeup", Price: 4500, Quantity: 1},
			{ServiceName: "Hair Styling", Price: 1200, Quantity: 1},
			{ServiceName: "Mehendi", Price: 800, Quantity: 2},
		},
	})

	assert.NoError(t, err)
	require.Len(t, inserted, 3)

	for i, item := range inserted {
		assert.Equal(t, res.BookingNo, item.BookingNo)
		assert.Equal(t, i+1, item.JobNo)
		assert.Equal(t, model.StatusPending, item.Status)
		assert.Equal(t, "member-1", item.CreatedBy)
	}
}

func TestBookingService_CreateRejectsBadDate(t *testing.T) {
	svc, set := newBookingService(t)

	prefix := timezone.Now().Format(constant.BookingMonthFormat)
	set.repo.EXPECT().MaxBookingNo(gomock.Any(), prefix).Return("", nil)

	_, err := svc.Create(context.Background(), dto.CreateBookingRequest{
		CustomerName:  "Asha Verma",
		CustomerPhone: "9876543210",
		Address:       "12 Park Street",
		Pincode:       "700016",
		BookingDate:   "15/09/2026",
		BookingTime:   "10:30",
		Services:      []dto.BookingServiceItem{{ServiceName: "Bridal Makeup", Quantity: 1}},
	})

	assert.Error(t, err)
}

func TestBookingService_UpdateStatus(t *testing.T) {
	const bookingNo = "26090007"

	artistID := "artist-1"

	tests := []struct {
		name       string
		status     string
		setupMock  func(t *testing.T, set bookingMockSet)
		wantErr    bool
		wantErrMsg string
	}{
		{
			name:   "rejects artist statuses when no artist is assigned",
			status: model.StatusBeauticianAssigned,
			setupMock: func(t *testing.T, set bookingMockSet) {
				set.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(bookingGroup(bookingNo, nil, model.StatusPending, 2), nil)
			},
			wantErr:    true,
			wantErrMsg: "Artist Required",
		},
		{
			name:   "fans the status out to every line item",
			status: model.StatusConfirm,
			setupMock: func(t *testing.T, set bookingMockSet) {
				set.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(bookingGroup(bookingNo, &artistID, model.StatusApprove, 2), nil)

				tx, sqlMock := newTestTx(t)
				sqlMock.ExpectCommit()

				set.repo.EXPECT().BeginTx(gomock.Any()).Return(tx, nil)
				set.repo.EXPECT().
					UpdateTx(gomock.Any(), tx, gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, model.StatusConfirm, fields[model.FieldStatus])

						return nil
					})

				set.status.EXPECT().ResolveDisplayName(gomock.Any(), model.StatusConfirm).Return("Confirmed")
				set.notification.EXPECT().
					Notify(gomock.Any(), "asha@example.com", bookingNo, gomock.Any()).
					Return(nil)
			},
		},
		{
			name:   "rolls back when the group update fails",
			status: model.StatusConfirm,
			setupMock: func(t *testing.T, set bookingMockSet) {
				set.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(bookingGroup(bookingNo, &artistID, model.StatusApprove, 2), nil)

				tx, sqlMock := newTestTx(t)
				sqlMock.ExpectRollback()

				set.repo.EXPECT().BeginTx(gomock.Any()).Return(tx, nil)
				set.repo.EXPECT().
					UpdateTx(gomock.Any(), tx, gomock.Any(), gomock.Any()).
					Return(errors.New("update error"))
			},
			wantErr: true,
		},
		{
			name:   "booking not found",
			status: model.StatusConfirm,
			setupMock: func(t *testing.T, set bookingMockSet) {
				set.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Booking{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, set := newBookingService(t)
			tt.setupMock(t, set)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
			err := svc.UpdateStatus(ctx, dto.UpdateBookingStatusRequest{Status: tt.status}, bookingNo)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantErrMsg != "" {
					assert.Contains(t, err.Error(), tt.wantErrMsg)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_AssignArtist(t *testing.T) {
	const bookingNo = "26090007"

	tests := []struct {
		name      string
		setupMock func(t *testing.T, set bookingMockSet)
		wantErr   bool
	}{
		{
			name: "assigns the artist to every line item",
			setupMock: func(t *testing.T, set bookingMockSet) {
				set.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(bookingGroup(bookingNo, nil, model.StatusApprove, 2), nil)
				set.artistRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

				tx, sqlMock := newTestTx(t)
				sqlMock.ExpectCommit()

				set.repo.EXPECT().BeginTx(gomock.Any()).Return(tx, nil)
				set.repo.EXPECT().
					UpdateTx(gomock.Any(), tx, gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, "artist-1", fields[model.FieldArtistID])
						assert.Equal(t, "admin-1", fields[model.FieldAssignedBy])
						assert.NotNil(t, fields[model.FieldAssignedAt])

						return nil
					})

				set.notification.EXPECT().
					Notify(gomock.Any(), "asha@example.com", bookingNo, gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "rejects an unknown or inactive artist",
			setupMock: func(t *testing.T, set bookingMockSet) {
				set.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(bookingGroup(bookingNo, nil, model.StatusApprove, 1), nil)
				set.artistRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr: true,
		},
		{
			name: "artist lookup error",
			setupMock: func(t *testing.T, set bookingMockSet) {
				set.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(bookingGroup(bookingNo, nil, model.StatusApprove, 1), nil)
				set.artistRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, set := newBookingService(t)
			tt.setupMock(t, set)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
			err := svc.AssignArtist(ctx, dto.AssignArtistRequest{ArtistID: "artist-1"}, bookingNo)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_AddService(t *testing.T) {
	const bookingNo = "26090007"

	artistID := "artist-1"

	tests := []struct {
		name      string
		setupMock func(set bookingMockSet)
		wantErr   bool
		wantJobNo int
	}{
		{
			name: "appends with the next job number",
			setupMock: func(set bookingMockSet) {
				set.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(bookingGroup(bookingNo, &artistID, model.StatusConfirm, 3), nil)
				set.repo.EXPECT().MaxJobNo(gomock.Any(), bookingNo).Return(3, nil)
				set.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, item model.Booking) error {
						assert.Equal(t, 4, item.JobNo)
						assert.Equal(t, "Asha Verma", item.CustomerName)
						assert.Equal(t, model.StatusConfirm, item.Status)
						assert.Equal(t, &artistID, item.ArtistID)

						return nil
					})
			},
			wantJobNo: 4,
		},
		{
			name: "rejects closed bookings",
			setupMock: func(set bookingMockSet) {
				set.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(bookingGroup(bookingNo, &artistID, model.StatusDone, 1), nil)
			},
			wantErr: true,
		},
		{
			name: "max job number error",
			setupMock: func(set bookingMockSet) {
				set.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(bookingGroup(bookingNo, &artistID, model.StatusConfirm, 1), nil)
				set.repo.EXPECT().MaxJobNo(gomock.Any(), bookingNo).Return(0, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, set := newBookingService(t)
			tt.setupMock(set)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "member-1")
			res, err := svc.AddService(ctx, dto.AddServiceRequest{
				BookingServiceItem: dto.BookingServiceItem{ServiceName: "Nail Art", Price: 600, Quantity: 1},
			}, bookingNo)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, bookingNo, res.BookingNo)
				assert.Equal(t, tt.wantJobNo, res.JobNo)
			}
		})
	}
}

func TestBookingService_Get(t *testing.T) {
	const bookingNo = "26090007"

	tests := []struct {
		name      string
		setupMock func(set bookingMockSet)
		wantErr   bool
		wantItems int
	}{
		{
			name: "cache hit",
			setupMock: func(set bookingMockSet) {
				set.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "cache miss loads the group in job order",
			setupMock: func(set bookingMockSet) {
				set.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				set.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(bookingGroup(bookingNo, nil, model.StatusPending, 2), nil)
				set.status.EXPECT().ResolveDisplayName(gomock.Any(), model.StatusPending).Return("Pending")
			},
			wantItems: 2,
		},
		{
			name: "booking not found",
			setupMock: func(set bookingMockSet) {
				set.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				set.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Booking{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, set := newBookingService(t)
			tt.setupMock(set)

			res, err := svc.Get(context.Background(), bookingNo)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)

			if tt.wantItems > 0 {
				assert.Equal(t, bookingNo, res.BookingNo)
				assert.Len(t, res.Items, tt.wantItems)
			}
		})
	}
}

func TestBookingService_ExportCSV(t *testing.T) {
	svc, set := newBookingService(t)

	group := bookingGroup("26090007", nil, model.StatusPending, 2)
	group[1].CustomerName = "Smith, John"

	set.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(group, nil)

	content, err := svc.ExportCSV(context.Background(), gDto.FilterGroup{})

	assert.NoError(t, err)

	output := string(content)
	lines := strings.Split(strings.TrimSpace(output), "\n")

	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Booking No")
	assert.Contains(t, lines[0], "Customer Name")
	assert.Contains(t, output, `"Smith, John"`)
	assert.Contains(t, output, "26090007")
}

func TestBookingService_ExportCSVError(t *testing.T) {
	svc, set := newBookingService(t)

	set.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("database error"))

	_, err := svc.ExportCSV(context.Background(), gDto.FilterGroup{})

	assert.Error(t, err)
}
