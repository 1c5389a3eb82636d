package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/anupam2nd/mylavanya-sub003/config"
	"github.com/anupam2nd/mylavanya-sub003/infras/otel/mocks"
	bookingMocks "github.com/anupam2nd/mylavanya-sub003/internal/domains/booking/mocks"
	bookingModel "github.com/anupam2nd/mylavanya-sub003/internal/domains/booking/model"
	bookingDto "github.com/anupam2nd/mylavanya-sub003/internal/domains/booking/model/dto"
	otpMocks "github.com/anupam2nd/mylavanya-sub003/internal/domains/otp/mocks"
	"github.com/anupam2nd/mylavanya-sub003/internal/domains/otp/model"
	"github.com/anupam2nd/mylavanya-sub003/internal/domains/otp/model/dto"
	"github.com/anupam2nd/mylavanya-sub003/internal/domains/otp/service"
	"github.com/anupam2nd/mylavanya-sub003/shared/failure"
	gModel "github.com/anupam2nd/mylavanya-sub003/shared/model"
	"github.com/anupam2nd/mylavanya-sub003/shared/timezone"
)

type otpMockSet struct {
	repo        *otpMocks.MockOTP
	bookingRepo *bookingMocks.MockBooking
	booking     *bookingMocks.MockBookingService
}

func newOTPService(t *testing.T) (service.OTP, otpMockSet) {
	ctrl := gomock.NewController(t)

	set := otpMockSet{
		repo:        otpMocks.NewMockOTP(ctrl),
		bookingRepo: bookingMocks.NewMockBooking(ctrl),
		booking:     bookingMocks.NewMockBookingService(ctrl),
	}

	cfg := &config.Config{}
	cfg.OTP.ServiceExpireMin = 15
	cfg.OTP.AddServiceExpireMin = 10
	cfg.OTP.RegistrationExpireMin = 5

	svc := service.New(set.repo, set.bookingRepo, set.booking, cfg, mocks.NewOtel())

	return svc, set
}

func storedOTP(bookingNo, phone, code, purpose string, expiresAt time.Time) model.OTP {
	return model.OTP{
		ID:        "otp-id",
		BookingNo: bookingNo,
		Phone:     phone,
		Code:      code,
		Purpose:   purpose,
		ExpiresAt: expiresAt,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

func TestOTPService_SendServiceOTP(t *testing.T) {
	const bookingNo = "26090007"

	booking := bookingModel.Booking{
		ID:            "booking-id",
		BookingNo:     bookingNo,
		CustomerPhone: "9876543210",
		Status:        bookingModel.StatusApprove,
	}

	tests := []struct {
		name          string
		purpose       string
		bookingStatus string
		setupMock     func(set otpMockSet, booked bookingModel.Booking)
		wantErr       bool
	}{
		{
			name:          "issues a code for the start transition",
			purpose:       model.PurposeStart,
			bookingStatus: bookingModel.StatusApprove,
			setupMock: func(set otpMockSet, booked bookingModel.Booking) {
				set.bookingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booked, nil)
				set.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
				set.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:          "issues a code for add service",
			purpose:       model.PurposeAddService,
			bookingStatus: bookingModel.StatusConfirm,
			setupMock: func(set otpMockSet, booked bookingModel.Booking) {
				set.bookingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booked, nil)
				set.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
				set.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:          "rejects the start code for a confirmed booking",
			purpose:       model.PurposeStart,
			bookingStatus: bookingModel.StatusConfirm,
			setupMock: func(set otpMockSet, booked bookingModel.Booking) {
				set.bookingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booked, nil)
			},
			wantErr: true,
		},
		{
			name:          "rejects the complete code for a pending booking",
			purpose:       model.PurposeComplete,
			bookingStatus: bookingModel.StatusPending,
			setupMock: func(set otpMockSet, booked bookingModel.Booking) {
				set.bookingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booked, nil)
			},
			wantErr: true,
		},
		{
			name:          "rejects add service on a closed booking",
			purpose:       model.PurposeAddService,
			bookingStatus: bookingModel.StatusDone,
			setupMock: func(set otpMockSet, booked bookingModel.Booking) {
				set.bookingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booked, nil)
			},
			wantErr: true,
		},
		{
			name:          "booking not found",
			purpose:       model.PurposeStart,
			bookingStatus: bookingModel.StatusApprove,
			setupMock: func(set otpMockSet, booked bookingModel.Booking) {
				set.bookingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(bookingModel.Booking{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, set := newOTPService(t)

			booked := booking
			booked.Status = tt.bookingStatus

			tt.setupMock(set, booked)

			res, err := svc.SendServiceOTP(context.Background(), dto.SendServiceOTPRequest{
				BookingNo: bookingNo,
				Purpose:   tt.purpose,
			})

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, bookingNo, res.BookingNo)
			assert.Equal(t, tt.purpose, res.Purpose)
			assert.NotEmpty(t, res.ExpiresAt)
		})
	}
}

func TestOTPService_CodeLengthAndExpiry(t *testing.T) {
	const bookingNo = "26090007"

	tests := []struct {
		name          string
		purpose       string
		bookingStatus string
		wantCodeLen   int
		wantExpiry    time.Duration
	}{
		{
			name:          "service codes are six digits and live fifteen minutes",
			purpose:       model.PurposeStart,
			bookingStatus: bookingModel.StatusApprove,
			wantCodeLen:   6,
			wantExpiry:    15 * time.Minute,
		},
		{
			name:          "add service codes are four digits and live ten minutes",
			purpose:       model.PurposeAddService,
			bookingStatus: bookingModel.StatusConfirm,
			wantCodeLen:   4,
			wantExpiry:    10 * time.Minute,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, set := newOTPService(t)

			set.bookingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(bookingModel.Booking{
				ID:            "booking-id",
				BookingNo:     bookingNo,
				CustomerPhone: "9876543210",
				Status:        tt.bookingStatus,
			}, nil)
			set.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

			var issued model.OTP

			set.repo.EXPECT().
				Insert(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, otp model.OTP) error {
					issued = otp

					return nil
				})

			before := timezone.Now()
			_, err := svc.SendServiceOTP(context.Background(), dto.SendServiceOTPRequest{
				BookingNo: bookingNo,
				Purpose:   tt.purpose,
			})

			require.NoError(t, err)
			assert.Len(t, issued.Code, tt.wantCodeLen)
			assert.Equal(t, "9876543210", issued.Phone)
			assert.False(t, issued.Verified)
			assert.WithinDuration(t, before.Add(tt.wantExpiry), issued.ExpiresAt, 5*time.Second)
		})
	}
}

func TestOTPService_VerifyServiceOTP(t *testing.T) {
	const bookingNo = "26090007"

	valid := storedOTP(bookingNo, "9876543210", "482913", model.PurposeStart, timezone.Now().Add(10*time.Minute))

	tests := []struct {
		name      string
		purpose   string
		setupMock func(set otpMockSet)
		wantErr   bool
		wantCode  int
	}{
		{
			name:    "start code moves the booking to service started",
			purpose: model.PurposeStart,
			setupMock: func(set otpMockSet) {
				set.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(valid, nil)
				set.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
				set.booking.EXPECT().
					UpdateStatus(gomock.Any(), bookingDto.UpdateBookingStatusRequest{Status: bookingModel.StatusServiceStarted}, bookingNo).
					Return(nil)
			},
		},
		{
			name:    "complete code moves the booking to done",
			purpose: model.PurposeComplete,
			setupMock: func(set otpMockSet) {
				complete := valid
				complete.Purpose = model.PurposeComplete

				set.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(complete, nil)
				set.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
				set.booking.EXPECT().
					UpdateStatus(gomock.Any(), bookingDto.UpdateBookingStatusRequest{Status: bookingModel.StatusDone}, bookingNo).
					Return(nil)
			},
		},
		{
			name:    "unknown code collapses into the generic error",
			purpose: model.PurposeStart,
			setupMock: func(set otpMockSet) {
				set.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.OTP{}, nil)
			},
			wantErr:  true,
			wantCode: 400,
		},
		{
			name:    "expired code is deleted and reported gone",
			purpose: model.PurposeStart,
			setupMock: func(set otpMockSet) {
				expired := valid
				expired.ExpiresAt = timezone.Now().Add(-time.Minute)

				set.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(expired, nil)
				set.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantErr:  true,
			wantCode: 410,
		},
		{
			name:    "consumed code is not re-armed when the status update fails",
			purpose: model.PurposeStart,
			setupMock: func(set otpMockSet) {
				set.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(valid, nil)
				set.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
				set.booking.EXPECT().
					UpdateStatus(gomock.Any(), gomock.Any(), bookingNo).
					Return(errors.New("update error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, set := newOTPService(t)
			tt.setupMock(set)

			err := svc.VerifyServiceOTP(context.Background(), dto.VerifyServiceOTPRequest{
				BookingNo: bookingNo,
				OTP:       "482913",
				Purpose:   tt.purpose,
			})

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode > 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOTPService_VerifyRegistrationOTP(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(set otpMockSet)
		wantErr   bool
	}{
		{
			name: "valid code is consumed",
			setupMock: func(set otpMockSet) {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedOTP("", "9876543210", "551203", model.PurposeRegistration, timezone.Now().Add(5*time.Minute)), nil)
				set.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "wrong code",
			setupMock: func(set otpMockSet) {
				set.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.OTP{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, set := newOTPService(t)
			tt.setupMock(set)

			err := svc.VerifyRegistrationOTP(context.Background(), dto.VerifyRegistrationOTPRequest{
				Phone: "9876543210",
				OTP:   "551203",
			})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOTPService_PurgeExpired(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(set otpMockSet)
		wantErr   bool
		want      int64
	}{
		{
			name: "returns the purge count",
			setupMock: func(set otpMockSet) {
				set.repo.EXPECT().DeleteExpired(gomock.Any()).Return(int64(7), nil)
			},
			want: 7,
		},
		{
			name: "repository error",
			setupMock: func(set otpMockSet) {
				set.repo.EXPECT().DeleteExpired(gomock.Any()).Return(int64(0), errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, set := newOTPService(t)
			tt.setupMock(set)

			deleted, err := svc.PurgeExpired(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, deleted)
			}
		})
	}
}
