package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=OTP=MockOTPService

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/anupam2nd/mylavanya-sub003/config"
	"github.com/anupam2nd/mylavanya-sub003/infras/otel"
	bookingModel "github.com/anupam2nd/mylavanya-sub003/internal/domains/booking/model"
	bookingDto "github.com/anupam2nd/mylavanya-sub003/internal/domains/booking/model/dto"
	bookingRepo "github.com/anupam2nd/mylavanya-sub003/internal/domains/booking/repository"
	bookingSvc "github.com/anupam2nd/mylavanya-sub003/internal/domains/booking/service"
	"github.com/anupam2nd/mylavanya-sub003/internal/domains/otp/model"
	"github.com/anupam2nd/mylavanya-sub003/internal/domains/otp/model/dto"
	"github.com/anupam2nd/mylavanya-sub003/internal/domains/otp/repository"
	"github.com/anupam2nd/mylavanya-sub003/shared/constant"
	gDto "github.com/anupam2nd/mylavanya-sub003/shared/dto"
	"github.com/anupam2nd/mylavanya-sub003/shared/failure"
	gModel "github.com/anupam2nd/mylavanya-sub003/shared/model"
	"github.com/anupam2nd/mylavanya-sub003/shared/timezone"
)

const (
	serviceCodeDigits    = 6
	addServiceCodeDigits = 4

	errMsgInvalidOTP = "Invalid or Expired OTP"
	errMsgExpiredOTP = "OTP has expired"
)

type OTP interface {
	SendServiceOTP(ctx context.Context, req dto.SendServiceOTPRequest) (dto.SendOTPResponse, error)
	VerifyServiceOTP(ctx context.Context, req dto.VerifyServiceOTPRequest) error
	SendRegistrationOTP(ctx context.Context, req dto.SendRegistrationOTPRequest) (dto.SendOTPResponse, error)
	VerifyRegistrationOTP(ctx context.Context, req dto.VerifyRegistrationOTPRequest) error
	PurgeExpired(ctx context.Context) (int64, error)
}

type serviceImpl struct {
	repo        repository.OTP
	bookingRepo bookingRepo.Booking
	booking     bookingSvc.Booking
	cfg         *config.Config
	otel        otel.Otel
}

func New(repo repository.OTP, bookingRepo bookingRepo.Booking, booking bookingSvc.Booking, cfg *config.Config, otel otel.Otel) OTP {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		booking:     booking,
		cfg:         cfg,
		otel:        otel,
	}
}

// SendServiceOTP issues a fresh code for a booking status transition. The
// booking must be in a status that allows the requested transition. Any older
// code for the same booking and purpose is discarded first. Delivery to the
// customer's phone happens out of band.
func (s *serviceImpl) SendServiceOTP(ctx context.Context, req dto.SendServiceOTPRequest) (res dto.SendOTPResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SendServiceOTP")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.bookingRepo.Get(ctx, filterBookingNo(req.BookingNo))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	switch req.Purpose {
	case model.PurposeStart:
		if !bookingModel.CanSendOTP(booking.Status) {
			return res, failure.BadRequestFromString(fmt.Sprintf("cannot send OTP for booking in status %q", booking.Status)) // nolint:wrapcheck
		}
	case model.PurposeComplete:
		if !bookingModel.CanComplete(booking.Status) {
			return res, failure.BadRequestFromString(fmt.Sprintf("booking in status %q cannot be completed", booking.Status)) // nolint:wrapcheck
		}
	case model.PurposeAddService:
		if bookingModel.IsTerminal(booking.Status) {
			return res, failure.BadRequestFromString("booking is already closed") // nolint:wrapcheck
		}
	}

	digits := serviceCodeDigits
	expireMin := s.cfg.OTP.ServiceExpireMin

	if req.Purpose == model.PurposeAddService {
		digits = addServiceCodeDigits
		expireMin = s.cfg.OTP.AddServiceExpireMin
	}

	otp, err := s.issue(ctx, req.BookingNo, booking.CustomerPhone, req.Purpose, digits, expireMin)
	if err != nil {
		return res, err
	}

	return dto.SendOTPResponse{
		BookingNo: req.BookingNo,
		Purpose:   req.Purpose,
		ExpiresAt: timezone.Format(otp.ExpiresAt, constant.DateTimeFormat),
	}, nil
}

// VerifyServiceOTP checks the code and, when it matches, applies the status
// transition tied to its purpose. A verified code is removed immediately so
// it can never be replayed; a failed downstream status update does not
// re-arm it.
func (s *serviceImpl) VerifyServiceOTP(ctx context.Context, req dto.VerifyServiceOTPRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".VerifyServiceOTP")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.consume(ctx, filterOTP(model.FieldBookingNo, req.BookingNo, req.OTP, req.Purpose)); err != nil {
		return err
	}

	switch req.Purpose {
	case model.PurposeStart:
		err = s.booking.UpdateStatus(ctx, bookingDto.UpdateBookingStatusRequest{Status: bookingModel.StatusServiceStarted}, req.BookingNo)
	case model.PurposeComplete:
		err = s.booking.UpdateStatus(ctx, bookingDto.UpdateBookingStatusRequest{Status: bookingModel.StatusDone}, req.BookingNo)
	}

	if err != nil {
		log.Error().Err(err).Str("booking_no", req.BookingNo).Msg("OTP verified but status update failed")

		return fmt.Errorf("OTP verified but status update failed: %w", err)
	}

	return nil
}

// SendRegistrationOTP issues a signup code keyed by phone number.
func (s *serviceImpl) SendRegistrationOTP(ctx context.Context, req dto.SendRegistrationOTPRequest) (res dto.SendOTPResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SendRegistrationOTP")
	defer scope.End()
	defer scope.TraceIfError(err)

	otp, err := s.issue(ctx, constant.Empty, req.Phone, model.PurposeRegistration, serviceCodeDigits, s.cfg.OTP.RegistrationExpireMin)
	if err != nil {
		return res, err
	}

	return dto.SendOTPResponse{
		Phone:     req.Phone,
		Purpose:   model.PurposeRegistration,
		ExpiresAt: timezone.Format(otp.ExpiresAt, constant.DateTimeFormat),
	}, nil
}

func (s *serviceImpl) VerifyRegistrationOTP(ctx context.Context, req dto.VerifyRegistrationOTPRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".VerifyRegistrationOTP")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.consume(ctx, filterOTP(model.FieldPhone, req.Phone, req.OTP, model.PurposeRegistration))
}

// PurgeExpired removes codes past their expiry. Scheduled by the purge job.
func (s *serviceImpl) PurgeExpired(ctx context.Context) (deleted int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PurgeExpired")
	defer scope.End()
	defer scope.TraceIfError(err)

	deleted, err = s.repo.DeleteExpired(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to purge expired otps")

		return 0, fmt.Errorf("failed to purge expired otps: %w", err)
	}

	if deleted > 0 {
		log.Info().Int64("deleted", deleted).Msg("purged expired otps")
	}

	return deleted, nil
}

// issue replaces any previous code for the same key and purpose with a fresh
// one.
func (s *serviceImpl) issue(ctx context.Context, bookingNo, phone, purpose string, digits, expireMin int) (model.OTP, error) {
	field, key := model.FieldBookingNo, bookingNo
	if bookingNo == constant.Empty {
		field, key = model.FieldPhone, phone
	}

	err := s.repo.Delete(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Table:    model.TableName,
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    key,
			},
			gDto.Filter{
				Table:    model.TableName,
				Field:    model.FieldPurpose,
				Operator: gDto.FilterOperatorEq,
				Value:    purpose,
				ArgName:  "otp_purpose",
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to discard previous otp")

		return model.OTP{}, fmt.Errorf("failed to discard previous otp: %w", err)
	}

	code, err := generateCode(digits)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate otp code")

		return model.OTP{}, fmt.Errorf("failed to generate otp code: %w", err)
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	now := timezone.Now()

	otp := model.OTP{
		ID:        uuid.NewString(),
		BookingNo: bookingNo,
		Phone:     phone,
		Code:      code,
		Purpose:   purpose,
		ExpiresAt: now.Add(time.Duration(expireMin) * time.Minute),
		Verified:  false,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if err = s.repo.Insert(ctx, otp); err != nil {
		log.Error().Err(err).Msg("failed to store otp")

		return model.OTP{}, fmt.Errorf("failed to store otp: %w", err)
	}

	log.Info().Str("phone", phone).Str("purpose", purpose).Msg("otp issued, delivery handled out of band")

	return otp, nil
}

// consume validates a code and deletes it. Lookup misses and already-verified
// codes collapse into one generic error so the response leaks nothing about
// which part did not match.
func (s *serviceImpl) consume(ctx context.Context, filter gDto.FilterGroup) error {
	otp, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to look up otp")

		return fmt.Errorf("failed to look up otp: %w", err)
	}

	if otp.ID == constant.Empty || otp.Verified {
		return failure.BadRequestFromString(errMsgInvalidOTP) // nolint:wrapcheck
	}

	deleteFilter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Table:    model.TableName,
				Field:    model.FieldID,
				Operator: gDto.FilterOperatorEq,
				Value:    otp.ID,
			},
		},
	}

	if otp.Expired(timezone.Now()) {
		if err := s.repo.Delete(ctx, deleteFilter); err != nil {
			log.Error().Err(err).Msg("failed to delete expired otp")
		}

		return failure.Gone(errMsgExpiredOTP) // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, deleteFilter); err != nil {
		log.Error().Err(err).Msg("failed to delete verified otp")

		return fmt.Errorf("failed to delete verified otp: %w", err)
	}

	return nil
}

func generateCode(digits int) (string, error) {
	max := big.NewInt(1)
	for range digits {
		max.Mul(max, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	return fmt.Sprintf("%0*d", digits, n.Int64()), nil
}

func filterBookingNo(bookingNo string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Table:    bookingModel.TableName,
				Field:    bookingModel.FieldBookingNo,
				Operator: gDto.FilterOperatorEq,
				Value:    bookingNo,
			},
		},
	}
}

func filterOTP(keyField, key, code, purpose string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Table:    model.TableName,
				Field:    keyField,
				Operator: gDto.FilterOperatorEq,
				Value:    key,
			},
			gDto.Filter{
				Table:    model.TableName,
				Field:    model.FieldCode,
				Operator: gDto.FilterOperatorEq,
				Value:    code,
			},
			gDto.Filter{
				Table:    model.TableName,
				Field:    model.FieldPurpose,
				Operator: gDto.FilterOperatorEq,
				Value:    purpose,
				ArgName:  "otp_purpose",
			},
		},
	}
}
