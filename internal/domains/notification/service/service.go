package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Notification=MockNotificationService

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/anupam2nd/mylavanya-sub003/config"
	"github.com/anupam2nd/mylavanya-sub003/infras/kafka"
	"github.com/anupam2nd/mylavanya-sub003/infras/otel"
	"github.com/anupam2nd/mylavanya-sub003/internal/domains/notification/model"
	"github.com/anupam2nd/mylavanya-sub003/internal/domains/notification/model/dto"
	"github.com/anupam2nd/mylavanya-sub003/internal/domains/notification/repository"
	"github.com/anupam2nd/mylavanya-sub003/shared"
	"github.com/anupam2nd/mylavanya-sub003/shared/constant"
	gDto "github.com/anupam2nd/mylavanya-sub003/shared/dto"
	"github.com/anupam2nd/mylavanya-sub003/shared/failure"
	gModel "github.com/anupam2nd/mylavanya-sub003/shared/model"
	"github.com/anupam2nd/mylavanya-sub003/shared/timezone"
)

type Notification interface {
	Notify(ctx context.Context, email, bookingNo, message string) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetNotificationsResponse, error)
	MarkRead(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Notification
	kafka kafka.Client
	cfg   *config.Config
	otel  otel.Otel
}

func New(repo repository.Notification, kafkaClient kafka.Client, cfg *config.Config, otel otel.Otel) Notification {
	return &serviceImpl{
		repo:  repo,
		kafka: kafkaClient,
		cfg:   cfg,
		otel:  otel,
	}
}

// Notify persists a notification row for the customer and publishes the event
// to the notifications topic. Publishing is best effort and never fails the call.
func (s *serviceImpl) Notify(ctx context.Context, email, bookingNo, message string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Notify")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	now := timezone.Now()

	notification := model.Notification{
		ID:        uuid.NewString(),
		Email:     email,
		BookingNo: bookingNo,
		Message:   message,
		Read:      false,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if err = s.repo.Insert(ctx, notification); err != nil {
		log.Error().Err(err).Msg("failed to create notification")

		return fmt.Errorf("failed to create notification: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		event := dto.NotificationEvent{
			Email:     email,
			BookingNo: bookingNo,
			Message:   message,
			CreatedAt: now,
		}

		err := s.kafka.SendMessages(c, s.cfg.Kafka.Topics.Notifications, kafka.Message{
			Key:   bookingNo,
			Value: event,
		})
		if err != nil {
			log.Error().Err(err).Str("booking_no", bookingNo).Msg("failed to publish notification event")
		}
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetNotificationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count notifications")

		return res, fmt.Errorf("failed to count notifications: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get notifications")

		return res, fmt.Errorf("failed to get notifications: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) MarkRead(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkRead")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	notification, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get notification")

		return fmt.Errorf("failed to get notification: %w", err)
	}

	if notification.ID == constant.Empty {
		return failure.NotFound("notification not found") // nolint:wrapcheck
	}

	email, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	if notification.Email != email {
		return failure.ResourceRestrictedError // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	updatedFields := map[string]any{
		model.FieldRead:          true,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to mark notification as read")

		return fmt.Errorf("failed to mark notification as read: %w", err)
	}

	return nil
}
