package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/anupam2nd/mylavanya-sub003/infras/otel"
	"github.com/anupam2nd/mylavanya-sub003/infras/postgres"
	"github.com/anupam2nd/mylavanya-sub003/internal/domains/otp/model"
	"github.com/anupam2nd/mylavanya-sub003/shared/constant"
	gDto "github.com/anupam2nd/mylavanya-sub003/shared/dto"
	"github.com/anupam2nd/mylavanya-sub003/shared/logger"
	gRepo "github.com/anupam2nd/mylavanya-sub003/shared/repository"
	"github.com/anupam2nd/mylavanya-sub003/shared/timezone"
)

type OTP interface {
	Insert(ctx context.Context, model model.OTP) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.OTP, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	DeleteExpired(ctx context.Context) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.OTP]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) OTP {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.OTP](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// DeleteExpired removes every code whose expiry has passed and reports how
// many rows went away. The purge job runs this on a schedule.
func (repo *repositoryImpl) DeleteExpired(ctx context.Context) (int64, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".otp.DeleteExpired")
	defer scope.End()

	query := fmt.Sprintf("DELETE FROM %s WHERE %s < $1", model.TableName, model.FieldExpiresAt)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := repo.db.Write.ExecContext(ctx, query, timezone.Now())
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to delete expired otps: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deleted otps: %w", err)
	}

	return deleted, nil
}
