package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/anupam2nd/mylavanya-sub003/infras/otel"
	"github.com/anupam2nd/mylavanya-sub003/infras/postgres"
	"github.com/anupam2nd/mylavanya-sub003/internal/domains/booking/model"
	gDto "github.com/anupam2nd/mylavanya-sub003/shared/dto"
	gRepo "github.com/anupam2nd/mylavanya-sub003/shared/repository"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	InsertBulk(ctx context.Context, models []model.Booking) error
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	MaxBookingNo(ctx context.Context, prefix string) (string, error)
	MaxJobNo(ctx context.Context, bookingNo string) (int, error)
	BeginTx(ctx context.Context) (*sqlx.Tx, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

// MaxBookingNo returns the highest booking number carrying the given year-month
// prefix, or an empty string when none exists.
func (repo *repositoryImpl) MaxBookingNo(ctx context.Context, prefix string) (string, error) {
	return repo.MaxString(ctx, model.FieldBookingNo, gDto.FilterGroup{ //nolint:wrapcheck
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Table:    model.TableName,
				Field:    model.FieldBookingNo,
				Operator: gDto.FilterOperatorPrefix,
				Value:    prefix,
			},
		},
	})
}

// MaxJobNo returns the highest line-item sequence number within a booking
// group, or zero when the group has no rows.
func (repo *repositoryImpl) MaxJobNo(ctx context.Context, bookingNo string) (int, error) {
	return repo.MaxInt(ctx, model.FieldJobNo, gDto.FilterGroup{ //nolint:wrapcheck
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Table:    model.TableName,
				Field:    model.FieldBookingNo,
				Operator: gDto.FilterOperatorEq,
				Value:    bookingNo,
			},
		},
	})
}
