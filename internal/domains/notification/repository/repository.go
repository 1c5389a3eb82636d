package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"github.com/anupam2nd/mylavanya-sub003/infras/otel"
	"github.com/anupam2nd/mylavanya-sub003/infras/postgres"
	"github.com/anupam2nd/mylavanya-sub003/internal/domains/notification/model"
	gDto "github.com/anupam2nd/mylavanya-sub003/shared/dto"
	gRepo "github.com/anupam2nd/mylavanya-sub003/shared/repository"
)

type Notification interface {
	Insert(ctx context.Context, model model.Notification) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Notification, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Notification, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Notification]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Notification {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Notification](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
