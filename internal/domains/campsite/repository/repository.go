package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"campground/infras/otel"
	"campground/infras/postgres"
	"campground/internal/domains/campsite/model"
	gDto "campground/shared/dto"
	gRepo "campground/shared/repository"
	"context"
)

type Campsite interface {
	Insert(ctx context.Context, model model.Campsite) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Campsite, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Campsite, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Campsite]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Campsite {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Campsite](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
