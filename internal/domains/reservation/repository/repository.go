package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"campground/infras/otel"
	"campground/infras/postgres"
	"campground/internal/domains/reservation/model"
	"campground/shared/constant"
	gDto "campground/shared/dto"
	gRepo "campground/shared/repository"
	"context"
	"time"
)

type Reservation interface {
	Insert(ctx context.Context, model model.Reservation) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Reservation, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Reservation, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	ListNonTerminal(ctx context.Context, campsiteID string, asOf time.Time) ([]model.Reservation, error)
	HasNonTerminal(ctx context.Context, campsiteID string, asOf time.Time) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Reservation]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Reservation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Reservation](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// nonTerminalFilter matches reservations on the campsite that are still
// pending or active at the given moment: not cancelled and not yet past
// their check-out.
func nonTerminalFilter(campsiteID string, asOf time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldCampsiteID,
				Table:    model.TableName,
				Value:    campsiteID,
				Operator: gDto.FilterOperatorEq,
			},
			gDto.Filter{
				Field:    model.FieldCancelledAt,
				Table:    model.TableName,
				Operator: gDto.FilterIsNull,
			},
			gDto.Filter{
				Field:    model.FieldCheckOut,
				Table:    model.TableName,
				Value:    asOf,
				Operator: gDto.FilterOperatorGreater,
			},
		},
	}
}

func (repo *repositoryImpl) ListNonTerminal(ctx context.Context, campsiteID string, asOf time.Time) ([]model.Reservation, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".ListNonTerminal")
	defer scope.End()

	return repo.GetAll(ctx, gDto.QueryParams{}, nonTerminalFilter(campsiteID, asOf)) //nolint:wrapcheck
}

func (repo *repositoryImpl) HasNonTerminal(ctx context.Context, campsiteID string, asOf time.Time) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".HasNonTerminal")
	defer scope.End()

	return repo.Exist(ctx, nonTerminalFilter(campsiteID, asOf)) //nolint:wrapcheck
}
