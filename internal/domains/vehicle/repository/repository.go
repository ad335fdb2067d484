package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"gomoto/infras/otel"
	"gomoto/infras/postgres"
	"gomoto/internal/domains/vehicle/model"
	gDto "gomoto/shared/dto"
	gRepo "gomoto/shared/repository"
)

// Vehicle is the catalog table gateway. Delete is refused by the database while bookings reference the row.
type Vehicle interface {
	Insert(ctx context.Context, model model.Vehicle) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Vehicle, error)
	GetPrimary(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Vehicle, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Vehicle, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Vehicle]
}

func New(db *postgres.Connection, otel otel.Otel) Vehicle {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Vehicle](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
