package repository

import (
	"context"

	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/domain/entity"
)

type SpecialtyRepository interface {
	FindAll(ctx context.Context) ([]entity.Specialty, error)
	FindByID(ctx context.Context, id uint) (*entity.Specialty, error)
}

type CityRepository interface {
	FindAll(ctx context.Context) ([]entity.City, error)
	FindByID(ctx context.Context, id uint) (*entity.City, error)
	FindByIDs(ctx context.Context, ids []uint) ([]entity.City, error)
}
