package usecase

import (
	"context"

	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/converter"
	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/delivery/dto"
	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// LookupUsecase serves the small reference lists the browse pages filter by.
type LookupUsecase interface {
	ListCities(ctx context.Context) ([]dto.CityResponse, error)
	ListSpecialties(ctx context.Context) ([]dto.SpecialtyResponse, error)
}

type lookupUsecase struct {
	log           *logrus.Logger
	cityRepo      repository.CityRepository
	specialtyRepo repository.SpecialtyRepository
}

func NewLookupUsecase(log *logrus.Logger, cityRepo repository.CityRepository, specialtyRepo repository.SpecialtyRepository) LookupUsecase {
	return &lookupUsecase{
		log:           log,
		cityRepo:      cityRepo,
		specialtyRepo: specialtyRepo,
	}
}

func (u *lookupUsecase) ListCities(ctx context.Context) ([]dto.CityResponse, error) {
	cities, err := u.cityRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list cities: %+v", err)
		return nil, err
	}
	return converter.CitiesToResponses(cities), nil
}

func (u *lookupUsecase) ListSpecialties(ctx context.Context) ([]dto.SpecialtyResponse, error) {
	specialties, err := u.specialtyRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list specialties: %+v", err)
		return nil, err
	}
	return converter.SpecialtiesToResponses(specialties), nil
}
