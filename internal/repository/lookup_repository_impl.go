package repository

import (
	"context"
	"errors"

	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/domain/entity"
	domainRepo "github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/domain/repository"

	"gorm.io/gorm"
)

type specialtyRepository struct {
	db *gorm.DB
}

func NewSpecialtyRepository(db *gorm.DB) domainRepo.SpecialtyRepository {
	return &specialtyRepository{db: db}
}

func (r *specialtyRepository) FindAll(ctx context.Context) ([]entity.Specialty, error) {
	var specialties []entity.Specialty
	err := r.db.WithContext(ctx).Order("name ASC").Find(&specialties).Error
	if err != nil {
		return nil, err
	}
	return specialties, nil
}

func (r *specialtyRepository) FindByID(ctx context.Context, id uint) (*entity.Specialty, error) {
	var specialty entity.Specialty
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&specialty).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &specialty, nil
}

type cityRepository struct {
	db *gorm.DB
}

func NewCityRepository(db *gorm.DB) domainRepo.CityRepository {
	return &cityRepository{db: db}
}

func (r *cityRepository) FindAll(ctx context.Context) ([]entity.City, error) {
	var cities []entity.City
	err := r.db.WithContext(ctx).Order("name ASC").Find(&cities).Error
	if err != nil {
		return nil, err
	}
	return cities, nil
}

func (r *cityRepository) FindByID(ctx context.Context, id uint) (*entity.City, error) {
	var city entity.City
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&city).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &city, nil
}

func (r *cityRepository) FindByIDs(ctx context.Context, ids []uint) ([]entity.City, error) {
	var cities []entity.City
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&cities).Error
	if err != nil {
		return nil, err
	}
	return cities, nil
}
