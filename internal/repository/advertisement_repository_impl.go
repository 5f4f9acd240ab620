package repository

import (
	"context"
	"errors"
	"time"

	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/domain/entity"
	domainRepo "github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/domain/repository"

	"gorm.io/gorm"
)

type advertisementRepository struct {
	db *gorm.DB
}

func NewAdvertisementRepository(db *gorm.DB) domainRepo.AdvertisementRepository {
	return &advertisementRepository{db: db}
}

func (r *advertisementRepository) Create(ctx context.Context, ad *entity.Advertisement) error {
	return r.db.WithContext(ctx).Create(ad).Error
}

func (r *advertisementRepository) FindByID(ctx context.Context, id uint) (*entity.Advertisement, error) {
	var ad entity.Advertisement
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&ad).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ad, nil
}

func (r *advertisementRepository) FindAll(ctx context.Context, offset, limit int) ([]entity.Advertisement, int64, error) {
	var ads []entity.Advertisement
	var total int64

	if err := r.db.WithContext(ctx).Model(&entity.Advertisement{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&ads).Error
	if err != nil {
		return nil, 0, err
	}
	return ads, total, nil
}

func (r *advertisementRepository) FindActive(ctx context.Context, position entity.AdPosition, now time.Time) ([]entity.Advertisement, error) {
	query := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("start_date <= ?", now).
		Where("end_date IS NULL OR end_date >= ?", now.Truncate(24*time.Hour))

	if position != "" {
		query = query.Where("position = ?", position)
	}

	var ads []entity.Advertisement
	if err := query.Order("start_date DESC").Find(&ads).Error; err != nil {
		return nil, err
	}
	return ads, nil
}

func (r *advertisementRepository) Update(ctx context.Context, ad *entity.Advertisement) error {
	return r.db.WithContext(ctx).Save(ad).Error
}

func (r *advertisementRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Advertisement{}).Error
}

func (r *advertisementRepository) IncrementClicks(ctx context.Context, id uint, delta int64) error {
	return r.db.WithContext(ctx).
		Model(&entity.Advertisement{}).
		Where("id = ?", id).
		UpdateColumn("click_count", gorm.Expr("click_count + ?", delta)).Error
}

func (r *advertisementRepository) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&entity.Advertisement{}).
		Where("is_active = ? AND end_date IS NOT NULL AND end_date < ?", true, now.Truncate(24*time.Hour)).
		Update("is_active", false)
	return result.RowsAffected, result.Error
}
