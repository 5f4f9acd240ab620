package repository

import (
	"context"
	"time"

	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/domain/entity"
)

type AdvertisementRepository interface {
	Create(ctx context.Context, ad *entity.Advertisement) error
	FindByID(ctx context.Context, id uint) (*entity.Advertisement, error)
	FindAll(ctx context.Context, offset, limit int) ([]entity.Advertisement, int64, error)
	// FindActive returns ads flagged active whose date range contains now,
	// optionally restricted to one placement position.
	FindActive(ctx context.Context, position entity.AdPosition, now time.Time) ([]entity.Advertisement, error)
	Update(ctx context.Context, ad *entity.Advertisement) error
	Delete(ctx context.Context, id uint) error
	IncrementClicks(ctx context.Context, id uint, delta int64) error
	// DeactivateExpired flips is_active off for ads whose end date has
	// passed and returns the number of rows affected.
	DeactivateExpired(ctx context.Context, now time.Time) (int64, error)
}
