package repository

import (
	"context"

	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/domain/entity"

	"github.com/google/uuid"
)

type DoctorRepository interface {
	// CreateWithUser persists the user row, the doctor profile, its city
	// associations and the initial search tag in a single transaction.
	CreateWithUser(ctx context.Context, user *entity.User, profile *entity.DoctorProfile, cities []entity.DoctorCity, tag *entity.SearchTag) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.DoctorProfile, error)
	FindAll(ctx context.Context, offset, limit int) ([]entity.DoctorProfile, int64, error)
	FindFeatured(ctx context.Context, limit int) ([]entity.DoctorProfile, error)
	Search(ctx context.Context, filter entity.DoctorSearchFilter, offset, limit int) ([]entity.DoctorProfile, int64, error)
	// LicenseInUse checks license-number uniqueness, excluding the given
	// profile so an unchanged license does not conflict with itself.
	LicenseInUse(ctx context.Context, license string, excludeUserID uuid.UUID) (bool, error)
	Update(ctx context.Context, profile *entity.DoctorProfile) error
	ReplaceCities(ctx context.Context, doctorID uuid.UUID, cities []entity.DoctorCity) error
	ReplaceWorkingHours(ctx context.Context, doctorID uuid.UUID, hours []entity.DoctorWorkingHour) error
	WorkingHours(ctx context.Context, doctorID uuid.UUID) ([]entity.DoctorWorkingHour, error)
	// Delete removes the backing user row; profile, cities and working
	// hours go with it via FK cascade.
	Delete(ctx context.Context, doctorID uuid.UUID) error
}
