package repository

import (
	"context"
	"errors"

	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/domain/entity"
	domainRepo "github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type doctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepository(db *gorm.DB) domainRepo.DoctorRepository {
	return &doctorRepository{db: db}
}

func (r *doctorRepository) CreateWithUser(ctx context.Context, user *entity.User, profile *entity.DoctorProfile, cities []entity.DoctorCity, tag *entity.SearchTag) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}

		profile.UserID = user.ID
		if err := tx.Create(profile).Error; err != nil {
			return err
		}

		for i := range cities {
			cities[i].DoctorProfileID = profile.UserID
		}
		if len(cities) > 0 {
			if err := tx.Create(&cities).Error; err != nil {
				return err
			}
		}

		if tag != nil {
			tag.TaggableKind = entity.TaggableDoctorProfile
			tag.TaggableID = profile.UserID
			if err := tx.Create(tag).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *doctorRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.DoctorProfile, error) {
	var profile entity.DoctorProfile
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Specialty").
		Preload("Cities.City").
		Preload("WorkingHours").
		Where("user_id = ?", userID).
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *doctorRepository) FindAll(ctx context.Context, offset, limit int) ([]entity.DoctorProfile, int64, error) {
	var profiles []entity.DoctorProfile
	var total int64

	if err := r.db.WithContext(ctx).Model(&entity.DoctorProfile{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Specialty").
		Preload("Cities.City").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&profiles).Error
	if err != nil {
		return nil, 0, err
	}
	return profiles, total, nil
}

func (r *doctorRepository) FindFeatured(ctx context.Context, limit int) ([]entity.DoctorProfile, error) {
	var profiles []entity.DoctorProfile
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Specialty").
		Joins("JOIN users ON users.id = doctor_profiles.user_id").
		Where("doctor_profiles.is_verified = ? AND users.is_active = ?", true, true).
		Order("doctor_profiles.experience_years DESC").
		Limit(limit).
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *doctorRepository) Search(ctx context.Context, filter entity.DoctorSearchFilter, offset, limit int) ([]entity.DoctorProfile, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&entity.DoctorProfile{}).
		Joins("JOIN users ON users.id = doctor_profiles.user_id").
		Where("users.is_active = ?", true)

	if filter.SpecialtyID != 0 {
		query = query.Where("doctor_profiles.specialty_id = ?", filter.SpecialtyID)
	}
	if filter.CityID != 0 {
		query = query.Joins("JOIN doctor_cities ON doctor_cities.doctor_profile_id = doctor_profiles.user_id").
			Where("doctor_cities.city_id = ?", filter.CityID)
	}
	if filter.Query != "" {
		query = query.Joins("JOIN search_tags ON search_tags.taggable_id = doctor_profiles.user_id AND search_tags.taggable_kind = ?", entity.TaggableDoctorProfile).
			Where("search_tags.content ILIKE ?", "%"+filter.Query+"%")
	}
	if filter.VerifiedOnly {
		query = query.Where("doctor_profiles.is_verified = ?", true)
	}
	if filter.OnlineOnly {
		query = query.Where("doctor_profiles.is_online_available = ?", true)
	}

	var total int64
	if err := query.Distinct("doctor_profiles.user_id").Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var profiles []entity.DoctorProfile
	err := query.
		Distinct().
		Preload("User").
		Preload("Specialty").
		Preload("Cities.City").
		Order("doctor_profiles.is_verified DESC, doctor_profiles.experience_years DESC").
		Offset(offset).
		Limit(limit).
		Find(&profiles).Error
	if err != nil {
		return nil, 0, err
	}
	return profiles, total, nil
}

func (r *doctorRepository) LicenseInUse(ctx context.Context, license string, excludeUserID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.DoctorProfile{}).
		Where("license_number = ? AND user_id <> ?", license, excludeUserID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *doctorRepository) Update(ctx context.Context, profile *entity.DoctorProfile) error {
	return r.db.WithContext(ctx).
		Omit("User", "Specialty", "Cities", "WorkingHours").
		Save(profile).Error
}

func (r *doctorRepository) ReplaceCities(ctx context.Context, doctorID uuid.UUID, cities []entity.DoctorCity) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("doctor_profile_id = ?", doctorID).Delete(&entity.DoctorCity{}).Error; err != nil {
			return err
		}
		for i := range cities {
			cities[i].ID = 0
			cities[i].DoctorProfileID = doctorID
		}
		if len(cities) == 0 {
			return nil
		}
		return tx.Create(&cities).Error
	})
}

func (r *doctorRepository) ReplaceWorkingHours(ctx context.Context, doctorID uuid.UUID, hours []entity.DoctorWorkingHour) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("doctor_profile_id = ?", doctorID).Delete(&entity.DoctorWorkingHour{}).Error; err != nil {
			return err
		}
		for i := range hours {
			hours[i].ID = 0
			hours[i].DoctorProfileID = doctorID
		}
		if len(hours) == 0 {
			return nil
		}
		return tx.Create(&hours).Error
	})
}

func (r *doctorRepository) WorkingHours(ctx context.Context, doctorID uuid.UUID) ([]entity.DoctorWorkingHour, error) {
	var hours []entity.DoctorWorkingHour
	err := r.db.WithContext(ctx).
		Where("doctor_profile_id = ?", doctorID).
		Order("day_of_week ASC, open_time ASC").
		Find(&hours).Error
	if err != nil {
		return nil, err
	}
	return hours, nil
}

func (r *doctorRepository) Delete(ctx context.Context, doctorID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("taggable_kind = ? AND taggable_id = ?", entity.TaggableDoctorProfile, doctorID).
			Delete(&entity.SearchTag{}).Error; err != nil {
			return err
		}
		// Profile, cities and working hours cascade from the user row.
		return tx.Where("id = ?", doctorID).Delete(&entity.User{}).Error
	})
}
