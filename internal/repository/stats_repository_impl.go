package repository

import (
	"context"

	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/domain/entity"
	domainRepo "github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/domain/repository"

	"gorm.io/gorm"
)

type statsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) domainRepo.StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) Counts(ctx context.Context) (*domainRepo.DirectoryCounts, error) {
	var counts domainRepo.DirectoryCounts
	db := r.db.WithContext(ctx)

	queries := []struct {
		dest  *int64
		query *gorm.DB
	}{
		{&counts.Cities, db.Model(&entity.City{})},
		{&counts.Specialties, db.Model(&entity.Specialty{})},
		{&counts.DoctorProfiles, db.Model(&entity.DoctorProfile{})},
		{&counts.DoctorUsers, db.Model(&entity.User{}).Where("role = ?", entity.RoleDoctor)},
		{&counts.WorkingHours, db.Model(&entity.DoctorWorkingHour{})},
		{&counts.SearchTags, db.Model(&entity.SearchTag{})},
	}

	for _, q := range queries {
		if err := q.query.Count(q.dest).Error; err != nil {
			return nil, err
		}
	}

	return &counts, nil
}
