package repository

import (
	"context"

	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/domain/entity"
	domainRepo "github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type searchTagRepository struct {
	db *gorm.DB
}

func NewSearchTagRepository(db *gorm.DB) domainRepo.SearchTagRepository {
	return &searchTagRepository{db: db}
}

func (r *searchTagRepository) Upsert(ctx context.Context, tag *entity.SearchTag) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "taggable_kind"}, {Name: "taggable_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"content", "updated_at"}),
		}).
		Create(tag).Error
}

func (r *searchTagRepository) DeleteFor(ctx context.Context, kind entity.TaggableKind, taggableID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("taggable_kind = ? AND taggable_id = ?", kind, taggableID).
		Delete(&entity.SearchTag{}).Error
}
