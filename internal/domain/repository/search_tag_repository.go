package repository

import (
	"context"

	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/domain/entity"

	"github.com/google/uuid"
)

type SearchTagRepository interface {
	// Upsert replaces the tag content for the owning entity, inserting the
	// row on first write.
	Upsert(ctx context.Context, tag *entity.SearchTag) error
	DeleteFor(ctx context.Context, kind entity.TaggableKind, taggableID uuid.UUID) error
}
