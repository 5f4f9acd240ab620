package repository

import (
	"context"

	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/domain/entity"
)

type AuditLogRepository interface {
	Create(ctx context.Context, log *entity.AuditLog) error
	FindRecent(ctx context.Context, limit int) ([]entity.AuditLog, error)
}
