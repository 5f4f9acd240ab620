package repository

import (
	"context"

	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/domain/entity"
)

type SubscriptionRepository interface {
	// FindByEmail returns (nil, nil) when no subscription row exists.
	FindByEmail(ctx context.Context, email string) (*entity.Subscription, error)
	Create(ctx context.Context, sub *entity.Subscription) error
	Update(ctx context.Context, sub *entity.Subscription) error
}
