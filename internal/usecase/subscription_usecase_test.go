package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/delivery/dto"
	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribe_NewEmailCreatesActiveRow(t *testing.T) {
	var created *entity.Subscription
	subRepo := &mockSubscriptionRepo{
		CreateFn: func(ctx context.Context, sub *entity.Subscription) error {
			created = sub
			return nil
		},
	}
	uc := NewSubscriptionUsecase(testLogger(), subRepo)

	resp, err := uc.Subscribe(context.Background(), &dto.SubscribeRequest{Email: "Reader@Example.com"})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "reader@example.com", created.Email)
	assert.True(t, created.IsActive)
	assert.False(t, resp.Reactivated)
}

func TestSubscribe_ActiveEmailRejectedAsDuplicate(t *testing.T) {
	subRepo := &mockSubscriptionRepo{
		FindByEmailFn: func(ctx context.Context, email string) (*entity.Subscription, error) {
			return &entity.Subscription{ID: 7, Email: email, IsActive: true}, nil
		},
		CreateFn: func(ctx context.Context, sub *entity.Subscription) error {
			t.Fatal("no new row may be created for an active subscription")
			return nil
		},
	}
	uc := NewSubscriptionUsecase(testLogger(), subRepo)

	_, err := uc.Subscribe(context.Background(), &dto.SubscribeRequest{Email: "reader@example.com"})

	assert.ErrorIs(t, err, ErrAlreadySubscribed)
}

func TestSubscribe_InactiveEmailReactivatesSameRow(t *testing.T) {
	oldTimestamp := time.Now().Add(-90 * 24 * time.Hour)
	existing := &entity.Subscription{ID: 7, Email: "reader@example.com", IsActive: false, SubscribedAt: oldTimestamp}

	var updated *entity.Subscription
	subRepo := &mockSubscriptionRepo{
		FindByEmailFn: func(ctx context.Context, email string) (*entity.Subscription, error) {
			return existing, nil
		},
		CreateFn: func(ctx context.Context, sub *entity.Subscription) error {
			t.Fatal("reactivation must not insert a new row")
			return nil
		},
		UpdateFn: func(ctx context.Context, sub *entity.Subscription) error {
			updated = sub
			return nil
		},
	}
	uc := NewSubscriptionUsecase(testLogger(), subRepo)

	resp, err := uc.Subscribe(context.Background(), &dto.SubscribeRequest{Email: "reader@example.com"})

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, uint(7), updated.ID)
	assert.True(t, updated.IsActive)
	assert.True(t, updated.SubscribedAt.After(oldTimestamp))
	assert.True(t, resp.Reactivated)
}
