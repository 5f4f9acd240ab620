package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/delivery/dto"
	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/domain/entity"
	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var ErrAlreadySubscribed = errors.New("email is already subscribed")

type SubscriptionUsecase interface {
	Subscribe(ctx context.Context, req *dto.SubscribeRequest) (*dto.SubscriptionResponse, error)
}

type subscriptionUsecase struct {
	log     *logrus.Logger
	subRepo repository.SubscriptionRepository
}

func NewSubscriptionUsecase(log *logrus.Logger, subRepo repository.SubscriptionRepository) SubscriptionUsecase {
	return &subscriptionUsecase{
		log:     log,
		subRepo: subRepo,
	}
}

/// Subscribe is keyed on the email address: a new email inserts an active row,
// an inactive one is reactivated in place, and an active one is rejected.
func (u *subscriptionUsecase) Subscribe(ctx context.Context, req *dto.SubscribeRequest) (*dto.SubscriptionResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	now := time.Now()

	existing, err := u.subRepo.FindByEmail(ctx, email)
	if err != nil {
		u.log.Warnf("Failed to look up subscription: %+v", err)
		return nil, err
	}

	if existing == nil {
		sub := &entity.Subscription{
			Email:        email,
			IsActive:     true,
			SubscribedAt: now,
		}
		if err := u.subRepo.Create(ctx, sub); err != nil {
			if isDuplicateKeyError(err, "email") {
				return nil, ErrAlreadySubscribed
			}
			u.log.Warnf("Failed to create subscription: %+v", err)
			return nil, err
		}
		return &dto.SubscriptionResponse{
			Email:        sub.Email,
			IsActive:     sub.IsActive,
			SubscribedAt: sub.SubscribedAt,
		}, nil
	}

	if existing.IsActive {
		return nil, ErrAlreadySubscribed
	}

	existing.Reactivate(now)
	if err := u.subRepo.Update(ctx, existing); err != nil {
		u.log.Warnf("Failed to reactivate subscription: %+v", err)
		return nil, err
	}

	return &dto.SubscriptionResponse{
		Email:        existing.Email,
		IsActive:     existing.IsActive,
		SubscribedAt: existing.SubscribedAt,
		Reactivated:  true,
	}, nil
}
