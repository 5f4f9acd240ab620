package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	redisLocationKeyPrefix = "session:location:"
	locationTTL            = 30 * 24 * time.Hour
)

// LocationService holds each user's "current city" selection as
// session-scoped state with an explicit load/save lifecycle, instead of
// ambient client-side globals.
type LocationService struct {
	redisClient *redis.Client
	log         *logrus.Logger
}

func NewLocationService(redisClient *redis.Client, log *logrus.Logger) *LocationService {
	return &LocationService{redisClient: redisClient, log: log}
}

// Save stores the selected city for the user, refreshing the TTL.
func (s *LocationService) Save(ctx context.Context, userID uuid.UUID, cityID uint) error {
	key := redisLocationKeyPrefix + userID.String()
	if err := s.redisClient.Set(ctx, key, cityID, locationTTL).Err(); err != nil {
		s.log.Warnf("Failed to save location for user %s: %+v", userID, err)
		return fmt.Errorf("save location: %w", err)
	}
	return nil
}

// Load returns the saved city id, or 0 when no selection exists.
func (s *LocationService) Load(ctx context.Context, userID uuid.UUID) (uint, error) {
	key := redisLocationKeyPrefix + userID.String()
	raw, err := s.redisClient.Get(ctx, key).Result()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("load location: %w", err)
	}

	cityID, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, nil
	}
	return uint(cityID), nil
}

// Clear removes the saved selection.
func (s *LocationService) Clear(ctx context.Context, userID uuid.UUID) error {
	key := redisLocationKeyPrefix + userID.String()
	if err := s.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("clear location: %w", err)
	}
	return nil
}
