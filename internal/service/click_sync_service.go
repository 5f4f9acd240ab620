package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dev-karunendu-mishra/hello-doctors-sub001/internal/domain/repository"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// Redis key prefix for buffered advertisement click counters
	redisClickKeyPrefix = "ad:clicks:"

	// Counter keys expire if the flush job stays down for this long; the
	// buffered clicks are then lost, which is acceptable for this metric.
	clickKeyTTL = 7 * 24 * time.Hour

	// SCAN page size during flush
	clickScanCount = 200
)

// ClickSyncService buffers advertisement click counts in Redis and flushes
// them into the click_count column in batches, so a click never costs a
// database write on the request path.
type ClickSyncService struct {
	redisClient *redis.Client
	adRepo      repository.AdvertisementRepository
	log         *logrus.Logger
}

func NewClickSyncService(redisClient *redis.Client, adRepo repository.AdvertisementRepository, log *logrus.Logger) *ClickSyncService {
	return &ClickSyncService{
		redisClient: redisClient,
		adRepo:      adRepo,
		log:         log,
	}
}

// Record increments the buffered counter for one advertisement.
func (s *ClickSyncService) Record(ctx context.Context, adID uint) error {
	key := fmt.Sprintf("%s%d", redisClickKeyPrefix, adID)

	pipe := s.redisClient.TxPipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, clickKeyTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		s.log.Warnf("Failed to record click for ad %d: %+v", adID, err)
		return fmt.Errorf("record click for ad %d: %w", adID, err)
	}

	return nil
}

// Flush drains all buffered counters into the database. Each counter is
// consumed with GETDEL so a crash between Redis and the DB loses at most the
// in-flight batch, never double-counts.
func (s *ClickSyncService) Flush(ctx context.Context) error {
	var cursor uint64
	var flushed int

	for {
		keys, next, err := s.redisClient.Scan(ctx, cursor, redisClickKeyPrefix+"*", clickScanCount).Result()
		if err != nil {
			return fmt.Errorf("scan click keys: %w", err)
		}

		for _, key := range keys {
			raw, err := s.redisClient.GetDel(ctx, key).Result()
			if err == redis.Nil {
				continue
			}
			if err != nil {
				s.log.Warnf("Failed to drain click key %s: %+v", key, err)
				continue
			}

			delta, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || delta <= 0 {
				continue
			}

			adID, err := strconv.ParseUint(strings.TrimPrefix(key, redisClickKeyPrefix), 10, 32)
			if err != nil {
				continue
			}

			if err := s.adRepo.IncrementClicks(ctx, uint(adID), delta); err != nil {
				s.log.Warnf("Failed to flush %d clicks for ad %d: %+v", delta, adID, err)
				continue
			}
			flushed++
		}

		cursor = next
		if cursor == 0 {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
	}

	if flushed > 0 {
		s.log.Infof("Flushed click counters for %d advertisements", flushed)
	}
	return nil
}
