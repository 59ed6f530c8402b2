package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/grandoria/booking-engine/internal/domain"
)

// ErrMiss is returned when no fresh summary is cached for a booking.
var ErrMiss = errors.New("summary not cached")

// SummaryCache stores derived booking summaries for a short TTL. A
// summary embeds real-time status, so the TTL bounds how stale a
// served status can be.
type SummaryCache interface {
	Get(ctx context.Context, bookingID string) (*domain.BookingSummary, error)
	Set(ctx context.Context, summary *domain.BookingSummary, ttl time.Duration) error
	Invalidate(ctx context.Context, bookingID string) error
}

type redisSummaryCache struct {
	client *redis.Client
}

func NewRedisSummaryCache(client *redis.Client) SummaryCache {
	return &redisSummaryCache{client: client}
}

func summaryKey(bookingID string) string {
	return fmt.Sprintf("booking:summary:%s", bookingID)
}

func (c *redisSummaryCache) Get(ctx context.Context, bookingID string) (*domain.BookingSummary, error) {
	payload, err := c.client.Get(ctx, summaryKey(bookingID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, err
	}

	var summary domain.BookingSummary
	if err := json.Unmarshal(payload, &summary); err != nil {
		// A corrupt entry behaves like a miss; the caller recomputes.
		return nil, ErrMiss
	}

	return &summary, nil
}

func (c *redisSummaryCache) Set(ctx context.Context, summary *domain.BookingSummary, ttl time.Duration) error {
	payload, err := json.Marshal(summary)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, summaryKey(summary.BookingID), payload, ttl).Err()
}

func (c *redisSummaryCache) Invalidate(ctx context.Context, bookingID string) error {
	return c.client.Del(ctx, summaryKey(bookingID)).Err()
}
