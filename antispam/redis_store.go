package antispam

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps the antispam state in Redis so several instances share
// one view of a sender. Last-seen keys expire on their own after lastTTL.
type RedisStore struct {
	client     *redis.Client
	maxHistory int
	lastTTL    time.Duration
}

func NewRedisStore(client *redis.Client, maxHistory int, lastTTL time.Duration) *RedisStore {
	if maxHistory <= 0 {
		maxHistory = 10
	}
	if lastTTL <= 0 {
		lastTTL = time.Hour
	}
	return &RedisStore{client: client, maxHistory: maxHistory, lastTTL: lastTTL}
}

func (s *RedisStore) Touch(ctx context.Context, senderID string, now time.Time) (time.Time, bool, error) {
	key := lastSeenKey(senderID)

	previous, err := s.client.GetSet(ctx, key, now.UnixNano()).Result()
	if errors.Is(err, redis.Nil) {
		s.client.Expire(ctx, key, s.lastTTL)
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, err
	}
	s.client.Expire(ctx, key, s.lastTTL)

	var nanos int64
	if _, err := fmt.Sscanf(previous, "%d", &nanos); err != nil {
		return time.Time{}, false, fmt.Errorf("parse last-seen value: %w", err)
	}
	return time.Unix(0, nanos), true, nil
}

func (s *RedisStore) History(ctx context.Context, senderID string) ([]string, error) {
	history, err := s.client.LRange(ctx, historyKey(senderID), 0, -1).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	return history, err
}

func (s *RedisStore) Remember(ctx context.Context, senderID string, text string) error {
	key := historyKey(senderID)
	pipe := s.client.TxPipeline()
	pipe.RPush(ctx, key, text)
	pipe.LTrim(ctx, key, int64(-s.maxHistory), -1)
	pipe.Expire(ctx, key, s.lastTTL)
	_, err := pipe.Exec(ctx)
	return err
}

func lastSeenKey(senderID string) string {
	return fmt.Sprintf("antispam:last:%s", senderID)
}

func historyKey(senderID string) string {
	return fmt.Sprintf("antispam:hist:%s", senderID)
}
