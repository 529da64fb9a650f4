package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"order-viewer/internal/core/cache"
	"order-viewer/internal/features/notices/domain"
)

const noticeCacheKey = "notice"

// RedisNoticeRepository implements ports.NoticeRepository on the cache port.
type RedisNoticeRepository struct {
	cache cache.Cache
}

// NewRedisNoticeRepository creates a new RedisNoticeRepository.
func NewRedisNoticeRepository(c cache.Cache) *RedisNoticeRepository {
	return &RedisNoticeRepository{
		cache: c,
	}
}

// Save stores the notice. A TTL of 0 keeps it until Delete.
func (r *RedisNoticeRepository) Save(ctx context.Context, notice *domain.Notice) error {
	data, err := json.Marshal(notice)
	if err != nil {
		return fmt.Errorf("failed to marshal notice: %w", err)
	}

	ttl := time.Duration(notice.TTL) * time.Second
	if err := r.cache.Set(ctx, noticeCacheKey, data, ttl); err != nil {
		return fmt.Errorf("failed to save notice to cache: %w", err)
	}

	return nil
}

// Get returns the stored notice, or nil, nil if none is active.
func (r *RedisNoticeRepository) Get(ctx context.Context) (*domain.Notice, error) {
	data, err := r.cache.Get(ctx, noticeCacheKey)
	if err != nil {
		if errors.Is(err, cache.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get notice from cache: %w", err)
	}

	var notice domain.Notice
	if err := json.Unmarshal(data, &notice); err != nil {
		return nil, fmt.Errorf("failed to unmarshal notice: %w", err)
	}

	return &notice, nil
}

// Delete removes the notice.
func (r *RedisNoticeRepository) Delete(ctx context.Context) error {
	if err := r.cache.Delete(ctx, noticeCacheKey); err != nil {
		return fmt.Errorf("failed to delete notice from cache: %w", err)
	}
	return nil
}
