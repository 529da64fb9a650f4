package ports

import (
	"context"

	"order-viewer/internal/features/notices/domain"
)

// NoticeService defines the primary port for notice operations.
type NoticeService interface {
	SetNotice(ctx context.Context, message string, level domain.Level, ttl int) error
	// GetNotice returns nil, nil when no notice is active.
	GetNotice(ctx context.Context) (*domain.Notice, error)
	RemoveNotice(ctx context.Context) error
}

// NoticeRepository defines the secondary port for notice storage.
type NoticeRepository interface {
	Save(ctx context.Context, notice *domain.Notice) error
	Get(ctx context.Context) (*domain.Notice, error)
	Delete(ctx context.Context) error
}
