package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"order-viewer/internal/features/notices/domain"
	"order-viewer/internal/features/notices/ports"
)

// MaxMessageLength is the longest notice, in characters, that fits the banner.
const MaxMessageLength = 200

// NoticeServiceImpl implements ports.NoticeService.
type NoticeServiceImpl struct {
	repo ports.NoticeRepository
}

// NewNoticeService creates a new NoticeServiceImpl.
func NewNoticeService(repo ports.NoticeRepository) *NoticeServiceImpl {
	return &NoticeServiceImpl{
		repo: repo,
	}
}

// SetNotice validates and stores a notice, replacing any active one.
// The banner is a single line: whitespace runs in message collapse to one
// space. Levels are case-insensitive ("warning" is WARNING).
func (s *NoticeServiceImpl) SetNotice(ctx context.Context, message string, level domain.Level, ttl int) error {
	message = strings.Join(strings.Fields(message), " ")
	if utf8.RuneCountInString(message) > MaxMessageLength {
		return fmt.Errorf("%w: %d characters, limit %d", domain.ErrMessageTooLong, utf8.RuneCountInString(message), MaxMessageLength)
	}
	level = domain.Level(strings.ToUpper(strings.TrimSpace(string(level))))

	notice, err := domain.NewNotice(message, level, ttl)
	if err != nil {
		return err
	}

	if err := s.repo.Save(ctx, notice); err != nil {
		return fmt.Errorf("service: failed to save notice: %w", err)
	}

	return nil
}

// GetNotice retrieves the active notice.
func (s *NoticeServiceImpl) GetNotice(ctx context.Context) (*domain.Notice, error) {
	notice, err := s.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get notice: %w", err)
	}

	return notice, nil
}

// RemoveNotice deletes the active notice.
func (s *NoticeServiceImpl) RemoveNotice(ctx context.Context) error {
	if err := s.repo.Delete(ctx); err != nil {
		return fmt.Errorf("service: failed to remove notice: %w", err)
	}

	return nil
}
