package domain

import (
	"errors"
	"strings"
	"time"
)

// Level is the severity of an operator notice.
type Level string

const (
	LevelInfo     Level = "INFO"
	LevelWarning  Level = "WARNING"
	LevelCritical Level = "CRITICAL"
)

var (
	ErrInvalidLevel   = errors.New("invalid notice level")
	ErrEmptyMessage   = errors.New("notice message is empty")
	ErrMessageTooLong = errors.New("notice message is too long")
)

// Notice is a message operators show above the lookup form,
// e.g. "order service maintenance at 22:00".
type Notice struct {
	Message   string    `json:"message"`
	Level     Level     `json:"level"`
	TTL       int       `json:"ttl,omitempty"` // Seconds. 0 keeps the notice until it is removed.
	CreatedAt time.Time `json:"created_at"`
}

// NewNotice creates a Notice and validates it.
func NewNotice(message string, level Level, ttl int) (*Notice, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, ErrEmptyMessage
	}

	switch level {
	case LevelInfo, LevelWarning, LevelCritical:
	default:
		return nil, ErrInvalidLevel
	}

	if ttl < 0 {
		ttl = 0
	}

	return &Notice{
		Message:   message,
		Level:     level,
		TTL:       ttl,
		CreatedAt: time.Now(),
	}, nil
}
