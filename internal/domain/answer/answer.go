package answer

import (
	"errors"
	"strings"
	"time"
)

// Answer is the canonical answer of a task.
type Answer struct {
	ID        int64
	Text      string
	UserID    int64 // author; zero when unknown
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func New(text string, authorID int64, now time.Time) (*Answer, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.New("answer is required")
	}
	return &Answer{
		Text:      text,
		UserID:    authorID,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
