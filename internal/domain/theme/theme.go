package theme

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const maxTitleLen = 100

// Theme groups tasks by topic.
type Theme struct {
	ID          int64
	Title       string
	Description *string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func New(title string, description *string, now time.Time) (*Theme, error) {
	t := &Theme{IsActive: true, CreatedAt: now}
	if err := t.Update(title, description, now); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Theme) Update(title string, description *string, now time.Time) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return errors.New("title is required")
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return errors.New("title must be at most 100 characters")
	}
	t.Title = title
	t.Description = description
	t.UpdatedAt = now
	return nil
}

// Deactivate soft-deletes the theme.
func (t *Theme) Deactivate(now time.Time) {
	t.IsActive = false
	t.UpdatedAt = now
}

// DescriptionText returns the description or "" when unset.
func (t *Theme) DescriptionText() string {
	if t.Description == nil {
		return ""
	}
	return *t.Description
}
