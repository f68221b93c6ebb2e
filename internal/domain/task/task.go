package task

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

type Type string

const (
	TypeProblem Type = "problem"
	TypeTest    Type = "test"
)

const maxTitleLen = 50

// Task is a question authored by a teacher or admin. The canonical answer
// lives in the solution service and is referenced by AnswerID.
type Task struct {
	ID        int64
	Title     string
	Condition *string
	Type      Type
	ThemeID   int64
	AnswerID  int64
	UserID    int64 // author
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func New(title string, condition *string, themeID, answerID, authorID int64, now time.Time) (*Task, error) {
	t := &Task{
		Type:      TypeProblem,
		UserID:    authorID,
		IsActive:  true,
		CreatedAt: now,
	}
	if err := t.Update(title, condition, themeID, answerID, now); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Task) Update(title string, condition *string, themeID, answerID int64, now time.Time) error {
	if err := ValidateTitle(title); err != nil {
		return err
	}
	t.Title = strings.TrimSpace(title)
	t.Condition = condition
	t.ThemeID = themeID
	t.AnswerID = answerID
	t.UpdatedAt = now
	return nil
}

// ValidateTitle lets callers reject a request before any remote side effects.
func ValidateTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return errors.New("title is required")
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return errors.New("title must be at most 50 characters")
	}
	return nil
}

func (t *Task) OwnedBy(userID int64) bool {
	return t.UserID == userID
}

// Deactivate soft-deletes the task.
func (t *Task) Deactivate(now time.Time) {
	t.IsActive = false
	t.UpdatedAt = now
}
