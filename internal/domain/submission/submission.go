package submission

import (
	"errors"
	"time"
)

// Submission is a raw answer recorded by the answer submission service.
type Submission struct {
	ID          int64
	UserID      int64
	TaskID      int64
	Answer      string
	ImageBase64 *string
	IsCorrect   bool
	IsActive    bool
	CreatedAt   time.Time
}

func New(userID, taskID int64, answer string, imageBase64 *string, correct bool, now time.Time) (*Submission, error) {
	if taskID <= 0 {
		return nil, errors.New("task_id is required")
	}
	return &Submission{
		UserID:      userID,
		TaskID:      taskID,
		Answer:      answer,
		ImageBase64: imageBase64,
		IsCorrect:   correct,
		IsActive:    true,
		CreatedAt:   now,
	}, nil
}
