package submission_test

import (
	"testing"
	"time"

	"github.com/kinematics-suite/backend/internal/domain/submission"
)

func TestNewSubmission(t *testing.T) {
	s, err := submission.New(3, 9, "25 m", nil, true, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.IsCorrect || !s.IsActive {
		t.Errorf("unexpected flags %+v", s)
	}
}

func TestNewSubmission_MissingTask(t *testing.T) {
	if _, err := submission.New(3, 0, "25 m", nil, false, time.Now()); err == nil {
		t.Error("expected error for missing task id")
	}
}
