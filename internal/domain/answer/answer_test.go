package answer_test

import (
	"testing"
	"time"

	"github.com/kinematics-suite/backend/internal/domain/answer"
)

func TestNewAnswer(t *testing.T) {
	a, err := answer.New("25 m", 4, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Text != "25 m" || a.UserID != 4 || !a.IsActive {
		t.Errorf("unexpected answer %+v", a)
	}
}

func TestNewAnswer_Blank(t *testing.T) {
	if _, err := answer.New(" \t", 4, time.Now()); err == nil {
		t.Error("expected error for blank answer")
	}
}
