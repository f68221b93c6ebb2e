package attempt_test

import (
	"testing"
	"time"

	"github.com/kinematics-suite/backend/internal/domain/attempt"
)

func TestNew_CorrectAnswerIsPending(t *testing.T) {
	a, err := attempt.New(1, 2, "25 m", 100, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if a.Status != attempt.StatusPending {
		t.Errorf("expected status %q, got %q", attempt.StatusPending, a.Status)
	}
	if a.TeacherGrade != nil {
		t.Errorf("expected no teacher grade, got %d", *a.TeacherGrade)
	}
	if a.SystemGrade == nil || *a.SystemGrade != 100 {
		t.Errorf("expected system grade 100, got %v", a.SystemGrade)
	}
}

func TestNew_WrongAnswerIsGraded(t *testing.T) {
	a, err := attempt.New(1, 2, "12 m", 0, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if a.Status != attempt.StatusGraded {
		t.Errorf("expected status %q, got %q", attempt.StatusGraded, a.Status)
	}
	if a.TeacherGrade == nil || *a.TeacherGrade != 0 {
		t.Errorf("expected teacher grade 0, got %v", a.TeacherGrade)
	}
}

func TestNew_Validation(t *testing.T) {
	if _, err := attempt.New(1, 2, "  ", 0, time.Now()); err == nil {
		t.Error("expected error for blank answer")
	}
	if _, err := attempt.New(1, 2, "x", 101, time.Now()); err == nil {
		t.Error("expected error for out of range system grade")
	}
}

func TestGrade_Transitions(t *testing.T) {
	tests := []struct {
		name        string
		systemGrade int
		teacher     int
		want        attempt.Status
	}{
		{"confirmed correct", 100, 90, attempt.StatusCorrect},
		{"confirmed correct full", 100, 100, attempt.StatusCorrect},
		{"system correct teacher low", 100, 89, attempt.StatusGraded},
		{"system wrong teacher high", 0, 100, attempt.StatusGraded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _ := attempt.New(1, 2, "answer", tt.systemGrade, time.Now())

			if err := a.Grade(tt.teacher, time.Now()); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if a.Status != tt.want {
				t.Errorf("expected status %q, got %q", tt.want, a.Status)
			}
			if *a.TeacherGrade != tt.teacher {
				t.Errorf("expected teacher grade %d, got %d", tt.teacher, *a.TeacherGrade)
			}
		})
	}
}

func TestGrade_OutOfRange(t *testing.T) {
	a, _ := attempt.New(1, 2, "answer", 100, time.Now())

	for _, g := range []int{-1, 101} {
		if err := a.Grade(g, time.Now()); err != attempt.ErrGradeOutOfRange {
			t.Errorf("Grade(%d): expected ErrGradeOutOfRange, got %v", g, err)
		}
	}

	if !a.IsPending() {
		t.Error("expected attempt to stay pending after rejected grade")
	}
}
