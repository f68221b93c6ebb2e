package attempt

import (
	"errors"
	"strings"
	"time"

	"github.com/kinematics-suite/backend/internal/grader"
)

type Status string

const (
	StatusPending Status = "pending" // system says correct, waiting for the teacher
	StatusCorrect Status = "correct" // teacher confirmed a correct answer
	StatusGraded  Status = "graded"  // final grade assigned
)

// ConfirmThreshold is the lowest teacher grade that confirms a correct answer.
const ConfirmThreshold = 90

var ErrGradeOutOfRange = errors.New("teacher grade must be between 0 and 100")

// Attempt is a student's answer to a task.
type Attempt struct {
	ID           int64
	TaskID       int64
	StudentID    int64
	Answer       string
	Status       Status
	SystemGrade  *int
	TeacherGrade *int
	ImagePath    *string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// New records an automatically graded attempt. A wrong answer is final
// (graded, teacher grade 0); a correct one waits for teacher confirmation.
func New(taskID, studentID int64, answer string, systemGrade int, now time.Time) (*Attempt, error) {
	if strings.TrimSpace(answer) == "" {
		return nil, errors.New("answer is required")
	}
	if systemGrade < grader.NoScore || systemGrade > grader.FullScore {
		return nil, errors.New("system grade must be between 0 and 100")
	}

	a := &Attempt{
		TaskID:      taskID,
		StudentID:   studentID,
		Answer:      answer,
		SystemGrade: &systemGrade,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if systemGrade == grader.FullScore {
		a.Status = StatusPending
	} else {
		zero := 0
		a.TeacherGrade = &zero
		a.Status = StatusGraded
	}
	return a, nil
}

// Grade applies the teacher's grade. The attempt becomes correct only when
// the system graded it full and the teacher confirms with at least
// ConfirmThreshold.
func (a *Attempt) Grade(teacherGrade int, now time.Time) error {
	if teacherGrade < grader.NoScore || teacherGrade > grader.FullScore {
		return ErrGradeOutOfRange
	}
	if a.SystemGrade != nil && *a.SystemGrade == grader.FullScore && teacherGrade >= ConfirmThreshold {
		a.Status = StatusCorrect
	} else {
		a.Status = StatusGraded
	}
	a.TeacherGrade = &teacherGrade
	a.UpdatedAt = now
	return nil
}

func (a *Attempt) IsPending() bool {
	return a.Status == StatusPending
}
