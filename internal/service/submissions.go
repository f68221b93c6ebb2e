package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/kinematics-suite/backend/internal/client"
	"github.com/kinematics-suite/backend/internal/domain/answer"
	"github.com/kinematics-suite/backend/internal/domain/submission"
	"github.com/kinematics-suite/backend/internal/grader"
	"github.com/kinematics-suite/backend/internal/store"
)

type SubmissionStore interface {
	SaveAnswer(ctx context.Context, a *answer.Answer) error
	GetAnswer(ctx context.Context, id int64) (*answer.Answer, error)
	SaveSubmission(ctx context.Context, sub *submission.Submission) error
	ListSubmissions(ctx context.Context, f store.SubmissionFilter) ([]*submission.Submission, error)
}

var _ SubmissionStore = (*store.SubmissionStore)(nil)

// SubmissionService is the answer submission service.
type SubmissionService struct {
	store  SubmissionStore
	auth   Authenticator
	tasks  TaskDirectory
	grader grader.Grader
	logger *slog.Logger
	now    func() time.Time
}

func NewSubmissionService(s SubmissionStore, a Authenticator, tasks TaskDirectory, g grader.Grader, logger *slog.Logger) *SubmissionService {
	return &SubmissionService{store: s, auth: a, tasks: tasks, grader: g, logger: logger, now: time.Now}
}

func (s *SubmissionService) CreateAnswer(ctx context.Context, text string) (*answer.Answer, error) {
	a, err := answer.New(text, 0, s.now())
	if err != nil {
		return nil, badRequest("%s", err.Error())
	}
	if err := s.store.SaveAnswer(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *SubmissionService) GetAnswer(ctx context.Context, id int64) (*answer.Answer, error) {
	a, err := s.store.GetAnswer(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, notFound("Answer not found")
	}
	return a, err
}

type SubmissionInput struct {
	TaskID      int64
	AnswerID    int64
	Answer      string
	ImageBase64 *string
}

// Submit records the caller's answer and whether it matches the referenced
// answer.
func (s *SubmissionService) Submit(ctx context.Context, token string, in SubmissionInput) (*submission.Submission, error) {
	who, err := caller(ctx, s.auth, token)
	if err != nil {
		return nil, err
	}
	if _, err := s.tasks.Task(ctx, token, in.TaskID); err != nil {
		if errors.As(err, new(*client.StatusError)) {
			return nil, notFound("Task not found")
		}
		return nil, err
	}
	expected, err := s.GetAnswer(ctx, in.AnswerID)
	if err != nil {
		return nil, err
	}

	correct := s.grader.Grade(expected.Text, in.Answer) == grader.FullScore
	sub, err := submission.New(who.ID, in.TaskID, in.Answer, in.ImageBase64, correct, s.now())
	if err != nil {
		return nil, badRequest("%s", err.Error())
	}
	if err := s.store.SaveSubmission(ctx, sub); err != nil {
		return nil, err
	}
	s.logger.Info("submission recorded", "submission_id", sub.ID, "user_id", who.ID, "correct", correct)
	return sub, nil
}

func (s *SubmissionService) List(ctx context.Context, f store.SubmissionFilter) ([]*submission.Submission, error) {
	subs, err := s.store.ListSubmissions(ctx, f)
	if err != nil {
		return nil, err
	}
	if subs == nil {
		subs = []*submission.Submission{}
	}
	return subs, nil
}
