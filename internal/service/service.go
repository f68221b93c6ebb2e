// Package service holds the use cases of every service binary. Handlers
// translate HTTP to these calls and back; peers are reached through the
// interfaces below.
package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"

	"github.com/kinematics-suite/backend/internal/client"
	"github.com/kinematics-suite/backend/internal/domain/user"
	"github.com/kinematics-suite/backend/internal/images"
)

// Error is a failure the caller can act on. Status is the HTTP status the
// handler answers with.
type Error struct {
	Status int
	Detail string
}

func (e *Error) Error() string {
	return e.Detail
}

func newError(status int, format string, args ...any) *Error {
	return &Error{Status: status, Detail: fmt.Sprintf(format, args...)}
}

func badRequest(format string, args ...any) *Error {
	return newError(http.StatusBadRequest, format, args...)
}

func unauthorized(detail string) *Error {
	return newError(http.StatusUnauthorized, "%s", detail)
}

func forbidden(detail string) *Error {
	return newError(http.StatusForbidden, "%s", detail)
}

func notFound(detail string) *Error {
	return newError(http.StatusNotFound, "%s", detail)
}

// ── Peers ───────────────────────────────────────────────────────────────────

// Authenticator resolves a bearer token to its owner.
type Authenticator interface {
	CurrentUser(ctx context.Context, token string) (*client.Identity, error)
}

// UserDirectory adds lookups of other users.
type UserDirectory interface {
	Authenticator
	UserByID(ctx context.Context, token string, userID int64) (*client.Identity, error)
}

type TaskDirectory interface {
	Task(ctx context.Context, token string, taskID int64) (*client.TaskInfo, error)
	Theme(ctx context.Context, token string, themeID int64) (*client.ThemeInfo, error)
	TeacherTasks(ctx context.Context, token string) ([]client.TaskInfo, error)
}

// AnswerRegistry is the solution service as seen by the task service.
type AnswerRegistry interface {
	CreateAnswer(ctx context.Context, token, text string) (*client.AnswerInfo, error)
	TeacherStats(ctx context.Context, token string) (*client.AttemptStats, error)
}

var (
	_ UserDirectory  = (*client.AuthClient)(nil)
	_ TaskDirectory  = (*client.TaskClient)(nil)
	_ AnswerRegistry = (*client.SolutionClient)(nil)
)

// ImageUpload is a base64 image sent inline with a request.
type ImageUpload struct {
	Data     string
	FileName string
}

// caller resolves token and checks the owner's role against allowed.
// An empty allowed list accepts every role.
func caller(ctx context.Context, auth Authenticator, token string, allowed ...user.Role) (*client.Identity, error) {
	if token == "" {
		return nil, unauthorized("Not authenticated")
	}
	id, err := auth.CurrentUser(ctx, token)
	if err != nil {
		return nil, err
	}
	if len(allowed) > 0 && !slices.Contains(allowed, id.Role) {
		return nil, forbidden("Access denied")
	}
	return id, nil
}

// decodeImage maps image validation failures to 400s.
func decodeImage(store *images.Store, upload *ImageUpload) ([]byte, error) {
	data, err := store.Decode(upload.Data)
	switch {
	case errors.Is(err, images.ErrTooLarge):
		return nil, badRequest("Image size exceeds %d MB", store.MaxSize()>>20)
	case errors.Is(err, images.ErrInvalid):
		return nil, badRequest("Invalid image data")
	case err != nil:
		return nil, err
	}
	return data, nil
}
