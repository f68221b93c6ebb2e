package service

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kinematics-suite/backend/internal/client"
	"github.com/kinematics-suite/backend/internal/domain/user"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func requireStatus(t *testing.T, err error, status int) {
	t.Helper()
	var se *Error
	require.ErrorAs(t, err, &se)
	assert.Equal(t, status, se.Status, se.Detail)
}

// unwritableDir returns an upload dir that cannot be created because its
// parent is a regular file.
func unwritableDir(t *testing.T) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	return filepath.Join(file, "images")
}

// fakeAuth maps tokens to identities.
type fakeAuth struct {
	mu     sync.Mutex
	tokens map[string]*client.Identity
}

func newFakeAuth() *fakeAuth {
	return &fakeAuth{tokens: make(map[string]*client.Identity)}
}

func (f *fakeAuth) add(token string, id int64, username string, role user.Role) *client.Identity {
	f.mu.Lock()
	defer f.mu.Unlock()
	ident := &client.Identity{ID: id, Username: username, Role: role, FirstName: username, IsActive: true}
	f.tokens[token] = ident
	return ident
}

func (f *fakeAuth) CurrentUser(_ context.Context, token string) (*client.Identity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id, ok := f.tokens[token]
	if !ok {
		return nil, &client.StatusError{Status: http.StatusUnauthorized, Detail: "Invalid token"}
	}
	c := *id
	return &c, nil
}

func (f *fakeAuth) UserByID(_ context.Context, _ string, userID int64) (*client.Identity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, id := range f.tokens {
		if id.ID == userID {
			c := *id
			return &c, nil
		}
	}
	return nil, &client.StatusError{Status: http.StatusNotFound, Detail: "User not found"}
}

// fakeTasks serves tasks and themes; TeacherTasks resolves the token through
// auth.
type fakeTasks struct {
	auth *fakeAuth

	mu     sync.Mutex
	tasks  map[int64]client.TaskInfo
	themes map[int64]client.ThemeInfo
}

func newFakeTasks(auth *fakeAuth) *fakeTasks {
	return &fakeTasks{
		auth:   auth,
		tasks:  make(map[int64]client.TaskInfo),
		themes: make(map[int64]client.ThemeInfo),
	}
}

func (f *fakeTasks) addTask(t client.TaskInfo) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks[t.ID] = t
}

func (f *fakeTasks) addTheme(t client.ThemeInfo) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.themes[t.ID] = t
}

func (f *fakeTasks) Task(_ context.Context, _ string, taskID int64) (*client.TaskInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.tasks[taskID]
	if !ok {
		return nil, &client.StatusError{Status: http.StatusNotFound, Detail: "Task not found"}
	}
	return &t, nil
}

func (f *fakeTasks) Theme(_ context.Context, _ string, themeID int64) (*client.ThemeInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.themes[themeID]
	if !ok {
		return nil, &client.StatusError{Status: http.StatusNotFound, Detail: "Theme not found"}
	}
	return &t, nil
}

func (f *fakeTasks) TeacherTasks(ctx context.Context, token string) ([]client.TaskInfo, error) {
	id, err := f.auth.CurrentUser(ctx, token)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []client.TaskInfo
	for _, t := range f.tasks {
		if t.UserID == id.ID {
			out = append(out, t)
		}
	}
	return out, nil
}

// fakeAnswers records registered answers.
type fakeAnswers struct {
	mu       sync.Mutex
	texts    []string
	stats    *client.AttemptStats
	statsErr error
}

func (f *fakeAnswers) CreateAnswer(_ context.Context, _ string, text string) (*client.AnswerInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.texts = append(f.texts, text)
	return &client.AnswerInfo{ID: int64(len(f.texts)), Text: text}, nil
}

func (f *fakeAnswers) TeacherStats(context.Context, string) (*client.AttemptStats, error) {
	if f.statsErr != nil {
		return nil, f.statsErr
	}
	return f.stats, nil
}
