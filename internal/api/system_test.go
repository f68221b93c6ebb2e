package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kinematics-suite/backend/internal/auth"
	"github.com/kinematics-suite/backend/internal/client"
	"github.com/kinematics-suite/backend/internal/domain/user"
	"github.com/kinematics-suite/backend/internal/grader"
	"github.com/kinematics-suite/backend/internal/images"
	"github.com/kinematics-suite/backend/internal/notify"
	"github.com/kinematics-suite/backend/internal/service"
	"github.com/kinematics-suite/backend/internal/store"
)

// system runs the four services on httptest servers wired to each other.
type system struct {
	auth, tasks, solutions, answers *httptest.Server
	authStore                       *store.AuthStore
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newSystem(t *testing.T) *system {
	t.Helper()
	dir := t.TempDir()
	logger := discardLogger()
	origins := []string{"http://localhost:3000"}

	authMux, taskMux, solutionMux, answerMux := http.NewServeMux(), http.NewServeMux(), http.NewServeMux(), http.NewServeMux()
	sys := &system{
		auth:      httptest.NewServer(Logging(logger)(CORS(origins)(authMux))),
		tasks:     httptest.NewServer(Logging(logger)(CORS(origins)(taskMux))),
		solutions: httptest.NewServer(Logging(logger)(CORS(origins)(solutionMux))),
		answers:   httptest.NewServer(Logging(logger)(CORS(origins)(answerMux))),
	}

	authStore, err := store.NewAuthSQLite(filepath.Join(dir, "auth.db"))
	require.NoError(t, err)
	catalogStore, err := store.NewCatalogSQLite(filepath.Join(dir, "tasks.db"))
	require.NoError(t, err)
	solutionStore, err := store.NewSolutionSQLite(filepath.Join(dir, "solutions.db"))
	require.NoError(t, err)
	submissionStore, err := store.NewSubmissionSQLite(filepath.Join(dir, "answers.db"))
	require.NoError(t, err)
	sys.authStore = authStore

	hub := notify.NewHub(16)
	authClient := client.NewAuthClient(sys.auth.URL, 5*time.Second)
	taskClient := client.NewTaskClient(sys.tasks.URL, 5*time.Second)
	solutionClient := client.NewSolutionClient(sys.solutions.URL, 5*time.Second)

	accounts := service.NewAccountService(authStore, auth.NewIssuer("system-secret", time.Hour),
		images.NewStore(filepath.Join(dir, "users"), 1<<20), "Bearer", 7*24*time.Hour, logger)
	RegisterAuthRoutes(authMux, NewAuthHandler(accounts, logger))

	catalog := service.NewCatalogService(catalogStore, authClient, solutionClient, logger)
	RegisterCatalogRoutes(taskMux, NewCatalogHandler(catalog, logger))

	attempts := service.NewAttemptService(solutionStore, authClient, taskClient, grader.ExactMatch{},
		images.NewStore(filepath.Join(dir, "attempts"), 1<<20), hub, 4, logger)
	RegisterSolutionRoutes(solutionMux, NewSolutionHandler(attempts, 50*time.Millisecond, origins, logger))

	submissions := service.NewSubmissionService(submissionStore, authClient, taskClient, grader.ExactMatch{}, logger)
	RegisterSubmissionRoutes(answerMux, NewSubmissionHandler(submissions, logger))

	t.Cleanup(func() {
		hub.Close()
		for _, srv := range []*httptest.Server{sys.answers, sys.solutions, sys.tasks, sys.auth} {
			srv.Close()
		}
		authStore.Close()
		catalogStore.Close()
		solutionStore.Close()
		submissionStore.Close()
	})
	return sys
}

// call sends body as JSON and decodes the response into out when non-nil.
func call(t *testing.T, method, url, token string, body, out any) int {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out), "%s %s", method, url)
	}
	return resp.StatusCode
}

func (s *system) seedAdmin(t *testing.T) {
	t.Helper()
	hash, err := auth.HashPassword("root-pass")
	require.NoError(t, err)
	u, err := user.New("Root", "", "root", user.RoleAdmin, hash, time.Now())
	require.NoError(t, err)
	require.NoError(t, s.authStore.CreateUser(context.Background(), u))
}

func (s *system) signUp(t *testing.T, username, role string) (int64, string) {
	t.Helper()
	var reg RegisterResponse
	status := call(t, http.MethodPost, s.auth.URL+"/api/auth/register", "",
		RegisterRequest{FirstName: username, Username: username, Role: role, Password: "pass-" + username}, &reg)
	require.Equal(t, http.StatusCreated, status)
	return reg.ID, s.login(t, username, "pass-"+username)
}

func (s *system) login(t *testing.T, username, password string) string {
	t.Helper()
	var tok TokenResponse
	status := call(t, http.MethodPost, s.auth.URL+"/api/auth/login", "", LoginRequest{Username: username, Password: password}, &tok)
	require.Equal(t, http.StatusOK, status)
	return tok.AccessToken
}

func TestSystem_AttemptWorkflow(t *testing.T) {
	sys := newSystem(t)
	sys.seedAdmin(t)
	adminToken := sys.login(t, "root", "root-pass")
	teacherID, teacherToken := sys.signUp(t, "newton", "teacher")
	studentID, studentToken := sys.signUp(t, "alice", "")

	// Admin creates a theme, the teacher a task in it.
	var th ThemeResponse
	require.Equal(t, http.StatusCreated, call(t, http.MethodPost, sys.tasks.URL+"/api/themes/create", adminToken,
		ThemeRequest{Title: "Kinematics"}, &th))
	require.Equal(t, http.StatusForbidden, call(t, http.MethodPost, sys.tasks.URL+"/api/themes/create", teacherToken,
		ThemeRequest{Title: "Nope"}, nil))

	var tk TaskResponse
	require.Equal(t, http.StatusCreated, call(t, http.MethodPost, sys.tasks.URL+"/api/tasks/create", teacherToken,
		TaskRequest{Title: "Free fall", Answer: "9.8 m/s", ThemeID: th.ID}, &tk))
	assert.Equal(t, teacherID, tk.UserID)
	assert.NotZero(t, tk.AnswerID)

	var denied ErrorResponse
	require.Equal(t, http.StatusForbidden, call(t, http.MethodPost, sys.tasks.URL+"/api/tasks/create", studentToken,
		TaskRequest{Title: "Cheat", Answer: "x", ThemeID: th.ID}, &denied))
	assert.NotEmpty(t, denied.Detail)

	// Student answers: one right, one wrong.
	var right, wrong AttemptResponse
	require.Equal(t, http.StatusCreated, call(t, http.MethodPost, sys.solutions.URL+"/api/solutions/attempts", studentToken,
		AttemptRequest{TaskID: tk.ID, Answer: " 9.8 M/S"}, &right))
	assert.Equal(t, "pending", right.Status)
	assert.Equal(t, 100, *right.SystemGrade)
	assert.Equal(t, studentID, right.StudentID)

	require.Equal(t, http.StatusCreated, call(t, http.MethodPost, sys.solutions.URL+"/api/solutions/attempts", studentToken,
		AttemptRequest{TaskID: tk.ID, Answer: "10 m/s"}, &wrong))
	assert.Equal(t, "graded", wrong.Status)
	assert.Equal(t, 0, *wrong.TeacherGrade)

	var missing ErrorResponse
	require.Equal(t, http.StatusNotFound, call(t, http.MethodPost, sys.solutions.URL+"/api/solutions/attempts", studentToken,
		AttemptRequest{TaskID: 999, Answer: "x"}, &missing))
	assert.Equal(t, "Task not found", missing.Detail)

	// The teacher sees the pending attempt with names resolved.
	var pending []AttemptDetailResponse
	require.Equal(t, http.StatusOK, call(t, http.MethodGet, sys.solutions.URL+"/api/solutions/attempts/teacher/grade", teacherToken, nil, &pending))
	require.Len(t, pending, 1)
	assert.Equal(t, right.ID, pending[0].ID)
	assert.Equal(t, "Free fall", pending[0].TaskName)
	assert.Equal(t, "Kinematics", pending[0].ThemeName)
	assert.Equal(t, "alice", pending[0].StudentUsername)
	assert.Equal(t, "newton", pending[0].TaskAuthorUsername)
	assert.Equal(t, "9.8 m/s", *pending[0].SystemAnswer)

	// Grading.
	require.Equal(t, http.StatusForbidden, call(t, http.MethodPost,
		fmt.Sprintf("%s/api/solutions/attempts/%d/grade", sys.solutions.URL, right.ID), studentToken, GradeRequest{TeacherGrade: ptr(95)}, nil))
	require.Equal(t, http.StatusBadRequest, call(t, http.MethodPost,
		fmt.Sprintf("%s/api/solutions/attempts/%d/grade", sys.solutions.URL, right.ID), teacherToken, GradeRequest{TeacherGrade: ptr(120)}, nil))

	var graded AttemptResponse
	require.Equal(t, http.StatusOK, call(t, http.MethodPost,
		fmt.Sprintf("%s/api/solutions/attempts/%d/grade", sys.solutions.URL, right.ID), teacherToken, GradeRequest{TeacherGrade: ptr(95)}, &graded))
	assert.Equal(t, "correct", graded.Status)

	// Stats flow from the solution service into the task service.
	var stats TeacherStatsResponse
	require.Equal(t, http.StatusOK, call(t, http.MethodGet, sys.tasks.URL+"/api/tasks/teacher/stats", teacherToken, nil, &stats))
	assert.Equal(t, TeacherStatsResponse{TaskCount: 1, AttemptCount: 2, SolvedCount: 1}, stats)

	var mine []AttemptDetailResponse
	require.Equal(t, http.StatusOK, call(t, http.MethodGet, sys.solutions.URL+"/api/solutions/attempts/student", studentToken, nil, &mine))
	assert.Len(t, mine, 2)

	var all []AttemptDetailResponse
	require.Equal(t, http.StatusOK, call(t, http.MethodGet, sys.solutions.URL+"/api/solutions/attempts/admin", adminToken, nil, &all))
	assert.Len(t, all, 2)
	require.Equal(t, http.StatusForbidden, call(t, http.MethodGet, sys.solutions.URL+"/api/solutions/attempts/admin", teacherToken, nil, nil))
}

func TestSystem_TeacherFeed(t *testing.T) {
	sys := newSystem(t)
	sys.seedAdmin(t)
	adminToken := sys.login(t, "root", "root-pass")
	teacherID, teacherToken := sys.signUp(t, "newton", "teacher")
	_, studentToken := sys.signUp(t, "alice", "")

	var th ThemeResponse
	require.Equal(t, http.StatusCreated, call(t, http.MethodPost, sys.tasks.URL+"/api/themes/create", adminToken, ThemeRequest{Title: "Kinematics"}, &th))
	var tk TaskResponse
	require.Equal(t, http.StatusCreated, call(t, http.MethodPost, sys.tasks.URL+"/api/tasks/create", teacherToken,
		TaskRequest{Title: "Free fall", Answer: "9.8 m/s", ThemeID: th.ID}, &tk))

	var early AttemptResponse
	require.Equal(t, http.StatusCreated, call(t, http.MethodPost, sys.solutions.URL+"/api/solutions/attempts", studentToken,
		AttemptRequest{TaskID: tk.ID, Answer: "9.8 m/s"}, &early))

	wsURL := "ws" + strings.TrimPrefix(sys.solutions.URL, "http") + fmt.Sprintf("/ws/teacher/%d?token=%s", teacherID, url.QueryEscape(teacherToken))

	// A token that belongs to someone else is refused before the upgrade.
	wrongURL := "ws" + strings.TrimPrefix(sys.solutions.URL, "http") + fmt.Sprintf("/ws/teacher/%d?token=%s", teacherID+100, url.QueryEscape(teacherToken))
	_, resp, err := websocket.DefaultDialer.Dial(wrongURL, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	read := func() notify.Event {
		t.Helper()
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(3*time.Second)))
		var e notify.Event
		require.NoError(t, conn.ReadJSON(&e))
		return e
	}

	first := read()
	assert.Equal(t, early.ID, first.AttemptID)
	assert.Equal(t, "9.8 m/s", first.Answer)

	var late AttemptResponse
	require.Equal(t, http.StatusCreated, call(t, http.MethodPost, sys.solutions.URL+"/api/solutions/attempts", studentToken,
		AttemptRequest{TaskID: tk.ID, Answer: "9.8 m/s"}, &late))
	assert.Equal(t, late.ID, read().AttemptID)

	// Wrong answers are never announced, and nothing is repeated by resyncs.
	require.Equal(t, http.StatusCreated, call(t, http.MethodPost, sys.solutions.URL+"/api/solutions/attempts", studentToken,
		AttemptRequest{TaskID: tk.ID, Answer: "0"}, nil))
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(200*time.Millisecond)))
	_, _, err = conn.ReadMessage()
	var netErr interface{ Timeout() bool }
	require.ErrorAs(t, err, &netErr)
	assert.True(t, netErr.Timeout())
}

func TestSystem_AccountsAndSubmissions(t *testing.T) {
	sys := newSystem(t)
	sys.seedAdmin(t)
	adminToken := sys.login(t, "root", "root-pass")
	teacherID, teacherToken := sys.signUp(t, "newton", "teacher")
	studentID, studentToken := sys.signUp(t, "alice", "")

	var dup ErrorResponse
	require.Equal(t, http.StatusNotAcceptable, call(t, http.MethodPost, sys.auth.URL+"/api/auth/register", "",
		RegisterRequest{FirstName: "Al", Username: "alice", Password: "x"}, &dup))
	assert.Equal(t, "User with this username is already exists", dup.Detail)

	// OAuth2 password form login.
	resp, err := http.PostForm(sys.auth.URL+"/api/auth/login", url.Values{"username": {"alice"}, "password": {"pass-alice"}})
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var me UserResponse
	require.Equal(t, http.StatusOK, call(t, http.MethodGet, sys.auth.URL+"/api/possibility/user", studentToken, nil, &me))
	assert.Equal(t, studentID, me.ID)
	assert.Equal(t, "student", me.Role)
	assert.Nil(t, me.Image)

	var invalid ErrorResponse
	require.Equal(t, http.StatusUnauthorized, call(t, http.MethodGet, sys.auth.URL+"/api/possibility/user", "not-a-token", nil, &invalid))
	assert.Equal(t, "Invalid token", invalid.Detail)

	var refreshed TokenResponse
	require.Equal(t, http.StatusOK, call(t, http.MethodPost, sys.auth.URL+"/api/auth/token/refresh", studentToken, nil, &refreshed))
	assert.NotEqual(t, studentToken, refreshed.AccessToken)

	first := "Alicia"
	var updated UserResponse
	require.Equal(t, http.StatusOK, call(t, http.MethodPatch, sys.auth.URL+"/api/possibility/user/update", studentToken,
		UpdateUserRequest{FirstName: &first}, &updated))
	assert.Equal(t, "Alicia", updated.FirstName)

	var users []UserResponse
	require.Equal(t, http.StatusOK, call(t, http.MethodGet, sys.auth.URL+"/api/possibility/users", adminToken, nil, &users))
	assert.Len(t, users, 3)

	// Submissions against a real task.
	var th ThemeResponse
	require.Equal(t, http.StatusCreated, call(t, http.MethodPost, sys.tasks.URL+"/api/themes/create", adminToken, ThemeRequest{Title: "Kinematics"}, &th))
	var tk TaskResponse
	require.Equal(t, http.StatusCreated, call(t, http.MethodPost, sys.tasks.URL+"/api/tasks/create", teacherToken,
		TaskRequest{Title: "Free fall", Answer: "9.8 m/s", ThemeID: th.ID}, &tk))

	var stored IDResponse
	require.Equal(t, http.StatusCreated, call(t, http.MethodPost, sys.answers.URL+"/api/answers/create", "", CreateAnswerRequest{Answer: "9.8 m/s"}, &stored))

	var sub SubmissionResponse
	require.Equal(t, http.StatusCreated, call(t, http.MethodPost, sys.answers.URL+"/api/submissions/create", studentToken,
		SubmissionRequest{TaskID: tk.ID, AnswerID: stored.ID, Answer: "9.8 M/S"}, &sub))
	assert.True(t, sub.IsCorrect)
	assert.Equal(t, studentID, sub.UserID)

	var subs []SubmissionResponse
	require.Equal(t, http.StatusOK, call(t, http.MethodGet, fmt.Sprintf("%s/api/submissions/?user_id=%d", sys.answers.URL, studentID), "", nil, &subs))
	assert.Len(t, subs, 1)
	require.Equal(t, http.StatusOK, call(t, http.MethodGet, fmt.Sprintf("%s/api/submissions/?user_id=%d", sys.answers.URL, teacherID), "", nil, &subs))
	assert.Empty(t, subs)

	// A blocked user loses access everywhere.
	var activity ActivityResponse
	require.Equal(t, http.StatusOK, call(t, http.MethodPatch,
		fmt.Sprintf("%s/api/possibility/users/%d/block", sys.auth.URL, studentID), adminToken, nil, &activity))
	assert.False(t, activity.IsActive)

	var blocked ErrorResponse
	require.Equal(t, http.StatusForbidden, call(t, http.MethodGet, sys.solutions.URL+"/api/solutions/attempts/student", refreshed.AccessToken, nil, &blocked))
	assert.Equal(t, "Access denied", blocked.Detail)

	require.Equal(t, http.StatusOK, call(t, http.MethodPatch,
		fmt.Sprintf("%s/api/possibility/users/%d/unblock", sys.auth.URL, studentID), adminToken, nil, &activity))
	assert.True(t, activity.IsActive)
}

func ptr[T any](v T) *T {
	return &v
}
