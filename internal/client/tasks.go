package client

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

type TaskInfo struct {
	ID        int64   `json:"id"`
	Title     string  `json:"title"`
	Condition *string `json:"condition"`
	ThemeID   int64   `json:"theme_id"`
	AnswerID  int64   `json:"answer_id"`
	UserID    int64   `json:"user_id"`
}

type ThemeInfo struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

// TaskClient reads tasks and themes from the task service.
type TaskClient struct {
	base
}

func NewTaskClient(baseURL string, timeout time.Duration) *TaskClient {
	return &TaskClient{base: newBase(baseURL, timeout)}
}

func (c *TaskClient) Task(ctx context.Context, token string, taskID int64) (*TaskInfo, error) {
	var t TaskInfo
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/tasks/task/%d", taskID), token, nil, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *TaskClient) Theme(ctx context.Context, token string, themeID int64) (*ThemeInfo, error) {
	var t ThemeInfo
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/themes/%d", themeID), token, nil, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// TeacherTasks lists the tasks authored by the owner of token.
func (c *TaskClient) TeacherTasks(ctx context.Context, token string) ([]TaskInfo, error) {
	var tasks []TaskInfo
	if err := c.do(ctx, http.MethodGet, "/api/tasks/teacher", token, nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}
