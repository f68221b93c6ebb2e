package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/kinematics-suite/backend/internal/auth"
	"github.com/kinematics-suite/backend/internal/domain/task"
	"github.com/kinematics-suite/backend/internal/service"
)

// ── Request / Response types ────────────────────────────────────────────────

type TaskRequest struct {
	Title     string  `json:"title" example:"Free fall"`
	Condition *string `json:"condition,omitempty" example:"A stone falls for 1 s from rest. Find its speed."`
	Answer    string  `json:"answer" example:"9.8 m/s"`
	ThemeID   int64   `json:"theme_id" example:"1"`
}

func (r *TaskRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return errors.New("title is required")
	}
	if strings.TrimSpace(r.Answer) == "" {
		return errors.New("answer is required")
	}
	if r.ThemeID <= 0 {
		return errors.New("theme_id is required")
	}
	return nil
}

func (r *TaskRequest) input() service.TaskInput {
	return service.TaskInput{Title: r.Title, Condition: r.Condition, Answer: r.Answer, ThemeID: r.ThemeID}
}

type TaskResponse struct {
	ID        int64     `json:"id" example:"7"`
	Title     string    `json:"title" example:"Free fall"`
	Condition *string   `json:"condition" example:"A stone falls for 1 s from rest. Find its speed."`
	Type      string    `json:"type" example:"problem"`
	AnswerID  int64     `json:"answer_id" example:"12"`
	ThemeID   int64     `json:"theme_id" example:"1"`
	UserID    int64     `json:"user_id" example:"2"`
	CreatedAt time.Time `json:"created_at"`
}

func toTaskResponse(t *task.Task) TaskResponse {
	return TaskResponse{
		ID:        t.ID,
		Title:     t.Title,
		Condition: t.Condition,
		Type:      string(t.Type),
		AnswerID:  t.AnswerID,
		ThemeID:   t.ThemeID,
		UserID:    t.UserID,
		CreatedAt: t.CreatedAt,
	}
}

func toTaskResponses(tasks []*task.Task) []TaskResponse {
	resp := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		resp = append(resp, toTaskResponse(t))
	}
	return resp
}

type TeacherStatsResponse struct {
	TaskCount    int `json:"task_count" example:"4"`
	AttemptCount int `json:"attempt_count" example:"31"`
	SolvedCount  int `json:"solved_count" example:"12"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// createTask stores a task after registering its answer with the solution
// service.
// @Summary      Create a task
// @Description  Teacher or admin. The canonical answer is registered in the solution service.
// @Tags         Tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      TaskRequest  true  "Task to create"
// @Success      201   {object}  TaskResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse  "theme not found"
// @Failure      502   {object}  ErrorResponse
// @Router       /api/tasks/create [post]
func (h *Handler) createTask(w http.ResponseWriter, r *http.Request) {
	var req TaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	t, err := h.catalog.CreateTask(r.Context(), auth.BearerToken(r), req.input())
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusCreated, toTaskResponse(t))
}

// @Summary      List tasks
// @Tags         Tasks
// @Produce      json
// @Param        theme_id  query     int  false  "Only tasks of this theme"
// @Success      200       {array}   TaskResponse
// @Failure      400       {object}  ErrorResponse
// @Router       /api/tasks/ [get]
func (h *Handler) listTasks(w http.ResponseWriter, r *http.Request) {
	themeID, ok := queryID(w, r, "theme_id")
	if !ok {
		return
	}
	tasks, err := h.catalog.ListTasks(r.Context(), themeID)
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, toTaskResponses(tasks))
}

// @Summary      Get a task
// @Tags         Tasks
// @Produce      json
// @Param        id   path      int  true  "Task ID"
// @Success      200  {object}  TaskResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /api/tasks/task/{id} [get]
func (h *Handler) getTask(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	t, err := h.catalog.GetTask(r.Context(), id)
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, toTaskResponse(t))
}

// @Summary      List own tasks
// @Tags         Tasks
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   TaskResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Router       /api/tasks/teacher [get]
func (h *Handler) teacherTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.catalog.TeacherTasks(r.Context(), auth.BearerToken(r))
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, toTaskResponses(tasks))
}

// @Summary      Update a task
// @Description  Teachers may only update their own tasks.
// @Tags         Tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int          true  "Task ID"
// @Param        body  body      TaskRequest  true  "New values"
// @Success      200   {object}  TaskResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Router       /api/tasks/{id} [put]
func (h *Handler) updateTask(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req TaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	t, err := h.catalog.UpdateTask(r.Context(), auth.BearerToken(r), id, req.input())
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, toTaskResponse(t))
}

// @Summary      Delete a task
// @Description  Teachers may only delete their own tasks. The task is deactivated.
// @Tags         Tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Task ID"
// @Success      200  {object}  MessageResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /api/tasks/{id} [delete]
func (h *Handler) deleteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if h.handleError(w, h.catalog.DeleteTask(r.Context(), auth.BearerToken(r), id)) {
		return
	}
	respondJSON(w, http.StatusOK, MessageResponse{Message: "Task deleted"})
}

// @Summary      Teacher statistics
// @Description  Task count plus attempt numbers from the solution service (zero when it is unreachable).
// @Tags         Tasks
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  TeacherStatsResponse
// @Failure      403  {object}  ErrorResponse
// @Router       /api/tasks/teacher/stats [get]
func (h *Handler) taskTeacherStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.catalog.TeacherStats(r.Context(), auth.BearerToken(r))
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, TeacherStatsResponse{
		TaskCount:    stats.TaskCount,
		AttemptCount: stats.AttemptCount,
		SolvedCount:  stats.SolvedCount,
	})
}
