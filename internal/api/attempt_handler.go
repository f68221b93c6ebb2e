package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/kinematics-suite/backend/internal/auth"
	"github.com/kinematics-suite/backend/internal/domain/attempt"
	"github.com/kinematics-suite/backend/internal/service"
)

// ── Request / Response types ────────────────────────────────────────────────

type CreateAnswerRequest struct {
	Answer string `json:"answer" example:"9.8 m/s"`
}

func (r *CreateAnswerRequest) Validate() error {
	if strings.TrimSpace(r.Answer) == "" {
		return errors.New("answer is required")
	}
	return nil
}

type AnswerResponse struct {
	ID     int64  `json:"id" example:"12"`
	Text   string `json:"text" example:"9.8 m/s"`
	UserID int64  `json:"user_id" example:"2"`
}

type AttemptRequest struct {
	TaskID    int64      `json:"task_id" example:"7"`
	Answer    string     `json:"answer" example:"9.8 m/s"`
	ImageData *ImageData `json:"image_data,omitempty"`
}

func (r *AttemptRequest) Validate() error {
	if r.TaskID <= 0 {
		return errors.New("task_id is required")
	}
	if strings.TrimSpace(r.Answer) == "" {
		return errors.New("answer is required")
	}
	return nil
}

type AttemptResponse struct {
	ID           int64     `json:"id" example:"31"`
	TaskID       int64     `json:"task_id" example:"7"`
	StudentID    int64     `json:"student_id" example:"4"`
	Answer       string    `json:"answer" example:"9.8 m/s"`
	Status       string    `json:"status" example:"pending"`
	SystemGrade  *int      `json:"system_grade" example:"100"`
	TeacherGrade *int      `json:"teacher_grade"`
	CreatedAt    time.Time `json:"created_at"`
	ImageData    *string   `json:"image_data"`
}

func toAttemptResponse(a *attempt.Attempt, imageData *string) AttemptResponse {
	return AttemptResponse{
		ID:           a.ID,
		TaskID:       a.TaskID,
		StudentID:    a.StudentID,
		Answer:       a.Answer,
		Status:       string(a.Status),
		SystemGrade:  a.SystemGrade,
		TeacherGrade: a.TeacherGrade,
		CreatedAt:    a.CreatedAt,
		ImageData:    imageData,
	}
}

// AttemptDetailResponse is an attempt with the task, theme and user names
// resolved.
type AttemptDetailResponse struct {
	ID                 int64     `json:"id" example:"31"`
	TaskID             int64     `json:"task_id" example:"7"`
	TaskName           string    `json:"task_name" example:"Free fall"`
	ThemeID            *int64    `json:"theme_id" example:"1"`
	ThemeName          string    `json:"theme_name" example:"Uniform acceleration"`
	StudentID          int64     `json:"student_id" example:"4"`
	StudentUsername    string    `json:"student_username" example:"alice"`
	TaskAuthorID       int64     `json:"task_author_id" example:"2"`
	TaskAuthorUsername string    `json:"task_author_username" example:"inewton"`
	SystemAnswer       *string   `json:"system_answer" example:"9.8 m/s"`
	Answer             string    `json:"answer" example:"9.8 m/s"`
	Status             string    `json:"status" example:"pending"`
	SystemGrade        *int      `json:"system_grade" example:"100"`
	TeacherGrade       *int      `json:"teacher_grade"`
	CreatedAt          time.Time `json:"created_at"`
	ImageData          *string   `json:"image_data"`
}

func toAttemptDetails(attempts []*service.EnrichedAttempt) []AttemptDetailResponse {
	resp := make([]AttemptDetailResponse, 0, len(attempts))
	for _, e := range attempts {
		resp = append(resp, AttemptDetailResponse{
			ID:                 e.ID,
			TaskID:             e.TaskID,
			TaskName:           e.TaskTitle,
			ThemeID:            e.ThemeID,
			ThemeName:          e.ThemeTitle,
			StudentID:          e.StudentID,
			StudentUsername:    e.StudentUsername,
			TaskAuthorID:       e.AuthorID,
			TaskAuthorUsername: e.AuthorUsername,
			SystemAnswer:       e.SystemAnswer,
			Answer:             e.Answer,
			Status:             string(e.Status),
			SystemGrade:        e.SystemGrade,
			TeacherGrade:       e.TeacherGrade,
			CreatedAt:          e.CreatedAt,
			ImageData:          e.ImageData,
		})
	}
	return resp
}

type GradeRequest struct {
	TeacherGrade *int `json:"teacher_grade" example:"95"`
}

func (r *GradeRequest) Validate() error {
	if r.TeacherGrade == nil {
		return errors.New("teacher_grade is required")
	}
	return nil
}

type AttemptStatsResponse struct {
	Attempts int `json:"attempts" example:"31"`
	Solved   int `json:"solved" example:"12"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// @Summary      Register a canonical answer
// @Description  Teacher or admin. Called by the task service when a task is created or updated.
// @Tags         Answers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      CreateAnswerRequest  true  "Answer text"
// @Success      201   {object}  AnswerResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse
// @Router       /api/solutions/answers/create [post]
func (h *Handler) createCanonicalAnswer(w http.ResponseWriter, r *http.Request) {
	var req CreateAnswerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	a, err := h.attempts.CreateAnswer(r.Context(), auth.BearerToken(r), req.Answer)
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusCreated, AnswerResponse{ID: a.ID, Text: a.Text, UserID: a.UserID})
}

// createAttempt grades and stores a student's answer.
// @Summary      Submit an attempt
// @Description  Student only. The answer is compared to the canonical one; a match waits for the teacher's confirmation.
// @Tags         Attempts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      AttemptRequest  true  "Attempt"
// @Success      201   {object}  AttemptResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse  "task or answer not found"
// @Failure      413   {object}  ErrorResponse
// @Router       /api/solutions/attempts [post]
func (h *Handler) createAttempt(w http.ResponseWriter, r *http.Request) {
	limitImageBody(w, r, h.attempts.MaxImageSize())
	var req AttemptRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	res, err := h.attempts.Submit(r.Context(), auth.BearerToken(r), service.AttemptInput{
		TaskID: req.TaskID,
		Answer: req.Answer,
		Image:  req.ImageData.upload(),
	})
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusCreated, toAttemptResponse(res.Attempt, res.ImageData))
}

// @Summary      Own attempts
// @Tags         Attempts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   AttemptDetailResponse
// @Failure      403  {object}  ErrorResponse
// @Router       /api/solutions/attempts/student [get]
func (h *Handler) studentAttempts(w http.ResponseWriter, r *http.Request) {
	attempts, err := h.attempts.StudentAttempts(r.Context(), auth.BearerToken(r))
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, toAttemptDetails(attempts))
}

// @Summary      Attempts on own tasks
// @Tags         Attempts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   AttemptDetailResponse
// @Failure      403  {object}  ErrorResponse
// @Router       /api/solutions/attempts/teacher [get]
func (h *Handler) teacherAttempts(w http.ResponseWriter, r *http.Request) {
	attempts, err := h.attempts.TeacherAttempts(r.Context(), auth.BearerToken(r), false)
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, toAttemptDetails(attempts))
}

// @Summary      Attempts waiting for a grade
// @Tags         Attempts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   AttemptDetailResponse
// @Failure      403  {object}  ErrorResponse
// @Router       /api/solutions/attempts/teacher/grade [get]
func (h *Handler) pendingAttempts(w http.ResponseWriter, r *http.Request) {
	attempts, err := h.attempts.TeacherAttempts(r.Context(), auth.BearerToken(r), true)
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, toAttemptDetails(attempts))
}

// @Summary      All attempts
// @Description  Admin only.
// @Tags         Attempts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   AttemptDetailResponse
// @Failure      403  {object}  ErrorResponse
// @Router       /api/solutions/attempts/admin [get]
func (h *Handler) adminAttempts(w http.ResponseWriter, r *http.Request) {
	attempts, err := h.attempts.AllAttempts(r.Context(), auth.BearerToken(r))
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, toAttemptDetails(attempts))
}

// gradeAttempt records the teacher's grade.
// @Summary      Grade an attempt
// @Description  Task author only. A system-correct attempt graded 90 or more becomes correct.
// @Tags         Attempts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int           true  "Attempt ID"
// @Param        body  body      GradeRequest  true  "Grade between 0 and 100"
// @Success      200   {object}  AttemptResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Router       /api/solutions/attempts/{id}/grade [post]
func (h *Handler) gradeAttempt(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req GradeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	a, err := h.attempts.Grade(r.Context(), auth.BearerToken(r), id, *req.TeacherGrade)
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, toAttemptResponse(a, nil))
}

// @Summary      Attempt statistics
// @Description  Attempts on the caller's tasks and how many were confirmed correct.
// @Tags         Attempts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  AttemptStatsResponse
// @Failure      403  {object}  ErrorResponse
// @Router       /api/solutions/teacher/stats [get]
func (h *Handler) attemptTeacherStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.attempts.TeacherStats(r.Context(), auth.BearerToken(r))
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, AttemptStatsResponse{Attempts: stats.Attempts, Solved: stats.Solved})
}
