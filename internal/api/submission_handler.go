package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/kinematics-suite/backend/internal/auth"
	"github.com/kinematics-suite/backend/internal/domain/submission"
	"github.com/kinematics-suite/backend/internal/service"
	"github.com/kinematics-suite/backend/internal/store"
)

// ── Request / Response types ────────────────────────────────────────────────

type IDResponse struct {
	ID int64 `json:"id" example:"5"`
}

type AnswerTextResponse struct {
	ID     int64  `json:"id" example:"5"`
	Answer string `json:"answer" example:"9.8 m/s"`
}

type SubmissionRequest struct {
	TaskID      int64   `json:"task_id" example:"7"`
	AnswerID    int64   `json:"answer_id" example:"5"`
	Answer      string  `json:"answer" example:"9.8 m/s"`
	ImageBase64 *string `json:"image_base64,omitempty"`
}

func (r *SubmissionRequest) Validate() error {
	if r.TaskID <= 0 {
		return errors.New("task_id is required")
	}
	if r.AnswerID <= 0 {
		return errors.New("answer_id is required")
	}
	if strings.TrimSpace(r.Answer) == "" {
		return errors.New("answer is required")
	}
	return nil
}

type SubmissionResponse struct {
	ID        int64     `json:"id" example:"9"`
	UserID    int64     `json:"user_id" example:"4"`
	TaskID    int64     `json:"task_id" example:"7"`
	Answer    string    `json:"answer" example:"9.8 m/s"`
	IsCorrect bool      `json:"is_correct" example:"true"`
	CreatedAt time.Time `json:"created_at"`
}

func toSubmissionResponse(s *submission.Submission) SubmissionResponse {
	return SubmissionResponse{
		ID:        s.ID,
		UserID:    s.UserID,
		TaskID:    s.TaskID,
		Answer:    s.Answer,
		IsCorrect: s.IsCorrect,
		CreatedAt: s.CreatedAt,
	}
}

// ── Handlers ────────────────────────────────────────────────────────────────

// @Summary      Store an answer
// @Tags         Submissions
// @Accept       json
// @Produce      json
// @Param        body  body      CreateAnswerRequest  true  "Answer text"
// @Success      201   {object}  IDResponse
// @Failure      400   {object}  ErrorResponse
// @Router       /api/answers/create [post]
func (h *Handler) createStoredAnswer(w http.ResponseWriter, r *http.Request) {
	var req CreateAnswerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	a, err := h.submissions.CreateAnswer(r.Context(), req.Answer)
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusCreated, IDResponse{ID: a.ID})
}

// @Summary      Get a stored answer
// @Tags         Submissions
// @Produce      json
// @Param        id   path      int  true  "Answer ID"
// @Success      200  {object}  AnswerTextResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /api/answers/{id} [get]
func (h *Handler) getStoredAnswer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	a, err := h.submissions.GetAnswer(r.Context(), id)
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, AnswerTextResponse{ID: a.ID, Answer: a.Text})
}

// @Summary      Submit an answer
// @Description  Records the caller's answer to a task and whether it matches the referenced answer.
// @Tags         Submissions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      SubmissionRequest  true  "Submission"
// @Success      201   {object}  SubmissionResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse  "task or answer not found"
// @Router       /api/submissions/create [post]
func (h *Handler) createSubmission(w http.ResponseWriter, r *http.Request) {
	var req SubmissionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	sub, err := h.submissions.Submit(r.Context(), auth.BearerToken(r), service.SubmissionInput{
		TaskID:      req.TaskID,
		AnswerID:    req.AnswerID,
		Answer:      req.Answer,
		ImageBase64: req.ImageBase64,
	})
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusCreated, toSubmissionResponse(sub))
}

// @Summary      List submissions
// @Tags         Submissions
// @Produce      json
// @Param        task_id  query     int  false  "Only submissions for this task"
// @Param        user_id  query     int  false  "Only submissions by this user"
// @Success      200      {array}   SubmissionResponse
// @Failure      400      {object}  ErrorResponse
// @Router       /api/submissions/ [get]
func (h *Handler) listSubmissions(w http.ResponseWriter, r *http.Request) {
	taskID, ok := queryID(w, r, "task_id")
	if !ok {
		return
	}
	userID, ok := queryID(w, r, "user_id")
	if !ok {
		return
	}

	subs, err := h.submissions.List(r.Context(), store.SubmissionFilter{TaskID: taskID, UserID: userID})
	if h.handleError(w, err) {
		return
	}
	resp := make([]SubmissionResponse, 0, len(subs))
	for _, s := range subs {
		resp = append(resp, toSubmissionResponse(s))
	}
	respondJSON(w, http.StatusOK, resp)
}
