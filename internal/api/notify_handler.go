package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/kinematics-suite/backend/internal/auth"
	"github.com/kinematics-suite/backend/internal/notify"
)

const writeWait = 10 * time.Second

// teacherFeed streams pending attempts to their task author over a WebSocket.
// Browsers cannot set headers on WebSocket requests, so the token may also
// come in the "token" query parameter.
// @Summary      Pending attempt feed
// @Description  WebSocket. Sends {attempt_id, task_id, student_id, answer, system_grade} for every attempt waiting for the teacher's grade.
// @Tags         Attempts
// @Param        teacher_id  path   int     true   "Teacher ID"
// @Param        token       query  string  false  "Bearer token when no Authorization header can be sent"
// @Success      101
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Router       /ws/teacher/{teacher_id} [get]
func (h *Handler) teacherFeed(w http.ResponseWriter, r *http.Request) {
	teacherID, ok := pathID(w, r, "teacher_id")
	if !ok {
		return
	}
	token := auth.BearerToken(r)
	if token == "" {
		token = r.URL.Query().Get("token")
	}
	if _, err := h.attempts.VerifyTeacher(r.Context(), token, teacherID); h.handleError(w, err) {
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "teacher_id", teacherID, "error", err)
		return
	}
	defer conn.Close()
	// The server's ReadTimeout still applies to the hijacked connection.
	conn.SetReadDeadline(time.Time{})

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// The client only ever sends control frames; a read error means it left.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	h.logger.Info("teacher feed opened", "teacher_id", teacherID)
	err = h.attempts.WatchPending(ctx, token, teacherID, h.pollInterval, func(e notify.Event) error {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		return conn.WriteJSON(e)
	})

	code, reason := websocket.CloseNormalClosure, ""
	if err != nil && !errors.Is(err, context.Canceled) {
		h.logger.Warn("teacher feed failed", "teacher_id", teacherID, "error", err)
		code, reason = websocket.ClosePolicyViolation, "feed stopped"
	}
	conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(code, reason), time.Now().Add(writeWait))
	h.logger.Info("teacher feed closed", "teacher_id", teacherID)
}
