// internal/api/router.go
package api

import "net/http"

// RegisterAuthRoutes mounts the auth service: accounts, tokens and the
// possibility checks the other services call.
func RegisterAuthRoutes(mux *http.ServeMux, h *Handler) {
	// Auth
	mux.HandleFunc("POST /api/auth/register", h.register)
	mux.HandleFunc("POST /api/auth/login", h.login)
	mux.HandleFunc("POST /api/auth/token/refresh", h.refreshToken)

	// Possibility
	mux.HandleFunc("GET /api/possibility/user", h.me)
	mux.HandleFunc("GET /api/possibility/user/{id}", h.getUser)
	mux.HandleFunc("PATCH /api/possibility/user/update", h.updateUser)
	mux.HandleFunc("GET /api/possibility/users", h.listUsers)
	mux.HandleFunc("PATCH /api/possibility/users/{id}/block", h.blockUser)
	mux.HandleFunc("PATCH /api/possibility/users/{id}/unblock", h.unblockUser)
}

// RegisterCatalogRoutes mounts the task service.
func RegisterCatalogRoutes(mux *http.ServeMux, h *Handler) {
	// Themes
	mux.HandleFunc("POST /api/themes/create", h.createTheme)
	mux.HandleFunc("GET /api/themes/{$}", h.listThemes)
	mux.HandleFunc("GET /api/themes/{id}", h.getTheme)
	mux.HandleFunc("PUT /api/themes/{id}", h.updateTheme)
	mux.HandleFunc("DELETE /api/themes/{id}", h.deleteTheme)

	// Tasks
	mux.HandleFunc("POST /api/tasks/create", h.createTask)
	mux.HandleFunc("GET /api/tasks/{$}", h.listTasks)
	mux.HandleFunc("GET /api/tasks/task/{id}", h.getTask)
	mux.HandleFunc("GET /api/tasks/teacher", h.teacherTasks)
	mux.HandleFunc("GET /api/tasks/teacher/stats", h.taskTeacherStats)
	mux.HandleFunc("PUT /api/tasks/{id}", h.updateTask)
	mux.HandleFunc("DELETE /api/tasks/{id}", h.deleteTask)
}

// RegisterSolutionRoutes mounts the solution service and the teacher feed.
func RegisterSolutionRoutes(mux *http.ServeMux, h *Handler) {
	// Canonical answers
	mux.HandleFunc("POST /api/solutions/answers/create", h.createCanonicalAnswer)

	// Attempts
	mux.HandleFunc("POST /api/solutions/attempts", h.createAttempt)
	mux.HandleFunc("GET /api/solutions/attempts/student", h.studentAttempts)
	mux.HandleFunc("GET /api/solutions/attempts/teacher", h.teacherAttempts)
	mux.HandleFunc("GET /api/solutions/attempts/teacher/grade", h.pendingAttempts)
	mux.HandleFunc("GET /api/solutions/attempts/admin", h.adminAttempts)
	mux.HandleFunc("POST /api/solutions/attempts/{id}/grade", h.gradeAttempt)
	mux.HandleFunc("GET /api/solutions/teacher/stats", h.attemptTeacherStats)

	// Notifications
	mux.HandleFunc("GET /ws/teacher/{teacher_id}", h.teacherFeed)
}

// RegisterSubmissionRoutes mounts the answer submission service.
func RegisterSubmissionRoutes(mux *http.ServeMux, h *Handler) {
	// Answers
	mux.HandleFunc("POST /api/answers/create", h.createStoredAnswer)
	mux.HandleFunc("GET /api/answers/{id}", h.getStoredAnswer)

	// Submissions
	mux.HandleFunc("POST /api/submissions/create", h.createSubmission)
	mux.HandleFunc("GET /api/submissions/{$}", h.listSubmissions)
}
