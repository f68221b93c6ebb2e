package api

import (
	"net/http"

	"github.com/kinematics-suite/backend/internal/domain/user"
	"github.com/kinematics-suite/backend/internal/service"
)

// ── Request / Response types ────────────────────────────────────────────────

type UserResponse struct {
	ID         int64   `json:"id" example:"1"`
	Username   string  `json:"username" example:"inewton"`
	Role       string  `json:"role" example:"teacher"`
	FirstName  string  `json:"first_name" example:"Isaac"`
	SecondName string  `json:"second_name" example:"Newton"`
	IsActive   bool    `json:"is_active" example:"true"`
	Image      *string `json:"image"`
}

type UpdateUserRequest struct {
	FirstName  *string    `json:"first_name,omitempty" example:"Isaac"`
	SecondName *string    `json:"second_name,omitempty" example:"Newton"`
	ImageData  *ImageData `json:"image_data,omitempty"`
}

func (r *UpdateUserRequest) Validate() error {
	return nil
}

type ActivityResponse struct {
	ID       int64 `json:"id" example:"3"`
	IsActive bool  `json:"is_active" example:"false"`
}

func (h *Handler) toUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Username:   u.Username,
		Role:       string(u.Role),
		FirstName:  u.FirstName,
		SecondName: u.SecondName,
		IsActive:   u.IsActive,
		Image:      h.accounts.ImageDataURL(u),
	}
}

// ── Handlers ────────────────────────────────────────────────────────────────

// me answers the possibility check other services rely on.
// @Summary      Current user
// @Description  Resolve the bearer token to its user. Used by the other services for role checks.
// @Tags         Possibility
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  UserResponse
// @Failure      401  {object}  ErrorResponse  "missing, invalid or expired token"
// @Failure      403  {object}  ErrorResponse  "user is blocked"
// @Router       /api/possibility/user [get]
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	u, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, h.toUserResponse(u))
}

// @Summary      Get a user
// @Tags         Possibility
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  UserResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /api/possibility/user/{id} [get]
func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	u, err := h.accounts.UserByID(r.Context(), id)
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, h.toUserResponse(u))
}

// @Summary      List users
// @Description  Admin only.
// @Tags         Possibility
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   UserResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Router       /api/possibility/users [get]
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	users, err := h.accounts.ListUsers(r.Context(), caller)
	if h.handleError(w, err) {
		return
	}

	resp := make([]UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, h.toUserResponse(u))
	}
	respondJSON(w, http.StatusOK, resp)
}

// @Summary      Update own profile
// @Tags         Possibility
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      UpdateUserRequest  true  "Fields to change"
// @Success      200   {object}  UserResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      413   {object}  ErrorResponse
// @Router       /api/possibility/user/update [patch]
func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	u, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	limitImageBody(w, r, h.accounts.MaxImageSize())
	var req UpdateUserRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.accounts.UpdateProfile(r.Context(), u, service.ProfileUpdate{
		FirstName:  req.FirstName,
		SecondName: req.SecondName,
		Image:      req.ImageData.upload(),
	})
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, h.toUserResponse(updated))
}

// @Summary      Block a user
// @Description  Admin only. Admins cannot block themselves.
// @Tags         Possibility
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  ActivityResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /api/possibility/users/{id}/block [patch]
func (h *Handler) blockUser(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, false)
}

// @Summary      Unblock a user
// @Description  Admin only.
// @Tags         Possibility
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  ActivityResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /api/possibility/users/{id}/unblock [patch]
func (h *Handler) unblockUser(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, true)
}

func (h *Handler) setActive(w http.ResponseWriter, r *http.Request, active bool) {
	caller, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	u, err := h.accounts.SetActive(r.Context(), caller, id, active)
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, ActivityResponse{ID: u.ID, IsActive: u.IsActive})
}
