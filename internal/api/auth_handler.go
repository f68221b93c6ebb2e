package api

import (
	"errors"
	"mime"
	"net/http"

	"github.com/kinematics-suite/backend/internal/auth"
	"github.com/kinematics-suite/backend/internal/domain/user"
	"github.com/kinematics-suite/backend/internal/service"
)

// ── Request / Response types ────────────────────────────────────────────────

type RegisterRequest struct {
	FirstName  string     `json:"first_name" example:"Isaac"`
	SecondName string     `json:"second_name,omitempty" example:"Newton"`
	Username   string     `json:"username" example:"inewton"`
	Role       string     `json:"role,omitempty" example:"teacher"`
	Password   string     `json:"password" example:"apple1687"`
	ImageData  *ImageData `json:"image_data,omitempty"`
}

func (r *RegisterRequest) Validate() error {
	if r.Username == "" {
		return errors.New("username is required")
	}
	if r.FirstName == "" {
		return errors.New("first_name is required")
	}
	if r.Password == "" {
		return errors.New("password is required")
	}
	return nil
}

type RegisterResponse struct {
	ID       int64  `json:"id" example:"1"`
	Username string `json:"username" example:"inewton"`
	Role     string `json:"role" example:"teacher"`
}

type LoginRequest struct {
	Username string `json:"username" example:"inewton"`
	Password string `json:"password" example:"apple1687"`
}

func (r *LoginRequest) Validate() error {
	if r.Username == "" || r.Password == "" {
		return errors.New("username and password are required")
	}
	return nil
}

type TokenResponse struct {
	AccessToken string `json:"access_token" example:"eyJhbGciOiJIUzI1NiIs..."`
	TokenType   string `json:"token_type" example:"Bearer"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// register creates an account.
// @Summary      Register a user
// @Description  Create a student or teacher account, optionally with a profile image.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        body  body      RegisterRequest  true  "Account to create"
// @Success      201   {object}  RegisterResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      406   {object}  ErrorResponse  "username taken"
// @Failure      413   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /api/auth/register [post]
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	limitImageBody(w, r, h.accounts.MaxImageSize())
	var req RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	u, err := h.accounts.Register(r.Context(), service.Registration{
		FirstName:  req.FirstName,
		SecondName: req.SecondName,
		Username:   req.Username,
		Role:       req.Role,
		Password:   req.Password,
		Image:      req.ImageData.upload(),
	})
	if h.handleError(w, err) {
		return
	}

	respondJSON(w, http.StatusCreated, RegisterResponse{
		ID:       u.ID,
		Username: u.Username,
		Role:     string(u.Role),
	})
}

// login exchanges credentials for an access token. Both a JSON body and an
// OAuth2 password form are accepted.
// @Summary      Log in
// @Description  Exchange username and password for a bearer token.
// @Tags         Auth
// @Accept       json
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        body  body      LoginRequest  true  "Credentials"
// @Success      200   {object}  TokenResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse  "user is blocked"
// @Router       /api/auth/login [post]
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type")); mediaType == "application/x-www-form-urlencoded" {
		if err := r.ParseForm(); err != nil {
			respondError(w, http.StatusBadRequest, "invalid form body")
			return
		}
		req.Username = r.PostForm.Get("username")
		req.Password = r.PostForm.Get("password")
		if err := req.Validate(); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
	} else if !decodeAndValidate(w, r, &req) {
		return
	}

	tok, err := h.accounts.Login(r.Context(), req.Username, req.Password)
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, TokenResponse{AccessToken: tok.AccessToken, TokenType: tok.TokenType})
}

// refreshToken issues a new token for the bearer.
// @Summary      Refresh a token
// @Tags         Auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  TokenResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse  "user missing or blocked"
// @Router       /api/auth/token/refresh [post]
func (h *Handler) refreshToken(w http.ResponseWriter, r *http.Request) {
	tok, err := h.accounts.Refresh(r.Context(), auth.BearerToken(r))
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, TokenResponse{AccessToken: tok.AccessToken, TokenType: tok.TokenType})
}

// currentUser runs the possibility check for the request's bearer token.
func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) (*user.User, bool) {
	u, err := h.accounts.Authenticate(r.Context(), auth.BearerToken(r))
	if h.handleError(w, err) {
		return nil, false
	}
	return u, true
}
