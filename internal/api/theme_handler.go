package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/kinematics-suite/backend/internal/auth"
	"github.com/kinematics-suite/backend/internal/domain/theme"
)

// ── Request / Response types ────────────────────────────────────────────────

type ThemeRequest struct {
	Title       string  `json:"title" example:"Uniform acceleration"`
	Description *string `json:"description,omitempty" example:"Motion with constant acceleration"`
}

func (r *ThemeRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return errors.New("title is required")
	}
	return nil
}

type ThemeResponse struct {
	ID          int64   `json:"id" example:"1"`
	Title       string  `json:"title" example:"Uniform acceleration"`
	Description *string `json:"description" example:"Motion with constant acceleration"`
}

func toThemeResponse(t *theme.Theme) ThemeResponse {
	return ThemeResponse{ID: t.ID, Title: t.Title, Description: t.Description}
}

// ── Handlers ────────────────────────────────────────────────────────────────

// @Summary      Create a theme
// @Description  Admin only.
// @Tags         Themes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      ThemeRequest  true  "Theme to create"
// @Success      201   {object}  ThemeResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse
// @Router       /api/themes/create [post]
func (h *Handler) createTheme(w http.ResponseWriter, r *http.Request) {
	var req ThemeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	t, err := h.catalog.CreateTheme(r.Context(), auth.BearerToken(r), req.Title, req.Description)
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusCreated, toThemeResponse(t))
}

// @Summary      List themes
// @Tags         Themes
// @Produce      json
// @Success      200  {array}   ThemeResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/themes/ [get]
func (h *Handler) listThemes(w http.ResponseWriter, r *http.Request) {
	themes, err := h.catalog.ListThemes(r.Context())
	if h.handleError(w, err) {
		return
	}

	resp := make([]ThemeResponse, 0, len(themes))
	for _, t := range themes {
		resp = append(resp, toThemeResponse(t))
	}
	respondJSON(w, http.StatusOK, resp)
}

// @Summary      Get a theme
// @Tags         Themes
// @Produce      json
// @Param        id   path      int  true  "Theme ID"
// @Success      200  {object}  ThemeResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /api/themes/{id} [get]
func (h *Handler) getTheme(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	t, err := h.catalog.GetTheme(r.Context(), id)
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, toThemeResponse(t))
}

// @Summary      Update a theme
// @Description  Admin only.
// @Tags         Themes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int           true  "Theme ID"
// @Param        body  body      ThemeRequest  true  "New values"
// @Success      200   {object}  ThemeResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Router       /api/themes/{id} [put]
func (h *Handler) updateTheme(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req ThemeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	t, err := h.catalog.UpdateTheme(r.Context(), auth.BearerToken(r), id, req.Title, req.Description)
	if h.handleError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, toThemeResponse(t))
}

// @Summary      Delete a theme
// @Description  Admin only. The theme is deactivated.
// @Tags         Themes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Theme ID"
// @Success      200  {object}  MessageResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /api/themes/{id} [delete]
func (h *Handler) deleteTheme(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if h.handleError(w, h.catalog.DeleteTheme(r.Context(), auth.BearerToken(r), id)) {
		return
	}
	respondJSON(w, http.StatusOK, MessageResponse{Message: "Theme deleted"})
}
