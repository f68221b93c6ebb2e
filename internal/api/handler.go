// internal/api/handler.go
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/websocket"

	"github.com/kinematics-suite/backend/internal/client"
	"github.com/kinematics-suite/backend/internal/service"
	"github.com/kinematics-suite/backend/internal/store"
)

// Handler holds the dependencies of the HTTP handlers. Each service binary
// fills in only the service it runs.
type Handler struct {
	accounts    *service.AccountService
	catalog     *service.CatalogService
	attempts    *service.AttemptService
	submissions *service.SubmissionService

	upgrader     websocket.Upgrader
	pollInterval time.Duration
	logger       *slog.Logger
}

func NewAuthHandler(accounts *service.AccountService, logger *slog.Logger) *Handler {
	return &Handler{accounts: accounts, logger: logger}
}

func NewCatalogHandler(catalog *service.CatalogService, logger *slog.Logger) *Handler {
	return &Handler{catalog: catalog, logger: logger}
}

// NewSolutionHandler also serves the teacher feed, accepting WebSocket
// connections from the given origins.
func NewSolutionHandler(attempts *service.AttemptService, pollInterval time.Duration, origins []string, logger *slog.Logger) *Handler {
	return &Handler{
		attempts:     attempts,
		pollInterval: pollInterval,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin(origins),
		},
		logger: logger,
	}
}

func NewSubmissionHandler(submissions *service.SubmissionService, logger *slog.Logger) *Handler {
	return &Handler{submissions: submissions, logger: logger}
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Detail string `json:"detail" example:"Task not found"`
}

// MessageResponse confirms an action without returning the entity.
type MessageResponse struct {
	Message string `json:"message" example:"Task deleted"`
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, detail string) {
	respondJSON(w, status, ErrorResponse{Detail: detail})
}

// handleError writes the response matching err. Returns true if there was an
// error (caller should return).
func (h *Handler) handleError(w http.ResponseWriter, err error) bool {
	if err == nil {
		return false
	}

	var svcErr *service.Error
	var upstream *client.StatusError
	switch {
	case errors.As(err, &svcErr):
		respondError(w, svcErr.Status, svcErr.Detail)
	case errors.As(err, &upstream):
		respondError(w, upstream.Status, upstream.Detail)
	case errors.Is(err, client.ErrUnavailable):
		h.logger.Warn("upstream unavailable", "error", err)
		respondError(w, http.StatusBadGateway, "Upstream service unavailable")
	case errors.Is(err, store.ErrNotFound):
		respondError(w, http.StatusNotFound, "Not found")
	default:
		h.logger.Error("request failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
	}
	return true
}

type validator interface {
	Validate() error
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return false
		}
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

// bodySlack covers the JSON fields around an inline image.
const bodySlack = 64 << 10

// limitImageBody caps the body of a request that may carry a base64 image
// of at most maxImage decoded bytes.
func limitImageBody(w http.ResponseWriter, r *http.Request, maxImage int64) {
	encoded := (maxImage + 2) / 3 * 4
	r.Body = http.MaxBytesReader(w, r.Body, encoded+bodySlack)
}

// decodeAndValidate decodes the body into v and runs its Validate method.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v validator) bool {
	if !decodeJSON(w, r, v) {
		return false
	}
	if err := v.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// pathID parses a positive integer path parameter.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return id, true
}

// queryID parses an optional integer query parameter.
func queryID(w http.ResponseWriter, r *http.Request, name string) (*int64, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid "+name)
		return nil, false
	}
	return &id, true
}

// ImageData is an image sent inline as base64.
type ImageData struct {
	Image    string `json:"image" example:"iVBORw0KGgo..."`
	FileName string `json:"file_name" example:"sketch.png"`
}

func (d *ImageData) upload() *service.ImageUpload {
	if d == nil {
		return nil
	}
	return &service.ImageUpload{Data: d.Image, FileName: d.FileName}
}
