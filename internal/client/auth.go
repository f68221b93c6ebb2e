package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/kinematics-suite/backend/internal/domain/user"
)

// Identity is the auth service's view of a user.
type Identity struct {
	ID         int64     `json:"id"`
	Username   string    `json:"username"`
	Role       user.Role `json:"role"`
	FirstName  string    `json:"first_name"`
	SecondName string    `json:"second_name"`
	IsActive   bool      `json:"is_active"`
	Image      *string   `json:"image"`
}

// AuthClient performs possibility checks against the auth service.
type AuthClient struct {
	base
}

func NewAuthClient(baseURL string, timeout time.Duration) *AuthClient {
	return &AuthClient{base: newBase(baseURL, timeout)}
}

// CurrentUser resolves the owner of token.
func (c *AuthClient) CurrentUser(ctx context.Context, token string) (*Identity, error) {
	var id Identity
	if err := c.do(ctx, http.MethodGet, "/api/possibility/user", token, nil, &id); err != nil {
		return nil, err
	}
	return &id, nil
}

func (c *AuthClient) UserByID(ctx context.Context, token string, userID int64) (*Identity, error) {
	var id Identity
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/possibility/user/%d", userID), token, nil, &id); err != nil {
		return nil, err
	}
	return &id, nil
}
