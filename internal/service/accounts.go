package service

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/kinematics-suite/backend/internal/auth"
	"github.com/kinematics-suite/backend/internal/domain/user"
	"github.com/kinematics-suite/backend/internal/images"
	"github.com/kinematics-suite/backend/internal/store"
)

// AccountStore is the persistence the auth service needs.
type AccountStore interface {
	CreateUser(ctx context.Context, u *user.User) error
	GetUser(ctx context.Context, id int64) (*user.User, error)
	GetUserByUsername(ctx context.Context, username string) (*user.User, error)
	ListUsers(ctx context.Context) ([]*user.User, error)
	UpdateUser(ctx context.Context, u *user.User) error
	DeleteUser(ctx context.Context, id int64) error
	SaveToken(ctx context.Context, token, tokenType string, createdAt time.Time) error
	TokenExists(ctx context.Context, token string) (bool, error)
	DeleteTokensBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

var _ AccountStore = (*store.AuthStore)(nil)

// AccountService registers users, issues tokens and answers possibility
// checks.
type AccountService struct {
	store          AccountStore
	issuer         *auth.Issuer
	images         *images.Store
	tokenType      string
	tokenRetention time.Duration
	logger         *slog.Logger
	now            func() time.Time
}

func NewAccountService(s AccountStore, issuer *auth.Issuer, img *images.Store, tokenType string, tokenRetention time.Duration, logger *slog.Logger) *AccountService {
	return &AccountService{
		store:          s,
		issuer:         issuer,
		images:         img,
		tokenType:      tokenType,
		tokenRetention: tokenRetention,
		logger:         logger,
		now:            time.Now,
	}
}

type Registration struct {
	FirstName  string
	SecondName string
	Username   string
	Role       string
	Password   string
	Image      *ImageUpload
}

type Token struct {
	AccessToken string
	TokenType   string
}

// Register creates a user. An optional profile image is validated before the
// user is stored and written once the id is known.
func (s *AccountService) Register(ctx context.Context, r Registration) (*user.User, error) {
	role, err := user.ParseRole(r.Role)
	if err != nil {
		return nil, badRequest("%s", err.Error())
	}
	if role == user.RoleAdmin {
		return nil, badRequest("Admin accounts cannot be self-registered")
	}
	if r.Password == "" {
		return nil, badRequest("password is required")
	}
	hash, err := auth.HashPassword(r.Password)
	if errors.Is(err, auth.ErrPasswordTooLong) {
		return nil, badRequest("%s", err.Error())
	}
	if err != nil {
		return nil, err
	}

	now := s.now()
	u, err := user.New(r.FirstName, r.SecondName, r.Username, role, hash, now)
	if err != nil {
		return nil, badRequest("%s", err.Error())
	}

	var image []byte
	if r.Image != nil {
		if image, err = decodeImage(s.images, r.Image); err != nil {
			return nil, err
		}
	}

	if err := s.store.CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrConflict) {
			return nil, newError(http.StatusNotAcceptable, "User with this username is already exists")
		}
		return nil, err
	}

	if image != nil {
		if err := s.attachImage(ctx, u, r.Image.FileName, image); err != nil {
			s.discardUser(u.ID)
			return nil, err
		}
	}

	s.logger.Info("user registered", "user_id", u.ID, "role", u.Role)
	return u, nil
}

// attachImage writes the image and points the user at it. A file written for
// a row that could not be updated is removed again.
func (s *AccountService) attachImage(ctx context.Context, u *user.User, fileName string, data []byte) error {
	path, err := s.images.Write("user", u.ID, fileName, data)
	if err != nil {
		return err
	}
	previous := u.ImagePath
	u.ImagePath = &path
	u.UpdatedAt = s.now()
	if err := s.store.UpdateUser(ctx, u); err != nil {
		u.ImagePath = previous
		if previous == nil || *previous != path {
			if rmErr := s.images.Remove(path); rmErr != nil {
				s.logger.Warn("failed to remove image", "path", path, "error", rmErr)
			}
		}
		return err
	}
	if previous != nil && *previous != path {
		if err := s.images.Remove(*previous); err != nil {
			s.logger.Warn("failed to remove old image", "path", *previous, "error", err)
		}
	}
	return nil
}

// discardUser backs out a registration whose image could not be stored. It
// runs on a fresh context so a cancelled request still cleans up.
func (s *AccountService) discardUser(id int64) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.store.DeleteUser(ctx, id); err != nil {
		s.logger.Error("failed to roll back user", "user_id", id, "error", err)
	}
}

func (s *AccountService) Login(ctx context.Context, username, password string) (*Token, error) {
	u, err := s.store.GetUserByUsername(ctx, username)
	if errors.Is(err, store.ErrNotFound) {
		return nil, unauthorized("Invalid username or password")
	}
	if err != nil {
		return nil, err
	}
	if !auth.VerifyPassword(u.PasswordHash, password) {
		return nil, unauthorized("Invalid username or password")
	}
	if !u.IsActive {
		return nil, forbidden("User is blocked")
	}
	return s.issue(ctx, u)
}

// Refresh trades a valid token for a fresh one.
func (s *AccountService) Refresh(ctx context.Context, token string) (*Token, error) {
	claims, err := s.parse(token)
	if err != nil {
		return nil, err
	}
	u, err := s.store.GetUserByUsername(ctx, claims.Subject)
	if errors.Is(err, store.ErrNotFound) || (err == nil && !u.IsActive) {
		return nil, notFound("User not found or inactive")
	}
	if err != nil {
		return nil, err
	}
	return s.issue(ctx, u)
}

func (s *AccountService) issue(ctx context.Context, u *user.User) (*Token, error) {
	token, issuedAt, err := s.issuer.Issue(u.Username)
	if err != nil {
		return nil, err
	}
	if err := s.store.SaveToken(ctx, token, s.tokenType, issuedAt); err != nil {
		return nil, err
	}
	return &Token{AccessToken: token, TokenType: s.tokenType}, nil
}

func (s *AccountService) parse(token string) (*auth.Claims, error) {
	if token == "" {
		return nil, unauthorized("Not authenticated")
	}
	claims, err := s.issuer.Parse(token)
	if errors.Is(err, auth.ErrTokenExpired) {
		return nil, unauthorized("Token has expired")
	}
	if err != nil {
		return nil, unauthorized("Invalid token")
	}
	return claims, nil
}

// Authenticate is the possibility check: the token must be valid, issued by
// this service and owned by an active user.
func (s *AccountService) Authenticate(ctx context.Context, token string) (*user.User, error) {
	claims, err := s.parse(token)
	if err != nil {
		return nil, err
	}
	known, err := s.store.TokenExists(ctx, token)
	if err != nil {
		return nil, err
	}
	if !known {
		return nil, unauthorized("Invalid token")
	}
	u, err := s.store.GetUserByUsername(ctx, claims.Subject)
	if errors.Is(err, store.ErrNotFound) {
		return nil, unauthorized("Invalid token")
	}
	if err != nil {
		return nil, err
	}
	if !u.IsActive {
		return nil, forbidden("Access denied")
	}
	return u, nil
}

func (s *AccountService) UserByID(ctx context.Context, id int64) (*user.User, error) {
	u, err := s.store.GetUser(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, notFound("User not found")
	}
	return u, err
}

func (s *AccountService) ListUsers(ctx context.Context, caller *user.User) ([]*user.User, error) {
	if caller.Role != user.RoleAdmin {
		return nil, forbidden("Access denied")
	}
	return s.store.ListUsers(ctx)
}

type ProfileUpdate struct {
	FirstName  *string
	SecondName *string
	Image      *ImageUpload
}

func (s *AccountService) UpdateProfile(ctx context.Context, u *user.User, p ProfileUpdate) (*user.User, error) {
	if err := u.Rename(p.FirstName, p.SecondName, s.now()); err != nil {
		return nil, badRequest("%s", err.Error())
	}
	if p.Image != nil {
		data, err := decodeImage(s.images, p.Image)
		if err != nil {
			return nil, err
		}
		if err := s.attachImage(ctx, u, p.Image.FileName, data); err != nil {
			return nil, err
		}
		return u, nil
	}
	if err := s.store.UpdateUser(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// SetActive blocks or unblocks a user. Admins cannot block themselves.
func (s *AccountService) SetActive(ctx context.Context, caller *user.User, id int64, active bool) (*user.User, error) {
	if caller.Role != user.RoleAdmin {
		return nil, forbidden("Access denied")
	}
	if !active && caller.ID == id {
		return nil, badRequest("Admins cannot block themselves")
	}
	u, err := s.UserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	u.SetActive(active, s.now())
	if err := s.store.UpdateUser(ctx, u); err != nil {
		return nil, err
	}
	s.logger.Info("user activity changed", "user_id", id, "active", active, "by", caller.ID)
	return u, nil
}

// MaxImageSize is the largest profile image accepted, in bytes.
func (s *AccountService) MaxImageSize() int64 {
	return s.images.MaxSize()
}

// ImageDataURL returns the user's profile image as a data URL, or nil when
// there is none or it cannot be read.
func (s *AccountService) ImageDataURL(u *user.User) *string {
	if u.ImagePath == nil {
		return nil
	}
	url, err := s.images.DataURL(*u.ImagePath)
	if err != nil {
		s.logger.Warn("failed to read profile image", "user_id", u.ID, "error", err)
		return nil
	}
	return &url
}

// CleanExpiredTokens drops tokens issued longer ago than the retention.
func (s *AccountService) CleanExpiredTokens(ctx context.Context) (int64, error) {
	return s.store.DeleteTokensBefore(ctx, s.now().Add(-s.tokenRetention))
}

// RunTokenCleanup calls CleanExpiredTokens every interval until ctx is done.
func (s *AccountService) RunTokenCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := s.CleanExpiredTokens(ctx)
			if err != nil {
				s.logger.Error("token cleanup failed", "error", err)
				continue
			}
			s.logger.Info("expired tokens removed", "count", n)
		}
	}
}
