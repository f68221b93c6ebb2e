package user

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

const (
	maxNameLen     = 20
	maxUsernameLen = 50
)

// ParseRole returns RoleStudent for an empty string.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case "":
		return RoleStudent, nil
	case RoleStudent, RoleTeacher, RoleAdmin:
		return Role(s), nil
	}
	return "", errors.New("invalid role: must be student, teacher, or admin")
}

type User struct {
	ID           int64
	FirstName    string
	SecondName   string
	Username     string
	Role         Role
	PasswordHash string
	ImagePath    *string // Optional - profile picture on disk
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func New(firstName, secondName, username string, role Role, passwordHash string, now time.Time) (*User, error) {
	u := &User{
		Username:     strings.TrimSpace(username),
		Role:         role,
		PasswordHash: passwordHash,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if u.Username == "" {
		return nil, errors.New("username is required")
	}
	if utf8.RuneCountInString(u.Username) > maxUsernameLen {
		return nil, errors.New("username must be at most 50 characters")
	}
	if err := u.Rename(&firstName, &secondName, now); err != nil {
		return nil, err
	}
	return u, nil
}

// Rename updates the non-nil name parts.
func (u *User) Rename(firstName, secondName *string, now time.Time) error {
	if firstName != nil {
		name := strings.TrimSpace(*firstName)
		if name == "" {
			return errors.New("first_name is required")
		}
		if utf8.RuneCountInString(name) > maxNameLen {
			return errors.New("first_name must be at most 20 characters")
		}
		u.FirstName = name
	}
	if secondName != nil {
		name := strings.TrimSpace(*secondName)
		if utf8.RuneCountInString(name) > maxNameLen {
			return errors.New("second_name must be at most 20 characters")
		}
		u.SecondName = name
	}
	u.UpdatedAt = now
	return nil
}

func (u *User) SetActive(active bool, now time.Time) {
	u.IsActive = active
	u.UpdatedAt = now
}
