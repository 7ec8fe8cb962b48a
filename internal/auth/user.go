package auth

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUserExists    = errors.New("user already exists")
	ErrWrongPassword = errors.New("wrong credentials")
	ErrForbidden     = errors.New("forbidden")
)

type Role string

const (
	RoleCoach  Role = "coach"
	RoleClient Role = "client"
)

type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
	// CoachID is set for clients only.
	CoachID string `json:"coachId,omitempty"`
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Session is what a login token resolves to.
type Session struct {
	UserID    string `json:"userId"`
	Role      Role   `json:"role"`
	CoachID   string `json:"coachId,omitempty"`
	CreatedAt int64  `json:"createdAt"`
}

func (s *Session) IsCoach() bool {
	return s.Role == RoleCoach
}

// CanAccessClient reports whether the session may read data of clientID:
// clients their own, coaches the ones they coach.
func (s *Session) CanAccessClient(client *User) bool {
	if client.ID == s.UserID {
		return true
	}
	return s.IsCoach() && client.CoachID == s.UserID
}

type sessionCtxKey struct{}

func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionCtxKey{}, s)
}

func SessionFromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionCtxKey{}).(*Session)
	return s, ok && s != nil
}

type UserGetter interface {
	GetUser(ctx context.Context, id string) (*User, error)
}

// ResolveTarget returns the id of the user a request acts on: the caller itself when
// clientID is empty, otherwise clientID if the caller may access that client.
func ResolveTarget(ctx context.Context, users UserGetter, session *Session, clientID string) (string, error) {
	if clientID == "" || clientID == session.UserID {
		return session.UserID, nil
	}
	if !session.IsCoach() {
		return "", ErrForbidden
	}

	client, err := users.GetUser(ctx, clientID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", ErrForbidden
		}
		return "", fmt.Errorf("get client %s: %w", clientID, err)
	}
	if !session.CanAccessClient(client) {
		return "", ErrForbidden
	}
	return client.ID, nil
}
