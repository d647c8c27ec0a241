package application

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	repo "github.com/oksasatya/cafehub/internal/domain/repository"
	"github.com/oksasatya/cafehub/pkg/helpers"
)

// SessionStore persists the binding between a session id and a user id.
// The Redis implementation lives in internal/infrastructure/redisstore.
type SessionStore interface {
	Put(ctx context.Context, sessionID string, userID int64, ttl time.Duration) error
	Get(ctx context.Context, sessionID string) (userID int64, ok bool, err error)
	Delete(ctx context.Context, sessionID string) error
}

// SessionManager turns a successful credential check into an identity
// carried across requests via a signed cookie token, and resolves that
// token back to an Identity on each request.
type SessionManager struct {
	Users  repo.UserRepository
	Store  SessionStore
	Tokens *helpers.TokenManager
	TTL    time.Duration
	Logger *logrus.Logger
}

func NewSessionManager(users repo.UserRepository, store SessionStore, tokens *helpers.TokenManager, ttl time.Duration, logger *logrus.Logger) *SessionManager {
	return &SessionManager{Users: users, Store: store, Tokens: tokens, TTL: ttl, Logger: logger}
}

// Establish binds a fresh session to the user and returns the cookie
// token with its expiry.
func (m *SessionManager) Establish(ctx context.Context, userID int64) (string, time.Time, error) {
	sid := uuid.NewString()
	token, exp, err := m.Tokens.Generate(userID, sid)
	if err != nil {
		return "", time.Time{}, err
	}
	if err := m.Store.Put(ctx, sid, userID, m.TTL); err != nil {
		return "", time.Time{}, err
	}
	return token, exp, nil
}

// Current resolves a cookie token to an Identity. Every failure mode
// (missing token, bad signature, expired session, deleted user) degrades
// to Anonymous rather than an error: an unauthenticated request is a
// normal state, not a fault. The user row is re-fetched every time so a
// user removed mid-session stops resolving immediately.
func (m *SessionManager) Current(ctx context.Context, token string) Identity {
	if token == "" {
		return Anonymous
	}
	claims, err := m.Tokens.Parse(token)
	if err != nil {
		return Anonymous
	}
	userID, ok, err := m.Store.Get(ctx, claims.SessionID)
	if err != nil {
		if m.Logger != nil {
			m.Logger.WithError(err).Warn("session store lookup failed")
		}
		return Anonymous
	}
	if !ok || userID != claims.UserID {
		return Anonymous
	}
	u, err := m.Users.GetByID(ctx, userID)
	if err != nil {
		return Anonymous
	}
	return Identity{UserID: u.ID, Email: u.Email, Name: u.Name}
}

// Invalidate clears the session binding. Idempotent: invalidating an
// unknown or already-cleared token is a no-op.
func (m *SessionManager) Invalidate(ctx context.Context, token string) {
	if token == "" {
		return
	}
	claims, err := m.Tokens.Parse(token)
	if err != nil {
		return
	}
	if err := m.Store.Delete(ctx, claims.SessionID); err != nil && m.Logger != nil {
		m.Logger.WithError(err).Warn("session delete failed")
	}
}
