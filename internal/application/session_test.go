package application_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/cafehub/internal/application"
	"github.com/oksasatya/cafehub/internal/domain/entity"
	repo "github.com/oksasatya/cafehub/internal/domain/repository"
	"github.com/oksasatya/cafehub/internal/domain/repository/mocks"
	"github.com/oksasatya/cafehub/pkg/helpers"
)

// memStore is an in-memory SessionStore for tests.
type memStore struct {
	sessions map[string]int64
}

func newMemStore() *memStore {
	return &memStore{sessions: map[string]int64{}}
}

func (s *memStore) Put(_ context.Context, sid string, userID int64, _ time.Duration) error {
	s.sessions[sid] = userID
	return nil
}

func (s *memStore) Get(_ context.Context, sid string) (int64, bool, error) {
	uid, ok := s.sessions[sid]
	return uid, ok, nil
}

func (s *memStore) Delete(_ context.Context, sid string) error {
	delete(s.sessions, sid)
	return nil
}

func newTestSessions(users repo.UserRepository) (*application.SessionManager, *memStore) {
	store := newMemStore()
	tokens := helpers.NewTokenManager("test-secret", time.Hour)
	return application.NewSessionManager(users, store, tokens, time.Hour, nil), store
}

func TestSessionRoundTrip(t *testing.T) {
	users := new(mocks.UserRepository)
	users.On("GetByID", mock.Anything, int64(5)).
		Return(&entity.User{ID: 5, Email: "a@example.com", Name: "Alice"}, nil)

	sessions, _ := newTestSessions(users)
	ctx := context.Background()

	token, exp, err := sessions.Establish(ctx, 5)
	require.NoError(t, err)
	assert.True(t, exp.After(time.Now()))

	id := sessions.Current(ctx, token)
	assert.False(t, id.IsAnonymous())
	assert.Equal(t, int64(5), id.UserID)
	assert.Equal(t, "a@example.com", id.Email)

	sessions.Invalidate(ctx, token)
	assert.True(t, sessions.Current(ctx, token).IsAnonymous())

	// Invalidating again is a no-op.
	sessions.Invalidate(ctx, token)
}

func TestCurrent_NoToken(t *testing.T) {
	sessions, _ := newTestSessions(new(mocks.UserRepository))
	assert.Equal(t, application.Anonymous, sessions.Current(context.Background(), ""))
}

func TestCurrent_GarbageToken(t *testing.T) {
	sessions, _ := newTestSessions(new(mocks.UserRepository))
	assert.Equal(t, application.Anonymous, sessions.Current(context.Background(), "not-a-token"))
}

func TestCurrent_WrongSecret(t *testing.T) {
	users := new(mocks.UserRepository)
	sessions, store := newTestSessions(users)

	other := helpers.NewTokenManager("other-secret", time.Hour)
	token, _, err := other.Generate(5, "sid-1")
	require.NoError(t, err)
	_ = store.Put(context.Background(), "sid-1", 5, time.Hour)

	assert.True(t, sessions.Current(context.Background(), token).IsAnonymous())
}

func TestCurrent_DeletedUserDegradesToAnonymous(t *testing.T) {
	users := new(mocks.UserRepository)
	users.On("GetByID", mock.Anything, int64(5)).Return(nil, repo.ErrNotFound)

	sessions, _ := newTestSessions(users)
	ctx := context.Background()

	token, _, err := sessions.Establish(ctx, 5)
	require.NoError(t, err)

	assert.True(t, sessions.Current(ctx, token).IsAnonymous())
}

func TestCurrent_ExpiredSessionStoreEntry(t *testing.T) {
	users := new(mocks.UserRepository)
	sessions, store := newTestSessions(users)
	ctx := context.Background()

	token, _, err := sessions.Establish(ctx, 5)
	require.NoError(t, err)

	// Simulate the store entry expiring before the token does.
	for sid := range store.sessions {
		delete(store.sessions, sid)
	}
	assert.True(t, sessions.Current(ctx, token).IsAnonymous())
}
