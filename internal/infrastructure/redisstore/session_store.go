package redisstore

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/cafehub/internal/application"
)

func sessionKey(sid string) string {
	return "session:" + sid
}

// SessionStore keeps session-id -> user-id bindings in Redis with a TTL.
type SessionStore struct {
	rdb *redis.Client
}

func NewSessionStore(rdb *redis.Client) *SessionStore {
	return &SessionStore{rdb: rdb}
}

func (s *SessionStore) Put(ctx context.Context, sessionID string, userID int64, ttl time.Duration) error {
	return s.rdb.Set(ctx, sessionKey(sessionID), strconv.FormatInt(userID, 10), ttl).Err()
}

func (s *SessionStore) Get(ctx context.Context, sessionID string) (int64, bool, error) {
	v, err := s.rdb.Get(ctx, sessionKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	userID, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false, err
	}
	return userID, true, nil
}

func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.rdb.Del(ctx, sessionKey(sessionID)).Err()
}

var _ application.SessionStore = (*SessionStore)(nil)
