package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"

	"forum-directory/importer"
)

const (
	importSessionPrefix = "import:" // Hash prefix: import:{id} -> staged session fields
)

// Ensure RedisSessionStore implements importer.SessionStore
var _ importer.SessionStore = (*RedisSessionStore)(nil)

// RedisSessionStore keeps staged import sessions in Redis so an import can be
// mapped and committed across requests. Sessions expire after ttl.
type RedisSessionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewRedisSessionStore creates a RedisSessionStore instance
func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{
		Client: client,
		TTL:    ttl,
	}
}

// Helper to generate import session key
func getImportSessionKey(id string) string {
	return importSessionPrefix + id
}

// Save writes the session hash and refreshes its expiry.
func (s *RedisSessionStore) Save(ctx context.Context, sess *importer.Session) error {
	rows, err := json.Marshal(sess.Rows)
	if err != nil {
		return fmt.Errorf("failed to encode rows of import %s: %w", sess.ID, err)
	}
	mapping, err := json.Marshal(sess.Mapping)
	if err != nil {
		return fmt.Errorf("failed to encode mapping of import %s: %w", sess.ID, err)
	}

	key := getImportSessionKey(sess.ID)
	pipe := s.Client.TxPipeline()
	pipe.Del(ctx, key)
	pipe.HSet(ctx, key, map[string]interface{}{
		"id":        sess.ID,
		"filename":  sess.Filename,
		"state":     string(sess.State),
		"createdAt": sess.CreatedAt.Format(time.RFC3339Nano),
		"rows":      rows,
		"mapping":   mapping,
	})
	pipe.Expire(ctx, key, s.TTL)

	if _, err := pipe.Exec(ctx); err != nil {
		slog.Error("Error saving import session", "session_id", sess.ID, "error", err)
		return fmt.Errorf("failed to save import session to Redis: %w", err)
	}
	return nil
}

// Load reads a session back. Missing or expired sessions yield
// importer.ErrSessionNotFound.
func (s *RedisSessionStore) Load(ctx context.Context, id string) (*importer.Session, error) {
	data, err := s.Client.HGetAll(ctx, getImportSessionKey(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, importer.ErrSessionNotFound
		}
		slog.Error("Error getting import session", "session_id", id, "error", err)
		return nil, fmt.Errorf("failed to get import session from Redis: %w", err)
	}
	if len(data) == 0 {
		return nil, importer.ErrSessionNotFound
	}

	sess := &importer.Session{
		ID:       data["id"],
		Filename: data["filename"],
		State:    importer.State(data["state"]),
	}
	if sess.CreatedAt, err = time.Parse(time.RFC3339Nano, data["createdAt"]); err != nil {
		return nil, fmt.Errorf("corrupt createdAt for import %s: %w", id, err)
	}
	if err := json.Unmarshal([]byte(data["rows"]), &sess.Rows); err != nil {
		return nil, fmt.Errorf("corrupt rows for import %s: %w", id, err)
	}
	if err := json.Unmarshal([]byte(data["mapping"]), &sess.Mapping); err != nil {
		return nil, fmt.Errorf("corrupt mapping for import %s: %w", id, err)
	}
	return sess, nil
}

// Delete removes the session hash.
func (s *RedisSessionStore) Delete(ctx context.Context, id string) error {
	if err := s.Client.Del(ctx, getImportSessionKey(id)).Err(); err != nil {
		slog.Error("Error deleting import session", "session_id", id, "error", err)
		return fmt.Errorf("failed to delete import session from Redis: %w", err)
	}
	return nil
}

// --- Utility ---

// InitializeRedisClient creates a Redis client and checks the connection.
func InitializeRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("could not connect to Redis at %s: %w", addr, err)
	}

	slog.Info("Connected to Redis", "addr", addr, "db", db)
	return rdb, nil
}
