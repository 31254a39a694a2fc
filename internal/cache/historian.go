// internal/cache/historian.go
//
// Package cache publishes accepted client steps to a Redis list so external
// tooling can audit or replay a session. Match state itself is never stored
// here; losing Redis loses nothing but the audit trail.
package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// StepRecord is one accepted client event, in funnel order.
type StepRecord struct {
	SessionID string `json:"sessionId"`
	Seq       int    `json:"seq"`
	ClientID  string `json:"clientId"`
	StepType  string `json:"stepType"`
	Timestamp int64  `json:"timestamp"`
}

// Historian wraps the Redis client used for step publishing.
type Historian struct {
	rdb *redis.Client
}

// NewHistorian connects to Redis and verifies the connection.
func NewHistorian(ctx context.Context, addr, password string) (*Historian, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &Historian{rdb: rdb}, nil
}

// PublishStep appends a record to the session's step list.
func (h *Historian) PublishStep(ctx context.Context, rec StepRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal step record: %w", err)
	}
	key := "session:steps:" + rec.SessionID
	if err := h.rdb.RPush(ctx, key, data).Err(); err != nil {
		return fmt.Errorf("rpush %s: %w", key, err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (h *Historian) Close() error {
	return h.rdb.Close()
}
