// internal/database/store.go
//
// Package database records final match outcomes in Postgres. Only terminal
// results land here; live match state never does, so a process restart
// still means a fresh match.
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jason-s-yu/fivehundred/engine"
)

// MatchResult is the terminal outcome of one session.
type MatchResult struct {
	SessionID   string
	WinningTeam *int
	Aborted     bool
	AbortReason string
	Totals      [engine.NumTeams]int
	GamesPlayed int
	FinishedAt  time.Time
}

// Store wraps the Postgres pool.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore connects to Postgres and verifies the connection.
func NewStore(ctx context.Context, url string) (*Store, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("pgx pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}
	return &Store{pool: pool}, nil
}

// EnsureSchema creates the results table if it does not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS match_results (
			session_id   TEXT PRIMARY KEY,
			winning_team INT,
			aborted      BOOLEAN NOT NULL,
			abort_reason TEXT NOT NULL DEFAULT '',
			team0_total  INT NOT NULL,
			team1_total  INT NOT NULL,
			games_played INT NOT NULL,
			finished_at  TIMESTAMPTZ NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// StoreMatchResult upserts the outcome of one session.
func (s *Store) StoreMatchResult(ctx context.Context, res MatchResult) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO match_results
			(session_id, winning_team, aborted, abort_reason,
			 team0_total, team1_total, games_played, finished_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (session_id) DO NOTHING`,
		res.SessionID, res.WinningTeam, res.Aborted, res.AbortReason,
		res.Totals[0], res.Totals[1], res.GamesPlayed, res.FinishedAt)
	if err != nil {
		return fmt.Errorf("store match result: %w", err)
	}
	return nil
}

// Close releases the pool.
func (s *Store) Close() {
	s.pool.Close()
}
