// internal/database/db.go
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/okranz/daregame/internal/game"
)

// Store persists finished games and deck imports. Gameplay never reads it;
// the pool exists for results archival and offline analysis only.
type Store struct {
	pool *pgxpool.Pool
}

// Connect opens a pgx pool against dsn and verifies it with a ping.
func Connect(ctx context.Context, dsn string) (*Store, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("unable to parse pgx config: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("unable to create pgx pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}
	return &Store{pool: pool}, nil
}

// EnsureSchema creates the result tables if they do not exist yet.
func (s *Store) EnsureSchema(ctx context.Context) error {
	ddl := []string{
		`CREATE TABLE IF NOT EXISTS game_results (
			session_id   UUID NOT NULL,
			chat_id      BIGINT NOT NULL,
			player_id    BIGINT NOT NULL,
			player_name  TEXT NOT NULL,
			score        INT NOT NULL,
			is_host      BOOLEAN NOT NULL,
			end_reason   TEXT NOT NULL,
			rounds       INT NOT NULL,
			finished_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
			PRIMARY KEY (session_id, player_id)
		)`,
		`CREATE TABLE IF NOT EXISTS deck_imports (
			session_id  UUID NOT NULL,
			chat_id     BIGINT NOT NULL,
			added       INT NOT NULL,
			imported_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	}
	for _, q := range ddl {
		if _, err := s.pool.Exec(ctx, q); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// SaveResult writes one row per player for a finished session, in a single
// transaction so the scoreboard lands whole or not at all.
func (s *Store) SaveResult(ctx context.Context, sessionID string, chatID int64, reason game.EndReason, board []game.ScoreboardEntry, rounds int) error {
	err := pgx.BeginTxFunc(ctx, s.pool, pgx.TxOptions{}, func(tx pgx.Tx) error {
		q := `
			INSERT INTO game_results (session_id, chat_id, player_id, player_name, score, is_host, end_reason, rounds)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (session_id, player_id)
			DO UPDATE SET score=$5, end_reason=$7, rounds=$8
		`
		for _, entry := range board {
			if _, e := tx.Exec(ctx, q,
				sessionID, chatID, entry.Player.ID, entry.Player.Name,
				entry.Score, entry.IsHost, string(reason), rounds,
			); e != nil {
				return e
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("tx insert game results: %w", err)
	}
	return nil
}

// SaveImport records that a session accepted an import of `added` cards.
func (s *Store) SaveImport(ctx context.Context, sessionID string, chatID int64, added int) error {
	q := `INSERT INTO deck_imports (session_id, chat_id, added) VALUES ($1, $2, $3)`
	if _, err := s.pool.Exec(ctx, q, sessionID, chatID, added); err != nil {
		return fmt.Errorf("insert deck import: %w", err)
	}
	return nil
}

// Close releases the pool.
func (s *Store) Close() {
	s.pool.Close()
}
