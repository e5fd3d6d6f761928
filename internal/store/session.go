package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"clinic-booking-api/internal/model"
)

func (s *Postgres) CreateRefreshSession(ctx context.Context, userID, tokenHash string, expiresAt time.Time) (string, error) {
	id := uuid.New().String()
	_, err := s.db.Exec(ctx,
		`INSERT INTO refresh_sessions (id, user_id, token_hash, expires_at)
		 VALUES ($1,$2,$3,$4)`,
		id, userID, tokenHash, expiresAt)
	return id, err
}

func (s *Postgres) RefreshSessionByHash(ctx context.Context, tokenHash string) (*model.RefreshSession, error) {
	rs := &model.RefreshSession{}
	err := s.db.QueryRow(ctx,
		`SELECT id, user_id, token_hash, expires_at, revoked, replaced_by, created_at
		 FROM refresh_sessions WHERE token_hash = $1`, tokenHash,
	).Scan(&rs.ID, &rs.UserID, &rs.TokenHash, &rs.ExpiresAt, &rs.Revoked, &rs.ReplacedBy, &rs.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rs, nil
}

// RotateRefreshSession revokes the old session, creates the new one and
// links them, atomically.
func (s *Postgres) RotateRefreshSession(ctx context.Context, oldID, newID, userID, newHash string, newExpiry time.Time) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`UPDATE refresh_sessions SET revoked = true, replaced_by = $1 WHERE id = $2`,
		newID, oldID)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO refresh_sessions (id, user_id, token_hash, expires_at)
		 VALUES ($1,$2,$3,$4)`,
		newID, userID, newHash, newExpiry)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// RevokeRefreshSessions kills every live session for a user, used on
// logout and after a password change.
func (s *Postgres) RevokeRefreshSessions(ctx context.Context, userID string) error {
	_, err := s.db.Exec(ctx,
		`UPDATE refresh_sessions SET revoked = true WHERE user_id = $1 AND revoked = false`,
		userID)
	return err
}
