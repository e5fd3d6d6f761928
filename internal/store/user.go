package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"clinic-booking-api/internal/model"
)

const userColumns = `id, email, first_name, last_name, profile_image_url, password_hash, created_at, updated_at`

func scanUser(row pgx.Row) (*model.User, error) {
	u := &model.User{}
	err := row.Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName,
		&u.ProfileImageURL, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Postgres) GetUser(ctx context.Context, id string) (*model.User, error) {
	return scanUser(s.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

func (s *Postgres) UserByEmail(ctx context.Context, email string) (*model.User, error) {
	return scanUser(s.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email))
}

// UpsertUser creates the user, or merges the supplied fields over the
// existing row and refreshes updated_at. Nil fields keep the stored
// value (there is no way to null a field out through this path).
func (s *Postgres) UpsertUser(ctx context.Context, u model.UpsertUser) (*model.User, error) {
	id := u.ID
	if id == "" {
		id = uuid.New().String()
	}
	return scanUser(s.db.QueryRow(ctx,
		`INSERT INTO users (id, email, first_name, last_name, profile_image_url)
		 VALUES ($1,$2,$3,$4,$5)
		 ON CONFLICT (id) DO UPDATE SET
		   email             = COALESCE(EXCLUDED.email, users.email),
		   first_name        = COALESCE(EXCLUDED.first_name, users.first_name),
		   last_name         = COALESCE(EXCLUDED.last_name, users.last_name),
		   profile_image_url = COALESCE(EXCLUDED.profile_image_url, users.profile_image_url),
		   updated_at        = now()
		 RETURNING `+userColumns,
		id, u.Email, u.FirstName, u.LastName, u.ProfileImageURL))
}

func (s *Postgres) UpdateUserPassword(ctx context.Context, id, passwordHash string) error {
	_, err := s.db.Exec(ctx,
		`UPDATE users SET password_hash = $2, updated_at = now() WHERE id = $1`,
		id, passwordHash)
	return err
}
