// Package store owns all persisted state. It exposes a single Storage
// contract with two backends: Postgres when DATABASE_URL is configured,
// and a process-local in-memory fallback otherwise. The backend is
// selected exactly once, at startup, via Open.
package store

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"clinic-booking-api/internal/model"
)

// Storage is the uniform contract both backends satisfy. Every write is
// visible to subsequent reads in the same process immediately. Lookups
// for an absent row return (nil, nil) rather than an error; status
// updates on unknown ids are silent no-ops.
type Storage interface {
	GetUser(ctx context.Context, id string) (*model.User, error)
	UserByEmail(ctx context.Context, email string) (*model.User, error)
	UpsertUser(ctx context.Context, u model.UpsertUser) (*model.User, error)
	UpdateUserPassword(ctx context.Context, id, passwordHash string) error

	CreateInquiry(ctx context.Context, in model.InsertInquiry) (*model.Inquiry, error)
	ListInquiries(ctx context.Context) ([]model.Inquiry, error)
	UpdateInquiryStatus(ctx context.Context, id, status string) error

	ListServiceTypes(ctx context.Context) ([]model.ServiceType, error)
	CreateServiceType(ctx context.Context, in model.InsertServiceType) (*model.ServiceType, error)

	CreateAppointment(ctx context.Context, in model.InsertAppointment) (*model.Appointment, error)
	ListAppointments(ctx context.Context) ([]model.Appointment, error)
	ListAppointmentsByDate(ctx context.Context, day time.Time) ([]model.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, id, status string) error

	CreateRefreshSession(ctx context.Context, userID, tokenHash string, expiresAt time.Time) (string, error)
	RefreshSessionByHash(ctx context.Context, tokenHash string) (*model.RefreshSession, error)
	RotateRefreshSession(ctx context.Context, oldID, newID, userID, newHash string, newExpiry time.Time) error
	RevokeRefreshSessions(ctx context.Context, userID string) error

	Close()
}

// DB is the subset of pgxpool.Pool the Postgres backend uses.
// pgxmock satisfies it too, so the backend is testable without a server.
type DB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

// Open selects the backend for the process lifetime. An empty
// databaseURL selects the in-memory fallback with a warning; otherwise
// a Postgres pool is created, pinged, and the schema migration applied
// best-effort.
func Open(ctx context.Context, databaseURL string) (Storage, error) {
	if databaseURL == "" {
		log.Println("DATABASE_URL not set; using in-memory storage (data does not survive restarts)")
		return NewMemory(), nil
	}

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("db: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}
	log.Println("connected to postgres")

	migrate(ctx, pool)

	return NewPostgres(pool), nil
}

func migrate(ctx context.Context, pool *pgxpool.Pool) {
	migration, err := os.ReadFile("db/migrations/001_init.sql")
	if err != nil {
		log.Printf("migration file not found, skipping: %v", err)
		return
	}
	if _, err := pool.Exec(ctx, string(migration)); err != nil {
		log.Printf("migration warning: %v", err)
		return
	}
	log.Println("migration applied")
}

// dayBounds returns the closed interval covering the calendar day that
// starts at startOfDay.
func dayBounds(startOfDay time.Time) (time.Time, time.Time) {
	return startOfDay, startOfDay.AddDate(0, 0, 1).Add(-time.Nanosecond)
}
