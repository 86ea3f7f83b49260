// internal/storage/postgres.go
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"webhooks-api/internal/model"
)

type Storage struct {
	DB *sql.DB
}

// Options tunes the connection pool.
type Options struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

func NewStorage(dsn string, opts Options) (*Storage, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	db.SetMaxOpenConns(opts.MaxOpenConns)
	db.SetMaxIdleConns(opts.MaxIdleConns)
	db.SetConnMaxLifetime(opts.ConnMaxLifetime)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}
	return &Storage{DB: db}, nil
}

// Migrate creates the users table if it does not exist
func (s *Storage) Migrate(ctx context.Context) error {
	_, err := s.DB.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			full_name TEXT,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			is_superuser BOOLEAN NOT NULL DEFAULT FALSE
		)`)
	if err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// GetUser loads a user, using the request session when one is attached to ctx
func (s *Storage) GetUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var q queryer = s.DB
	if sess, ok := SessionFromContext(ctx); ok {
		q = sess
	}

	var (
		u        model.User
		fullName sql.NullString
	)
	err := q.QueryRowContext(ctx, `
		SELECT id, email, full_name, is_active, is_superuser
		FROM users
		WHERE id = $1
	`, id).Scan(&u.ID, &u.Email, &fullName, &u.IsActive, &u.IsSuperuser)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query user %s: %w", id, err)
	}
	u.FullName = fullName.String
	return &u, nil
}

// CreateUser inserts a user; used by operators and tests to seed accounts
func (s *Storage) CreateUser(ctx context.Context, u *model.User) error {
	var fullName sql.NullString
	if u.FullName != "" {
		fullName = sql.NullString{String: u.FullName, Valid: true}
	}
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO users (id, email, full_name, is_active, is_superuser)
		VALUES ($1, $2, $3, $4, $5)
	`, u.ID, u.Email, fullName, u.IsActive, u.IsSuperuser)
	if err != nil {
		return fmt.Errorf("insert user %s: %w", u.ID, err)
	}
	return nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}
