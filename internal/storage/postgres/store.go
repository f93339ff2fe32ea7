package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/hongminglow/casino-api/internal/models"
	"github.com/hongminglow/casino-api/internal/storage"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure Store satisfies the storage.UserStore interface at compile time.
var _ storage.UserStore = (*Store)(nil)

const uniqueViolation = "23505"

// Store provides Postgres-backed persistence for users.
type Store struct {
	pool *pgxpool.Pool
}

// NewUserStore connects, verifies the connection and creates the schema.
func NewUserStore(ctx context.Context, databaseURL string, maxConns int32) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	if maxConns > 0 {
		cfg.MaxConns = maxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	s := &Store{pool: pool}
	if err := s.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	if err := s.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return s, nil
}

// Close releases database resources.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Ping checks that a connection can be acquired.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.pool.Ping(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	return nil
}

func (s *Store) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			username TEXT UNIQUE NOT NULL,
			email TEXT UNIQUE NOT NULL,
			phone TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			balance BIGINT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
	}
	for _, stmt := range stmts {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
	}
	return nil
}

// CreateUser inserts a new user row.
func (s *Store) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	const query = `
		INSERT INTO users (first_name, last_name, username, email, phone, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, first_name, last_name, username, email, phone, password_hash, balance, created_at;
	`
	row := s.pool.QueryRow(ctx, query, user.FirstName, user.LastName, user.Username, user.Email, user.Phone, user.PasswordHash)
	created, err := scanUser(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return models.User{}, storage.ErrAlreadyExists
		}
		return models.User{}, fmt.Errorf("insert user: %w", err)
	}
	return created, nil
}

// FindByPhone fetches the user registered with phone.
func (s *Store) FindByPhone(ctx context.Context, phone string) (models.User, error) {
	const query = `
	SELECT id, first_name, last_name, username, email, phone, password_hash, balance, created_at
	FROM users
	WHERE phone = $1;
	`
	row := s.pool.QueryRow(ctx, query, phone)
	return scanUser(row)
}

// GetBalance returns the balance of user id.
func (s *Store) GetBalance(ctx context.Context, id int64) (int64, error) {
	var balance int64
	err := s.pool.QueryRow(ctx, `SELECT balance FROM users WHERE id = $1;`, id).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, storage.ErrNotFound
		}
		return 0, fmt.Errorf("select balance for user %d: %w", id, err)
	}
	return balance, nil
}

// AdjustBalance applies a relative update and reads the balance back.
func (s *Store) AdjustBalance(ctx context.Context, id int64, amount int64) (int64, error) {
	tag, err := s.pool.Exec(ctx, `UPDATE users SET balance = balance + $1 WHERE id = $2;`, amount, id)
	if err != nil {
		return 0, fmt.Errorf("update balance for user %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return 0, storage.ErrNotFound
	}
	return s.GetBalance(ctx, id)
}

func scanUser(row pgx.Row) (models.User, error) {
	var user models.User
	if err := row.Scan(&user.ID, &user.FirstName, &user.LastName, &user.Username, &user.Email, &user.Phone, &user.PasswordHash, &user.Balance, &user.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, storage.ErrNotFound
		}
		return models.User{}, err
	}
	return user, nil
}
