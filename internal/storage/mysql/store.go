package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"github.com/hongminglow/casino-api/internal/models"
	"github.com/hongminglow/casino-api/internal/storage"
)

// Ensure Store satisfies the storage.UserStore interface at compile time.
var _ storage.UserStore = (*Store)(nil)

const errDuplicateEntry = 1062

// Store provides MySQL-backed persistence for users.
type Store struct {
	db *sqlx.DB
}

// New wraps an existing connection pool. The schema is not touched.
func New(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// NewUserStore opens a pool for dsn, verifies it and creates the schema.
func NewUserStore(ctx context.Context, dsn string, maxConns int) (*Store, error) {
	db, err := sqlx.ConnectContext(ctx, "mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if maxConns > 0 {
		db.SetMaxOpenConns(maxConns)
		db.SetMaxIdleConns(maxConns)
	}
	db.SetConnMaxLifetime(5 * time.Minute)

	s := New(db)
	if err := s.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases database resources.
func (s *Store) Close() {
	if s.db != nil {
		_ = s.db.Close()
	}
}

// Ping checks that a connection can be acquired.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	return nil
}

// Migrate creates the users table if it does not exist.
func (s *Store) Migrate(ctx context.Context) error {
	const stmt = `
		CREATE TABLE IF NOT EXISTS users (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL,
			username VARCHAR(100) NOT NULL UNIQUE,
			email VARCHAR(100) NOT NULL UNIQUE,
			phone VARCHAR(20) NOT NULL UNIQUE,
			password_hash VARCHAR(255) NOT NULL,
			balance BIGINT NOT NULL DEFAULT 0,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`
	if _, err := s.db.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// CreateUser inserts a new user row.
func (s *Store) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	const query = `INSERT INTO users (first_name, last_name, username, email, phone, password_hash)
		VALUES (?, ?, ?, ?, ?, ?)`
	res, err := s.db.ExecContext(ctx, query, user.FirstName, user.LastName, user.Username, user.Email, user.Phone, user.PasswordHash)
	if err != nil {
		var myErr *mysql.MySQLError
		if errors.As(err, &myErr) && myErr.Number == errDuplicateEntry {
			return models.User{}, storage.ErrAlreadyExists
		}
		return models.User{}, fmt.Errorf("insert user: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.User{}, fmt.Errorf("read inserted id: %w", err)
	}
	user.ID = id
	user.Balance = 0
	return user, nil
}

// FindByPhone fetches the user registered with phone.
func (s *Store) FindByPhone(ctx context.Context, phone string) (models.User, error) {
	var user models.User
	const query = `SELECT id, first_name, last_name, username, email, phone, password_hash, balance, created_at
		FROM users WHERE phone = ?`
	if err := s.db.GetContext(ctx, &user, query, phone); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, storage.ErrNotFound
		}
		return models.User{}, fmt.Errorf("select user by phone: %w", err)
	}
	return user, nil
}

// GetBalance returns the balance of user id.
func (s *Store) GetBalance(ctx context.Context, id int64) (int64, error) {
	var balance int64
	if err := s.db.GetContext(ctx, &balance, `SELECT balance FROM users WHERE id = ?`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, storage.ErrNotFound
		}
		return 0, fmt.Errorf("select balance for user %d: %w", id, err)
	}
	return balance, nil
}

// AdjustBalance applies a relative update and reads the balance back. The
// DSN must enable clientFoundRows, otherwise an amount of zero reports no
// affected rows and looks like a missing user.
func (s *Store) AdjustBalance(ctx context.Context, id int64, amount int64) (int64, error) {
	res, err := s.db.ExecContext(ctx, `UPDATE users SET balance = balance + ? WHERE id = ?`, amount, id)
	if err != nil {
		return 0, fmt.Errorf("update balance for user %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected for user %d: %w", id, err)
	}
	if affected == 0 {
		return 0, storage.ErrNotFound
	}
	return s.GetBalance(ctx, id)
}
