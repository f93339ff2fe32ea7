package storage

import (
	"context"
	"errors"

	"github.com/hongminglow/casino-api/internal/models"
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness conflict on username, email or phone.
var ErrAlreadyExists = errors.New("record already exists")

// UserStore captures persistence operations needed by handlers.
type UserStore interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindByPhone(ctx context.Context, phone string) (models.User, error)
	GetBalance(ctx context.Context, id int64) (int64, error)
	// AdjustBalance adds amount to the stored balance in one statement and
	// returns the balance read back afterwards. The read is not isolated from
	// other writers.
	AdjustBalance(ctx context.Context, id int64, amount int64) (int64, error)
	Ping(ctx context.Context) error
	Close()
}
