// Package backend selects and opens the configured user store.
package backend

import (
	"context"
	"fmt"

	"github.com/hongminglow/casino-api/internal/config"
	"github.com/hongminglow/casino-api/internal/storage"
	"github.com/hongminglow/casino-api/internal/storage/memory"
	"github.com/hongminglow/casino-api/internal/storage/mysql"
	"github.com/hongminglow/casino-api/internal/storage/postgres"
)

// Open connects to the store named by db.Driver, checks it responds and
// creates the schema.
func Open(ctx context.Context, db config.Database) (storage.UserStore, error) {
	switch db.Driver {
	case config.DriverMySQL:
		dsn, err := mysql.DSN(db)
		if err != nil {
			return nil, err
		}
		return mysql.NewUserStore(ctx, dsn, db.MaxConns)
	case config.DriverPostgres:
		return postgres.NewUserStore(ctx, postgres.DSN(db), int32(db.MaxConns))
	case config.DriverMemory:
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unsupported store driver %q", db.Driver)
	}
}
