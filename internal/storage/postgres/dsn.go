package postgres

import (
	"net"
	"net/url"
	"strconv"

	"github.com/hongminglow/casino-api/internal/config"
)

// DSN renders a postgres:// URL for db, or returns the configured URL as is.
func DSN(db config.Database) string {
	if db.URL != "" {
		return db.URL
	}
	sslMode := "disable"
	if db.TLS {
		sslMode = "require"
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(db.User, db.Password),
		Host:     net.JoinHostPort(db.Host, strconv.Itoa(db.Port)),
		Path:     "/" + db.Name,
		RawQuery: url.Values{"sslmode": []string{sslMode}}.Encode(),
	}
	return u.String()
}
