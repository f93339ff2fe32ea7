package mysql

import (
	"fmt"
	"net"
	"strconv"

	"github.com/go-sql-driver/mysql"

	"github.com/hongminglow/casino-api/internal/config"
)

// DSN renders the driver connection string for db. A configured URL is
// parsed and then forced to the options the store relies on.
func DSN(db config.Database) (string, error) {
	var cfg *mysql.Config
	if db.URL != "" {
		parsed, err := mysql.ParseDSN(db.URL)
		if err != nil {
			return "", fmt.Errorf("parse DATABASE_URL: %w", err)
		}
		cfg = parsed
	} else {
		cfg = mysql.NewConfig()
		cfg.User = db.User
		cfg.Passwd = db.Password
		cfg.Net = "tcp"
		cfg.Addr = net.JoinHostPort(db.Host, strconv.Itoa(db.Port))
		cfg.DBName = db.Name
		if db.TLS {
			cfg.TLSConfig = "true"
		}
	}
	cfg.ParseTime = true
	cfg.ClientFoundRows = true
	return cfg.FormatDSN(), nil
}
