package database

import (
	"fmt"

	"trivia-api/internal/config"
	"trivia-api/internal/logger"

	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // registers "sqlite3"
	"go.uber.org/zap"
)

const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// NewSQLXDB opens and pings a connection pool for the configured driver.
func NewSQLXDB(dbCfg config.DBConfig, dsn string) (*sqlx.DB, error) {
	switch dbCfg.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return nil, fmt.Errorf("unsupported database driver %q", dbCfg.Driver)
	}

	db, err := sqlx.Connect(dbCfg.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", dbCfg.Driver, err)
	}

	if dbCfg.Driver == DriverSQLite {
		// Every connection to ":memory:" is a separate database, and SQLite
		// serializes writers anyway.
		db.SetMaxOpenConns(1)
	} else if dbCfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(dbCfg.MaxOpenConns)
		db.SetMaxIdleConns(dbCfg.MaxOpenConns)
	}

	logger.Get().Info("Connected to database", zap.String("driver", dbCfg.Driver))
	return db, nil
}
