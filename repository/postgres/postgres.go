// Package postgres opens the PostgreSQL connection pool and prepares the schema.
package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/litvinov-da/library/config"
	"github.com/litvinov-da/library/repository/migrations"
	_ "github.com/lib/pq"
)

// OpenDBConn creates a PostgreSQL database connection pool.
func OpenDBConn(cfg config.Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		return nil, err
	}
	duration, err := time.ParseDuration(cfg.Database.MaxIdleTime)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxIdleTime(duration)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err = db.PingContext(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// Migrate brings the schema up to date and returns the resulting version.
func Migrate(db *sql.DB) (int64, error) {
	err := migrations.Up(db)
	if err != nil {
		return 0, err
	}
	return migrations.Version(db)
}
