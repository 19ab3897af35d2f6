// Package database owns the MySQL connection pool and the startup
// migration that creates the schema and seed accounts.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/eknows/eknows-api/internal/config"
)

// Open builds the MySQL pool from the loaded configuration and verifies
// connectivity before returning.  parseTime maps DATETIME columns onto
// time.Time and loc=UTC pins every timestamp the driver hands back.
func Open(cfg config.Config) (*sql.DB, error) {
	cred := cfg.DBUser
	if cfg.DBPass != "" {
		cred += ":" + cfg.DBPass
	}
	dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		cred, cfg.DBHost, cfg.DBPort, cfg.DBName)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping mysql: %w", err)
	}
	return db, nil
}
