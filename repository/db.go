// repository/db.go
package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	_ "github.com/lib/pq"
)

// Sentinel errors shared by all repositories.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

var (
	dbMu sync.Mutex
	db   *sql.DB
)

// ConnectDB returns the shared connection pool, opening it lazily on first
// use. Callers arriving while a connect is in flight block on the same
// attempt instead of racing to open duplicates; a failed attempt leaves no
// handle behind, so the next caller retries.
func ConnectDB() (*sql.DB, error) {
	dbMu.Lock()
	defer dbMu.Unlock()

	if db != nil {
		return db, nil
	}

	host := getEnvOrDefault("DB_HOST", "localhost")
	port := getEnvOrDefault("DB_PORT", "5432")
	user := getEnvOrDefault("DB_USER", "postgres")
	password := getEnvOrDefault("DB_PASSWORD", "postgres")
	dbname := getEnvOrDefault("DB_NAME", "splitbill")

	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname)

	handle, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}

	if err := handle.Ping(); err != nil {
		handle.Close()
		return nil, fmt.Errorf("failed to ping database: %v", err)
	}

	if err := migrate(handle); err != nil {
		handle.Close()
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	slog.Info("connected to database", "host", host, "name", dbname)
	db = handle
	return db, nil
}

// InitDB establishes the shared connection eagerly at startup.
func InitDB() error {
	_, err := ConnectDB()
	return err
}

// CloseDB closes the shared connection.
func CloseDB() {
	dbMu.Lock()
	defer dbMu.Unlock()
	if db != nil {
		db.Close()
		db = nil
	}
}

// GetDB returns the shared database handle.
func GetDB() *sql.DB {
	dbMu.Lock()
	defer dbMu.Unlock()
	return db
}

// Helper function to get environment variable with default value
func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
