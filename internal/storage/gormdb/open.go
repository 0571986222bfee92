package gormdb

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	// Pure-Go SQLite driver; selected via DriverName below so the build
	// needs no cgo.
	_ "modernc.org/sqlite"
)

// NewPostgres opens the hosted relational backend.
func NewPostgres(dsn string) (*Storage, error) {
	db, err := gorm.Open(postgres.Open(dsn), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}
	return newStorage(db)
}

// NewSQLite opens the embedded SQL backend at the given file path.
func NewSQLite(path string) (*Storage, error) {
	db, err := gorm.Open(sqlite.New(sqlite.Config{
		DSN:        path,
		DriverName: "sqlite",
	}), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}
	// Match the engine's referential behavior to the hosted backend.
	db.Exec("PRAGMA foreign_keys = ON")
	return newStorage(db)
}

func gormConfig() *gorm.Config {
	return &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		// Surfaces unique-constraint violations as gorm.ErrDuplicatedKey
		// on drivers that support translation (postgres).
		TranslateError: true,
	}
}
