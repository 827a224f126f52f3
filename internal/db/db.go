package db

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// OpenInMemory opens an ephemeral SQLite database. Every in-memory SQLite
// connection is its own database, so the pool is capped at a single
// connection to keep all queries on the same data.
func OpenInMemory() (*gorm.DB, error) {
	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("gorm.Open -> %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("gormDB.DB -> %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	return gormDB, nil
}
