// Package testutil builds throwaway dependencies for package tests.
package testutil

import (
	"testing"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/customer-service/internal/config"
	"github.com/BruksfildServices01/customer-service/internal/db"
)

// NewDB returns a migrated in-memory sqlite database private to the test.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := db.Open(&config.Config{
		DBDriver: config.DriverSQLite,
		DBUrl:    "file::memory:",
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return gdb
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
