package testhelpers

import (
	"fmt"
	"testing"
	"time"

	"mockprep/interview/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var (
	openSQLite = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	}
	migrateSchema    = func(db *gorm.DB) error { return db.AutoMigrate(models.AllModels()...) }
	dropScoreTableFn = func(db *gorm.DB) error { return db.Migrator().DropTable(&models.Score{}) }
)

// SetupTestDB creates an isolated in-memory SQLite database for tests.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%d?mode=memory&cache=shared&_foreign_keys=on", time.Now().UnixNano())
	db, err := openSQLite(dsn)
	if err != nil {
		panic(fmt.Sprintf("failed to open test database: %v", err))
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}
	if err := migrateSchema(db); err != nil {
		panic(fmt.Sprintf("failed to migrate test database: %v", err))
	}
	return db
}

// DropScoreTable removes the scores table to force repository errors.
func DropScoreTable(t *testing.T, db *gorm.DB) {
	t.Helper()
	if err := dropScoreTableFn(db); err != nil {
		panic(fmt.Sprintf("failed to drop scores table: %v", err))
	}
}
