package models

import (
	"sync"

	"gorm.io/gorm"
)

var (
	migrateOnce sync.Once
	migrateErr  error
)

// All lists every registered record type, in migration order.
func All() []any {
	return []any{&Event{}, &Booking{}}
}

// Migrate creates or updates the schema for every registered record type.
// It runs at most once per process; repeated initialization reuses the
// already-migrated schema set instead of re-running DDL.
func Migrate(db *gorm.DB) error {
	migrateOnce.Do(func() {
		migrateErr = db.AutoMigrate(All()...)
	})
	return migrateErr
}
