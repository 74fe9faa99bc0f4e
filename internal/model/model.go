// Package model holds the gorm persistence models.
package model

import (
	"gorm.io/gorm"
)

// AutoMigrateAll migrates every model table.
func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(Note{}, User{})
}
