package db

import (
	"github.com/viktor11111122222/money-track/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// Migrate performs automatic migration for the database schema
func Migrate(db *gorm.DB) error {
	// AutoMigrate will create tables, missing foreign keys, constraints, columns and indexes
	return db.AutoMigrate(
		&domain.User{},
		&domain.Wallet{},
		&domain.WalletTransaction{},
		&domain.Invite{},
		&domain.Friend{},
		&domain.Split{},
	)
}
