package db

import (
	"fmt"

	"github.com/viktor11111122222/money-track/internal/config"

	"gorm.io/driver/mysql"  // MySQL driver for GORM
	"gorm.io/driver/sqlite" // SQLite driver for GORM
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the configured database. SQLite is the default and what
// the original deployment used; MySQL is available for shared deployments.
func Open(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{}
	if cfg.IsProd {
		gormCfg.Logger = logger.Default.LogMode(logger.Silent)
	}

	switch cfg.DBDriver {
	case "mysql":
		dsn := cfg.DBUser + ":" + cfg.DBPassword + "@tcp(" + cfg.DBHost + ":" + cfg.DBPort + ")/" + cfg.DBName + "?parseTime=true"
		return gorm.Open(mysql.Open(dsn), gormCfg)
	case "sqlite", "":
		db, err := gorm.Open(sqlite.Open(cfg.DBPath), gormCfg)
		if err != nil {
			return nil, err
		}
		if sqlDB, err := db.DB(); err == nil {
			_, _ = sqlDB.Exec("PRAGMA journal_mode = WAL;")
			_, _ = sqlDB.Exec("PRAGMA foreign_keys = ON;")
		}
		return db, nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}
