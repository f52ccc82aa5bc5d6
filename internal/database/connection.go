// internal/database/connection.go
package database

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/regzone/compliance-backend/internal/config"
	"github.com/regzone/compliance-backend/internal/models"
)

// Initialize opens the configured storage backend and returns the handle.
// There is no package-level connection; the handle is passed explicitly
// into every service and closed at shutdown.
func Initialize(cfg config.DatabaseConfig) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		TranslateError: true,
	}

	// Configure GORM logger
	if cfg.LogLevel == "silent" {
		gormConfig.Logger = logger.Default.LogMode(logger.Silent)
	} else {
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	}

	var (
		db  *gorm.DB
		err error
	)

	switch cfg.Driver {
	case "sqlite":
		db, err = gorm.Open(sqlite.Open(cfg.SQLiteDSN()), gormConfig)
	default:
		var sqlDB *sql.DB
		sqlDB, err = sql.Open("postgres", cfg.DSN())
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		db, err = gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), gormConfig)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying sql.DB
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxLifetime) * time.Second)

	// Test connection
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logrus.WithField("driver", cfg.Driver).Info("Database connection established")
	return db, nil
}

func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		logrus.WithError(err).Error("Error getting underlying sql.DB")
		return
	}

	if err := sqlDB.Close(); err != nil {
		logrus.WithError(err).Error("Error closing database connection")
	} else {
		logrus.Info("Database connection closed")
	}
}

func RunMigrations(db *gorm.DB) error {
	logrus.Info("Running database migrations...")

	// Run auto-migrations. Parents before children so the cascade foreign
	// keys can be created alongside the child tables.
	err := db.AutoMigrate(
		&models.User{},
		&models.Notification{},
		&models.Licensee{},
		&models.ComplianceForm{},
		&models.GoodsService{},
		&models.EmploymentDetail{},
		&models.ExportLine{},
		&models.DomesticSale{},
		&models.ImportLine{},
		&models.LocalPurchase{},
		&models.ComplianceChecklistItem{},
		&models.InfrastructureChecklistItem{},
		&models.Investor{},
		&models.Utility{},
		&models.Upload{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Create indexes
	if err := createIndexes(db); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	logrus.Info("Database migrations completed")
	return nil
}

func createIndexes(db *gorm.DB) error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_compliance_forms_status ON compliance_forms(status)",
		"CREATE INDEX IF NOT EXISTS idx_compliance_forms_created_at ON compliance_forms(created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_notifications_user_read ON notifications(user_id, is_read)",
		"CREATE INDEX IF NOT EXISTS idx_uploads_form ON uploads(form_id)",
	}

	for _, index := range indexes {
		if err := db.Exec(index).Error; err != nil {
			logrus.WithError(err).Warnf("Failed to create index: %s", index)
			// Continue with other indexes instead of failing completely
		}
	}

	return nil
}

// WithTransaction runs fn inside one transaction. The transaction is
// released on every exit path: commit on success, rollback on error or
// panic.
func WithTransaction(db *gorm.DB, fn func(*gorm.DB) error) error {
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}
