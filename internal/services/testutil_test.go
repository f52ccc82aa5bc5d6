// internal/services/testutil_test.go
package services

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/regzone/compliance-backend/internal/database"
	"github.com/regzone/compliance-backend/internal/models"
)

// setupTestDB opens a private in-memory SQLite database with foreign-key
// enforcement on, so cascade deletes behave as they do in production.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, database.RunMigrations(db))

	t.Cleanup(func() {
		database.Close(db)
	})

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string, role models.UserRole) *models.User {
	t.Helper()

	user := &models.User{
		Username: username,
		Role:     role,
	}
	require.NoError(t, user.SetPassword("password123"))
	require.NoError(t, db.Create(user).Error)
	return user
}

// minimalSubmission is the smallest valid payload: identifying fields
// only, no optional arrays or sections.
func minimalSubmission(licenseNo string) *SubmitComplianceRequest {
	return &SubmitComplianceRequest{
		LicenseeName:     "Test Company Ltd",
		LicenseNo:        licenseNo,
		FinancialQuarter: "Q1 2024",
	}
}
