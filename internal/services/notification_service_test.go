// internal/services/notification_service_test.go
package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regzone/compliance-backend/internal/apperrors"
	"github.com/regzone/compliance-backend/internal/models"
)

func TestGetUserNotifications(t *testing.T) {
	db := setupTestDB(t)
	alice := createTestUser(t, db, "alice", models.UserRoleUser)
	bob := createTestUser(t, db, "bob", models.UserRoleUser)

	formID := submitTestForm(t, db, alice.ID, "TC001")
	admin := NewAdminService(db)
	require.NoError(t, admin.UpdateSubmission(&UpdateSubmissionRequest{
		SubmissionID: formID,
		Status:       models.FormStatusApproved,
	}))

	svc := NewNotificationService(db)

	got, err := svc.GetUserNotifications(alice.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Contains(t, got[0].Message, "approved")

	// Other users never see alice's notifications.
	got, err = svc.GetUserNotifications(bob.ID)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMarkAsRead(t *testing.T) {
	db := setupTestDB(t)
	alice := createTestUser(t, db, "alice", models.UserRoleUser)
	bob := createTestUser(t, db, "bob", models.UserRoleUser)

	formID := submitTestForm(t, db, alice.ID, "TC001")
	require.NoError(t, NewAdminService(db).UpdateSubmission(&UpdateSubmissionRequest{
		SubmissionID: formID,
		Status:       models.FormStatusApproved,
	}))

	svc := NewNotificationService(db)
	notifications, err := svc.GetUserNotifications(alice.ID)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	notificationID := notifications[0].ID

	// Ownership is enforced: bob cannot mark alice's notification.
	err = svc.MarkAsRead(notificationID, bob.ID)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))

	require.NoError(t, svc.MarkAsRead(notificationID, alice.ID))

	var stored models.Notification
	require.NoError(t, db.First(&stored, "id = ?", notificationID).Error)
	assert.True(t, stored.IsRead)

	err = svc.MarkAsRead(uuid.New(), alice.ID)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}
