// internal/services/admin_service_test.go
package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/regzone/compliance-backend/internal/apperrors"
	"github.com/regzone/compliance-backend/internal/models"
	"github.com/regzone/compliance-backend/internal/utils"
)

func submitTestForm(t *testing.T, db *gorm.DB, userID uuid.UUID, licenseNo string) uuid.UUID {
	t.Helper()
	formID, err := NewComplianceService(db).SubmitForm(userID, minimalSubmission(licenseNo), nil)
	require.NoError(t, err)
	return formID
}

func TestUpdateSubmissionUnknownID(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAdminService(db)

	err := svc.UpdateSubmission(&UpdateSubmissionRequest{
		SubmissionID: uuid.New(),
		Status:       models.FormStatusApproved,
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))

	// A failed update must not leave a stray notification behind.
	var count int64
	require.NoError(t, db.Model(&models.Notification{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestUpdateSubmissionNotifiesOwner(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "alice", models.UserRoleUser)
	formID := submitTestForm(t, db, user.ID, "TC001")
	svc := NewAdminService(db)

	err := svc.UpdateSubmission(&UpdateSubmissionRequest{
		SubmissionID: formID,
		Status:       models.FormStatusRejected,
		CheckedBy:    "Inspector A",
		VerifiedBy:   "Supervisor B",
		Date:         "2024-03-15",
		Comment:      "Missing audited accounts",
	})
	require.NoError(t, err)

	var form models.ComplianceForm
	require.NoError(t, db.First(&form, "id = ?", formID).Error)
	assert.Equal(t, models.FormStatusRejected, form.Status)
	assert.Equal(t, "Inspector A", form.CheckedBy)
	assert.Equal(t, "Supervisor B", form.VerifiedBy)
	assert.Equal(t, "2024-03-15", form.ReviewDate)
	assert.Equal(t, "Missing audited accounts", form.AdminComment)

	var notifications []models.Notification
	require.NoError(t, db.Where("user_id = ?", user.ID).Find(&notifications).Error)
	require.Len(t, notifications, 1)
	assert.Equal(t, models.NotificationTypeSubmissionUpdate, notifications[0].Type)
	assert.Contains(t, notifications[0].Message, "rejected")
	require.NotNil(t, notifications[0].RelatedID)
	assert.Equal(t, formID, *notifications[0].RelatedID)
	assert.False(t, notifications[0].IsRead)
}

func TestUpdateSubmissionOneNotificationPerTransition(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "alice", models.UserRoleUser)
	formID := submitTestForm(t, db, user.ID, "TC001")
	svc := NewAdminService(db)

	statuses := []models.FormStatus{
		models.FormStatusApproved,
		models.FormStatusRejected,
		models.FormStatusPending,
	}
	for _, status := range statuses {
		require.NoError(t, svc.UpdateSubmission(&UpdateSubmissionRequest{
			SubmissionID: formID,
			Status:       status,
		}))
	}

	var count int64
	require.NoError(t, db.Model(&models.Notification{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.EqualValues(t, len(statuses), count)
}

func TestApproveSubmissionKeepsCommentAndNamesForm(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "alice", models.UserRoleUser)
	formID := submitTestForm(t, db, user.ID, "TC001")
	svc := NewAdminService(db)

	require.NoError(t, svc.UpdateSubmission(&UpdateSubmissionRequest{
		SubmissionID: formID,
		Status:       models.FormStatusRejected,
		Comment:      "Missing audited accounts",
	}))

	// The comment-less path leaves the earlier comment in place.
	require.NoError(t, svc.ApproveSubmission(&ApproveSubmissionRequest{
		SubmissionID: formID,
		Status:       models.FormStatusApproved,
		CheckedBy:    "Inspector A",
		Date:         "2024-03-20",
	}))

	var form models.ComplianceForm
	require.NoError(t, db.First(&form, "id = ?", formID).Error)
	assert.Equal(t, models.FormStatusApproved, form.Status)
	assert.Equal(t, "Missing audited accounts", form.AdminComment)
	assert.Equal(t, "Inspector A", form.CheckedBy)
	assert.Equal(t, "2024-03-20", form.ReviewDate)

	var notifications []models.Notification
	require.NoError(t, db.Where("user_id = ?", user.ID).Order("created_at").Find(&notifications).Error)
	require.Len(t, notifications, 2)
	assert.Contains(t, notifications[1].Message, formID.String())
	assert.Contains(t, notifications[1].Message, "approved")

	err := svc.ApproveSubmission(&ApproveSubmissionRequest{
		SubmissionID: uuid.New(),
		Status:       models.FormStatusApproved,
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestUpdateSubmissionValidatesStatus(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "alice", models.UserRoleUser)
	formID := submitTestForm(t, db, user.ID, "TC001")
	svc := NewAdminService(db)

	err := svc.UpdateSubmission(&UpdateSubmissionRequest{
		SubmissionID: formID,
		Status:       models.FormStatus("archived"),
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func TestGetSubmissionsPaginated(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "alice", models.UserRoleUser)
	for i := 0; i < 3; i++ {
		submitTestForm(t, db, user.ID, "TC00"+string(rune('1'+i)))
	}
	svc := NewAdminService(db)

	views, total, err := svc.GetSubmissions(utils.PaginationParams{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, views, 2)
	assert.Equal(t, "alice", views[0].SubmittedBy)
}

func TestGetUserStats(t *testing.T) {
	db := setupTestDB(t)
	alice := createTestUser(t, db, "alice", models.UserRoleUser)
	createTestUser(t, db, "admin", models.UserRoleAdmin)
	first := submitTestForm(t, db, alice.ID, "TC001")
	submitTestForm(t, db, alice.ID, "TC002")
	svc := NewAdminService(db)

	require.NoError(t, svc.UpdateSubmission(&UpdateSubmissionRequest{
		SubmissionID: first,
		Status:       models.FormStatusApproved,
	}))

	stats, err := svc.GetUserStats()
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.TotalUsers)
	assert.EqualValues(t, 2, stats.TotalSubmissions)
	assert.EqualValues(t, 1, stats.PendingSubmissions)
}

func TestGetSubmissionDetail(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "alice", models.UserRoleUser)
	svc := NewComplianceService(db)

	files := []UploadedFile{
		{FieldName: "shareholdingCertificate", OriginalName: "cert.pdf", StoredPath: "/uploads/cert.pdf", Size: 42, MimeType: "application/pdf"},
	}
	formID, err := svc.SubmitForm(user.ID, minimalSubmission("TC001"), files)
	require.NoError(t, err)

	admin := NewAdminService(db)
	detail, err := admin.GetSubmissionDetail(formID)
	require.NoError(t, err)
	assert.Equal(t, formID, detail.Submission.ID)
	require.Len(t, detail.Files, 1)
	assert.Equal(t, models.FileTypeShareholdingCertificate, detail.Files[0].FileType)

	_, err = admin.GetSubmissionDetail(uuid.New())
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestDeleteSubmissionCascades(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "alice", models.UserRoleUser)
	svc := NewComplianceService(db)

	doomed := minimalSubmission("TC001")
	doomed.Exports = []TradeLineInput{{Goods: "A", Units: 1, Price: 1, Total: 1}}
	doomedID, err := svc.SubmitForm(user.ID, doomed, nil)
	require.NoError(t, err)

	survivorID := submitTestForm(t, db, user.ID, "TC002")

	admin := NewAdminService(db)
	require.NoError(t, admin.DeleteSubmission(doomedID))

	var count int64
	require.NoError(t, db.Model(&models.ComplianceForm{}).Where("id = ?", doomedID).Count(&count).Error)
	assert.EqualValues(t, 0, count)
	require.NoError(t, db.Model(&models.ExportLine{}).Where("form_id = ?", doomedID).Count(&count).Error)
	assert.EqualValues(t, 0, count)
	require.NoError(t, db.Model(&models.Investor{}).Where("form_id = ?", doomedID).Count(&count).Error)
	assert.EqualValues(t, 0, count)

	// The other form's children are untouched.
	require.NoError(t, db.Model(&models.Utility{}).Where("form_id = ?", survivorID).Count(&count).Error)
	assert.EqualValues(t, 4, count)

	err = admin.DeleteSubmission(uuid.New())
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}
