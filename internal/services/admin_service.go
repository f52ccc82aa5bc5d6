// internal/services/admin_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/regzone/compliance-backend/internal/apperrors"
	"github.com/regzone/compliance-backend/internal/database"
	"github.com/regzone/compliance-backend/internal/models"
	"github.com/regzone/compliance-backend/internal/utils"
)

type AdminService struct {
	db *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{db: db}
}

type UpdateSubmissionRequest struct {
	SubmissionID uuid.UUID         `json:"submissionId" validate:"required"`
	Status       models.FormStatus `json:"status" validate:"required,oneof=pending approved rejected"`
	CheckedBy    string            `json:"checkedBy"`
	VerifiedBy   string            `json:"verifiedBy"`
	Date         string            `json:"date"`
	Comment      string            `json:"comment"`
}

// UpdateSubmission transitions a form's review status and notifies its
// owner, atomically. A status change always produces exactly one
// notification addressed to the submitting user. An unknown form id is
// reported as not-found rather than silently succeeding.
func (s *AdminService) UpdateSubmission(req *UpdateSubmissionRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return apperrors.Validation("submissionId and a valid status are required")
	}

	updates := map[string]interface{}{
		"status":        req.Status,
		"checked_by":    req.CheckedBy,
		"verified_by":   req.VerifiedBy,
		"review_date":   req.Date,
		"admin_comment": req.Comment,
	}
	return s.applyReview(req.SubmissionID, updates, func(uuid.UUID) string {
		return fmt.Sprintf("Your compliance submission has been %s", req.Status)
	})
}

type ApproveSubmissionRequest struct {
	SubmissionID uuid.UUID         `json:"submissionId" validate:"required"`
	Status       models.FormStatus `json:"status" validate:"required,oneof=pending approved rejected"`
	CheckedBy    string            `json:"checkedBy"`
	VerifiedBy   string            `json:"verifiedBy"`
	Date         string            `json:"date"`
}

// ApproveSubmission is the comment-less review path: it leaves any
// existing admin comment untouched and the notification names the form
// by id instead.
func (s *AdminService) ApproveSubmission(req *ApproveSubmissionRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return apperrors.Validation("submissionId and a valid status are required")
	}

	updates := map[string]interface{}{
		"status":      req.Status,
		"checked_by":  req.CheckedBy,
		"verified_by": req.VerifiedBy,
		"review_date": req.Date,
	}
	return s.applyReview(req.SubmissionID, updates, func(formID uuid.UUID) string {
		return fmt.Sprintf("Your submission (ID: %s) has been %s.", formID, req.Status)
	})
}

func (s *AdminService) applyReview(submissionID uuid.UUID, updates map[string]interface{}, message func(formID uuid.UUID) string) error {
	err := database.WithTransaction(s.db, func(tx *gorm.DB) error {
		var form models.ComplianceForm
		if err := tx.First(&form, "id = ?", submissionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("submission not found")
			}
			return err
		}

		if err := tx.Model(&form).Updates(updates).Error; err != nil {
			return err
		}

		// The owning user id is a non-null column, but guard anyway so
		// the status update stands even if no owner can be resolved.
		if form.UserID == uuid.Nil {
			logrus.WithField("form_id", form.ID).Warn("Submission has no owner; skipping notification")
			return nil
		}

		relatedID := form.ID
		notification := models.Notification{
			UserID:    form.UserID,
			Type:      models.NotificationTypeSubmissionUpdate,
			Message:   message(form.ID),
			RelatedID: &relatedID,
		}
		return tx.Create(&notification).Error
	})
	if err != nil {
		var appErr *apperrors.Error
		if errors.As(err, &appErr) {
			return appErr
		}
		return apperrors.Persistence("failed to update submission", err)
	}

	return nil
}

// GetSubmissions returns every form joined with submitter and upload
// paths, newest first, paginated.
func (s *AdminService) GetSubmissions(params utils.PaginationParams) ([]SubmissionView, int64, error) {
	query := s.db.Model(&models.ComplianceForm{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Persistence("failed to count submissions", err)
	}

	var forms []models.ComplianceForm
	if err := utils.ApplyPagination(query.Preload("Uploads").Preload("User").Order("created_at DESC"), params).
		Find(&forms).Error; err != nil {
		return nil, 0, apperrors.Persistence("failed to fetch submissions", err)
	}

	return buildSubmissionViews(forms), total, nil
}

type UserStats struct {
	TotalUsers         int64 `json:"totalUsers"`
	TotalSubmissions   int64 `json:"totalSubmissions"`
	PendingSubmissions int64 `json:"pendingSubmissions"`
}

func (s *AdminService) GetUserStats() (*UserStats, error) {
	var stats UserStats

	if err := s.db.Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, apperrors.Persistence("failed to count users", err)
	}
	if err := s.db.Model(&models.ComplianceForm{}).Count(&stats.TotalSubmissions).Error; err != nil {
		return nil, apperrors.Persistence("failed to count submissions", err)
	}
	if err := s.db.Model(&models.ComplianceForm{}).
		Where("status = ?", models.FormStatusPending).
		Count(&stats.PendingSubmissions).Error; err != nil {
		return nil, apperrors.Persistence("failed to count pending submissions", err)
	}

	return &stats, nil
}

type SubmissionDetail struct {
	Submission models.ComplianceForm `json:"submission"`
	Files      []models.Upload       `json:"files"`
}

// GetSubmissionDetail reconstructs one form and its uploaded files.
func (s *AdminService) GetSubmissionDetail(formID uuid.UUID) (*SubmissionDetail, error) {
	var form models.ComplianceForm
	if err := s.db.First(&form, "id = ?", formID).Error; err != nil {
		return nil, apperrors.FromDB("submission not found", err)
	}

	var files []models.Upload
	if err := s.db.Where("form_id = ?", formID).Find(&files).Error; err != nil {
		return nil, apperrors.Persistence("failed to fetch uploads", err)
	}

	return &SubmissionDetail{Submission: form, Files: files}, nil
}

// DeleteSubmission removes a form; every child row goes with it via the
// cascade foreign keys.
func (s *AdminService) DeleteSubmission(formID uuid.UUID) error {
	result := s.db.Delete(&models.ComplianceForm{}, "id = ?", formID)
	if result.Error != nil {
		return apperrors.Persistence("failed to delete submission", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("submission not found")
	}
	return nil
}
