// internal/services/compliance_service.go
package services

import (
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/regzone/compliance-backend/internal/apperrors"
	"github.com/regzone/compliance-backend/internal/database"
	"github.com/regzone/compliance-backend/internal/models"
	"github.com/regzone/compliance-backend/internal/utils"
)

type ComplianceService struct {
	db *gorm.DB
}

func NewComplianceService(db *gorm.DB) *ComplianceService {
	return &ComplianceService{db: db}
}

// licenseeUpdateColumns are the non-key licensee columns overwritten on
// resubmission. Last write wins; there is no merge.
var licenseeUpdateColumns = []string{
	"name", "date_licensed", "other_licenses", "domiciled_zone", "zone",
	"street_road", "building_name", "postal_address", "postal_code",
	"tel_no", "mobile_no", "email", "web_address", "ceo_name_title",
	"contact_person_name", "contact_mobile", "contact_email", "updated_at",
}

// SubmitForm persists one compliance form and every child row group as a
// single atomic unit and returns the new form's id. Any failure rolls
// the whole submission back; readers never observe a partial form.
func (s *ComplianceService) SubmitForm(userID uuid.UUID, req *SubmitComplianceRequest, files []UploadedFile) (uuid.UUID, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return uuid.Nil, apperrors.Validation("licensee name and license number are required")
	}

	rows := AssembleForm(req, files, userID)

	var formID uuid.UUID
	err := database.WithTransaction(s.db, func(tx *gorm.DB) error {
		// Upsert the licensee by its unique license number, then
		// re-read so the resolved id is correct on both backends (on
		// conflict the existing row keeps its original id).
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "license_no"}},
			DoUpdates: clause.AssignmentColumns(licenseeUpdateColumns),
		}).Create(&rows.Licensee).Error; err != nil {
			return err
		}

		var licensee models.Licensee
		if err := tx.Where("license_no = ?", rows.Licensee.LicenseNo).First(&licensee).Error; err != nil {
			return err
		}

		rows.Form.LicenseeID = licensee.ID
		rows.Form.UserID = userID
		if err := tx.Create(&rows.Form).Error; err != nil {
			return err
		}
		formID = rows.Form.ID

		return s.insertChildRows(tx, formID, rows)
	})
	if err != nil {
		logrus.WithError(err).WithField("license_no", req.LicenseNo).Error("Form submission rolled back")
		return uuid.Nil, apperrors.Persistence("failed to submit compliance form", err)
	}

	return formID, nil
}

func (s *ComplianceService) insertChildRows(tx *gorm.DB, formID uuid.UUID, rows *FormRows) error {
	for i := range rows.GoodsServices {
		rows.GoodsServices[i].FormID = formID
	}
	if len(rows.GoodsServices) > 0 {
		if err := tx.Create(&rows.GoodsServices).Error; err != nil {
			return err
		}
	}

	for i := range rows.EmploymentDetails {
		rows.EmploymentDetails[i].FormID = formID
	}
	if len(rows.EmploymentDetails) > 0 {
		if err := tx.Create(&rows.EmploymentDetails).Error; err != nil {
			return err
		}
	}

	for i := range rows.Exports {
		rows.Exports[i].FormID = formID
	}
	if len(rows.Exports) > 0 {
		if err := tx.Create(&rows.Exports).Error; err != nil {
			return err
		}
	}

	for i := range rows.DomesticSales {
		rows.DomesticSales[i].FormID = formID
	}
	if len(rows.DomesticSales) > 0 {
		if err := tx.Create(&rows.DomesticSales).Error; err != nil {
			return err
		}
	}

	for i := range rows.Imports {
		rows.Imports[i].FormID = formID
	}
	if len(rows.Imports) > 0 {
		if err := tx.Create(&rows.Imports).Error; err != nil {
			return err
		}
	}

	for i := range rows.LocalPurchases {
		rows.LocalPurchases[i].FormID = formID
	}
	if len(rows.LocalPurchases) > 0 {
		if err := tx.Create(&rows.LocalPurchases).Error; err != nil {
			return err
		}
	}

	for i := range rows.ComplianceItems {
		rows.ComplianceItems[i].FormID = formID
	}
	if len(rows.ComplianceItems) > 0 {
		if err := tx.Create(&rows.ComplianceItems).Error; err != nil {
			return err
		}
	}

	for i := range rows.InfrastructureItems {
		rows.InfrastructureItems[i].FormID = formID
	}
	if len(rows.InfrastructureItems) > 0 {
		if err := tx.Create(&rows.InfrastructureItems).Error; err != nil {
			return err
		}
	}

	// Investors and utilities are fixed-cardinality groups and are
	// always present: two investors, four utilities.
	for i := range rows.Investors {
		rows.Investors[i].FormID = formID
	}
	if err := tx.Create(&rows.Investors).Error; err != nil {
		return err
	}

	for i := range rows.Utilities {
		rows.Utilities[i].FormID = formID
	}
	if err := tx.Create(&rows.Utilities).Error; err != nil {
		return err
	}

	for i := range rows.Uploads {
		rows.Uploads[i].FormID = formID
	}
	if len(rows.Uploads) > 0 {
		if err := tx.Create(&rows.Uploads).Error; err != nil {
			return err
		}
	}

	return nil
}

// SubmissionView is the list-view shape: the form joined with the
// submitter's username and the paths of its uploads.
type SubmissionView struct {
	models.ComplianceForm
	SubmittedBy string `json:"submitted_by"`
	Files       string `json:"files"`
}

// GetUserSubmissions returns the requesting user's own forms, newest
// first.
func (s *ComplianceService) GetUserSubmissions(userID uuid.UUID) ([]SubmissionView, error) {
	var forms []models.ComplianceForm
	if err := s.db.Preload("Uploads").Preload("User").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&forms).Error; err != nil {
		return nil, apperrors.Persistence("failed to fetch submissions", err)
	}

	return buildSubmissionViews(forms), nil
}

func buildSubmissionViews(forms []models.ComplianceForm) []SubmissionView {
	views := make([]SubmissionView, 0, len(forms))
	for _, form := range forms {
		view := SubmissionView{ComplianceForm: form}
		if form.User != nil {
			view.SubmittedBy = form.User.Username
		}
		paths := make([]string, 0, len(form.Uploads))
		for _, upload := range form.Uploads {
			paths = append(paths, upload.FilePath)
		}
		view.Files = strings.Join(paths, ",")
		view.Uploads = nil
		view.User = nil
		views = append(views, view)
	}
	return views
}

// SubmissionStatus is the status/review subset of a form.
type SubmissionStatus struct {
	Status     models.FormStatus `json:"status"`
	CheckedBy  string            `json:"checked_by"`
	VerifiedBy string            `json:"verified_by"`
	ReviewDate string            `json:"review_date"`
}

func (s *ComplianceService) GetSubmissionStatus(formID uuid.UUID) (*SubmissionStatus, error) {
	var form models.ComplianceForm
	if err := s.db.Select("status", "checked_by", "verified_by", "review_date").
		First(&form, "id = ?", formID).Error; err != nil {
		return nil, apperrors.FromDB("submission not found", err)
	}

	return &SubmissionStatus{
		Status:     form.Status,
		CheckedBy:  form.CheckedBy,
		VerifiedBy: form.VerifiedBy,
		ReviewDate: form.ReviewDate,
	}, nil
}
