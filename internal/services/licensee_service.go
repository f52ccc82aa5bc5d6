// internal/services/licensee_service.go
package services

import (
	"gorm.io/gorm"

	"github.com/regzone/compliance-backend/internal/apperrors"
	"github.com/regzone/compliance-backend/internal/models"
	"github.com/regzone/compliance-backend/internal/utils"
)

type LicenseeService struct {
	db *gorm.DB
}

func NewLicenseeService(db *gorm.DB) *LicenseeService {
	return &LicenseeService{db: db}
}

type RegisterLicenseeRequest struct {
	LicenseeName      string `json:"licenseeName" validate:"required"`
	LicenseNo         string `json:"licenseNo" validate:"required"`
	DateLicensed      string `json:"dateLicensed"`
	OtherLicenses     string `json:"otherLicenses"`
	DomiciledZone     string `json:"domiciledZone"`
	Zone              string `json:"zone"`
	StreetRoad        string `json:"streetRoad"`
	BuildingName      string `json:"buildingName"`
	PostalAddress     string `json:"postalAddress"`
	PostalCode        string `json:"postalCode"`
	TelNo             string `json:"telNo"`
	MobileNo          string `json:"mobileNo"`
	EmailAddress      string `json:"emailAddress"`
	WebAddress        string `json:"webAddress"`
	CEONameTitle      string `json:"ceoNameTitle"`
	ContactPersonName string `json:"contactPersonName"`
	ContactMobile     string `json:"contactMobile"`
	ContactEmail      string `json:"contactEmail"`
}

// RegisterLicensee is the standalone, non-upsert registration path: a
// duplicate license number is a conflict here, not a merge.
func (s *LicenseeService) RegisterLicensee(req *RegisterLicenseeRequest) (*models.Licensee, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.Validation("licensee name and license number are required")
	}

	licensee := &models.Licensee{
		Name:              req.LicenseeName,
		LicenseNo:         req.LicenseNo,
		DateLicensed:      req.DateLicensed,
		OtherLicenses:     req.OtherLicenses,
		DomiciledZone:     req.DomiciledZone,
		Zone:              req.Zone,
		StreetRoad:        req.StreetRoad,
		BuildingName:      req.BuildingName,
		PostalAddress:     req.PostalAddress,
		PostalCode:        req.PostalCode,
		TelNo:             req.TelNo,
		MobileNo:          req.MobileNo,
		Email:             req.EmailAddress,
		WebAddress:        req.WebAddress,
		CEONameTitle:      req.CEONameTitle,
		ContactPersonName: req.ContactPersonName,
		ContactMobile:     req.ContactMobile,
		ContactEmail:      req.ContactEmail,
	}

	if err := s.db.Create(licensee).Error; err != nil {
		return nil, apperrors.FromDB("license number already registered", err)
	}

	return licensee, nil
}
