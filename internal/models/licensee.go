// internal/models/licensee.go
package models

type Licensee struct {
	BaseModel
	Name              string `json:"name" gorm:"size:255;not null"`
	LicenseNo         string `json:"license_no" gorm:"uniqueIndex;size:255;not null"`
	DateLicensed      string `json:"date_licensed" gorm:"size:50"`
	OtherLicenses     string `json:"other_licenses" gorm:"type:text"`
	DomiciledZone     string `json:"domiciled_zone" gorm:"size:255"`
	Zone              string `json:"zone" gorm:"size:255"`
	StreetRoad        string `json:"street_road" gorm:"size:255"`
	BuildingName      string `json:"building_name" gorm:"size:255"`
	PostalAddress     string `json:"postal_address" gorm:"size:255"`
	PostalCode        string `json:"postal_code" gorm:"size:255"`
	TelNo             string `json:"tel_no" gorm:"size:255"`
	MobileNo          string `json:"mobile_no" gorm:"size:255"`
	Email             string `json:"email" gorm:"size:255"`
	WebAddress        string `json:"web_address" gorm:"size:255"`
	CEONameTitle      string `json:"ceo_name_title" gorm:"column:ceo_name_title;size:255"`
	ContactPersonName string `json:"contact_person_name" gorm:"size:255"`
	ContactMobile     string `json:"contact_mobile" gorm:"size:255"`
	ContactEmail      string `json:"contact_email" gorm:"size:255"`

	Forms []ComplianceForm `json:"forms,omitempty" gorm:"foreignKey:LicenseeID"`
}
