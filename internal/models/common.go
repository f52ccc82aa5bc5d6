// internal/models/common.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate assigns the primary key so the models work on both the
// Postgres and SQLite backends without a database-side default.
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// Enums
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

type FormStatus string

const (
	FormStatusPending  FormStatus = "pending"
	FormStatusApproved FormStatus = "approved"
	FormStatusRejected FormStatus = "rejected"
)

type EmploymentCategory string

const (
	EmploymentCategoryTechnical    EmploymentCategory = "technical"
	EmploymentCategoryNonTechnical EmploymentCategory = "non_technical"
)

type EmploymentType string

const (
	EmploymentTypePermanent EmploymentType = "permanent"
	EmploymentTypeTerm      EmploymentType = "term"
	EmploymentTypeCasual    EmploymentType = "casual"
)

// EmploymentCategories and EmploymentTypes define the fixed cross-product
// iterated when decomposing employment data into rows.
var (
	EmploymentCategories = []EmploymentCategory{EmploymentCategoryTechnical, EmploymentCategoryNonTechnical}
	EmploymentTypes      = []EmploymentType{EmploymentTypePermanent, EmploymentTypeTerm, EmploymentTypeCasual}
)

type InvestorCategory string

const (
	InvestorCategoryEnterprises InvestorCategory = "enterprises"
	InvestorCategoryOthers      InvestorCategory = "others"
)

type UtilityType string

const (
	UtilityTypeElectricity UtilityType = "electricity"
	UtilityTypeWater       UtilityType = "water"
	UtilityTypeTelecom     UtilityType = "telecom"
	UtilityTypeOther       UtilityType = "other"
)

type FileType string

const (
	FileTypeShareholdingCertificate FileType = "shareholding_certificate"
	FileTypeAuditedAccounts         FileType = "audited_accounts"
	FileTypeSignature               FileType = "signature"
	FileTypeCompanyStamp            FileType = "company_stamp"
	FileTypeOther                   FileType = "other"
)

type NotificationType string

const (
	NotificationTypeSubmissionUpdate NotificationType = "submission_update"
)
