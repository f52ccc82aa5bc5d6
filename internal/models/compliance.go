// internal/models/compliance.go
package models

import (
	"github.com/google/uuid"
)

// ComplianceForm is one reporting-period submission by one user for one
// licensee. All child collections are created with it in a single
// transaction and are removed by cascade when the form is deleted.
type ComplianceForm struct {
	BaseModel
	LicenseeID uuid.UUID `json:"licensee_id" gorm:"type:uuid;not null;index"`
	UserID     uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`

	FinancialQuarter     string `json:"financial_quarter" gorm:"size:50"`
	ReportingPeriodStart string `json:"reporting_period_start" gorm:"size:50"`
	ReportingPeriodEnd   string `json:"reporting_period_end" gorm:"size:50"`
	FiscalYearStart      string `json:"fiscal_year_start" gorm:"size:50"`
	FiscalYearEnd        string `json:"fiscal_year_end" gorm:"size:50"`

	CapexPreceding  float64 `json:"capex_preceding" gorm:"default:0"`
	CapexCurrent    float64 `json:"capex_current" gorm:"default:0"`
	CapexCumulative float64 `json:"capex_cumulative" gorm:"default:0"`
	OpexPreceding   float64 `json:"opex_preceding" gorm:"default:0"`
	OpexCurrent     float64 `json:"opex_current" gorm:"default:0"`
	OpexCumulative  float64 `json:"opex_cumulative" gorm:"default:0"`

	TotalLocalCumulative int `json:"total_local_cumulative" gorm:"default:0"`
	TotalExpatCumulative int `json:"total_expat_cumulative" gorm:"default:0"`
	TotalLocalNew        int `json:"total_local_new" gorm:"default:0"`
	TotalExpatNew        int `json:"total_expat_new" gorm:"default:0"`
	TotalLocalTotal      int `json:"total_local_total" gorm:"default:0"`
	TotalExpatTotal      int `json:"total_expat_total" gorm:"default:0"`

	ExportsSubtotal        float64 `json:"exports_subtotal" gorm:"default:0"`
	DomesticSalesSubtotal  float64 `json:"domestic_sales_subtotal" gorm:"default:0"`
	QuarterlyTurnover      float64 `json:"quarterly_turnover" gorm:"default:0"`
	ImportsSubtotal        float64 `json:"imports_subtotal" gorm:"default:0"`
	LocalPurchasesSubtotal float64 `json:"local_purchases_subtotal" gorm:"default:0"`
	TotalInputs            float64 `json:"total_inputs" gorm:"default:0"`

	ESGInitiatives      string `json:"esg_initiatives" gorm:"column:esg_initiatives;type:text"`
	WasteManagement     string `json:"waste_management" gorm:"type:text"`
	CommentsSuggestions string `json:"comments_suggestions" gorm:"type:text"`

	SubmissionName  string `json:"submission_name" gorm:"size:255"`
	SubmissionTitle string `json:"submission_title" gorm:"size:255"`
	SubmissionDate  string `json:"submission_date" gorm:"size:50"`

	// Review metadata, mutated by the admin status workflow only.
	Status       FormStatus `json:"status" gorm:"type:varchar(50);default:'pending'"`
	CheckedBy    string     `json:"checked_by" gorm:"size:255"`
	VerifiedBy   string     `json:"verified_by" gorm:"size:255"`
	ReviewDate   string     `json:"review_date" gorm:"size:50"`
	AdminComment string     `json:"admin_comment" gorm:"type:text"`

	// Relationships
	Licensee *Licensee `json:"licensee,omitempty" gorm:"foreignKey:LicenseeID;constraint:OnDelete:CASCADE"`
	User     *User     `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`

	GoodsServices      []GoodsService                `json:"goods_services,omitempty" gorm:"foreignKey:FormID;constraint:OnDelete:CASCADE"`
	EmploymentDetails  []EmploymentDetail            `json:"employment_details,omitempty" gorm:"foreignKey:FormID;constraint:OnDelete:CASCADE"`
	Exports            []ExportLine                  `json:"exports,omitempty" gorm:"foreignKey:FormID;constraint:OnDelete:CASCADE"`
	DomesticSales      []DomesticSale                `json:"domestic_sales,omitempty" gorm:"foreignKey:FormID;constraint:OnDelete:CASCADE"`
	Imports            []ImportLine                  `json:"imports,omitempty" gorm:"foreignKey:FormID;constraint:OnDelete:CASCADE"`
	LocalPurchases     []LocalPurchase               `json:"local_purchases,omitempty" gorm:"foreignKey:FormID;constraint:OnDelete:CASCADE"`
	ComplianceItems    []ComplianceChecklistItem     `json:"compliance_checklist,omitempty" gorm:"foreignKey:FormID;constraint:OnDelete:CASCADE"`
	InfrastructureItems []InfrastructureChecklistItem `json:"infrastructure_checklist,omitempty" gorm:"foreignKey:FormID;constraint:OnDelete:CASCADE"`
	Investors          []Investor                    `json:"investors,omitempty" gorm:"foreignKey:FormID;constraint:OnDelete:CASCADE"`
	Utilities          []Utility                     `json:"utilities,omitempty" gorm:"foreignKey:FormID;constraint:OnDelete:CASCADE"`
	Uploads            []Upload                      `json:"uploads,omitempty" gorm:"foreignKey:FormID;constraint:OnDelete:CASCADE"`
}

func (ComplianceForm) TableName() string {
	return "compliance_forms"
}

type GoodsService struct {
	BaseModel
	FormID                uuid.UUID `json:"form_id" gorm:"type:uuid;not null;index"`
	GoodsServicesProvided string    `json:"goods_services_provided" gorm:"size:255"`
	Description           string    `json:"description" gorm:"type:text"`
	UnitMeasure           string    `json:"unit_measure" gorm:"size:100"`
}

func (GoodsService) TableName() string {
	return "goods_services"
}

type EmploymentDetail struct {
	BaseModel
	FormID          uuid.UUID          `json:"form_id" gorm:"type:uuid;not null;index"`
	Category        EmploymentCategory `json:"category" gorm:"type:varchar(50)"`
	Type            EmploymentType     `json:"type" gorm:"type:varchar(50)"`
	LocalCumulative int                `json:"local_cumulative" gorm:"default:0"`
	ExpatCumulative int                `json:"expat_cumulative" gorm:"default:0"`
	LocalNew        int                `json:"local_new" gorm:"default:0"`
	ExpatNew        int                `json:"expat_new" gorm:"default:0"`
	LocalTotal      int                `json:"local_total" gorm:"default:0"`
	ExpatTotal      int                `json:"expat_total" gorm:"default:0"`
}

func (EmploymentDetail) TableName() string {
	return "employment_details"
}

// TradeLine is the shared row shape of the four trade tables. It is not a
// table of its own.
type TradeLine struct {
	BaseModel
	FormID        uuid.UUID `json:"form_id" gorm:"type:uuid;not null;index"`
	GoodsServices string    `json:"goods_services" gorm:"size:255"`
	Units         float64   `json:"units"`
	Price         float64   `json:"price"`
	Total         float64   `json:"total"`
}

type ExportLine struct {
	TradeLine
}

func (ExportLine) TableName() string {
	return "exports"
}

type DomesticSale struct {
	TradeLine
}

func (DomesticSale) TableName() string {
	return "domestic_sales"
}

type ImportLine struct {
	TradeLine
}

func (ImportLine) TableName() string {
	return "imports"
}

type LocalPurchase struct {
	TradeLine
}

func (LocalPurchase) TableName() string {
	return "local_purchases"
}

type ComplianceChecklistItem struct {
	BaseModel
	FormID      uuid.UUID `json:"form_id" gorm:"type:uuid;not null;index"`
	ItemName    string    `json:"item_name" gorm:"size:255"`
	IsCompliant bool      `json:"is_compliant"`
	Comments    string    `json:"comments" gorm:"type:text"`
}

func (ComplianceChecklistItem) TableName() string {
	return "compliance_checklist"
}

type InfrastructureChecklistItem struct {
	BaseModel
	FormID               uuid.UUID `json:"form_id" gorm:"type:uuid;not null;index"`
	ItemName             string    `json:"item_name" gorm:"size:255"`
	Status               string    `json:"status" gorm:"size:100"`
	CompletionPercentage float64   `json:"completion_percentage"`
}

func (InfrastructureChecklistItem) TableName() string {
	return "infrastructure_checklist"
}

type Investor struct {
	BaseModel
	FormID              uuid.UUID        `json:"form_id" gorm:"type:uuid;not null;index"`
	Category            InvestorCategory `json:"category" gorm:"type:varchar(100)"`
	CumulativePreceding int              `json:"cumulative_preceding" gorm:"default:0"`
	OnboardedCurrent    int              `json:"onboarded_current" gorm:"default:0"`
	TotalCurrent        int              `json:"total_current" gorm:"default:0"`
}

func (Investor) TableName() string {
	return "investors"
}

type Utility struct {
	BaseModel
	FormID        uuid.UUID   `json:"form_id" gorm:"type:uuid;not null;index"`
	UtilityType   UtilityType `json:"utility_type" gorm:"type:varchar(100)"`
	UtilityName   string      `json:"utility_name" gorm:"size:255"`
	UnitsConsumed float64     `json:"units_consumed" gorm:"default:0"`
	CostPerUnit   float64     `json:"cost_per_unit" gorm:"default:0"`
	TotalCost     float64     `json:"total_cost" gorm:"default:0"`
}

func (Utility) TableName() string {
	return "utilities"
}

type Upload struct {
	BaseModel
	FormID     uuid.UUID  `json:"form_id" gorm:"type:uuid;not null;index"`
	FileType   FileType   `json:"file_type" gorm:"type:varchar(100)"`
	FileName   string     `json:"file_name" gorm:"size:255"`
	FilePath   string     `json:"file_path" gorm:"size:500"`
	FileSize   int64      `json:"file_size"`
	MimeType   string     `json:"mime_type" gorm:"size:100"`
	UploadedBy *uuid.UUID `json:"uploaded_by" gorm:"type:uuid"`

	Uploader *User `json:"-" gorm:"foreignKey:UploadedBy;constraint:OnDelete:SET NULL"`
}

func (Upload) TableName() string {
	return "uploads"
}
