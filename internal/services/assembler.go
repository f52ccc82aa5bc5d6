// internal/services/assembler.go
package services

import (
	"github.com/google/uuid"

	"github.com/regzone/compliance-backend/internal/models"
)

// SubmitComplianceRequest is the nested submission payload. Field names
// mirror the reporting form the clients already send; numeric fields
// default to zero when absent.
type SubmitComplianceRequest struct {
	// Licensee section
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

	// Reporting period
	FinancialQuarter    string `json:"financialQuarter"`
	FiscalYearStartDate string `json:"fiscalYearStartDate"`
	FiscalYearEndDate   string `json:"fiscalYearEndDate"`

	Investment *InvestmentSection `json:"investment"`
	Employment *EmploymentSection `json:"employment"`

	ExportsSubtotal        float64 `json:"exportsSubtotal"`
	DomesticSalesSubtotal  float64 `json:"domesticSalesSubtotal"`
	QuarterlyTurnover      float64 `json:"quarterlyTurnover"`
	ImportsSubtotal        float64 `json:"importsSubtotal"`
	LocalPurchasesSubtotal float64 `json:"localPurchasesSubtotal"`
	TotalInputs            float64 `json:"totalInputs"`

	GoodsServices  []GoodsServiceInput `json:"goodsServices"`
	Exports        []TradeLineInput    `json:"exports"`
	DomesticSales  []TradeLineInput    `json:"domesticSales"`
	Imports        []TradeLineInput    `json:"imports"`
	LocalPurchases []TradeLineInput    `json:"localPurchases"`

	Compliance []ComplianceItemInput `json:"compliance"`
	Infra      []InfraItemInput      `json:"infra"`

	Shareholding *ShareholdingSection `json:"shareholding"`
	Utilities    *UtilitiesSection    `json:"utilities"`

	ESGInitiatives      string `json:"esgInitiatives"`
	WasteManagement     string `json:"wasteManagement"`
	CommentsSuggestions string `json:"commentsSuggestions"`

	SubmissionName  string `json:"submissionName"`
	SubmissionTitle string `json:"submissionTitle"`
	SubmissionDate  string `json:"submissionDate"`
}

type InvestmentSection struct {
	Capex *MoneyFigures `json:"capex"`
	Opex  *MoneyFigures `json:"opex"`
}

type MoneyFigures struct {
	Preceding  float64 `json:"preceding"`
	Current    float64 `json:"current"`
	Cumulative float64 `json:"cumulative"`
}

type EmploymentSection struct {
	Total        *EmploymentFigures `json:"total"`
	Technical    *EmploymentGroup   `json:"technical"`
	NonTechnical *EmploymentGroup   `json:"non_technical"`
}

type EmploymentGroup struct {
	Permanent *EmploymentFigures `json:"permanent"`
	Term      *EmploymentFigures `json:"term"`
	Casual    *EmploymentFigures `json:"casual"`
}

type EmploymentFigures struct {
	LocalCumulative int `json:"local_cumulative"`
	ExpatCumulative int `json:"expat_cumulative"`
	LocalNew        int `json:"local_new"`
	ExpatNew        int `json:"expat_new"`
	LocalTotal      int `json:"local_total"`
	ExpatTotal      int `json:"expat_total"`
}

type GoodsServiceInput struct {
	Provided    string `json:"provided"`
	Description string `json:"description"`
	UnitMeasure string `json:"unitMeasure"`
}

type TradeLineInput struct {
	Goods string  `json:"goods"`
	Units float64 `json:"units"`
	Price float64 `json:"price"`
	Total float64 `json:"total"`
}

type ComplianceItemInput struct {
	Item      string `json:"item"`
	Compliant bool   `json:"compliant"`
	Comments  string `json:"comments"`
}

type InfraItemInput struct {
	Item       string  `json:"item"`
	Status     string  `json:"status"`
	Percentage float64 `json:"percentage"`
}

type ShareholdingSection struct {
	Enterprises *InvestorFigures `json:"enterprises"`
	Others      *InvestorFigures `json:"others"`
}

type InvestorFigures struct {
	CumulativePreceding int `json:"cumulative_preceding"`
	OnboardedCurrent    int `json:"onboarded_current"`
	TotalCurrent        int `json:"total_current"`
}

type UtilitiesSection struct {
	Electricity     *UtilityFigures `json:"electricity"`
	ElectricityName string          `json:"electricity_name"`
	Water           *UtilityFigures `json:"water"`
	WaterName       string          `json:"water_name"`
	Telecom         *UtilityFigures `json:"telecom"`
	TelecomName     string          `json:"telecom_name"`
	OthersSpecify   *UtilityFigures `json:"others_specify"`
	OthersName      string          `json:"others_specify_name"`
}

type UtilityFigures struct {
	Units float64 `json:"units"`
	Cost  float64 `json:"cost"`
	Total float64 `json:"total"`
}

// UploadedFile is the metadata handed over by the upload collaborator
// after the file bytes are already persisted to storage.
type UploadedFile struct {
	FieldName    string `json:"field_name"`
	OriginalName string `json:"original_name"`
	StoredPath   string `json:"stored_path"`
	Size         int64  `json:"size"`
	MimeType     string `json:"mime_type"`
}

// FormRows is the decomposed submission: one row group per table. FormID
// on every child row is filled in by the transactional writer once the
// parent row exists.
type FormRows struct {
	Licensee models.Licensee
	Form     models.ComplianceForm

	GoodsServices       []models.GoodsService
	EmploymentDetails   []models.EmploymentDetail
	Exports             []models.ExportLine
	DomesticSales       []models.DomesticSale
	Imports             []models.ImportLine
	LocalPurchases      []models.LocalPurchase
	ComplianceItems     []models.ComplianceChecklistItem
	InfrastructureItems []models.InfrastructureChecklistItem
	Investors           []models.Investor
	Utilities           []models.Utility
	Uploads             []models.Upload
}

// AssembleForm decomposes the nested payload into per-table row groups.
// It is a total transform: every input produces a valid row set, with
// absent sections falling back to defaults. It never fails.
func AssembleForm(req *SubmitComplianceRequest, files []UploadedFile, userID uuid.UUID) *FormRows {
	rows := &FormRows{
		Licensee: assembleLicensee(req),
		Form:     assembleParentForm(req),
	}

	for _, item := range req.GoodsServices {
		rows.GoodsServices = append(rows.GoodsServices, models.GoodsService{
			GoodsServicesProvided: item.Provided,
			Description:           item.Description,
			UnitMeasure:           item.UnitMeasure,
		})
	}

	rows.EmploymentDetails = assembleEmployment(req.Employment)

	for _, item := range req.Exports {
		rows.Exports = append(rows.Exports, models.ExportLine{TradeLine: tradeLine(item)})
	}
	for _, item := range req.DomesticSales {
		rows.DomesticSales = append(rows.DomesticSales, models.DomesticSale{TradeLine: tradeLine(item)})
	}
	for _, item := range req.Imports {
		rows.Imports = append(rows.Imports, models.ImportLine{TradeLine: tradeLine(item)})
	}
	for _, item := range req.LocalPurchases {
		rows.LocalPurchases = append(rows.LocalPurchases, models.LocalPurchase{TradeLine: tradeLine(item)})
	}

	for _, item := range req.Compliance {
		rows.ComplianceItems = append(rows.ComplianceItems, models.ComplianceChecklistItem{
			ItemName:    item.Item,
			IsCompliant: item.Compliant,
			Comments:    item.Comments,
		})
	}
	for _, item := range req.Infra {
		rows.InfrastructureItems = append(rows.InfrastructureItems, models.InfrastructureChecklistItem{
			ItemName:             item.Item,
			Status:               item.Status,
			CompletionPercentage: item.Percentage,
		})
	}

	rows.Investors = assembleInvestors(req.Shareholding)
	rows.Utilities = assembleUtilities(req.Utilities)
	rows.Uploads = assembleUploads(files, userID)

	return rows
}

func assembleLicensee(req *SubmitComplianceRequest) models.Licensee {
	return models.Licensee{
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
}

func assembleParentForm(req *SubmitComplianceRequest) models.ComplianceForm {
	form := models.ComplianceForm{
		FinancialQuarter:     req.FinancialQuarter,
		ReportingPeriodStart: req.FiscalYearStartDate,
		ReportingPeriodEnd:   req.FiscalYearEndDate,
		FiscalYearStart:      req.FiscalYearStartDate,
		FiscalYearEnd:        req.FiscalYearEndDate,

		ExportsSubtotal:        req.ExportsSubtotal,
		DomesticSalesSubtotal:  req.DomesticSalesSubtotal,
		QuarterlyTurnover:      req.QuarterlyTurnover,
		ImportsSubtotal:        req.ImportsSubtotal,
		LocalPurchasesSubtotal: req.LocalPurchasesSubtotal,
		TotalInputs:            req.TotalInputs,

		ESGInitiatives:      req.ESGInitiatives,
		WasteManagement:     req.WasteManagement,
		CommentsSuggestions: req.CommentsSuggestions,

		SubmissionName:  req.SubmissionName,
		SubmissionTitle: req.SubmissionTitle,
		SubmissionDate:  req.SubmissionDate,

		Status: models.FormStatusPending,
	}

	if req.Investment != nil {
		if capex := req.Investment.Capex; capex != nil {
			form.CapexPreceding = capex.Preceding
			form.CapexCurrent = capex.Current
			form.CapexCumulative = capex.Cumulative
		}
		if opex := req.Investment.Opex; opex != nil {
			form.OpexPreceding = opex.Preceding
			form.OpexCurrent = opex.Current
			form.OpexCumulative = opex.Cumulative
		}
	}

	if req.Employment != nil && req.Employment.Total != nil {
		total := req.Employment.Total
		form.TotalLocalCumulative = total.LocalCumulative
		form.TotalExpatCumulative = total.ExpatCumulative
		form.TotalLocalNew = total.LocalNew
		form.TotalExpatNew = total.ExpatNew
		form.TotalLocalTotal = total.LocalTotal
		form.TotalExpatTotal = total.ExpatTotal
	}

	return form
}

// assembleEmployment walks the fixed category x type cross-product.
// Only combinations present in the input produce a row; an absent
// combination produces no row, not a zero-valued one.
func assembleEmployment(section *EmploymentSection) []models.EmploymentDetail {
	if section == nil {
		return nil
	}

	var details []models.EmploymentDetail
	for _, category := range models.EmploymentCategories {
		group := section.group(category)
		if group == nil {
			continue
		}
		for _, empType := range models.EmploymentTypes {
			figures := group.figures(empType)
			if figures == nil {
				continue
			}
			details = append(details, models.EmploymentDetail{
				Category:        category,
				Type:            empType,
				LocalCumulative: figures.LocalCumulative,
				ExpatCumulative: figures.ExpatCumulative,
				LocalNew:        figures.LocalNew,
				ExpatNew:        figures.ExpatNew,
				LocalTotal:      figures.LocalTotal,
				ExpatTotal:      figures.ExpatTotal,
			})
		}
	}
	return details
}

func (s *EmploymentSection) group(category models.EmploymentCategory) *EmploymentGroup {
	switch category {
	case models.EmploymentCategoryTechnical:
		return s.Technical
	case models.EmploymentCategoryNonTechnical:
		return s.NonTechnical
	}
	return nil
}

func (g *EmploymentGroup) figures(empType models.EmploymentType) *EmploymentFigures {
	switch empType {
	case models.EmploymentTypePermanent:
		return g.Permanent
	case models.EmploymentTypeTerm:
		return g.Term
	case models.EmploymentTypeCasual:
		return g.Casual
	}
	return nil
}

func tradeLine(item TradeLineInput) models.TradeLine {
	return models.TradeLine{
		GoodsServices: item.Goods,
		Units:         item.Units,
		Price:         item.Price,
		Total:         item.Total,
	}
}

// assembleInvestors always yields exactly two rows, one per fixed
// category, zero-filled when the category object is absent.
func assembleInvestors(section *ShareholdingSection) []models.Investor {
	var enterprises, others *InvestorFigures
	if section != nil {
		enterprises = section.Enterprises
		others = section.Others
	}

	return []models.Investor{
		investorRow(models.InvestorCategoryEnterprises, enterprises),
		investorRow(models.InvestorCategoryOthers, others),
	}
}

func investorRow(category models.InvestorCategory, figures *InvestorFigures) models.Investor {
	row := models.Investor{Category: category}
	if figures != nil {
		row.CumulativePreceding = figures.CumulativePreceding
		row.OnboardedCurrent = figures.OnboardedCurrent
		row.TotalCurrent = figures.TotalCurrent
	}
	return row
}

// assembleUtilities always yields exactly four rows, one per fixed
// utility type. The "other" row's display name can be overridden via
// the others_specify fields.
func assembleUtilities(section *UtilitiesSection) []models.Utility {
	type entry struct {
		utilityType models.UtilityType
		figures     *UtilityFigures
		name        string
	}

	var entries []entry
	if section == nil {
		entries = []entry{
			{models.UtilityTypeElectricity, nil, ""},
			{models.UtilityTypeWater, nil, ""},
			{models.UtilityTypeTelecom, nil, ""},
			{models.UtilityTypeOther, nil, ""},
		}
	} else {
		entries = []entry{
			{models.UtilityTypeElectricity, section.Electricity, section.ElectricityName},
			{models.UtilityTypeWater, section.Water, section.WaterName},
			{models.UtilityTypeTelecom, section.Telecom, section.TelecomName},
			{models.UtilityTypeOther, section.OthersSpecify, section.OthersName},
		}
	}

	utilities := make([]models.Utility, 0, len(entries))
	for _, e := range entries {
		row := models.Utility{
			UtilityType: e.utilityType,
			UtilityName: string(e.utilityType),
		}
		if e.name != "" {
			row.UtilityName = e.name
		}
		if e.figures != nil {
			row.UnitsConsumed = e.figures.Units
			row.CostPerUnit = e.figures.Cost
			row.TotalCost = e.figures.Total
		}
		utilities = append(utilities, row)
	}
	return utilities
}

// fileTypeByField classifies an upload by the form field it arrived on.
// The mapping is total: unknown fields are tagged "other".
var fileTypeByField = map[string]models.FileType{
	"shareholdingCertificate": models.FileTypeShareholdingCertificate,
	"auditedAccounts":         models.FileTypeAuditedAccounts,
	"signatureFile":           models.FileTypeSignature,
	"companyStampFile":        models.FileTypeCompanyStamp,
}

func ClassifyUpload(fieldName string) models.FileType {
	if fileType, ok := fileTypeByField[fieldName]; ok {
		return fileType
	}
	return models.FileTypeOther
}

func assembleUploads(files []UploadedFile, userID uuid.UUID) []models.Upload {
	var uploads []models.Upload
	for _, file := range files {
		uploaderID := userID
		uploads = append(uploads, models.Upload{
			FileType:   ClassifyUpload(file.FieldName),
			FileName:   file.OriginalName,
			FilePath:   file.StoredPath,
			FileSize:   file.Size,
			MimeType:   file.MimeType,
			UploadedBy: &uploaderID,
		})
	}
	return uploads
}
