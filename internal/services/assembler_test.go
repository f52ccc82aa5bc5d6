// internal/services/assembler_test.go
package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regzone/compliance-backend/internal/models"
)

func TestAssembleFormDefaults(t *testing.T) {
	rows := AssembleForm(minimalSubmission("TC001"), nil, uuid.New())

	assert.Equal(t, "Test Company Ltd", rows.Licensee.Name)
	assert.Equal(t, "TC001", rows.Licensee.LicenseNo)
	assert.Equal(t, models.FormStatusPending, rows.Form.Status)
	assert.Zero(t, rows.Form.CapexCurrent)
	assert.Zero(t, rows.Form.TotalLocalTotal)

	assert.Empty(t, rows.GoodsServices)
	assert.Empty(t, rows.EmploymentDetails)
	assert.Empty(t, rows.Exports)
	assert.Empty(t, rows.DomesticSales)
	assert.Empty(t, rows.Imports)
	assert.Empty(t, rows.LocalPurchases)
	assert.Empty(t, rows.Uploads)
}

func TestAssembleEmploymentCrossProduct(t *testing.T) {
	req := minimalSubmission("TC001")
	req.Employment = &EmploymentSection{
		Technical: &EmploymentGroup{
			Permanent: &EmploymentFigures{LocalCumulative: 10, ExpatNew: 2},
			Casual:    &EmploymentFigures{LocalNew: 3},
		},
		NonTechnical: &EmploymentGroup{
			Term: &EmploymentFigures{ExpatTotal: 7},
		},
	}

	rows := AssembleForm(req, nil, uuid.New())

	// Only present combinations yield rows; absent ones yield nothing.
	require.Len(t, rows.EmploymentDetails, 3)

	byKey := map[string]models.EmploymentDetail{}
	for _, d := range rows.EmploymentDetails {
		byKey[string(d.Category)+"/"+string(d.Type)] = d
	}

	perm, ok := byKey["technical/permanent"]
	require.True(t, ok)
	assert.Equal(t, 10, perm.LocalCumulative)
	assert.Equal(t, 2, perm.ExpatNew)

	_, ok = byKey["technical/term"]
	assert.False(t, ok)

	term, ok := byKey["non_technical/term"]
	require.True(t, ok)
	assert.Equal(t, 7, term.ExpatTotal)
}

func TestAssembleInvestorsAlwaysTwo(t *testing.T) {
	// Entirely absent shareholding section still yields both rows.
	rows := AssembleForm(minimalSubmission("TC001"), nil, uuid.New())
	require.Len(t, rows.Investors, 2)
	assert.Equal(t, models.InvestorCategoryEnterprises, rows.Investors[0].Category)
	assert.Equal(t, models.InvestorCategoryOthers, rows.Investors[1].Category)
	assert.Zero(t, rows.Investors[0].TotalCurrent)

	req := minimalSubmission("TC001")
	req.Shareholding = &ShareholdingSection{
		Enterprises: &InvestorFigures{CumulativePreceding: 4, OnboardedCurrent: 1, TotalCurrent: 5},
	}
	rows = AssembleForm(req, nil, uuid.New())
	require.Len(t, rows.Investors, 2)
	assert.Equal(t, 5, rows.Investors[0].TotalCurrent)
	assert.Zero(t, rows.Investors[1].TotalCurrent)
}

func TestAssembleUtilitiesAlwaysFour(t *testing.T) {
	rows := AssembleForm(minimalSubmission("TC001"), nil, uuid.New())
	require.Len(t, rows.Utilities, 4)

	types := make([]models.UtilityType, 0, 4)
	for _, u := range rows.Utilities {
		types = append(types, u.UtilityType)
		assert.Zero(t, u.UnitsConsumed)
	}
	assert.Equal(t, []models.UtilityType{
		models.UtilityTypeElectricity,
		models.UtilityTypeWater,
		models.UtilityTypeTelecom,
		models.UtilityTypeOther,
	}, types)
}

func TestAssembleUtilitiesOtherNameOverride(t *testing.T) {
	req := minimalSubmission("TC001")
	req.Utilities = &UtilitiesSection{
		Electricity:   &UtilityFigures{Units: 100, Cost: 2, Total: 200},
		OthersSpecify: &UtilityFigures{Units: 1, Cost: 1, Total: 1},
		OthersName:    "Generator fuel",
	}

	rows := AssembleForm(req, nil, uuid.New())
	require.Len(t, rows.Utilities, 4)

	assert.Equal(t, "electricity", rows.Utilities[0].UtilityName)
	assert.Equal(t, 200.0, rows.Utilities[0].TotalCost)

	other := rows.Utilities[3]
	assert.Equal(t, models.UtilityTypeOther, other.UtilityType)
	assert.Equal(t, "Generator fuel", other.UtilityName)
	assert.Equal(t, 1.0, other.TotalCost)
}

func TestAssembleTradeLines(t *testing.T) {
	req := minimalSubmission("TC001")
	req.Exports = []TradeLineInput{{Goods: "A", Units: 100, Price: 50, Total: 5000}}
	req.Imports = []TradeLineInput{
		{Goods: "B", Units: 1, Price: 2, Total: 2},
		{Goods: "C", Units: 3, Price: 4, Total: 12},
	}

	rows := AssembleForm(req, nil, uuid.New())

	require.Len(t, rows.Exports, 1)
	assert.Equal(t, "A", rows.Exports[0].GoodsServices)
	assert.Equal(t, 5000.0, rows.Exports[0].Total)

	require.Len(t, rows.Imports, 2)
	assert.Empty(t, rows.DomesticSales)
	assert.Empty(t, rows.LocalPurchases)
}

func TestClassifyUpload(t *testing.T) {
	assert.Equal(t, models.FileTypeShareholdingCertificate, ClassifyUpload("shareholdingCertificate"))
	assert.Equal(t, models.FileTypeAuditedAccounts, ClassifyUpload("auditedAccounts"))
	assert.Equal(t, models.FileTypeSignature, ClassifyUpload("signatureFile"))
	assert.Equal(t, models.FileTypeCompanyStamp, ClassifyUpload("companyStampFile"))

	// The mapping is total: anything unrecognized is tagged "other".
	assert.Equal(t, models.FileTypeOther, ClassifyUpload("somethingElse"))
	assert.Equal(t, models.FileTypeOther, ClassifyUpload(""))
}

func TestAssembleUploads(t *testing.T) {
	userID := uuid.New()
	files := []UploadedFile{
		{FieldName: "signatureFile", OriginalName: "sig.png", StoredPath: "/uploads/sig.png", Size: 1024, MimeType: "image/png"},
		{FieldName: "extra", OriginalName: "x.pdf", StoredPath: "/uploads/x.pdf", Size: 2048, MimeType: "application/pdf"},
	}

	rows := AssembleForm(minimalSubmission("TC001"), files, userID)

	require.Len(t, rows.Uploads, 2)
	assert.Equal(t, models.FileTypeSignature, rows.Uploads[0].FileType)
	assert.Equal(t, models.FileTypeOther, rows.Uploads[1].FileType)
	require.NotNil(t, rows.Uploads[0].UploadedBy)
	assert.Equal(t, userID, *rows.Uploads[0].UploadedBy)
}
