// internal/handlers/compliance.go
package handlers

import (
	"encoding/json"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/regzone/compliance-backend/internal/services"
	"github.com/regzone/compliance-backend/internal/utils"
)

type ComplianceHandler struct {
	complianceService *services.ComplianceService
	storageService    *services.StorageService
}

func NewComplianceHandler(complianceService *services.ComplianceService, storageService *services.StorageService) *ComplianceHandler {
	return &ComplianceHandler{
		complianceService: complianceService,
		storageService:    storageService,
	}
}

// POST /api/submit-compliance
//
// Accepts either a JSON body, or a multipart form whose "payload" field
// carries the JSON document and whose remaining file fields are the
// attachments.
func (h *ComplianceHandler) SubmitCompliance(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.SubmitComplianceRequest
	var files []services.UploadedFile

	contentType := c.ContentType()
	if contentType == "multipart/form-data" {
		form, err := c.MultipartForm()
		if err != nil {
			utils.BadRequestResponse(c, "Invalid multipart form", err.Error())
			return
		}

		payload := ""
		if values := form.Value["payload"]; len(values) > 0 {
			payload = values[0]
		}
		if err := json.Unmarshal([]byte(payload), &req); err != nil {
			utils.BadRequestResponse(c, "Invalid form payload", err.Error())
			return
		}

		files, err = h.storageService.StoreFormFiles(form)
		if err != nil {
			utils.AppErrorResponse(c, err)
			return
		}
	} else {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.BadRequestResponse(c, "Invalid request body", err.Error())
			return
		}
	}

	formID, err := h.complianceService.SubmitForm(userID, &req, files)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "Compliance form submitted successfully",
		"formId":  formID,
	})
}

// GET /api/my-submissions
func (h *ComplianceHandler) GetMySubmissions(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	submissions, err := h.complianceService.GetUserSubmissions(userID)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, submissions)
}

// GET /api/submission-status/:submissionId
func (h *ComplianceHandler) GetSubmissionStatus(c *gin.Context) {
	formID, err := uuid.Parse(c.Param("submissionId"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid submission ID", nil)
		return
	}

	status, err := h.complianceService.GetSubmissionStatus(formID)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, status)
}

func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	idStr, exists := utils.GetUserIDFromContext(c)
	if !exists {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
