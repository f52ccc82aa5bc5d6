// internal/handlers/admin.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/regzone/compliance-backend/internal/services"
	"github.com/regzone/compliance-backend/internal/utils"
)

type AdminHandler struct {
	adminService *services.AdminService
}

func NewAdminHandler(adminService *services.AdminService) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
	}
}

// GET /api/admin/submissions
func (h *AdminHandler) GetSubmissions(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	submissions, total, err := h.adminService.GetSubmissions(params)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	result := utils.CreatePaginationResult(submissions, total, params)
	utils.PaginatedResponse(c, result)
}

// GET /api/admin/user-stats
func (h *AdminHandler) GetUserStats(c *gin.Context) {
	stats, err := h.adminService.GetUserStats()
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, stats)
}

// GET /api/admin/compliance-forms/:id
func (h *AdminHandler) GetSubmissionDetail(c *gin.Context) {
	formID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid submission ID", nil)
		return
	}

	detail, err := h.adminService.GetSubmissionDetail(formID)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, detail)
}

// POST /api/admin/update-submission
func (h *AdminHandler) UpdateSubmission(c *gin.Context) {
	var req services.UpdateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	if err := h.adminService.UpdateSubmission(&req); err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"success": true,
		"message": "Submission updated successfully",
	})
}

// POST /api/admin/approve-submission
func (h *AdminHandler) ApproveSubmission(c *gin.Context) {
	var req services.ApproveSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	if err := h.adminService.ApproveSubmission(&req); err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "Submission status updated and user notified.",
	})
}

// DELETE /api/admin/compliance-forms/:id
func (h *AdminHandler) DeleteSubmission(c *gin.Context) {
	formID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid submission ID", nil)
		return
	}

	if err := h.adminService.DeleteSubmission(formID); err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "Submission deleted",
	})
}
