// internal/handlers/licensee.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/regzone/compliance-backend/internal/services"
	"github.com/regzone/compliance-backend/internal/utils"
)

type LicenseeHandler struct {
	licenseeService *services.LicenseeService
}

func NewLicenseeHandler(licenseeService *services.LicenseeService) *LicenseeHandler {
	return &LicenseeHandler{
		licenseeService: licenseeService,
	}
}

// POST /api/licensees
func (h *LicenseeHandler) RegisterLicensee(c *gin.Context) {
	var req services.RegisterLicenseeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	licensee, err := h.licenseeService.RegisterLicensee(&req)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "Licensee submitted",
		"id":      licensee.ID,
	})
}
