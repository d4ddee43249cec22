package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/revams/api/internal/app/requests"
	"github.com/revams/api/internal/app/services"
	"github.com/revams/api/internal/middleware"
)

// ReferenceController serves lookup data
type ReferenceController struct {
	referenceService services.ReferenceService
}

// NewReferenceController creates a new ReferenceController
func NewReferenceController(referenceService services.ReferenceService) *ReferenceController {
	return &ReferenceController{referenceService: referenceService}
}

// ListPrograms
// @Summary List programs
// @Tags reference
// @Produce json
// @Success 200 {object} map[string]interface{} "programs"
// @Router /programs [get]
func (c *ReferenceController) ListPrograms(ctx *gin.Context) {
	programs, err := c.referenceService.ListPrograms(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"programs": programs})
}

// ListMajors
// @Summary List majors
// @Tags reference
// @Produce json
// @Param program_id query int false "Only majors of this program"
// @Success 200 {object} map[string]interface{} "majors"
// @Router /majors [get]
func (c *ReferenceController) ListMajors(ctx *gin.Context) {
	var req requests.ListMajorsRequest
	if err := requests.Validate(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	majors, err := c.referenceService.ListMajors(ctx, req.ProgramID())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"majors": majors})
}

// ListDegrees
// @Summary List degrees
// @Tags reference
// @Produce json
// @Success 200 {object} map[string]interface{} "degrees"
// @Router /degrees [get]
func (c *ReferenceController) ListDegrees(ctx *gin.Context) {
	degrees, err := c.referenceService.ListDegrees(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"degrees": degrees})
}

// ListYearLevels never fails; a built-in list is served if the table is unreadable
// @Summary List year levels
// @Tags reference
// @Produce json
// @Success 200 {object} map[string]interface{} "year_levels"
// @Router /year-levels [get]
func (c *ReferenceController) ListYearLevels(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"year_levels": c.referenceService.ListYearLevels(ctx)})
}

// ListOrganizations
// @Summary List organizations
// @Tags reference
// @Produce json
// @Success 200 {object} map[string]interface{} "organizations"
// @Router /organizations [get]
func (c *ReferenceController) ListOrganizations(ctx *gin.Context) {
	orgs, err := c.referenceService.ListOrganizations(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"organizations": orgs})
}
