package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/revams/api/internal/app/requests"
	"github.com/revams/api/internal/app/services"
	"github.com/revams/api/internal/middleware"
)

// OrgChartController handles organizational chart editing
type OrgChartController struct {
	orgChartService services.OrgChartService
}

// NewOrgChartController creates a new OrgChartController
func NewOrgChartController(orgChartService services.OrgChartService) *OrgChartController {
	return &OrgChartController{orgChartService: orgChartService}
}

// GetChart returns the editor view of a chart
// @Summary Get an organization's chart
// @Description Organizations without a chart get an empty one
// @Tags org-chart
// @Produce json
// @Param id path int true "Organization ID"
// @Success 200 {object} map[string]interface{} "org_chart"
// @Failure 404 {object} dto.ErrorResponse "Organization not found"
// @Router /organizations/{id}/org-chart [get]
func (c *OrgChartController) GetChart(ctx *gin.Context) {
	var req requests.ResourceRequest
	if err := requests.Validate(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	chart, err := c.orgChartService.GetChart(ctx, req.ID())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"org_chart": chart})
}

// GetPublicChart returns a published chart
// @Summary Get a published organization chart
// @Tags org-chart
// @Produce json
// @Param id path int true "Organization ID"
// @Success 200 {object} map[string]interface{} "org_chart"
// @Failure 404 {object} dto.ErrorResponse "Organization not found or chart not published"
// @Router /public/organizations/{id}/org-chart [get]
func (c *OrgChartController) GetPublicChart(ctx *gin.Context) {
	var req requests.ResourceRequest
	if err := requests.Validate(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	chart, err := c.orgChartService.GetPublicChart(ctx, req.ID())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"org_chart": chart})
}

// AddNode
// @Summary Add a chart node
// @Tags org-chart
// @Accept json
// @Produce json
// @Param id path int true "Organization ID"
// @Param request body object true "label, title, photo_url and position"
// @Success 201 {object} map[string]interface{} "node and message"
// @Failure 404 {object} dto.ErrorResponse "Organization not found"
// @Failure 409 {object} dto.ErrorResponse "Chart modified concurrently"
// @Router /organizations/{id}/org-chart/nodes [post]
func (c *OrgChartController) AddNode(ctx *gin.Context) {
	var req requests.CreateNodeRequest
	if err := requests.Validate(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	node, err := c.orgChartService.AddNode(ctx, req.OrganizationID(), req.Node())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"node": node, "message": "Node added successfully"})
}

// UpdateNode
// @Summary Update a chart node
// @Tags org-chart
// @Accept json
// @Produce json
// @Param id path int true "Organization ID"
// @Param nodeId path string true "Node ID"
// @Param request body object true "Fields to change"
// @Success 200 {object} map[string]interface{} "node and message"
// @Failure 404 {object} dto.ErrorResponse "Organization or node not found"
// @Failure 409 {object} dto.ErrorResponse "Chart modified concurrently"
// @Router /organizations/{id}/org-chart/nodes/{nodeId} [patch]
func (c *OrgChartController) UpdateNode(ctx *gin.Context) {
	var req requests.UpdateNodeRequest
	if err := requests.Validate(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	node, err := c.orgChartService.UpdateNode(ctx, req.OrganizationID(), req.NodeID(), req.Apply)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"node": node, "message": "Node updated successfully"})
}

// DeleteNode removes a node and its edges
// @Summary Delete a chart node
// @Tags org-chart
// @Produce json
// @Param id path int true "Organization ID"
// @Param nodeId path string true "Node ID"
// @Success 200 {object} map[string]interface{} "message"
// @Failure 404 {object} dto.ErrorResponse "Organization or node not found"
// @Router /organizations/{id}/org-chart/nodes/{nodeId} [delete]
func (c *OrgChartController) DeleteNode(ctx *gin.Context) {
	req := requests.ChartItemRequest{Param: "nodeId"}
	if err := requests.Validate(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.orgChartService.DeleteNode(ctx, req.OrganizationID(), req.ItemID()); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Node deleted successfully"})
}

// AddEdge
// @Summary Add a chart edge
// @Tags org-chart
// @Accept json
// @Produce json
// @Param id path int true "Organization ID"
// @Param request body object true "source and target node ids"
// @Success 201 {object} map[string]interface{} "edge and message"
// @Failure 400 {object} dto.ErrorResponse "Missing endpoint or self edge"
// @Failure 409 {object} dto.ErrorResponse "Duplicate edge or chart modified concurrently"
// @Router /organizations/{id}/org-chart/edges [post]
func (c *OrgChartController) AddEdge(ctx *gin.Context) {
	var req requests.CreateEdgeRequest
	if err := requests.Validate(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	edge, err := c.orgChartService.AddEdge(ctx, req.OrganizationID(), req.Edge())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"edge": edge, "message": "Edge added successfully"})
}

// DeleteEdge
// @Summary Delete a chart edge
// @Tags org-chart
// @Produce json
// @Param id path int true "Organization ID"
// @Param edgeId path string true "Edge ID"
// @Success 200 {object} map[string]interface{} "message"
// @Failure 404 {object} dto.ErrorResponse "Organization or edge not found"
// @Router /organizations/{id}/org-chart/edges/{edgeId} [delete]
func (c *OrgChartController) DeleteEdge(ctx *gin.Context) {
	req := requests.ChartItemRequest{Param: "edgeId"}
	if err := requests.Validate(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.orgChartService.DeleteEdge(ctx, req.OrganizationID(), req.ItemID()); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Edge deleted successfully"})
}

// SetPublished
// @Summary Publish or unpublish a chart
// @Tags org-chart
// @Accept json
// @Produce json
// @Param id path int true "Organization ID"
// @Param request body object true "published flag"
// @Success 200 {object} map[string]interface{} "org_chart and message"
// @Failure 404 {object} dto.ErrorResponse "Organization not found"
// @Router /organizations/{id}/org-chart/publish [put]
func (c *OrgChartController) SetPublished(ctx *gin.Context) {
	var req requests.PublishChartRequest
	if err := requests.Validate(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	chart, err := c.orgChartService.SetPublished(ctx, req.OrganizationID(), req.Published())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	message := "Organization chart unpublished"
	if chart.Published {
		message = "Organization chart published"
	}
	ctx.JSON(http.StatusOK, gin.H{"org_chart": chart, "message": message})
}
