package requests

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/revams/api/internal/app/models"
)

// CreateNodeRequest backs POST /api/organizations/:id/org-chart/nodes.
type CreateNodeRequest struct {
	Base
	input struct {
		OrganizationID int64                `json:"-" uri:"id" validate:"required,min=1"`
		Label          string               `json:"label" validate:"required,min=1,max=100"`
		Title          *string              `json:"title" validate:"omitempty,max=100"`
		PhotoURL       *string              `json:"photo_url" validate:"omitempty,url,max=500"`
		Position       models.ChartPosition `json:"position"`
	}
}

func (r *CreateNodeRequest) Rules() any { return &r.input }

func (r *CreateNodeRequest) Prepare(*gin.Context) error {
	r.input.Label = strings.TrimSpace(r.input.Label)
	return nil
}

func (r *CreateNodeRequest) OrganizationID() int64 {
	r.mustBeValidated()
	return r.input.OrganizationID
}

// Node returns the node without an id; the store assigns one.
func (r *CreateNodeRequest) Node() models.ChartNode {
	r.mustBeValidated()
	return models.ChartNode{
		Label:    r.input.Label,
		PhotoURL: r.input.PhotoURL,
		Position: r.input.Position,
		Title:    r.input.Title,
	}
}

// UpdateNodeRequest backs PATCH /api/organizations/:id/org-chart/nodes/:nodeId.
type UpdateNodeRequest struct {
	Base
	input struct {
		OrganizationID int64                 `json:"-" uri:"id" validate:"required,min=1"`
		NodeID         string                `json:"-" uri:"nodeId" validate:"required,uuid"`
		Label          *string               `json:"label" validate:"omitempty,min=1,max=100"`
		Title          *string               `json:"title" validate:"omitempty,max=100"`
		PhotoURL       *string               `json:"photo_url" validate:"omitempty,url,max=500"`
		Position       *models.ChartPosition `json:"position"`
	}
}

func (r *UpdateNodeRequest) Rules() any { return &r.input }

func (r *UpdateNodeRequest) Prepare(*gin.Context) error {
	trimSet(r.input.Label)
	return nil
}

func (r *UpdateNodeRequest) OrganizationID() int64 {
	r.mustBeValidated()
	return r.input.OrganizationID
}

func (r *UpdateNodeRequest) NodeID() string {
	r.mustBeValidated()
	return r.input.NodeID
}

// Apply copies the present fields onto node.
func (r *UpdateNodeRequest) Apply(node *models.ChartNode) {
	r.mustBeValidated()
	if r.input.Label != nil {
		node.Label = *r.input.Label
	}
	if r.input.Title != nil {
		node.Title = r.input.Title
	}
	if r.input.PhotoURL != nil {
		node.PhotoURL = r.input.PhotoURL
	}
	if r.input.Position != nil {
		node.Position = *r.input.Position
	}
}

// ChartItemRequest addresses a node or edge of an organization's chart.
// Param is the path parameter naming the item.
type ChartItemRequest struct {
	QueryBase
	Param string
	input struct {
		OrganizationID int64 `uri:"id" validate:"required,min=1"`
		ItemID         string `form:"-"`
	}
}

func (r *ChartItemRequest) Rules() any { return &r.input }

func (r *ChartItemRequest) Prepare(c *gin.Context) error {
	r.input.ItemID = c.Param(r.Param)
	return nil
}

func (r *ChartItemRequest) OrganizationID() int64 {
	r.mustBeValidated()
	return r.input.OrganizationID
}

func (r *ChartItemRequest) ItemID() string {
	r.mustBeValidated()
	return r.input.ItemID
}

// CreateEdgeRequest backs POST /api/organizations/:id/org-chart/edges.
type CreateEdgeRequest struct {
	Base
	input struct {
		OrganizationID int64  `json:"-" uri:"id" validate:"required,min=1"`
		Source         string `json:"source" validate:"required,uuid"`
		Target         string `json:"target" validate:"required,uuid,nefield=Source"`
	}
}

func (r *CreateEdgeRequest) Rules() any { return &r.input }

func (r *CreateEdgeRequest) OrganizationID() int64 {
	r.mustBeValidated()
	return r.input.OrganizationID
}

func (r *CreateEdgeRequest) Edge() models.ChartEdge {
	r.mustBeValidated()
	return models.ChartEdge{Source: r.input.Source, Target: r.input.Target}
}

// PublishChartRequest backs PUT /api/organizations/:id/org-chart/publish.
type PublishChartRequest struct {
	Base
	input struct {
		OrganizationID int64 `json:"-" uri:"id" validate:"required,min=1"`
		Published      *bool `json:"published" validate:"required"`
	}
}

func (r *PublishChartRequest) Rules() any { return &r.input }

func (r *PublishChartRequest) OrganizationID() int64 {
	r.mustBeValidated()
	return r.input.OrganizationID
}

func (r *PublishChartRequest) Published() bool {
	r.mustBeValidated()
	return *r.input.Published
}
