package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/revams/api/internal/app/models"
	"github.com/revams/api/internal/pkg/apperrors"
)

// OrgChartService edits and publishes organizational charts
type OrgChartService interface {
	GetChart(ctx context.Context, organizationID int64) (*models.OrgChart, error)
	GetPublicChart(ctx context.Context, organizationID int64) (*models.OrgChart, error)
	AddNode(ctx context.Context, organizationID int64, node models.ChartNode) (*models.ChartNode, error)
	UpdateNode(ctx context.Context, organizationID int64, nodeID string, apply func(*models.ChartNode)) (*models.ChartNode, error)
	DeleteNode(ctx context.Context, organizationID int64, nodeID string) error
	AddEdge(ctx context.Context, organizationID int64, edge models.ChartEdge) (*models.ChartEdge, error)
	DeleteEdge(ctx context.Context, organizationID int64, edgeID string) error
	SetPublished(ctx context.Context, organizationID int64, published bool) (*models.OrgChart, error)
}

type orgChartServiceImpl struct {
	charts        OrgChartStore
	organizations OrganizationStore
	newID         func() string
}

// NewOrgChartService creates a new OrgChartService
func NewOrgChartService(charts OrgChartStore, organizations OrganizationStore) OrgChartService {
	return &orgChartServiceImpl{charts: charts, organizations: organizations, newID: uuid.NewString}
}

func (s *orgChartServiceImpl) requireOrganization(ctx context.Context, organizationID int64) error {
	exists, err := s.organizations.Exists(ctx, organizationID)
	if err != nil {
		return fmt.Errorf("error checking organization: %w", err)
	}
	if !exists {
		return apperrors.ErrOrganizationNotFound
	}
	return nil
}

// GetChart returns the editor view; an organization without a chart gets an
// empty one.
func (s *orgChartServiceImpl) GetChart(ctx context.Context, organizationID int64) (*models.OrgChart, error) {
	if err := s.requireOrganization(ctx, organizationID); err != nil {
		return nil, err
	}
	return s.charts.Get(ctx, organizationID)
}

func (s *orgChartServiceImpl) GetPublicChart(ctx context.Context, organizationID int64) (*models.OrgChart, error) {
	chart, err := s.GetChart(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	if !chart.Published {
		return nil, apperrors.ErrChartNotPublished
	}
	return chart, nil
}

func (s *orgChartServiceImpl) AddNode(ctx context.Context, organizationID int64, node models.ChartNode) (*models.ChartNode, error) {
	if err := s.requireOrganization(ctx, organizationID); err != nil {
		return nil, err
	}

	node.ID = s.newID()
	_, err := s.charts.Update(ctx, organizationID, func(c *models.OrgChart) error {
		c.Nodes = append(c.Nodes, node)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &node, nil
}

func (s *orgChartServiceImpl) UpdateNode(ctx context.Context, organizationID int64, nodeID string, apply func(*models.ChartNode)) (*models.ChartNode, error) {
	if err := s.requireOrganization(ctx, organizationID); err != nil {
		return nil, err
	}

	var updated models.ChartNode
	_, err := s.charts.Update(ctx, organizationID, func(c *models.OrgChart) error {
		i := c.NodeIndex(nodeID)
		if i < 0 {
			return apperrors.ErrNodeNotFound
		}
		apply(&c.Nodes[i])
		updated = c.Nodes[i]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteNode removes a node together with every edge touching it
func (s *orgChartServiceImpl) DeleteNode(ctx context.Context, organizationID int64, nodeID string) error {
	if err := s.requireOrganization(ctx, organizationID); err != nil {
		return err
	}

	_, err := s.charts.Update(ctx, organizationID, func(c *models.OrgChart) error {
		i := c.NodeIndex(nodeID)
		if i < 0 {
			return apperrors.ErrNodeNotFound
		}
		c.Nodes = append(c.Nodes[:i], c.Nodes[i+1:]...)

		kept := c.Edges[:0]
		for _, e := range c.Edges {
			if e.Source != nodeID && e.Target != nodeID {
				kept = append(kept, e)
			}
		}
		c.Edges = kept
		return nil
	})
	return err
}

func (s *orgChartServiceImpl) AddEdge(ctx context.Context, organizationID int64, edge models.ChartEdge) (*models.ChartEdge, error) {
	if err := s.requireOrganization(ctx, organizationID); err != nil {
		return nil, err
	}
	if edge.Source == edge.Target {
		return nil, apperrors.NewBadRequestError("An edge cannot connect a node to itself")
	}

	edge.ID = s.newID()
	_, err := s.charts.Update(ctx, organizationID, func(c *models.OrgChart) error {
		if c.NodeIndex(edge.Source) < 0 || c.NodeIndex(edge.Target) < 0 {
			return apperrors.NewBadRequestError("Edge source or target node does not exist")
		}
		for _, e := range c.Edges {
			if e.Source == edge.Source && e.Target == edge.Target {
				return apperrors.ErrDuplicateEdge
			}
		}
		c.Edges = append(c.Edges, edge)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &edge, nil
}

func (s *orgChartServiceImpl) DeleteEdge(ctx context.Context, organizationID int64, edgeID string) error {
	if err := s.requireOrganization(ctx, organizationID); err != nil {
		return err
	}

	_, err := s.charts.Update(ctx, organizationID, func(c *models.OrgChart) error {
		i := c.EdgeIndex(edgeID)
		if i < 0 {
			return apperrors.ErrEdgeNotFound
		}
		c.Edges = append(c.Edges[:i], c.Edges[i+1:]...)
		return nil
	})
	return err
}

func (s *orgChartServiceImpl) SetPublished(ctx context.Context, organizationID int64, published bool) (*models.OrgChart, error) {
	if err := s.requireOrganization(ctx, organizationID); err != nil {
		return nil, err
	}
	return s.charts.Update(ctx, organizationID, func(c *models.OrgChart) error {
		c.Published = published
		return nil
	})
}
