package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revams/api/internal/app/models"
	"github.com/revams/api/internal/app/repositories"
	"github.com/revams/api/internal/pkg/apperrors"
)

func newOrgChartService(t *testing.T) (*orgChartServiceImpl, *MockOrganizationStore) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	orgs := new(MockOrganizationStore)
	svc := NewOrgChartService(repositories.NewOrgChartRepository(client, "test"), orgs).(*orgChartServiceImpl)

	n := 0
	svc.newID = func() string {
		n++
		return fmt.Sprintf("00000000-0000-0000-0000-%012d", n)
	}
	return svc, orgs
}

func TestOrgChart_UnknownOrganization(t *testing.T) {
	svc, orgs := newOrgChartService(t)
	orgs.On("Exists", context.Background(), int64(1)).Return(false, nil)

	_, err := svc.GetChart(context.Background(), 1)
	assert.ErrorIs(t, err, apperrors.ErrOrganizationNotFound)
}

func TestOrgChart_EditAndPublish(t *testing.T) {
	svc, orgs := newOrgChartService(t)
	ctx := context.Background()
	orgs.On("Exists", ctx, int64(1)).Return(true, nil)

	_, err := svc.GetPublicChart(ctx, 1)
	require.ErrorIs(t, err, apperrors.ErrChartNotPublished)

	president, err := svc.AddNode(ctx, 1, models.ChartNode{Label: "President"})
	require.NoError(t, err)
	secretary, err := svc.AddNode(ctx, 1, models.ChartNode{Label: "Secretary"})
	require.NoError(t, err)
	assert.NotEqual(t, president.ID, secretary.ID)

	edge, err := svc.AddEdge(ctx, 1, models.ChartEdge{Source: president.ID, Target: secretary.ID})
	require.NoError(t, err)

	_, err = svc.AddEdge(ctx, 1, models.ChartEdge{Source: president.ID, Target: secretary.ID})
	assert.ErrorIs(t, err, apperrors.ErrDuplicateEdge)

	_, err = svc.AddEdge(ctx, 1, models.ChartEdge{Source: president.ID, Target: president.ID})
	assert.Equal(t, 400, apperrors.StatusCode(err))

	_, err = svc.AddEdge(ctx, 1, models.ChartEdge{Source: president.ID, Target: "00000000-0000-0000-0000-000000000099"})
	assert.Equal(t, 400, apperrors.StatusCode(err))

	updated, err := svc.UpdateNode(ctx, 1, secretary.ID, func(n *models.ChartNode) {
		n.Position = models.ChartPosition{X: 10, Y: 20}
	})
	require.NoError(t, err)
	assert.Equal(t, 20.0, updated.Position.Y)

	chart, err := svc.SetPublished(ctx, 1, true)
	require.NoError(t, err)
	assert.True(t, chart.Published)

	public, err := svc.GetPublicChart(ctx, 1)
	require.NoError(t, err)
	require.Len(t, public.Edges, 1)
	assert.Equal(t, edge.ID, public.Edges[0].ID)
}

func TestOrgChart_DeleteNodeRemovesIncidentEdges(t *testing.T) {
	svc, orgs := newOrgChartService(t)
	ctx := context.Background()
	orgs.On("Exists", ctx, int64(1)).Return(true, nil)

	a, _ := svc.AddNode(ctx, 1, models.ChartNode{Label: "A"})
	b, _ := svc.AddNode(ctx, 1, models.ChartNode{Label: "B"})
	c, _ := svc.AddNode(ctx, 1, models.ChartNode{Label: "C"})
	_, err := svc.AddEdge(ctx, 1, models.ChartEdge{Source: a.ID, Target: b.ID})
	require.NoError(t, err)
	kept, err := svc.AddEdge(ctx, 1, models.ChartEdge{Source: a.ID, Target: c.ID})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteNode(ctx, 1, b.ID))

	chart, err := svc.GetChart(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, chart.Nodes, 2)
	require.Len(t, chart.Edges, 1)
	assert.Equal(t, kept.ID, chart.Edges[0].ID)

	assert.ErrorIs(t, svc.DeleteNode(ctx, 1, b.ID), apperrors.ErrNodeNotFound)
	assert.ErrorIs(t, svc.DeleteEdge(ctx, 1, "missing"), apperrors.ErrEdgeNotFound)
}
