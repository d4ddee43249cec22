package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revams/api/internal/app/models"
	"github.com/revams/api/internal/pkg/apperrors"
)

func newChartRepo(t *testing.T) (*OrgChartRepository, *miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	repo := NewOrgChartRepository(client, "revams")
	repo.now = func() time.Time { return time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC) }
	return repo, mr, client
}

func TestOrgChartRepository_GetMissingIsEmpty(t *testing.T) {
	repo, _, _ := newChartRepo(t)

	chart, err := repo.Get(context.Background(), 5)

	require.NoError(t, err)
	assert.EqualValues(t, 5, chart.OrganizationID)
	assert.Empty(t, chart.Nodes)
	assert.NotNil(t, chart.Nodes)
	assert.False(t, chart.Published)
	assert.Nil(t, chart.UpdatedAt)
}

func TestOrgChartRepository_UpdatePersists(t *testing.T) {
	repo, mr, _ := newChartRepo(t)
	ctx := context.Background()

	saved, err := repo.Update(ctx, 5, func(c *models.OrgChart) error {
		c.Nodes = append(c.Nodes, models.ChartNode{ID: "n1", Label: "President"})
		return nil
	})
	require.NoError(t, err)
	require.NotNil(t, saved.UpdatedAt)

	raw, err := mr.Get("revams:orgchart:5")
	require.NoError(t, err)
	var stored models.OrgChart
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	assert.Equal(t, "President", stored.Nodes[0].Label)

	again, err := repo.Get(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, saved, again)
}

func TestOrgChartRepository_MutationErrorAbortsWrite(t *testing.T) {
	repo, mr, _ := newChartRepo(t)

	_, err := repo.Update(context.Background(), 5, func(c *models.OrgChart) error {
		c.Published = true
		return apperrors.ErrNodeNotFound
	})

	assert.ErrorIs(t, err, apperrors.ErrNodeNotFound)
	assert.False(t, mr.Exists("revams:orgchart:5"))
}

func TestOrgChartRepository_ConcurrentWriteConflicts(t *testing.T) {
	repo, mr, client := newChartRepo(t)
	ctx := context.Background()

	_, err := repo.Update(ctx, 5, func(c *models.OrgChart) error {
		// another editor saves between our read and our write
		return client.Set(ctx, "revams:orgchart:5", `{"published":true}`, 0).Err()
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrChartModified))

	raw, err := mr.Get("revams:orgchart:5")
	require.NoError(t, err)
	assert.JSONEq(t, `{"published":true}`, raw)
}
