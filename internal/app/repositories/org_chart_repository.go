package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/revams/api/internal/app/models"
	"github.com/revams/api/internal/pkg/apperrors"
)

// ChartMutation edits a chart in place. Returning an error aborts the write.
type ChartMutation func(chart *models.OrgChart) error

type stringGetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

// OrgChartRepository keeps each organization's chart as one JSON document in
// Redis.
type OrgChartRepository struct {
	client *redis.Client
	prefix string
	now    func() time.Time
}

// NewOrgChartRepository creates a new OrgChartRepository. Keys are
// "<prefix>:orgchart:<organization id>".
func NewOrgChartRepository(client *redis.Client, prefix string) *OrgChartRepository {
	return &OrgChartRepository{client: client, prefix: prefix, now: time.Now}
}

func (r *OrgChartRepository) key(organizationID int64) string {
	return fmt.Sprintf("%s:orgchart:%d", r.prefix, organizationID)
}

func (r *OrgChartRepository) load(ctx context.Context, g stringGetter, organizationID int64) (*models.OrgChart, error) {
	data, err := g.Get(ctx, r.key(organizationID)).Result()
	if errors.Is(err, redis.Nil) {
		return &models.OrgChart{
			OrganizationID: organizationID,
			Nodes:          []models.ChartNode{},
			Edges:          []models.ChartEdge{},
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read org chart: %w", err)
	}

	var chart models.OrgChart
	if err := json.Unmarshal([]byte(data), &chart); err != nil {
		return nil, fmt.Errorf("failed to decode org chart: %w", err)
	}
	chart.OrganizationID = organizationID
	if chart.Nodes == nil {
		chart.Nodes = []models.ChartNode{}
	}
	if chart.Edges == nil {
		chart.Edges = []models.ChartEdge{}
	}
	return &chart, nil
}

// Get returns the organization's chart, or an empty unpublished chart when
// none was saved yet.
func (r *OrgChartRepository) Get(ctx context.Context, organizationID int64) (*models.OrgChart, error) {
	return r.load(ctx, r.client, organizationID)
}

// Update reads the chart, applies mutate and writes it back under WATCH.
// A concurrent write to the same chart aborts with ErrChartModified; the
// caller decides whether to retry.
func (r *OrgChartRepository) Update(ctx context.Context, organizationID int64, mutate ChartMutation) (*models.OrgChart, error) {
	key := r.key(organizationID)
	var saved *models.OrgChart

	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		chart, err := r.load(ctx, tx, organizationID)
		if err != nil {
			return err
		}
		if err := mutate(chart); err != nil {
			return err
		}

		now := r.now().UTC()
		chart.UpdatedAt = &now
		data, err := json.Marshal(chart)
		if err != nil {
			return fmt.Errorf("failed to encode org chart: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, 0)
			return nil
		})
		if err != nil {
			return err
		}
		saved = chart
		return nil
	}, key)

	if errors.Is(err, redis.TxFailedErr) {
		return nil, apperrors.ErrChartModified
	}
	if err != nil {
		return nil, err
	}
	return saved, nil
}
