package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/revams/api/internal/app/models"
	"github.com/revams/api/internal/app/models/dto"
	"github.com/revams/api/internal/pkg/apperrors"
	"github.com/revams/api/internal/pkg/dberrors"
	"github.com/revams/api/internal/pkg/helpers"
	"github.com/revams/api/internal/pkg/logger"
)

var eventSortColumns = map[string]string{
	"event_date": "e.event_date",
	"name":       "e.name",
	"created_at": "e.created_at",
}

// EventRepository handles event database operations
type EventRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{db: db, sb: newStatementBuilder()}
}

func (r *EventRepository) selectEvents() squirrel.SelectBuilder {
	return r.sb.Select(
		"e.id", "e.name", "e.description", "e.location",
		"to_char(e.event_date, 'YYYY-MM-DD')", "e.organization_id", "e.created_at", "e.updated_at",
	).From("events e")
}

func scanEvent(row pgx.Row, e *models.Event) error {
	return row.Scan(&e.ID, &e.Name, &e.Description, &e.Location, &e.EventDate, &e.OrganizationID, &e.CreatedAt, &e.UpdatedAt)
}

func (r *EventRepository) listQueries(params dto.ListParams) (squirrel.SelectBuilder, squirrel.SelectBuilder) {
	where := squirrel.And{}
	if params.Search != "" {
		pattern := likePattern(params.Search)
		where = append(where, squirrel.Or{
			squirrel.ILike{"e.name": pattern},
			squirrel.ILike{"e.location": pattern},
		})
	}

	sortColumn, ok := eventSortColumns[params.Sort]
	if !ok {
		sortColumn = eventSortColumns["event_date"]
	}
	direction := "DESC"
	if params.Order != "" {
		direction = orderDirection(params.Order)
	}
	offset, limit := helpers.CalculateOffsetLimit(params.Page, params.Limit)

	page := r.selectEvents().
		Where(where).
		OrderBy(fmt.Sprintf("%s %s", sortColumn, direction), fmt.Sprintf("e.id %s", direction)).
		Limit(limit).
		Offset(offset)
	count := r.sb.Select("COUNT(*)").From("events e").Where(where)

	return page, count
}

// List returns one page of events and the total matching params.
func (r *EventRepository) List(ctx context.Context, params dto.ListParams) ([]models.Event, int64, error) {
	pageQuery, countQuery := r.listQueries(params)

	countSQL, countArgs, err := countQuery.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count events query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count events: %w", err)
	}

	events := []models.Event{}
	if total == 0 {
		return events, 0, nil
	}

	sql, args, err := pageQuery.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list events SQL")
		return nil, 0, fmt.Errorf("failed to build list events query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var e models.Event
		if err := scanEvent(rows, &e); err != nil {
			return nil, 0, fmt.Errorf("failed to scan event row: %w", err)
		}
		events = append(events, e)
	}

	return events, total, rows.Err()
}

// GetByID retrieves an event by ID
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	sql, args, err := r.selectEvents().Where(squirrel.Eq{"e.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get event query: %w", err)
	}

	var e models.Event
	if err := scanEvent(r.db.QueryRow(ctx, sql, args...), &e); err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return &e, nil
}

// Exists reports whether an event with id exists.
func (r *EventRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return rowExists(ctx, r.db, r.sb, "events", id)
}

// Create inserts e and fills in its ID and timestamps.
func (r *EventRepository) Create(ctx context.Context, e *models.Event) error {
	sql, args, err := r.sb.Insert("events").
		Columns("name", "description", "location", "event_date", "organization_id").
		Values(e.Name, e.Description, e.Location, squirrel.Expr("?::date", e.EventDate), e.OrganizationID).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create event SQL")
		return fmt.Errorf("failed to build create event query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return eventWriteError(err)
	}
	return nil
}

func (r *EventRepository) updateQuery(id int64, changes models.EventChanges) squirrel.UpdateBuilder {
	set := map[string]any{"updated_at": squirrel.Expr("NOW()")}
	if changes.Name != nil {
		set["name"] = *changes.Name
	}
	if changes.Description != nil {
		set["description"] = *changes.Description
	}
	if changes.Location != nil {
		set["location"] = *changes.Location
	}
	if changes.EventDate != nil {
		set["event_date"] = squirrel.Expr("?::date", *changes.EventDate)
	}
	if changes.OrganizationID != nil {
		set["organization_id"] = *changes.OrganizationID
	}
	return r.sb.Update("events").SetMap(set).Where(squirrel.Eq{"id": id})
}

// Update applies changes to the event with id.
func (r *EventRepository) Update(ctx context.Context, id int64, changes models.EventChanges) error {
	sql, args, err := r.updateQuery(id, changes).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update event query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return eventWriteError(err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}
	return nil
}

// HasSlots reports whether any attendance slot belongs to the event.
func (r *EventRepository) HasSlots(ctx context.Context, id int64) (bool, error) {
	return queryExists(ctx, r.db,
		r.sb.Select("1").From("attendance_slots").Where(squirrel.Eq{"event_id": id}), "event slots")
}

// Delete deletes an event by ID
func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("events").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete event query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyError(err, "") {
			return apperrors.NewConflictError("Event is still referenced and cannot be deleted")
		}
		return fmt.Errorf("failed to delete event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}
	return nil
}

func eventWriteError(err error) error {
	if dberrors.IsForeignKeyError(err, "") {
		return apperrors.NewBadRequestError("Referenced organization does not exist")
	}
	return fmt.Errorf("failed to write event: %w", err)
}
