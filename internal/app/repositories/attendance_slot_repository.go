package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/revams/api/internal/app/models"
	"github.com/revams/api/internal/pkg/apperrors"
	"github.com/revams/api/internal/pkg/dberrors"
	"github.com/revams/api/internal/pkg/logger"
)

const slotPairConstraint = "attendance_slots_event_time_type_key"

// AttendanceSlotRepository handles attendance slot database operations
type AttendanceSlotRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAttendanceSlotRepository creates a new AttendanceSlotRepository
func NewAttendanceSlotRepository(db *pgxpool.Pool) *AttendanceSlotRepository {
	return &AttendanceSlotRepository{db: db, sb: newStatementBuilder()}
}

func (r *AttendanceSlotRepository) selectSlots() squirrel.SelectBuilder {
	return r.sb.Select(
		"a.id", "a.event_id", "a.type::text", "to_char(a.trigger_time, 'HH24:MI:SS')",
		"a.fine_amount::float8", "a.created_at", "a.updated_at",
	).From("attendance_slots a")
}

func scanSlot(row pgx.Row, s *models.AttendanceSlot) error {
	return row.Scan(&s.ID, &s.EventID, &s.Type, &s.TriggerTime, &s.FineAmount, &s.CreatedAt, &s.UpdatedAt)
}

// ListByEvent returns the event's slots ordered by trigger time.
func (r *AttendanceSlotRepository) ListByEvent(ctx context.Context, eventID int64) ([]models.AttendanceSlot, error) {
	sql, args, err := r.selectSlots().
		Where(squirrel.Eq{"a.event_id": eventID}).
		OrderBy("a.trigger_time ASC", "a.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list slots query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query slots: %w", err)
	}
	defer rows.Close()

	slots := []models.AttendanceSlot{}
	for rows.Next() {
		var s models.AttendanceSlot
		if err := scanSlot(rows, &s); err != nil {
			return nil, fmt.Errorf("failed to scan slot row: %w", err)
		}
		slots = append(slots, s)
	}
	return slots, rows.Err()
}

// GetByID retrieves an attendance slot by ID
func (r *AttendanceSlotRepository) GetByID(ctx context.Context, id int64) (*models.AttendanceSlot, error) {
	sql, args, err := r.selectSlots().Where(squirrel.Eq{"a.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get slot query: %w", err)
	}

	var s models.AttendanceSlot
	if err := scanSlot(r.db.QueryRow(ctx, sql, args...), &s); err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrSlotNotFound
		}
		return nil, fmt.Errorf("failed to get slot: %w", err)
	}
	return &s, nil
}

// Exists reports whether a slot with id exists.
func (r *AttendanceSlotRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return rowExists(ctx, r.db, r.sb, "attendance_slots", id)
}

// pairTakenQuery checks for another slot of the event at the same trigger
// time and type. excludeID is ignored when zero.
func (r *AttendanceSlotRepository) pairTakenQuery(eventID int64, triggerTime string, slotType models.SlotType, excludeID int64) squirrel.SelectBuilder {
	q := r.sb.Select("1").From("attendance_slots").Where(squirrel.And{
		squirrel.Eq{"event_id": eventID},
		squirrel.Expr("trigger_time = ?::time", triggerTime),
		squirrel.Expr("type = ?::attendance_slot_type", string(slotType)),
	})
	if excludeID > 0 {
		q = q.Where(squirrel.NotEq{"id": excludeID})
	}
	return q
}

// PairTaken reports whether the event already has a slot with this trigger
// time and type, other than excludeID.
func (r *AttendanceSlotRepository) PairTaken(ctx context.Context, eventID int64, triggerTime string, slotType models.SlotType, excludeID int64) (bool, error) {
	return queryExists(ctx, r.db, r.pairTakenQuery(eventID, triggerTime, slotType, excludeID), "slot pair")
}

// Create inserts slot and fills in its ID and timestamps.
func (r *AttendanceSlotRepository) Create(ctx context.Context, slot *models.AttendanceSlot) error {
	sql, args, err := r.sb.Insert("attendance_slots").
		Columns("event_id", "type", "trigger_time", "fine_amount").
		Values(
			slot.EventID,
			squirrel.Expr("?::attendance_slot_type", string(slot.Type)),
			squirrel.Expr("?::time", slot.TriggerTime),
			slot.FineAmount,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create slot SQL")
		return fmt.Errorf("failed to build create slot query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&slot.ID, &slot.CreatedAt, &slot.UpdatedAt); err != nil {
		return slotWriteError(err)
	}
	return nil
}

func (r *AttendanceSlotRepository) updateQuery(id int64, changes models.SlotChanges) squirrel.UpdateBuilder {
	set := map[string]any{"updated_at": squirrel.Expr("NOW()")}
	if changes.Type != nil {
		set["type"] = squirrel.Expr("?::attendance_slot_type", string(*changes.Type))
	}
	if changes.TriggerTime != nil {
		set["trigger_time"] = squirrel.Expr("?::time", *changes.TriggerTime)
	}
	if changes.FineAmount != nil {
		set["fine_amount"] = *changes.FineAmount
	}
	return r.sb.Update("attendance_slots").SetMap(set).Where(squirrel.Eq{"id": id})
}

// Update applies changes to the slot with id.
func (r *AttendanceSlotRepository) Update(ctx context.Context, id int64, changes models.SlotChanges) error {
	sql, args, err := r.updateQuery(id, changes).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update slot query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return slotWriteError(err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrSlotNotFound
	}
	return nil
}

// HasRecords reports whether any attendance record references the slot.
func (r *AttendanceSlotRepository) HasRecords(ctx context.Context, id int64) (bool, error) {
	return queryExists(ctx, r.db,
		r.sb.Select("1").From("attendance_records").Where(squirrel.Eq{"attendance_slot_id": id}), "slot records")
}

// Delete deletes an attendance slot by ID
func (r *AttendanceSlotRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("attendance_slots").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete slot query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyError(err, "") {
			return apperrors.ErrSlotHasRecords
		}
		return fmt.Errorf("failed to delete slot: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrSlotNotFound
	}
	return nil
}

func slotWriteError(err error) error {
	switch {
	case dberrors.IsDuplicateConstraintError(err, slotPairConstraint):
		return apperrors.ErrDuplicateSlot
	case dberrors.IsForeignKeyError(err, ""):
		return apperrors.NewBadRequestError("Referenced event does not exist")
	default:
		return fmt.Errorf("failed to write slot: %w", err)
	}
}
