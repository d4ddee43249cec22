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
	"github.com/revams/api/internal/pkg/helpers"
)

const recordPairConstraint = "attendance_records_slot_student_key"

// AttendanceRecordRepository handles attendance record database operations
type AttendanceRecordRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAttendanceRecordRepository creates a new AttendanceRecordRepository
func NewAttendanceRecordRepository(db *pgxpool.Pool) *AttendanceRecordRepository {
	return &AttendanceRecordRepository{db: db, sb: newStatementBuilder()}
}

func (r *AttendanceRecordRepository) selectRecords() squirrel.SelectBuilder {
	return r.sb.Select("ar.id", "ar.attendance_slot_id", "ar.student_id", "ar.recorded_at").
		From("attendance_records ar")
}

func scanRecord(row pgx.Row, rec *models.AttendanceRecord) error {
	return row.Scan(&rec.ID, &rec.AttendanceSlotID, &rec.StudentID, &rec.RecordedAt)
}

// Create inserts rec and fills in its ID and timestamp.
func (r *AttendanceRecordRepository) Create(ctx context.Context, rec *models.AttendanceRecord) error {
	sql, args, err := r.sb.Insert("attendance_records").
		Columns("attendance_slot_id", "student_id").
		Values(rec.AttendanceSlotID, rec.StudentID).
		Suffix("RETURNING id, recorded_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create record query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&rec.ID, &rec.RecordedAt); err != nil {
		switch {
		case dberrors.IsDuplicateConstraintError(err, recordPairConstraint):
			return apperrors.ErrDuplicateRecord
		case dberrors.IsForeignKeyError(err, ""):
			return apperrors.NewBadRequestError("Referenced student or attendance slot does not exist")
		default:
			return fmt.Errorf("failed to create record: %w", err)
		}
	}
	return nil
}

// GetByID retrieves an attendance record by ID
func (r *AttendanceRecordRepository) GetByID(ctx context.Context, id int64) (*models.AttendanceRecord, error) {
	sql, args, err := r.selectRecords().Where(squirrel.Eq{"ar.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get record query: %w", err)
	}

	var rec models.AttendanceRecord
	if err := scanRecord(r.db.QueryRow(ctx, sql, args...), &rec); err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get record: %w", err)
	}
	return &rec, nil
}

// Exists reports whether the student already has a record for the slot.
func (r *AttendanceRecordRepository) Exists(ctx context.Context, slotID, studentID int64) (bool, error) {
	return queryExists(ctx, r.db,
		r.sb.Select("1").From("attendance_records").
			Where(squirrel.Eq{"attendance_slot_id": slotID, "student_id": studentID}),
		"attendance record")
}

// ListBySlot returns one page of a slot's records, newest first.
func (r *AttendanceRecordRepository) ListBySlot(ctx context.Context, slotID int64, page, limit int) ([]models.AttendanceRecord, int64, error) {
	countSQL, countArgs, err := r.sb.Select("COUNT(*)").From("attendance_records").
		Where(squirrel.Eq{"attendance_slot_id": slotID}).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count records query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count records: %w", err)
	}

	records := []models.AttendanceRecord{}
	if total == 0 {
		return records, 0, nil
	}

	offset, size := helpers.CalculateOffsetLimit(page, limit)
	sql, args, err := r.selectRecords().
		Where(squirrel.Eq{"ar.attendance_slot_id": slotID}).
		OrderBy("ar.recorded_at DESC", "ar.id DESC").
		Limit(size).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list records query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var rec models.AttendanceRecord
		if err := scanRecord(rows, &rec); err != nil {
			return nil, 0, fmt.Errorf("failed to scan record row: %w", err)
		}
		records = append(records, rec)
	}
	return records, total, rows.Err()
}

// attendedSlotsQuery selects the ids of the event's slots the student has a
// record for.
func (r *AttendanceRecordRepository) attendedSlotsQuery(studentID, eventID int64) squirrel.SelectBuilder {
	return r.sb.Select("ar.attendance_slot_id").
		From("attendance_records ar").
		Join("attendance_slots a ON a.id = ar.attendance_slot_id").
		Where(squirrel.Eq{"ar.student_id": studentID, "a.event_id": eventID})
}

// AttendedSlotIDs returns the ids of the event's slots the student attended.
func (r *AttendanceRecordRepository) AttendedSlotIDs(ctx context.Context, studentID, eventID int64) ([]int64, error) {
	sql, args, err := r.attendedSlotsQuery(studentID, eventID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build attended slots query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attended slots: %w", err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("failed to collect attended slots: %w", err)
	}
	return ids, nil
}

// Delete deletes an attendance record by ID
func (r *AttendanceRecordRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("attendance_records").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete record query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrRecordNotFound
	}
	return nil
}
