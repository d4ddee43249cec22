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

const studentNumberConstraint = "students_student_number_key"

// StudentFilter narrows a student listing.
type StudentFilter struct {
	dto.ListParams
	ProgramID   *int64
	YearLevelID *int64
}

var studentSortColumns = map[string]string{
	"last_name":      "s.last_name",
	"first_name":     "s.first_name",
	"student_number": "s.student_number",
	"created_at":     "s.created_at",
}

// StudentRepository handles student database operations
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{db: db, sb: newStatementBuilder()}
}

// selectStudents joins a student with its program, major and year level names.
func (r *StudentRepository) selectStudents() squirrel.SelectBuilder {
	return r.sb.Select(
		"s.id", "s.student_number", "s.first_name", "s.middle_name", "s.last_name", "s.email",
		"s.program_id", "p.name AS program_name", "s.major_id", "m.name AS major_name",
		"s.year_level_id", "y.name AS year_level_name", "s.created_at", "s.updated_at",
	).From("students s").
		Join("programs p ON p.id = s.program_id").
		Join("year_levels y ON y.id = s.year_level_id").
		LeftJoin("majors m ON m.id = s.major_id")
}

func scanStudent(row pgx.Row, s *models.Student) error {
	return row.Scan(
		&s.ID, &s.StudentNumber, &s.FirstName, &s.MiddleName, &s.LastName, &s.Email,
		&s.ProgramID, &s.ProgramName, &s.MajorID, &s.MajorName,
		&s.YearLevelID, &s.YearLevelName, &s.CreatedAt, &s.UpdatedAt,
	)
}

// listQueries builds the page query and its matching count query.
func (r *StudentRepository) listQueries(filter StudentFilter) (squirrel.SelectBuilder, squirrel.SelectBuilder) {
	where := squirrel.And{}
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		where = append(where, squirrel.Or{
			squirrel.ILike{"s.student_number": pattern},
			squirrel.ILike{"s.first_name": pattern},
			squirrel.ILike{"s.last_name": pattern},
		})
	}
	if filter.ProgramID != nil {
		where = append(where, squirrel.Eq{"s.program_id": *filter.ProgramID})
	}
	if filter.YearLevelID != nil {
		where = append(where, squirrel.Eq{"s.year_level_id": *filter.YearLevelID})
	}

	sortColumn, ok := studentSortColumns[filter.Sort]
	if !ok {
		sortColumn = studentSortColumns["last_name"]
	}
	direction := orderDirection(filter.Order)
	offset, limit := helpers.CalculateOffsetLimit(filter.Page, filter.Limit)

	page := r.selectStudents().
		Where(where).
		OrderBy(fmt.Sprintf("%s %s", sortColumn, direction), fmt.Sprintf("s.id %s", direction)).
		Limit(limit).
		Offset(offset)
	count := r.sb.Select("COUNT(*)").From("students s").Where(where)

	return page, count
}

// List returns one page of students and the total matching the filter.
func (r *StudentRepository) List(ctx context.Context, filter StudentFilter) ([]models.Student, int64, error) {
	pageQuery, countQuery := r.listQueries(filter)

	countSQL, countArgs, err := countQuery.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building count students SQL")
		return nil, 0, fmt.Errorf("failed to build count students query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count students: %w", err)
	}

	students := []models.Student{}
	if total == 0 {
		return students, 0, nil
	}

	sql, args, err := pageQuery.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list students SQL")
		return nil, 0, fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query students: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var s models.Student
		if err := scanStudent(rows, &s); err != nil {
			return nil, 0, fmt.Errorf("failed to scan student row: %w", err)
		}
		students = append(students, s)
	}

	return students, total, rows.Err()
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	sql, args, err := r.selectStudents().Where(squirrel.Eq{"s.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	var s models.Student
	if err := scanStudent(r.db.QueryRow(ctx, sql, args...), &s); err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to get student: %w", err)
	}
	return &s, nil
}

// Exists reports whether a student with id exists.
func (r *StudentRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return rowExists(ctx, r.db, r.sb, "students", id)
}

// StudentNumberTaken reports whether another student already uses number.
// excludeID is ignored when zero.
func (r *StudentRepository) StudentNumberTaken(ctx context.Context, number string, excludeID int64) (bool, error) {
	q := r.sb.Select("1").From("students").Where(squirrel.Eq{"student_number": number})
	if excludeID > 0 {
		q = q.Where(squirrel.NotEq{"id": excludeID})
	}
	return queryExists(ctx, r.db, q, "student number")
}

// Create inserts student and fills in its ID and timestamps.
func (r *StudentRepository) Create(ctx context.Context, s *models.Student) error {
	sql, args, err := r.sb.Insert("students").
		Columns("student_number", "first_name", "middle_name", "last_name", "email", "program_id", "major_id", "year_level_id").
		Values(s.StudentNumber, s.FirstName, s.MiddleName, s.LastName, s.Email, s.ProgramID, s.MajorID, s.YearLevelID).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create student SQL")
		return fmt.Errorf("failed to build create student query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return studentWriteError(err)
	}
	return nil
}

// updateQuery builds the partial update; only non-nil changes are set.
func (r *StudentRepository) updateQuery(id int64, changes models.StudentChanges) squirrel.UpdateBuilder {
	set := map[string]any{"updated_at": squirrel.Expr("NOW()")}
	if changes.StudentNumber != nil {
		set["student_number"] = *changes.StudentNumber
	}
	if changes.FirstName != nil {
		set["first_name"] = *changes.FirstName
	}
	if changes.MiddleName != nil {
		set["middle_name"] = *changes.MiddleName
	}
	if changes.LastName != nil {
		set["last_name"] = *changes.LastName
	}
	if changes.Email != nil {
		set["email"] = *changes.Email
	}
	if changes.ProgramID != nil {
		set["program_id"] = *changes.ProgramID
	}
	if changes.MajorID != nil {
		set["major_id"] = *changes.MajorID
	}
	if changes.YearLevelID != nil {
		set["year_level_id"] = *changes.YearLevelID
	}
	return r.sb.Update("students").SetMap(set).Where(squirrel.Eq{"id": id})
}

// Update applies changes to the student with id.
func (r *StudentRepository) Update(ctx context.Context, id int64, changes models.StudentChanges) error {
	sql, args, err := r.updateQuery(id, changes).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update student SQL")
		return fmt.Errorf("failed to build update student query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return studentWriteError(err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// HasReferences reports whether attendance records or payables point at the
// student.
func (r *StudentRepository) HasReferences(ctx context.Context, id int64) (bool, error) {
	records, err := queryExists(ctx, r.db,
		r.sb.Select("1").From("attendance_records").Where(squirrel.Eq{"student_id": id}), "student attendance records")
	if err != nil || records {
		return records, err
	}
	return queryExists(ctx, r.db,
		r.sb.Select("1").From("payables").Where(squirrel.Eq{"student_id": id}), "student payables")
}

// Delete deletes a student by ID
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("students").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete student query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyError(err, "") {
			return apperrors.ErrStudentHasReferences
		}
		return fmt.Errorf("failed to delete student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

func studentWriteError(err error) error {
	switch {
	case dberrors.IsDuplicateConstraintError(err, studentNumberConstraint):
		return apperrors.ErrStudentNumberExists
	case dberrors.IsForeignKeyError(err, ""):
		return apperrors.NewBadRequestError("Referenced program, major or year level does not exist")
	default:
		return fmt.Errorf("failed to write student: %w", err)
	}
}
