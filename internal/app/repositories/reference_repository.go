package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/revams/api/internal/app/models"
)

// ReferenceRepository reads the lookup tables students are classified by:
// degrees, programs, majors and year levels.
type ReferenceRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewReferenceRepository creates a new ReferenceRepository
func NewReferenceRepository(db *pgxpool.Pool) *ReferenceRepository {
	return &ReferenceRepository{db: db, sb: newStatementBuilder()}
}

func collect[T any](ctx context.Context, q querier, builder squirrel.SelectBuilder, what string, scan func(pgx.Row, *T) error) ([]T, error) {
	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list %s query: %w", what, err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", what, err)
	}
	defer rows.Close()

	items := []T{}
	for rows.Next() {
		var item T
		if err := scan(rows, &item); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", what, err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// ListDegrees returns all degrees by name.
func (r *ReferenceRepository) ListDegrees(ctx context.Context) ([]models.Degree, error) {
	return collect(ctx, r.db, r.sb.Select("id", "name").From("degrees").OrderBy("name"), "degrees",
		func(row pgx.Row, d *models.Degree) error { return row.Scan(&d.ID, &d.Name) })
}

// ListPrograms returns all programs by code.
func (r *ReferenceRepository) ListPrograms(ctx context.Context) ([]models.Program, error) {
	return collect(ctx, r.db, r.sb.Select("id", "code", "name", "degree_id").From("programs").OrderBy("code"), "programs",
		func(row pgx.Row, p *models.Program) error { return row.Scan(&p.ID, &p.Code, &p.Name, &p.DegreeID) })
}

// ListMajors returns majors, optionally only those of one program.
func (r *ReferenceRepository) ListMajors(ctx context.Context, programID *int64) ([]models.Major, error) {
	q := r.sb.Select("id", "program_id", "name").From("majors").OrderBy("name")
	if programID != nil {
		q = q.Where(squirrel.Eq{"program_id": *programID})
	}
	return collect(ctx, r.db, q, "majors",
		func(row pgx.Row, m *models.Major) error { return row.Scan(&m.ID, &m.ProgramID, &m.Name) })
}

// ListYearLevels returns year levels in ascending order.
func (r *ReferenceRepository) ListYearLevels(ctx context.Context) ([]models.YearLevel, error) {
	return collect(ctx, r.db, r.sb.Select("id", "level", "name").From("year_levels").OrderBy("level"), "year levels",
		func(row pgx.Row, y *models.YearLevel) error { return row.Scan(&y.ID, &y.Level, &y.Name) })
}

func (r *ReferenceRepository) ProgramExists(ctx context.Context, id int64) (bool, error) {
	return rowExists(ctx, r.db, r.sb, "programs", id)
}

func (r *ReferenceRepository) YearLevelExists(ctx context.Context, id int64) (bool, error) {
	return rowExists(ctx, r.db, r.sb, "year_levels", id)
}

// MajorBelongsTo reports whether major id exists and is offered by programID.
func (r *ReferenceRepository) MajorBelongsTo(ctx context.Context, id, programID int64) (bool, error) {
	return queryExists(ctx, r.db,
		r.sb.Select("1").From("majors").Where(squirrel.Eq{"id": id, "program_id": programID}), "major")
}

// upsertReturningID inserts a row keyed by the conflict columns, or touches the
// existing one, and returns its id either way.
func (r *ReferenceRepository) upsertReturningID(ctx context.Context, builder squirrel.InsertBuilder, conflict, touch string) (int64, error) {
	sql, args, err := builder.
		Suffix(fmt.Sprintf("ON CONFLICT (%s) DO UPDATE SET %s = EXCLUDED.%s RETURNING id", conflict, touch, touch)).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build upsert query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to upsert reference row: %w", err)
	}
	return id, nil
}

// EnsureDegree creates the degree if missing and returns its id.
func (r *ReferenceRepository) EnsureDegree(ctx context.Context, name string) (int64, error) {
	return r.upsertReturningID(ctx,
		r.sb.Insert("degrees").Columns("name").Values(name), "name", "name")
}

// EnsureProgram creates or renames the program with p.Code and returns its id.
func (r *ReferenceRepository) EnsureProgram(ctx context.Context, p models.Program) (int64, error) {
	return r.upsertReturningID(ctx,
		r.sb.Insert("programs").Columns("code", "name", "degree_id").Values(p.Code, p.Name, p.DegreeID), "code", "name")
}

// EnsureMajor creates the major under its program if missing.
func (r *ReferenceRepository) EnsureMajor(ctx context.Context, m models.Major) (int64, error) {
	return r.upsertReturningID(ctx,
		r.sb.Insert("majors").Columns("program_id", "name").Values(m.ProgramID, m.Name), "program_id, name", "name")
}

// EnsureYearLevel creates or renames the year level with y.Level.
func (r *ReferenceRepository) EnsureYearLevel(ctx context.Context, y models.YearLevel) (int64, error) {
	return r.upsertReturningID(ctx,
		r.sb.Insert("year_levels").Columns("level", "name").Values(y.Level, y.Name), "level", "name")
}
