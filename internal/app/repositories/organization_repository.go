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
)

// OrganizationRepository handles organization database operations
type OrganizationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewOrganizationRepository creates a new OrganizationRepository
func NewOrganizationRepository(db *pgxpool.Pool) *OrganizationRepository {
	return &OrganizationRepository{db: db, sb: newStatementBuilder()}
}

func scanOrganization(row pgx.Row, o *models.Organization) error {
	return row.Scan(&o.ID, &o.Name, &o.Acronym)
}

// List returns all organizations by name.
func (r *OrganizationRepository) List(ctx context.Context) ([]models.Organization, error) {
	return collect(ctx, r.db, r.sb.Select("id", "name", "acronym").From("organizations").OrderBy("name"),
		"organizations", scanOrganization)
}

// GetByID retrieves an organization by ID
func (r *OrganizationRepository) GetByID(ctx context.Context, id int64) (*models.Organization, error) {
	sql, args, err := r.sb.Select("id", "name", "acronym").From("organizations").
		Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get organization query: %w", err)
	}

	var o models.Organization
	if err := scanOrganization(r.db.QueryRow(ctx, sql, args...), &o); err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	return &o, nil
}

// Exists reports whether an organization with id exists.
func (r *OrganizationRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return rowExists(ctx, r.db, r.sb, "organizations", id)
}

// Ensure creates the organization if missing and returns its id.
func (r *OrganizationRepository) Ensure(ctx context.Context, o models.Organization) (int64, error) {
	sql, args, err := r.sb.Insert("organizations").
		Columns("name", "acronym").
		Values(o.Name, o.Acronym).
		Suffix("ON CONFLICT (name) DO UPDATE SET acronym = EXCLUDED.acronym RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build ensure organization query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to ensure organization: %w", err)
	}
	return id, nil
}
