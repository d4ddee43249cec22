package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"

	"github.com/revams/api/internal/db"
	"github.com/revams/api/internal/pkg/logger"
)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository          *StudentRepository
	EventRepository            *EventRepository
	AttendanceSlotRepository   *AttendanceSlotRepository
	AttendanceRecordRepository *AttendanceRecordRepository
	PayableRepository          *PayableRepository
	ReferenceRepository        *ReferenceRepository
	OrganizationRepository     *OrganizationRepository
	OrgChartRepository         *OrgChartRepository
}

// NewRepositories initializes all repositories
func NewRepositories(database *db.PostgresDB, redisClient *redis.Client, keyPrefix string) *Repositories {
	return &Repositories{
		StudentRepository:          NewStudentRepository(database.Pool),
		EventRepository:            NewEventRepository(database.Pool),
		AttendanceSlotRepository:   NewAttendanceSlotRepository(database.Pool),
		AttendanceRecordRepository: NewAttendanceRecordRepository(database.Pool),
		PayableRepository:          NewPayableRepository(database),
		ReferenceRepository:        NewReferenceRepository(database.Pool),
		OrganizationRepository:     NewOrganizationRepository(database.Pool),
		OrgChartRepository:         NewOrgChartRepository(redisClient, keyPrefix),
	}
}

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func newStatementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// likePattern wraps s for a substring ILIKE match, escaping LIKE wildcards.
func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}

// orderDirection normalises a user supplied sort order.
func orderDirection(order string) string {
	if strings.EqualFold(order, "desc") {
		return "DESC"
	}
	return "ASC"
}

// existsQuery wraps builder in SELECT EXISTS (...).
func existsQuery(builder squirrel.SelectBuilder) squirrel.SelectBuilder {
	return builder.Prefix("SELECT EXISTS (").Suffix(")").Limit(1)
}

// queryExists runs an EXISTS builder and scans its single boolean.
func queryExists(ctx context.Context, q querier, builder squirrel.SelectBuilder, what string) (bool, error) {
	sql, args, err := existsQuery(builder).ToSql()
	if err != nil {
		logger.Error().Err(err).Str("check", what).Msg("Error building exists SQL")
		return false, fmt.Errorf("failed to build %s query: %w", what, err)
	}

	var exists bool
	if err := q.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check %s: %w", what, err)
	}
	return exists, nil
}

// rowExists reports whether table has a row with the given id.
func rowExists(ctx context.Context, q querier, sb squirrel.StatementBuilderType, table string, id int64) (bool, error) {
	return queryExists(ctx, q, sb.Select("1").From(table).Where(squirrel.Eq{"id": id}), table+" existence")
}
