package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/revams/api/internal/app/models"
	"github.com/revams/api/internal/db"
	"github.com/revams/api/internal/pkg/apperrors"
	"github.com/revams/api/internal/pkg/dberrors"
	"github.com/revams/api/internal/pkg/logger"
)

const (
	fineUniqueIndex         = "payables_fine_student_event_key"
	receiptNumberConstraint = "receipts_receipt_number_key"
)

// PayableRepository handles payable and receipt database operations
type PayableRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewPayableRepository creates a new PayableRepository
func NewPayableRepository(database *db.PostgresDB) *PayableRepository {
	return &PayableRepository{db: database, sb: newStatementBuilder()}
}

// selectPayables computes the paid amount of each payable from its receipts.
func (r *PayableRepository) selectPayables() squirrel.SelectBuilder {
	return r.sb.Select(
		"p.id", "p.student_id", "p.event_id", "p.kind::text", "p.description",
		"p.amount::float8",
		"COALESCE((SELECT SUM(rc.amount) FROM receipts rc WHERE rc.payable_id = p.id), 0)::float8 AS paid_amount",
		"p.created_at",
	).From("payables p")
}

func scanPayable(row pgx.Row, p *models.Payable) error {
	if err := row.Scan(&p.ID, &p.StudentID, &p.EventID, &p.Kind, &p.Description, &p.Amount, &p.PaidAmount, &p.CreatedAt); err != nil {
		return err
	}
	p.Settle()
	return nil
}

// ListByStudent returns all payables of a student, oldest first.
func (r *PayableRepository) ListByStudent(ctx context.Context, studentID int64) ([]models.Payable, error) {
	sql, args, err := r.selectPayables().
		Where(squirrel.Eq{"p.student_id": studentID}).
		OrderBy("p.created_at ASC", "p.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list payables query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query payables: %w", err)
	}
	defer rows.Close()

	payables := []models.Payable{}
	for rows.Next() {
		var p models.Payable
		if err := scanPayable(rows, &p); err != nil {
			return nil, fmt.Errorf("failed to scan payable row: %w", err)
		}
		payables = append(payables, p)
	}
	return payables, rows.Err()
}

// GetByID retrieves a payable by ID
func (r *PayableRepository) GetByID(ctx context.Context, id int64) (*models.Payable, error) {
	return r.getByID(ctx, r.db.Pool, id)
}

func (r *PayableRepository) getByID(ctx context.Context, q querier, id int64) (*models.Payable, error) {
	sql, args, err := r.selectPayables().Where(squirrel.Eq{"p.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get payable query: %w", err)
	}

	var p models.Payable
	if err := scanPayable(q.QueryRow(ctx, sql, args...), &p); err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrPayableNotFound
		}
		return nil, fmt.Errorf("failed to get payable: %w", err)
	}
	return &p, nil
}

// FineAssessed reports whether a FINE payable exists for the student and event.
func (r *PayableRepository) FineAssessed(ctx context.Context, studentID, eventID int64) (bool, error) {
	return queryExists(ctx, r.db.Pool,
		r.sb.Select("1").From("payables").Where(squirrel.Eq{
			"student_id": studentID,
			"event_id":   eventID,
			"kind":       string(models.PayableFine),
		}),
		"assessed fine")
}

// Create inserts p and fills in its ID, timestamp and settlement.
func (r *PayableRepository) Create(ctx context.Context, p *models.Payable) error {
	sql, args, err := r.sb.Insert("payables").
		Columns("student_id", "event_id", "kind", "description", "amount").
		Values(p.StudentID, p.EventID, squirrel.Expr("?::payable_kind", string(p.Kind)), p.Description, p.Amount).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create payable SQL")
		return fmt.Errorf("failed to build create payable query: %w", err)
	}

	if err := r.db.Pool.QueryRow(ctx, sql, args...).Scan(&p.ID, &p.CreatedAt); err != nil {
		switch {
		case dberrors.IsDuplicateConstraintError(err, fineUniqueIndex):
			return apperrors.ErrFineAlreadyAssessed
		case dberrors.IsForeignKeyError(err, ""):
			return apperrors.NewBadRequestError("Referenced student or event does not exist")
		case dberrors.IsCheckViolation(err):
			return apperrors.ErrInvalidAmount
		default:
			return fmt.Errorf("failed to create payable: %w", err)
		}
	}
	p.PaidAmount = 0
	p.Settle()
	return nil
}

// AddReceipt records a payment against its payable. The payable row is locked
// for the duration so concurrent receipts cannot overpay it. Returns the
// payable as settled after the payment.
func (r *PayableRepository) AddReceipt(ctx context.Context, receipt *models.Receipt) (*models.Payable, error) {
	var settled *models.Payable

	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		lockSQL, lockArgs, err := r.sb.Select("amount::float8").From("payables").
			Where(squirrel.Eq{"id": receipt.PayableID}).
			Suffix("FOR UPDATE").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build lock payable query: %w", err)
		}

		var amount float64
		if err := tx.QueryRow(ctx, lockSQL, lockArgs...).Scan(&amount); err != nil {
			if dberrors.IsNoRows(err) {
				return apperrors.ErrPayableNotFound
			}
			return fmt.Errorf("failed to lock payable: %w", err)
		}

		paidSQL, paidArgs, err := r.sb.Select("COALESCE(SUM(amount), 0)::float8").From("receipts").
			Where(squirrel.Eq{"payable_id": receipt.PayableID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build paid amount query: %w", err)
		}

		var paid float64
		if err := tx.QueryRow(ctx, paidSQL, paidArgs...).Scan(&paid); err != nil {
			return fmt.Errorf("failed to sum receipts: %w", err)
		}

		if receipt.Amount > models.RoundMoney(amount-paid) {
			return apperrors.ErrReceiptExceedsBalance
		}

		insertSQL, insertArgs, err := r.sb.Insert("receipts").
			Columns("payable_id", "receipt_number", "amount").
			Values(receipt.PayableID, receipt.ReceiptNumber, receipt.Amount).
			Suffix("RETURNING id, paid_at").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build create receipt query: %w", err)
		}

		if err := tx.QueryRow(ctx, insertSQL, insertArgs...).Scan(&receipt.ID, &receipt.PaidAt); err != nil {
			switch {
			case dberrors.IsDuplicateConstraintError(err, receiptNumberConstraint):
				return apperrors.ErrReceiptNumberExists
			case dberrors.IsCheckViolation(err):
				return apperrors.ErrInvalidAmount
			}
			return fmt.Errorf("failed to create receipt: %w", err)
		}

		settled, err = r.getByID(ctx, tx, receipt.PayableID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return settled, nil
}
