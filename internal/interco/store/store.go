package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mfcarvalho/interco/internal/apperr"
	"github.com/mfcarvalho/interco/internal/interco"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

const selectTransactionColumns = `
	id, period_id, transaction_template_id, financial_statement_id,
	sender_company_id, receiver_company_id, currency,
	created_from_default_amount, created_at
`

func scanTransaction(s scanner) (*interco.Transaction, error) {
	var t interco.Transaction

	if err := s.Scan(
		&t.ID, &t.PeriodID, &t.TemplateID, &t.FinancialStatementID,
		&t.SenderCompanyID, &t.ReceiverCompanyID, &t.Currency,
		&t.CreatedFromDefaultAmount, &t.CreatedAt,
	); err != nil {
		return nil, err
	}

	return &t, nil
}

const selectLegColumns = `
	id, ic_transaction_id, company_id, counterparty_company_id,
	leg_role, leg_nature, hfm_account_id, status,
	prepared_by_id, prepared_at, reviewed_by_id, reviewed_at,
	amount, adjustment_amount, agreement_status_id, disagree_reason,
	counterparty_amount_snapshot, created_at, updated_at
`

func scanLeg(s scanner) (*interco.Leg, error) {
	var leg interco.Leg

	var role, nature, status, adjustment string

	var amount, snapshot sql.NullString

	if err := s.Scan(
		&leg.ID, &leg.TransactionID, &leg.CompanyID, &leg.CounterpartyCompanyID,
		&role, &nature, &leg.AccountID, &status,
		&leg.PreparedByID, &leg.PreparedAt, &leg.ReviewedByID, &leg.ReviewedAt,
		&amount, &adjustment, &leg.AgreementStatusID, &leg.DisagreeReason,
		&snapshot, &leg.CreatedAt, &leg.UpdatedAt,
	); err != nil {
		return nil, err
	}

	leg.Role = interco.Role(role)
	leg.Nature = interco.Nature(nature)
	leg.Status = interco.Status(status)

	var err error

	if leg.Amount, err = parseNullDecimal(amount); err != nil {
		return nil, fmt.Errorf("parsing leg amount: %w", err)
	}

	if leg.AdjustmentAmount, err = decimal.NewFromString(adjustment); err != nil {
		return nil, fmt.Errorf("parsing adjustment amount: %w", err)
	}

	if leg.CounterpartyAmountSnapshot, err = parseNullDecimal(snapshot); err != nil {
		return nil, fmt.Errorf("parsing counterparty snapshot: %w", err)
	}

	return &leg, nil
}

func parseNullDecimal(v sql.NullString) (*decimal.Decimal, error) {
	if !v.Valid {
		return nil, nil
	}

	d, err := decimal.NewFromString(v.String)
	if err != nil {
		return nil, err
	}

	return &d, nil
}

func decimalArg(d *decimal.Decimal) any {
	if d == nil {
		return nil
	}

	return d.String()
}

func (s *Store) GetLeg(ctx context.Context, id uuid.UUID) (*interco.Leg, error) {
	query := `SELECT ` + selectLegColumns + ` FROM ic_transaction_legs WHERE id = $1`

	leg, err := scanLeg(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("leg %s not found", id)
		}

		return nil, fmt.Errorf("getting leg: %w", err)
	}

	return leg, nil
}

func (s *Store) GetTransaction(ctx context.Context, id uuid.UUID) (*interco.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + ` FROM ic_transactions WHERE id = $1`

	txn, err := scanTransaction(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("transaction %s not found", id)
		}

		return nil, fmt.Errorf("getting transaction: %w", err)
	}

	legs, err := listLegs(ctx, s.db, txn.ID)
	if err != nil {
		return nil, err
	}

	txn.Legs = legs

	return txn, nil
}

func (s *Store) ListTransactionsForPeriod(ctx context.Context, periodID uuid.UUID) ([]*interco.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM ic_transactions WHERE period_id = $1 ORDER BY created_at ASC`

	rows, err := s.db.QueryContext(ctx, query, periodID)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var txns []*interco.Transaction

	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		txns = append(txns, txn)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, txn := range txns {
		legs, err := listLegs(ctx, s.db, txn.ID)
		if err != nil {
			return nil, err
		}

		txn.Legs = legs
	}

	return txns, nil
}

func listLegs(ctx context.Context, q querier, transactionID uuid.UUID) ([]*interco.Leg, error) {
	query := `SELECT ` + selectLegColumns + `
		FROM ic_transaction_legs WHERE ic_transaction_id = $1 ORDER BY leg_role DESC`

	rows, err := q.QueryContext(ctx, query, transactionID)
	if err != nil {
		return nil, fmt.Errorf("listing legs: %w", err)
	}
	defer rows.Close()

	var legs []*interco.Leg

	for rows.Next() {
		leg, err := scanLeg(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning leg: %w", err)
		}

		legs = append(legs, leg)
	}

	return legs, rows.Err()
}

func (s *Store) ListHistory(ctx context.Context, legID uuid.UUID) ([]*interco.StatusHistory, error) {
	query := `
		SELECT id, ic_transaction_leg_id, from_status, to_status, changed_by_id, note, created_at
		FROM ic_leg_status_history
		WHERE ic_transaction_leg_id = $1
		ORDER BY created_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query, legID)
	if err != nil {
		return nil, fmt.Errorf("listing status history: %w", err)
	}
	defer rows.Close()

	var history []*interco.StatusHistory

	for rows.Next() {
		var h interco.StatusHistory

		var from, to string

		if err := rows.Scan(&h.ID, &h.LegID, &from, &to, &h.ChangedByID, &h.Note, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning status history: %w", err)
		}

		h.FromStatus = interco.Status(from)
		h.ToStatus = interco.Status(to)

		history = append(history, &h)
	}

	return history, rows.Err()
}

type legTx struct {
	tx *sql.Tx
}

func (s *Store) Begin(ctx context.Context) (interco.Tx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning leg tx: %w", err)
	}

	return &legTx{tx: dbTx}, nil
}

func (t *legTx) Commit() error   { return t.tx.Commit() }
func (t *legTx) Rollback() error { return t.tx.Rollback() }

func (t *legTx) GetLegForUpdate(ctx context.Context, id uuid.UUID) (*interco.Leg, error) {
	query := `SELECT ` + selectLegColumns + ` FROM ic_transaction_legs WHERE id = $1 FOR UPDATE`

	leg, err := scanLeg(t.tx.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("leg %s not found", id)
		}

		return nil, fmt.Errorf("locking leg: %w", err)
	}

	return leg, nil
}

func (t *legTx) GetSiblingLeg(ctx context.Context, transactionID uuid.UUID, role interco.Role) (*interco.Leg, error) {
	query := `SELECT ` + selectLegColumns + `
		FROM ic_transaction_legs WHERE ic_transaction_id = $1 AND leg_role = $2`

	leg, err := scanLeg(t.tx.QueryRowContext(ctx, query, transactionID, string(role)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("getting sibling leg: %w", err)
	}

	return leg, nil
}

func (t *legTx) UpdateSenderAmount(ctx context.Context, legID uuid.UUID, amount, adjustment decimal.Decimal) error {
	query := `
		UPDATE ic_transaction_legs
		SET amount = $1, adjustment_amount = $2, updated_at = NOW()
		WHERE id = $3
	`

	if _, err := t.tx.ExecContext(ctx, query, amount.String(), adjustment.String(), legID); err != nil {
		return fmt.Errorf("updating sender amount: %w", err)
	}

	return nil
}

func (t *legTx) SetLegAmount(ctx context.Context, legID uuid.UUID, amount decimal.Decimal) error {
	query := `UPDATE ic_transaction_legs SET amount = $1, updated_at = NOW() WHERE id = $2`

	if _, err := t.tx.ExecContext(ctx, query, amount.String(), legID); err != nil {
		return fmt.Errorf("setting leg amount: %w", err)
	}

	return nil
}

func (t *legTx) UpdateReceiverDecision(ctx context.Context, legID uuid.UUID, amount decimal.Decimal, agreementStatusID uuid.UUID, reason *string) error {
	query := `
		UPDATE ic_transaction_legs
		SET amount = $1, agreement_status_id = $2, disagree_reason = $3, updated_at = NOW()
		WHERE id = $4
	`

	if _, err := t.tx.ExecContext(ctx, query, amount.String(), agreementStatusID, reason, legID); err != nil {
		return fmt.Errorf("updating receiver decision: %w", err)
	}

	return nil
}

func (t *legTx) MarkSubmitted(ctx context.Context, legID uuid.UUID, status interco.Status, actorID uuid.UUID, at time.Time) error {
	query := `
		UPDATE ic_transaction_legs
		SET status = $1, prepared_by_id = $2, prepared_at = $3, updated_at = NOW()
		WHERE id = $4
	`

	if _, err := t.tx.ExecContext(ctx, query, string(status), actorID, at, legID); err != nil {
		return fmt.Errorf("marking leg submitted: %w", err)
	}

	return nil
}

func (t *legTx) MarkReviewed(ctx context.Context, legID uuid.UUID, status interco.Status, actorID uuid.UUID, at time.Time, counterpartySnapshot *decimal.Decimal, disagreeReason *string) error {
	query := `
		UPDATE ic_transaction_legs
		SET status = $1, reviewed_by_id = $2, reviewed_at = $3,
			counterparty_amount_snapshot = COALESCE($4, counterparty_amount_snapshot),
			disagree_reason = COALESCE($5, disagree_reason),
			updated_at = NOW()
		WHERE id = $6
	`

	_, err := t.tx.ExecContext(ctx, query,
		string(status), actorID, at, decimalArg(counterpartySnapshot), disagreeReason, legID)
	if err != nil {
		return fmt.Errorf("marking leg reviewed: %w", err)
	}

	return nil
}

func (t *legTx) AppendHistory(ctx context.Context, h *interco.StatusHistory) error {
	query := `
		INSERT INTO ic_leg_status_history (ic_transaction_leg_id, from_status, to_status, changed_by_id, note, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

	err := t.tx.QueryRowContext(ctx, query,
		h.LegID, string(h.FromStatus), string(h.ToStatus), h.ChangedByID, h.Note,
	).Scan(&h.ID, &h.CreatedAt)
	if err != nil {
		return fmt.Errorf("appending status history: %w", err)
	}

	return nil
}

// GetOrCreateTransaction inserts the (period, template) transaction if it
// does not exist yet. Returns true when this call created the row.
func (t *legTx) GetOrCreateTransaction(ctx context.Context, txn *interco.Transaction) (bool, error) {
	query := `
		INSERT INTO ic_transactions (period_id, transaction_template_id,
			financial_statement_id, sender_company_id, receiver_company_id,
			currency, created_from_default_amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		ON CONFLICT (period_id, transaction_template_id) DO NOTHING
		RETURNING id, created_at
	`

	err := t.tx.QueryRowContext(ctx, query,
		txn.PeriodID, txn.TemplateID, txn.FinancialStatementID,
		txn.SenderCompanyID, txn.ReceiverCompanyID,
		txn.Currency, txn.CreatedFromDefaultAmount,
	).Scan(&txn.ID, &txn.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}

		return false, fmt.Errorf("creating transaction: %w", err)
	}

	return true, nil
}

func (t *legTx) CreateLeg(ctx context.Context, leg *interco.Leg) error {
	query := `
		INSERT INTO ic_transaction_legs (ic_transaction_id, company_id,
			counterparty_company_id, leg_role, leg_nature, hfm_account_id,
			status, amount, adjustment_amount, agreement_status_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING id, created_at
	`

	err := t.tx.QueryRowContext(ctx, query,
		leg.TransactionID, leg.CompanyID, leg.CounterpartyCompanyID,
		string(leg.Role), string(leg.Nature), leg.AccountID,
		string(leg.Status), decimalArg(leg.Amount), leg.AdjustmentAmount.String(),
		leg.AgreementStatusID,
	).Scan(&leg.ID, &leg.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating leg: %w", err)
	}

	return nil
}
