package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mfcarvalho/interco/internal/apperr"
	"github.com/mfcarvalho/interco/internal/template"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectTemplateColumns = `
	id, financial_statement_id, sender_company_id, receiver_company_id,
	sender_account_category_id, sender_hfm_account_id,
	receiver_account_category_id, receiver_hfm_account_id,
	description, currency, default_amount, is_active, created_at, updated_at
`

func scanTemplate(s scanner) (*template.Template, error) {
	var t template.Template

	var defaultAmount sql.NullString

	if err := s.Scan(
		&t.ID, &t.FinancialStatementID, &t.SenderCompanyID, &t.ReceiverCompanyID,
		&t.SenderCategoryID, &t.SenderAccountID,
		&t.ReceiverCategoryID, &t.ReceiverAccountID,
		&t.Description, &t.Currency, &defaultAmount, &t.IsActive,
		&t.CreatedAt, &t.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if defaultAmount.Valid {
		amount, err := decimal.NewFromString(defaultAmount.String)
		if err != nil {
			return nil, fmt.Errorf("parsing default amount: %w", err)
		}

		t.DefaultAmount = &amount
	}

	return &t, nil
}

func defaultAmountArg(t *template.Template) any {
	if t.DefaultAmount == nil {
		return nil
	}

	return t.DefaultAmount.String()
}

func (s *Store) CreateTemplate(ctx context.Context, t *template.Template) error {
	query := `
		INSERT INTO transaction_templates (financial_statement_id,
			sender_company_id, receiver_company_id,
			sender_account_category_id, sender_hfm_account_id,
			receiver_account_category_id, receiver_hfm_account_id,
			description, currency, default_amount, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		t.FinancialStatementID, t.SenderCompanyID, t.ReceiverCompanyID,
		t.SenderCategoryID, t.SenderAccountID,
		t.ReceiverCategoryID, t.ReceiverAccountID,
		t.Description, t.Currency, defaultAmountArg(t), t.IsActive,
	).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating template: %w", err)
	}

	return nil
}

func (s *Store) GetTemplate(ctx context.Context, id uuid.UUID) (*template.Template, error) {
	query := `SELECT ` + selectTemplateColumns + ` FROM transaction_templates WHERE id = $1`

	t, err := scanTemplate(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("template %s not found", id)
		}

		return nil, fmt.Errorf("getting template: %w", err)
	}

	return t, nil
}

func (s *Store) UpdateTemplate(ctx context.Context, t *template.Template) error {
	query := `
		UPDATE transaction_templates
		SET financial_statement_id = $1, sender_company_id = $2, receiver_company_id = $3,
			sender_account_category_id = $4, sender_hfm_account_id = $5,
			receiver_account_category_id = $6, receiver_hfm_account_id = $7,
			description = $8, currency = $9, default_amount = $10, updated_at = NOW()
		WHERE id = $11
	`

	_, err := s.db.ExecContext(ctx, query,
		t.FinancialStatementID, t.SenderCompanyID, t.ReceiverCompanyID,
		t.SenderCategoryID, t.SenderAccountID,
		t.ReceiverCategoryID, t.ReceiverAccountID,
		t.Description, t.Currency, defaultAmountArg(t), t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating template: %w", err)
	}

	return nil
}

func (s *Store) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	query := `UPDATE transaction_templates SET is_active = $1, updated_at = NOW() WHERE id = $2`

	if _, err := s.db.ExecContext(ctx, query, active, id); err != nil {
		return fmt.Errorf("setting template active flag: %w", err)
	}

	return nil
}

func (s *Store) ListTemplates(ctx context.Context, filter template.ListFilter) ([]*template.Template, error) {
	query := `SELECT ` + selectTemplateColumns + ` FROM transaction_templates WHERE 1=1`

	var args []any

	argIdx := 1

	if filter.FinancialStatementID != nil {
		query += fmt.Sprintf(" AND financial_statement_id = $%d", argIdx)

		args = append(args, *filter.FinancialStatementID)
		argIdx++
	}

	if filter.ActiveOnly {
		query += " AND is_active"
	}

	query += " ORDER BY created_at ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}
	defer rows.Close()

	var templates []*template.Template

	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning template: %w", err)
		}

		templates = append(templates, t)
	}

	return templates, rows.Err()
}
