package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mfcarvalho/interco/internal/masterdata"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Load reads the full reference-data set. Reference tables are small and
// seeded once, so a full read per operation is fine.
func (s *Store) Load(ctx context.Context) (*masterdata.Snapshot, error) {
	statements, err := s.loadStatements(ctx)
	if err != nil {
		return nil, err
	}

	categories, err := s.loadCategories(ctx)
	if err != nil {
		return nil, err
	}

	accounts, err := s.loadAccounts(ctx)
	if err != nil {
		return nil, err
	}

	pairs, err := s.loadPairs(ctx)
	if err != nil {
		return nil, err
	}

	agreements, err := s.loadAgreementStatuses(ctx)
	if err != nil {
		return nil, err
	}

	companies, err := s.loadCompanies(ctx)
	if err != nil {
		return nil, err
	}

	return masterdata.NewSnapshot(statements, categories, accounts, pairs, agreements, companies), nil
}

func (s *Store) loadStatements(ctx context.Context) ([]masterdata.FinancialStatement, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, display_label FROM financial_statements`)
	if err != nil {
		return nil, fmt.Errorf("loading financial statements: %w", err)
	}
	defer rows.Close()

	var out []masterdata.FinancialStatement

	for rows.Next() {
		var st masterdata.FinancialStatement
		if err := rows.Scan(&st.ID, &st.Name, &st.DisplayLabel); err != nil {
			return nil, fmt.Errorf("scanning financial statement: %w", err)
		}

		out = append(out, st)
	}

	return out, rows.Err()
}

func (s *Store) loadCategories(ctx context.Context) ([]masterdata.AccountCategory, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, financial_statement_id, name, display_label FROM account_categories`)
	if err != nil {
		return nil, fmt.Errorf("loading account categories: %w", err)
	}
	defer rows.Close()

	var out []masterdata.AccountCategory

	for rows.Next() {
		var c masterdata.AccountCategory
		if err := rows.Scan(&c.ID, &c.FinancialStatementID, &c.Name, &c.DisplayLabel); err != nil {
			return nil, fmt.Errorf("scanning account category: %w", err)
		}

		out = append(out, c)
	}

	return out, rows.Err()
}

func (s *Store) loadAccounts(ctx context.Context) ([]masterdata.HfmAccount, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, account_category_id, name, display_label FROM hfm_accounts`)
	if err != nil {
		return nil, fmt.Errorf("loading hfm accounts: %w", err)
	}
	defer rows.Close()

	var out []masterdata.HfmAccount

	for rows.Next() {
		var a masterdata.HfmAccount
		if err := rows.Scan(&a.ID, &a.AccountCategoryID, &a.Name, &a.DisplayLabel); err != nil {
			return nil, fmt.Errorf("scanning hfm account: %w", err)
		}

		out = append(out, a)
	}

	return out, rows.Err()
}

func (s *Store) loadPairs(ctx context.Context) ([]masterdata.AccountPair, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, financial_statement_id, sender_hfm_account_id, receiver_hfm_account_id FROM hfm_account_pairs`)
	if err != nil {
		return nil, fmt.Errorf("loading account pairs: %w", err)
	}
	defer rows.Close()

	var out []masterdata.AccountPair

	for rows.Next() {
		var p masterdata.AccountPair
		if err := rows.Scan(&p.ID, &p.FinancialStatementID, &p.SenderAccountID, &p.ReceiverAccountID); err != nil {
			return nil, fmt.Errorf("scanning account pair: %w", err)
		}

		out = append(out, p)
	}

	return out, rows.Err()
}

func (s *Store) loadAgreementStatuses(ctx context.Context) ([]masterdata.AgreementStatus, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, display_label FROM agreement_statuses`)
	if err != nil {
		return nil, fmt.Errorf("loading agreement statuses: %w", err)
	}
	defer rows.Close()

	var out []masterdata.AgreementStatus

	for rows.Next() {
		var a masterdata.AgreementStatus
		if err := rows.Scan(&a.ID, &a.Name, &a.DisplayLabel); err != nil {
			return nil, fmt.Errorf("scanning agreement status: %w", err)
		}

		out = append(out, a)
	}

	return out, rows.Err()
}

func (s *Store) loadCompanies(ctx context.Context) ([]masterdata.Company, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, code FROM companies`)
	if err != nil {
		return nil, fmt.Errorf("loading companies: %w", err)
	}
	defer rows.Close()

	var out []masterdata.Company

	for rows.Next() {
		var c masterdata.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.Code); err != nil {
			return nil, fmt.Errorf("scanning company: %w", err)
		}

		out = append(out, c)
	}

	return out, rows.Err()
}
