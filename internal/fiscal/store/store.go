package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mfcarvalho/interco/internal/apperr"
	"github.com/mfcarvalho/interco/internal/fiscal"
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

const selectFiscalYearColumns = `
	id, label, starts_on, ends_on, closed_at, created_at, updated_at
`

func scanFiscalYear(s scanner) (*fiscal.FiscalYear, error) {
	var fy fiscal.FiscalYear

	if err := s.Scan(
		&fy.ID, &fy.Label, &fy.StartsOn, &fy.EndsOn, &fy.ClosedAt,
		&fy.CreatedAt, &fy.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &fy, nil
}

const selectPeriodColumns = `
	id, fiscal_year_id, year, month, period_number, label, starts_on, ends_on,
	status, locked_at, created_at, updated_at
`

func scanPeriod(s scanner) (*fiscal.Period, error) {
	var p fiscal.Period

	var status string

	if err := s.Scan(
		&p.ID, &p.FiscalYearID, &p.Year, &p.Month, &p.PeriodNumber, &p.Label,
		&p.StartsOn, &p.EndsOn, &status, &p.LockedAt, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}

	p.Status = fiscal.PeriodStatus(status)

	return &p, nil
}

func (s *Store) GetFiscalYear(ctx context.Context, id uuid.UUID) (*fiscal.FiscalYear, error) {
	query := `SELECT ` + selectFiscalYearColumns + ` FROM fiscal_years WHERE id = $1`

	fy, err := scanFiscalYear(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("fiscal year %s not found", id)
		}

		return nil, fmt.Errorf("getting fiscal year: %w", err)
	}

	return fy, nil
}

func (s *Store) ListFiscalYears(ctx context.Context) ([]*fiscal.FiscalYear, error) {
	query := `SELECT ` + selectFiscalYearColumns + ` FROM fiscal_years ORDER BY starts_on DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing fiscal years: %w", err)
	}
	defer rows.Close()

	var years []*fiscal.FiscalYear

	for rows.Next() {
		fy, err := scanFiscalYear(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning fiscal year: %w", err)
		}

		years = append(years, fy)
	}

	return years, rows.Err()
}

func (s *Store) GetPeriod(ctx context.Context, id uuid.UUID) (*fiscal.Period, error) {
	query := `SELECT ` + selectPeriodColumns + ` FROM periods WHERE id = $1`

	p, err := scanPeriod(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("period %s not found", id)
		}

		return nil, fmt.Errorf("getting period: %w", err)
	}

	return p, nil
}

func (s *Store) ListPeriods(ctx context.Context, fiscalYearID uuid.UUID) ([]*fiscal.Period, error) {
	query := `SELECT ` + selectPeriodColumns + ` FROM periods WHERE fiscal_year_id = $1 ORDER BY starts_on ASC`

	rows, err := s.db.QueryContext(ctx, query, fiscalYearID)
	if err != nil {
		return nil, fmt.Errorf("listing periods: %w", err)
	}
	defer rows.Close()

	var periods []*fiscal.Period

	for rows.Next() {
		p, err := scanPeriod(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning period: %w", err)
		}

		periods = append(periods, p)
	}

	return periods, rows.Err()
}

type calendarTx struct {
	tx *sql.Tx
}

func (s *Store) Begin(ctx context.Context) (fiscal.Tx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning calendar tx: %w", err)
	}

	return &calendarTx{tx: dbTx}, nil
}

func (t *calendarTx) Commit() error   { return t.tx.Commit() }
func (t *calendarTx) Rollback() error { return t.tx.Rollback() }

func (t *calendarTx) LatestFiscalYearForUpdate(ctx context.Context) (*fiscal.FiscalYear, error) {
	query := `SELECT ` + selectFiscalYearColumns + `
		FROM fiscal_years ORDER BY starts_on DESC LIMIT 1 FOR UPDATE`

	fy, err := scanFiscalYear(t.tx.QueryRowContext(ctx, query))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("locking latest fiscal year: %w", err)
	}

	return fy, nil
}

func (t *calendarTx) GetFiscalYearForUpdate(ctx context.Context, id uuid.UUID) (*fiscal.FiscalYear, error) {
	query := `SELECT ` + selectFiscalYearColumns + ` FROM fiscal_years WHERE id = $1 FOR UPDATE`

	fy, err := scanFiscalYear(t.tx.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("fiscal year %s not found", id)
		}

		return nil, fmt.Errorf("locking fiscal year: %w", err)
	}

	return fy, nil
}

func (t *calendarTx) GetPeriodForUpdate(ctx context.Context, id uuid.UUID) (*fiscal.Period, error) {
	query := `SELECT ` + selectPeriodColumns + ` FROM periods WHERE id = $1 FOR UPDATE`

	p, err := scanPeriod(t.tx.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("period %s not found", id)
		}

		return nil, fmt.Errorf("locking period: %w", err)
	}

	return p, nil
}

func (t *calendarTx) CreateFiscalYear(ctx context.Context, fy *fiscal.FiscalYear) error {
	query := `
		INSERT INTO fiscal_years (label, starts_on, ends_on, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, created_at
	`

	err := t.tx.QueryRowContext(ctx, query, fy.Label, fy.StartsOn, fy.EndsOn).
		Scan(&fy.ID, &fy.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating fiscal year: %w", err)
	}

	return nil
}

func (t *calendarTx) CreatePeriod(ctx context.Context, p *fiscal.Period) error {
	query := `
		INSERT INTO periods (fiscal_year_id, year, month, period_number, label,
			starts_on, ends_on, status, locked_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING id, created_at
	`

	err := t.tx.QueryRowContext(ctx, query,
		p.FiscalYearID, p.Year, p.Month, p.PeriodNumber, p.Label,
		p.StartsOn, p.EndsOn, string(p.Status), p.LockedAt,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating period: %w", err)
	}

	return nil
}

func (t *calendarTx) CloseAllPeriods(ctx context.Context, fiscalYearID uuid.UUID, lockedAt time.Time) error {
	query := `
		UPDATE periods
		SET status = $1,
			locked_at = COALESCE(locked_at, $2),
			updated_at = NOW()
		WHERE fiscal_year_id = $3
	`

	if _, err := t.tx.ExecContext(ctx, query, string(fiscal.PeriodClosed), lockedAt, fiscalYearID); err != nil {
		return fmt.Errorf("closing periods: %w", err)
	}

	return nil
}

func (t *calendarTx) LockOtherPeriods(ctx context.Context, fiscalYearID, exceptID uuid.UUID, lockedAt time.Time) error {
	query := `
		UPDATE periods
		SET status = $1, locked_at = $2, updated_at = NOW()
		WHERE fiscal_year_id = $3 AND id != $4 AND locked_at IS NULL
	`

	if _, err := t.tx.ExecContext(ctx, query, string(fiscal.PeriodClosed), lockedAt, fiscalYearID, exceptID); err != nil {
		return fmt.Errorf("locking sibling periods: %w", err)
	}

	return nil
}

func (t *calendarTx) SetPeriodLock(ctx context.Context, periodID uuid.UUID, status fiscal.PeriodStatus, lockedAt *time.Time) error {
	query := `
		UPDATE periods
		SET status = $1, locked_at = $2, updated_at = NOW()
		WHERE id = $3
	`

	if _, err := t.tx.ExecContext(ctx, query, string(status), lockedAt, periodID); err != nil {
		return fmt.Errorf("setting period lock: %w", err)
	}

	return nil
}

func (t *calendarTx) MarkFiscalYearClosed(ctx context.Context, id uuid.UUID, closedAt time.Time) error {
	query := `
		UPDATE fiscal_years
		SET closed_at = $1, updated_at = NOW()
		WHERE id = $2 AND closed_at IS NULL
	`

	if _, err := t.tx.ExecContext(ctx, query, closedAt, id); err != nil {
		return fmt.Errorf("marking fiscal year closed: %w", err)
	}

	return nil
}
