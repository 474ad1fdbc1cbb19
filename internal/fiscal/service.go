package fiscal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mfcarvalho/interco/internal/apperr"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=fiscal
type Repository interface {
	GetFiscalYear(ctx context.Context, id uuid.UUID) (*FiscalYear, error)
	ListFiscalYears(ctx context.Context) ([]*FiscalYear, error)
	GetPeriod(ctx context.Context, id uuid.UUID) (*Period, error)
	ListPeriods(ctx context.Context, fiscalYearID uuid.UUID) ([]*Period, error)

	Begin(ctx context.Context) (Tx, error)
}

// Tx is one atomic calendar mutation. ForUpdate reads take row locks so
// concurrent year creation or period unlocks serialize on the contended rows.
type Tx interface {
	LatestFiscalYearForUpdate(ctx context.Context) (*FiscalYear, error)
	GetFiscalYearForUpdate(ctx context.Context, id uuid.UUID) (*FiscalYear, error)
	GetPeriodForUpdate(ctx context.Context, id uuid.UUID) (*Period, error)

	CreateFiscalYear(ctx context.Context, fy *FiscalYear) error
	CreatePeriod(ctx context.Context, p *Period) error
	CloseAllPeriods(ctx context.Context, fiscalYearID uuid.UUID, lockedAt time.Time) error
	LockOtherPeriods(ctx context.Context, fiscalYearID, exceptID uuid.UUID, lockedAt time.Time) error
	SetPeriodLock(ctx context.Context, periodID uuid.UUID, status PeriodStatus, lockedAt *time.Time) error
	MarkFiscalYearClosed(ctx context.Context, id uuid.UUID, closedAt time.Time) error

	Commit() error
	Rollback() error
}

// Service owns the fiscal-year and period lifecycle.
type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

const periodsPerYear = 12

// CreateNextFiscalYear creates the next 12-period fiscal year, closing the
// latest year first if it is still open. The first period is OPEN and
// unlocked; the remaining 11 are CLOSED and locked at creation time.
func (s *Service) CreateNextFiscalYear(ctx context.Context) (*FiscalYear, error) {
	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning fiscal year tx: %w", err)
	}
	defer tx.Rollback()

	latest, err := tx.LatestFiscalYearForUpdate(ctx)
	if err != nil {
		return nil, fmt.Errorf("locking latest fiscal year: %w", err)
	}

	if latest != nil && !latest.Closed() {
		if err := s.closeLocked(ctx, tx, latest); err != nil {
			return nil, err
		}
	}

	startYear := s.defaultStartYear()
	if latest != nil {
		startYear = latest.StartsOn.Year() + 1
	}

	start := time.Date(startYear, time.April, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, -1)

	fy := &FiscalYear{
		Label:    fmt.Sprintf("FY%d-%d", startYear, startYear+1),
		StartsOn: start,
		EndsOn:   end,
	}

	if err := tx.CreateFiscalYear(ctx, fy); err != nil {
		return nil, fmt.Errorf("creating fiscal year: %w", err)
	}

	now := s.now()

	for i := 0; i < periodsPerYear; i++ {
		periodStart := start.AddDate(0, i, 0)
		periodEnd := periodStart.AddDate(0, 1, -1)

		period := &Period{
			FiscalYearID: fy.ID,
			Year:         periodStart.Year(),
			Month:        int(periodStart.Month()),
			PeriodNumber: i + 1,
			Label:        fmt.Sprintf("%d-%02d", periodStart.Year(), periodStart.Month()),
			StartsOn:     periodStart,
			EndsOn:       periodEnd,
			Status:       PeriodClosed,
		}

		if i == 0 {
			period.Status = PeriodOpen
		} else {
			lockedAt := now
			period.LockedAt = &lockedAt
		}

		if err := tx.CreatePeriod(ctx, period); err != nil {
			return nil, fmt.Errorf("creating period %s: %w", period.Label, err)
		}

		fy.Periods = append(fy.Periods, period)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing fiscal year: %w", err)
	}

	return fy, nil
}

// CloseFiscalYear locks every period of the year and stamps closed_at.
// Closing an already-closed year is a no-op returning the current state.
func (s *Service) CloseFiscalYear(ctx context.Context, id uuid.UUID) (*FiscalYear, error) {
	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning close tx: %w", err)
	}
	defer tx.Rollback()

	fy, err := tx.GetFiscalYearForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}

	if !fy.Closed() {
		if err := s.closeLocked(ctx, tx, fy); err != nil {
			return nil, err
		}

		if err := tx.Commit(); err != nil {
			return nil, fmt.Errorf("committing close: %w", err)
		}
	}

	periods, err := s.repo.ListPeriods(ctx, fy.ID)
	if err != nil {
		return nil, err
	}

	fy.Periods = periods

	return fy, nil
}

// closeLocked performs the close inside an already-held transaction. The
// caller must hold the fiscal year row lock.
func (s *Service) closeLocked(ctx context.Context, tx Tx, fy *FiscalYear) error {
	now := s.now()

	if err := tx.CloseAllPeriods(ctx, fy.ID, now); err != nil {
		return fmt.Errorf("closing periods of %s: %w", fy.Label, err)
	}

	if err := tx.MarkFiscalYearClosed(ctx, fy.ID, now); err != nil {
		return fmt.Errorf("closing fiscal year %s: %w", fy.Label, err)
	}

	fy.ClosedAt = &now

	return nil
}

// LockPeriod closes and locks a single period. Locking an already-locked
// period is a no-op. Sibling periods are not affected.
func (s *Service) LockPeriod(ctx context.Context, id uuid.UUID) (*Period, error) {
	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning lock tx: %w", err)
	}
	defer tx.Rollback()

	period, err := tx.GetPeriodForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}

	if period.IsLocked() {
		return period, nil
	}

	now := s.now()
	if err := tx.SetPeriodLock(ctx, period.ID, PeriodClosed, &now); err != nil {
		return nil, fmt.Errorf("locking period %s: %w", period.Label, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing lock: %w", err)
	}

	period.Status = PeriodClosed
	period.LockedAt = &now

	return period, nil
}

// UnlockPeriod reopens a period for editing. Every other unlocked period in
// the same fiscal year is locked first, keeping at most one period open.
// Fails with InvalidState when the fiscal year is closed.
func (s *Service) UnlockPeriod(ctx context.Context, id uuid.UUID) (*Period, error) {
	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning unlock tx: %w", err)
	}
	defer tx.Rollback()

	period, err := tx.GetPeriodForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}

	// Lock the fiscal year row too so concurrent unlocks in the same year
	// serialize and cannot leave two periods open.
	fy, err := tx.GetFiscalYearForUpdate(ctx, period.FiscalYearID)
	if err != nil {
		return nil, err
	}

	if fy.Closed() {
		return nil, apperr.InvalidState("cannot unlock a period in a closed fiscal year")
	}

	if !period.IsLocked() {
		return period, nil
	}

	now := s.now()

	if err := tx.LockOtherPeriods(ctx, fy.ID, period.ID, now); err != nil {
		return nil, fmt.Errorf("locking sibling periods: %w", err)
	}

	if err := tx.SetPeriodLock(ctx, period.ID, PeriodOpen, nil); err != nil {
		return nil, fmt.Errorf("unlocking period %s: %w", period.Label, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing unlock: %w", err)
	}

	period.Status = PeriodOpen
	period.LockedAt = nil

	return period, nil
}

func (s *Service) GetFiscalYear(ctx context.Context, id uuid.UUID) (*FiscalYear, error) {
	return s.repo.GetFiscalYear(ctx, id)
}

func (s *Service) ListFiscalYears(ctx context.Context) ([]*FiscalYear, error) {
	return s.repo.ListFiscalYears(ctx)
}

func (s *Service) GetPeriod(ctx context.Context, id uuid.UUID) (*Period, error) {
	return s.repo.GetPeriod(ctx, id)
}

func (s *Service) ListPeriods(ctx context.Context, fiscalYearID uuid.UUID) ([]*Period, error) {
	return s.repo.ListPeriods(ctx, fiscalYearID)
}

// defaultStartYear picks the start year for the very first fiscal year:
// April or later means the fiscal year started this calendar year.
func (s *Service) defaultStartYear() int {
	today := s.now()
	if today.Month() >= time.April {
		return today.Year()
	}

	return today.Year() - 1
}
