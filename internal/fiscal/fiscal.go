package fiscal

import (
	"time"

	"github.com/google/uuid"
)

// PeriodStatus is the lifecycle state of a period.
type PeriodStatus string

const (
	PeriodOpen   PeriodStatus = "OPEN"
	PeriodClosed PeriodStatus = "CLOSED"
)

// FiscalYear is a 12-period accounting year running 1 April to 31 March.
// Closing is irreversible.
type FiscalYear struct {
	ID        uuid.UUID
	Label     string
	StartsOn  time.Time
	EndsOn    time.Time
	ClosedAt  *time.Time
	Periods   []*Period // Loaded on demand, ordered by starts_on
	CreatedAt time.Time
	UpdatedAt *time.Time
}

func (fy *FiscalYear) Closed() bool {
	return fy.ClosedAt != nil
}

// Period is one calendar month within a fiscal year; the unit of locking.
// At most one period per fiscal year is unlocked at any time.
type Period struct {
	ID           uuid.UUID
	FiscalYearID uuid.UUID
	Year         int
	Month        int
	PeriodNumber int // 1..12 within the fiscal year
	Label        string
	StartsOn     time.Time
	EndsOn       time.Time
	Status       PeriodStatus
	LockedAt     *time.Time
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

// IsLocked reports whether the period refuses new or edited transactions.
func (p *Period) IsLocked() bool {
	return p.LockedAt != nil
}
