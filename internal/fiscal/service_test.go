package fiscal

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mfcarvalho/interco/internal/apperr"
)

// Tests live in the package so the clock can be pinned.

func newServiceAt(t *testing.T, at time.Time) (*MockRepository, *MockTx, *Service) {
	t.Helper()

	ctrl := gomock.NewController(t)

	repo := NewMockRepository(ctrl)
	tx := NewMockTx(ctrl)

	svc := NewService(repo)
	svc.now = func() time.Time { return at }

	return repo, tx, svc
}

func TestService_CreateNextFiscalYear_FirstYear(t *testing.T) {
	now := time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC)
	repo, tx, svc := newServiceAt(t, now)

	repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	tx.EXPECT().LatestFiscalYearForUpdate(gomock.Any()).Return(nil, nil)
	tx.EXPECT().
		CreateFiscalYear(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fy *FiscalYear) error {
			fy.ID = uuid.New()
			return nil
		})

	var periods []*Period

	tx.EXPECT().
		CreatePeriod(gomock.Any(), gomock.Any()).
		Times(12).
		DoAndReturn(func(_ context.Context, p *Period) error {
			p.ID = uuid.New()
			periods = append(periods, p)
			return nil
		})

	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil)

	fy, err := svc.CreateNextFiscalYear(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "FY2025-2026", fy.Label)
	assert.Equal(t, time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC), fy.StartsOn)
	assert.Equal(t, time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC), fy.EndsOn)

	require.Len(t, periods, 12)

	first := periods[0]
	assert.Equal(t, 1, first.PeriodNumber)
	assert.Equal(t, "2025-04", first.Label)
	assert.Equal(t, PeriodOpen, first.Status)
	assert.Nil(t, first.LockedAt)

	for _, p := range periods[1:] {
		assert.Equal(t, PeriodClosed, p.Status)
		require.NotNil(t, p.LockedAt)
	}

	last := periods[11]
	assert.Equal(t, 12, last.PeriodNumber)
	assert.Equal(t, "2026-03", last.Label)
	assert.Equal(t, time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC), last.EndsOn)
}

func TestService_CreateNextFiscalYear_BeforeAprilStartsPriorYear(t *testing.T) {
	now := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)
	repo, tx, svc := newServiceAt(t, now)

	repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	tx.EXPECT().LatestFiscalYearForUpdate(gomock.Any()).Return(nil, nil)
	tx.EXPECT().
		CreateFiscalYear(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fy *FiscalYear) error {
			fy.ID = uuid.New()
			return nil
		})
	tx.EXPECT().CreatePeriod(gomock.Any(), gomock.Any()).Times(12).Return(nil)
	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil)

	fy, err := svc.CreateNextFiscalYear(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "FY2025-2026", fy.Label)
}

func TestService_CreateNextFiscalYear_ClosesOpenPredecessor(t *testing.T) {
	now := time.Date(2026, time.April, 2, 0, 0, 0, 0, time.UTC)
	repo, tx, svc := newServiceAt(t, now)

	latest := &FiscalYear{
		ID:       uuid.New(),
		Label:    "FY2025-2026",
		StartsOn: time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
		EndsOn:   time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC),
	}

	repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	tx.EXPECT().LatestFiscalYearForUpdate(gomock.Any()).Return(latest, nil)
	tx.EXPECT().CloseAllPeriods(gomock.Any(), latest.ID, now).Return(nil)
	tx.EXPECT().MarkFiscalYearClosed(gomock.Any(), latest.ID, now).Return(nil)
	tx.EXPECT().
		CreateFiscalYear(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fy *FiscalYear) error {
			fy.ID = uuid.New()
			return nil
		})
	tx.EXPECT().CreatePeriod(gomock.Any(), gomock.Any()).Times(12).Return(nil)
	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil)

	fy, err := svc.CreateNextFiscalYear(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "FY2026-2027", fy.Label)
	assert.NotNil(t, latest.ClosedAt)
}

func TestService_CreateNextFiscalYear_ClosedPredecessorLeftAlone(t *testing.T) {
	now := time.Date(2026, time.April, 2, 0, 0, 0, 0, time.UTC)
	repo, tx, svc := newServiceAt(t, now)

	closedAt := now.AddDate(0, -1, 0)
	latest := &FiscalYear{
		ID:       uuid.New(),
		Label:    "FY2025-2026",
		StartsOn: time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
		ClosedAt: &closedAt,
	}

	repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	tx.EXPECT().LatestFiscalYearForUpdate(gomock.Any()).Return(latest, nil)
	tx.EXPECT().
		CreateFiscalYear(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fy *FiscalYear) error {
			fy.ID = uuid.New()
			return nil
		})
	tx.EXPECT().CreatePeriod(gomock.Any(), gomock.Any()).Times(12).Return(nil)
	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil)

	fy, err := svc.CreateNextFiscalYear(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "FY2026-2027", fy.Label)
}

func TestService_CloseFiscalYear(t *testing.T) {
	now := time.Date(2026, time.April, 10, 0, 0, 0, 0, time.UTC)
	repo, tx, svc := newServiceAt(t, now)

	fy := &FiscalYear{ID: uuid.New(), Label: "FY2025-2026"}

	repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	tx.EXPECT().GetFiscalYearForUpdate(gomock.Any(), fy.ID).Return(fy, nil)
	tx.EXPECT().CloseAllPeriods(gomock.Any(), fy.ID, now).Return(nil)
	tx.EXPECT().MarkFiscalYearClosed(gomock.Any(), fy.ID, now).Return(nil)
	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil)
	repo.EXPECT().ListPeriods(gomock.Any(), fy.ID).Return([]*Period{}, nil)

	got, err := svc.CloseFiscalYear(context.Background(), fy.ID)
	require.NoError(t, err)
	require.NotNil(t, got.ClosedAt)
	assert.Equal(t, now, *got.ClosedAt)
}

func TestService_CloseFiscalYear_AlreadyClosed(t *testing.T) {
	now := time.Date(2026, time.April, 10, 0, 0, 0, 0, time.UTC)
	repo, tx, svc := newServiceAt(t, now)

	closedAt := now.AddDate(0, 0, -3)
	fy := &FiscalYear{ID: uuid.New(), Label: "FY2025-2026", ClosedAt: &closedAt}

	repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	tx.EXPECT().GetFiscalYearForUpdate(gomock.Any(), fy.ID).Return(fy, nil)
	tx.EXPECT().Rollback().Return(nil)
	repo.EXPECT().ListPeriods(gomock.Any(), fy.ID).Return([]*Period{}, nil)

	got, err := svc.CloseFiscalYear(context.Background(), fy.ID)
	require.NoError(t, err)
	assert.Equal(t, closedAt, *got.ClosedAt)
}

func TestService_LockPeriod(t *testing.T) {
	now := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)
	repo, tx, svc := newServiceAt(t, now)

	period := &Period{ID: uuid.New(), Label: "2025-06", Status: PeriodOpen}

	repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	tx.EXPECT().GetPeriodForUpdate(gomock.Any(), period.ID).Return(period, nil)
	tx.EXPECT().SetPeriodLock(gomock.Any(), period.ID, PeriodClosed, &now).Return(nil)
	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil)

	got, err := svc.LockPeriod(context.Background(), period.ID)
	require.NoError(t, err)
	assert.Equal(t, PeriodClosed, got.Status)
	assert.Equal(t, now, *got.LockedAt)
}

func TestService_LockPeriod_AlreadyLocked(t *testing.T) {
	now := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)
	repo, tx, svc := newServiceAt(t, now)

	lockedAt := now.AddDate(0, -1, 0)
	period := &Period{ID: uuid.New(), Label: "2025-05", Status: PeriodClosed, LockedAt: &lockedAt}

	repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	tx.EXPECT().GetPeriodForUpdate(gomock.Any(), period.ID).Return(period, nil)
	tx.EXPECT().Rollback().Return(nil)

	got, err := svc.LockPeriod(context.Background(), period.ID)
	require.NoError(t, err)
	assert.Equal(t, lockedAt, *got.LockedAt)
}

func TestService_UnlockPeriod_LocksSiblingsFirst(t *testing.T) {
	now := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)
	repo, tx, svc := newServiceAt(t, now)

	fy := &FiscalYear{ID: uuid.New(), Label: "FY2025-2026"}
	lockedAt := now.AddDate(0, -2, 0)
	period := &Period{
		ID:           uuid.New(),
		FiscalYearID: fy.ID,
		Label:        "2025-04",
		Status:       PeriodClosed,
		LockedAt:     &lockedAt,
	}

	repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	tx.EXPECT().GetPeriodForUpdate(gomock.Any(), period.ID).Return(period, nil)
	tx.EXPECT().GetFiscalYearForUpdate(gomock.Any(), fy.ID).Return(fy, nil)
	tx.EXPECT().LockOtherPeriods(gomock.Any(), fy.ID, period.ID, now).Return(nil)
	tx.EXPECT().SetPeriodLock(gomock.Any(), period.ID, PeriodOpen, nil).Return(nil)
	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil)

	got, err := svc.UnlockPeriod(context.Background(), period.ID)
	require.NoError(t, err)
	assert.Equal(t, PeriodOpen, got.Status)
	assert.Nil(t, got.LockedAt)
}

func TestService_UnlockPeriod_ClosedFiscalYear(t *testing.T) {
	now := time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC)
	repo, tx, svc := newServiceAt(t, now)

	closedAt := now.AddDate(0, -1, 0)
	fy := &FiscalYear{ID: uuid.New(), Label: "FY2025-2026", ClosedAt: &closedAt}
	period := &Period{ID: uuid.New(), FiscalYearID: fy.ID, Status: PeriodClosed, LockedAt: &closedAt}

	repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	tx.EXPECT().GetPeriodForUpdate(gomock.Any(), period.ID).Return(period, nil)
	tx.EXPECT().GetFiscalYearForUpdate(gomock.Any(), fy.ID).Return(fy, nil)
	tx.EXPECT().Rollback().Return(nil)

	_, err := svc.UnlockPeriod(context.Background(), period.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindInvalidState))
}

func TestService_UnlockPeriod_AlreadyOpen(t *testing.T) {
	now := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)
	repo, tx, svc := newServiceAt(t, now)

	fy := &FiscalYear{ID: uuid.New(), Label: "FY2025-2026"}
	period := &Period{ID: uuid.New(), FiscalYearID: fy.ID, Status: PeriodOpen}

	repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	tx.EXPECT().GetPeriodForUpdate(gomock.Any(), period.ID).Return(period, nil)
	tx.EXPECT().GetFiscalYearForUpdate(gomock.Any(), fy.ID).Return(fy, nil)
	tx.EXPECT().Rollback().Return(nil)

	got, err := svc.UnlockPeriod(context.Background(), period.ID)
	require.NoError(t, err)
	assert.Equal(t, PeriodOpen, got.Status)
}
