package interco_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mfcarvalho/interco/internal/apperr"
	"github.com/mfcarvalho/interco/internal/interco"
	"github.com/mfcarvalho/interco/internal/masterdata"
	"github.com/mfcarvalho/interco/internal/template"
)

var (
	balanceSheetID = uuid.New()
	incomeStmtID   = uuid.New()
)

func generatorSnapshot() *masterdata.Snapshot {
	return masterdata.NewSnapshot(
		[]masterdata.FinancialStatement{
			{ID: balanceSheetID, Name: masterdata.StatementBalanceSheet, DisplayLabel: "Balance Sheet"},
			{ID: incomeStmtID, Name: masterdata.StatementIncomeStatement, DisplayLabel: "Income Statement"},
		},
		nil, nil, nil,
		[]masterdata.AgreementStatus{
			{ID: unknownID, Name: masterdata.AgreementUnknown, DisplayLabel: "Unknown"},
			{ID: agreeID, Name: masterdata.AgreementAgree, DisplayLabel: "Agree"},
			{ID: disagreeID, Name: masterdata.AgreementDisagree, DisplayLabel: "Disagree"},
		},
		nil,
	)
}

func activeTemplate(statementID uuid.UUID) *template.Template {
	return &template.Template{
		ID:                   uuid.New(),
		FinancialStatementID: statementID,
		SenderCompanyID:      uuid.New(),
		ReceiverCompanyID:    uuid.New(),
		SenderAccountID:      uuid.New(),
		ReceiverAccountID:    uuid.New(),
		Description:          "Management fee",
		Currency:             "EUR",
		DefaultAmount:        amt("2500.00"),
		IsActive:             true,
	}
}

func newGeneratorMocks(t *testing.T) (*interco.MockRepository, *interco.MockTx, *interco.MockTemplateSource, *masterdata.MockRepository, *interco.Generator) {
	t.Helper()

	ctrl := gomock.NewController(t)

	repo := interco.NewMockRepository(ctrl)
	tx := interco.NewMockTx(ctrl)
	templates := interco.NewMockTemplateSource(ctrl)
	refdata := masterdata.NewMockRepository(ctrl)

	return repo, tx, templates, refdata, interco.NewGenerator(repo, templates, refdata)
}

func TestGenerator_GenerateForPeriod(t *testing.T) {
	repo, tx, templates, refdata, gen := newGeneratorMocks(t)

	periodID := uuid.New()
	tpl := activeTemplate(balanceSheetID)

	refdata.EXPECT().Load(gomock.Any()).Return(generatorSnapshot(), nil)
	templates.EXPECT().ListActive(gomock.Any(), nil).Return([]*template.Template{tpl}, nil)
	repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)

	tx.EXPECT().
		GetOrCreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txn *interco.Transaction) (bool, error) {
			txn.ID = uuid.New()
			return true, nil
		})

	var legs []*interco.Leg

	tx.EXPECT().
		CreateLeg(gomock.Any(), gomock.Any()).
		Times(2).
		DoAndReturn(func(_ context.Context, l *interco.Leg) error {
			l.ID = uuid.New()
			legs = append(legs, l)
			return nil
		})

	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil)

	created, err := gen.GenerateForPeriod(context.Background(), periodID, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, created)

	require.Len(t, legs, 2)

	sender, receiver := legs[0], legs[1]
	assert.Equal(t, interco.RoleSender, sender.Role)
	assert.Equal(t, interco.NatureReceivable, sender.Nature)
	assert.Equal(t, tpl.SenderCompanyID, sender.CompanyID)
	assert.Equal(t, tpl.ReceiverCompanyID, sender.CounterpartyCompanyID)
	assert.Equal(t, interco.StatusDraft, sender.Status)
	assert.Nil(t, sender.AgreementStatusID)

	assert.Equal(t, interco.RoleReceiver, receiver.Role)
	assert.Equal(t, interco.NaturePayable, receiver.Nature)
	assert.Equal(t, tpl.ReceiverCompanyID, receiver.CompanyID)
	require.NotNil(t, receiver.AgreementStatusID)
	assert.Equal(t, unknownID, *receiver.AgreementStatusID)
	assert.True(t, receiver.Amount.Equal(*tpl.DefaultAmount))
}

func TestGenerator_GenerateForPeriod_IncomeStatementNatures(t *testing.T) {
	repo, tx, templates, refdata, gen := newGeneratorMocks(t)

	tpl := activeTemplate(incomeStmtID)

	refdata.EXPECT().Load(gomock.Any()).Return(generatorSnapshot(), nil)
	templates.EXPECT().ListActive(gomock.Any(), &incomeStmtID).Return([]*template.Template{tpl}, nil)
	repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	tx.EXPECT().GetOrCreateTransaction(gomock.Any(), gomock.Any()).Return(true, nil)

	var legs []*interco.Leg

	tx.EXPECT().
		CreateLeg(gomock.Any(), gomock.Any()).
		Times(2).
		DoAndReturn(func(_ context.Context, l *interco.Leg) error {
			legs = append(legs, l)
			return nil
		})

	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil)

	created, err := gen.GenerateForPeriod(context.Background(), uuid.New(), &incomeStmtID)
	require.NoError(t, err)
	assert.Equal(t, 1, created)

	require.Len(t, legs, 2)
	assert.Equal(t, interco.NatureRevenue, legs[0].Nature)
	assert.Equal(t, interco.NatureExpense, legs[1].Nature)
}

func TestGenerator_GenerateForPeriod_Rerun(t *testing.T) {
	repo, tx, templates, refdata, gen := newGeneratorMocks(t)

	tpl := activeTemplate(balanceSheetID)

	refdata.EXPECT().Load(gomock.Any()).Return(generatorSnapshot(), nil)
	templates.EXPECT().ListActive(gomock.Any(), nil).Return([]*template.Template{tpl}, nil)
	repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)

	// Second run: the (period, template) pair already exists, no legs written.
	tx.EXPECT().GetOrCreateTransaction(gomock.Any(), gomock.Any()).Return(false, nil)
	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil)

	created, err := gen.GenerateForPeriod(context.Background(), uuid.New(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, created)
}

func TestGenerator_GenerateForPeriod_NoActiveTemplates(t *testing.T) {
	_, _, templates, refdata, gen := newGeneratorMocks(t)

	refdata.EXPECT().Load(gomock.Any()).Return(generatorSnapshot(), nil)
	templates.EXPECT().ListActive(gomock.Any(), nil).Return(nil, nil)

	created, err := gen.GenerateForPeriod(context.Background(), uuid.New(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, created)
}

func TestGenerator_GenerateForPeriod_MissingSeedData(t *testing.T) {
	_, _, _, refdata, gen := newGeneratorMocks(t)

	// A snapshot without the UNKNOWN agreement status aborts before any work.
	empty := masterdata.NewSnapshot(nil, nil, nil, nil, nil, nil)
	refdata.EXPECT().Load(gomock.Any()).Return(empty, nil)

	_, err := gen.GenerateForPeriod(context.Background(), uuid.New(), nil)
	assert.True(t, apperr.IsKind(err, apperr.KindInvalidArgument))
}

func TestGenerator_GenerateForPeriod_UnknownStatementOnTemplate(t *testing.T) {
	repo, tx, templates, refdata, gen := newGeneratorMocks(t)

	tpl := activeTemplate(uuid.New())

	refdata.EXPECT().Load(gomock.Any()).Return(generatorSnapshot(), nil)
	templates.EXPECT().ListActive(gomock.Any(), nil).Return([]*template.Template{tpl}, nil)
	repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	tx.EXPECT().Rollback().Return(nil)

	_, err := gen.GenerateForPeriod(context.Background(), uuid.New(), nil)
	assert.True(t, apperr.IsKind(err, apperr.KindInvalidArgument))
}
