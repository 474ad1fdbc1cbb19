package template_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mfcarvalho/interco/internal/apperr"
	"github.com/mfcarvalho/interco/internal/masterdata"
	"github.com/mfcarvalho/interco/internal/template"
)

var (
	balanceSheetID = uuid.New()

	receivableCatID = uuid.New()
	payableCatID    = uuid.New()

	receivableAcctID  = uuid.New()
	payableAcctID     = uuid.New()
	unpairedPayableID = uuid.New()
	strayAcctID       = uuid.New()

	companyAID = uuid.New()
	companyBID = uuid.New()
)

func refSnapshot() *masterdata.Snapshot {
	return masterdata.NewSnapshot(
		[]masterdata.FinancialStatement{
			{ID: balanceSheetID, Name: masterdata.StatementBalanceSheet, DisplayLabel: "Balance Sheet"},
		},
		[]masterdata.AccountCategory{
			{ID: receivableCatID, FinancialStatementID: balanceSheetID, Name: masterdata.CategoryReceivable},
			{ID: payableCatID, FinancialStatementID: balanceSheetID, Name: masterdata.CategoryPayable},
		},
		[]masterdata.HfmAccount{
			{ID: receivableAcctID, AccountCategoryID: receivableCatID, Name: "ICP_REC_TRADE"},
			{ID: payableAcctID, AccountCategoryID: payableCatID, Name: "ICP_PAY_TRADE"},
			{ID: unpairedPayableID, AccountCategoryID: payableCatID, Name: "ICP_PAY_LOANS"},
			{ID: strayAcctID, AccountCategoryID: uuid.New(), Name: "ICP_OTHER"},
		},
		[]masterdata.AccountPair{
			{ID: uuid.New(), FinancialStatementID: balanceSheetID, SenderAccountID: receivableAcctID, ReceiverAccountID: payableAcctID},
		},
		[]masterdata.AgreementStatus{
			{ID: uuid.New(), Name: masterdata.AgreementUnknown},
		},
		[]masterdata.Company{
			{ID: companyAID, Name: "Alpha Holding", Code: "ALP"},
			{ID: companyBID, Name: "Beta Trading", Code: "BET"},
		},
	)
}

func validParams() template.CreateParams {
	amount := decimal.RequireFromString("2500.00")

	return template.CreateParams{
		FinancialStatementID: balanceSheetID,
		SenderCompanyID:      companyAID,
		ReceiverCompanyID:    companyBID,
		SenderCategoryID:     receivableCatID,
		SenderAccountID:      receivableAcctID,
		ReceiverCategoryID:   payableCatID,
		ReceiverAccountID:    payableAcctID,
		Description:          "Monthly management fee",
		Currency:             "EUR",
		DefaultAmount:        &amount,
	}
}

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		mutate    func(p *template.CreateParams)
		setupMock func(m *template.MockRepository)
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Success",
			setupMock: func(m *template.MockRepository) {
				m.EXPECT().
					CreateTemplate(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tpl *template.Template) error {
						tpl.ID = uuid.New()
						return nil
					})
			},
		},
		{
			name: "SameCompanyBothSides",
			mutate: func(p *template.CreateParams) {
				p.ReceiverCompanyID = p.SenderCompanyID
			},
			wantErr: true,
		},
		{
			name: "UnknownStatement",
			mutate: func(p *template.CreateParams) {
				p.FinancialStatementID = uuid.New()
			},
			wantErr: true,
		},
		{
			name: "SenderCategoryFromWrongSide",
			mutate: func(p *template.CreateParams) {
				p.SenderCategoryID = payableCatID
			},
			wantErr: true,
		},
		{
			name: "SenderAccountOutsideCategory",
			mutate: func(p *template.CreateParams) {
				p.SenderAccountID = strayAcctID
			},
			wantErr: true,
		},
		{
			name: "PairNotApproved",
			mutate: func(p *template.CreateParams) {
				p.ReceiverAccountID = unpairedPayableID
			},
			wantErr: true,
		},
		{
			name: "RepoError",
			setupMock: func(m *template.MockRepository) {
				m.EXPECT().
					CreateTemplate(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			repo := template.NewMockRepository(ctrl)
			refdata := masterdata.NewMockRepository(ctrl)
			refdata.EXPECT().Load(gomock.Any()).Return(refSnapshot(), nil)

			if tt.setupMock != nil {
				tt.setupMock(repo)
			} else if !tt.wantErr {
				repo.EXPECT().
					CreateTemplate(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tpl *template.Template) error {
						tpl.ID = uuid.New()
						return nil
					})
			}

			svc := template.NewService(repo, refdata)

			params := validParams()
			if tt.mutate != nil {
				tt.mutate(&params)
			}

			got, err := svc.Create(context.Background(), params)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, got.ID)
			assert.True(t, got.IsActive)
		})
	}
}

func TestService_Create_UnapprovedPairKind(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := template.NewMockRepository(ctrl)
	refdata := masterdata.NewMockRepository(ctrl)
	refdata.EXPECT().Load(gomock.Any()).Return(refSnapshot(), nil)

	svc := template.NewService(repo, refdata)

	// The account sits in the right category but has no approved pairing with
	// the sender account.
	params := validParams()
	params.ReceiverAccountID = unpairedPayableID

	_, err := svc.Create(context.Background(), params)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindInvalidArgument))
}

func TestService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := template.NewMockRepository(ctrl)
	refdata := masterdata.NewMockRepository(ctrl)
	refdata.EXPECT().Load(gomock.Any()).Return(refSnapshot(), nil)

	existing := &template.Template{
		ID:                   uuid.New(),
		FinancialStatementID: balanceSheetID,
		SenderCompanyID:      companyAID,
		ReceiverCompanyID:    companyBID,
		Description:          "Old description",
		Currency:             "USD",
		IsActive:             true,
	}

	repo.EXPECT().GetTemplate(gomock.Any(), existing.ID).Return(existing, nil)
	repo.EXPECT().UpdateTemplate(gomock.Any(), existing).Return(nil)

	svc := template.NewService(repo, refdata)

	params := validParams()
	got, err := svc.Update(context.Background(), existing.ID, params)
	require.NoError(t, err)
	assert.Equal(t, "Monthly management fee", got.Description)
	assert.Equal(t, "EUR", got.Currency)
}

func TestService_ListActive(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := template.NewMockRepository(ctrl)
	refdata := masterdata.NewMockRepository(ctrl)

	repo.EXPECT().
		ListTemplates(gomock.Any(), template.ListFilter{FinancialStatementID: &balanceSheetID, ActiveOnly: true}).
		Return([]*template.Template{{ID: uuid.New()}}, nil)

	svc := template.NewService(repo, refdata)

	got, err := svc.ListActive(context.Background(), &balanceSheetID)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestService_SetActive(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := template.NewMockRepository(ctrl)
	refdata := masterdata.NewMockRepository(ctrl)

	id := uuid.New()
	repo.EXPECT().SetActive(gomock.Any(), id, false).Return(nil)

	svc := template.NewService(repo, refdata)
	require.NoError(t, svc.SetActive(context.Background(), id, false))
}
