package template

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mfcarvalho/interco/internal/apperr"
	"github.com/mfcarvalho/interco/internal/masterdata"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=template
type Repository interface {
	CreateTemplate(ctx context.Context, t *Template) error
	GetTemplate(ctx context.Context, id uuid.UUID) (*Template, error)
	UpdateTemplate(ctx context.Context, t *Template) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	ListTemplates(ctx context.Context, filter ListFilter) ([]*Template, error)
}

type ListFilter struct {
	FinancialStatementID *uuid.UUID
	ActiveOnly           bool
}

// Service manages the template catalog. Every write is validated against the
// reference-data snapshot: statement/category mapping and approved pairs.
type Service struct {
	repo    Repository
	refdata masterdata.Repository
}

func NewService(repo Repository, refdata masterdata.Repository) *Service {
	return &Service{repo: repo, refdata: refdata}
}

type CreateParams struct {
	FinancialStatementID uuid.UUID
	SenderCompanyID      uuid.UUID
	ReceiverCompanyID    uuid.UUID
	SenderCategoryID     uuid.UUID
	SenderAccountID      uuid.UUID
	ReceiverCategoryID   uuid.UUID
	ReceiverAccountID    uuid.UUID
	Description          string
	Currency             string
	DefaultAmount        *decimal.Decimal
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Template, error) {
	snap, err := s.refdata.Load(ctx)
	if err != nil {
		return nil, err
	}

	if err := validate(snap, params); err != nil {
		return nil, err
	}

	t := &Template{
		FinancialStatementID: params.FinancialStatementID,
		SenderCompanyID:      params.SenderCompanyID,
		ReceiverCompanyID:    params.ReceiverCompanyID,
		SenderCategoryID:     params.SenderCategoryID,
		SenderAccountID:      params.SenderAccountID,
		ReceiverCategoryID:   params.ReceiverCategoryID,
		ReceiverAccountID:    params.ReceiverAccountID,
		Description:          params.Description,
		Currency:             params.Currency,
		DefaultAmount:        params.DefaultAmount,
		IsActive:             true,
	}

	if err := s.repo.CreateTemplate(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, params CreateParams) (*Template, error) {
	snap, err := s.refdata.Load(ctx)
	if err != nil {
		return nil, err
	}

	if err := validate(snap, params); err != nil {
		return nil, err
	}

	t, err := s.repo.GetTemplate(ctx, id)
	if err != nil {
		return nil, err
	}

	t.FinancialStatementID = params.FinancialStatementID
	t.SenderCompanyID = params.SenderCompanyID
	t.ReceiverCompanyID = params.ReceiverCompanyID
	t.SenderCategoryID = params.SenderCategoryID
	t.SenderAccountID = params.SenderAccountID
	t.ReceiverCategoryID = params.ReceiverCategoryID
	t.ReceiverAccountID = params.ReceiverAccountID
	t.Description = params.Description
	t.Currency = params.Currency
	t.DefaultAmount = params.DefaultAmount

	if err := s.repo.UpdateTemplate(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}

func (s *Service) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	return s.repo.SetActive(ctx, id, active)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Template, error) {
	return s.repo.GetTemplate(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Template, error) {
	return s.repo.ListTemplates(ctx, filter)
}

// ListActive returns the active templates, optionally filtered by statement.
// The transaction generator stamps transactions from this set.
func (s *Service) ListActive(ctx context.Context, statementID *uuid.UUID) ([]*Template, error) {
	return s.repo.ListTemplates(ctx, ListFilter{FinancialStatementID: statementID, ActiveOnly: true})
}

// categoryMapping is the fixed sender/receiver category pair per statement.
var categoryMapping = map[masterdata.StatementName][2]masterdata.CategoryName{
	masterdata.StatementBalanceSheet:    {masterdata.CategoryReceivable, masterdata.CategoryPayable},
	masterdata.StatementIncomeStatement: {masterdata.CategoryRevenue, masterdata.CategoryExpense},
}

func validate(snap *masterdata.Snapshot, params CreateParams) error {
	if params.SenderCompanyID == params.ReceiverCompanyID {
		return apperr.InvalidArgument("sender and receiver companies must differ")
	}

	stmt, ok := snap.Statement(params.FinancialStatementID)
	if !ok {
		return apperr.InvalidArgument("unknown financial statement")
	}

	mapping, ok := categoryMapping[stmt.Name]
	if !ok {
		return apperr.InvalidArgument("unsupported financial statement: %s", stmt.Name)
	}

	senderCat, ok := snap.Category(params.SenderCategoryID)
	if !ok || senderCat.FinancialStatementID != stmt.ID || senderCat.Name != mapping[0] {
		return apperr.InvalidArgument("sender category must be %s for %s", mapping[0], stmt.Name)
	}

	receiverCat, ok := snap.Category(params.ReceiverCategoryID)
	if !ok || receiverCat.FinancialStatementID != stmt.ID || receiverCat.Name != mapping[1] {
		return apperr.InvalidArgument("receiver category must be %s for %s", mapping[1], stmt.Name)
	}

	senderAcct, ok := snap.Account(params.SenderAccountID)
	if !ok || senderAcct.AccountCategoryID != senderCat.ID {
		return apperr.InvalidArgument("sender account does not belong to the sender category")
	}

	receiverAcct, ok := snap.Account(params.ReceiverAccountID)
	if !ok || receiverAcct.AccountCategoryID != receiverCat.ID {
		return apperr.InvalidArgument("receiver account does not belong to the receiver category")
	}

	if !snap.PairApproved(stmt.ID, senderAcct.ID, receiverAcct.ID) {
		return apperr.InvalidArgument("account pair is not approved for %s", stmt.Name)
	}

	return nil
}
