// Package masterdata holds the seeded reference entities and an immutable
// snapshot of them. The snapshot is loaded per operation so business rules
// never depend on ambient lookup state.
package masterdata

import (
	"context"

	"github.com/google/uuid"
)

// StatementName identifies a financial statement.
type StatementName string

const (
	StatementBalanceSheet    StatementName = "BALANCE_SHEET"
	StatementIncomeStatement StatementName = "INCOME_STATEMENT"
)

// CategoryName identifies an account category within a statement.
type CategoryName string

const (
	CategoryReceivable CategoryName = "RECEIVABLE"
	CategoryPayable    CategoryName = "PAYABLE"
	CategoryRevenue    CategoryName = "REVENUE"
	CategoryExpense    CategoryName = "EXPENSE"
)

// AgreementName identifies the receiver's stance on the sender amount.
type AgreementName string

const (
	AgreementUnknown  AgreementName = "UNKNOWN"
	AgreementAgree    AgreementName = "AGREE"
	AgreementDisagree AgreementName = "DISAGREE"
)

type FinancialStatement struct {
	ID           uuid.UUID
	Name         StatementName
	DisplayLabel string
}

type AccountCategory struct {
	ID                   uuid.UUID
	FinancialStatementID uuid.UUID
	Name                 CategoryName
	DisplayLabel         string
}

// HfmAccount is a reporting account within a category.
type HfmAccount struct {
	ID                uuid.UUID
	AccountCategoryID uuid.UUID
	Name              string
	DisplayLabel      string
}

// AccountPair is an approved (sender account, receiver account) combination
// for a financial statement.
type AccountPair struct {
	ID                   uuid.UUID
	FinancialStatementID uuid.UUID
	SenderAccountID      uuid.UUID
	ReceiverAccountID    uuid.UUID
}

type AgreementStatus struct {
	ID           uuid.UUID
	Name         AgreementName
	DisplayLabel string
}

type Company struct {
	ID   uuid.UUID
	Name string
	Code string
}

//go:generate mockgen -source=masterdata.go -destination=repository_mock.go -package=masterdata
type Repository interface {
	Load(ctx context.Context) (*Snapshot, error)
}

type pairKey struct {
	statementID uuid.UUID
	senderID    uuid.UUID
	receiverID  uuid.UUID
}

// Snapshot is a read-only view of the reference data, safe to share.
type Snapshot struct {
	statements       map[uuid.UUID]FinancialStatement
	statementsByName map[StatementName]FinancialStatement
	categories       map[uuid.UUID]AccountCategory
	accounts         map[uuid.UUID]HfmAccount
	pairs            map[pairKey]struct{}
	agreements       map[uuid.UUID]AgreementStatus
	agreementsByName map[AgreementName]AgreementStatus
	companies        map[uuid.UUID]Company
}

func NewSnapshot(
	statements []FinancialStatement,
	categories []AccountCategory,
	accounts []HfmAccount,
	pairs []AccountPair,
	agreements []AgreementStatus,
	companies []Company,
) *Snapshot {
	s := &Snapshot{
		statements:       make(map[uuid.UUID]FinancialStatement, len(statements)),
		statementsByName: make(map[StatementName]FinancialStatement, len(statements)),
		categories:       make(map[uuid.UUID]AccountCategory, len(categories)),
		accounts:         make(map[uuid.UUID]HfmAccount, len(accounts)),
		pairs:            make(map[pairKey]struct{}, len(pairs)),
		agreements:       make(map[uuid.UUID]AgreementStatus, len(agreements)),
		agreementsByName: make(map[AgreementName]AgreementStatus, len(agreements)),
		companies:        make(map[uuid.UUID]Company, len(companies)),
	}

	for _, st := range statements {
		s.statements[st.ID] = st
		s.statementsByName[st.Name] = st
	}

	for _, c := range categories {
		s.categories[c.ID] = c
	}

	for _, a := range accounts {
		s.accounts[a.ID] = a
	}

	for _, p := range pairs {
		s.pairs[pairKey{p.FinancialStatementID, p.SenderAccountID, p.ReceiverAccountID}] = struct{}{}
	}

	for _, a := range agreements {
		s.agreements[a.ID] = a
		s.agreementsByName[a.Name] = a
	}

	for _, c := range companies {
		s.companies[c.ID] = c
	}

	return s
}

func (s *Snapshot) Statement(id uuid.UUID) (FinancialStatement, bool) {
	st, ok := s.statements[id]
	return st, ok
}

func (s *Snapshot) StatementByName(name StatementName) (FinancialStatement, bool) {
	st, ok := s.statementsByName[name]
	return st, ok
}

func (s *Snapshot) Category(id uuid.UUID) (AccountCategory, bool) {
	c, ok := s.categories[id]
	return c, ok
}

func (s *Snapshot) Account(id uuid.UUID) (HfmAccount, bool) {
	a, ok := s.accounts[id]
	return a, ok
}

// PairApproved reports whether the (sender, receiver) account combination is
// in the statement's approved pair set.
func (s *Snapshot) PairApproved(statementID, senderAccountID, receiverAccountID uuid.UUID) bool {
	_, ok := s.pairs[pairKey{statementID, senderAccountID, receiverAccountID}]
	return ok
}

func (s *Snapshot) AgreementStatus(id uuid.UUID) (AgreementStatus, bool) {
	a, ok := s.agreements[id]
	return a, ok
}

func (s *Snapshot) AgreementStatusByName(name AgreementName) (AgreementStatus, bool) {
	a, ok := s.agreementsByName[name]
	return a, ok
}

func (s *Snapshot) Company(id uuid.UUID) (Company, bool) {
	c, ok := s.companies[id]
	return c, ok
}
