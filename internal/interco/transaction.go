package interco

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Role distinguishes the two sides of an intercompany transaction.
type Role string

const (
	RoleSender   Role = "SENDER"
	RoleReceiver Role = "RECEIVER"
)

// Nature is the accounting nature a leg carries, fixed per statement:
// balance sheet pairs RECEIVABLE/PAYABLE, income statement REVENUE/EXPENSE.
type Nature string

const (
	NatureReceivable Nature = "RECEIVABLE"
	NaturePayable    Nature = "PAYABLE"
	NatureRevenue    Nature = "REVENUE"
	NatureExpense    Nature = "EXPENSE"
)

// Status is the workflow state of a leg.
// DRAFT -> PENDING_REVIEW -> {REVIEWED, REJECTED}; REJECTED loops back to
// editable, REVIEWED is terminal.
type Status string

const (
	StatusDraft         Status = "DRAFT"
	StatusPendingReview Status = "PENDING_REVIEW"
	StatusReviewed      Status = "REVIEWED"
	StatusRejected      Status = "REJECTED"
)

// Editable reports whether a leg in this status accepts edits.
func (s Status) Editable() bool {
	return s == StatusDraft || s == StatusRejected
}

// Transaction is one intercompany transaction stamped from a template for a
// period. It owns exactly two legs.
type Transaction struct {
	ID                       uuid.UUID
	PeriodID                 uuid.UUID
	TemplateID               uuid.UUID
	FinancialStatementID     uuid.UUID
	SenderCompanyID          uuid.UUID
	ReceiverCompanyID        uuid.UUID
	Currency                 string
	CreatedFromDefaultAmount bool
	Legs                     []*Leg // Loaded on demand
	CreatedAt                time.Time
}

// Leg is one side of an intercompany transaction, tracked independently
// through its own workflow state. Mutated only through the Workflow engine.
type Leg struct {
	ID                         uuid.UUID
	TransactionID              uuid.UUID
	CompanyID                  uuid.UUID
	CounterpartyCompanyID      uuid.UUID
	Role                       Role
	Nature                     Nature
	AccountID                  uuid.UUID
	Status                     Status
	PreparedByID               *uuid.UUID
	PreparedAt                 *time.Time
	ReviewedByID               *uuid.UUID
	ReviewedAt                 *time.Time
	Amount                     *decimal.Decimal
	AdjustmentAmount           decimal.Decimal
	AgreementStatusID          *uuid.UUID // receiver legs only
	DisagreeReason             *string
	CounterpartyAmountSnapshot *decimal.Decimal
	CreatedAt                  time.Time
	UpdatedAt                  *time.Time
}

// StatusHistory is an append-only audit row written on every transition.
type StatusHistory struct {
	ID          uuid.UUID
	LegID       uuid.UUID
	FromStatus  Status
	ToStatus    Status
	ChangedByID uuid.UUID
	Note        string
	CreatedAt   time.Time
}
