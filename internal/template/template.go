package template

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Template is a recurring sender/receiver company-and-account pairing used to
// stamp out one intercompany transaction per period.
type Template struct {
	ID                   uuid.UUID
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
	IsActive             bool
	CreatedAt            time.Time
	UpdatedAt            *time.Time
}
