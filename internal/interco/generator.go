package interco

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mfcarvalho/interco/internal/apperr"
	"github.com/mfcarvalho/interco/internal/masterdata"
	"github.com/mfcarvalho/interco/internal/template"
)

//go:generate mockgen -source=generator.go -destination=templatesource_mock.go -package=interco
type TemplateSource interface {
	ListActive(ctx context.Context, statementID *uuid.UUID) ([]*template.Template, error)
}

// Generator materializes one transaction (with its two legs) per active
// template for a period. Re-running for the same period is a safe no-op.
type Generator struct {
	repo      Repository
	templates TemplateSource
	refdata   masterdata.Repository
}

func NewGenerator(repo Repository, templates TemplateSource, refdata masterdata.Repository) *Generator {
	return &Generator{repo: repo, templates: templates, refdata: refdata}
}

// legNatures is the fixed statement-to-nature mapping for the two legs.
var legNatures = map[masterdata.StatementName][2]Nature{
	masterdata.StatementBalanceSheet:    {NatureReceivable, NaturePayable},
	masterdata.StatementIncomeStatement: {NatureRevenue, NatureExpense},
}

// GenerateForPeriod creates the missing transactions for the period,
// optionally restricted to one financial statement, and returns the number
// of newly created transactions. Existing (period, template) pairs are left
// untouched.
func (g *Generator) GenerateForPeriod(ctx context.Context, periodID uuid.UUID, statementID *uuid.UUID) (int, error) {
	snap, err := g.refdata.Load(ctx)
	if err != nil {
		return 0, err
	}

	// Fail fast on missing seed data before touching any template.
	unknown, ok := snap.AgreementStatusByName(masterdata.AgreementUnknown)
	if !ok {
		return 0, apperr.InvalidArgument("missing master data required for transaction generation: agreement status %s", masterdata.AgreementUnknown)
	}

	templates, err := g.templates.ListActive(ctx, statementID)
	if err != nil {
		return 0, fmt.Errorf("listing active templates: %w", err)
	}

	if len(templates) == 0 {
		return 0, nil
	}

	tx, err := g.repo.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("beginning generation tx: %w", err)
	}
	defer tx.Rollback()

	created := 0

	for _, tpl := range templates {
		stmt, ok := snap.Statement(tpl.FinancialStatementID)
		if !ok {
			return 0, apperr.InvalidArgument("unknown financial statement on template %s", tpl.ID)
		}

		natures, ok := legNatures[stmt.Name]
		if !ok {
			return 0, apperr.InvalidArgument("unsupported financial statement: %s", stmt.Name)
		}

		txn := &Transaction{
			PeriodID:                 periodID,
			TemplateID:               tpl.ID,
			FinancialStatementID:     tpl.FinancialStatementID,
			SenderCompanyID:          tpl.SenderCompanyID,
			ReceiverCompanyID:        tpl.ReceiverCompanyID,
			Currency:                 tpl.Currency,
			CreatedFromDefaultAmount: tpl.DefaultAmount != nil,
		}

		wasCreated, err := tx.GetOrCreateTransaction(ctx, txn)
		if err != nil {
			return 0, fmt.Errorf("creating transaction for template %s: %w", tpl.ID, err)
		}

		if !wasCreated {
			continue
		}

		legs := []*Leg{
			{
				TransactionID:         txn.ID,
				CompanyID:             tpl.SenderCompanyID,
				CounterpartyCompanyID: tpl.ReceiverCompanyID,
				Role:                  RoleSender,
				Nature:                natures[0],
				AccountID:             tpl.SenderAccountID,
				Status:                StatusDraft,
				Amount:                tpl.DefaultAmount,
			},
			{
				TransactionID:         txn.ID,
				CompanyID:             tpl.ReceiverCompanyID,
				CounterpartyCompanyID: tpl.SenderCompanyID,
				Role:                  RoleReceiver,
				Nature:                natures[1],
				AccountID:             tpl.ReceiverAccountID,
				Status:                StatusDraft,
				Amount:                tpl.DefaultAmount,
				AgreementStatusID:     &unknown.ID,
			},
		}

		for _, leg := range legs {
			if err := tx.CreateLeg(ctx, leg); err != nil {
				return 0, fmt.Errorf("creating %s leg: %w", leg.Role, err)
			}
		}

		txn.Legs = legs
		created++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing generation: %w", err)
	}

	return created, nil
}
