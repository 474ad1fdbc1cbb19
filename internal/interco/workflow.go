package interco

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mfcarvalho/interco/internal/apperr"
	"github.com/mfcarvalho/interco/internal/masterdata"
)

//go:generate mockgen -source=workflow.go -destination=repository_mock.go -package=interco
type Repository interface {
	GetLeg(ctx context.Context, id uuid.UUID) (*Leg, error)
	GetTransaction(ctx context.Context, id uuid.UUID) (*Transaction, error)
	ListTransactionsForPeriod(ctx context.Context, periodID uuid.UUID) ([]*Transaction, error)
	ListHistory(ctx context.Context, legID uuid.UUID) ([]*StatusHistory, error)

	Begin(ctx context.Context) (Tx, error)
}

// Tx is one atomic leg mutation: state is re-read under a row lock so
// conflicting concurrent transitions serialize and only one observed-state
// check succeeds.
type Tx interface {
	GetLegForUpdate(ctx context.Context, id uuid.UUID) (*Leg, error)
	GetSiblingLeg(ctx context.Context, transactionID uuid.UUID, role Role) (*Leg, error)

	UpdateSenderAmount(ctx context.Context, legID uuid.UUID, amount, adjustment decimal.Decimal) error
	SetLegAmount(ctx context.Context, legID uuid.UUID, amount decimal.Decimal) error
	UpdateReceiverDecision(ctx context.Context, legID uuid.UUID, amount decimal.Decimal, agreementStatusID uuid.UUID, reason *string) error
	MarkSubmitted(ctx context.Context, legID uuid.UUID, status Status, actorID uuid.UUID, at time.Time) error
	MarkReviewed(ctx context.Context, legID uuid.UUID, status Status, actorID uuid.UUID, at time.Time, counterpartySnapshot *decimal.Decimal, disagreeReason *string) error
	AppendHistory(ctx context.Context, h *StatusHistory) error

	GetOrCreateTransaction(ctx context.Context, t *Transaction) (bool, error)
	CreateLeg(ctx context.Context, l *Leg) error

	Commit() error
	Rollback() error
}

// Workflow is the state machine governing sender and receiver leg
// transitions. Period-lock gating happens at the caller; authorization is the
// caller's concern too, except for the state checks re-validated here.
type Workflow struct {
	repo    Repository
	refdata masterdata.Repository
	now     func() time.Time
}

func NewWorkflow(repo Repository, refdata masterdata.Repository) *Workflow {
	return &Workflow{repo: repo, refdata: refdata, now: time.Now}
}

// UpdateSenderAmount edits a sender leg's amount while it is still editable.
// A receiver sibling that has not left DRAFT mirrors the new amount so an
// un-started receiver stays in sync with the latest sender figure.
func (w *Workflow) UpdateSenderAmount(ctx context.Context, legID, actorID uuid.UUID, amount, adjustment decimal.Decimal) (*Leg, error) {
	tx, err := w.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning workflow tx: %w", err)
	}
	defer tx.Rollback()

	leg, err := tx.GetLegForUpdate(ctx, legID)
	if err != nil {
		return nil, err
	}

	if err := ensureRole(leg, RoleSender); err != nil {
		return nil, err
	}

	if err := ensureEditable(leg); err != nil {
		return nil, err
	}

	if err := tx.UpdateSenderAmount(ctx, leg.ID, amount, adjustment); err != nil {
		return nil, fmt.Errorf("updating sender amount: %w", err)
	}

	receiver, err := tx.GetSiblingLeg(ctx, leg.TransactionID, RoleReceiver)
	if err != nil {
		return nil, err
	}

	if receiver != nil && receiver.Status == StatusDraft {
		if err := tx.SetLegAmount(ctx, receiver.ID, amount); err != nil {
			return nil, fmt.Errorf("mirroring receiver amount: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing amount update: %w", err)
	}

	leg.Amount = &amount
	leg.AdjustmentAmount = adjustment

	return leg, nil
}

// Submit moves an editable sender leg to PENDING_REVIEW.
func (w *Workflow) Submit(ctx context.Context, legID, actorID uuid.UUID) (*Leg, error) {
	return w.transition(ctx, legID, transition{
		role:        RoleSender,
		from:        editableStatuses,
		to:          StatusPendingReview,
		note:        "Submitted for review",
		markPrepare: true,
		actorID:     actorID,
	})
}

// Approve moves a pending sender leg to REVIEWED, its terminal state.
func (w *Workflow) Approve(ctx context.Context, legID, actorID uuid.UUID) (*Leg, error) {
	return w.transition(ctx, legID, transition{
		role:    RoleSender,
		from:    []Status{StatusPendingReview},
		to:      StatusReviewed,
		note:    "Approved",
		actorID: actorID,
	})
}

// Reject sends a pending sender leg back to the editable REJECTED state.
func (w *Workflow) Reject(ctx context.Context, legID, actorID uuid.UUID, reason string) (*Leg, error) {
	return w.transition(ctx, legID, transition{
		role:    RoleSender,
		from:    []Status{StatusPendingReview},
		to:      StatusRejected,
		note:    "Rejected: " + reason,
		actorID: actorID,
	})
}

// UpdateReceiver records the receiver's amount and agreement decision. The
// sibling sender leg must already be REVIEWED. A reason persists only with
// DISAGREE; flipping to AGREE clears it.
func (w *Workflow) UpdateReceiver(ctx context.Context, legID, actorID uuid.UUID, amount decimal.Decimal, agreementStatusID uuid.UUID, reason string) (*Leg, error) {
	snap, err := w.refdata.Load(ctx)
	if err != nil {
		return nil, err
	}

	tx, err := w.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning workflow tx: %w", err)
	}
	defer tx.Rollback()

	leg, err := tx.GetLegForUpdate(ctx, legID)
	if err != nil {
		return nil, err
	}

	if err := ensureRole(leg, RoleReceiver); err != nil {
		return nil, err
	}

	if err := ensureEditable(leg); err != nil {
		return nil, err
	}

	sender, err := tx.GetSiblingLeg(ctx, leg.TransactionID, RoleSender)
	if err != nil {
		return nil, err
	}

	if sender == nil || sender.Status != StatusReviewed {
		return nil, apperr.InvalidState("sender leg must be reviewed before the receiver can respond")
	}

	validator := NewAgreementValidator(snap)
	if err := validator.ValidateReceiverInput(sender, amount, agreementStatusID, reason); err != nil {
		return nil, err
	}

	var cleanReason *string

	agreement, _ := snap.AgreementStatus(agreementStatusID)
	if agreement.Name != masterdata.AgreementAgree && reason != "" {
		cleanReason = &reason
	}

	if err := tx.UpdateReceiverDecision(ctx, leg.ID, amount, agreementStatusID, cleanReason); err != nil {
		return nil, fmt.Errorf("updating receiver decision: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing receiver update: %w", err)
	}

	leg.Amount = &amount
	leg.AgreementStatusID = &agreementStatusID
	leg.DisagreeReason = cleanReason

	return leg, nil
}

// SubmitReceiver moves an editable receiver leg to PENDING_REVIEW after
// re-checking the persisted agreement decision.
func (w *Workflow) SubmitReceiver(ctx context.Context, legID, actorID uuid.UUID) (*Leg, error) {
	return w.transition(ctx, legID, transition{
		role:          RoleReceiver,
		from:          editableStatuses,
		to:            StatusPendingReview,
		note:          "Receiver submitted for review",
		markPrepare:   true,
		decisionReady: true,
		actorID:       actorID,
	})
}

// ApproveReceiver moves a pending receiver leg to REVIEWED and snapshots the
// sender amount as the frozen comparison basis.
func (w *Workflow) ApproveReceiver(ctx context.Context, legID, actorID uuid.UUID) (*Leg, error) {
	return w.transition(ctx, legID, transition{
		role:           RoleReceiver,
		from:           []Status{StatusPendingReview},
		to:             StatusReviewed,
		note:           "Receiver approved",
		decisionReady:  true,
		snapshotSender: true,
		actorID:        actorID,
	})
}

// RejectReceiver sends a pending receiver leg back to REJECTED, persisting
// the reviewer's reason as the disagree reason.
func (w *Workflow) RejectReceiver(ctx context.Context, legID, actorID uuid.UUID, reason string) (*Leg, error) {
	return w.transition(ctx, legID, transition{
		role:           RoleReceiver,
		from:           []Status{StatusPendingReview},
		to:             StatusRejected,
		note:           "Receiver rejected: " + reason,
		decisionReady:  true,
		disagreeReason: &reason,
		actorID:        actorID,
	})
}

func (w *Workflow) Leg(ctx context.Context, id uuid.UUID) (*Leg, error) {
	return w.repo.GetLeg(ctx, id)
}

func (w *Workflow) Transaction(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	return w.repo.GetTransaction(ctx, id)
}

func (w *Workflow) TransactionsForPeriod(ctx context.Context, periodID uuid.UUID) ([]*Transaction, error) {
	return w.repo.ListTransactionsForPeriod(ctx, periodID)
}

func (w *Workflow) History(ctx context.Context, legID uuid.UUID) ([]*StatusHistory, error) {
	return w.repo.ListHistory(ctx, legID)
}

var editableStatuses = []Status{StatusDraft, StatusRejected}

// transition describes one status move: allowed role and source statuses,
// target status, audit note, and which reviewer/preparer side effects apply.
type transition struct {
	role           Role
	from           []Status
	to             Status
	note           string
	actorID        uuid.UUID
	markPrepare    bool
	decisionReady  bool
	snapshotSender bool
	disagreeReason *string
}

func (w *Workflow) transition(ctx context.Context, legID uuid.UUID, tr transition) (*Leg, error) {
	tx, err := w.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning workflow tx: %w", err)
	}
	defer tx.Rollback()

	leg, err := tx.GetLegForUpdate(ctx, legID)
	if err != nil {
		return nil, err
	}

	if err := ensureRole(leg, tr.role); err != nil {
		return nil, err
	}

	if err := ensureStatus(leg, tr.from); err != nil {
		return nil, err
	}

	if tr.decisionReady {
		snap, err := w.refdata.Load(ctx)
		if err != nil {
			return nil, err
		}

		if err := NewAgreementValidator(snap).EnsureDecisionReady(leg); err != nil {
			return nil, err
		}
	}

	var snapshot *decimal.Decimal

	if tr.snapshotSender {
		sender, err := tx.GetSiblingLeg(ctx, leg.TransactionID, RoleSender)
		if err != nil {
			return nil, err
		}

		if sender != nil {
			snapshot = sender.Amount
		}
	}

	now := w.now()

	if err := tx.AppendHistory(ctx, &StatusHistory{
		LegID:       leg.ID,
		FromStatus:  leg.Status,
		ToStatus:    tr.to,
		ChangedByID: tr.actorID,
		Note:        tr.note,
	}); err != nil {
		return nil, fmt.Errorf("recording status history: %w", err)
	}

	if tr.markPrepare {
		err = tx.MarkSubmitted(ctx, leg.ID, tr.to, tr.actorID, now)
	} else {
		err = tx.MarkReviewed(ctx, leg.ID, tr.to, tr.actorID, now, snapshot, tr.disagreeReason)
	}

	if err != nil {
		return nil, fmt.Errorf("updating leg status: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing transition: %w", err)
	}

	leg.Status = tr.to

	if tr.markPrepare {
		leg.PreparedByID = &tr.actorID
		leg.PreparedAt = &now
	} else {
		leg.ReviewedByID = &tr.actorID
		leg.ReviewedAt = &now
		leg.CounterpartyAmountSnapshot = snapshot

		if tr.disagreeReason != nil {
			leg.DisagreeReason = tr.disagreeReason
		}
	}

	return leg, nil
}

func ensureRole(leg *Leg, role Role) error {
	if leg.Role != role {
		if role == RoleSender {
			return apperr.InvalidState("action only allowed on sender legs")
		}

		return apperr.InvalidState("action only allowed on receiver legs")
	}

	return nil
}

func ensureEditable(leg *Leg) error {
	return ensureStatus(leg, editableStatuses)
}

func ensureStatus(leg *Leg, allowed []Status) error {
	for _, s := range allowed {
		if leg.Status == s {
			return nil
		}
	}

	return apperr.InvalidState("leg is not editable in the current status: %s", leg.Status)
}
