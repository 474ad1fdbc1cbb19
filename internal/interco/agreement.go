package interco

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mfcarvalho/interco/internal/apperr"
	"github.com/mfcarvalho/interco/internal/masterdata"
)

// amountEpsilon is the canonical equality tolerance for monetary comparison.
var amountEpsilon = decimal.RequireFromString("0.0001")

// AmountsMatch reports whether two amounts are equal within the canonical
// tolerance.
func AmountsMatch(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(amountEpsilon)
}

// AgreementValidator checks receiver amount/agreement/reason combinations
// against the reference-data snapshot. It holds no persistence.
type AgreementValidator struct {
	snap *masterdata.Snapshot
}

func NewAgreementValidator(snap *masterdata.Snapshot) *AgreementValidator {
	return &AgreementValidator{snap: snap}
}

// ValidateReceiverInput checks a proposed receiver edit. senderLeg is the
// sibling sender leg; a transaction without one is a validation failure.
func (v *AgreementValidator) ValidateReceiverInput(senderLeg *Leg, amount decimal.Decimal, agreementStatusID uuid.UUID, reason string) error {
	agreement, ok := v.snap.AgreementStatus(agreementStatusID)
	if !ok {
		return apperr.Validation("agreement_status_id", "invalid agreement status selected")
	}

	if agreement.Name == masterdata.AgreementUnknown {
		return apperr.Validation("agreement_status_id", "select agree or disagree before continuing")
	}

	if senderLeg == nil {
		return apperr.Validation("agreement_status_id", "sender leg missing for this transaction")
	}

	senderAmount := decimal.Zero
	if senderLeg.Amount != nil {
		senderAmount = *senderLeg.Amount
	}

	switch agreement.Name {
	case masterdata.AgreementAgree:
		if !AmountsMatch(amount, senderAmount) {
			return apperr.Validation("agreement_status_id", "you can only agree if your amount matches the sender amount")
		}

		if strings.TrimSpace(reason) != "" {
			return apperr.Validation("disagree_reason", "do not provide a reason when agreeing")
		}
	case masterdata.AgreementDisagree:
		if strings.TrimSpace(reason) == "" {
			return apperr.Validation("disagree_reason", "provide a reason when disagreeing with the counterparty amount")
		}
	}

	return nil
}

// EnsureDecisionReady re-checks the persisted agreement state of a receiver
// leg before submission or review. It guards against stale state reaching the
// workflow independently of the edit-time validation.
func (v *AgreementValidator) EnsureDecisionReady(leg *Leg) error {
	if leg.AgreementStatusID == nil {
		return apperr.Validation("agreement_status_id", "select agree or disagree before continuing")
	}

	agreement, ok := v.snap.AgreementStatus(*leg.AgreementStatusID)
	if !ok || agreement.Name == masterdata.AgreementUnknown {
		return apperr.Validation("agreement_status_id", "select agree or disagree before continuing")
	}

	reason := ""
	if leg.DisagreeReason != nil {
		reason = *leg.DisagreeReason
	}

	switch agreement.Name {
	case masterdata.AgreementAgree:
		if strings.TrimSpace(reason) != "" {
			return apperr.Validation("disagree_reason", "do not provide a reason when agreeing")
		}
	case masterdata.AgreementDisagree:
		if strings.TrimSpace(reason) == "" {
			return apperr.Validation("disagree_reason", "provide a reason when disagreeing with the counterparty amount")
		}
	}

	return nil
}
