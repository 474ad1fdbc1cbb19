package interco_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfcarvalho/interco/internal/apperr"
	"github.com/mfcarvalho/interco/internal/interco"
	"github.com/mfcarvalho/interco/internal/masterdata"
)

var (
	agreeID    = uuid.New()
	disagreeID = uuid.New()
	unknownID  = uuid.New()
)

func testSnapshot() *masterdata.Snapshot {
	return masterdata.NewSnapshot(
		nil, nil, nil, nil,
		[]masterdata.AgreementStatus{
			{ID: unknownID, Name: masterdata.AgreementUnknown, DisplayLabel: "Unknown"},
			{ID: agreeID, Name: masterdata.AgreementAgree, DisplayLabel: "Agree"},
			{ID: disagreeID, Name: masterdata.AgreementDisagree, DisplayLabel: "Disagree"},
		},
		nil,
	)
}

func amt(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestAmountsMatch(t *testing.T) {
	assert.True(t, interco.AmountsMatch(decimal.RequireFromString("100.00"), decimal.RequireFromString("100.0000")))
	assert.True(t, interco.AmountsMatch(decimal.RequireFromString("100.0001"), decimal.RequireFromString("100.0002")))
	assert.False(t, interco.AmountsMatch(decimal.RequireFromString("100.00"), decimal.RequireFromString("100.01")))
	assert.False(t, interco.AmountsMatch(decimal.RequireFromString("100"), decimal.RequireFromString("-100")))
}

func TestAgreementValidator_ValidateReceiverInput(t *testing.T) {
	sender := &interco.Leg{
		Role:   interco.RoleSender,
		Status: interco.StatusReviewed,
		Amount: amt("1500.00"),
	}

	type testCase struct {
		name        string
		sender      *interco.Leg
		amount      decimal.Decimal
		agreementID uuid.UUID
		reason      string
		wantErr     bool
		wantField   string
	}

	tests := []testCase{
		{
			name:        "AgreeWithMatchingAmount",
			sender:      sender,
			amount:      decimal.RequireFromString("1500.00"),
			agreementID: agreeID,
		},
		{
			name:        "AgreeWithinTolerance",
			sender:      sender,
			amount:      decimal.RequireFromString("1500.0001"),
			agreementID: agreeID,
		},
		{
			name:        "AgreeWithMismatch",
			sender:      sender,
			amount:      decimal.RequireFromString("1400.00"),
			agreementID: agreeID,
			wantErr:     true,
			wantField:   "agreement_status_id",
		},
		{
			name:        "AgreeWithReason",
			sender:      sender,
			amount:      decimal.RequireFromString("1500.00"),
			agreementID: agreeID,
			reason:      "should not be here",
			wantErr:     true,
			wantField:   "disagree_reason",
		},
		{
			name:        "DisagreeWithReason",
			sender:      sender,
			amount:      decimal.RequireFromString("1400.00"),
			agreementID: disagreeID,
			reason:      "our books show 1400",
		},
		{
			name:        "DisagreeWithoutReason",
			sender:      sender,
			amount:      decimal.RequireFromString("1400.00"),
			agreementID: disagreeID,
			wantErr:     true,
			wantField:   "disagree_reason",
		},
		{
			name:        "DisagreeWithBlankReason",
			sender:      sender,
			amount:      decimal.RequireFromString("1400.00"),
			agreementID: disagreeID,
			reason:      "   ",
			wantErr:     true,
			wantField:   "disagree_reason",
		},
		{
			name:        "UnknownStatus",
			sender:      sender,
			amount:      decimal.RequireFromString("1500.00"),
			agreementID: unknownID,
			wantErr:     true,
			wantField:   "agreement_status_id",
		},
		{
			name:        "UnrecognizedStatusID",
			sender:      sender,
			amount:      decimal.RequireFromString("1500.00"),
			agreementID: uuid.New(),
			wantErr:     true,
			wantField:   "agreement_status_id",
		},
		{
			name:        "MissingSenderLeg",
			sender:      nil,
			amount:      decimal.RequireFromString("1500.00"),
			agreementID: agreeID,
			wantErr:     true,
			wantField:   "agreement_status_id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := interco.NewAgreementValidator(testSnapshot())
			err := v.ValidateReceiverInput(tt.sender, tt.amount, tt.agreementID, tt.reason)

			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, apperr.IsKind(err, apperr.KindValidationFailed))

			var domainErr *apperr.Error
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, tt.wantField, domainErr.Field)
		})
	}
}

func TestAgreementValidator_ValidateReceiverInput_NilSenderAmount(t *testing.T) {
	// A sender leg without an amount compares as zero.
	sender := &interco.Leg{Role: interco.RoleSender, Status: interco.StatusReviewed}

	v := interco.NewAgreementValidator(testSnapshot())

	assert.NoError(t, v.ValidateReceiverInput(sender, decimal.Zero, agreeID, ""))
	assert.Error(t, v.ValidateReceiverInput(sender, decimal.RequireFromString("10"), agreeID, ""))
}

func TestAgreementValidator_EnsureDecisionReady(t *testing.T) {
	reason := "amounts differ"
	blank := "  "

	type testCase struct {
		name    string
		leg     *interco.Leg
		wantErr bool
	}

	tests := []testCase{
		{
			name: "AgreeNoReason",
			leg:  &interco.Leg{AgreementStatusID: &agreeID},
		},
		{
			name: "DisagreeWithReason",
			leg:  &interco.Leg{AgreementStatusID: &disagreeID, DisagreeReason: &reason},
		},
		{
			name:    "NoDecision",
			leg:     &interco.Leg{},
			wantErr: true,
		},
		{
			name:    "StillUnknown",
			leg:     &interco.Leg{AgreementStatusID: &unknownID},
			wantErr: true,
		},
		{
			name:    "AgreeWithLeftoverReason",
			leg:     &interco.Leg{AgreementStatusID: &agreeID, DisagreeReason: &reason},
			wantErr: true,
		},
		{
			name:    "DisagreeWithBlankReason",
			leg:     &interco.Leg{AgreementStatusID: &disagreeID, DisagreeReason: &blank},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := interco.NewAgreementValidator(testSnapshot())
			err := v.EnsureDecisionReady(tt.leg)

			if tt.wantErr {
				assert.True(t, apperr.IsKind(err, apperr.KindValidationFailed))
				return
			}

			assert.NoError(t, err)
		})
	}
}
