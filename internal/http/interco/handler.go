package interco

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mfcarvalho/interco/internal/fiscal"
	"github.com/mfcarvalho/interco/internal/http/auth"
	"github.com/mfcarvalho/interco/internal/http/respond"
	"github.com/mfcarvalho/interco/internal/interco"
)

// Handler dispatches reconciliation commands. It enforces the entry-point
// gates the core leaves to the caller: period lock state and actor
// authorization.
type Handler struct {
	workflow  *interco.Workflow
	generator *interco.Generator
	periods   *fiscal.Service
}

func NewHandler(workflow *interco.Workflow, generator *interco.Generator, periods *fiscal.Service) *Handler {
	return &Handler{workflow: workflow, generator: generator, periods: periods}
}

// PeriodRoutes mounts generation and period-scoped queries.
func (h *Handler) PeriodRoutes(r chi.Router) {
	r.Post("/{id}/transactions/generate", h.generate)
	r.Get("/{id}/transactions", h.listTransactions)
}

// LegRoutes mounts the leg workflow commands and queries.
func (h *Handler) LegRoutes(r chi.Router) {
	r.Get("/{id}", h.getLeg)
	r.Get("/{id}/history", h.history)
	r.Patch("/{id}/amount", h.updateSenderAmount)
	r.Post("/{id}/submit", h.submit)
	r.Post("/{id}/approve", h.approve)
	r.Post("/{id}/reject", h.reject)
	r.Patch("/{id}/receiver", h.updateReceiver)
	r.Post("/{id}/receiver/submit", h.submitReceiver)
	r.Post("/{id}/receiver/approve", h.approveReceiver)
	r.Post("/{id}/receiver/reject", h.rejectReceiver)
}

type generateRequest struct {
	FinancialStatementID *uuid.UUID `json:"financial_statement_id,omitempty"`
}

type generateResponse struct {
	Created int `json:"created"`
}

func (h *Handler) generate(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.FromContext(r.Context())
	if !ok || !actor.Can(auth.ActionManageCalendar, uuid.Nil) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	periodID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req generateRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	period, err := h.periods.GetPeriod(r.Context(), periodID)
	if err != nil {
		respond.Error(w, err)
		return
	}

	if period.IsLocked() {
		http.Error(w, "period is locked", http.StatusConflict)
		return
	}

	created, err := h.generator.GenerateForPeriod(r.Context(), period.ID, req.FinancialStatementID)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, generateResponse{Created: created})
}

func (h *Handler) listTransactions(w http.ResponseWriter, r *http.Request) {
	periodID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	txns, err := h.workflow.TransactionsForPeriod(r.Context(), periodID)
	if err != nil {
		respond.Error(w, err)
		return
	}

	out := make([]transactionResponse, 0, len(txns))
	for _, txn := range txns {
		out = append(out, toTransactionResponse(txn))
	}

	respond.JSON(w, http.StatusOK, out)
}

func (h *Handler) getLeg(w http.ResponseWriter, r *http.Request) {
	leg, ok := h.loadLeg(w, r)
	if !ok {
		return
	}

	respond.JSON(w, http.StatusOK, toLegResponse(leg))
}

func (h *Handler) history(w http.ResponseWriter, r *http.Request) {
	leg, ok := h.loadLeg(w, r)
	if !ok {
		return
	}

	history, err := h.workflow.History(r.Context(), leg.ID)
	if err != nil {
		respond.Error(w, err)
		return
	}

	out := make([]historyResponse, 0, len(history))
	for _, entry := range history {
		out = append(out, historyResponse{
			FromStatus: string(entry.FromStatus),
			ToStatus:   string(entry.ToStatus),
			ChangedBy:  entry.ChangedByID,
			Note:       entry.Note,
			CreatedAt:  entry.CreatedAt,
		})
	}

	respond.JSON(w, http.StatusOK, out)
}

type updateSenderAmountRequest struct {
	Amount           decimal.Decimal  `json:"amount"`
	AdjustmentAmount *decimal.Decimal `json:"adjustment_amount,omitempty"`
}

func (h *Handler) updateSenderAmount(w http.ResponseWriter, r *http.Request) {
	var req updateSenderAmountRequest

	leg, actor, ok := h.gate(w, r, auth.ActionPrepare, &req)
	if !ok {
		return
	}

	adjustment := decimal.Zero
	if req.AdjustmentAmount != nil {
		adjustment = *req.AdjustmentAmount
	}

	updated, err := h.workflow.UpdateSenderAmount(r.Context(), leg.ID, actor.ID, req.Amount, adjustment)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toLegResponse(updated))
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	leg, actor, ok := h.gate(w, r, auth.ActionPrepare, nil)
	if !ok {
		return
	}

	updated, err := h.workflow.Submit(r.Context(), leg.ID, actor.ID)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toLegResponse(updated))
}

func (h *Handler) approve(w http.ResponseWriter, r *http.Request) {
	leg, actor, ok := h.gate(w, r, auth.ActionReview, nil)
	if !ok {
		return
	}

	updated, err := h.workflow.Approve(r.Context(), leg.ID, actor.ID)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toLegResponse(updated))
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

func (h *Handler) reject(w http.ResponseWriter, r *http.Request) {
	var req rejectRequest

	leg, actor, ok := h.gate(w, r, auth.ActionReview, &req)
	if !ok {
		return
	}

	updated, err := h.workflow.Reject(r.Context(), leg.ID, actor.ID, req.Reason)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toLegResponse(updated))
}

type updateReceiverRequest struct {
	Amount            decimal.Decimal `json:"amount"`
	AgreementStatusID uuid.UUID       `json:"agreement_status_id"`
	DisagreeReason    string          `json:"disagree_reason,omitempty"`
}

func (h *Handler) updateReceiver(w http.ResponseWriter, r *http.Request) {
	var req updateReceiverRequest

	leg, actor, ok := h.gate(w, r, auth.ActionPrepare, &req)
	if !ok {
		return
	}

	updated, err := h.workflow.UpdateReceiver(r.Context(), leg.ID, actor.ID, req.Amount, req.AgreementStatusID, req.DisagreeReason)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toLegResponse(updated))
}

func (h *Handler) submitReceiver(w http.ResponseWriter, r *http.Request) {
	leg, actor, ok := h.gate(w, r, auth.ActionPrepare, nil)
	if !ok {
		return
	}

	updated, err := h.workflow.SubmitReceiver(r.Context(), leg.ID, actor.ID)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toLegResponse(updated))
}

func (h *Handler) approveReceiver(w http.ResponseWriter, r *http.Request) {
	leg, actor, ok := h.gate(w, r, auth.ActionReview, nil)
	if !ok {
		return
	}

	updated, err := h.workflow.ApproveReceiver(r.Context(), leg.ID, actor.ID)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toLegResponse(updated))
}

func (h *Handler) rejectReceiver(w http.ResponseWriter, r *http.Request) {
	var req rejectRequest

	leg, actor, ok := h.gate(w, r, auth.ActionReview, &req)
	if !ok {
		return
	}

	updated, err := h.workflow.RejectReceiver(r.Context(), leg.ID, actor.ID, req.Reason)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toLegResponse(updated))
}

func (h *Handler) loadLeg(w http.ResponseWriter, r *http.Request) (*interco.Leg, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return nil, false
	}

	leg, err := h.workflow.Leg(r.Context(), id)
	if err != nil {
		respond.Error(w, err)
		return nil, false
	}

	return leg, true
}

// gate loads the leg, decodes the optional body, and applies the entry-point
// checks: actor capability for the leg's company, then period lock state.
func (h *Handler) gate(w http.ResponseWriter, r *http.Request, action auth.Action, body any) (*interco.Leg, auth.Actor, bool) {
	leg, ok := h.loadLeg(w, r)
	if !ok {
		return nil, auth.Actor{}, false
	}

	if body != nil {
		if err := json.NewDecoder(r.Body).Decode(body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return nil, auth.Actor{}, false
		}
	}

	actor, found := auth.FromContext(r.Context())
	if !found || !actor.Can(action, leg.CompanyID) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return nil, auth.Actor{}, false
	}

	txn, err := h.workflow.Transaction(r.Context(), leg.TransactionID)
	if err != nil {
		respond.Error(w, err)
		return nil, auth.Actor{}, false
	}

	period, err := h.periods.GetPeriod(r.Context(), txn.PeriodID)
	if err != nil {
		respond.Error(w, err)
		return nil, auth.Actor{}, false
	}

	if period.IsLocked() {
		http.Error(w, "period is locked", http.StatusConflict)
		return nil, auth.Actor{}, false
	}

	return leg, actor, true
}

type transactionResponse struct {
	ID                       uuid.UUID     `json:"id"`
	PeriodID                 uuid.UUID     `json:"period_id"`
	TemplateID               uuid.UUID     `json:"transaction_template_id"`
	FinancialStatementID     uuid.UUID     `json:"financial_statement_id"`
	SenderCompanyID          uuid.UUID     `json:"sender_company_id"`
	ReceiverCompanyID        uuid.UUID     `json:"receiver_company_id"`
	Currency                 string        `json:"currency"`
	CreatedFromDefaultAmount bool          `json:"created_from_default_amount"`
	Legs                     []legResponse `json:"legs,omitempty"`
}

type legResponse struct {
	ID                         uuid.UUID        `json:"id"`
	TransactionID              uuid.UUID        `json:"ic_transaction_id"`
	CompanyID                  uuid.UUID        `json:"company_id"`
	CounterpartyCompanyID      uuid.UUID        `json:"counterparty_company_id"`
	Role                       string           `json:"leg_role"`
	Nature                     string           `json:"leg_nature"`
	AccountID                  uuid.UUID        `json:"hfm_account_id"`
	Status                     string           `json:"status"`
	Amount                     *decimal.Decimal `json:"amount,omitempty"`
	AdjustmentAmount           decimal.Decimal  `json:"adjustment_amount"`
	AgreementStatusID          *uuid.UUID       `json:"agreement_status_id,omitempty"`
	DisagreeReason             *string          `json:"disagree_reason,omitempty"`
	CounterpartyAmountSnapshot *decimal.Decimal `json:"counterparty_amount_snapshot,omitempty"`
	PreparedByID               *uuid.UUID       `json:"prepared_by_id,omitempty"`
	PreparedAt                 *time.Time       `json:"prepared_at,omitempty"`
	ReviewedByID               *uuid.UUID       `json:"reviewed_by_id,omitempty"`
	ReviewedAt                 *time.Time       `json:"reviewed_at,omitempty"`
}

type historyResponse struct {
	FromStatus string    `json:"from_status"`
	ToStatus   string    `json:"to_status"`
	ChangedBy  uuid.UUID `json:"changed_by"`
	Note       string    `json:"note"`
	CreatedAt  time.Time `json:"created_at"`
}

func toTransactionResponse(txn *interco.Transaction) transactionResponse {
	resp := transactionResponse{
		ID:                       txn.ID,
		PeriodID:                 txn.PeriodID,
		TemplateID:               txn.TemplateID,
		FinancialStatementID:     txn.FinancialStatementID,
		SenderCompanyID:          txn.SenderCompanyID,
		ReceiverCompanyID:        txn.ReceiverCompanyID,
		Currency:                 txn.Currency,
		CreatedFromDefaultAmount: txn.CreatedFromDefaultAmount,
	}

	for _, leg := range txn.Legs {
		resp.Legs = append(resp.Legs, toLegResponse(leg))
	}

	return resp
}

func toLegResponse(leg *interco.Leg) legResponse {
	return legResponse{
		ID:                         leg.ID,
		TransactionID:              leg.TransactionID,
		CompanyID:                  leg.CompanyID,
		CounterpartyCompanyID:      leg.CounterpartyCompanyID,
		Role:                       string(leg.Role),
		Nature:                     string(leg.Nature),
		AccountID:                  leg.AccountID,
		Status:                     string(leg.Status),
		Amount:                     leg.Amount,
		AdjustmentAmount:           leg.AdjustmentAmount,
		AgreementStatusID:          leg.AgreementStatusID,
		DisagreeReason:             leg.DisagreeReason,
		CounterpartyAmountSnapshot: leg.CounterpartyAmountSnapshot,
		PreparedByID:               leg.PreparedByID,
		PreparedAt:                 leg.PreparedAt,
		ReviewedByID:               leg.ReviewedByID,
		ReviewedAt:                 leg.ReviewedAt,
	}
}
