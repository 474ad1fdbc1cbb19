package template

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mfcarvalho/interco/internal/http/respond"
	"github.com/mfcarvalho/interco/internal/template"
)

type Handler struct {
	svc *template.Service
}

func NewHandler(svc *template.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Patch("/{id}/active", h.setActive)
}

type templateRequest struct {
	FinancialStatementID uuid.UUID        `json:"financial_statement_id"`
	SenderCompanyID      uuid.UUID        `json:"sender_company_id"`
	ReceiverCompanyID    uuid.UUID        `json:"receiver_company_id"`
	SenderCategoryID     uuid.UUID        `json:"sender_account_category_id"`
	SenderAccountID      uuid.UUID        `json:"sender_hfm_account_id"`
	ReceiverCategoryID   uuid.UUID        `json:"receiver_account_category_id"`
	ReceiverAccountID    uuid.UUID        `json:"receiver_hfm_account_id"`
	Description          string           `json:"description"`
	Currency             string           `json:"currency"`
	DefaultAmount        *decimal.Decimal `json:"default_amount,omitempty"`
}

func (r templateRequest) params() template.CreateParams {
	return template.CreateParams{
		FinancialStatementID: r.FinancialStatementID,
		SenderCompanyID:      r.SenderCompanyID,
		ReceiverCompanyID:    r.ReceiverCompanyID,
		SenderCategoryID:     r.SenderCategoryID,
		SenderAccountID:      r.SenderAccountID,
		ReceiverCategoryID:   r.ReceiverCategoryID,
		ReceiverAccountID:    r.ReceiverAccountID,
		Description:          r.Description,
		Currency:             r.Currency,
		DefaultAmount:        r.DefaultAmount,
	}
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req templateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	t, err := h.svc.Create(r.Context(), req.params())
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(t))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := template.ListFilter{}

	if s := r.URL.Query().Get("financial_statement_id"); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			filter.FinancialStatementID = &id
		}
	}

	if r.URL.Query().Get("active") == "true" {
		filter.ActiveOnly = true
	}

	templates, err := h.svc.List(r.Context(), filter)
	if err != nil {
		respond.Error(w, err)
		return
	}

	out := make([]templateResponse, 0, len(templates))
	for _, t := range templates {
		out = append(out, toResponse(t))
	}

	respond.JSON(w, http.StatusOK, out)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	t, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(t))
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req templateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	t, err := h.svc.Update(r.Context(), id, req.params())
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(t))
}

type setActiveRequest struct {
	Active bool `json:"active"`
}

func (h *Handler) setActive(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req setActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.SetActive(r.Context(), id, req.Active); err != nil {
		respond.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type templateResponse struct {
	ID                   uuid.UUID        `json:"id"`
	FinancialStatementID uuid.UUID        `json:"financial_statement_id"`
	SenderCompanyID      uuid.UUID        `json:"sender_company_id"`
	ReceiverCompanyID    uuid.UUID        `json:"receiver_company_id"`
	SenderCategoryID     uuid.UUID        `json:"sender_account_category_id"`
	SenderAccountID      uuid.UUID        `json:"sender_hfm_account_id"`
	ReceiverCategoryID   uuid.UUID        `json:"receiver_account_category_id"`
	ReceiverAccountID    uuid.UUID        `json:"receiver_hfm_account_id"`
	Description          string           `json:"description"`
	Currency             string           `json:"currency"`
	DefaultAmount        *decimal.Decimal `json:"default_amount,omitempty"`
	IsActive             bool             `json:"is_active"`
	CreatedAt            time.Time        `json:"created_at"`
}

func toResponse(t *template.Template) templateResponse {
	return templateResponse{
		ID:                   t.ID,
		FinancialStatementID: t.FinancialStatementID,
		SenderCompanyID:      t.SenderCompanyID,
		ReceiverCompanyID:    t.ReceiverCompanyID,
		SenderCategoryID:     t.SenderCategoryID,
		SenderAccountID:      t.SenderAccountID,
		ReceiverCategoryID:   t.ReceiverCategoryID,
		ReceiverAccountID:    t.ReceiverAccountID,
		Description:          t.Description,
		Currency:             t.Currency,
		DefaultAmount:        t.DefaultAmount,
		IsActive:             t.IsActive,
		CreatedAt:            t.CreatedAt,
	}
}
