package fiscal

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mfcarvalho/interco/internal/fiscal"
	"github.com/mfcarvalho/interco/internal/http/auth"
	"github.com/mfcarvalho/interco/internal/http/respond"
)

type Handler struct {
	svc *fiscal.Service
}

func NewHandler(svc *fiscal.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.createNext)
	r.Get("/", h.list)
	r.Post("/{id}/close", h.close)
	r.Get("/{id}/periods", h.listPeriods)
}

// PeriodRoutes mounts the period lifecycle commands.
func (h *Handler) PeriodRoutes(r chi.Router) {
	r.Get("/{id}", h.getPeriod)
	r.Post("/{id}/lock", h.lockPeriod)
	r.Post("/{id}/unlock", h.unlockPeriod)
}

func (h *Handler) createNext(w http.ResponseWriter, r *http.Request) {
	if !requireCalendarAdmin(w, r) {
		return
	}

	fy, err := h.svc.CreateNextFiscalYear(r.Context())
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toFiscalYearResponse(fy))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	years, err := h.svc.ListFiscalYears(r.Context())
	if err != nil {
		respond.Error(w, err)
		return
	}

	out := make([]fiscalYearResponse, 0, len(years))
	for _, fy := range years {
		out = append(out, toFiscalYearResponse(fy))
	}

	respond.JSON(w, http.StatusOK, out)
}

func (h *Handler) close(w http.ResponseWriter, r *http.Request) {
	if !requireCalendarAdmin(w, r) {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	fy, err := h.svc.CloseFiscalYear(r.Context(), id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toFiscalYearResponse(fy))
}

func (h *Handler) listPeriods(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	periods, err := h.svc.ListPeriods(r.Context(), id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	out := make([]periodResponse, 0, len(periods))
	for _, p := range periods {
		out = append(out, toPeriodResponse(p))
	}

	respond.JSON(w, http.StatusOK, out)
}

func (h *Handler) getPeriod(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	p, err := h.svc.GetPeriod(r.Context(), id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toPeriodResponse(p))
}

func (h *Handler) lockPeriod(w http.ResponseWriter, r *http.Request) {
	if !requireCalendarAdmin(w, r) {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	p, err := h.svc.LockPeriod(r.Context(), id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toPeriodResponse(p))
}

func (h *Handler) unlockPeriod(w http.ResponseWriter, r *http.Request) {
	if !requireCalendarAdmin(w, r) {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	p, err := h.svc.UnlockPeriod(r.Context(), id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toPeriodResponse(p))
}

func requireCalendarAdmin(w http.ResponseWriter, r *http.Request) bool {
	actor, ok := auth.FromContext(r.Context())
	if !ok || !actor.Can(auth.ActionManageCalendar, uuid.Nil) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return false
	}

	return true
}

type fiscalYearResponse struct {
	ID       uuid.UUID        `json:"id"`
	Label    string           `json:"label"`
	StartsOn string           `json:"starts_on"`
	EndsOn   string           `json:"ends_on"`
	ClosedAt *time.Time       `json:"closed_at,omitempty"`
	Periods  []periodResponse `json:"periods,omitempty"`
}

type periodResponse struct {
	ID           uuid.UUID  `json:"id"`
	FiscalYearID uuid.UUID  `json:"fiscal_year_id"`
	Label        string     `json:"label"`
	PeriodNumber int        `json:"period_number"`
	StartsOn     string     `json:"starts_on"`
	EndsOn       string     `json:"ends_on"`
	Status       string     `json:"status"`
	LockedAt     *time.Time `json:"locked_at,omitempty"`
}

func toFiscalYearResponse(fy *fiscal.FiscalYear) fiscalYearResponse {
	resp := fiscalYearResponse{
		ID:       fy.ID,
		Label:    fy.Label,
		StartsOn: fy.StartsOn.Format(time.DateOnly),
		EndsOn:   fy.EndsOn.Format(time.DateOnly),
		ClosedAt: fy.ClosedAt,
	}

	for _, p := range fy.Periods {
		resp.Periods = append(resp.Periods, toPeriodResponse(p))
	}

	return resp
}

func toPeriodResponse(p *fiscal.Period) periodResponse {
	return periodResponse{
		ID:           p.ID,
		FiscalYearID: p.FiscalYearID,
		Label:        p.Label,
		PeriodNumber: p.PeriodNumber,
		StartsOn:     p.StartsOn.Format(time.DateOnly),
		EndsOn:       p.EndsOn.Format(time.DateOnly),
		Status:       string(p.Status),
		LockedAt:     p.LockedAt,
	}
}
