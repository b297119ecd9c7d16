package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"salonledger/internal/core"
	"salonledger/internal/record"
	"salonledger/internal/sheets"
	"salonledger/internal/summary"
)

// backendTimeout bounds spreadsheet round trips so API calls never hang.
const backendTimeout = 7 * time.Second

func (s *Server) handleAPI(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.handleRead(w, r)
	case http.MethodPost:
		s.handleCreate(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		writeFailure(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) handleRead(w http.ResponseWriter, r *http.Request) {
	action := strings.TrimSpace(r.URL.Query().Get("action"))

	if kind, ok := core.KindForAction(action); ok {
		s.handleList(w, r, kind)
		return
	}
	if action == "monthlySummary" {
		s.handleMonthlySummary(w, r)
		return
	}

	slog.WarnContext(r.Context(), "Unknown action", "action", action)
	writeFailure(w, http.StatusBadRequest, "unknown action: "+action)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request, kind core.Kind) {
	ctx, cancel := context.WithTimeout(r.Context(), backendTimeout)
	defer cancel()

	recs, err := s.backend.ListRecords(ctx, kind)
	if err != nil {
		slog.ErrorContext(r.Context(), "List error", "kind", kind.String(), "error", err)
		writeFailure(w, http.StatusInternalServerError, "failed to list "+kind.Plural())
		return
	}
	if recs == nil {
		recs = []record.Record{}
	}

	writeSuccess(w, map[string]any{kind.Plural(): recs})
}

func (s *Server) handleMonthlySummary(w http.ResponseWriter, r *http.Request) {
	month := strings.TrimSpace(r.URL.Query().Get("month"))
	year, m, err := summary.ParseMonthKey(month)
	if err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid month, want YYYY-MM")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), backendTimeout)
	defer cancel()

	appointments, err := s.backend.ListRecords(ctx, core.KindAppointment)
	if err != nil {
		slog.ErrorContext(r.Context(), "Summary list error", "kind", "appointment", "error", err)
		writeFailure(w, http.StatusInternalServerError, "failed to compute summary")
		return
	}
	expenses, err := s.backend.ListRecords(ctx, core.KindExpense)
	if err != nil {
		slog.ErrorContext(r.Context(), "Summary list error", "kind", "expense", "error", err)
		writeFailure(w, http.StatusInternalServerError, "failed to compute summary")
		return
	}

	sum := summary.ForMonth(year, m, appointments, expenses)
	writeSuccess(w, map[string]any{
		"month":         sum.MonthKey(),
		"totalIncome":   sum.Income.Format(),
		"totalExpenses": sum.Expenses.Format(),
		"net":           sum.Net.Format(),
	})
}

// createRequest is the union of the writable fields of every kind. Amounts
// come as either JSON numbers or decimal strings, so they stay loose here
// and get coerced per kind.
type createRequest struct {
	Kind string `json:"kind"`

	Name  string `json:"name"`
	Phone string `json:"phone"`
	Notes string `json:"notes"`

	Category  string `json:"category"`
	BasePrice any    `json:"basePrice"`
	Active    *bool  `json:"active"`

	Date          string `json:"date"`
	ClientID      string `json:"clientId"`
	ClientName    string `json:"clientName"`
	ServiceID     string `json:"serviceId"`
	ServiceName   string `json:"serviceName"`
	Total         any    `json:"total"`
	PaymentMethod string `json:"paymentMethod"`

	Description string `json:"description"`
	Amount      any    `json:"amount"`
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid request body")
		return
	}

	kind := core.Kind(strings.TrimSpace(req.Kind))
	if !kind.IsValid() {
		writeFailure(w, http.StatusBadRequest, "unknown kind: "+req.Kind)
		return
	}

	rec, id, err := buildRow(kind, req)
	if err != nil {
		writeFailure(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), backendTimeout)
	defer cancel()

	ref, err := s.backend.AppendRecord(ctx, kind, rec)
	if err != nil {
		slog.ErrorContext(r.Context(), "Append error", "kind", kind.String(), "error", err)
		writeFailure(w, http.StatusInternalServerError, "failed to save "+kind.String())
		return
	}

	slog.InfoContext(r.Context(), "Record created",
		"kind", kind.String(),
		"row_ref", ref)

	if id == "" {
		// Kinds without identifiers answer with the row reference.
		id = ref
	}
	writeSuccess(w, map[string]any{"id": id})
}

// buildRow validates the request for its kind and maps it onto the canonical
// row layout. The returned id is the synthesized identifier for kinds that
// carry one, "" otherwise.
func buildRow(kind core.Kind, req createRequest) (record.Record, string, error) {
	switch kind {
	case core.KindClient:
		c := core.Client{
			Name:         strings.TrimSpace(req.Name),
			Phone:        strings.TrimSpace(req.Phone),
			Notes:        strings.TrimSpace(req.Notes),
			RegisteredAt: time.Now(),
		}
		if err := c.Validate(); err != nil {
			return nil, "", err
		}
		c.ID = sheets.SynthesizeID(kind)
		return sheets.ClientRow(c), c.ID, nil

	case core.KindService:
		price, ok := coerceOptionalAmount(req.BasePrice)
		if !ok {
			return nil, "", core.ErrInvalidAmount
		}
		svc := core.Service{
			Name:         strings.TrimSpace(req.Name),
			Category:     strings.TrimSpace(req.Category),
			BasePrice:    price,
			Active:       req.Active == nil || *req.Active,
			RegisteredAt: time.Now(),
		}
		if err := svc.Validate(); err != nil {
			return nil, "", err
		}
		svc.ID = sheets.SynthesizeID(kind)
		return sheets.ServiceRow(svc), svc.ID, nil

	case core.KindAppointment:
		total, ok := coerceOptionalAmount(req.Total)
		if !ok {
			return nil, "", core.ErrInvalidAmount
		}
		appt := core.Appointment{
			Date:          strings.TrimSpace(req.Date),
			ClientRef:     strings.TrimSpace(req.ClientID),
			ClientName:    strings.TrimSpace(req.ClientName),
			ServiceRef:    strings.TrimSpace(req.ServiceID),
			ServiceName:   strings.TrimSpace(req.ServiceName),
			Total:         total,
			PaymentMethod: strings.TrimSpace(req.PaymentMethod),
			Notes:         strings.TrimSpace(req.Notes),
		}
		if err := appt.Validate(); err != nil {
			return nil, "", err
		}
		return sheets.AppointmentRow(appt), "", nil

	case core.KindExpense:
		amount, ok := coerceOptionalAmount(req.Amount)
		if !ok {
			return nil, "", core.ErrInvalidAmount
		}
		exp := core.Expense{
			Date:          strings.TrimSpace(req.Date),
			Category:      strings.TrimSpace(req.Category),
			Description:   strings.TrimSpace(req.Description),
			Amount:        amount,
			PaymentMethod: strings.TrimSpace(req.PaymentMethod),
			Notes:         strings.TrimSpace(req.Notes),
		}
		if err := exp.Validate(); err != nil {
			return nil, "", err
		}
		return sheets.ExpenseRow(exp), "", nil
	}

	return nil, "", core.ErrInvalidAmount
}

// coerceOptionalAmount treats an absent field as zero and rejects garbage.
// Whether zero is acceptable is the kind's Validate call, not this one.
func coerceOptionalAmount(v any) (core.Money, bool) {
	if v == nil {
		return core.Money{}, true
	}
	cents, ok := core.CoerceCents(v)
	if !ok {
		return core.Money{}, false
	}
	return core.Money{Cents: cents}, true
}
