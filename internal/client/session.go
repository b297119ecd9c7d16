package client

import (
	"context"
	"log/slog"
	"strings"

	"salonledger/internal/core"
	"salonledger/internal/record"
	"salonledger/internal/store"
	"salonledger/internal/summary"

	"golang.org/x/sync/errgroup"
)

// Session owns a record store fed by parallel list fetches. All reads
// (resolution, summary, price suggestions) run against the cached lists.
type Session struct {
	api   *API
	store *store.Store
}

func NewSession(api *API) *Session {
	return &Session{
		api:   api,
		store: store.New(),
	}
}

// Store exposes the cached record lists and the name resolvers.
func (s *Session) Store() *store.Store {
	return s.store
}

// Refresh fetches every kind's list in parallel and replaces the cached
// lists wholesale. Fetches are all-settled: an individual failure logs,
// leaves that kind's list at its previous value, and never fails the join.
// The store starts empty, so a kind that has never loaded stays empty.
// Per-kind tasks touch only their own list, so a failed fetch cannot
// clobber another kind's data.
func (s *Session) Refresh(ctx context.Context) error {
	var g errgroup.Group
	for _, kind := range core.Kinds() {
		g.Go(func() error {
			recs, err := s.api.List(ctx, kind)
			if err != nil {
				slog.WarnContext(ctx, "List refresh failed, keeping previous list",
					"kind", kind.String(),
					"error", err)
				return nil
			}
			s.store.ReplaceAll(kind, recs)
			return nil
		})
	}
	return g.Wait()
}

// Summary aggregates the cached appointment and expense lists for one month.
func (s *Session) Summary(year, month int) summary.MonthlySummary {
	return summary.ForMonth(year, month,
		s.store.List(core.KindAppointment),
		s.store.List(core.KindExpense))
}

// SuggestedPrice looks a service up by identifier or display name and
// returns its base price formatted for an amount input, e.g. "40.00".
func (s *Session) SuggestedPrice(ref string) (string, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", false
	}
	if rec, ok := s.store.FindByID(core.KindService, ref); ok {
		return record.ServicePrice(rec).Format(), true
	}
	for _, rec := range s.store.List(core.KindService) {
		if record.ServiceName(rec) == ref {
			return record.ServicePrice(rec).Format(), true
		}
	}
	return "", false
}

// CreateClient validates locally and posts the new client. Invalid input
// never issues a transport call.
func (s *Session) CreateClient(ctx context.Context, c core.Client) (string, error) {
	if err := c.Validate(); err != nil {
		return "", err
	}
	return s.api.Create(ctx, core.KindClient, map[string]any{
		"name":  c.Name,
		"phone": c.Phone,
		"notes": c.Notes,
	})
}

func (s *Session) CreateService(ctx context.Context, svc core.Service) (string, error) {
	if err := svc.Validate(); err != nil {
		return "", err
	}
	return s.api.Create(ctx, core.KindService, map[string]any{
		"name":      svc.Name,
		"category":  svc.Category,
		"basePrice": svc.BasePrice.Format(),
		"active":    svc.Active,
	})
}

// CreateAppointment sends the denormalized client and service names next to
// the references, resolving them from the cached lists when the caller left
// them blank.
func (s *Session) CreateAppointment(ctx context.Context, a core.Appointment) (string, error) {
	if err := a.Validate(); err != nil {
		return "", err
	}
	if a.ClientName == "" {
		if rec, ok := s.store.FindByID(core.KindClient, a.ClientRef); ok {
			a.ClientName = record.ClientName(rec)
		}
	}
	if a.ServiceName == "" {
		if rec, ok := s.store.FindByID(core.KindService, a.ServiceRef); ok {
			a.ServiceName = record.ServiceName(rec)
		}
	}
	return s.api.Create(ctx, core.KindAppointment, map[string]any{
		"date":          a.Date,
		"clientId":      a.ClientRef,
		"clientName":    a.ClientName,
		"serviceId":     a.ServiceRef,
		"serviceName":   a.ServiceName,
		"total":         a.Total.Format(),
		"paymentMethod": a.PaymentMethod,
		"notes":         a.Notes,
	})
}

func (s *Session) CreateExpense(ctx context.Context, e core.Expense) (string, error) {
	if err := e.Validate(); err != nil {
		return "", err
	}
	return s.api.Create(ctx, core.KindExpense, map[string]any{
		"date":          e.Date,
		"category":      e.Category,
		"description":   e.Description,
		"amount":        e.Amount.Format(),
		"paymentMethod": e.PaymentMethod,
		"notes":         e.Notes,
	})
}
