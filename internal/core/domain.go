package core

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyName        = errors.New("empty name")
	ErrEmptyCategory    = errors.New("empty category")
	ErrNegativePrice    = errors.New("negative price")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrMissingDate      = errors.New("missing or invalid date")
	ErrMissingReference = errors.New("missing client or service reference")
	ErrMissingPayment   = errors.New("missing payment method")
)

type (
	// Client is a salon customer. ID is synthesized by the backend as
	// "C_<unix-millis>" when the row is created without one.
	Client struct {
		ID           string
		Name         string
		Phone        string
		Notes        string
		RegisteredAt time.Time
	}

	// Service is a billable salon service with a suggested base price.
	Service struct {
		ID           string
		Name         string
		Category     string
		BasePrice    Money
		Active       bool
		RegisteredAt time.Time
	}

	// Appointment records one performed service. It references client and
	// service by identifier, with denormalized names carried alongside so
	// rows stay displayable when a reference dangles. Append-only, no ID.
	Appointment struct {
		Date          string // calendar date, YYYY-MM-DD
		ClientRef     string
		ClientName    string
		ServiceRef    string
		ServiceName   string
		Total         Money
		PaymentMethod string
		Notes         string
	}

	// Expense is an outgoing amount. Append-only, no ID.
	Expense struct {
		Date          string
		Category      string
		Description   string
		Amount        Money
		PaymentMethod string
		Notes         string
	}
)

func (c Client) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyName
	}
	return nil
}

func (s Service) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return ErrEmptyName
	}
	if s.BasePrice.Cents < 0 {
		return ErrNegativePrice
	}
	return nil
}

func (a Appointment) Validate() error {
	if _, ok := ParseDate(a.Date); !ok {
		return ErrMissingDate
	}
	if strings.TrimSpace(a.ClientRef) == "" || strings.TrimSpace(a.ServiceRef) == "" {
		return ErrMissingReference
	}
	if a.Total.Cents <= 0 {
		return ErrInvalidAmount
	}
	if strings.TrimSpace(a.PaymentMethod) == "" {
		return ErrMissingPayment
	}
	return nil
}

func (e Expense) Validate() error {
	if _, ok := ParseDate(e.Date); !ok {
		return ErrMissingDate
	}
	if strings.TrimSpace(e.Category) == "" {
		return ErrEmptyCategory
	}
	if e.Amount.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// dateLayouts lists the date shapes seen across historical spreadsheet rows.
// ISO forms come from the form inputs, the slash form from rows typed by hand.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"02/01/2006",
}

// ParseDate parses a loosely formatted calendar date. Returns false instead
// of an error so callers can skip bad rows without special handling.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
