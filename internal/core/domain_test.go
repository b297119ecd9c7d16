package core

import (
	"errors"
	"testing"
)

func TestClientValidate(t *testing.T) {
	if err := (Client{Name: "Maria"}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := (Client{Name: "   "}).Validate(); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("expected ErrEmptyName, got %v", err)
	}
}

func TestServiceValidate(t *testing.T) {
	if err := (Service{Name: "Haircut", BasePrice: Money{Cents: 4000}}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := (Service{Name: "Consult", BasePrice: Money{}}).Validate(); err != nil {
		t.Fatalf("zero price must be valid, got %v", err)
	}
	if err := (Service{Name: "Bad", BasePrice: Money{Cents: -1}}).Validate(); !errors.Is(err, ErrNegativePrice) {
		t.Fatalf("expected ErrNegativePrice, got %v", err)
	}
	if err := (Service{}).Validate(); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("expected ErrEmptyName, got %v", err)
	}
}

func TestAppointmentValidate(t *testing.T) {
	valid := Appointment{
		Date:          "2025-03-05",
		ClientRef:     "C_1",
		ServiceRef:    "S_1",
		Total:         Money{Cents: 4000},
		PaymentMethod: "pix",
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Appointment)
		want   error
	}{
		{"missing date", func(a *Appointment) { a.Date = "" }, ErrMissingDate},
		{"bad date", func(a *Appointment) { a.Date = "not-a-date" }, ErrMissingDate},
		{"no client", func(a *Appointment) { a.ClientRef = "" }, ErrMissingReference},
		{"no service", func(a *Appointment) { a.ServiceRef = "" }, ErrMissingReference},
		{"zero total", func(a *Appointment) { a.Total = Money{} }, ErrInvalidAmount},
		{"no payment", func(a *Appointment) { a.PaymentMethod = "" }, ErrMissingPayment},
	}
	for _, tc := range cases {
		a := valid
		tc.mutate(&a)
		if err := a.Validate(); !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestExpenseValidate(t *testing.T) {
	valid := Expense{Date: "2025-03-10", Category: "Products", Amount: Money{Cents: 1500}}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	e := valid
	e.Category = ""
	if err := e.Validate(); !errors.Is(err, ErrEmptyCategory) {
		t.Fatalf("expected ErrEmptyCategory, got %v", err)
	}
	e = valid
	e.Amount = Money{Cents: -200}
	if err := e.Validate(); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
}

func TestParseDate(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"2025-03-05", true},
		{"2025-03-05T14:30:00Z", true},
		{"2025-03-05 14:30:00", true},
		{"05/03/2025", true},
		{"", false},
		{"not-a-date", false},
	}
	for _, tc := range cases {
		if _, ok := ParseDate(tc.in); ok != tc.ok {
			t.Fatalf("%q: parse ok=%v, want %v", tc.in, ok, tc.ok)
		}
	}
	d, _ := ParseDate("2025-03-05")
	if d.Year() != 2025 || int(d.Month()) != 3 || d.Day() != 5 {
		t.Fatalf("unexpected components: %v", d)
	}
}

func TestKind(t *testing.T) {
	if !KindClient.IsValid() || Kind("widget").IsValid() {
		t.Fatal("kind validity")
	}
	if KindService.Plural() != "services" || KindAppointment.ListAction() != "listAppointments" {
		t.Fatal("kind naming")
	}
	if KindClient.IDPrefix() != "C_" || KindExpense.IDPrefix() != "" {
		t.Fatal("kind id prefix")
	}
	k, ok := KindForAction("listClients")
	if !ok || k != KindClient {
		t.Fatalf("KindForAction: %v %v", k, ok)
	}
	if _, ok := KindForAction("listWidgets"); ok {
		t.Fatal("unknown action must not resolve")
	}
}
