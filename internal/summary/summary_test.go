package summary

import (
	"testing"

	"salonledger/internal/record"
)

func TestForMonthAdditivity(t *testing.T) {
	appts := []record.Record{
		{"DATA": "2025-03-05", "VALOR_TOTAL": "100"},
		{"DATA": "2025-03-20", "VALOR_TOTAL": "50"},
	}
	got := ForMonth(2025, 3, appts, nil)
	if got.Income.Cents != 15000 {
		t.Fatalf("income=%d, want 15000", got.Income.Cents)
	}
	if got.Expenses.Cents != 0 {
		t.Fatalf("expenses=%d, want 0", got.Expenses.Cents)
	}
	if got.Net.Cents != 15000 {
		t.Fatalf("net=%d, want 15000", got.Net.Cents)
	}
}

func TestForMonthBoundaryExclusion(t *testing.T) {
	appts := []record.Record{
		{"DATA": "2025-02-28", "VALOR_TOTAL": "100"},
		{"DATA": "2025-04-01", "VALOR_TOTAL": "100"},
		{"DATA": "2024-03-15", "VALOR_TOTAL": "100"},
		{"DATA": "2025-03-15", "VALOR_TOTAL": "80"},
	}
	got := ForMonth(2025, 3, appts, nil)
	if got.Income.Cents != 8000 {
		t.Fatalf("only the exact year+month may count, income=%d", got.Income.Cents)
	}
}

func TestForMonthSkipsBadRows(t *testing.T) {
	appts := []record.Record{
		{"DATA": "not-a-date", "VALOR_TOTAL": "100"},
		{"VALOR_TOTAL": "100"}, // no date at all
		{"DATA": "2025-03-10", "VALOR_TOTAL": "abc"}, // unparseable amount
		{"DATA": "2025-03-10", "VALOR_TOTAL": "40"},
	}
	got := ForMonth(2025, 3, appts, nil)
	if got.Income.Cents != 4000 {
		t.Fatalf("bad rows must contribute zero, income=%d", got.Income.Cents)
	}
}

func TestForMonthNet(t *testing.T) {
	appts := []record.Record{
		{"DATA": "2025-03-05", "VALOR_TOTAL": "120.00"},
	}
	expenses := []record.Record{
		{"DATA": "2025-03-06", "CATEGORIA": "Products", "VALOR": "35.50"},
		{"DATA": "2025-03-07", "CATEGORIA": "Rent", "VALOR": "50"},
	}
	got := ForMonth(2025, 3, appts, expenses)
	if got.Income.Cents != 12000 || got.Expenses.Cents != 8550 {
		t.Fatalf("income=%d expenses=%d", got.Income.Cents, got.Expenses.Cents)
	}
	if got.Net.Cents != 3450 {
		t.Fatalf("net=%d, want 3450", got.Net.Cents)
	}
	if got.MonthKey() != "2025-03" {
		t.Fatalf("month key %q", got.MonthKey())
	}
}

func TestParseMonthKey(t *testing.T) {
	y, m, err := ParseMonthKey("2025-03")
	if err != nil || y != 2025 || m != 3 {
		t.Fatalf("got %d-%d err=%v", y, m, err)
	}
	for _, bad := range []string{"", "2025", "2025-13", "2025-00", "year-03", "2025-xx"} {
		if _, _, err := ParseMonthKey(bad); err == nil {
			t.Fatalf("%q must be rejected", bad)
		}
	}
}
