package store

import (
	"testing"

	"salonledger/internal/core"
	"salonledger/internal/record"
)

func TestReplaceAllIsWholesale(t *testing.T) {
	s := New()
	s.ReplaceAll(core.KindClient, []record.Record{
		{"ID_CLIENTE": "C_1", "NOME": "Maria"},
		{"ID_CLIENTE": "C_2", "NOME": "Ana"},
	})
	if s.Len(core.KindClient) != 2 {
		t.Fatalf("len=%d", s.Len(core.KindClient))
	}
	s.ReplaceAll(core.KindClient, []record.Record{
		{"ID_CLIENTE": "C_3", "NOME": "Bia"},
	})
	if s.Len(core.KindClient) != 1 {
		t.Fatalf("replace must not merge, len=%d", s.Len(core.KindClient))
	}
	if _, ok := s.FindByID(core.KindClient, "C_1"); ok {
		t.Fatal("old record survived a wholesale replace")
	}
}

func TestReplaceAllEmptyFallback(t *testing.T) {
	s := New()
	s.ReplaceAll(core.KindService, []record.Record{{"ID_SERVICO": "S_1", "NOME_SERVICO": "Corte"}})
	s.ReplaceAll(core.KindService, nil)
	if s.Len(core.KindService) != 0 {
		t.Fatal("nil replace must empty the list")
	}
}

func TestFindByIDLooseEquality(t *testing.T) {
	s := New()
	// Identifier stored as a number in the sheet, referenced as a string.
	s.ReplaceAll(core.KindClient, []record.Record{
		{"ID_CLIENTE": 42, "NOME": "Maria"},
	})
	rec, ok := s.FindByID(core.KindClient, "42")
	if !ok {
		t.Fatal("numeric id must match its string form")
	}
	if record.ClientName(rec) != "Maria" {
		t.Fatalf("wrong record: %v", rec)
	}
	if _, ok := s.FindByID(core.KindClient, ""); ok {
		t.Fatal("empty id must not match")
	}
	if _, ok := s.FindByID(core.KindAppointment, "42"); ok {
		t.Fatal("appointments carry no identifier")
	}
}

func TestListReturnsCopy(t *testing.T) {
	s := New()
	s.ReplaceAll(core.KindExpense, []record.Record{{"VALOR": "10"}})
	got := s.List(core.KindExpense)
	got[0] = record.Record{"VALOR": "999"}
	if record.ExpenseAmount(s.List(core.KindExpense)[0]).Cents != 1000 {
		t.Fatal("List must not expose internal storage")
	}
}

func TestRecordsAreCopiedBothWays(t *testing.T) {
	s := New()
	in := []record.Record{{"ID_CLIENTE": "C_1", "NOME": "Maria"}}
	s.ReplaceAll(core.KindClient, in)

	// Mutating the caller's map after the replace must not reach the cache.
	in[0]["NOME"] = "hacked"
	if record.ClientName(s.List(core.KindClient)[0]) != "Maria" {
		t.Fatal("ReplaceAll must copy the incoming records")
	}

	// Mutating a listed record's map must not reach the cache either.
	s.List(core.KindClient)[0]["NOME"] = "hacked"
	if record.ClientName(s.List(core.KindClient)[0]) != "Maria" {
		t.Fatal("List must copy the records, not just the slice")
	}

	// Same for a record returned by FindByID.
	rec, ok := s.FindByID(core.KindClient, "C_1")
	if !ok {
		t.Fatal("seeded record must be found")
	}
	rec["NOME"] = "hacked"
	if name := s.ResolveClientName(record.Record{"ID_CLIENTE": "C_1"}); name != "Maria" {
		t.Fatalf("FindByID must return a copy, resolved %q", name)
	}
}
