package memory

import (
	"context"
	"strings"
	"testing"

	"salonledger/internal/core"
	"salonledger/internal/record"
)

func TestAppendAndList(t *testing.T) {
	s := New()
	ctx := context.Background()

	ref, err := s.AppendRecord(ctx, core.KindClient, record.Record{"NOME": "Maria"})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if ref != "mem:client:1" {
		t.Fatalf("row ref %q", ref)
	}

	recs, err := s.ListRecords(ctx, core.KindClient)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("got %d records", len(recs))
	}
	if !strings.HasPrefix(record.ClientID(recs[0]), "C_") {
		t.Fatalf("append must synthesize a client id, got %q", record.ClientID(recs[0]))
	}
}

func TestAppendDoesNotMutateCaller(t *testing.T) {
	s := New()
	rec := record.Record{"NOME_SERVICO": "Corte"}
	if _, err := s.AppendRecord(context.Background(), core.KindService, rec); err != nil {
		t.Fatalf("append: %v", err)
	}
	if _, ok := rec["ID_SERVICO"]; ok {
		t.Fatalf("caller's record must stay untouched: %v", rec)
	}
}

func TestNewSeeded(t *testing.T) {
	s := NewSeeded(map[core.Kind][]record.Record{
		core.KindService: {
			{"ID_SERVICO": "S_1", "NOME_SERVICO": "Corte", "PRECO_BASE": "40.00"},
			{"NOME_SERVICO": "Escova"},
		},
	})
	recs, err := s.ListRecords(context.Background(), core.KindService)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d records", len(recs))
	}
	if record.ServiceID(recs[0]) != "S_1" {
		t.Fatalf("seed id must be kept, got %q", record.ServiceID(recs[0]))
	}
	if record.ServiceID(recs[1]) == "" {
		t.Fatalf("seed without id must get one synthesized")
	}
}

func TestInvalidKind(t *testing.T) {
	s := New()
	if _, err := s.ListRecords(context.Background(), core.Kind("nope")); err == nil {
		t.Fatalf("invalid kind must error on list")
	}
	if _, err := s.AppendRecord(context.Background(), core.Kind("nope"), record.Record{}); err == nil {
		t.Fatalf("invalid kind must error on append")
	}
}
