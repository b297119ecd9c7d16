package record

import "testing"

func TestValuePriorityOrder(t *testing.T) {
	rec := Record{"NOME": "Maria", "nome": "maria-lower"}
	got := Field(rec, []string{"NOME", "nome"}, nil)
	if got != "Maria" {
		t.Fatalf("priority order violated: %q", got)
	}
}

func TestValueSkipsFalsyAndContinues(t *testing.T) {
	rec := Record{"NOME": "", "Nome": false, "nome": 0, "CLIENTE": "Ana"}
	got := Field(rec, []string{"NOME", "Nome", "nome", "CLIENTE"}, nil)
	if got != "Ana" {
		t.Fatalf("falsy values must be skipped: %q", got)
	}
}

func TestValueSubstringFallback(t *testing.T) {
	rec := Record{"NOME COMPLETO DO CLIENTE": "Joana"}
	got := Field(rec, []string{"NOME"}, []string{"nome"})
	if got != "Joana" {
		t.Fatalf("substring fallback failed: %q", got)
	}
}

func TestFieldNeverInventsValues(t *testing.T) {
	rec := Record{"A": "x", "B": 7, "C": true}
	own := map[string]bool{"x": true, "7": true, "true": true, "": true}
	probes := [][]string{
		{"A"}, {"B"}, {"C"}, {"Z"}, {"A", "Z"}, nil,
	}
	for _, p := range probes {
		if got := Field(rec, p, []string{"a", "b", "c", "z"}); !own[got] {
			t.Fatalf("returned value %q not from record", got)
		}
	}
}

func TestFieldEmptyRecordIdentity(t *testing.T) {
	if got := Field(Record{}, []string{"NOME", "ID"}, []string{"nome", "id"}); got != "" {
		t.Fatalf("empty record must yield empty string, got %q", got)
	}
	if got := Field(nil, []string{"NOME"}, []string{"nome"}); got != "" {
		t.Fatalf("nil record must yield empty string, got %q", got)
	}
}

func TestFieldDeterministicFilterScan(t *testing.T) {
	rec := Record{"tel_fixo": "111", "tel_cel": "222"}
	want := Field(rec, nil, []string{"tel"})
	for i := 0; i < 50; i++ {
		if got := Field(rec, nil, []string{"tel"}); got != want {
			t.Fatalf("filter scan not deterministic: %q vs %q", got, want)
		}
	}
	// Sorted key order puts tel_cel first.
	if want != "222" {
		t.Fatalf("expected sorted-first key, got %q", want)
	}
}

func TestStringify(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{" padded ", "padded"},
		{true, "true"},
		{int64(12), "12"},
		{40.5, "40.5"},
		{nil, ""},
		{struct{}{}, ""},
	}
	for _, tc := range cases {
		if got := Stringify(tc.in); got != tc.want {
			t.Fatalf("Stringify(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
