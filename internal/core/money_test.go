package core

import "testing"

func TestParseDecimalToCents(t *testing.T) {
	cases := []struct {
		in  string
		out int64
		ok  bool
	}{
		{"1", 100, true},
		{"1.0", 100, true},
		{"40", 4000, true},
		{"1.23", 123, true},
		{"1,23", 123, true},
		{"0.01", 1, true},
		{"0", 0, true}, // zero-priced services are valid
		{"1.005", 101, true},
		{" 2.50 ", 250, true},
		{"-1", 0, false},
		{"abc", 0, false},
		{"1.2.3", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseDecimalToCents(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("%q expected %d, got %d (err=%v)", tc.in, tc.out, got, err)
			}
		} else {
			if err == nil {
				t.Fatalf("%q expected error", tc.in)
			}
		}
	}
}

func TestCoerceCents(t *testing.T) {
	cases := []struct {
		name string
		in   any
		out  int64
		ok   bool
	}{
		{"string decimal", "40.00", 4000, true},
		{"string comma", "12,5", 1250, true},
		{"float cell", 40.0, 4000, true},
		{"int cell", 40, 4000, true},
		{"negative int", -5, 0, false},
		{"negative int64", int64(-5), 0, false},
		{"negative float", -1.5, 0, false},
		{"negative string", "-1", 0, false},
		{"garbage", "abc", 0, false},
		{"nil", nil, 0, false},
		{"bool", true, 0, false},
	}
	for _, tc := range cases {
		got, ok := CoerceCents(tc.in)
		if ok != tc.ok || got != tc.out {
			t.Fatalf("%s: got (%d, %v), want (%d, %v)", tc.name, got, ok, tc.out, tc.ok)
		}
	}
}

func TestMoneyFormat(t *testing.T) {
	if got := (Money{Cents: 4000}).Format(); got != "40.00" {
		t.Fatalf("got %q", got)
	}
	if got := (Money{Cents: 4550}).Format(); got != "45.50" {
		t.Fatalf("got %q", got)
	}
	if got := (Money{Cents: -305}).Format(); got != "-3.05" {
		t.Fatalf("got %q", got)
	}
	if got := (Money{}).Format(); got != "0.00" {
		t.Fatalf("got %q", got)
	}
}
