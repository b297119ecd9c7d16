// Package memory is the in-process backend used in development and tests.
package memory

import (
	"context"
	"fmt"
	"sync"

	"salonledger/internal/core"
	"salonledger/internal/record"
	"salonledger/internal/sheets"
)

type Store struct {
	mu   sync.Mutex
	rows map[core.Kind][]record.Record
}

// Interface conformance
var (
	_ sheets.RecordLister   = (*Store)(nil)
	_ sheets.RecordAppender = (*Store)(nil)
)

func New() *Store {
	return &Store{rows: make(map[core.Kind][]record.Record)}
}

// NewSeeded builds a store pre-populated with rows, for tests and demos.
func NewSeeded(seed map[core.Kind][]record.Record) *Store {
	s := New()
	for kind, recs := range seed {
		for _, rec := range recs {
			cp := make(record.Record, len(rec))
			for k, v := range rec {
				cp[k] = v
			}
			sheets.EnsureID(kind, cp)
			s.rows[kind] = append(s.rows[kind], cp)
		}
	}
	return s
}

// ListRecords returns a copy of the kind's rows.
func (s *Store) ListRecords(_ context.Context, kind core.Kind) ([]record.Record, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid record kind: %s", kind)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]record.Record, len(s.rows[kind]))
	copy(out, s.rows[kind])
	return out, nil
}

// AppendRecord stores the row and returns a synthetic row reference.
func (s *Store) AppendRecord(_ context.Context, kind core.Kind, rec record.Record) (string, error) {
	if !kind.IsValid() {
		return "", fmt.Errorf("invalid record kind: %s", kind)
	}
	cp := make(record.Record, len(rec))
	for k, v := range rec {
		cp[k] = v
	}
	sheets.EnsureID(kind, cp)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows[kind] = append(s.rows[kind], cp)
	return fmt.Sprintf("mem:%s:%d", kind, len(s.rows[kind])), nil
}
