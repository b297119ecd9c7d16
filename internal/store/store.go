// Package store holds the session-scoped cache of fetched record lists and
// resolves cross-references between them.
package store

import (
	"strings"
	"sync"

	"salonledger/internal/core"
	"salonledger/internal/record"
)

// Store owns one list per record kind for the lifetime of a session. Lists
// are only ever replaced wholesale; there is no incremental merge, matching
// the append-only backend model. Replacing a list invalidates any display
// names a caller resolved earlier, so callers re-resolve after a refresh.
type Store struct {
	mu    sync.RWMutex
	lists map[core.Kind][]record.Record
}

func New() *Store {
	return &Store{lists: make(map[core.Kind][]record.Record)}
}

func cloneRecord(rec record.Record) record.Record {
	cp := make(record.Record, len(rec))
	for k, v := range rec {
		cp[k] = v
	}
	return cp
}

func cloneRecords(records []record.Record) []record.Record {
	cp := make([]record.Record, len(records))
	for i, rec := range records {
		cp[i] = cloneRecord(rec)
	}
	return cp
}

// ReplaceAll atomically swaps the list for one kind. Records are copied on
// the way in, so later mutation of the caller's slice or maps cannot reach
// the cache. A nil slice is valid and represents the empty list.
func (s *Store) ReplaceAll(kind core.Kind, records []record.Record) {
	cp := cloneRecords(records)
	s.mu.Lock()
	s.lists[kind] = cp
	s.mu.Unlock()
}

// List returns a copy of the current list for the kind. The records are
// copies too; mutating them does not touch the cache.
func (s *Store) List(kind core.Kind) []record.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneRecords(s.lists[kind])
}

// Len reports the current list size for the kind.
func (s *Store) Len(kind core.Kind) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.lists[kind])
}

// FindByID scans the kind's list for a record whose identifier equals the
// reference. Identifiers arrive as strings or numbers interchangeably, so
// equality is by canonical string form. Kinds without identifiers never
// match.
func (s *Store) FindByID(kind core.Kind, id string) (record.Record, bool) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, false
	}
	var extract func(record.Record) string
	switch kind {
	case core.KindClient:
		extract = record.ClientID
	case core.KindService:
		extract = record.ServiceID
	default:
		return nil, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, rec := range s.lists[kind] {
		if extract(rec) == id {
			return cloneRecord(rec), true
		}
	}
	return nil, false
}
