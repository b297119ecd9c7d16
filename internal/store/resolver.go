package store

import (
	"salonledger/internal/core"
	"salonledger/internal/record"
)

// Unknown is the sentinel display name for references that cannot be
// resolved. A dangling reference is an expected steady state, not a fault.
const Unknown = "Unknown"

// ResolveClientName maps an appointment row's client reference to a display
// name. The reference may be a true identifier, a raw name stored in place
// of one by older revisions, or empty. Total: always returns a string.
func (s *Store) ResolveClientName(appt record.Record) string {
	ref := record.AppointmentClientRef(appt)
	if ref == "" {
		return Unknown
	}
	if cli, ok := s.FindByID(core.KindClient, ref); ok {
		if name := record.ClientName(cli); name != "" {
			return name
		}
		return Unknown
	}
	// Unmatched: a raw name is displayable as-is, a synthesized id is not.
	if !record.LooksSynthesized(ref, core.KindClient) {
		return ref
	}
	return Unknown
}

// ResolveServiceName maps an appointment row's service reference to a
// display name, preferring the denormalized name carried on the row when
// the identifier lookup misses.
func (s *Store) ResolveServiceName(appt record.Record) string {
	ref := record.AppointmentServiceRef(appt)
	if ref == "" {
		return Unknown
	}
	if svc, ok := s.FindByID(core.KindService, ref); ok {
		if name := record.ServiceName(svc); name != "" {
			return name
		}
		return Unknown
	}
	if name := record.AppointmentServiceName(appt); name != "" && !record.LooksSynthesized(name, core.KindService) {
		return name
	}
	if !record.LooksSynthesized(ref, core.KindService) {
		return ref
	}
	return Unknown
}
