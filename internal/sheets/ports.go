package sheets

import (
	"context"

	"salonledger/internal/core"
	"salonledger/internal/record"
)

// Ports for outbound adapters.
type (
	// RecordLister returns all rows of one kind as loose records. The
	// caller normalizes fields; adapters must not reshape row keys.
	RecordLister interface {
		ListRecords(ctx context.Context, kind core.Kind) ([]record.Record, error)
	}

	// RecordAppender persists one row. Adapters synthesize the identifier
	// for kinds that carry one and return a backend-specific row reference.
	RecordAppender interface {
		AppendRecord(ctx context.Context, kind core.Kind, rec record.Record) (rowRef string, err error)
	}
)
