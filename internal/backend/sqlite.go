package backend

import (
	"context"
	"log/slog"
	"strconv"

	"salonledger/internal/amqp"
	"salonledger/internal/core"
	"salonledger/internal/record"
	"salonledger/internal/storage"
)

// syncedRepository is the SQLite backend with an optional sync queue: every
// appended row is stored locally, then a message asks the worker to replay
// it into the spreadsheet. A failed publish never fails the append; the
// worker's pending scan picks the row up later.
type syncedRepository struct {
	repo *storage.SQLiteRepository
	amqp *amqp.Client
}

func (s *syncedRepository) ListRecords(ctx context.Context, kind core.Kind) ([]record.Record, error) {
	return s.repo.ListRecords(ctx, kind)
}

func (s *syncedRepository) AppendRecord(ctx context.Context, kind core.Kind, rec record.Record) (string, error) {
	ref, err := s.repo.AppendRecord(ctx, kind, rec)
	if err != nil {
		return "", err
	}

	if s.amqp != nil {
		if id, perr := strconv.ParseInt(ref, 10, 64); perr == nil {
			if err := s.amqp.PublishRecordSync(ctx, amqp.NewRecordSyncMessage(id, kind)); err != nil {
				slog.WarnContext(ctx, "Failed to publish sync message, row stays pending",
					"id", id,
					"kind", kind.String(),
					"error", err)
			}
		}
	}

	return ref, nil
}

func (s *syncedRepository) close() error {
	if s.amqp != nil {
		s.amqp.Close()
	}
	return s.repo.Close()
}
