// Package worker replays locally stored rows into the spreadsheet.
package worker

import (
	"context"
	"fmt"
	"log/slog"

	"salonledger/internal/amqp"
	"salonledger/internal/sheets"
	"salonledger/internal/storage"
)

// SyncWorker moves rows from the SQLite repository to the spreadsheet.
type SyncWorker struct {
	storage   *storage.SQLiteRepository
	sheets    sheets.RecordAppender
	batchSize int
}

func NewSyncWorker(storage *storage.SQLiteRepository, appender sheets.RecordAppender, batchSize int) *SyncWorker {
	return &SyncWorker{
		storage:   storage,
		sheets:    appender,
		batchSize: batchSize,
	}
}

// HandleSyncMessage processes a single record sync message from AMQP.
func (w *SyncWorker) HandleSyncMessage(ctx context.Context, msg *amqp.RecordSyncMessage) error {
	slog.InfoContext(ctx, "Processing sync message",
		"id", msg.ID,
		"kind", msg.Kind.String())

	return w.syncRecordToSheets(ctx, msg.ID)
}

// ProcessPendingRecords replays rows that haven't been synced yet. This is
// the backup mechanism for lost AMQP messages.
func (w *SyncWorker) ProcessPendingRecords(ctx context.Context) error {
	pending, err := w.storage.GetPendingRecords(ctx, w.batchSize)
	if err != nil {
		return fmt.Errorf("get pending records: %w", err)
	}

	if len(pending) == 0 {
		return nil
	}

	slog.InfoContext(ctx, "Processing pending records", "count", len(pending))

	for _, p := range pending {
		if err := w.syncRecordToSheets(ctx, p.ID); err != nil {
			slog.ErrorContext(ctx, "Failed to sync record", "id", p.ID, "error", err)
			continue
		}
	}

	return nil
}

// StartupSyncCheck replays pending rows at worker startup, recovering from
// missed AMQP messages or worker downtime.
func (w *SyncWorker) StartupSyncCheck(ctx context.Context) error {
	pending, err := w.storage.GetPendingRecords(ctx, w.batchSize*5)
	if err != nil {
		return fmt.Errorf("get pending records for startup check: %w", err)
	}

	if len(pending) == 0 {
		slog.InfoContext(ctx, "No pending records found on startup")
		return nil
	}

	slog.InfoContext(ctx, "Found pending records on startup, processing...",
		"count", len(pending))

	successCount := 0
	errorCount := 0

	for _, p := range pending {
		if err := w.syncRecordToSheets(ctx, p.ID); err != nil {
			slog.ErrorContext(ctx, "Failed to sync record during startup",
				"id", p.ID, "error", err)
			errorCount++
			continue
		}
		successCount++
	}

	slog.InfoContext(ctx, "Startup sync completed",
		"total", len(pending),
		"synced", successCount,
		"errors", errorCount)

	return nil
}

func (w *SyncWorker) syncRecordToSheets(ctx context.Context, id int64) error {
	kind, rec, err := w.storage.GetRecord(ctx, id)
	if err != nil {
		if markErr := w.storage.MarkSyncError(ctx, id); markErr != nil {
			slog.ErrorContext(ctx, "Failed to mark sync error", "id", id, "error", markErr)
		}
		return fmt.Errorf("get record from storage: %w", err)
	}

	ref, err := w.sheets.AppendRecord(ctx, kind, rec)
	if err != nil {
		if markErr := w.storage.MarkSyncError(ctx, id); markErr != nil {
			slog.ErrorContext(ctx, "Failed to mark sync error", "id", id, "error", markErr)
		}
		return fmt.Errorf("append to sheets: %w", err)
	}

	if err := w.storage.MarkSynced(ctx, id); err != nil {
		// The sync itself worked, keep going.
		slog.ErrorContext(ctx, "Failed to mark as synced", "id", id, "error", err)
	}

	slog.InfoContext(ctx, "Successfully synced record",
		"id", id,
		"kind", kind.String(),
		"sheets_ref", ref)

	return nil
}
