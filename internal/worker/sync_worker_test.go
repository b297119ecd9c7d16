package worker

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"salonledger/internal/amqp"
	"salonledger/internal/core"
	"salonledger/internal/record"
	"salonledger/internal/storage"
)

type fakeAppender struct {
	appended []core.Kind
	fail     bool
}

func (f *fakeAppender) AppendRecord(_ context.Context, kind core.Kind, _ record.Record) (string, error) {
	if f.fail {
		return "", errors.New("sheets unavailable")
	}
	f.appended = append(f.appended, kind)
	return "Tab!A2", nil
}

func newTestWorker(t *testing.T, appender *fakeAppender) (*SyncWorker, *storage.SQLiteRepository) {
	t.Helper()
	repo, err := storage.NewSQLiteRepository(filepath.Join(t.TempDir(), "salon.db"))
	if err != nil {
		t.Fatalf("open repository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return NewSyncWorker(repo, appender, 10), repo
}

func TestHandleSyncMessage(t *testing.T) {
	appender := &fakeAppender{}
	w, repo := newTestWorker(t, appender)
	ctx := context.Background()

	ref, err := repo.AppendRecord(ctx, core.KindExpense, record.Record{
		"DATA": "2025-03-06", "CATEGORIA": "Produtos", "VALOR": "35.50",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if ref != "1" {
		t.Fatalf("row ref %q", ref)
	}

	if err := w.HandleSyncMessage(ctx, amqp.NewRecordSyncMessage(1, core.KindExpense)); err != nil {
		t.Fatalf("handle: %v", err)
	}
	if len(appender.appended) != 1 || appender.appended[0] != core.KindExpense {
		t.Fatalf("appended kinds: %v", appender.appended)
	}

	pending, err := repo.GetPendingRecords(ctx, 10)
	if err != nil {
		t.Fatalf("pending: %v", err)
	}
	if len(pending) != 0 {
		t.Fatalf("synced row must leave the pending set, got %d", len(pending))
	}
}

func TestHandleSyncMessageMarksError(t *testing.T) {
	appender := &fakeAppender{fail: true}
	w, repo := newTestWorker(t, appender)
	ctx := context.Background()

	if _, err := repo.AppendRecord(ctx, core.KindClient, record.Record{"NOME": "Maria"}); err != nil {
		t.Fatalf("append: %v", err)
	}

	if err := w.HandleSyncMessage(ctx, amqp.NewRecordSyncMessage(1, core.KindClient)); err == nil {
		t.Fatalf("failed append must surface an error")
	}

	pending, err := repo.GetPendingRecords(ctx, 10)
	if err != nil {
		t.Fatalf("pending: %v", err)
	}
	if len(pending) != 0 {
		t.Fatalf("errored row must not stay pending, got %d", len(pending))
	}
}

func TestStartupSyncCheck(t *testing.T) {
	appender := &fakeAppender{}
	w, repo := newTestWorker(t, appender)
	ctx := context.Background()

	for _, name := range []string{"Maria", "Ana"} {
		if _, err := repo.AppendRecord(ctx, core.KindClient, record.Record{"NOME": name}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	if err := w.StartupSyncCheck(ctx); err != nil {
		t.Fatalf("startup check: %v", err)
	}
	if len(appender.appended) != 2 {
		t.Fatalf("got %d appends, want 2", len(appender.appended))
	}

	// Second pass finds nothing left.
	appender.appended = nil
	if err := w.ProcessPendingRecords(ctx); err != nil {
		t.Fatalf("pending pass: %v", err)
	}
	if len(appender.appended) != 0 {
		t.Fatalf("nothing should be replayed twice, got %d", len(appender.appended))
	}
}
