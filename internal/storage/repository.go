package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"salonledger/internal/core"
	"salonledger/internal/record"
	"salonledger/internal/sheets"

	_ "modernc.org/sqlite"
)

// Sync states of a stored row.
const (
	SyncPending = 0
	SyncDone    = 1
	SyncError   = 2
)

// SQLiteRepository keeps salon rows in a local database. Rows are stored
// as loose JSON payloads keyed by kind, so the same record shape flows
// through every backend. Each row carries a sync flag for the worker that
// replays rows into the spreadsheet.
type SQLiteRepository struct {
	db *sql.DB
}

var (
	_ sheets.RecordLister   = (*SQLiteRepository)(nil)
	_ sheets.RecordAppender = (*SQLiteRepository)(nil)
)

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// ListRecords implements sheets.RecordLister.
func (r *SQLiteRepository) ListRecords(ctx context.Context, kind core.Kind) ([]record.Record, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid record kind: %s", kind)
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT payload FROM records WHERE kind = ? ORDER BY id`, kind.String())
	if err != nil {
		return nil, fmt.Errorf("list %s records: %w", kind, err)
	}
	defer rows.Close()

	var out []record.Record
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan %s record: %w", kind, err)
		}
		var rec record.Record
		if err := json.Unmarshal(payload, &rec); err != nil {
			return nil, fmt.Errorf("decode %s record: %w", kind, err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s records: %w", kind, err)
	}
	return out, nil
}

// AppendRecord implements sheets.RecordAppender. The row is stored with a
// pending sync flag and the database row id is returned as the reference.
func (r *SQLiteRepository) AppendRecord(ctx context.Context, kind core.Kind, rec record.Record) (string, error) {
	if !kind.IsValid() {
		return "", fmt.Errorf("invalid record kind: %s", kind)
	}

	cp := make(record.Record, len(rec))
	for k, v := range rec {
		cp[k] = v
	}
	sheets.EnsureID(kind, cp)

	payload, err := json.Marshal(cp)
	if err != nil {
		return "", fmt.Errorf("encode %s record: %w", kind, err)
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO records (kind, payload, synced) VALUES (?, ?, ?)`,
		kind.String(), payload, SyncPending)
	if err != nil {
		return "", fmt.Errorf("insert %s record: %w", kind, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return "", fmt.Errorf("last insert id: %w", err)
	}

	slog.InfoContext(ctx, "Record saved to SQLite",
		"id", id,
		"kind", kind.String())

	return strconv.FormatInt(id, 10), nil
}

// GetRecord retrieves a single stored row by database id.
func (r *SQLiteRepository) GetRecord(ctx context.Context, id int64) (core.Kind, record.Record, error) {
	var kindStr string
	var payload []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT kind, payload FROM records WHERE id = ?`, id).Scan(&kindStr, &payload)
	if err != nil {
		return "", nil, fmt.Errorf("get record %d: %w", id, err)
	}
	var rec record.Record
	if err := json.Unmarshal(payload, &rec); err != nil {
		return "", nil, fmt.Errorf("decode record %d: %w", id, err)
	}
	return core.Kind(kindStr), rec, nil
}

// PendingRecord is the minimal data the sync queue needs.
type PendingRecord struct {
	ID        int64
	Kind      core.Kind
	CreatedAt time.Time
}

// GetPendingRecords returns rows not yet replayed to the spreadsheet.
func (r *SQLiteRepository) GetPendingRecords(ctx context.Context, limit int) ([]PendingRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, kind, created_at FROM records WHERE synced = ? ORDER BY id LIMIT ?`,
		SyncPending, limit)
	if err != nil {
		return nil, fmt.Errorf("get pending records: %w", err)
	}
	defer rows.Close()

	var out []PendingRecord
	for rows.Next() {
		var p PendingRecord
		var kindStr string
		if err := rows.Scan(&p.ID, &kindStr, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan pending record: %w", err)
		}
		p.Kind = core.Kind(kindStr)
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pending records: %w", err)
	}
	return out, nil
}

// MarkSynced marks a row as successfully replayed to the spreadsheet.
func (r *SQLiteRepository) MarkSynced(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx,
		`UPDATE records SET synced = ? WHERE id = ?`, SyncDone, id); err != nil {
		return fmt.Errorf("mark record synced: %w", err)
	}
	slog.InfoContext(ctx, "Record marked as synced", "id", id)
	return nil
}

// MarkSyncError marks a row as having failed replay.
func (r *SQLiteRepository) MarkSyncError(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx,
		`UPDATE records SET synced = ? WHERE id = ?`, SyncError, id); err != nil {
		return fmt.Errorf("mark record sync error: %w", err)
	}
	slog.WarnContext(ctx, "Record marked with sync error", "id", id)
	return nil
}
