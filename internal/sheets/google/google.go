package google

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"salonledger/internal/core"
	"salonledger/internal/record"
	ports "salonledger/internal/sheets"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"
)

// Client reads and appends rows in the salon spreadsheet, one tab per
// record kind.
type Client struct {
	svc           *gsheet.Service
	spreadsheetID string
	tabs          map[core.Kind]string
}

// Ensure interface conformance
var (
	_ ports.RecordLister   = (*Client)(nil)
	_ ports.RecordAppender = (*Client)(nil)
)

// NewFromEnv creates a Sheets client using environment variables.
// Required: GOOGLE_SPREADSHEET_ID.
// Auth: GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or
// GOOGLE_APPLICATION_CREDENTIALS.
// Optional tab names: SHEET_CLIENTS (default "Clientes"), SHEET_SERVICES
// (default "Servicos"), SHEET_APPOINTMENTS (default "Atendimentos"),
// SHEET_EXPENSES (default "Despesas").
func NewFromEnv(ctx context.Context) (*Client, error) {
	spreadsheetID := strings.TrimSpace(os.Getenv("GOOGLE_SPREADSHEET_ID"))
	if spreadsheetID == "" {
		return nil, errors.New("missing GOOGLE_SPREADSHEET_ID")
	}

	svc, err := newSheetsService(ctx)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}

	return &Client{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		tabs: map[core.Kind]string{
			core.KindClient:      envOr("SHEET_CLIENTS", "Clientes"),
			core.KindService:     envOr("SHEET_SERVICES", "Servicos"),
			core.KindAppointment: envOr("SHEET_APPOINTMENTS", "Atendimentos"),
			core.KindExpense:     envOr("SHEET_EXPENSES", "Despesas"),
		},
	}, nil
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// newSheetsService initializes a Sheets Service using Service Account
// credentials.
func newSheetsService(ctx context.Context) (*gsheet.Service, error) {
	serviceAccountJSON := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"))
	serviceAccountFile := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_FILE"))
	if serviceAccountJSON == "" && serviceAccountFile == "" {
		serviceAccountFile = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}

	var credentialsJSON []byte
	var err error
	switch {
	case serviceAccountJSON != "":
		credentialsJSON = []byte(serviceAccountJSON)
	case serviceAccountFile != "":
		credentialsJSON, err = os.ReadFile(serviceAccountFile)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
	default:
		return nil, errors.New("missing service account credentials (set GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or GOOGLE_APPLICATION_CREDENTIALS)")
	}

	service, err := gsheet.NewService(ctx,
		goption.WithCredentialsJSON(credentialsJSON),
		goption.WithScopes(gsheet.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return service, nil
}

func (c *Client) tab(kind core.Kind) (string, error) {
	name, ok := c.tabs[kind]
	if !ok || name == "" {
		return "", fmt.Errorf("no sheet tab configured for kind %s", kind)
	}
	return name, nil
}

// ListRecords reads the kind's tab and converts rows below the header into
// loose records keyed by whatever the header row actually says.
func (c *Client) ListRecords(ctx context.Context, kind core.Kind) ([]record.Record, error) {
	if c.svc == nil {
		return nil, errors.New("sheets service not initialized")
	}
	tab, err := c.tab(kind)
	if err != nil {
		return nil, err
	}
	rng := fmt.Sprintf("%s!A1:Z", tab)
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", rng, err)
	}
	return rowsToRecords(resp.Values), nil
}

// AppendRecord writes the row after the last used row of the kind's tab,
// laying cells out by the tab's own header row so historical column orders
// keep working. A synthesized identifier is assigned when the kind carries
// one and the row lacks it.
func (c *Client) AppendRecord(ctx context.Context, kind core.Kind, rec record.Record) (string, error) {
	if c.svc == nil {
		return "", errors.New("sheets service not initialized")
	}
	tab, err := c.tab(kind)
	if err != nil {
		return "", err
	}

	cp := make(record.Record, len(rec))
	for k, v := range rec {
		cp[k] = v
	}
	ports.EnsureID(kind, cp)

	rng := fmt.Sprintf("%s!A1:Z", tab)
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("read %s: %w", rng, err)
	}

	headers := headerRow(resp.Values)
	if len(headers) == 0 {
		headers = ports.Headers(kind)
	}
	row := layoutRow(headers, cp)

	nextRow := len(resp.Values) + 1
	if nextRow == 1 {
		// Empty tab: write the canonical header first.
		headerRange := fmt.Sprintf("%s!A1", tab)
		hv := &gsheet.ValueRange{Values: [][]any{toAnyRow(headers)}}
		if _, err := c.svc.Spreadsheets.Values.Update(c.spreadsheetID, headerRange, hv).
			ValueInputOption("RAW").Context(ctx).Do(); err != nil {
			return "", fmt.Errorf("write header for %s: %w", tab, err)
		}
		nextRow = 2
	}

	dataRange := fmt.Sprintf("%s!A%d", tab, nextRow)
	vr := &gsheet.ValueRange{Values: [][]any{row}}
	if _, err := c.svc.Spreadsheets.Values.Update(c.spreadsheetID, dataRange, vr).
		ValueInputOption("USER_ENTERED").Context(ctx).Do(); err != nil {
		return "", fmt.Errorf("append to %s: %w", tab, err)
	}

	ref := fmt.Sprintf("%s!A%d", tab, nextRow)
	slog.InfoContext(ctx, "Row appended to spreadsheet",
		"kind", kind.String(),
		"sheet_ref", ref)
	return ref, nil
}

func toAnyRow(in []string) []any {
	out := make([]any, len(in))
	for i, v := range in {
		out[i] = v
	}
	return out
}
