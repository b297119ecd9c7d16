package google

import (
	"strings"

	"salonledger/internal/record"
)

// headerRow returns the first row's cells as trimmed strings.
func headerRow(values [][]any) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, 0, len(values[0]))
	for _, cell := range values[0] {
		out = append(out, strings.TrimSpace(record.Stringify(cell)))
	}
	return out
}

// rowsToRecords turns a raw value grid into loose records: the first row
// names the keys, every following row becomes one record. Cells keep their
// raw values so downstream coercion sees what the sheet actually holds.
// Cells beyond the header width are dropped; blank header cells are skipped.
func rowsToRecords(values [][]any) []record.Record {
	headers := headerRow(values)
	if len(headers) == 0 {
		return nil
	}
	recs := make([]record.Record, 0, len(values)-1)
	for _, row := range values[1:] {
		rec := make(record.Record, len(headers))
		for i, key := range headers {
			if key == "" || i >= len(row) {
				continue
			}
			rec[key] = row[i]
		}
		recs = append(recs, rec)
	}
	return recs
}

// layoutRow orders a record's values by the given header sequence. Keys the
// header does not mention are dropped, missing keys become empty cells.
func layoutRow(headers []string, rec record.Record) []any {
	row := make([]any, len(headers))
	for i, key := range headers {
		if v, ok := rec[key]; ok {
			row[i] = v
		} else {
			row[i] = ""
		}
	}
	return row
}
