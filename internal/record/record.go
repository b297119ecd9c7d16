// Package record implements schema-tolerant access to spreadsheet rows.
//
// Rows come back from the backend as loose key/value maps whose header
// spellings drifted across spreadsheet revisions (uppercase, camelCase,
// accented, abbreviated, Portuguese and English). Instead of a rigid mapping
// table, each field is read through an ordered list of exact candidate keys
// followed by an ordered list of substring filters over lowercased keys.
package record

import (
	"sort"
	"strconv"
	"strings"
)

// Record is one loosely-typed spreadsheet row.
type Record map[string]any

// Value returns the first truthy value found for the given lookup strategy:
// exact priority keys first, then substring filters over lowercased keys.
// Falsy values (nil, false, zero, empty string) count as absent and the
// search continues. The second result is false when nothing matched.
//
// Map iteration order is randomized in Go, so the filter pass scans keys in
// sorted order to keep resolution deterministic for a given record.
func Value(rec Record, priorities []string, filters []string) (any, bool) {
	if rec == nil {
		return nil, false
	}
	for _, k := range priorities {
		if v, ok := rec[k]; ok && truthy(v) {
			return v, true
		}
	}
	if len(filters) == 0 {
		return nil, false
	}
	keys := make([]string, 0, len(rec))
	for k := range rec {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		lk := strings.ToLower(k)
		for _, f := range filters {
			if strings.Contains(lk, f) {
				if v := rec[k]; truthy(v) {
					return v, true
				}
				break
			}
		}
	}
	return nil, false
}

// Field is Value reduced to a string, returning "" when nothing matched so
// downstream rendering never needs a nil check.
func Field(rec Record, priorities []string, filters []string) string {
	v, ok := Value(rec, priorities, filters)
	if !ok {
		return ""
	}
	return Stringify(v)
}

// Stringify renders a cell value the way it would appear in the sheet.
func Stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(val)
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return ""
	}
}

// truthy mirrors the presence policy used across spreadsheet revisions:
// zero, false, and empty string are indistinguishable from a missing cell.
func truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(val) != ""
	case bool:
		return val
	case int:
		return val != 0
	case int64:
		return val != 0
	case float64:
		return val != 0
	default:
		return true
	}
}
