// Package formatter translates the record store's raw field shapes into the
// application's domain shapes and back. It is the only place raw field names
// appear; every function is pure and total, substituting documented defaults
// for absent or malformed fields.
package formatter

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"stayhub/internal/recordstore"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = time.RFC3339
)

func str(rec recordstore.RawRecord, field string) string {
	switch v := rec[field].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

func f64(rec recordstore.RawRecord, field string) float64 {
	switch v := rec[field].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		f, _ := v.Float64()
		return f
	case string:
		f, _ := strconv.ParseFloat(v, 64)
		return f
	default:
		return 0
	}
}

func num(rec recordstore.RawRecord, field string) int {
	return int(f64(rec, field))
}

func boolean(rec recordstore.RawRecord, field string) bool {
	switch v := rec[field].(type) {
	case bool:
		return v
	case string:
		return v == "true"
	case float64:
		return v != 0
	default:
		return false
	}
}

func date(rec recordstore.RawRecord, field string) time.Time {
	s := str(rec, field)
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t
	}
	t, _ := time.Parse(dateTimeLayout, s)
	return t
}

func timestamp(rec recordstore.RawRecord, field string) time.Time {
	s := str(rec, field)
	if s == "" {
		return time.Time{}
	}
	t, _ := time.Parse(dateTimeLayout, s)
	return t
}

// stringList decodes a JSON-encoded string list. A value that fails to
// parse as JSON falls back to a naive comma-split; a missing value yields
// an empty slice, never nil exposed as null downstream.
func stringList(rec recordstore.RawRecord, field string) []string {
	switch v := rec[field].(type) {
	case nil:
		return []string{}
	case []string:
		return append([]string{}, v...)
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, fmt.Sprintf("%v", item))
		}
		return out
	case string:
		if strings.TrimSpace(v) == "" {
			return []string{}
		}
		var parsed []string
		if err := json.Unmarshal([]byte(v), &parsed); err == nil {
			return parsed
		}
		parts := strings.Split(v, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		return out
	default:
		return []string{}
	}
}

func encodeList(items []string) string {
	if items == nil {
		items = []string{}
	}
	encoded, _ := json.Marshal(items)
	return string(encoded)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(dateLayout)
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(dateTimeLayout)
}
