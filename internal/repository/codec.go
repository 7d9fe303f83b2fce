package repository

import (
	"encoding/json"
	"time"
)

func parseTime(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err == nil {
		return t.UTC(), nil
	}
	t, err = time.Parse(time.RFC3339, raw)
	if err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, err
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// encodeJSON renders v for a JSON blob column. Encoding a plain slice
// or matrix cannot fail; a nil value still stores a valid empty array.
func encodeJSON(v interface{}) string {
	raw, err := json.Marshal(v)
	if err != nil {
		return "[]"
	}
	return string(raw)
}

// decodeJSON fills dest from a blob column. A corrupted blob leaves
// dest at its zero value so a damaged record reads as empty instead of
// failing the whole row.
func decodeJSON(raw string, dest interface{}) {
	if raw == "" {
		return
	}
	_ = json.Unmarshal([]byte(raw), dest)
}
