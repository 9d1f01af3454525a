package admin

import (
	"encoding/json"
	"time"
)

// parseDate parses an ISO-8601 timestamp from the wire.
func parseDate(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

// optionalDate interprets a nullable date field on update. A field that is
// absent leaves the column unchanged; an explicit null clears it; a string
// sets it.
func optionalDate(raw json.RawMessage) (set bool, t *time.Time, err error) {
	if len(raw) == 0 {
		return false, nil, nil
	}
	if string(raw) == "null" {
		return true, nil, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return false, nil, err
	}
	parsed, err := parseDate(s)
	if err != nil {
		return false, nil, err
	}
	return true, &parsed, nil
}
