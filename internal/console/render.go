package console

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var isoDatePrefix = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)

// FormatCell is the default rendering for a projected value: placeholder
// dash for missing paths and nulls, the email of embedded objects that have
// one, localized dates for ISO-8601-looking strings, string coercion for
// the rest.
func FormatCell(v any, ok bool) string {
	if !ok || v == nil {
		return "—"
	}

	switch val := v.(type) {
	case map[string]any:
		if email, ok := val["email"].(string); ok && email != "" {
			return email
		}
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(b)
	case string:
		if isoDatePrefix.MatchString(val) {
			if t, err := time.Parse(time.RFC3339, val); err == nil {
				return t.Local().Format("Jan 2, 2006")
			}
			if t, err := time.Parse("2006-01-02", val); err == nil {
				return t.Format("Jan 2, 2006")
			}
		}
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	}

	return fmt.Sprint(v)
}

// YesNo is a column renderer for boolean flags.
func YesNo(v any, ok bool) string {
	if b, isBool := v.(bool); isBool && b {
		return "Yes"
	}
	return "No"
}
