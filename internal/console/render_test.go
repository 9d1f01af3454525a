package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCell(t *testing.T) {
	assert.Equal(t, "—", FormatCell(nil, false))
	assert.Equal(t, "—", FormatCell(nil, true))

	assert.Equal(t, "hello", FormatCell("hello", true))
	assert.Equal(t, "42", FormatCell(float64(42), true))
	assert.Equal(t, "9.99", FormatCell(9.99, true))
	assert.Equal(t, "true", FormatCell(true, true))

	// embedded objects with an email render as that email
	assert.Equal(t, "owner@acme.test", FormatCell(map[string]any{"email": "owner@acme.test", "id": "x"}, true))

	// other objects fall back to their JSON form
	assert.Equal(t, `{"plan":"pro"}`, FormatCell(map[string]any{"plan": "pro"}, true))

	// ISO timestamps and bare dates render as readable dates
	assert.Equal(t, "Mar 15, 2026", FormatCell("2026-03-15", true))
	assert.Contains(t, FormatCell("2026-03-15T00:00:00Z", true), ", 2026")

	// date-looking prefixes that fail to parse pass through untouched
	assert.Equal(t, "2026-13-99junk", FormatCell("2026-13-99junk", true))
}

func TestYesNo(t *testing.T) {
	assert.Equal(t, "Yes", YesNo(true, true))
	assert.Equal(t, "No", YesNo(false, true))
	assert.Equal(t, "No", YesNo(nil, false))
	assert.Equal(t, "No", YesNo("true", true))
}
