package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	rec := Record{
		"id":   "abc",
		"name": "Acme",
		"owner": map[string]any{
			"email": "owner@acme.test",
		},
		"deletedAt": nil,
	}

	v, ok := Lookup(rec, "name")
	assert.True(t, ok)
	assert.Equal(t, "Acme", v)

	v, ok = Lookup(rec, "owner.email")
	assert.True(t, ok)
	assert.Equal(t, "owner@acme.test", v)

	// a present field holding null is not a missing path
	v, ok = Lookup(rec, "deletedAt")
	assert.True(t, ok)
	assert.Nil(t, v)

	_, ok = Lookup(rec, "owner.missing")
	assert.False(t, ok)

	_, ok = Lookup(rec, "missing.email")
	assert.False(t, ok)

	// descending through a scalar is a missing path, not a panic
	_, ok = Lookup(rec, "name.deeper")
	assert.False(t, ok)
}
