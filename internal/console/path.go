package console

import "strings"

// Lookup resolves a dotted field path ("organization.name") by successive
// field lookup. The second return value reports whether the path exists at
// all, so a missing intermediate object is distinguishable from a field
// legitimately holding null.
func Lookup(rec Record, path string) (any, bool) {
	var current any = rec
	for _, seg := range strings.Split(path, ".") {
		obj, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = obj[seg]
		if !ok {
			return nil, false
		}
	}
	return current, true
}
