// Package reduce selects named top-level sections of an OpenAPI document.
//
// Import path: github.com/erraggy/openapi-snapshot/reduce
//
// Reducing keeps only the requested top-level keys, in the order they were
// requested, with their values copied through unchanged. Requesting a key
// the document does not have is an error; nothing is dropped silently.
package reduce

import (
	"strings"

	"github.com/erraggy/openapi-snapshot/document"
	"github.com/erraggy/openapi-snapshot/snaperrors"
)

// Key names a top-level OpenAPI section the reducer can keep.
type Key string

const (
	// KeyPaths keeps the "paths" section.
	KeyPaths Key = "paths"
	// KeyComponents keeps the "components" section.
	KeyComponents Key = "components"
)

// ValidKeys returns all valid reduce key strings.
func ValidKeys() []string {
	return []string{
		string(KeyPaths),
		string(KeyComponents),
	}
}

// IsValidKey checks if a key string is a known reduce key.
func IsValidKey(key string) bool {
	switch Key(key) {
	case KeyPaths, KeyComponents:
		return true
	default:
		return false
	}
}

// ParseKeyList parses a comma-separated reduce list into keys.
//
// Values must be lowercase and members of the known key set. Surrounding
// whitespace is tolerated, empty segments are skipped, and duplicates
// collapse to their first occurrence. An empty result is an error so a
// reduce request can never silently mean "keep nothing".
func ParseKeyList(raw string) ([]Key, error) {
	var keys []Key
	seen := make(map[Key]bool)
	for part := range strings.SplitSeq(raw, ",") {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		if trimmed != strings.ToLower(trimmed) {
			return nil, snaperrors.Newf(snaperrors.KindReduce, "reduce values must be lowercase: %s", trimmed)
		}
		if !IsValidKey(trimmed) {
			return nil, snaperrors.Newf(snaperrors.KindReduce, "unsupported reduce value: %s", trimmed)
		}
		key := Key(trimmed)
		if seen[key] {
			continue
		}
		seen[key] = true
		keys = append(keys, key)
	}
	if len(keys) == 0 {
		return nil, snaperrors.New(snaperrors.KindReduce, "reduce list cannot be empty")
	}
	return keys, nil
}

// Apply projects doc onto the requested keys, preserving request order.
// The returned document shares subtrees with doc; neither is mutated.
func Apply(doc *document.Value, keys []Key) (*document.Value, error) {
	if !doc.IsObject() {
		return nil, snaperrors.New(snaperrors.KindReduce, "OpenAPI document must be a JSON object")
	}
	if len(keys) == 0 {
		return nil, snaperrors.New(snaperrors.KindReduce, "no reduce keys requested")
	}
	out := document.NewObject()
	for _, key := range keys {
		val, ok := doc.Get(string(key))
		if !ok {
			return nil, snaperrors.Newf(snaperrors.KindReduce, "missing top-level key: %s", key)
		}
		out.Set(string(key), val)
	}
	return out, nil
}
