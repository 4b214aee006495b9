//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Mutator edits a JSON payload before it is sent, to exercise binding rules field by field.
type Mutator func(map[string]any)

// Payload renders a request DTO as its JSON object form and applies the mutators in order.
func Payload(t *testing.T, dto any, muts ...Mutator) map[string]any {
	t.Helper()
	raw, err := json.Marshal(dto)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	for _, mut := range muts {
		mut(m)
	}
	return m
}

// Set assigns value at a dotted path such as "counter_offer.party_size", creating objects on
// the way.
func Set(path string, value any) Mutator {
	return func(m map[string]any) {
		parent, key := walk(m, path, true)
		parent[key] = value
	}
}

// Drop removes the field at a dotted path; a missing parent is a no-op.
func Drop(path string) Mutator {
	return func(m map[string]any) {
		if parent, key := walk(m, path, false); parent != nil {
			delete(parent, key)
		}
	}
}

func walk(m map[string]any, path string, create bool) (map[string]any, string) {
	parts := strings.Split(path, ".")
	cur := m
	for _, p := range parts[:len(parts)-1] {
		next, ok := cur[p].(map[string]any)
		if !ok {
			if !create {
				return nil, ""
			}
			next = map[string]any{}
			cur[p] = next
		}
		cur = next
	}
	return cur, parts[len(parts)-1]
}
