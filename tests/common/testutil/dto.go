//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// Mutation edits the JSON form of a request DTO before it is sent.
type Mutation func(map[string]any)

// DtoMap round-trips v through JSON so tests can send payloads the typed DTO
// cannot express, such as a missing or mistyped field.
func DtoMap(t *testing.T, v any, muts ...Mutation) map[string]any {
	t.Helper()

	b, err := json.Marshal(v)
	require.NoError(t, err)
	m := map[string]any{}
	require.NoError(t, json.Unmarshal(b, &m))

	for _, mut := range muts {
		mut(m)
	}
	return m
}

// Field sets key to value; a nil value removes the key.
func Field(key string, value any) Mutation {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}
