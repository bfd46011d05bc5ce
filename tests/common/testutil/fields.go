//go:build unit || e2e

package testutil

// Field returns a mutator that sets (or deletes, when value is nil) a key
// in a JSON request body represented as a map.
func Field(key string, value any) func(map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}
